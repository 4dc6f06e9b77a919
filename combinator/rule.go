package combinator

import (
	"fmt"

	"github.com/ncellar/autumn4/parse"
)

// Rule is a forward-declared parser, used to build recursive grammars:
// declare the rule, reference it from other parsers, then Set its
// definition before the first parse.
type Rule struct {
	name   string
	parser parse.Parser
}

// NewRule declares an unresolved rule with the given name.
func NewRule(name string) *Rule {
	return &Rule{name: name}
}

// Set resolves the rule to the given parser. Resolving a rule twice is
// a programmer error.
func (r *Rule) Set(parser parse.Parser) {
	if r.parser != nil {
		panic(fmt.Sprintf("combinator: rule %q already resolved", r.name))
	}
	r.parser = parser
}

func (r *Rule) Parse(p *parse.Parse) bool {
	if r.parser == nil {
		panic(fmt.Sprintf("combinator: rule %q used before Set", r.name))
	}
	return r.parser.Parse(p)
}

func (r *Rule) Children() []parse.Parser {
	if r.parser == nil {
		return nil
	}
	return []parse.Parser{r.parser}
}

func (r *Rule) String() string { return fmt.Sprintf("rule(%s)", r.name) }
