package token

import (
	"fmt"

	"github.com/ncellar/autumn4/parse"
)

// Parser recognizes a single token kind: it succeeds iff the token at
// the current position was produced by its base parser. Obtain one via
// Set.TokenParser.
type Parser struct {
	set    *Set
	target int
	base   parse.Parser
}

func (t *Parser) Parse(p *parse.Parse) bool {
	return t.set.parseToken(p, t.target)
}

func (t *Parser) Children() []parse.Parser {
	return []parse.Parser{t.base}
}

func (t *Parser) String() string {
	return fmt.Sprintf("token(%v)", t.base)
}

// Choice recognizes any of several token kinds through the same cache.
// Obtain one via Set.TokenChoice.
type Choice struct {
	set     *Set
	targets []int
	bases   []parse.Parser
}

func (t *Choice) Parse(p *parse.Parse) bool {
	return t.set.parseTokenChoice(p, t.targets)
}

func (t *Choice) Children() []parse.Parser {
	out := make([]parse.Parser, len(t.bases))
	copy(out, t.bases)
	return out
}

func (t *Choice) String() string {
	return fmt.Sprintf("token_choice(%d)", len(t.targets))
}
