package combinator

import (
	"fmt"

	"github.com/ncellar/autumn4/parse"
)

type sequence struct {
	children []parse.Parser
}

// Seq matches each child in order, failing as a whole if any child
// fails.
func Seq(children ...parse.Parser) parse.Parser {
	return &sequence{children: children}
}

func (s *sequence) Parse(p *parse.Parse) bool {
	return parse.Attempt(p, func() bool {
		for _, child := range s.children {
			if !child.Parse(p) {
				return false
			}
		}
		return true
	})
}

func (s *sequence) Children() []parse.Parser { return s.children }

func (s *sequence) String() string { return "seq" }

type choice struct {
	children []parse.Parser
}

// Choice matches the first child that succeeds, in declaration order.
func Choice(children ...parse.Parser) parse.Parser {
	return &choice{children: children}
}

func (c *choice) Parse(p *parse.Parse) bool {
	for _, child := range c.children {
		if child.Parse(p) {
			return true
		}
	}
	return false
}

func (c *choice) Children() []parse.Parser { return c.children }

func (c *choice) String() string { return "choice" }

type optional struct {
	child parse.Parser
}

// Opt matches the child if possible and succeeds either way.
func Opt(child parse.Parser) parse.Parser {
	return &optional{child: child}
}

func (o *optional) Parse(p *parse.Parse) bool {
	o.child.Parse(p)
	return true
}

func (o *optional) Children() []parse.Parser { return []parse.Parser{o.child} }

func (o *optional) String() string { return "opt" }

type repeat struct {
	min   int
	child parse.Parser
}

// Repeat matches the child as many times as possible, succeeding iff
// at least min repetitions matched.
func Repeat(min int, child parse.Parser) parse.Parser {
	return &repeat{min: min, child: child}
}

func (r *repeat) Parse(p *parse.Parse) bool {
	return parse.Attempt(p, func() bool {
		count := 0
		for {
			pos0 := p.Pos
			if !r.child.Parse(p) {
				break
			}
			count++
			// zero-width match: stop rather than loop forever
			if p.Pos == pos0 {
				break
			}
		}
		return count >= r.min
	})
}

func (r *repeat) Children() []parse.Parser { return []parse.Parser{r.child} }

func (r *repeat) String() string { return fmt.Sprintf("repeat(min=%d)", r.min) }
