// Package combinator provides the grammar-author surface over the
// parse engine: leaf matchers, composites, stack actions, recursion
// placeholders, the context-sensitive Learn/Recall pair and the
// left-associative expression helper.
package combinator

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/ncellar/autumn4/parse"
)

type literal struct {
	text string
}

// Str matches the literal text at the current position.
func Str(text string) parse.Parser {
	return &literal{text: text}
}

func (l *literal) Parse(p *parse.Parse) bool {
	if !p.Match(p.Pos, l.text) {
		return false
	}
	p.Pos += len(l.text)
	return true
}

func (l *literal) Children() []parse.Parser { return nil }

func (l *literal) String() string { return fmt.Sprintf("str(%q)", l.text) }

type charPred struct {
	name string
	pred func(rune) bool
}

// CharPred matches a single rune satisfying pred. The name is used
// when printing the parser.
func CharPred(name string, pred func(rune) bool) parse.Parser {
	return &charPred{name: name, pred: pred}
}

// Alpha matches a single letter.
func Alpha() parse.Parser {
	return CharPred("alpha", unicode.IsLetter)
}

// Digit matches a single decimal digit.
func Digit() parse.Parser {
	return CharPred("digit", unicode.IsDigit)
}

// CharRange matches a single rune in the inclusive range [lo, hi].
func CharRange(lo, hi rune) parse.Parser {
	return CharPred(fmt.Sprintf("range(%q-%q)", lo, hi), func(r rune) bool {
		return lo <= r && r <= hi
	})
}

func (c *charPred) Parse(p *parse.Parse) bool {
	if p.Pos >= len(p.Input) {
		return false
	}
	r, size := utf8.DecodeRuneInString(p.Input[p.Pos:])
	if !c.pred(r) {
		return false
	}
	p.Pos += size
	return true
}

func (c *charPred) Children() []parse.Parser { return nil }

func (c *charPred) String() string { return c.name }
