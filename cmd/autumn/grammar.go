package main

import (
	"fmt"
	"strconv"

	"github.com/ncellar/autumn4/combinator"
	"github.com/ncellar/autumn4/parse"
	"github.com/ncellar/autumn4/token"
)

// newRecallGrammar builds the context-sensitive demo grammar
// identifier "-" identifier, where the second identifier must repeat
// the first one verbatim.
func newRecallGrammar() parse.Parser {
	store := combinator.NewStore("identifiers")
	identifier := combinator.Repeat(1, combinator.Alpha())
	return combinator.Seq(
		combinator.Learn(store, "id", identifier),
		combinator.Str("-"),
		combinator.Recall(store, "id"),
	)
}

// calculator evaluates precedence-free left-associative arithmetic
// over a token set. Its token set must be flushed before reuse on a
// new input.
type calculator struct {
	set  *token.Set
	root parse.Parser
}

func newCalculator() *calculator {
	number := combinator.CollectText(
		combinator.Repeat(1, combinator.Digit()),
		func(p *parse.Parse, _ []any, text string) {
			n, _ := strconv.Atoi(text)
			p.Push(n)
		})

	op := func(text string) parse.Parser {
		return combinator.CollectText(combinator.Str(text),
			func(p *parse.Parse, _ []any, matched string) {
				p.Push(matched)
			})
	}
	plus, minus, times, divide := op("+"), op("-"), op("*"), op("/")

	set := token.NewSet(number, plus, minus, times, divide)

	operand := set.TokenParser(number)
	operator := set.TokenChoice(plus, minus, times, divide)

	root := combinator.LeftAssoc(operand, operator, operand, false, fold)

	return &calculator{set: set, root: root}
}

// fold reduces [acc, op, rhs] to a single value.
func fold(p *parse.Parse, items []any, pos0, size0 int) {
	acc := items[0].(int)
	rhs := items[2].(int)
	switch items[1].(string) {
	case "+":
		p.Push(acc + rhs)
	case "-":
		p.Push(acc - rhs)
	case "*":
		p.Push(acc * rhs)
	case "/":
		if rhs == 0 {
			p.Push(0)
		} else {
			p.Push(acc / rhs)
		}
	}
}

// eval parses the expression and returns the folded result. The token
// set is flushed first so the calculator can be reused across inputs.
func (c *calculator) eval(input string) (int, error) {
	c.set.Flush()
	p := parse.New(input)
	if !c.root.Parse(p) || p.Pos != len(p.Input) {
		return 0, fmt.Errorf("cannot parse %q at offset %d", input, p.Pos)
	}
	stack := p.Stack()
	if len(stack) != 1 {
		return 0, fmt.Errorf("expected one result, stack has %d values", len(stack))
	}
	return stack[0].(int), nil
}

// lexer is the token set behind `autumn tokens`: a small word/number
// lexicon with keyword-versus-identifier resolution by longest match.
type lexer struct {
	set   *token.Set
	bases []parse.Parser
	kinds []string
}

func newLexer() *lexer {
	bases := []parse.Parser{
		combinator.Str("if"),
		combinator.Str("iff"),
		combinator.Repeat(1, combinator.Alpha()),
		combinator.Repeat(1, combinator.Digit()),
		combinator.Repeat(1, combinator.CharPred("space", func(r rune) bool {
			return r == ' ' || r == '\t' || r == '\n'
		})),
		combinator.Str("+"),
		combinator.Str("-"),
		combinator.Str("*"),
		combinator.Str("/"),
		combinator.Str("("),
		combinator.Str(")"),
	}
	kinds := []string{
		"if", "iff", "identifier", "number", "space",
		"plus", "minus", "star", "slash", "lparen", "rparen",
	}
	return &lexer{set: token.NewSet(bases...), bases: bases, kinds: kinds}
}

// lexeme is one tokenization result.
type lexeme struct {
	kind  string
	start int
	end   int
	text  string
}

// scan tokenizes the whole input, or returns an error at the first
// offset where no token matches.
func (l *lexer) scan(input string) ([]lexeme, error) {
	l.set.Flush()
	p := parse.New(input)

	var out []lexeme
	for p.Pos < len(p.Input) {
		start := p.Pos
		matched := -1
		for i, base := range l.bases {
			if l.set.TokenParser(base).Parse(p) {
				matched = i
				break
			}
		}
		if matched < 0 {
			return out, fmt.Errorf("no token at offset %d", start)
		}
		out = append(out, lexeme{
			kind:  l.kinds[matched],
			start: start,
			end:   p.Pos,
			text:  input[start:p.Pos],
		})
	}
	return out, nil
}
