package combinator

import (
	"fmt"

	"github.com/ncellar/autumn4/parse"
)

// NewStore declares the parse-state cell that backs a Learn/Recall
// pair: a per-parse map from key to learned substring.
func NewStore(name string) *parse.Cell {
	return parse.NewCell(name, func() any {
		return map[string]string{}
	})
}

type learn struct {
	inner parse.Parser
	key   string
}

// Learn matches the child and, on success, binds the matched substring
// to key in the store. The binding is journaled, so backtracking past
// the Learn restores whatever was bound before.
func Learn(store *parse.Cell, key string, child parse.Parser) parse.Parser {
	return &learn{
		key: key,
		inner: CollectText(child, func(p *parse.Parse, _ []any, text string) {
			p.Apply(parse.SetBinding(store, key, text))
		}),
	}
}

func (l *learn) Parse(p *parse.Parse) bool { return l.inner.Parse(p) }

func (l *learn) Children() []parse.Parser { return []parse.Parser{l.inner} }

func (l *learn) String() string { return fmt.Sprintf("learn(%q)", l.key) }

type recall struct {
	store *parse.Cell
	key   string
}

// Recall matches exactly the substring previously learned under key.
// Recalling a key that was never learned is a programmer error.
func Recall(store *parse.Cell, key string) parse.Parser {
	return &recall{store: store, key: key}
}

func (r *recall) Parse(p *parse.Parse) bool {
	m := r.store.Data(p).(map[string]string)
	s, ok := m[r.key]
	if !ok {
		panic(fmt.Sprintf("combinator: no learned string for key %q", r.key))
	}
	if !p.Match(p.Pos, s) {
		return false
	}
	p.Pos += len(s)
	return true
}

func (r *recall) Children() []parse.Parser { return nil }

func (r *recall) String() string { return fmt.Sprintf("recall(%q)", r.key) }
