package combinator

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ncellar/autumn4/parse"
)

// pushInt parses a digit and pushes its integer value.
func pushInt() parse.Parser {
	return CollectText(Digit(), func(p *parse.Parse, _ []any, text string) {
		n, _ := strconv.Atoi(text)
		p.Push(n)
	})
}

// foldAdd folds [acc, rhs] into acc+rhs.
func foldAdd(p *parse.Parse, items []any, pos0, size0 int) {
	p.Push(items[0].(int) + items[1].(int))
}

func TestLeftAssocFold(t *testing.T) {
	sum := LeftAssoc(pushInt(), Str("+"), pushInt(), false, foldAdd)

	p := parse.New("1+2+3")
	if !sum.Parse(p) {
		t.Fatal("parse failed")
	}
	if p.Pos != 5 {
		t.Errorf("Pos = %d, want 5", p.Pos)
	}

	want := []any{6}
	if diff := cmp.Diff(want, p.Stack()); diff != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", diff)
	}
}

func TestLeftAssocAssociativity(t *testing.T) {
	// fold to a nested string so grouping is observable
	step := func(p *parse.Parse, items []any, pos0, size0 int) {
		p.Push("(" + items[0].(string) + "+" + items[1].(string) + ")")
	}
	digit := CollectText(Digit(), func(p *parse.Parse, _ []any, text string) {
		p.Push(text)
	})
	expr := LeftAssoc(digit, Str("+"), digit, false, step)

	p := parse.New("1+2+3")
	if !expr.Parse(p) {
		t.Fatal("parse failed")
	}

	want := []any{"((1+2)+3)"}
	if diff := cmp.Diff(want, p.Stack()); diff != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", diff)
	}
}

func TestLeftAssocOperatorRequired(t *testing.T) {
	tests := []struct {
		name     string
		required bool
		input    string
		want     bool
	}{
		{"required-missing", true, "1", false},
		{"required-present", true, "1+2", true},
		{"optional-missing", false, "1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := LeftAssoc(pushInt(), Str("+"), pushInt(), tt.required, foldAdd)
			p := parse.New(tt.input)
			got := expr.Parse(p) && p.Pos == len(p.Input)
			if got != tt.want {
				t.Errorf("parse %q = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLeftAssocDanglingOperatorNotConsumed(t *testing.T) {
	expr := LeftAssoc(pushInt(), Str("+"), pushInt(), false, foldAdd)

	p := parse.New("1+2+")
	if !expr.Parse(p) {
		t.Fatal("parse failed")
	}
	// the trailing operator has no right-hand side and must be left
	// unconsumed
	if p.Pos != 3 {
		t.Errorf("Pos = %d, want 3", p.Pos)
	}

	want := []any{3}
	if diff := cmp.Diff(want, p.Stack()); diff != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", diff)
	}
}

func TestLeftAssocFailedLeftRestoresState(t *testing.T) {
	expr := LeftAssoc(pushInt(), Str("+"), pushInt(), true, foldAdd)

	p := parse.New("x+1")
	if expr.Parse(p) {
		t.Fatal("parse succeeded on non-digit left")
	}
	if p.Pos != 0 || p.StackSize() != 0 || p.LogSize() != 0 {
		t.Errorf("state = (%d, %d, %d), want (0, 0, 0)",
			p.Pos, p.LogSize(), p.StackSize())
	}
}
