package combinator

import (
	"testing"

	"github.com/ncellar/autumn4/parse"
)

func TestStr(t *testing.T) {
	tests := []struct {
		text    string
		input   string
		want    bool
		wantPos int
	}{
		{"abc", "abcdef", true, 3},
		{"abc", "abd", false, 0},
		{"abc", "ab", false, 0},
		{"", "xyz", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.input, func(t *testing.T) {
			p := parse.New(tt.input)
			if got := Str(tt.text).Parse(p); got != tt.want {
				t.Fatalf("Parse = %v, want %v", got, tt.want)
			}
			if p.Pos != tt.wantPos {
				t.Errorf("Pos = %d, want %d", p.Pos, tt.wantPos)
			}
		})
	}
}

func TestCharPred(t *testing.T) {
	tests := []struct {
		name    string
		parser  parse.Parser
		input   string
		want    bool
		wantPos int
	}{
		{"alpha", Alpha(), "xyz", true, 1},
		{"alpha-digit", Alpha(), "1yz", false, 0},
		{"alpha-empty", Alpha(), "", false, 0},
		{"alpha-multibyte", Alpha(), "über", true, 2},
		{"digit", Digit(), "42", true, 1},
		{"range", CharRange('1', '9'), "7", true, 1},
		{"range-out", CharRange('1', '9'), "0", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parse.New(tt.input)
			if got := tt.parser.Parse(p); got != tt.want {
				t.Fatalf("Parse = %v, want %v", got, tt.want)
			}
			if p.Pos != tt.wantPos {
				t.Errorf("Pos = %d, want %d", p.Pos, tt.wantPos)
			}
		})
	}
}

func TestSeq(t *testing.T) {
	ab := Seq(Str("a"), Str("b"))

	p := parse.New("ab")
	if !ab.Parse(p) {
		t.Fatal("seq failed on \"ab\"")
	}
	if p.Pos != 2 {
		t.Errorf("Pos = %d, want 2", p.Pos)
	}

	p = parse.New("ax")
	if ab.Parse(p) {
		t.Error("seq matched \"ax\"")
	}
	if p.Pos != 0 {
		t.Errorf("Pos after failed seq = %d, want 0", p.Pos)
	}
}

func TestChoiceDeclarationOrder(t *testing.T) {
	c := Choice(Str("aa"), Str("a"))

	p := parse.New("aab")
	if !c.Parse(p) {
		t.Fatal("choice failed")
	}
	if p.Pos != 2 {
		t.Errorf("Pos = %d, want 2 (first alternative wins)", p.Pos)
	}
}

func TestChoiceBacktracksFailedAlternative(t *testing.T) {
	n := 0
	// first alternative journals an effect, then fails
	effectful := Seq(
		Collect(Str("a"), func(p *parse.Parse, items []any, pos0, size0 int) {
			p.Apply(func(p *parse.Parse) parse.Undo {
				n++
				return func() { n-- }
			})
		}),
		Str("X"),
	)
	c := Choice(effectful, Str("ab"))

	p := parse.New("ab")
	if !c.Parse(p) {
		t.Fatal("choice failed")
	}
	if p.Pos != 2 {
		t.Errorf("Pos = %d, want 2", p.Pos)
	}
	if n != 0 {
		t.Errorf("effect survived a failed alternative: n = %d, want 0", n)
	}
}

func TestRepeat(t *testing.T) {
	tests := []struct {
		name    string
		min     int
		input   string
		want    bool
		wantPos int
	}{
		{"zero-ok", 0, "", true, 0},
		{"one-of-three", 1, "aaab", true, 3},
		{"min-unmet", 2, "ab", false, 0},
		{"exact-min", 2, "aab", true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parse.New(tt.input)
			r := Repeat(tt.min, Str("a"))
			if got := r.Parse(p); got != tt.want {
				t.Fatalf("Parse = %v, want %v", got, tt.want)
			}
			if p.Pos != tt.wantPos {
				t.Errorf("Pos = %d, want %d", p.Pos, tt.wantPos)
			}
		})
	}
}

func TestOpt(t *testing.T) {
	o := Opt(Str("a"))

	p := parse.New("ab")
	if !o.Parse(p) || p.Pos != 1 {
		t.Errorf("opt on match: pos = %d, want 1", p.Pos)
	}

	p = parse.New("b")
	if !o.Parse(p) || p.Pos != 0 {
		t.Errorf("opt on miss: pos = %d, want 0", p.Pos)
	}
}

func TestFailureIsInert(t *testing.T) {
	store := NewStore("store")
	parsers := []struct {
		name   string
		parser parse.Parser
	}{
		{"str", Str("zzz")},
		{"seq", Seq(Str("a"), Str("zzz"))},
		{"choice", Choice(Str("x"), Str("y"))},
		{"repeat", Repeat(2, Str("a"))},
		{"learn", Learn(store, "k", Str("zzz"))},
		{"leftassoc", LeftAssoc(Str("z"), Str("+"), Str("z"), true, nil)},
	}

	for _, tt := range parsers {
		t.Run(tt.name, func(t *testing.T) {
			p := parse.New("ab")
			p.Push("sentinel")
			pos0, log0, size0 := p.Pos, p.LogSize(), p.StackSize()

			if tt.parser.Parse(p) {
				t.Skip("parser unexpectedly matched")
			}
			if p.Pos != pos0 || p.LogSize() != log0 || p.StackSize() != size0 {
				t.Errorf("state after failure = (%d, %d, %d), want (%d, %d, %d)",
					p.Pos, p.LogSize(), p.StackSize(), pos0, log0, size0)
			}
		})
	}
}

func TestRuleRecursion(t *testing.T) {
	// parens := "(" parens ")" | "x"
	parens := NewRule("parens")
	parens.Set(Choice(Seq(Str("("), parens, Str(")")), Str("x")))

	tests := []struct {
		input string
		want  bool
	}{
		{"x", true},
		{"(x)", true},
		{"((x))", true},
		{"((x)", false},
	}

	for _, tt := range tests {
		p := parse.New(tt.input)
		got := parens.Parse(p) && p.Pos == len(p.Input)
		if got != tt.want {
			t.Errorf("parens on %q = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestRuleUnresolvedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for unresolved rule")
		}
	}()
	NewRule("dangling").Parse(parse.New("x"))
}
