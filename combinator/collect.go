package combinator

import "github.com/ncellar/autumn4/parse"

// Action consumes the stack values its parser's child pushed beyond
// size0 (drained from the stack before the call, bottom first) along
// with the cursor position and stack size recorded before the child
// ran. It typically pushes a combined value back.
type Action func(p *parse.Parse, items []any, pos0, size0 int)

// TextAction is an Action variant that receives the text matched by
// the child in place of the entry position and stack size.
type TextAction func(p *parse.Parse, items []any, text string)

type collect struct {
	child  parse.Parser
	action Action
}

// Collect matches the child, then drains the stack values it pushed
// and hands them to the action.
func Collect(child parse.Parser, action Action) parse.Parser {
	return &collect{child: child, action: action}
}

func (c *collect) Parse(p *parse.Parse) bool {
	pos0 := p.Pos
	size0 := p.StackSize()
	if !c.child.Parse(p) {
		return false
	}
	c.action(p, p.PopFrom(size0), pos0, size0)
	return true
}

func (c *collect) Children() []parse.Parser { return []parse.Parser{c.child} }

func (c *collect) String() string { return "collect" }

type collectText struct {
	child  parse.Parser
	action TextAction
}

// CollectText is Collect with the matched substring passed to the
// action.
func CollectText(child parse.Parser, action TextAction) parse.Parser {
	return &collectText{child: child, action: action}
}

func (c *collectText) Parse(p *parse.Parse) bool {
	pos0 := p.Pos
	size0 := p.StackSize()
	if !c.child.Parse(p) {
		return false
	}
	c.action(p, p.PopFrom(size0), p.Input[pos0:p.Pos])
	return true
}

func (c *collectText) Children() []parse.Parser { return []parse.Parser{c.child} }

func (c *collectText) String() string { return "collect_text" }
