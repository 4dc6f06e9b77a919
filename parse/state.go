package parse

// Parse is the mutable context of a single parse attempt. It is owned
// by exactly one parse invocation; parsers themselves are immutable
// and may be shared.
type Parse struct {
	// Input is the text being parsed. It must not change during the
	// parse.
	Input string

	// Pos is the cursor, a byte offset into Input. Leaf parsers
	// advance it on success; composite parsers never advance it
	// themselves, they only reset it to an earlier value when
	// backtracking.
	Pos int

	stack []any
	log   []applied
	cells map[*Cell]any
}

// New creates a parse state over the given input, with an empty stack,
// journal and cell set.
func New(input string) *Parse {
	return &Parse{
		Input: input,
		cells: make(map[*Cell]any),
	}
}

// Match reports whether the input contains exactly s at offset pos.
func (p *Parse) Match(pos int, s string) bool {
	end := pos + len(s)
	return end <= len(p.Input) && p.Input[pos:end] == s
}

// StackSize returns the number of values on the value stack.
func (p *Parse) StackSize() int {
	return len(p.stack)
}

// Stack returns a copy of the value stack, bottom first.
func (p *Parse) Stack() []any {
	out := make([]any, len(p.stack))
	copy(out, p.stack)
	return out
}

// Push appends a value to the value stack. The push is journaled, so
// rolling back past it removes the value again.
func (p *Parse) Push(v any) {
	p.Apply(func(p *Parse) Undo {
		p.stack = append(p.stack, v)
		return func() {
			p.stack = p.stack[:len(p.stack)-1]
		}
	})
}

// PopFrom removes and returns the stack values beyond index k, bottom
// first. The drain is journaled as "pop that many values", so that a
// detached delta replays correctly whatever the stack depth is at
// replay time; the undo pushes the drained values back.
func (p *Parse) PopFrom(k int) []any {
	count := len(p.stack) - k
	var items []any
	p.Apply(func(p *Parse) Undo {
		n := len(p.stack) - count
		items = make([]any, count)
		copy(items, p.stack[n:])
		p.stack = p.stack[:n]
		drained := items
		return func() {
			p.stack = append(p.stack, drained...)
		}
	})
	return items
}

// Attempt runs body against the parse state and, if it reports
// failure, restores the cursor and rolls the journal back to their
// values at entry. Composite parsers route their matching logic
// through Attempt so that a false return never leaks state.
func Attempt(p *Parse, body func() bool) bool {
	pos0 := p.Pos
	log0 := len(p.log)
	if body() {
		return true
	}
	p.Pos = pos0
	p.Rollback(log0)
	return false
}
