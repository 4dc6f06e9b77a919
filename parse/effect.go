package parse

// SideEffect is a reversible mutation of a parse state. Applying it
// performs the mutation and returns an undo closure that exactly
// reverses it. The undo must only depend on state captured at apply
// time and must not apply further effects.
type SideEffect func(p *Parse) Undo

// Undo reverses the mutation performed by the side effect it was
// returned from.
type Undo func()

// applied pairs an effect with the undo it returned, so that a journal
// suffix can be both rolled back and detached for replay.
type applied struct {
	effect SideEffect
	undo   Undo
}

// Apply runs the effect against the parse state and journals its undo.
func (p *Parse) Apply(effect SideEffect) {
	undo := effect(p)
	p.log = append(p.log, applied{effect: effect, undo: undo})
}

// LogSize returns the current length of the journal.
func (p *Parse) LogSize() int {
	return len(p.log)
}

// Rollback reverses every effect applied since the journal had length
// k, most recent first, and truncates the journal to k.
func (p *Parse) Rollback(k int) {
	for i := len(p.log) - 1; i >= k; i-- {
		p.log[i].undo()
	}
	p.log = p.log[:k]
}

// Delta returns the effects applied since the journal had length k, in
// application order, detached from the journal. Replaying them through
// Apply on a compatible state reproduces the same mutations.
func (p *Parse) Delta(k int) []SideEffect {
	delta := make([]SideEffect, len(p.log)-k)
	for i, a := range p.log[k:] {
		delta[i] = a.effect
	}
	return delta
}
