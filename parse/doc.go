// Package parse implements the engine underneath a backtracking
// parser-combinator library.
//
// # Overview
//
// A Parse holds everything mutable about one parse attempt: the input,
// the cursor, a value stack for parser-produced results, a journal of
// reversible side effects, and lazily materialized named state cells.
// Parsers implement the Parser interface and speculate freely: a
// parser that returns false must leave the state exactly as it found
// it, which the Attempt helper enforces by snapshotting the cursor and
// the journal length and restoring both on failure.
//
// # Journal
//
//	┌──────────┐  Apply   ┌─────────────────────────┐
//	│ SideEffect│────────▶│ journal: [undo0 … undoN] │
//	└──────────┘          └─────────────────────────┘
//	                           │ Rollback(k)
//	                           ▼
//	              run undoN … undok, truncate to k
//
// Every user-visible mutation funnels through the journal, including
// value-stack pushes and drains. Because of that, rolling the journal
// back to a prior length restores the stack and every cell binding to
// the state they had at that point, in strict LIFO order. The Delta
// method detaches the effects applied since a given journal length so
// that they can be replayed later, which is what the token cache does
// to reproduce a token's mutations on a cache hit.
//
// # Cells
//
// A Cell is a named, lazily initialized slot on the parse state. Cells
// are declared once when the grammar is built and accessed through
// Data. Mutating a cell's contents directly is forbidden; mutations
// are expressed as side effects (see SetBinding) so that speculative
// alternatives roll them back transparently.
package parse
