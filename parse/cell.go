package parse

// Cell is a named slot of per-parse state. A cell is declared once
// when the grammar is built; its value materializes on first access
// via the initializer and lives for the rest of the parse. Cells are
// keyed by identity, so the same *Cell must be shared by every parser
// that uses the slot.
type Cell struct {
	name string
	init func() any
}

// NewCell declares a cell with the given name (used in diagnostics)
// and initializer.
func NewCell(name string, init func() any) *Cell {
	return &Cell{name: name, init: init}
}

// Name returns the name the cell was declared with.
func (c *Cell) Name() string {
	return c.name
}

// Data returns the cell's value on the given parse state, running the
// initializer on first access.
func (c *Cell) Data(p *Parse) any {
	if v, ok := p.cells[c]; ok {
		return v
	}
	v := c.init()
	p.cells[c] = v
	return v
}

// SetBinding returns an effect that sets key to value in a cell backed
// by a map[string]string. The undo restores the previous binding, or
// removes the key if it was absent.
func SetBinding(c *Cell, key, value string) SideEffect {
	return func(p *Parse) Undo {
		m := c.Data(p).(map[string]string)
		old, had := m[key]
		m[key] = value
		return func() {
			if had {
				m[key] = old
			} else {
				delete(m, key)
			}
		}
	}
}
