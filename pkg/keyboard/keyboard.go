// Package keyboard describes transport-neutral button grids.
package keyboard

// Button is a labelled control carrying an opaque action token.
type Button struct {
	Label  string
	Action string
}

// Row is an ordered line of buttons.
type Row []Button

// Markup is an ordered sequence of rows.
type Markup struct {
	Rows []Row
}

// Empty reports whether the markup has no buttons at all.
func (m *Markup) Empty() bool {
	if m == nil {
		return true
	}
	for _, r := range m.Rows {
		if len(r) > 0 {
			return false
		}
	}
	return true
}

// Buttons returns every button in row order.
func (m *Markup) Buttons() []Button {
	if m == nil {
		return nil
	}
	var out []Button
	for _, r := range m.Rows {
		out = append(out, r...)
	}
	return out
}

// Builder accumulates rows.
type Builder struct {
	rows []Row
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Row appends buttons, wrapping every width buttons onto a new row.
// A width <= 0 keeps all buttons on one row. Calling Row without
// buttons is a no-op.
func (b *Builder) Row(width int, buttons ...Button) *Builder {
	if len(buttons) == 0 {
		return b
	}
	if width <= 0 {
		width = len(buttons)
	}
	for i := 0; i < len(buttons); i += width {
		end := min(i+width, len(buttons))
		row := make(Row, end-i)
		copy(row, buttons[i:end])
		b.rows = append(b.rows, row)
	}
	return b
}

// Markup returns the built grid.
func (b *Builder) Markup() *Markup {
	rows := make([]Row, len(b.rows))
	copy(rows, b.rows)
	return &Markup{Rows: rows}
}
