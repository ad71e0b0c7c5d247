package widgets

import "github.com/phanxgames/trellis"

// Grid places its children in equal cells using their Row and Column
// hints instead of docking. Out-of-range hints are clamped to the last
// row or column.
type Grid struct {
	Rows    int
	Columns int
	Gap     int
}

// Cell returns the rectangle of cell (row, col) inside area.
func (g *Grid) Cell(area trellis.Rect, row, col int) trellis.Rect {
	rows, cols := max(g.Rows, 1), max(g.Columns, 1)
	row = min(max(row, 0), rows-1)
	col = min(max(col, 0), cols-1)
	cw := max((area.Width-(cols-1)*g.Gap)/cols, 0)
	ch := max((area.Height-(rows-1)*g.Gap)/rows, 0)
	return trellis.Rect{
		X:      area.X + col*(cw+g.Gap),
		Y:      area.Y + row*(ch+g.Gap),
		Width:  cw,
		Height: ch,
	}
}

// LayoutChildren implements trellis.Layouter.
func (g *Grid) LayoutChildren(c *trellis.Control, area trellis.Rect) {
	for _, child := range c.Children() {
		if !child.Visible() {
			continue
		}
		child.SetBoundsNoInvalidate(g.Cell(area, child.Row(), child.Column()))
	}
}

// NewGrid returns a transparent rows x cols grid container.
func NewGrid(name string, bounds trellis.Rect, rows, cols, gap int) *trellis.Control {
	c := trellis.NewWidget(name, bounds, &Grid{Rows: rows, Columns: cols, Gap: gap})
	c.Class = "grid"
	return c
}
