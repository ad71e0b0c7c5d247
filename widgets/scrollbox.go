package widgets

import (
	"math"

	"github.com/phanxgames/trellis"
)

// ScrollBox stacks its children vertically, each at its own height and the
// full client width, and scrolls them with the mouse wheel. The control
// caches its own surface, so scrolling repaints only the box.
//
// Wheel events go to the hovered control only; NewScrollBox forwards the
// wheel of direct children to the box.
type ScrollBox struct {
	trellis.BaseInputHandler

	// Step is the distance scrolled per wheel notch.
	Step int

	offset   int
	content  int
	viewport int
}

// Offset returns the current scroll position in pixels.
func (s *ScrollBox) Offset() int { return s.offset }

// ContentHeight returns the total height of the stacked children.
func (s *ScrollBox) ContentHeight() int { return s.content }

// MaxOffset returns the largest valid scroll position.
func (s *ScrollBox) MaxOffset() int { return max(s.content-s.viewport, 0) }

// LayoutChildren implements trellis.Layouter. Children are stacked in the
// order they were added.
func (s *ScrollBox) LayoutChildren(c *trellis.Control, area trellis.Rect) {
	y := area.Y - s.offset
	total := 0
	for _, child := range c.ChildrenInverseZ() {
		if !child.Visible() {
			continue
		}
		h := child.Bounds().Height
		child.SetBoundsNoInvalidate(trellis.Rect{X: area.X, Y: y, Width: area.Width, Height: h})
		y += h
		total += h
	}
	s.content = total
	s.viewport = area.Height
	// Content may have shrunk below the current position.
	if s.offset > s.MaxOffset() {
		s.offset = s.MaxOffset()
		y = area.Y - s.offset
		for _, child := range c.ChildrenInverseZ() {
			if !child.Visible() {
				continue
			}
			b := child.Bounds()
			child.SetBoundsNoInvalidate(trellis.Rect{X: b.X, Y: y, Width: b.Width, Height: b.Height})
			y += b.Height
		}
	}
}

// ScrollTo moves to offset, clamped to the content, and re-runs the
// layout when it changed.
func (s *ScrollBox) ScrollTo(c *trellis.Control, offset int) {
	offset = min(max(offset, 0), s.MaxOffset())
	if offset == s.offset {
		return
	}
	s.offset = offset
	c.InvalidateLayout()
}

// OnWheel scrolls by Step per notch. Positive WheelY scrolls up.
func (s *ScrollBox) OnWheel(c *trellis.Control, e *trellis.MouseEvent) {
	s.scroll(c, e)
}

func (s *ScrollBox) scroll(c *trellis.Control, e *trellis.MouseEvent) {
	if e.WheelY == 0 {
		return
	}
	step := s.Step
	if step <= 0 {
		step = 20
	}
	s.ScrollTo(c, s.offset-int(math.Round(e.WheelY*float64(step))))
	e.Handled = true
}

// NewScrollBox returns a scroll box with a cached surface.
func NewScrollBox(name string, bounds trellis.Rect) *trellis.Control {
	s := &ScrollBox{Step: 20}
	c := trellis.NewWidget(name, bounds, s)
	c.Class = "scrollbox"
	c.SetCacheSurface(true)
	c.OnChildAdded = func(child *trellis.Control) {
		if child.OnWheel != nil {
			return
		}
		child.OnWheel = func(e *trellis.MouseEvent) { s.scroll(c, e) }
	}
	return c
}
