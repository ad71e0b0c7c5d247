package widgets

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/trellis"
)

// NewPanel returns a plain container with a flat background.
func NewPanel(name string, bounds trellis.Rect, bg trellis.Color) *trellis.Control {
	c := trellis.NewControl(name, bounds)
	c.Class = "panel"
	c.SetBackground(bg)
	return c
}

// Form is the skin of a form control. It sees key events aimed at any
// focused descendant before the descendant does: Enter submits, Escape
// cancels.
type Form struct {
	trellis.BaseInputHandler

	OnSubmit func()
	OnCancel func()
}

// OnKeyDown handles Enter and Escape.
func (f *Form) OnKeyDown(c *trellis.Control, e *trellis.KeyEvent) {
	switch e.Key {
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		if f.OnSubmit != nil {
			f.OnSubmit()
			e.Handled = true
		}
	case ebiten.KeyEscape:
		if f.OnCancel != nil {
			f.OnCancel()
			e.Handled = true
		}
	}
}

// NewForm returns a form container. Add it to the display as a top-level
// window, or nest it inside one.
func NewForm(name string, bounds trellis.Rect, bg trellis.Color, f *Form) *trellis.Control {
	if f == nil {
		f = &Form{}
	}
	c := trellis.NewWidget(name, bounds, f)
	c.Class = "form"
	c.SetForm(true)
	c.SetBackground(bg)
	return c
}
