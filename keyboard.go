package trellis

import "github.com/hajimehoshi/ebiten/v2"

// KeyDown routes a key press to the focused control. An unhandled Tab moves
// focus to the next tab stop (Shift+Tab to the previous). It reports
// whether the event was handled.
func (d *Display) KeyDown(key ebiten.Key) bool {
	e := &KeyEvent{Type: EventKeyDown, Key: key, Modifiers: d.modifiers}
	d.routeKey(e)
	if !e.Handled && key == ebiten.KeyTab {
		e.Handled = d.FocusNext(d.modifiers&ModShift == 0)
	}
	return e.Handled
}

// KeyUp routes a key release to the focused control.
func (d *Display) KeyUp(key ebiten.Key) bool {
	e := &KeyEvent{Type: EventKeyUp, Key: key, Modifiers: d.modifiers}
	d.routeKey(e)
	return e.Handled
}

// KeyPress routes a typed character to the focused control.
func (d *Display) KeyPress(r rune) bool {
	e := &KeyEvent{Type: EventKeyPress, Rune: r, Modifiers: d.modifiers}
	d.routeKey(e)
	return e.Handled
}

// routeKey offers e to the focused control's form first, then to the
// focused control unless the form handled it.
func (d *Display) routeKey(e *KeyEvent) {
	f := d.currentFocus
	if f == nil {
		return
	}
	e.Target = f
	if !f.form {
		if form := f.FindForm(); form != nil {
			d.dispatchKey(form, e)
			if e.Handled {
				return
			}
		}
	}
	d.dispatchKey(f, e)
}

// dispatchKey delivers e to c: skin hook, then callback, then the ECS
// bridge.
func (d *Display) dispatchKey(c *Control, e *KeyEvent) {
	if !c.enabled {
		return
	}
	e.Control = c
	h, _ := c.Widget.(InputHandler)
	var cb func(*KeyEvent)
	switch e.Type {
	case EventKeyDown:
		if h != nil {
			h.OnKeyDown(c, e)
		}
		cb = c.OnKeyDown
	case EventKeyUp:
		if h != nil {
			h.OnKeyUp(c, e)
		}
		cb = c.OnKeyUp
	case EventKeyPress:
		if h != nil {
			h.OnKeyPress(c, e)
		}
		cb = c.OnKeyPress
	}
	if cb != nil {
		cb(e)
	}
	d.emitKey(c, e)
}
