package trellis

import "math"

// Focus returns the control holding keyboard focus, or nil.
func (d *Display) Focus() *Control {
	return d.currentFocus
}

// CanFocus reports whether c may take keyboard focus on this display.
func (d *Display) CanFocus(c *Control) bool {
	return c != nil && c.visible && c.enabled && c.focusable && !c.rejectFocus &&
		c.FindDisplay() == d
}

// SetFocus moves keyboard focus to c, or clears it when c is nil. A control
// that cannot take focus (disabled, not focusable, rejecting focus or not
// under this display) leaves focus unchanged. Observers registered with
// OnFocusChanged run first, then the old control loses focus, then c gains
// it.
func (d *Display) SetFocus(c *Control) {
	if c == d.currentFocus {
		return
	}
	if c != nil && !d.CanFocus(c) {
		return
	}
	old := d.currentFocus
	for _, h := range d.handlers.focusChanged {
		h.fn(FocusEvent{Old: old, New: c})
	}
	d.currentFocus = c
	if old != nil {
		old.focused = false
		old.Invalidate()
		d.dispatchFocus(old, false)
	}
	if c != nil {
		c.focused = true
		c.Invalidate()
		d.dispatchFocus(c, true)
	}
}

func (d *Display) dispatchFocus(c *Control, focused bool) {
	if h, ok := c.Widget.(InputHandler); ok {
		h.OnFocusChanged(c, focused)
	}
	if c.OnFocusChanged != nil {
		c.OnFocusChanged(focused)
	}
	d.emitFocus(c, focused)
}

// FocusNext moves focus to the next (or previous) tab stop among the
// focused control's siblings, wrapping around. Without a focused control
// the children of the frontmost visible top-level are used. It reports
// whether focus moved.
func (d *Display) FocusNext(forward bool) bool {
	scope := d.tabScope()
	if scope == nil {
		return false
	}
	start := -1
	if !forward {
		start = math.MaxInt
	}
	cur := start
	if f := d.currentFocus; f != nil && f.parent == scope {
		cur = f.tabOrder
	}
	next := scope.FindNextTabChild(cur, forward)
	if next == nil {
		next = scope.FindNextTabChild(start, forward)
	}
	if next == nil || next == d.currentFocus {
		return false
	}
	d.SetFocus(next)
	return d.currentFocus == next
}

func (d *Display) tabScope() *Control {
	if f := d.currentFocus; f != nil && f.parent != nil {
		return f.parent
	}
	for _, tl := range d.root.childrenZ {
		if tl.visible {
			return tl
		}
	}
	return nil
}
