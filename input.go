package trellis

// --- Handler registry ---

type mouseHandler struct {
	id uint32
	fn func(*MouseEvent)
}

type focusHandler struct {
	id uint32
	fn func(FocusEvent)
}

type handlerRegistry struct {
	pointerMove  []mouseHandler
	pointerDown  []mouseHandler
	focusChanged []focusHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered display-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventMouseMove:
		h.reg.pointerMove = removeHandler(h.reg.pointerMove, h.id)
	case EventMouseDown:
		h.reg.pointerDown = removeHandler(h.reg.pointerDown, h.id)
	case EventFocusChanged:
		h.reg.focusChanged = removeHandler(h.reg.focusChanged, h.id)
	}
}

type handler interface {
	mouseHandler | focusHandler
}

func handlerID[H handler](h H) uint32 {
	switch v := any(h).(type) {
	case mouseHandler:
		return v.id
	case focusHandler:
		return v.id
	}
	return 0
}

func removeHandler[H handler](s []H, id uint32) []H {
	for i := range s {
		if handlerID(s[i]) == id {
			copy(s[i:], s[i+1:])
			var zero H
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

// OnPointerMove registers a global observer called for every pointer move,
// before any control receives it. The event is a copy in display
// coordinates; its Control field is nil.
func (d *Display) OnPointerMove(fn func(*MouseEvent)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.pointerMove = append(d.handlers.pointerMove, mouseHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventMouseMove}
}

// OnPointerDown registers a global observer called for every button press
// before any control receives it.
func (d *Display) OnPointerDown(fn func(*MouseEvent)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.pointerDown = append(d.handlers.pointerDown, mouseHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventMouseDown}
}

// OnFocusChanged registers a global observer called on every focus
// transfer, before the controls involved are notified.
func (d *Display) OnFocusChanged(fn func(FocusEvent)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.focusChanged = append(d.handlers.focusChanged, focusHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventFocusChanged}
}

// --- Queries ---

// MouseOver returns the control under the pointer, or nil.
func (d *Display) MouseOver() *Control {
	return d.currentMouseOver
}

// CaptureAnchor returns the control that received the last unmatched
// pointer down, or nil.
func (d *Display) CaptureAnchor() *Control {
	return d.mouseDownInitialControl
}

// Pointer returns the last known pointer position in display coordinates.
func (d *Display) Pointer() Point {
	return d.pointer
}

// Modifiers returns the modifier keys attached to dispatched events.
func (d *Display) Modifiers() KeyModifiers {
	return d.modifiers
}

// SetModifiers sets the modifier keys attached to dispatched events. Update
// refreshes them from ebiten every frame.
func (d *Display) SetModifiers(m KeyModifiers) {
	d.modifiers = m
}

// hitTest returns the frontmost control at p, ignoring the root itself.
func (d *Display) hitTest(p Point) *Control {
	hit := d.root.FindControlOver(p)
	if hit == d.root {
		return nil
	}
	return hit
}

// --- Pointer routing ---

// PointerMove routes a pointer move at (x, y) in display coordinates. While
// the hovered control holds a button, moves keep going to it even when the
// pointer is over another control; enter/leave is deferred until release.
func (d *Display) PointerMove(x, y int) {
	d.pointer = Point{x, y}
	e := d.newMouseEvent(EventMouseMove, MouseButtonLeft)
	for _, h := range d.handlers.pointerMove {
		ev := e
		h.fn(&ev)
	}

	hit := d.hitTest(d.pointer)
	if prev := d.currentMouseOver; hit != prev {
		if prev != nil && prev.mouseButtonsDown != 0 {
			d.dispatchMouse(prev, e)
			return
		}
		d.setMouseOver(hit)
	}
	if hit != nil {
		d.dispatchMouse(hit, e)
	}
}

// PointerDown routes a button press. The hit control's top-level window is
// brought to front and the control becomes the capture anchor.
func (d *Display) PointerDown(x, y int, button MouseButton) {
	if p := (Point{x, y}); p != d.pointer || d.currentMouseOver == nil {
		d.PointerMove(x, y)
	}
	d.buttons |= button.Mask()
	e := d.newMouseEvent(EventMouseDown, button)
	for _, h := range d.handlers.pointerDown {
		ev := e
		h.fn(&ev)
	}

	target := d.currentMouseOver
	if target == nil {
		return
	}
	if tl := target.TopLevel(); tl != nil {
		d.root.BringToFront(tl)
	}
	d.mouseDownInitialControl = target
	target.mouseButtonsDown |= button.Mask()
	d.dispatchMouse(target, e)
}

// PointerUp routes a button release. A click follows only when the pointer
// is still over the control that received the press and that control was
// hovered throughout; focus moves to it before the click is delivered.
func (d *Display) PointerUp(x, y int, button MouseButton) {
	if p := (Point{x, y}); p != d.pointer {
		d.PointerMove(x, y)
	}
	d.buttons &^= button.Mask()
	e := d.newMouseEvent(EventMouseUp, button)

	target := d.currentMouseOver
	anchor := d.mouseDownInitialControl
	if target != nil {
		target.mouseButtonsDown &^= button.Mask()
		d.dispatchMouse(target, e)
	}
	if anchor != nil && anchor != target {
		anchor.mouseButtonsDown &^= button.Mask()
	}

	hit := d.hitTest(d.pointer)
	if target != nil && target == anchor && hit == anchor {
		d.SetFocus(target)
		d.dispatchMouse(target, d.newMouseEvent(EventClick, button))
	}
	d.mouseDownInitialControl = nil

	// A drag that ended over another control swaps hover now.
	if hit != d.currentMouseOver {
		d.setMouseOver(hit)
	}
}

// Wheel routes a wheel movement to the hovered control.
func (d *Display) Wheel(dx, dy float64) {
	target := d.currentMouseOver
	if target == nil {
		return
	}
	e := d.newMouseEvent(EventWheel, MouseButtonLeft)
	e.WheelX, e.WheelY = dx, dy
	d.dispatchMouse(target, e)
}

// setMouseOver swaps the hovered control, firing leave then enter.
// hidden drops the input state held inside c's subtree once c is hidden.
// Focus is cleared with the usual notifications and the hovered control
// gets a leave event.
func (d *Display) hidden(c *Control) {
	if f := d.currentFocus; f != nil && isAncestor(c, f) {
		d.SetFocus(nil)
	}
	if a := d.mouseDownInitialControl; a != nil && isAncestor(c, a) {
		a.mouseButtonsDown = 0
		d.mouseDownInitialControl = nil
	}
	if m := d.currentMouseOver; m != nil && isAncestor(c, m) {
		m.mouseButtonsDown = 0
		d.setMouseOver(nil)
	}
}

func (d *Display) setMouseOver(c *Control) {
	prev := d.currentMouseOver
	d.currentMouseOver = c
	if prev != nil {
		prev.hover = false
		prev.Invalidate()
		d.dispatchMouse(prev, d.newMouseEvent(EventMouseLeave, MouseButtonLeft))
	}
	if c != nil {
		c.hover = true
		c.Invalidate()
		d.dispatchMouse(c, d.newMouseEvent(EventMouseEnter, MouseButtonLeft))
	}
}

func (d *Display) newMouseEvent(t EventType, button MouseButton) MouseEvent {
	return MouseEvent{
		Type:      t,
		X:         d.pointer.X,
		Y:         d.pointer.Y,
		DisplayX:  d.pointer.X,
		DisplayY:  d.pointer.Y,
		Button:    button,
		Buttons:   d.buttons,
		Modifiers: d.modifiers,
	}
}

// dispatchMouse delivers e to c: skin hook first, then the control's
// callback, then the ECS bridge. Disabled controls receive nothing.
func (d *Display) dispatchMouse(c *Control, e MouseEvent) {
	if !c.enabled {
		return
	}
	e.Control = c
	local := c.DisplayToClient(Point{e.DisplayX, e.DisplayY})
	e.X, e.Y = local.X, local.Y

	h, _ := c.Widget.(InputHandler)
	var cb func(*MouseEvent)
	switch e.Type {
	case EventMouseDown:
		if h != nil {
			h.OnMouseDown(c, &e)
		}
		cb = c.OnMouseDown
	case EventMouseUp:
		if h != nil {
			h.OnMouseUp(c, &e)
		}
		cb = c.OnMouseUp
	case EventMouseMove:
		if h != nil {
			h.OnMouseMove(c, &e)
		}
		cb = c.OnMouseMove
	case EventClick:
		if h != nil {
			h.OnClick(c, &e)
		}
		cb = c.OnClick
	case EventWheel:
		if h != nil {
			h.OnWheel(c, &e)
		}
		cb = c.OnWheel
	case EventMouseEnter:
		if h != nil {
			h.OnMouseEnter(c, &e)
		}
		cb = c.OnMouseEnter
	case EventMouseLeave:
		if h != nil {
			h.OnMouseLeave(c, &e)
		}
		cb = c.OnMouseLeave
	}
	if cb != nil {
		cb(&e)
	}
	d.emitMouse(c, &e)
}
