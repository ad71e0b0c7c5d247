package trellis

import "github.com/hajimehoshi/ebiten/v2"

// A widget skin is any value stored in Control.Widget. The core checks it
// for the capability interfaces below and calls whichever it implements.

// Sizable is implemented by skins that compute a natural size from their
// content. SizeControl runs during the bottom-up layout pass when the
// control has AutoSize enabled; it should call SetBoundsNoInvalidate.
type Sizable interface {
	SizeControl(c *Control, estimated Size)
}

// Paintable is implemented by skins that draw their own content. client is
// the control's client rectangle in dc's coordinate space.
type Paintable interface {
	Paint(c *Control, client Rect, dc *DrawContext)
}

// PaintThrougher is implemented by skins that own a cached surface and want
// to control how it is composited back into the ancestor surface. area is
// the control's bounds in the ancestor's coordinates; dc is clipped to the
// ancestor's clip.
type PaintThrougher interface {
	PaintThrough(c *Control, area Rect, dc *DrawContext)
}

// Layouter is implemented by containers that place their children
// themselves instead of using docking (grids, stacks).
type Layouter interface {
	LayoutChildren(c *Control, area Rect)
}

// InputHandler is implemented by skins that react to input. The core has
// already updated the control's hover, button and focus state when a hook
// runs. Embed BaseInputHandler to implement only the hooks you need.
type InputHandler interface {
	OnMouseDown(c *Control, e *MouseEvent)
	OnMouseUp(c *Control, e *MouseEvent)
	OnMouseMove(c *Control, e *MouseEvent)
	OnClick(c *Control, e *MouseEvent)
	OnWheel(c *Control, e *MouseEvent)
	OnMouseEnter(c *Control, e *MouseEvent)
	OnMouseLeave(c *Control, e *MouseEvent)
	OnKeyDown(c *Control, e *KeyEvent)
	OnKeyUp(c *Control, e *KeyEvent)
	OnKeyPress(c *Control, e *KeyEvent)
	OnFocusChanged(c *Control, focused bool)
}

// BaseInputHandler is a no-op InputHandler meant for embedding.
type BaseInputHandler struct{}

func (BaseInputHandler) OnMouseDown(*Control, *MouseEvent)  {}
func (BaseInputHandler) OnMouseUp(*Control, *MouseEvent)    {}
func (BaseInputHandler) OnMouseMove(*Control, *MouseEvent)  {}
func (BaseInputHandler) OnClick(*Control, *MouseEvent)      {}
func (BaseInputHandler) OnWheel(*Control, *MouseEvent)      {}
func (BaseInputHandler) OnMouseEnter(*Control, *MouseEvent) {}
func (BaseInputHandler) OnMouseLeave(*Control, *MouseEvent) {}
func (BaseInputHandler) OnKeyDown(*Control, *KeyEvent)      {}
func (BaseInputHandler) OnKeyUp(*Control, *KeyEvent)        {}
func (BaseInputHandler) OnKeyPress(*Control, *KeyEvent)     {}
func (BaseInputHandler) OnFocusChanged(*Control, bool)      {}

// MouseEvent carries pointer event data. X and Y are relative to the
// receiving control's client origin; DisplayX and DisplayY are relative to
// the display root.
type MouseEvent struct {
	Type      EventType
	Control   *Control
	X, Y      int
	DisplayX  int
	DisplayY  int
	Button    MouseButton
	Buttons   MouseButtons
	WheelX    float64
	WheelY    float64
	Modifiers KeyModifiers

	// Handled stops further propagation when set by a handler.
	Handled bool
}

// KeyEvent carries keyboard event data. Rune is set for EventKeyPress only.
// Control is the receiving control; Target is the focused control, which
// differs from Control while the owning form gets first refusal.
type KeyEvent struct {
	Type      EventType
	Control   *Control
	Target    *Control
	Key       ebiten.Key
	Rune      rune
	Modifiers KeyModifiers

	// Handled stops further propagation when set by a handler.
	Handled bool
}

// FocusEvent describes a focus transfer. Either side may be nil.
type FocusEvent struct {
	Old, New *Control
}
