package trellis

import "github.com/hajimehoshi/ebiten/v2"

// EntityStore is the interface for optional ECS integration. When set on a
// Display, events delivered to controls with a non-zero EntityID are
// forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	EntityID  uint32
	DisplayX  int
	DisplayY  int
	LocalX    int
	LocalY    int
	Button    MouseButton
	Modifiers KeyModifiers
	// Wheel fields (valid for EventWheel)
	WheelX float64
	WheelY float64
	// Keyboard fields (valid for EventKeyDown, EventKeyUp, EventKeyPress)
	Key  ebiten.Key
	Rune rune
	// Focused is the new state for EventFocusChanged.
	Focused bool
}

func (d *Display) emitMouse(c *Control, e *MouseEvent) {
	if d.store == nil || c.EntityID == 0 {
		return
	}
	d.store.EmitEvent(InteractionEvent{
		Type:      e.Type,
		EntityID:  c.EntityID,
		DisplayX:  e.DisplayX,
		DisplayY:  e.DisplayY,
		LocalX:    e.X,
		LocalY:    e.Y,
		Button:    e.Button,
		Modifiers: e.Modifiers,
		WheelX:    e.WheelX,
		WheelY:    e.WheelY,
	})
}

func (d *Display) emitKey(c *Control, e *KeyEvent) {
	if d.store == nil || c.EntityID == 0 {
		return
	}
	d.store.EmitEvent(InteractionEvent{
		Type:      e.Type,
		EntityID:  c.EntityID,
		Modifiers: e.Modifiers,
		Key:       e.Key,
		Rune:      e.Rune,
	})
}

func (d *Display) emitFocus(c *Control, focused bool) {
	if d.store == nil || c.EntityID == 0 {
		return
	}
	d.store.EmitEvent(InteractionEvent{
		Type:     EventFocusChanged,
		EntityID: c.EntityID,
		Focused:  focused,
	})
}
