package trellis

import "github.com/hajimehoshi/ebiten/v2"

type injectKind uint8

const (
	injectPress injectKind = iota
	injectMove
	injectRelease
	injectKey
	injectChar
)

// syntheticEvent is a single queued input event. Coordinates are display
// coordinates, the same space real cursor positions arrive in.
type syntheticEvent struct {
	kind   injectKind
	x, y   int
	button MouseButton
	key    ebiten.Key
	char   rune
}

// InjectPress queues a left-button press at (x, y). Each queued event is
// consumed by one Update call.
func (d *Display) InjectPress(x, y int) {
	d.injectQueue = append(d.injectQueue, syntheticEvent{kind: injectPress, x: x, y: y})
}

// InjectMove queues a pointer move to (x, y). Between InjectPress and
// InjectRelease it simulates a drag.
func (d *Display) InjectMove(x, y int) {
	d.injectQueue = append(d.injectQueue, syntheticEvent{kind: injectMove, x: x, y: y})
}

// InjectRelease queues a left-button release at (x, y).
func (d *Display) InjectRelease(x, y int) {
	d.injectQueue = append(d.injectQueue, syntheticEvent{kind: injectRelease, x: x, y: y})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (d *Display) InjectClick(x, y int) {
	d.InjectPress(x, y)
	d.InjectRelease(x, y)
}

// InjectDrag queues a press at the start point, frames-2 interpolated moves
// and a release at the end point. Minimum frames is 2.
func (d *Display) InjectDrag(fromX, fromY, toX, toY, frames int) {
	frames = max(frames, 2)
	d.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + int(float64(toX-fromX)*t)
		y := fromY + int(float64(toY-fromY)*t)
		d.InjectMove(x, y)
	}
	d.InjectRelease(toX, toY)
}

// InjectKey queues a key press and release. Consumes one frame.
func (d *Display) InjectKey(key ebiten.Key) {
	d.injectQueue = append(d.injectQueue, syntheticEvent{kind: injectKey, key: key})
}

// InjectText queues one typed character per rune of s, one per frame.
func (d *Display) InjectText(s string) {
	for _, r := range s {
		d.injectQueue = append(d.injectQueue, syntheticEvent{kind: injectChar, char: r})
	}
}

// PendingInjections returns the number of queued synthetic events.
func (d *Display) PendingInjections() int {
	return len(d.injectQueue)
}

// processInjectedInput pops one event from the queue and routes it. It
// reports whether an event was consumed, in which case real input is
// skipped for the frame.
func (d *Display) processInjectedInput() bool {
	if len(d.injectQueue) == 0 {
		return false
	}
	evt := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]

	switch evt.kind {
	case injectPress:
		d.PointerDown(evt.x, evt.y, evt.button)
	case injectMove:
		d.PointerMove(evt.x, evt.y)
	case injectRelease:
		d.PointerUp(evt.x, evt.y, evt.button)
	case injectKey:
		d.KeyDown(evt.key)
		d.KeyUp(evt.key)
	case injectChar:
		d.KeyPress(evt.char)
	}
	return true
}
