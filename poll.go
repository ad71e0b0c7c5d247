package trellis

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var polledButtons = [...]struct {
	eb ebiten.MouseButton
	mb MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// Update reads this frame's input from ebiten and routes it. It is the
// ebiten Game.Update step. Injected events take precedence: a frame that
// consumes one skips real input.
func (d *Display) Update() {
	if d.testRunner != nil {
		d.testRunner.step(d)
	}
	d.modifiers = readModifiers()
	if d.processInjectedInput() {
		return
	}
	d.pollPointer()
	d.pollKeyboard()
}

// readModifiers returns the current modifier key state from ebiten.
func readModifiers() KeyModifiers {
	var m KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= ModMeta
	}
	return m
}

func (d *Display) pollPointer() {
	x, y := ebiten.CursorPosition()
	if (Point{x, y}) != d.pointer {
		d.PointerMove(x, y)
	}
	for _, b := range polledButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			d.PointerDown(x, y, b.mb)
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			d.PointerUp(x, y, b.mb)
		}
	}
	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		d.Wheel(wx, wy)
	}
}

func (d *Display) pollKeyboard() {
	d.keyBuf = inpututil.AppendJustPressedKeys(d.keyBuf[:0])
	for _, k := range d.keyBuf {
		d.KeyDown(k)
	}
	d.keyBuf = inpututil.AppendJustReleasedKeys(d.keyBuf[:0])
	for _, k := range d.keyBuf {
		d.KeyUp(k)
	}
	d.runeBuf = ebiten.AppendInputChars(d.runeBuf[:0])
	for _, r := range d.runeBuf {
		d.KeyPress(r)
	}
}
