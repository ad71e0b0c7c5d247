package widgets

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"github.com/phanxgames/trellis"
)

// Button is a push button skin. Its background follows the pointer state
// and Clicked runs on a mouse click or on Enter/Space while focused.
type Button struct {
	trellis.BaseInputHandler

	Text      string
	TextColor trellis.Color
	Face      font.Face

	Normal  trellis.Color
	Hovered trellis.Color
	Pressed trellis.Color

	Clicked func()

	pressed bool
}

func (b *Button) face() font.Face {
	if b.Face == nil {
		return DefaultFace
	}
	return b.Face
}

// IsPressed reports whether the left button is held on the button.
func (b *Button) IsPressed() bool { return b.pressed }

// SizeControl fits the button around its text.
func (b *Button) SizeControl(c *trellis.Control, _ trellis.Size) {
	s := c.BoxModel().OuterSize(measureText(b.face(), b.Text))
	r := c.Bounds()
	c.SetBoundsNoInvalidate(trellis.Rect{X: r.X, Y: r.Y, Width: s.Width, Height: s.Height})
}

// Paint centers the text in the client area.
func (b *Button) Paint(_ *trellis.Control, client trellis.Rect, dc *trellis.DrawContext) {
	ts := measureText(b.face(), b.Text)
	at := trellis.Point{
		X: client.X + (client.Width-ts.Width)/2,
		Y: client.Y + (client.Height-ts.Height)/2,
	}
	drawText(dc.WithClip(client), b.face(), b.Text, b.TextColor, at)
}

func (b *Button) OnMouseDown(c *trellis.Control, e *trellis.MouseEvent) {
	if e.Button != trellis.MouseButtonLeft {
		return
	}
	b.pressed = true
	b.sync(c)
}

func (b *Button) OnMouseUp(c *trellis.Control, e *trellis.MouseEvent) {
	if e.Button != trellis.MouseButtonLeft {
		return
	}
	b.pressed = false
	b.sync(c)
}

func (b *Button) OnMouseEnter(c *trellis.Control, _ *trellis.MouseEvent) { b.sync(c) }
func (b *Button) OnMouseLeave(c *trellis.Control, _ *trellis.MouseEvent) { b.sync(c) }

func (b *Button) OnClick(_ *trellis.Control, e *trellis.MouseEvent) {
	if e.Button != trellis.MouseButtonLeft {
		return
	}
	b.fire()
	e.Handled = true
}

func (b *Button) OnKeyDown(_ *trellis.Control, e *trellis.KeyEvent) {
	switch e.Key {
	case ebiten.KeyEnter, ebiten.KeySpace:
		b.fire()
		e.Handled = true
	}
}

func (b *Button) fire() {
	if b.Clicked != nil {
		b.Clicked()
	}
}

// sync picks the background for the current state.
func (b *Button) sync(c *trellis.Control) {
	col := b.Normal
	switch {
	case b.pressed:
		col = b.Pressed
	case c.Hover():
		col = b.Hovered
	}
	c.SetBackground(col)
}

// Button colors used by NewButton.
var (
	ButtonNormal  = trellis.Color{R: 0.25, G: 0.27, B: 0.32, A: 1}
	ButtonHovered = trellis.Color{R: 0.32, G: 0.35, B: 0.42, A: 1}
	ButtonPressed = trellis.Color{R: 0.18, G: 0.2, B: 0.24, A: 1}
)

// NewButton returns a focusable button showing text.
func NewButton(name, text string, clicked func()) *trellis.Control {
	b := &Button{
		Text:      text,
		TextColor: trellis.ColorWhite,
		Normal:    ButtonNormal,
		Hovered:   ButtonHovered,
		Pressed:   ButtonPressed,
		Clicked:   clicked,
	}
	c := trellis.NewWidget(name, trellis.Rect{Width: 80, Height: 24}, b)
	c.Class = "button"
	c.SetFocusable(true)
	c.SetPadding(trellis.Spacing{Left: 6, Top: 4, Right: 6, Bottom: 4})
	c.SetBackground(b.Normal)
	return c
}
