package widgets

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/phanxgames/trellis"
)

// DefaultFace is used by skins whose Face is nil.
var DefaultFace font.Face = basicfont.Face7x13

// Label draws a single line of text. With AutoSize enabled on its control
// it sizes itself to the text plus chrome.
type Label struct {
	Text  string
	Color trellis.Color
	Face  font.Face
}

func (l *Label) face() font.Face {
	if l.Face == nil {
		return DefaultFace
	}
	return l.Face
}

// TextSize returns the pixel size of the label's text.
func (l *Label) TextSize() trellis.Size {
	return measureText(l.face(), l.Text)
}

// SizeControl sizes c to fit the text.
func (l *Label) SizeControl(c *trellis.Control, _ trellis.Size) {
	s := c.BoxModel().OuterSize(l.TextSize())
	b := c.Bounds()
	c.SetBoundsNoInvalidate(trellis.Rect{X: b.X, Y: b.Y, Width: s.Width, Height: s.Height})
}

// Paint draws the text at the top-left of the client area.
func (l *Label) Paint(_ *trellis.Control, client trellis.Rect, dc *trellis.DrawContext) {
	drawText(dc.WithClip(client), l.face(), l.Text, l.Color, client.Location())
}

// SetText changes the text, repainting c and resizing it when auto-sized.
func (l *Label) SetText(c *trellis.Control, text string) {
	if l.Text == text {
		return
	}
	l.Text = text
	if c.AutoSize() {
		c.InvalidateLayoutParent()
	}
	c.Invalidate()
}

// NewLabel returns an auto-sized, transparent label.
func NewLabel(name, text string, col trellis.Color) *trellis.Control {
	c := trellis.NewWidget(name, trellis.Rect{}, &Label{Text: text, Color: col})
	c.Class = "label"
	c.SetAutoSize(true)
	return c
}

func measureText(face font.Face, text string) trellis.Size {
	m := face.Metrics()
	return trellis.Size{
		Width:  font.MeasureString(face, text).Ceil(),
		Height: m.Height.Ceil(),
	}
}

// drawText draws text with its top-left corner at at.
func drawText(dc *trellis.DrawContext, face font.Face, text string, col trellis.Color, at trellis.Point) {
	if text == "" || col.Transparent() {
		return
	}
	d := font.Drawer{
		Dst:  dc.Image(),
		Src:  image.NewUniform(col.RGBA()),
		Face: face,
		Dot:  fixed.P(at.X, at.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}
