package widgets

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/trellis"
)

// fpsInterval is how often the readout refreshes, in seconds.
const fpsInterval = 0.5

// FPSLabel is a Label showing ebiten's measured FPS and TPS. Call Update
// once per tick; the text is refreshed about twice a second, so the
// control is not repainted every frame.
type FPSLabel struct {
	Label

	elapsed float64
	sample  func() (fps, tps float64)
}

// Update advances the refresh timer by dt seconds.
func (f *FPSLabel) Update(c *trellis.Control, dt float64) {
	f.elapsed += dt
	if f.elapsed < fpsInterval {
		return
	}
	f.elapsed = 0
	fps, tps := f.read()
	f.SetText(c, fmt.Sprintf("FPS: %.1f TPS: %.1f", fps, tps))
}

func (f *FPSLabel) read() (float64, float64) {
	if f.sample != nil {
		return f.sample()
	}
	return ebiten.ActualFPS(), ebiten.ActualTPS()
}

// NewFPSLabel returns a top-most, auto-sized readout with a translucent
// background.
func NewFPSLabel(name string) *trellis.Control {
	f := &FPSLabel{Label: Label{Text: "FPS: 0.0 TPS: 0.0", Color: trellis.ColorWhite}}
	c := trellis.NewWidget(name, trellis.Rect{}, f)
	c.Class = "fps"
	c.SetPadding(trellis.UniformSpacing(2))
	c.SetBackground(trellis.Color{A: 0.5})
	c.SetTopMost(true)
	c.SetAutoSize(true)
	return c
}
