package trellis

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	Debug     bool
}

// game adapts a Display to ebiten.Game.
type game struct {
	d *Display
}

func (g *game) Update() error {
	g.d.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.d.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if s := g.d.Size(); s.Width != outsideWidth || s.Height != outsideHeight {
		g.d.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and drives d until the window is closed.
func Run(d *Display, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		s := d.Size()
		cfg.Width, cfg.Height = s.Width, s.Height
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.Debug {
		d.SetDebugMode(true)
	}
	return ebiten.RunGame(&game{d: d})
}
