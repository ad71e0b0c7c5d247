package trellis

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DisplayOptions configures a new Display.
type DisplayOptions struct {
	Width, Height int

	// Backend draws the composited quads. Defaults to an EbitenBackend.
	Backend Backend

	// Theme is applied to every control as it is attached under the root.
	Theme ThemeApplier

	// ClearColor fills the screen before the quads are drawn.
	ClearColor Color
}

// Display is the root of a control tree. It owns the root control, one GPU
// texture per visible top-level control, the quad list handed to the
// backend, and all input routing state.
type Display struct {
	root    *Control
	backend Backend
	theme   ThemeApplier

	// ClearColor fills the screen in Draw.
	ClearColor Color

	// Compositor state
	quads            []Quad
	quadIndex        map[*Control]int
	textures         map[*Control]*layerTexture
	compositionDirty bool
	needsRender      bool
	stats            renderStats

	// Input state
	currentMouseOver        *Control
	currentFocus            *Control
	mouseDownInitialControl *Control
	pointer                 Point
	buttons                 MouseButtons
	modifiers               KeyModifiers
	handlers                handlerRegistry
	keyBuf                  []ebiten.Key
	runeBuf                 []rune

	store EntityStore
	debug bool

	// Test automation
	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string

	// ScreenshotDir is the directory Screenshot writes into.
	ScreenshotDir string
}

// NewDisplay creates a display with an empty root control covering
// opts.Width x opts.Height.
func NewDisplay(opts DisplayOptions) *Display {
	d := &Display{
		backend:       opts.Backend,
		theme:         opts.Theme,
		ClearColor:    opts.ClearColor,
		quadIndex:     make(map[*Control]int),
		textures:      make(map[*Control]*layerTexture),
		ScreenshotDir: "screenshots",
	}
	if d.backend == nil {
		d.backend = &EbitenBackend{}
	}
	root := NewControl("root", Rect{Width: opts.Width, Height: opts.Height})
	root.display = d
	root.needRedraw = false
	d.root = root
	return d
}

// Root returns the display's root control. Top-level windows are its
// direct children.
func (d *Display) Root() *Control {
	return d.root
}

// Add attaches a top-level control to the root.
func (d *Display) Add(c *Control) {
	d.root.Add(c)
}

// Size returns the display size.
func (d *Display) Size() Size {
	return d.root.bounds.Size()
}

// Resize changes the display size and re-runs the root layout.
func (d *Display) Resize(width, height int) {
	d.root.SetBounds(Rect{Width: width, Height: height})
}

// NeedsRender reports whether anything was invalidated since the last
// Render.
func (d *Display) NeedsRender() bool {
	return d.needsRender || d.compositionDirty
}

// Quads returns the current quad list, back to front. The returned slice
// MUST NOT be mutated.
func (d *Display) Quads() []Quad {
	return d.quads
}

// Render redraws dirty top-level controls, uploads the surfaces that
// changed and draws every quad with a single backend call.
func (d *Display) Render() {
	var t0 time.Time
	if d.debug {
		t0 = time.Now()
	}
	uploads := 0
	for _, tl := range d.root.childrenInverseZ {
		if !tl.visible {
			continue
		}
		if err := tl.syncSurface(); err != nil {
			Logger().Warn("trellis: skipping top-level", "control", tl.Name, "err", err)
			d.dropTexture(tl)
			continue
		}
		s := tl.levelSurface
		if s == nil {
			d.dropTexture(tl)
			continue
		}
		changed := tl.Redraw(nil, tl.bounds, tl.bounds, false)
		lt := d.ensureTexture(tl, s)
		if changed || lt.stale {
			lt.tex.WritePixels(s.Pix())
			lt.stale = false
			uploads++
		}
	}
	if d.compositionDirty {
		d.rebuildQuads()
	}
	d.backend.DrawQuads(d.quads)
	d.needsRender = false

	d.stats.frames++
	d.stats.uploads += uploads
	if d.debug {
		d.debugLog(uploads, time.Since(t0))
	}
}

// Draw renders the display onto screen. It is the ebiten Game.Draw step.
func (d *Display) Draw(screen *ebiten.Image) {
	screen.Fill(d.ClearColor.RGBA())
	if eb, ok := d.backend.(*EbitenBackend); ok {
		eb.Target = screen
	}
	d.Render()
	d.flushScreenshots()
}

// Snapshot composites the current quads on the CPU over the clear color.
// Call it after Render.
func (d *Display) Snapshot() *image.RGBA {
	s := d.Size()
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	dc := NewDrawContext(img)
	dc.FillRect(Rect{Width: s.Width, Height: s.Height}, d.ClearColor)
	for _, q := range d.quads {
		if q.Control == nil || q.Control.levelSurface == nil {
			continue
		}
		dc.DrawImage(q.Control.levelSurface.Image(), q.Bounds.Location())
	}
	return img
}

// SetEntityStore sets the optional ECS bridge.
func (d *Display) SetEntityStore(store EntityStore) {
	d.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, z-order lists are verified after every change, tree size
// warnings are logged and per-frame stats are logged at debug level.
func (d *Display) SetDebugMode(enabled bool) {
	d.debug = enabled
	globalDebug = enabled
}

// Dispose tears down the whole tree and releases every texture.
func (d *Display) Dispose() {
	d.root.teardown(d)
	for c := range d.textures {
		d.dropTexture(c)
	}
	d.quads = d.quads[:0]
	clear(d.quadIndex)
	d.currentFocus = nil
	d.currentMouseOver = nil
	d.mouseDownInitialControl = nil
}

// attached runs when c (and its subtree) is added under the root. The theme
// is applied with layout suspended on the whole subtree; the caller
// re-runs the layout once afterward.
func (d *Display) attached(c *Control) {
	if d.theme != nil {
		var nodes []*Control
		c.Walk(func(n *Control) bool {
			nodes = append(nodes, n)
			return true
		})
		saved := make([]bool, len(nodes))
		for i, n := range nodes {
			saved[i] = n.layoutSuspended
			n.layoutSuspended = true
		}
		for _, n := range nodes {
			d.theme.ApplyTheme(n)
		}
		for i, n := range nodes {
			n.layoutSuspended = saved[i]
		}
	}
	if c.isTopLevel() {
		d.compositionDirty = true
	}
	d.needsRender = true
}

// detached runs for each control leaving the tree, deepest first. Input
// references to it are cleared without notifications.
func (d *Display) detached(c *Control) {
	d.forget(c)
	d.dropTexture(c)
	if c.isTopLevel() {
		d.compositionDirty = true
	}
	d.needsRender = true
}

// unhooked runs when a subtree is moved to another parent. Its input state
// and GPU resources are reset; the new parent's layout reallocates
// surfaces.
func (d *Display) unhooked(c *Control) {
	c.Walk(func(n *Control) bool {
		d.detached(n)
		n.releaseSurface()
		n.hover = false
		n.focused = false
		n.mouseButtonsDown = 0
		return true
	})
}

// forget clears every input reference to c.
func (d *Display) forget(c *Control) {
	if d.currentFocus == c {
		d.currentFocus = nil
	}
	if d.currentMouseOver == c {
		d.currentMouseOver = nil
	}
	if d.mouseDownInitialControl == c {
		d.mouseDownInitialControl = nil
	}
}
