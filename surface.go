package trellis

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// MaxSurfaceSize is the largest width or height a Surface may have.
const MaxSurfaceSize = 8192

// Surface is a CPU raster owned by a single control. Top-level controls and
// controls with SetCacheSurface(true) paint their subtree into one; the
// display uploads top-level surfaces into GPU textures.
type Surface struct {
	img *image.RGBA
}

// NewSurface allocates a cleared surface. Sizes outside
// [1, MaxSurfaceSize] return an error wrapping ErrInvalidSurfaceSize.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 || width > MaxSurfaceSize || height > MaxSurfaceSize {
		return nil, &SurfaceError{Width: width, Height: height, Err: ErrInvalidSurfaceSize}
	}
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.img.Rect.Dx() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.img.Rect.Dy() }

// Bounds returns the full surface rectangle at the origin.
func (s *Surface) Bounds() Rect { return Rect{Width: s.Width(), Height: s.Height()} }

// Image returns the backing raster. Pixels are premultiplied RGBA.
func (s *Surface) Image() *image.RGBA { return s.img }

// Pix returns the raw premultiplied pixel bytes, row-major with no padding.
func (s *Surface) Pix() []byte { return s.img.Pix }

// Context returns a draw context covering the whole surface.
func (s *Surface) Context() *DrawContext {
	return &DrawContext{dst: s.img, clip: s.Bounds()}
}

// Dispose drops the backing raster.
func (s *Surface) Dispose() {
	s.img = nil
}

// DrawContext draws into a raster through a clip rectangle. Coordinates are
// those of the raster; all drawing is clipped.
type DrawContext struct {
	dst  *image.RGBA
	clip Rect
}

// NewDrawContext returns a context drawing into dst, clipped to its bounds.
func NewDrawContext(dst *image.RGBA) *DrawContext {
	b := dst.Bounds()
	return &DrawContext{dst: dst, clip: Rect{b.Min.X, b.Min.Y, b.Dx(), b.Dy()}}
}

// Clip returns the current clip rectangle.
func (dc *DrawContext) Clip() Rect { return dc.clip }

// WithClip returns a context whose clip is narrowed to r.
func (dc *DrawContext) WithClip(r Rect) *DrawContext {
	return &DrawContext{dst: dc.dst, clip: dc.clip.Intersect(r)}
}

// Image returns the clipped part of the destination raster. It keeps the
// raster's coordinates, so it can be handed to code drawing with absolute
// positions (font.Drawer, for one).
func (dc *DrawContext) Image() draw.Image {
	return dc.dst.SubImage(dc.clip.rectangle()).(*image.RGBA)
}

// Clear sets every pixel of r to transparent.
func (dc *DrawContext) Clear(r Rect) {
	r = dc.clip.Intersect(r)
	if r.Empty() {
		return
	}
	draw.Draw(dc.dst, r.rectangle(), image.Transparent, image.Point{}, draw.Src)
}

// FillRect blends a solid color over r.
func (dc *DrawContext) FillRect(r Rect, col Color) {
	r = dc.clip.Intersect(r)
	if r.Empty() || col.Transparent() {
		return
	}
	draw.Draw(dc.dst, r.rectangle(), image.NewUniform(col.RGBA()), image.Point{}, draw.Over)
}

// FillGradient fills r with a linear blend from one color to another. The
// first row (vertical) or column (horizontal) gets exactly from, the last
// exactly to.
func (dc *DrawContext) FillGradient(r Rect, from, to Color, dir GradientDirection) {
	if dir == GradientNone {
		dc.FillRect(r, from)
		return
	}
	n := r.Height
	if dir == GradientHorizontal {
		n = r.Width
	}
	for i := range n {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		line := Rect{r.X, r.Y + i, r.Width, 1}
		if dir == GradientHorizontal {
			line = Rect{r.X + i, r.Y, 1, r.Height}
		}
		dc.FillRect(line, from.Lerp(to, t))
	}
}

// StrokeRect draws a border of the given width just inside r.
func (dc *DrawContext) StrokeRect(r Rect, width int, col Color) {
	if width <= 0 || r.Empty() {
		return
	}
	w := min(width, r.Width)
	h := min(width, r.Height)
	dc.FillRect(Rect{r.X, r.Y, r.Width, h}, col)
	dc.FillRect(Rect{r.X, r.Bottom() - h, r.Width, h}, col)
	dc.FillRect(Rect{r.X, r.Y + h, w, r.Height - 2*h}, col)
	dc.FillRect(Rect{r.Right() - w, r.Y + h, w, r.Height - 2*h}, col)
}

// DrawImage blends src over the destination with src's top-left corner at at.
func (dc *DrawContext) DrawImage(src image.Image, at Point) {
	sb := src.Bounds()
	r := dc.clip.Intersect(Rect{at.X, at.Y, sb.Dx(), sb.Dy()})
	if r.Empty() {
		return
	}
	sp := sb.Min.Add(image.Pt(r.X-at.X, r.Y-at.Y))
	draw.Draw(dc.dst, r.rectangle(), src, sp, draw.Over)
}

// DrawScaled blends src over dst, stretched to fill dst with bilinear
// filtering.
func (dc *DrawContext) DrawScaled(src image.Image, dst Rect) {
	if dc.clip.Intersect(dst).Empty() {
		return
	}
	target := dc.dst.SubImage(dc.clip.rectangle()).(*image.RGBA)
	draw.BiLinear.Scale(target, dst.rectangle(), src, src.Bounds(), draw.Over, nil)
}

// Set writes a single pixel, ignoring points outside the clip.
func (dc *DrawContext) Set(p Point, col Color) {
	if !dc.clip.Contains(p) {
		return
	}
	dc.dst.SetRGBA(p.X, p.Y, col.RGBA())
}

// At returns the premultiplied pixel at p.
func (dc *DrawContext) At(p Point) color.RGBA {
	return dc.dst.RGBAAt(p.X, p.Y)
}

func (r Rect) rectangle() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// --- Control surface ownership ---

// wantsSurface reports whether c paints into a surface of its own.
func (c *Control) wantsSurface() bool {
	return c.cacheSurface || c.isTopLevel()
}

// syncSurface makes the cached surface match the control's outer size. It
// runs after every layout pass. A resized surface is reallocated, and its
// content is not preserved.
func (c *Control) syncSurface() error {
	if !c.wantsSurface() || c.FindDisplay() == nil {
		c.releaseSurface()
		return nil
	}
	w, h := c.bounds.Width, c.bounds.Height
	if w <= 0 || h <= 0 {
		c.releaseSurface()
		return nil
	}
	if s := c.levelSurface; s != nil && s.Width() == w && s.Height() == h {
		return nil
	}
	c.releaseSurface()
	s, err := NewSurface(w, h)
	if err != nil {
		var se *SurfaceError
		if errors.As(err, &se) {
			se.Control = c.Name
		}
		return err
	}
	c.levelSurface = s
	c.needRedraw = true
	if d := c.FindDisplay(); d != nil {
		d.needsRender = true
	}
	return nil
}

// releaseSurface disposes the cached surface, if any.
func (c *Control) releaseSurface() {
	if c.levelSurface == nil {
		return
	}
	c.levelSurface.Dispose()
	c.levelSurface = nil
}
