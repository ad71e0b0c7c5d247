package trellis

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a GPU image holding one top-level control's surface.
// *ebiten.Image satisfies it.
type Texture interface {
	// WritePixels replaces the whole texture with premultiplied RGBA bytes.
	WritePixels(pix []byte)
	Deallocate()
}

// Quad is one textured rectangle handed to the backend per frame.
type Quad struct {
	Control *Control
	Bounds  Rect
	// Depth decreases toward the front so front quads win a less-than
	// depth test. Quads are also ordered back to front.
	Depth   float32
	Texture Texture
}

// Backend performs the GPU side of compositing.
type Backend interface {
	NewTexture(width, height int) Texture
	// DrawQuads draws every visible top-level quad for the frame, back to
	// front. It is called exactly once per Render.
	DrawQuads(quads []Quad)
}

// EbitenBackend draws quads onto an ebiten image. Display.Draw points
// Target at the screen before rendering.
type EbitenBackend struct {
	Target *ebiten.Image

	verts []ebiten.Vertex
	inds  []uint32
}

// NewTexture allocates an ebiten image.
func (b *EbitenBackend) NewTexture(width, height int) Texture {
	return ebiten.NewImage(width, height)
}

// DrawQuads issues one triangle draw per quad. Textures differ per quad,
// so they cannot share a single DrawTriangles call.
func (b *EbitenBackend) DrawQuads(quads []Quad) {
	if b.Target == nil {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	for i := range quads {
		q := &quads[i]
		img, ok := q.Texture.(*ebiten.Image)
		if !ok || q.Bounds.Empty() {
			continue
		}
		b.verts = appendQuadVertices(b.verts[:0], q.Bounds, img)
		b.inds = append(b.inds[:0], 0, 1, 2, 1, 3, 2)
		b.Target.DrawTriangles32(b.verts, b.inds, img, &op)
	}
}

// appendQuadVertices emits the four corners of r, sampling the whole image.
func appendQuadVertices(dst []ebiten.Vertex, r Rect, img *ebiten.Image) []ebiten.Vertex {
	sw := float32(img.Bounds().Dx())
	sh := float32(img.Bounds().Dy())
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.Right()), float32(r.Bottom())
	corners := [4][4]float32{
		{x0, y0, 0, 0},
		{x1, y0, sw, 0},
		{x0, y1, 0, sh},
		{x1, y1, sw, sh},
	}
	for _, c := range corners {
		dst = append(dst, ebiten.Vertex{
			DstX: c[0], DstY: c[1],
			SrcX: c[2], SrcY: c[3],
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		})
	}
	return dst
}

// layerTexture is the GPU copy of a top-level surface.
type layerTexture struct {
	tex   Texture
	w, h  int
	stale bool // allocated but never uploaded
}

// ensureTexture returns c's texture, reallocating it when the surface size
// changed. A new texture forces a quad rebuild and a full upload.
func (d *Display) ensureTexture(c *Control, s *Surface) *layerTexture {
	lt := d.textures[c]
	if lt != nil && lt.w == s.Width() && lt.h == s.Height() {
		return lt
	}
	if lt != nil {
		lt.tex.Deallocate()
	}
	lt = &layerTexture{
		tex:   d.backend.NewTexture(s.Width(), s.Height()),
		w:     s.Width(),
		h:     s.Height(),
		stale: true,
	}
	d.textures[c] = lt
	d.compositionDirty = true
	return lt
}

// dropTexture releases c's texture, if any.
func (d *Display) dropTexture(c *Control) {
	lt := d.textures[c]
	if lt == nil {
		return
	}
	lt.tex.Deallocate()
	delete(d.textures, c)
	d.compositionDirty = true
}

// rebuildQuads regenerates the quad list from the root's paint order. Only
// visible top-levels with a texture are included.
func (d *Display) rebuildQuads() {
	d.quads = d.quads[:0]
	clear(d.quadIndex)
	for _, tl := range d.root.childrenInverseZ {
		if !tl.visible {
			continue
		}
		lt := d.textures[tl]
		if lt == nil {
			continue
		}
		d.quadIndex[tl] = len(d.quads)
		d.quads = append(d.quads, Quad{Control: tl, Bounds: tl.bounds, Texture: lt.tex})
	}
	n := float32(len(d.quads) + 1)
	for i := range d.quads {
		d.quads[i].Depth = 1 - float32(i+1)/n
	}
	d.compositionDirty = false
	d.stats.rebuilds++
}

// updateQuadPosition moves a single top-level quad without rebuilding the
// list. It falls back to a full rebuild when the quad is not current.
func (d *Display) updateQuadPosition(c *Control) {
	d.needsRender = true
	if d.compositionDirty {
		return
	}
	i, ok := d.quadIndex[c]
	if !ok || d.quads[i].Bounds.Size() != c.bounds.Size() {
		d.compositionDirty = true
		return
	}
	d.quads[i].Bounds = c.bounds
}
