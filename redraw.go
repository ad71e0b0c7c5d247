package trellis

// Invalidate marks c for repaint. A fully transparent control also
// invalidates its parent, which must repaint the area behind it; so does a
// nested surface owner, whose pixels are composited into the parent's
// surface. The display is always flagged for a render.
func (c *Control) Invalidate() {
	c.needRedraw = true
	if p := c.parent; p != nil && p.display == nil {
		if c.IsTransparent() || c.levelSurface != nil {
			p.Invalidate()
			return
		}
	}
	if d := c.FindDisplay(); d != nil {
		d.needsRender = true
	}
}

// InvalidateLayout marks c for repaint and re-runs its layout.
func (c *Control) InvalidateLayout() {
	c.Invalidate()
	c.PerformLayout()
}

// Redraw repaints the dirty parts of c's subtree. bounds is c's outer
// rectangle and clip the visible part of it, both in dc's coordinates. A
// control that owns a surface ignores dc and draws into its surface, then
// paints the result back into dc when paint-through is enabled. force
// repaints the whole subtree regardless of dirty flags.
//
// Chrome is painted first, then the children back to front, then the
// skin's Paint hook whenever anything in the subtree was repainted. A child
// that repaints forces every sibling above it that overlaps it to repaint
// too. A control whose surface could not be allocated is skipped.
//
// Redraw reports whether anything in the subtree was repainted.
func (c *Control) Redraw(dc *DrawContext, bounds, clip Rect, force bool) bool {
	if !c.visible || (c.wantsSurface() && c.levelSurface == nil) {
		return false
	}
	outer, outerBounds, outerClip := dc, bounds, clip
	if c.levelSurface != nil {
		dc = c.levelSurface.Context()
		bounds = c.levelSurface.Bounds()
		clip = bounds
	}
	if dc == nil {
		return false
	}

	changed := false
	if c.needRedraw || force {
		c.needRedraw = false
		force = true
		changed = true
		if c.levelSurface != nil {
			dc.Clear(bounds)
		}
		c.paintChrome(dc.WithClip(clip), bounds)
	}

	client := c.box.ClientArea(bounds)
	var repainted Rect
	for _, child := range c.childrenInverseZ {
		if !child.visible {
			continue
		}
		cb := child.bounds.Offset(client.X, client.Y)
		cc := clip.Intersect(cb).Intersect(client)
		if cc.Empty() && child.levelSurface == nil {
			continue
		}
		covered := !repainted.Empty() && !cc.Intersect(repainted).Empty()
		if child.Redraw(dc, cb, cc, force || covered) {
			changed = true
			repainted = repainted.Union(cc)
		}
	}

	if changed {
		if p, ok := c.Widget.(Paintable); ok {
			p.Paint(c, client, dc.WithClip(clip))
		}
	}

	if changed && c.levelSurface != nil && c.paintThrough && outer != nil {
		c.compositeInto(outer.WithClip(outerClip), outerBounds)
	}
	return changed
}

// paintChrome fills the background and border inside the margin.
func (c *Control) paintChrome(dc *DrawContext, bounds Rect) {
	br := c.box.BorderRect(bounds)
	if c.gradient != GradientNone {
		dc.FillGradient(br, c.background, c.backgroundEnd, c.gradient)
	} else {
		dc.FillRect(br, c.background)
	}
	if c.box.BorderWidth > 0 {
		dc.StrokeRect(br, c.box.BorderWidth, c.borderColor)
	}
}

// compositeInto composites c's surface into an ancestor context. area is
// c's outer rectangle in that context.
func (c *Control) compositeInto(dc *DrawContext, area Rect) {
	if pt, ok := c.Widget.(PaintThrougher); ok {
		pt.PaintThrough(c, area, dc)
		return
	}
	dc.WithClip(c.box.BorderRect(area)).DrawImage(c.levelSurface.Image(), area.Location())
}
