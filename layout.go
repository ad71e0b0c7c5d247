package trellis

// SuspendLayout defers layout requests on c until ResumeLayout. Calls do
// not nest: a single ResumeLayout ends the suspension.
func (c *Control) SuspendLayout() {
	c.layoutSuspended = true
}

// ResumeLayout ends a suspension and runs the deferred layout, if any was
// requested while suspended.
func (c *Control) ResumeLayout() {
	c.layoutSuspended = false
	if c.needLayout {
		c.PerformLayout()
	}
}

// LayoutSuspended reports whether layout requests are being deferred.
func (c *Control) LayoutSuspended() bool {
	return c.layoutSuspended
}

// PerformLayout sizes and places c's subtree. While suspended it only
// records that a layout is pending.
func (c *Control) PerformLayout() {
	if c.layoutSuspended {
		c.needLayout = true
		return
	}
	avail := c.ClientSize()
	if c.parent != nil {
		avail = c.parent.ClientSize()
	}
	c.PerformRecursiveSize(avail)
	c.PerformRecursiveLayout()
}

// InvalidateLayoutParent re-runs the layout of c's parent (or of c itself
// when it has no parent). Geometry changes on a child can alter the parent's
// auto-size and the residual area of every sibling docked after it.
func (c *Control) InvalidateLayoutParent() {
	if c.parent != nil {
		c.parent.InvalidateLayout()
		return
	}
	c.InvalidateLayout()
}

// PerformRecursiveSize is the bottom-up sizing pass. parentClient is the
// client size of c's parent. Descendants are sized before c so an auto-sized
// container sees its children's final sizes.
func (c *Control) PerformRecursiveSize(parentClient Size) {
	est := c.ClientSize()
	switch e, _ := c.dock.edge(); e {
	case edgeLeft, edgeRight:
		est.Height = max(parentClient.Height-2*c.dockingMargin-c.box.ChromeHeight(), 0)
	case edgeTop, edgeBottom:
		est.Width = max(parentClient.Width-2*c.dockingMargin-c.box.ChromeWidth(), 0)
	}

	own := c.ClientSize()
	for _, child := range c.childrenZ {
		if child.visible {
			child.PerformRecursiveSize(own)
		}
	}

	if !c.autoSize {
		return
	}
	if s, ok := c.Widget.(Sizable); ok {
		s.SizeControl(c, est)
	}
}

// PerformRecursiveLayout is the top-down placement pass. Visible children
// are docked in z-order into c's client rectangle, each consuming part of
// the remaining area, then lay out their own children. A skin implementing
// Layouter replaces docking for c's direct children.
func (c *Control) PerformRecursiveLayout() {
	area := c.ClientRect()
	if l, ok := c.Widget.(Layouter); ok {
		l.LayoutChildren(c, area)
	} else {
		for _, child := range c.childrenZ {
			if child.visible {
				area = child.dockInto(area)
			}
		}
	}
	for _, child := range c.childrenZ {
		if child.visible {
			child.PerformRecursiveLayout()
		}
	}

	c.needLayout = false
	c.layoutSuspended = false
	if err := c.syncSurface(); err != nil {
		Logger().Warn("trellis: surface allocation failed", "control", c.Name, "err", err)
	}
}

// dockInto places c inside area according to its dock type and returns the
// area left for the next sibling.
func (c *Control) dockInto(area Rect) Rect {
	switch c.dock {
	case DockNone:
		return area
	case DockFill:
		c.SetBoundsNoInvalidate(area)
		return Rect{X: area.X, Y: area.Y}
	case DockCenter:
		w := min(c.bounds.Width, area.Width)
		h := min(c.bounds.Height, area.Height)
		c.SetBoundsNoInvalidate(Rect{
			X:      area.X + (area.Width-w)/2,
			Y:      area.Y + (area.Height-h)/2,
			Width:  w,
			Height: h,
		})
		return area
	}

	e, align := c.dock.edge()
	m := c.dockingMargin
	switch e {
	case edgeLeft, edgeRight:
		w := c.stripThickness(area.Width, c.bounds.Width)
		y, h := alignSpan(area.Y, area.Height, c.bounds.Height, m, align)
		x := area.X + m
		if e == edgeRight {
			x = area.Right() - m - w
		}
		c.SetBoundsNoInvalidate(Rect{x, y, w, h})

		used := min(w+m, area.Width)
		if e == edgeLeft {
			return Rect{area.X + used, area.Y, area.Width - used, area.Height}
		}
		return Rect{area.X, area.Y, area.Width - used, area.Height}

	case edgeTop, edgeBottom:
		h := c.stripThickness(area.Height, c.bounds.Height)
		x, w := alignSpan(area.X, area.Width, c.bounds.Width, m, align)
		y := area.Y + m
		if e == edgeBottom {
			y = area.Bottom() - m - h
		}
		c.SetBoundsNoInvalidate(Rect{x, y, w, h})

		used := min(h+m, area.Height)
		if e == edgeTop {
			return Rect{area.X, area.Y + used, area.Width, area.Height - used}
		}
		return Rect{area.X, area.Y, area.Width, area.Height - used}
	}
	return area
}

// stripThickness returns the size of an edge strip across its docking axis:
// a fraction of the available length when dockPercent is set, otherwise
// the control's own size, clamped so the strip and its margin fit.
func (c *Control) stripThickness(avail, own int) int {
	t := own
	if c.dockPercent > 0 {
		t = int(float64(avail) * c.dockPercent)
	}
	return max(min(t, avail-c.dockingMargin), 0)
}

// alignSpan positions a docked control along its edge. Stretched controls
// span the strip minus the margin on both ends; the others keep their own
// length, clamped to the strip.
func alignSpan(start, length, own, margin int, a dockAlign) (pos, size int) {
	inner := max(length-2*margin, 0)
	if a == alignStretch {
		return start + margin, inner
	}
	size = min(own, inner)
	switch a {
	case alignNear:
		return start + margin, size
	case alignFar:
		return start + length - margin - size, size
	default:
		return start + (length-size)/2, size
	}
}
