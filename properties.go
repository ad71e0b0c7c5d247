package trellis

// --- Geometry ---

// Bounds returns the owning rectangle in parent client coordinates,
// including margin, border and padding.
func (c *Control) Bounds() Rect { return c.bounds }

// Location returns the top-left corner of Bounds.
func (c *Control) Location() Point { return c.bounds.Location() }

// Size returns the outer size.
func (c *Control) Size() Size { return c.bounds.Size() }

// BoxModel returns the margin, padding and border width.
func (c *Control) BoxModel() BoxModel { return c.box }

// Margin returns the outer spacing.
func (c *Control) Margin() Spacing { return c.box.Margin }

// Padding returns the inner spacing.
func (c *Control) Padding() Spacing { return c.box.Padding }

// BorderWidth returns the border thickness in pixels.
func (c *Control) BorderWidth() int { return c.box.BorderWidth }

// ClientSize returns the size of the client area.
func (c *Control) ClientSize() Size { return c.box.ClientSize(c.bounds.Size()) }

// ClientRect returns the client area in local client space; its origin is
// always (0, 0).
func (c *Control) ClientRect() Rect {
	cs := c.ClientSize()
	return Rect{Width: cs.Width, Height: cs.Height}
}

// SetBounds moves and resizes the control. A size change re-runs the
// parent's layout; a pure move only repositions (a cheap quad update for
// top-level controls).
func (c *Control) SetBounds(r Rect) {
	if r == c.bounds {
		return
	}
	old := c.bounds
	c.bounds = r
	if old.Size() != r.Size() {
		c.resized(old.Size())
		c.InvalidateLayoutParent()
		return
	}
	c.moved()
}

// SetLocation moves the control without resizing it.
func (c *Control) SetLocation(x, y int) {
	c.SetBounds(Rect{x, y, c.bounds.Width, c.bounds.Height})
}

// SetSize resizes the control keeping its location.
func (c *Control) SetSize(width, height int) {
	c.SetBounds(Rect{c.bounds.X, c.bounds.Y, width, height})
}

// SetClientSize resizes the control so its client area has the given size.
func (c *Control) SetClientSize(width, height int) {
	s := c.box.OuterSize(Size{width, height})
	c.SetSize(s.Width, s.Height)
}

// SetBoundsNoInvalidate changes the bounds without re-running layout or
// invalidating ancestors. Layout passes and Sizable skins use it.
func (c *Control) SetBoundsNoInvalidate(r Rect) {
	if r == c.bounds {
		return
	}
	old := c.bounds
	c.bounds = r
	if old.Size() != r.Size() {
		c.resized(old.Size())
		return
	}
	if c.isTopLevel() {
		c.parent.display.updateQuadPosition(c)
	}
}

func (c *Control) resized(old Size) {
	c.needRedraw = true
	if c.OnResize != nil {
		c.OnResize(old, c.bounds.Size())
	}
}

// moved handles a location-only change.
func (c *Control) moved() {
	if c.isTopLevel() {
		c.parent.display.updateQuadPosition(c)
		return
	}
	if c.parent != nil {
		// The old and new area are both painted by the parent.
		c.parent.Invalidate()
	}
}

// SetMargin sets the outer spacing and re-runs the parent's layout.
func (c *Control) SetMargin(m Spacing) {
	if c.box.Margin == m {
		return
	}
	c.box.Margin = m
	c.InvalidateLayoutParent()
}

// SetPadding sets the inner spacing and re-runs the parent's layout.
func (c *Control) SetPadding(p Spacing) {
	if c.box.Padding == p {
		return
	}
	c.box.Padding = p
	c.InvalidateLayoutParent()
}

// SetBorderWidth sets the border thickness and re-runs the parent's layout.
func (c *Control) SetBorderWidth(w int) {
	if w < 0 {
		w = 0
	}
	if c.box.BorderWidth == w {
		return
	}
	c.box.BorderWidth = w
	c.InvalidateLayoutParent()
}

// --- Appearance ---

// BorderColor returns the border color.
func (c *Control) BorderColor() Color { return c.borderColor }

// SetBorderColor sets the border color.
func (c *Control) SetBorderColor(col Color) {
	if c.borderColor == col {
		return
	}
	c.borderColor = col
	c.Invalidate()
}

// Background returns the background start color.
func (c *Control) Background() Color { return c.background }

// SetBackground sets a flat background color.
func (c *Control) SetBackground(col Color) {
	if c.background == col && c.gradient == GradientNone {
		return
	}
	// Invalidate before and after so a transparent -> opaque change still
	// repaints the parent behind the old pixels.
	c.Invalidate()
	c.background = col
	c.gradient = GradientNone
	c.Invalidate()
}

// SetGradient sets a two-color background.
func (c *Control) SetGradient(from, to Color, dir GradientDirection) {
	c.Invalidate()
	c.background = from
	c.backgroundEnd = to
	c.gradient = dir
	c.Invalidate()
}

// Gradient returns the background colors and gradient direction.
func (c *Control) Gradient() (from, to Color, dir GradientDirection) {
	return c.background, c.backgroundEnd, c.gradient
}

// IsTransparent reports whether the background is fully transparent.
func (c *Control) IsTransparent() bool {
	if c.gradient == GradientNone {
		return c.background.Transparent()
	}
	return c.background.Transparent() && c.backgroundEnd.Transparent()
}

// --- Docking ---

// Dock returns the docking rule.
func (c *Control) Dock() DockType { return c.dock }

// DockPercent returns the fraction of the parent's client size used when
// docked to an edge (0 means the control's own size).
func (c *Control) DockPercent() float64 { return c.dockPercent }

// DockingMargin returns the gap kept between a docked control and its edge.
func (c *Control) DockingMargin() int { return c.dockingMargin }

// SetDock sets the docking rule and re-runs the parent's layout.
func (c *Control) SetDock(d DockType) {
	if c.dock == d {
		return
	}
	c.dock = d
	c.InvalidateLayoutParent()
}

// SetDockPercent sets the docked strip size as a fraction in [0, 1].
func (c *Control) SetDockPercent(p float64) {
	p = clamp01(p)
	if c.dockPercent == p {
		return
	}
	c.dockPercent = p
	c.InvalidateLayoutParent()
}

// SetDockingMargin sets the docking margin.
func (c *Control) SetDockingMargin(m int) {
	if m < 0 {
		m = 0
	}
	if c.dockingMargin == m {
		return
	}
	c.dockingMargin = m
	c.InvalidateLayoutParent()
}

// Row returns the table-layout row hint.
func (c *Control) Row() int { return c.row }

// Column returns the table-layout column hint.
func (c *Control) Column() int { return c.column }

// SetRow sets the table-layout row hint.
func (c *Control) SetRow(r int) {
	if c.row == r {
		return
	}
	c.row = r
	c.InvalidateLayoutParent()
}

// SetColumn sets the table-layout column hint.
func (c *Control) SetColumn(col int) {
	if c.column == col {
		return
	}
	c.column = col
	c.InvalidateLayoutParent()
}

// --- State flags ---

// Visible reports whether the control is shown.
func (c *Control) Visible() bool { return c.visible }

// SetVisible shows or hides the control. Hiding it releases focus, hover
// and pointer capture held anywhere in its subtree.
func (c *Control) SetVisible(v bool) {
	if c.visible == v {
		return
	}
	c.visible = v
	if !v {
		if d := c.FindDisplay(); d != nil {
			d.hidden(c)
		}
	}
	if c.isTopLevel() {
		c.parent.display.compositionDirty = true
	}
	if c.parent != nil {
		c.parent.Invalidate()
	}
	c.InvalidateLayoutParent()
}

// Enabled reports whether the control accepts input.
func (c *Control) Enabled() bool { return c.enabled }

// SetEnabled enables or disables the control. Disabling the focused
// control clears focus.
func (c *Control) SetEnabled(e bool) {
	if c.enabled == e {
		return
	}
	c.enabled = e
	if !e && c.focused {
		if d := c.FindDisplay(); d != nil {
			d.SetFocus(nil)
		}
	}
	c.Invalidate()
}

// AutoSize reports whether the skin sizes the control from its content.
func (c *Control) AutoSize() bool { return c.autoSize }

// SetAutoSize enables or disables content sizing.
func (c *Control) SetAutoSize(a bool) {
	if c.autoSize == a {
		return
	}
	c.autoSize = a
	c.InvalidateLayoutParent()
}

// TopMost reports whether the control stays in front of non-topmost siblings.
func (c *Control) TopMost() bool { return c.topMost }

// SetTopMost changes the topmost flag and reorders the control among its
// siblings accordingly.
func (c *Control) SetTopMost(t bool) {
	if c.topMost == t {
		return
	}
	c.topMost = t
	if c.parent != nil {
		c.parent.BringToFront(c)
	}
}

// Focusable reports whether the control can take keyboard focus.
func (c *Control) Focusable() bool { return c.focusable }

// SetFocusable sets whether the control can take keyboard focus.
func (c *Control) SetFocusable(f bool) { c.focusable = f }

// RejectFocus reports whether the control refuses focus even when clicked.
func (c *Control) RejectFocus() bool { return c.rejectFocus }

// SetRejectFocus sets whether the control refuses focus.
func (c *Control) SetRejectFocus(r bool) { c.rejectFocus = r }

// Focused reports whether the control holds keyboard focus.
func (c *Control) Focused() bool { return c.focused }

// Hover reports whether the pointer is over the control.
func (c *Control) Hover() bool { return c.hover }

// IsForm reports whether the control is a form: it gets first refusal on
// keyboard events aimed at its focused descendants.
func (c *Control) IsForm() bool { return c.form }

// SetForm marks or unmarks the control as a form.
func (c *Control) SetForm(f bool) { c.form = f }

// TabOrder returns the tab stop index; negative values are not tab stops.
func (c *Control) TabOrder() int { return c.tabOrder }

// SetTabOrder sets the tab stop index.
func (c *Control) SetTabOrder(t int) { c.tabOrder = t }

// MouseButtonsDown returns the buttons pressed on this control that have
// not been released yet.
func (c *Control) MouseButtonsDown() MouseButtons { return c.mouseButtonsDown }

// Focus asks the control's display to focus it.
func (c *Control) Focus() {
	if d := c.FindDisplay(); d != nil {
		d.SetFocus(c)
	}
}

// NeedsRedraw reports whether the control is marked dirty.
func (c *Control) NeedsRedraw() bool { return c.needRedraw }

// NeedsLayout reports whether a deferred layout is pending.
func (c *Control) NeedsLayout() bool { return c.needLayout }

// --- Cached surface ---

// SetCacheSurface requests an independent cached surface for this control,
// used by containers that composite their children as one image (scroll
// views). Top-level controls always own one. A nested cached control
// paints itself back into its parent's surface.
func (c *Control) SetCacheSurface(enabled bool) {
	if c.cacheSurface == enabled {
		return
	}
	c.cacheSurface = enabled
	c.paintThrough = enabled
	if !enabled {
		c.releaseSurface()
	}
	c.InvalidateLayout()
}

// CacheSurface reports whether a cached surface was requested.
func (c *Control) CacheSurface() bool { return c.cacheSurface }

// SetPaintThrough controls whether a cached control composites its surface
// back into the ancestor surface after redrawing.
func (c *Control) SetPaintThrough(p bool) { c.paintThrough = p }

// LevelSurface returns the control's cached surface, or nil.
func (c *Control) LevelSurface() *Surface { return c.levelSurface }
