package trellis

import "slices"

// controlIDCounter is a plain counter; trellis is single-threaded.
var controlIDCounter uint32

func nextControlID() uint32 {
	controlIDCounter++
	return controlIDCounter
}

// Control is the fundamental UI tree element. A single flat struct is used
// for every kind of control; visual and input behavior is supplied by the
// skin stored in Widget (see Sizable, Paintable, InputHandler).
//
// Geometry setters that can change the parent's layout (margin, padding,
// border width, docking, visibility, auto-size, row/column) re-run the
// parent's layout. Purely visual setters only invalidate.
type Control struct {
	// Identity
	ID       uint32
	Name     string
	Class    string // theme class selector
	EntityID uint32 // ECS bridge; zero means not forwarded
	UserData any

	// Widget is the skin. It may implement any of the capability interfaces.
	Widget any

	// Hierarchy. parent is a non-owning back reference; the parent owns its
	// children through childrenZ. childrenInverseZ is always the exact reverse.
	parent           *Control
	childrenZ        []*Control
	childrenInverseZ []*Control
	display          *Display // set on the display root only

	// Geometry
	bounds        Rect
	box           BoxModel
	borderColor   Color
	background    Color
	backgroundEnd Color
	gradient      GradientDirection

	// Docking
	dock          DockType
	dockPercent   float64
	dockingMargin int
	row, column   int
	tabOrder      int

	// State
	visible     bool
	enabled     bool
	autoSize    bool
	topMost     bool
	focusable   bool
	rejectFocus bool
	focused     bool
	hover       bool
	form        bool

	// Cached raster surface
	cacheSurface bool
	paintThrough bool
	levelSurface *Surface

	// Dirty state
	needRedraw      bool
	needLayout      bool
	layoutSuspended bool

	mouseButtonsDown MouseButtons
	disposed         bool

	// Per-control callbacks (nil by default; zero cost when unused). They
	// run after the skin's InputHandler hook.
	OnMouseDown    func(*MouseEvent)
	OnMouseUp      func(*MouseEvent)
	OnMouseMove    func(*MouseEvent)
	OnClick        func(*MouseEvent)
	OnWheel        func(*MouseEvent)
	OnMouseEnter   func(*MouseEvent)
	OnMouseLeave   func(*MouseEvent)
	OnKeyDown      func(*KeyEvent)
	OnKeyUp        func(*KeyEvent)
	OnKeyPress     func(*KeyEvent)
	OnFocusChanged func(focused bool)

	// Tree notifications.
	OnAdded        func(parent *Control)
	OnRemoved      func(parent *Control)
	OnChildAdded   func(child *Control)
	OnChildRemoved func(child *Control)
	OnResize       func(old, new Size)
}

// NewControl creates a visible, enabled control with the given bounds in
// its future parent's client coordinates.
func NewControl(name string, bounds Rect) *Control {
	return &Control{
		ID:         nextControlID(),
		Name:       name,
		bounds:     bounds,
		visible:    true,
		enabled:    true,
		tabOrder:   -1,
		needRedraw: true,
	}
}

// NewWidget creates a control whose skin is w.
func NewWidget(name string, bounds Rect, w any) *Control {
	c := NewControl(name, bounds)
	c.Widget = w
	return c
}

// --- Tree manipulation ---

// Add attaches child to this control. The child is placed in front of all
// non-topmost siblings (or in front of everything when it is topmost itself).
// Add-notifications fire on both sides and this control's layout is re-run.
//
// If child belongs to another parent it is unlinked from it first.
// Panics if child is nil, already a child of this control, or an ancestor
// of this control.
func (c *Control) Add(child *Control) {
	if child == nil {
		panic("trellis: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(c, "Add (parent)")
		debugCheckDisposed(child, "Add (child)")
	}
	if child.parent == c {
		panic("trellis: child already present")
	}
	if isAncestor(child, c) {
		panic("trellis: adding child would create a cycle")
	}
	if old := child.parent; old != nil {
		if d := old.FindDisplay(); d != nil {
			d.unhooked(child)
		}
		old.unlink(child)
		child.parent = nil
		old.InvalidateLayout()
	}

	child.parent = c
	c.childrenZ = slices.Insert(c.childrenZ, c.frontIndex(child), child)
	c.syncInverseZ()
	if globalDebug {
		debugCheckZOrder(c)
		debugCheckTreeDepth(child)
		debugCheckChildCount(c)
	}

	if d := c.FindDisplay(); d != nil {
		suspended := c.layoutSuspended
		c.layoutSuspended = true
		d.attached(child)
		c.layoutSuspended = suspended
	}
	if c.OnChildAdded != nil {
		c.OnChildAdded(child)
	}
	if child.OnAdded != nil {
		child.OnAdded(c)
	}
	child.needRedraw = true
	c.InvalidateLayout()
}

// Remove detaches child from this control. The child's own descendants are
// removed first, bottom-up, so every level receives remove-notifications and
// releases its cached surface. Panics if child is not a child of this control.
func (c *Control) Remove(child *Control) {
	if globalDebug {
		debugCheckDisposed(c, "Remove (parent)")
	}
	if child == nil || child.parent != c {
		panic("trellis: child's parent is not this control")
	}
	d := c.FindDisplay()
	child.teardown(d)
	c.detach(child, d)
	c.InvalidateLayout()
}

// RemoveFromParent removes this control from its parent.
// No-op if this control has no parent.
func (c *Control) RemoveFromParent() {
	if c.parent == nil {
		return
	}
	c.parent.Remove(c)
}

// teardown removes every descendant, deepest first, starting from the
// bottom of each z-stack.
func (c *Control) teardown(d *Display) {
	for len(c.childrenInverseZ) > 0 {
		child := c.childrenInverseZ[0]
		child.teardown(d)
		c.detach(child, d)
	}
}

// detach fires remove notifications and unlinks a single child that has no
// children of its own left.
func (c *Control) detach(child *Control, d *Display) {
	if c.OnChildRemoved != nil {
		c.OnChildRemoved(child)
	}
	if child.OnRemoved != nil {
		child.OnRemoved(c)
	}
	if d != nil {
		d.detached(child)
	}
	child.releaseSurface()
	c.unlink(child)
	child.parent = nil
	child.hover = false
	child.focused = false
	child.mouseButtonsDown = 0
}

// unlink removes child from both z-lists without touching child.parent.
func (c *Control) unlink(child *Control) {
	i := slices.Index(c.childrenZ, child)
	if i < 0 {
		return
	}
	c.childrenZ = slices.Delete(c.childrenZ, i, i+1)
	c.syncInverseZ()
	if globalDebug {
		debugCheckZOrder(c)
	}
}

// BringToFront moves child to the front of its z-group: index 0 for topmost
// children, otherwise the first slot after the topmost siblings. It reports
// whether the child was already there.
func (c *Control) BringToFront(child *Control) bool {
	i := slices.Index(c.childrenZ, child)
	if i < 0 {
		panic("trellis: child's parent is not this control")
	}
	c.childrenZ = slices.Delete(c.childrenZ, i, i+1)
	pos := c.frontIndex(child)
	c.childrenZ = slices.Insert(c.childrenZ, pos, child)
	c.syncInverseZ()
	if pos == i {
		return true
	}
	if globalDebug {
		debugCheckZOrder(c)
	}
	c.zOrderChanged()
	return false
}

// SendToBack moves child behind all of its siblings of the same z-group.
func (c *Control) SendToBack(child *Control) {
	i := slices.Index(c.childrenZ, child)
	if i < 0 {
		panic("trellis: child's parent is not this control")
	}
	c.childrenZ = slices.Delete(c.childrenZ, i, i+1)
	pos := len(c.childrenZ)
	if child.topMost {
		pos = c.topMostCount()
	}
	c.childrenZ = slices.Insert(c.childrenZ, pos, child)
	c.syncInverseZ()
	if pos != i {
		c.zOrderChanged()
	}
}

// frontIndex returns the first z-index child may occupy: 0 for topmost
// children, otherwise the index of the first non-topmost sibling.
func (c *Control) frontIndex(child *Control) int {
	if child.topMost {
		return 0
	}
	return c.topMostCount()
}

// topMostCount returns the length of the leading run of topmost children.
func (c *Control) topMostCount() int {
	for i, s := range c.childrenZ {
		if !s.topMost {
			return i
		}
	}
	return len(c.childrenZ)
}

// syncInverseZ rebuilds childrenInverseZ as the reverse of childrenZ.
func (c *Control) syncInverseZ() {
	n := len(c.childrenZ)
	if cap(c.childrenInverseZ) < n {
		c.childrenInverseZ = make([]*Control, n)
	}
	c.childrenInverseZ = c.childrenInverseZ[:n]
	for i, child := range c.childrenZ {
		c.childrenInverseZ[n-1-i] = child
	}
}

// zOrderChanged re-runs layout and tells the compositor when the top-level
// order moved.
func (c *Control) zOrderChanged() {
	if c.display != nil {
		c.display.compositionDirty = true
	}
	c.InvalidateLayout()
}

// Children returns the children in z-order, frontmost first. The returned
// slice MUST NOT be mutated by the caller.
func (c *Control) Children() []*Control {
	return c.childrenZ
}

// ChildrenInverseZ returns the children in paint order, bottom first. The
// returned slice MUST NOT be mutated by the caller.
func (c *Control) ChildrenInverseZ() []*Control {
	return c.childrenInverseZ
}

// NumChildren returns the number of children.
func (c *Control) NumChildren() int {
	return len(c.childrenZ)
}

// Parent returns the parent control, or nil.
func (c *Control) Parent() *Control {
	return c.parent
}

// Walk calls fn for c and every descendant, depth-first in z-order.
// Returning false from fn skips that control's children.
func (c *Control) Walk(fn func(*Control) bool) {
	if !fn(c) {
		return
	}
	for _, child := range c.childrenZ {
		child.Walk(fn)
	}
}

// --- Disposal ---

// Dispose removes this control from its parent (tearing down its subtree)
// and marks it as disposed.
func (c *Control) Dispose() {
	if c.disposed {
		return
	}
	if c.parent != nil {
		c.parent.Remove(c)
	} else {
		c.teardown(c.FindDisplay())
		c.releaseSurface()
	}
	c.disposed = true
	c.ID = 0
	c.Widget = nil
	c.UserData = nil
	c.OnMouseDown = nil
	c.OnMouseUp = nil
	c.OnMouseMove = nil
	c.OnClick = nil
	c.OnWheel = nil
	c.OnMouseEnter = nil
	c.OnMouseLeave = nil
	c.OnKeyDown = nil
	c.OnKeyUp = nil
	c.OnKeyPress = nil
	c.OnFocusChanged = nil
	c.OnAdded = nil
	c.OnRemoved = nil
	c.OnChildAdded = nil
	c.OnChildRemoved = nil
	c.OnResize = nil
}

// IsDisposed returns true if this control has been disposed.
func (c *Control) IsDisposed() bool {
	return c.disposed
}

// --- Queries ---

// FindControlOver returns the frontmost visible control containing p, where
// p is in the same coordinate space as c's bounds (c's parent's client
// space). It returns c itself when no child matches, and nil when c is
// invisible or p lies outside c.
func (c *Control) FindControlOver(p Point) *Control {
	if !c.visible || !c.bounds.Contains(p) {
		return nil
	}
	off := c.box.ClientOffset()
	local := Point{p.X - c.bounds.X - off.X, p.Y - c.bounds.Y - off.Y}
	for _, child := range c.childrenZ {
		if hit := child.FindControlOver(local); hit != nil {
			return hit
		}
	}
	return c
}

// FindDisplay walks up to the display root and returns its Display, or nil
// when c is not attached to one.
func (c *Control) FindDisplay() *Display {
	n := c
	for n.parent != nil {
		n = n.parent
	}
	return n.display
}

// FindForm returns the nearest ancestor marked as a form, or nil.
func (c *Control) FindForm() *Control {
	for p := c.parent; p != nil; p = p.parent {
		if p.form {
			return p
		}
	}
	return nil
}

// TopLevel returns the ancestor (or c itself) whose parent is the display
// root, or nil when c is not under a display.
func (c *Control) TopLevel() *Control {
	for n := c; n.parent != nil; n = n.parent {
		if n.parent.display != nil {
			return n
		}
	}
	return nil
}

// ChildArea returns the bounding box of all children, in client coordinates.
func (c *Control) ChildArea() Rect {
	var r Rect
	for _, child := range c.childrenZ {
		r = r.Union(child.bounds)
	}
	return r
}

// FindNextTabChild returns the visible, enabled, focusable child with a
// non-negative tab order nearest to tabNo: the smallest one strictly greater
// when forward, the largest one strictly smaller otherwise.
func (c *Control) FindNextTabChild(tabNo int, forward bool) *Control {
	var best *Control
	for _, child := range c.childrenZ {
		if !child.visible || !child.enabled || !child.focusable || child.tabOrder < 0 {
			continue
		}
		t := child.tabOrder
		if forward {
			if t > tabNo && (best == nil || t < best.tabOrder) {
				best = child
			}
		} else if t < tabNo && (best == nil || t > best.tabOrder) {
			best = child
		}
	}
	return best
}

// ClientToDisplay converts a point in c's client coordinates to display
// coordinates.
func (c *Control) ClientToDisplay(p Point) Point {
	return p.Add(c.clientOrigin())
}

// DisplayToClient converts a display point into c's client coordinates.
func (c *Control) DisplayToClient(p Point) Point {
	return p.Sub(c.clientOrigin())
}

// clientOrigin returns the display position of c's client origin.
func (c *Control) clientOrigin() Point {
	var p Point
	for n := c; n != nil; n = n.parent {
		p = p.Add(n.bounds.Location()).Add(n.box.ClientOffset())
	}
	return p
}

// isTopLevel reports whether c is a direct child of a display root.
func (c *Control) isTopLevel() bool {
	return c.parent != nil && c.parent.display != nil
}

// isAncestor reports whether candidate is node or an ancestor of node.
func isAncestor(candidate, node *Control) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}
