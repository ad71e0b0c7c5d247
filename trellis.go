package trellis

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is written into a surface.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorTransparent = Color{}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
)

// Transparent reports whether the color has zero alpha.
func (c Color) Transparent() bool {
	return c.A <= 0
}

// RGBA returns the premultiplied color.RGBA used by the raster layer.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Lerp blends c toward other by t in [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Point is an integer position.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Size is an integer width and height.
type Size struct {
	Width, Height int
}

// Rect is an axis-aligned integer rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward. The right and bottom
// edges are exclusive.
type Rect struct {
	X, Y, Width, Height int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Location returns the top-left corner.
func (r Rect) Location() Point { return Point{r.X, r.Y} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{r.Width, r.Height} }

// Empty reports whether the rectangle contains no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{r.X + dx, r.Y + dy, r.Width, r.Height}
}

// Intersect returns the largest rectangle contained by both r and other.
// Disjoint rectangles produce an empty rectangle at r's origin.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Union returns the smallest rectangle containing both r and other.
// An empty operand is ignored.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x0 := min(r.X, other.X)
	y0 := min(r.Y, other.Y)
	x1 := max(r.Right(), other.Right())
	y1 := max(r.Bottom(), other.Bottom())
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Spacing holds per-edge thickness used for margins and padding.
type Spacing struct {
	Left, Top, Right, Bottom int
}

// UniformSpacing returns a Spacing with every edge set to v.
func UniformSpacing(v int) Spacing {
	return Spacing{v, v, v, v}
}

// TotalWidth returns Left + Right.
func (s Spacing) TotalWidth() int { return s.Left + s.Right }

// TotalHeight returns Top + Bottom.
func (s Spacing) TotalHeight() int { return s.Top + s.Bottom }

// GradientDirection selects how a two-color background is blended.
type GradientDirection uint8

const (
	GradientNone       GradientDirection = iota // flat fill with the start color
	GradientVertical                            // start color at the top edge
	GradientHorizontal                          // start color at the left edge
)

// DockType selects how a control is placed inside its parent's client area
// during layout.
type DockType uint8

const (
	DockNone   DockType = iota // bounds are left untouched
	DockFill                   // take the whole remaining area
	DockCenter                 // center in the remaining area without consuming it

	DockLeft       // full-height strip on the left edge
	DockLeftCenter // left strip, vertically centered at own height
	DockLeftTop    // left strip, aligned to the top corner
	DockLeftBottom // left strip, aligned to the bottom corner

	DockRight       // full-height strip on the right edge
	DockRightCenter // right strip, vertically centered
	DockRightTop    // right strip, aligned to the top corner
	DockRightBottom // right strip, aligned to the bottom corner

	DockTop       // full-width strip on the top edge
	DockTopCenter // top strip, horizontally centered at own width
	DockTopLeft   // top strip, aligned to the left corner
	DockTopRight  // top strip, aligned to the right corner

	DockBottom       // full-width strip on the bottom edge
	DockBottomCenter // bottom strip, horizontally centered
	DockBottomLeft   // bottom strip, aligned to the left corner
	DockBottomRight  // bottom strip, aligned to the right corner
)

// DockBottomCentre is the historical spelling of DockBottomCenter.
const DockBottomCentre = DockBottomCenter

// dockEdge identifies the parent edge a docked control attaches to.
type dockEdge uint8

const (
	edgeNone dockEdge = iota
	edgeLeft
	edgeRight
	edgeTop
	edgeBottom
)

// dockAlign is the position of a docked control within its strip.
type dockAlign uint8

const (
	alignStretch dockAlign = iota
	alignCenter
	alignNear
	alignFar
)

// edge returns the parent edge and strip alignment for an edge dock type.
func (d DockType) edge() (dockEdge, dockAlign) {
	if d < DockLeft || d > DockBottomRight {
		return edgeNone, alignStretch
	}
	i := d - DockLeft
	return dockEdge(i/4 + 1), dockAlign(i % 4)
}

// IsEdge reports whether the dock type attaches to one of the parent edges.
func (d DockType) IsEdge() bool {
	e, _ := d.edge()
	return e != edgeNone
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// MouseButtons is a bitmask of held mouse buttons.
type MouseButtons uint8

// Mask returns the bit for a single button.
func (b MouseButton) Mask() MouseButtons {
	return 1 << b
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventMouseDown    EventType = iota // a mouse button was pressed over a control
	EventMouseUp                       // a mouse button was released
	EventMouseMove                     // the pointer moved over or while captured by a control
	EventClick                         // press then release over the same control
	EventWheel                         // the wheel moved over a control
	EventMouseEnter                    // the pointer entered a control
	EventMouseLeave                    // the pointer left a control
	EventKeyDown                       // a key was pressed while a control had focus
	EventKeyUp                         // a key was released
	EventKeyPress                      // a character was typed
	EventFocusChanged                  // keyboard focus moved between controls
)

var eventTypeNames = [...]string{
	EventMouseDown:    "mousedown",
	EventMouseUp:      "mouseup",
	EventMouseMove:    "mousemove",
	EventClick:        "click",
	EventWheel:        "wheel",
	EventMouseEnter:   "mouseenter",
	EventMouseLeave:   "mouseleave",
	EventKeyDown:      "keydown",
	EventKeyUp:        "keyup",
	EventKeyPress:     "keypress",
	EventFocusChanged: "focus",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}
