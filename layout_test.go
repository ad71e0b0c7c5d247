package trellis

import "testing"

// sizer is a Sizable skin with a fixed natural size.
type sizer struct {
	name string
	w, h int
	est  Size
	log  *[]string
}

func (s *sizer) SizeControl(c *Control, est Size) {
	s.est = est
	if s.log != nil {
		*s.log = append(*s.log, s.name)
	}
	b := c.Bounds()
	c.SetBoundsNoInvalidate(Rect{b.X, b.Y, s.w, s.h})
}

// stacker is a Layouter that stacks children vertically.
type stacker struct{}

func (stacker) LayoutChildren(c *Control, area Rect) {
	y := area.Y
	for _, child := range c.ChildrenInverseZ() {
		h := child.Bounds().Height
		child.SetBoundsNoInvalidate(Rect{area.X, y, area.Width, h})
		y += h
	}
}

func TestDockLeftResidual(t *testing.T) {
	const W, H, w = 200, 100, 50
	left := NewControl("left", Rect{Width: w, Height: 10})
	left.SetDock(DockLeft)

	residual := left.dockInto(Rect{Width: W, Height: H})
	assertBounds(t, left, Rect{0, 0, w, H})
	if want := (Rect{w, 0, W - w, H}); residual != want {
		t.Errorf("residual = %+v, want %+v", residual, want)
	}
}

func TestDockingInZOrder(t *testing.T) {
	p := NewControl("p", Rect{Width: 200, Height: 100})
	fill := NewControl("fill", Rect{})
	fill.SetDock(DockFill)
	left := NewControl("left", Rect{Width: 50})
	left.SetDock(DockLeft)
	top := NewControl("top", Rect{Height: 20})
	top.SetDock(DockTop)

	// Docking consumes space front to back; the last added is in front.
	p.Add(fill)
	p.Add(left)
	p.Add(top)

	assertBounds(t, top, Rect{0, 0, 200, 20})
	assertBounds(t, left, Rect{0, 20, 50, 80})
	assertBounds(t, fill, Rect{50, 20, 150, 80})

	top.SetVisible(false)
	assertBounds(t, left, Rect{0, 0, 50, 100})
	assertBounds(t, fill, Rect{50, 0, 150, 100})

	left.SetDockPercent(0.5)
	assertBounds(t, left, Rect{0, 0, 100, 100})
	assertBounds(t, fill, Rect{100, 0, 100, 100})
}

func TestFillMatchesParentClientRect(t *testing.T) {
	p := NewControl("p", Rect{Width: 200, Height: 100})
	p.SetPadding(UniformSpacing(5))
	p.SetBorderWidth(1)
	c := NewControl("c", Rect{X: 77, Y: 3, Width: 1, Height: 999})
	c.SetDock(DockFill)
	p.Add(c)
	assertBounds(t, c, p.ClientRect())

	p.SetSize(300, 50)
	assertBounds(t, c, p.ClientRect())
}

func TestDockInto(t *testing.T) {
	area := Rect{Width: 200, Height: 100}
	tests := []struct {
		name     string
		dock     DockType
		percent  float64
		margin   int
		own      Rect
		bounds   Rect
		residual Rect
	}{
		{"none", DockNone, 0, 0, Rect{5, 5, 40, 30}, Rect{5, 5, 40, 30}, area},
		{"fill", DockFill, 0, 0, Rect{5, 5, 40, 30}, area, Rect{}},
		{"center", DockCenter, 0, 0, Rect{5, 5, 40, 30}, Rect{80, 35, 40, 30}, area},
		{"center clamped", DockCenter, 0, 0, Rect{0, 0, 400, 30}, Rect{0, 35, 200, 30}, area},
		{"right", DockRight, 0, 0, Rect{5, 5, 40, 30}, Rect{160, 0, 40, 100}, Rect{0, 0, 160, 100}},
		{"top", DockTop, 0, 0, Rect{5, 5, 40, 30}, Rect{0, 0, 200, 30}, Rect{0, 30, 200, 70}},
		{"bottom", DockBottom, 0, 0, Rect{5, 5, 40, 30}, Rect{0, 70, 200, 30}, Rect{0, 0, 200, 70}},
		{"left center", DockLeftCenter, 0, 0, Rect{5, 5, 40, 30}, Rect{0, 35, 40, 30}, Rect{40, 0, 160, 100}},
		{"left top", DockLeftTop, 0, 0, Rect{5, 5, 40, 30}, Rect{0, 0, 40, 30}, Rect{40, 0, 160, 100}},
		{"left bottom", DockLeftBottom, 0, 0, Rect{5, 5, 40, 30}, Rect{0, 70, 40, 30}, Rect{40, 0, 160, 100}},
		{"right bottom", DockRightBottom, 0, 0, Rect{5, 5, 40, 30}, Rect{160, 70, 40, 30}, Rect{0, 0, 160, 100}},
		{"top right", DockTopRight, 0, 0, Rect{5, 5, 40, 30}, Rect{160, 0, 40, 30}, Rect{0, 30, 200, 70}},
		{"bottom centre", DockBottomCentre, 0, 0, Rect{5, 5, 40, 30}, Rect{80, 70, 40, 30}, Rect{0, 0, 200, 70}},
		{"left percent", DockLeft, 0.25, 0, Rect{5, 5, 40, 30}, Rect{0, 0, 50, 100}, Rect{50, 0, 150, 100}},
		{"top percent", DockTop, 0.5, 0, Rect{5, 5, 40, 30}, Rect{0, 0, 200, 50}, Rect{0, 50, 200, 50}},
		{"left margin", DockLeft, 0, 4, Rect{5, 5, 40, 30}, Rect{4, 4, 40, 92}, Rect{44, 0, 156, 100}},
		{"bottom margin", DockBottom, 0, 4, Rect{5, 5, 40, 30}, Rect{4, 66, 192, 30}, Rect{0, 0, 200, 66}},
		{"left oversize", DockLeft, 0, 0, Rect{0, 0, 300, 30}, Rect{0, 0, 200, 100}, Rect{200, 0, 0, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewControl("c", tt.own)
			c.dock = tt.dock
			c.dockPercent = tt.percent
			c.dockingMargin = tt.margin
			residual := c.dockInto(area)
			assertBounds(t, c, tt.bounds)
			if residual != tt.residual {
				t.Errorf("residual = %+v, want %+v", residual, tt.residual)
			}
		})
	}
}

func TestSuspendResumeMatchesImmediateLayout(t *testing.T) {
	build := func(p *Control) []*Control {
		docks := []DockType{DockFill, DockBottom, DockLeftCenter, DockTop, DockRight}
		var out []*Control
		for _, d := range docks {
			c := NewControl("c", Rect{Width: 30, Height: 20})
			c.SetDock(d)
			p.Add(c)
			out = append(out, c)
		}
		return out
	}

	immediate := NewControl("immediate", Rect{Width: 300, Height: 200})
	want := build(immediate)

	deferred := NewControl("deferred", Rect{Width: 300, Height: 200})
	deferred.SuspendLayout()
	got := build(deferred)

	if !deferred.NeedsLayout() {
		t.Fatal("suspended parent did not record a pending layout")
	}
	for _, c := range got {
		if c.Bounds() != (Rect{Width: 30, Height: 20}) {
			t.Fatalf("child laid out while suspended: %+v", c.Bounds())
		}
	}

	deferred.ResumeLayout()
	if deferred.NeedsLayout() || deferred.LayoutSuspended() {
		t.Error("layout state not cleared after resume")
	}
	for i := range want {
		if got[i].Bounds() != want[i].Bounds() {
			t.Errorf("child %d: deferred %+v, immediate %+v", i, got[i].Bounds(), want[i].Bounds())
		}
	}
}

func TestResumeWithoutChangesDoesNothing(t *testing.T) {
	p := NewControl("p", Rect{Width: 100, Height: 100})
	c := NewControl("c", Rect{X: 1, Y: 2, Width: 3, Height: 4})
	p.Add(c)
	c.SetBoundsNoInvalidate(Rect{X: 9, Y: 9, Width: 9, Height: 9})

	p.SuspendLayout()
	p.ResumeLayout()
	assertBounds(t, c, Rect{X: 9, Y: 9, Width: 9, Height: 9})
}

func TestAutoSizeBottomUp(t *testing.T) {
	var log []string
	p := NewControl("p", Rect{Width: 200, Height: 100})
	c := NewWidget("c", Rect{}, &sizer{name: "c", w: 30, h: 20, log: &log})
	c.SetAutoSize(true)
	g := NewWidget("g", Rect{}, &sizer{name: "g", w: 5, h: 5, log: &log})
	g.SetAutoSize(true)
	c.Add(g)
	p.Add(c)

	log = nil
	p.PerformLayout()
	if len(log) != 2 || log[0] != "g" || log[1] != "c" {
		t.Errorf("sizing order = %v, want [g c]", log)
	}
	assertBounds(t, c, Rect{Width: 30, Height: 20})
}

func TestAutoSizeThenDock(t *testing.T) {
	p := NewControl("p", Rect{Width: 200, Height: 100})
	s := &sizer{w: 30, h: 20}
	c := NewWidget("c", Rect{}, s)
	c.SetDock(DockLeft)
	c.SetDockingMargin(5)
	c.SetAutoSize(true)
	p.Add(c)

	if want := (Size{30, 90}); s.est.Height != want.Height {
		t.Errorf("estimated size = %+v, want height %d", s.est, want.Height)
	}
	assertBounds(t, c, Rect{5, 5, 30, 90})
}

func TestSizableIgnoredWithoutAutoSize(t *testing.T) {
	p := NewControl("p", Rect{Width: 200, Height: 100})
	c := NewWidget("c", Rect{Width: 7, Height: 7}, &sizer{w: 30, h: 20})
	p.Add(c)
	assertBounds(t, c, Rect{Width: 7, Height: 7})
}

func TestLayouterReplacesDocking(t *testing.T) {
	p := NewWidget("p", Rect{Width: 100, Height: 100}, stacker{})
	a := NewControl("a", Rect{Height: 10})
	a.SetDock(DockFill)
	b := NewControl("b", Rect{Height: 15})
	p.Add(a)
	p.Add(b)

	assertBounds(t, a, Rect{0, 0, 100, 10})
	assertBounds(t, b, Rect{0, 10, 100, 15})
}

func TestGeometrySettersRelayoutParent(t *testing.T) {
	p := NewControl("p", Rect{Width: 200, Height: 100})
	fill := NewControl("fill", Rect{})
	fill.SetDock(DockFill)
	left := NewControl("left", Rect{Width: 50})
	left.SetDock(DockLeft)
	p.Add(fill)
	p.Add(left)

	tests := []struct {
		name   string
		change func()
		fillX  int
	}{
		{"docking margin", func() { left.SetDockingMargin(10) }, 60},
		{"resize", func() { left.SetSize(70, 1) }, 80},
		{"dock none", func() { left.SetDock(DockNone) }, 0},
	}
	for _, tt := range tests {
		tt.change()
		if got := fill.Bounds().X; got != tt.fillX {
			t.Errorf("%s: fill.X = %d, want %d", tt.name, got, tt.fillX)
		}
	}
}
