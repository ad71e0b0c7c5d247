package trellis

import "testing"

func TestBoxModel(t *testing.T) {
	b := BoxModel{
		Margin:      Spacing{1, 2, 3, 4},
		Padding:     Spacing{5, 6, 7, 8},
		BorderWidth: 2,
	}

	if got := b.ChromeWidth(); got != 20 {
		t.Errorf("ChromeWidth = %d, want 20", got)
	}
	if got := b.ChromeHeight(); got != 24 {
		t.Errorf("ChromeHeight = %d, want 24", got)
	}
	if got := b.ClientOffset(); got != (Point{8, 10}) {
		t.Errorf("ClientOffset = %+v", got)
	}
	if got := b.ClientSize(Size{100, 80}); got != (Size{80, 56}) {
		t.Errorf("ClientSize = %+v", got)
	}
	if got := b.OuterSize(Size{80, 56}); got != (Size{100, 80}) {
		t.Errorf("OuterSize = %+v", got)
	}
	if got := b.ClientArea(Rect{10, 20, 100, 80}); got != (Rect{18, 30, 80, 56}) {
		t.Errorf("ClientArea = %+v", got)
	}
	if got := b.BorderRect(Rect{10, 20, 100, 80}); got != (Rect{11, 22, 96, 74}) {
		t.Errorf("BorderRect = %+v", got)
	}
}

func TestBoxModelClampsClientSize(t *testing.T) {
	b := BoxModel{Padding: UniformSpacing(10)}
	if got := b.ClientSize(Size{15, 30}); got != (Size{0, 10}) {
		t.Errorf("ClientSize = %+v, want {0 10}", got)
	}
}

func TestClientRectOriginIsZero(t *testing.T) {
	c := NewControl("c", Rect{X: 40, Y: 50, Width: 100, Height: 60})
	c.SetMargin(UniformSpacing(3))
	c.SetBorderWidth(1)
	c.SetPadding(Spacing{Left: 2, Top: 4})

	want := Rect{Width: 100 - 6 - 2 - 2, Height: 60 - 6 - 2 - 4}
	if got := c.ClientRect(); got != want {
		t.Errorf("ClientRect = %+v, want %+v", got, want)
	}
	c.SetClientSize(50, 20)
	if got := c.ClientSize(); got != (Size{50, 20}) {
		t.Errorf("ClientSize after SetClientSize = %+v", got)
	}
}

func TestRectOps(t *testing.T) {
	tests := []struct {
		name string
		got  Rect
		want Rect
	}{
		{"intersect overlap", Rect{0, 0, 10, 10}.Intersect(Rect{5, 5, 10, 10}), Rect{5, 5, 5, 5}},
		{"intersect disjoint", Rect{0, 0, 10, 10}.Intersect(Rect{20, 20, 5, 5}), Rect{0, 0, 0, 0}},
		{"intersect touching", Rect{0, 0, 10, 10}.Intersect(Rect{10, 0, 5, 5}), Rect{0, 0, 0, 0}},
		{"union", Rect{0, 0, 10, 10}.Union(Rect{20, 5, 5, 10}), Rect{0, 0, 25, 15}},
		{"union empty", Rect{}.Union(Rect{3, 4, 5, 6}), Rect{3, 4, 5, 6}},
		{"offset", Rect{1, 2, 3, 4}.Offset(10, 20), Rect{11, 22, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestRectContainsExclusiveEdges(t *testing.T) {
	r := Rect{10, 10, 5, 5}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{10, 10}, true},
		{Point{14, 14}, true},
		{Point{15, 10}, false},
		{Point{10, 15}, false},
		{Point{9, 12}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestColorRGBAPremultiplies(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.RGBA()
	if got.R != 128 || got.G != 64 || got.B != 0 || got.A != 128 {
		t.Errorf("RGBA = %+v", got)
	}
}

func TestDockTypeEdge(t *testing.T) {
	tests := []struct {
		d     DockType
		edge  dockEdge
		align dockAlign
	}{
		{DockNone, edgeNone, alignStretch},
		{DockFill, edgeNone, alignStretch},
		{DockLeft, edgeLeft, alignStretch},
		{DockLeftBottom, edgeLeft, alignFar},
		{DockRightCenter, edgeRight, alignCenter},
		{DockTopLeft, edgeTop, alignNear},
		{DockBottomCentre, edgeBottom, alignCenter},
		{DockBottomRight, edgeBottom, alignFar},
	}
	for _, tt := range tests {
		e, a := tt.d.edge()
		if e != tt.edge || a != tt.align {
			t.Errorf("%d.edge() = (%d, %d), want (%d, %d)", tt.d, e, a, tt.edge, tt.align)
		}
	}
}
