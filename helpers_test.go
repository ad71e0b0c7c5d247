package trellis

import (
	"testing"
)

// --- Fakes ---

type fakeTexture struct {
	w, h    int
	uploads int
	freed   bool
}

func (t *fakeTexture) WritePixels([]byte) { t.uploads++ }
func (t *fakeTexture) Deallocate()        { t.freed = true }

// fakeBackend records every texture it hands out and every DrawQuads call.
type fakeBackend struct {
	textures []*fakeTexture
	draws    int
	last     []Quad
}

func (b *fakeBackend) NewTexture(w, h int) Texture {
	t := &fakeTexture{w: w, h: h}
	b.textures = append(b.textures, t)
	return t
}

func (b *fakeBackend) DrawQuads(quads []Quad) {
	b.draws++
	b.last = append(b.last[:0], quads...)
}

func newTestDisplay(w, h int) (*Display, *fakeBackend) {
	b := &fakeBackend{}
	return NewDisplay(DisplayOptions{Width: w, Height: h, Backend: b}), b
}

// newWindow adds an opaque top-level control to d.
func newWindow(d *Display, name string, r Rect) *Control {
	c := NewControl(name, r)
	c.SetBackground(ColorBlack)
	d.Add(c)
	return c
}

// --- Assertions ---

func assertBounds(t *testing.T, c *Control, want Rect) {
	t.Helper()
	if got := c.Bounds(); got != want {
		t.Errorf("%s bounds = %+v, want %+v", c.Name, got, want)
	}
}

func assertZOrder(t *testing.T, parent *Control, want ...*Control) {
	t.Helper()
	got := parent.Children()
	if len(got) != len(want) {
		t.Fatalf("%s has %d children, want %d", parent.Name, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s z[%d] = %s, want %s", parent.Name, i, got[i].Name, want[i].Name)
		}
	}
	if err := CheckZOrder(parent); err != nil {
		t.Error(err)
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// recorder collects event names in the order they are delivered.
type recorder struct {
	events []string
}

func (r *recorder) add(s string) { r.events = append(r.events, s) }

// watch hooks every mouse and focus callback on c.
func (r *recorder) watch(c *Control) {
	name := c.Name
	c.OnMouseDown = func(*MouseEvent) { r.add(name + ":down") }
	c.OnMouseUp = func(*MouseEvent) { r.add(name + ":up") }
	c.OnClick = func(*MouseEvent) { r.add(name + ":click") }
	c.OnMouseEnter = func(*MouseEvent) { r.add(name + ":enter") }
	c.OnMouseLeave = func(*MouseEvent) { r.add(name + ":leave") }
	c.OnFocusChanged = func(f bool) {
		if f {
			r.add(name + ":focus")
		} else {
			r.add(name + ":blur")
		}
	}
}

func (r *recorder) assert(t *testing.T, want ...string) {
	t.Helper()
	if len(r.events) != len(want) {
		t.Fatalf("events = %v, want %v", r.events, want)
	}
	for i := range want {
		if r.events[i] != want[i] {
			t.Fatalf("events = %v, want %v", r.events, want)
		}
	}
}
