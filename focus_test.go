package trellis

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func focusable(name string, tab int) *Control {
	c := NewControl(name, Rect{Width: 10, Height: 10})
	c.SetFocusable(true)
	c.SetTabOrder(tab)
	return c
}

func countFocused(root *Control) int {
	n := 0
	root.Walk(func(c *Control) bool {
		if c.Focused() {
			n++
		}
		return true
	})
	return n
}

func TestFocusExclusive(t *testing.T) {
	d, _ := newTestDisplay(200, 200)
	w := newWindow(d, "w", Rect{Width: 100, Height: 100})
	a := focusable("a", 0)
	b := focusable("b", 1)
	w.Add(a)
	w.Add(b)
	r := &recorder{}
	r.watch(a)
	r.watch(b)

	var seen []FocusEvent
	d.OnFocusChanged(func(e FocusEvent) {
		seen = append(seen, e)
		r.add("observer")
	})

	d.SetFocus(a)
	d.SetFocus(b)
	d.SetFocus(b)
	r.assert(t, "observer", "a:focus", "observer", "a:blur", "b:focus")

	if d.Focus() != b || a.Focused() || !b.Focused() {
		t.Error("focus not transferred")
	}
	if n := countFocused(d.Root()); n != 1 {
		t.Errorf("%d controls focused, want 1", n)
	}
	if len(seen) != 2 || seen[1].Old != a || seen[1].New != b {
		t.Errorf("observer events = %+v", seen)
	}

	d.SetFocus(nil)
	if d.Focus() != nil || countFocused(d.Root()) != 0 {
		t.Error("SetFocus(nil) did not clear focus")
	}
}

func TestSetFocusIneligible(t *testing.T) {
	d, _ := newTestDisplay(200, 200)
	w := newWindow(d, "w", Rect{Width: 100, Height: 100})
	holder := focusable("holder", 0)
	w.Add(holder)
	d.SetFocus(holder)

	plain := NewControl("plain", Rect{})
	rejecting := focusable("rejecting", 1)
	rejecting.SetRejectFocus(true)
	disabled := focusable("disabled", 2)
	disabled.SetEnabled(false)
	hidden := focusable("hidden", 3)
	hidden.SetVisible(false)
	for _, c := range []*Control{plain, rejecting, disabled, hidden} {
		w.Add(c)
	}
	loose := focusable("loose", 4)

	other, _ := newTestDisplay(10, 10)
	foreign := focusable("foreign", 0)
	newWindow(other, "ow", Rect{Width: 10, Height: 10}).Add(foreign)

	for _, c := range []*Control{plain, rejecting, disabled, hidden, loose, foreign} {
		d.SetFocus(c)
		if d.Focus() != holder {
			t.Errorf("SetFocus(%s) moved focus", c.Name)
		}
		if d.CanFocus(c) {
			t.Errorf("CanFocus(%s) = true", c.Name)
		}
	}
}

func TestClickOnRejectFocusKeepsFocus(t *testing.T) {
	d, _ := newTestDisplay(200, 200)
	w := newWindow(d, "w", Rect{Width: 100, Height: 100})
	edit := focusable("edit", 0)
	btn := NewControl("btn", Rect{X: 50, Y: 50, Width: 20, Height: 20})
	btn.SetFocusable(true)
	btn.SetRejectFocus(true)
	w.Add(edit)
	w.Add(btn)
	d.SetFocus(edit)

	clicked := false
	btn.OnClick = func(*MouseEvent) { clicked = true }
	d.PointerDown(55, 55, MouseButtonLeft)
	d.PointerUp(55, 55, MouseButtonLeft)
	if !clicked {
		t.Error("click not delivered")
	}
	if d.Focus() != edit {
		t.Errorf("focus = %v, want edit", d.Focus())
	}
}

func TestDisableFocusedClearsFocus(t *testing.T) {
	d, _ := newTestDisplay(200, 200)
	w := newWindow(d, "w", Rect{Width: 100, Height: 100})
	a := focusable("a", 0)
	w.Add(a)
	a.Focus()

	a.SetEnabled(false)
	if d.Focus() != nil || a.Focused() {
		t.Error("disabled control kept focus")
	}
}

func TestDisposeFocusedClearsFocus(t *testing.T) {
	d, _ := newTestDisplay(200, 200)
	w := newWindow(d, "w", Rect{Width: 100, Height: 100})
	a := focusable("a", 0)
	w.Add(a)
	a.Focus()
	blurred := false
	a.OnFocusChanged = func(bool) { blurred = true }

	w.Dispose()
	if d.Focus() != nil {
		t.Error("disposed control still focused")
	}
	if blurred {
		t.Error("removal must clear focus silently")
	}
}

// --- Keyboard routing ---

type keySkin struct {
	BaseInputHandler
	name   string
	handle ebiten.Key
	r      *recorder
}

func (k keySkin) OnKeyDown(c *Control, e *KeyEvent) {
	k.r.add(k.name + ":" + e.Key.String())
	if e.Key == k.handle {
		e.Handled = true
	}
}

func (k keySkin) OnKeyPress(c *Control, e *KeyEvent) {
	k.r.add(k.name + ":" + string(e.Rune))
}

func TestFormGetsFirstRefusal(t *testing.T) {
	d, _ := newTestDisplay(200, 200)
	r := &recorder{}
	form := NewWidget("form", Rect{Width: 100, Height: 100}, keySkin{name: "form", handle: ebiten.KeyEscape, r: r})
	form.SetForm(true)
	d.Add(form)
	panel := NewControl("panel", Rect{Width: 50, Height: 50})
	form.Add(panel)
	field := NewWidget("field", Rect{Width: 10, Height: 10}, keySkin{name: "field", handle: ebiten.KeyA, r: r})
	field.SetFocusable(true)
	panel.Add(field)
	d.SetFocus(field)

	var target, control *Control
	form.OnKeyDown = func(e *KeyEvent) { target, control = e.Target, e.Control }

	if !d.KeyDown(ebiten.KeyEscape) {
		t.Error("escape not handled")
	}
	if !d.KeyDown(ebiten.KeyA) {
		t.Error("A not handled")
	}
	if d.KeyDown(ebiten.KeyB) {
		t.Error("B reported handled")
	}
	r.assert(t, "form:Escape", "form:A", "field:A", "form:B", "field:B")
	if target != field || control != form {
		t.Errorf("form saw target=%v control=%v", target, control)
	}
}

func TestFocusedFormGetsKeyOnce(t *testing.T) {
	d, _ := newTestDisplay(200, 200)
	r := &recorder{}
	outer := NewWidget("outer", Rect{Width: 100, Height: 100}, keySkin{name: "outer", r: r})
	outer.SetForm(true)
	d.Add(outer)
	inner := NewWidget("inner", Rect{Width: 50, Height: 50}, keySkin{name: "inner", r: r})
	inner.SetForm(true)
	inner.SetFocusable(true)
	outer.Add(inner)
	d.SetFocus(inner)

	d.KeyDown(ebiten.KeyC)
	r.assert(t, "inner:C")
}

func TestKeyPressAndKeyUp(t *testing.T) {
	d, _ := newTestDisplay(200, 200)
	r := &recorder{}
	w := NewWidget("w", Rect{Width: 100, Height: 100}, keySkin{name: "w", r: r})
	w.SetFocusable(true)
	d.Add(w)

	if d.KeyPress('x') {
		t.Error("key routed without focus")
	}
	w.Focus()
	var up ebiten.Key = -1
	w.OnKeyUp = func(e *KeyEvent) { up = e.Key }

	d.KeyPress('x')
	d.KeyUp(ebiten.KeyQ)
	r.assert(t, "w:x")
	if up != ebiten.KeyQ {
		t.Errorf("key up = %v", up)
	}
}

func TestTabOrderWraps(t *testing.T) {
	d, _ := newTestDisplay(200, 200)
	w := newWindow(d, "w", Rect{Width: 100, Height: 100})
	c2 := focusable("c2", 2)
	c0 := focusable("c0", 0)
	c1 := focusable("c1", 1)
	skip := focusable("skip", -1)
	for _, c := range []*Control{c2, c0, skip, c1} {
		w.Add(c)
	}

	steps := []struct {
		shift bool
		want  *Control
	}{
		{false, c0},
		{false, c1},
		{false, c2},
		{false, c0},
		{true, c2},
		{true, c1},
	}
	for i, s := range steps {
		var m KeyModifiers
		if s.shift {
			m = ModShift
		}
		d.SetModifiers(m)
		if !d.KeyDown(ebiten.KeyTab) {
			t.Errorf("step %d: tab not handled", i)
		}
		if d.Focus() != s.want {
			t.Fatalf("step %d: focus = %v, want %s", i, d.Focus(), s.want.Name)
		}
	}
}

func TestTabHandledByControlDoesNotMove(t *testing.T) {
	d, _ := newTestDisplay(200, 200)
	w := newWindow(d, "w", Rect{Width: 100, Height: 100})
	r := &recorder{}
	editor := NewWidget("editor", Rect{Width: 10, Height: 10}, keySkin{name: "editor", handle: ebiten.KeyTab, r: r})
	editor.SetFocusable(true)
	editor.SetTabOrder(0)
	w.Add(editor)
	w.Add(focusable("next", 1))
	editor.Focus()

	d.KeyDown(ebiten.KeyTab)
	if d.Focus() != editor {
		t.Error("tab consumed by the control still moved focus")
	}
}

func TestFocusNextWithoutStops(t *testing.T) {
	d, _ := newTestDisplay(200, 200)
	if d.FocusNext(true) {
		t.Error("FocusNext on an empty display reported a move")
	}
	newWindow(d, "w", Rect{Width: 100, Height: 100})
	if d.FocusNext(true) {
		t.Error("FocusNext without tab stops reported a move")
	}
}

func TestHidingAncestorReleasesInputState(t *testing.T) {
	d, _ := newTestDisplay(200, 200)
	w := newWindow(d, "w", Rect{Width: 100, Height: 100})
	panel := NewControl("panel", Rect{Width: 50, Height: 50})
	w.Add(panel)
	r := &recorder{}
	field := NewWidget("field", Rect{Width: 20, Height: 20}, keySkin{name: "field", handle: ebiten.KeyEnter, r: r})
	field.SetFocusable(true)
	panel.Add(field)
	r.watch(field)

	d.PointerDown(5, 5, MouseButtonLeft)
	d.PointerUp(5, 5, MouseButtonLeft)
	d.PointerDown(5, 5, MouseButtonLeft)
	if d.Focus() != field || d.MouseOver() != field || d.CaptureAnchor() != field {
		t.Fatal("setup: field not focused, hovered and anchored")
	}

	r.events = nil
	panel.SetVisible(false)
	r.assert(t, "field:blur", "field:leave")
	if d.Focus() != nil || field.Focused() {
		t.Error("hidden control kept focus")
	}
	if d.MouseOver() != nil || field.Hover() || d.CaptureAnchor() != nil || field.MouseButtonsDown() != 0 {
		t.Error("hidden control kept pointer state")
	}

	r.events = nil
	if d.KeyDown(ebiten.KeyEnter) {
		t.Error("key reached a hidden control")
	}
	d.PointerUp(5, 5, MouseButtonLeft)
	r.assert(t)
	if d.MouseOver() != w {
		t.Errorf("hover = %v, want the window behind the hidden panel", d.MouseOver())
	}
}

func TestHidingUnrelatedControlKeepsFocus(t *testing.T) {
	d, _ := newTestDisplay(200, 200)
	w := newWindow(d, "w", Rect{Width: 100, Height: 100})
	a := focusable("a", 0)
	b := focusable("b", 1)
	w.Add(a)
	w.Add(b)
	a.Focus()

	b.SetVisible(false)
	if d.Focus() != a {
		t.Error("hiding a sibling cleared focus")
	}
}
