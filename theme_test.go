package trellis

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const yamlTheme = `
classes:
  window:
    background: "#102030"
    border_color: "#f00"
    border_width: 2
    padding: [4]
  header:
    background: "#000000"
    background_end: "#ffffff80"
    gradient: vertical
    margin: [1, 2, 3, 4]
`

const tomlTheme = `
[classes.window]
background = "#102030"
border_color = "#f00"
border_width = 2
padding = [4]

[classes.header]
background = "#000000"
background_end = "#ffffff80"
gradient = "vertical"
margin = [1, 2, 3, 4]
`

func checkParsedTheme(t *testing.T, th *Theme) {
	t.Helper()
	win, ok := th.Classes["window"]
	if !ok {
		t.Fatal("window class missing")
	}
	if win.Background == nil || win.Background.RGBA().G != 0x20 {
		t.Errorf("window background = %v", win.Background)
	}
	if win.BorderColor == nil || *win.BorderColor != red {
		t.Errorf("window border color = %v", win.BorderColor)
	}
	if win.BorderWidth == nil || *win.BorderWidth != 2 {
		t.Errorf("window border width = %v", win.BorderWidth)
	}
	if win.Padding == nil || *win.Padding != UniformSpacing(4) {
		t.Errorf("window padding = %v", win.Padding)
	}
	if win.Margin != nil {
		t.Error("unset margin resolved to a value")
	}

	hdr := th.Classes["header"]
	if hdr.Gradient != GradientVertical || hdr.BackgroundEnd == nil {
		t.Errorf("header gradient = %v end=%v", hdr.Gradient, hdr.BackgroundEnd)
	}
	if hdr.Margin == nil || *hdr.Margin != (Spacing{1, 2, 3, 4}) {
		t.Errorf("header margin = %v", hdr.Margin)
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		format string
		data   string
	}{
		{"yaml", yamlTheme},
		{"yml", yamlTheme},
		{"toml", tomlTheme},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			th, err := ParseTheme([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatal(err)
			}
			checkParsedTheme(t, th)
		})
	}
}

func TestParseThemeEmpty(t *testing.T) {
	th, err := ParseTheme(nil, "yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(th.Classes) != 0 {
		t.Errorf("classes = %v", th.Classes)
	}
}

func TestParseThemeErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		data   string
	}{
		{"yaml unknown field", "yaml", "classes:\n  a:\n    colour: \"#fff\"\n"},
		{"toml unknown field", "toml", "[classes.a]\ncolour = \"#fff\"\n"},
		{"bad color", "yaml", "classes:\n  a:\n    background: \"#12\"\n"},
		{"bad gradient", "yaml", "classes:\n  a:\n    gradient: diagonal\n"},
		{"negative border", "yaml", "classes:\n  a:\n    border_width: -1\n"},
		{"spacing arity", "toml", "[classes.a]\nmargin = [1, 2]\n"},
		{"malformed", "toml", "[classes.a\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTheme([]byte(tt.data), tt.format); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseThemeUnknownFormat(t *testing.T) {
	_, err := ParseTheme([]byte("{}"), "json")
	if !errors.Is(err, ErrUnknownThemeFormat) {
		t.Errorf("err = %v, want ErrUnknownThemeFormat", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#fff", ColorWhite, true},
		{"#000000", ColorBlack, true},
		{" #ff000000 ", Color{R: 1}, true},
		{"00ff00", green, true},
		{"#ff", Color{}, false},
		{"#gggggg", Color{}, false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseColor(%q) err = %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestLoadThemeFile(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{"theme.yaml": yamlTheme, "theme.TOML": tomlTheme} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		th, err := LoadThemeFile(path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		checkParsedTheme(t, th)
	}

	if _, err := LoadThemeFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file loaded")
	}
	ini := filepath.Join(dir, "theme.ini")
	if err := os.WriteFile(ini, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadThemeFile(ini); !errors.Is(err, ErrUnknownThemeFormat) {
		t.Errorf("err = %v, want ErrUnknownThemeFormat", err)
	}
}

func TestThemeAppliedOnAttach(t *testing.T) {
	th, err := ParseTheme([]byte(yamlTheme), "yaml")
	if err != nil {
		t.Fatal(err)
	}
	d := NewDisplay(DisplayOptions{Width: 200, Height: 200, Backend: &fakeBackend{}, Theme: th})

	win := NewControl("win", Rect{Width: 100, Height: 100})
	win.Class = "window"
	fill := NewControl("fill", Rect{})
	fill.SetDock(DockFill)
	win.Add(fill)
	plain := NewControl("plain", Rect{X: 1, Width: 10, Height: 10})
	win.Add(plain)

	d.Add(win)
	if win.BorderWidth() != 2 || win.Padding() != UniformSpacing(4) {
		t.Errorf("theme not applied: border=%d padding=%+v", win.BorderWidth(), win.Padding())
	}
	// Layout runs once after styling, so the fill child sees the new chrome.
	assertBounds(t, fill, win.ClientRect())
	if plain.BorderWidth() != 0 || !plain.Background().Transparent() {
		t.Error("unclassed control was styled")
	}
}

func TestThemeFunc(t *testing.T) {
	var seen []string
	d := NewDisplay(DisplayOptions{Width: 50, Height: 50, Backend: &fakeBackend{},
		Theme: ThemeFunc(func(c *Control) { seen = append(seen, c.Name) })})
	w := NewControl("w", Rect{})
	w.Add(NewControl("c", Rect{}))
	d.Add(w)
	if len(seen) != 2 || seen[0] != "w" || seen[1] != "c" {
		t.Errorf("themed = %v, want [w c]", seen)
	}
}
