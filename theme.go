package trellis

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ThemeApplier styles controls as they are attached under a Display. It is
// passed in DisplayOptions so separate displays never share theme state.
type ThemeApplier interface {
	ApplyTheme(c *Control)
}

// ThemeFunc adapts a plain function to ThemeApplier.
type ThemeFunc func(c *Control)

// ApplyTheme calls f(c).
func (f ThemeFunc) ApplyTheme(c *Control) { f(c) }

// Style is a resolved set of visual properties. Nil fields are left
// untouched when the style is applied.
type Style struct {
	Background    *Color
	BackgroundEnd *Color
	Gradient      GradientDirection
	BorderColor   *Color
	BorderWidth   *int
	Margin        *Spacing
	Padding       *Spacing
}

// Apply writes the style's set fields onto c.
func (s Style) Apply(c *Control) {
	if s.Background != nil {
		if s.BackgroundEnd != nil && s.Gradient != GradientNone {
			c.SetGradient(*s.Background, *s.BackgroundEnd, s.Gradient)
		} else {
			c.SetBackground(*s.Background)
		}
	}
	if s.BorderColor != nil {
		c.SetBorderColor(*s.BorderColor)
	}
	if s.BorderWidth != nil {
		c.SetBorderWidth(*s.BorderWidth)
	}
	if s.Margin != nil {
		c.SetMargin(*s.Margin)
	}
	if s.Padding != nil {
		c.SetPadding(*s.Padding)
	}
}

// Theme maps control classes to styles. Classes are matched against
// Control.Class; controls without a matching class are left alone.
type Theme struct {
	Classes map[string]Style
}

// ApplyTheme applies the style registered for c.Class, if any.
func (t *Theme) ApplyTheme(c *Control) {
	if c.Class == "" {
		return
	}
	if s, ok := t.Classes[c.Class]; ok {
		s.Apply(c)
	}
}

// styleFile is the on-disk form of a Style. Colors are hex strings
// ("#rgb", "#rrggbb" or "#rrggbbaa"); spacing has one value (all edges)
// or four (left, top, right, bottom).
type styleFile struct {
	Background    string `yaml:"background" toml:"background"`
	BackgroundEnd string `yaml:"background_end" toml:"background_end"`
	Gradient      string `yaml:"gradient" toml:"gradient"`
	BorderColor   string `yaml:"border_color" toml:"border_color"`
	BorderWidth   *int   `yaml:"border_width" toml:"border_width"`
	Margin        []int  `yaml:"margin" toml:"margin"`
	Padding       []int  `yaml:"padding" toml:"padding"`
}

type themeFile struct {
	Classes map[string]styleFile `yaml:"classes" toml:"classes"`
}

// LoadThemeFile reads a theme from a .yaml, .yml or .toml file.
func LoadThemeFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	t, err := ParseTheme(data, format)
	if err != nil {
		return nil, fmt.Errorf("load theme %s: %w", path, err)
	}
	return t, nil
}

// ParseTheme decodes theme data. format is "yaml", "yml" or "toml".
func ParseTheme(data []byte, format string) (*Theme, error) {
	var tf themeFile
	switch format {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&tf); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse theme: %w", err)
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&tf); err != nil {
			return nil, fmt.Errorf("parse theme: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownThemeFormat, format)
	}

	t := &Theme{Classes: make(map[string]Style, len(tf.Classes))}
	for name, sf := range tf.Classes {
		s, err := sf.resolve()
		if err != nil {
			return nil, fmt.Errorf("parse theme: class %q: %w", name, err)
		}
		t.Classes[name] = s
	}
	return t, nil
}

func (sf styleFile) resolve() (Style, error) {
	var s Style
	var err error
	if s.Background, err = optColor(sf.Background); err != nil {
		return s, fmt.Errorf("background: %w", err)
	}
	if s.BackgroundEnd, err = optColor(sf.BackgroundEnd); err != nil {
		return s, fmt.Errorf("background_end: %w", err)
	}
	if s.BorderColor, err = optColor(sf.BorderColor); err != nil {
		return s, fmt.Errorf("border_color: %w", err)
	}
	switch strings.ToLower(sf.Gradient) {
	case "", "none":
	case "vertical":
		s.Gradient = GradientVertical
	case "horizontal":
		s.Gradient = GradientHorizontal
	default:
		return s, fmt.Errorf("gradient: unknown direction %q", sf.Gradient)
	}
	if sf.BorderWidth != nil {
		if *sf.BorderWidth < 0 {
			return s, fmt.Errorf("border_width: negative value %d", *sf.BorderWidth)
		}
		bw := *sf.BorderWidth
		s.BorderWidth = &bw
	}
	if s.Margin, err = optSpacing(sf.Margin); err != nil {
		return s, fmt.Errorf("margin: %w", err)
	}
	if s.Padding, err = optSpacing(sf.Padding); err != nil {
		return s, fmt.Errorf("padding: %w", err)
	}
	return s, nil
}

func optColor(v string) (*Color, error) {
	if v == "" {
		return nil, nil
	}
	c, err := ParseColor(v)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func optSpacing(v []int) (*Spacing, error) {
	switch len(v) {
	case 0:
		return nil, nil
	case 1:
		s := UniformSpacing(v[0])
		return &s, nil
	case 4:
		return &Spacing{v[0], v[1], v[2], v[3]}, nil
	}
	return nil, fmt.Errorf("want 1 or 4 values, got %d", len(v))
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
