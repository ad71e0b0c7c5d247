package trellis

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSurfaceSize is returned when a surface would be empty or
	// larger than MaxSurfaceSize.
	ErrInvalidSurfaceSize = errors.New("trellis: invalid surface size")

	// ErrUnknownThemeFormat is returned for theme data in a format other
	// than YAML or TOML.
	ErrUnknownThemeFormat = errors.New("trellis: unknown theme format")
)

// SurfaceError reports a failed surface allocation. The control skips
// rendering until a later layout pass succeeds.
type SurfaceError struct {
	Control       string
	Width, Height int
	Err           error
}

func (e *SurfaceError) Error() string {
	if e.Control == "" {
		return fmt.Sprintf("surface %dx%d: %v", e.Width, e.Height, e.Err)
	}
	return fmt.Sprintf("surface %dx%d for %q: %v", e.Width, e.Height, e.Control, e.Err)
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}
