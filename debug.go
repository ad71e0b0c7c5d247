package trellis

import (
	"fmt"
	"time"
)

// globalDebug mirrors the most recently set Display debug flag so that
// control operations (which lack a Display pointer) can check it cheaply.
// Only valid with a single Display; multiple Displays with differing debug
// modes reflect whichever called SetDebugMode last.
var globalDebug bool

// renderStats accumulates compositor counters across frames.
type renderStats struct {
	frames   int
	uploads  int
	rebuilds int
}

// debugLog logs the frame's compositor work at debug level.
func (d *Display) debugLog(uploads int, elapsed time.Duration) {
	Logger().Debug("trellis: frame",
		"elapsed", elapsed,
		"quads", len(d.quads),
		"uploads", uploads,
		"rebuilds", d.stats.rebuilds,
		"frames", d.stats.frames,
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed
// control is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(c *Control, op string) {
	if c.disposed {
		panic(fmt.Sprintf("trellis debug: %s on disposed control %q", op, c.Name))
	}
}

// debugCheckZOrder panics when c's two child lists are not exact reverses
// of each other or contain duplicates.
func debugCheckZOrder(c *Control) {
	if err := CheckZOrder(c); err != nil {
		panic("trellis debug: " + err.Error())
	}
}

// CheckZOrder verifies that childrenInverseZ is the exact reverse of
// childrenZ, that no child appears twice and that topmost children come
// first.
func CheckZOrder(c *Control) error {
	n := len(c.childrenZ)
	if len(c.childrenInverseZ) != n {
		return fmt.Errorf("control %q: z lists differ in length (%d vs %d)", c.Name, n, len(c.childrenInverseZ))
	}
	seen := make(map[*Control]struct{}, n)
	topRun := true
	for i, child := range c.childrenZ {
		if c.childrenInverseZ[n-1-i] != child {
			return fmt.Errorf("control %q: z lists are not reversed at index %d", c.Name, i)
		}
		if _, dup := seen[child]; dup {
			return fmt.Errorf("control %q: child %q listed twice", c.Name, child.Name)
		}
		seen[child] = struct{}{}
		if !child.topMost {
			topRun = false
		} else if !topRun {
			return fmt.Errorf("control %q: topmost child %q behind a non-topmost sibling", c.Name, child.Name)
		}
	}
	return nil
}

// debugCheckTreeDepth warns if the tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(c *Control) {
	depth := 0
	for p := c; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("trellis: tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "control", c.Name)
	}
}

// debugCheckChildCount warns if a control has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(c *Control) {
	if len(c.childrenZ) > debugMaxChildCount {
		Logger().Warn("trellis: child count exceeds threshold",
			"control", c.Name, "children", len(c.childrenZ), "threshold", debugMaxChildCount)
	}
}
