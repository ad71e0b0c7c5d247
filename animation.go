package trellis

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 values on a Control simultaneously. Create
// one via the convenience constructors (TweenLocation, TweenSize,
// TweenBackground, TweenDockPercent) and call Update(dt) each frame. The
// group writes values through the control's setters, so layout and
// invalidation follow the usual rules. If the target control is disposed,
// the group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	apply  func(v [4]float64)
	target *Control
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values. If the
// target control has been disposed, Done is set and nothing is written.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	var v [4]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		v[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(v)
}

func newTweenGroup(c *Control, from, to []float64, duration float32, fn ease.TweenFunc, apply func([4]float64)) *TweenGroup {
	g := &TweenGroup{count: len(from), target: c, apply: apply}
	for i := range from {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
	}
	return g
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

// TweenLocation moves c to (toX, toY). Moving does not resize, so a
// top-level control only has its quad updated each frame.
func TweenLocation(c *Control, toX, toY int, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := []float64{float64(c.bounds.X), float64(c.bounds.Y)}
	to := []float64{float64(toX), float64(toY)}
	return newTweenGroup(c, from, to, duration, fn, func(v [4]float64) {
		c.SetLocation(roundInt(v[0]), roundInt(v[1]))
	})
}

// TweenSize resizes c to width x height.
func TweenSize(c *Control, width, height int, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := []float64{float64(c.bounds.Width), float64(c.bounds.Height)}
	to := []float64{float64(width), float64(height)}
	return newTweenGroup(c, from, to, duration, fn, func(v [4]float64) {
		c.SetSize(roundInt(v[0]), roundInt(v[1]))
	})
}

// TweenBackground fades c's flat background color to the target color.
func TweenBackground(c *Control, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	bg := c.background
	from := []float64{bg.R, bg.G, bg.B, bg.A}
	dst := []float64{to.R, to.G, to.B, to.A}
	return newTweenGroup(c, from, dst, duration, fn, func(v [4]float64) {
		c.SetBackground(Color{v[0], v[1], v[2], v[3]})
	})
}

// TweenDockPercent animates the docked strip size, for sliding side panels.
func TweenDockPercent(c *Control, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(c, []float64{c.dockPercent}, []float64{to}, duration, fn, func(v [4]float64) {
		c.SetDockPercent(v[0])
	})
}
