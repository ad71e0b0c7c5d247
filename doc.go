// Package trellis is a retained-mode UI toolkit core for [Ebitengine].
//
// A [Display] owns a tree of [Control] values. Each control has a box model
// (margin, border, padding, client area), a position in its parent's
// z-order and an optional dock type. Layout is two-pass: a bottom-up sizing
// pass for auto-sized controls, then a top-down pass that docks children in
// z-order into the parent's client rectangle.
//
// Rendering is cached. Every visible top-level control paints into its own
// CPU surface, and only controls marked dirty by [Control.Invalidate] are
// redrawn. Changed surfaces are uploaded to one GPU texture per top-level
// and drawn as a list of quads, back to front.
//
// Input is routed from the display: pointer events go to the frontmost
// control under the cursor (or the control holding a button), keys go to
// the focused control after its enclosing form has had a chance to handle
// them.
//
// # Quick start
//
//	d := trellis.NewDisplay(trellis.DisplayOptions{Width: 640, Height: 480})
//	win := trellis.NewControl("main", trellis.Rect{Width: 640, Height: 480})
//	win.SetBackground(trellis.ColorWhite)
//	win.SetDock(trellis.DockFill)
//	d.Add(win)
//	trellis.Run(d, trellis.RunConfig{Title: "Demo", Resizable: true})
//
// For full control, implement [ebiten.Game] yourself and call
// [Display.Update] and [Display.Draw] directly.
//
// # Skins
//
// Behavior beyond the core lives in Control.Widget. A skin may implement
// [Paintable], [Sizable], [Layouter] or [InputHandler]; the widgets
// subpackage has labels, buttons, grids and scroll boxes built this way.
//
// # Themes
//
// Styles for control classes can be loaded from YAML or TOML with
// [LoadThemeFile] and passed in [DisplayOptions].Theme.
//
// # Test automation
//
// [Display.InjectClick] and friends queue synthetic input consumed one
// event per frame. [LoadTestScript] reads a JSON script of clicks, drags,
// keys and screenshots and runs it through a [TestRunner].
//
// [Ebitengine]: https://ebitengine.org
package trellis
