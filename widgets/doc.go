// Package widgets provides reference skins for trellis controls: panels,
// forms, labels, buttons, a grid container, a scroll box and an FPS
// readout.
//
// Each constructor returns a *trellis.Control whose Widget field holds the
// skin, so the skin can be recovered with a type assertion:
//
//	btn := widgets.NewButton("ok", "OK", onOK)
//	btn.Widget.(*widgets.Button).Text = "Apply"
//
// Skins draw text with golang.org/x/image/font. They default to
// basicfont.Face7x13 so no font assets are needed.
package widgets
