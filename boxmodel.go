package trellis

// BoxModel describes the nested rings around a control's client area:
// margin (outermost, never painted), border, then padding.
//
// All arithmetic is integer so repeated layout passes never drift.
type BoxModel struct {
	Margin      Spacing
	Padding     Spacing
	BorderWidth int
}

// ChromeWidth returns the horizontal space taken by margin, border and padding.
func (b BoxModel) ChromeWidth() int {
	return b.Margin.TotalWidth() + b.Padding.TotalWidth() + 2*b.BorderWidth
}

// ChromeHeight returns the vertical space taken by margin, border and padding.
func (b BoxModel) ChromeHeight() int {
	return b.Margin.TotalHeight() + b.Padding.TotalHeight() + 2*b.BorderWidth
}

// ClientOffset returns the position of the client area's origin relative
// to the outer rectangle's origin.
func (b BoxModel) ClientOffset() Point {
	return Point{
		X: b.Margin.Left + b.BorderWidth + b.Padding.Left,
		Y: b.Margin.Top + b.BorderWidth + b.Padding.Top,
	}
}

// ClientSize converts an outer size into the client size. The result is
// clamped at zero when the chrome is larger than the outer size.
func (b BoxModel) ClientSize(outer Size) Size {
	return Size{
		Width:  max(outer.Width-b.ChromeWidth(), 0),
		Height: max(outer.Height-b.ChromeHeight(), 0),
	}
}

// OuterSize converts a desired client size into the outer size.
func (b BoxModel) OuterSize(client Size) Size {
	return Size{
		Width:  client.Width + b.ChromeWidth(),
		Height: client.Height + b.ChromeHeight(),
	}
}

// ClientArea returns the client area of outer, in the same coordinate space
// as outer.
func (b BoxModel) ClientArea(outer Rect) Rect {
	off := b.ClientOffset()
	cs := b.ClientSize(outer.Size())
	return Rect{outer.X + off.X, outer.Y + off.Y, cs.Width, cs.Height}
}

// BorderRect returns the painted area of outer: everything inside the margin.
func (b BoxModel) BorderRect(outer Rect) Rect {
	return Rect{
		X:      outer.X + b.Margin.Left,
		Y:      outer.Y + b.Margin.Top,
		Width:  max(outer.Width-b.Margin.TotalWidth(), 0),
		Height: max(outer.Height-b.Margin.TotalHeight(), 0),
	}
}
