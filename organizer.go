package willowui

// Placeable is the contract containers use to position widgets. Widgets never
// lay themselves out.
type Placeable interface {
	PreferredSize() Vec2
	Move(x, y float64)
	Resize(width, height float64)
}

// HorizontalFiller is implemented by kinds that stretch to the width their
// container offers (horizontal sliders, text fields, panels).
type HorizontalFiller interface {
	FillsHorizontally() bool
}

// FillsHorizontally reports whether p asks to be stretched horizontally.
func FillsHorizontally(p Placeable) bool {
	f, ok := p.(HorizontalFiller)
	return ok && f.FillsHorizontally()
}

// VerticalStack places items top to bottom inside Bounds.
type VerticalStack struct {
	Bounds  Rect
	Padding float64
	Spacing float64
}

// Arrange moves and resizes items and returns the height they used,
// padding included. Items keep their preferred width unless they fill
// horizontally; widths never exceed the stack's inner width.
func (s VerticalStack) Arrange(items ...Placeable) float64 {
	inner := max(0, s.Bounds.Width-2*s.Padding)
	y := s.Bounds.Y + s.Padding
	for i, it := range items {
		if i > 0 {
			y += s.Spacing
		}
		size := it.PreferredSize()
		w := size.X
		if FillsHorizontally(it) || w > inner {
			w = inner
		}
		it.Move(s.Bounds.X+s.Padding, y)
		it.Resize(w, size.Y)
		y += size.Y
	}
	return y - s.Bounds.Y + s.Padding
}
