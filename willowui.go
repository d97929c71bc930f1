package willowui

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at paint time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// RGBA8 returns the non-premultiplied 8-bit components of c.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return uint8(clamp01(c.R) * 255), uint8(clamp01(c.G) * 255),
		uint8(clamp01(c.B) * 255), uint8(clamp01(c.A) * 255)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Intersection returns the overlapping area of r and other. The second result
// is false when they do not intersect, in which case the returned Rect is zero.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	return Intersect(r, other)
}

// Intersect computes the overlap of a and b from both operands' edges.
func Intersect(a, b Rect) (Rect, bool) {
	x0 := max(a.X, b.X)
	y0 := max(a.Y, b.Y)
	x1 := min(a.X+a.Width, b.X+b.Width)
	y1 := min(a.Y+a.Height, b.Y+b.Height)
	if x1 < x0 || y1 < y0 {
		return Rect{}, false
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

// Orientation selects the layout axis of widgets such as sliders.
type Orientation uint8

const (
	Horizontal Orientation = iota // lays out along X
	Vertical                      // lays out along Y
)

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// EventType identifies a kind of mode event reported to an EntityStore.
type EventType uint8

const (
	EventTransitionStart EventType = iota // fires when an animated transition begins
	EventSettle                           // fires when an axis reaches a resting mode
	EventEffect                           // fires when a transition's one-shot effect plays
	EventDestroy                          // fires when the widget is destroyed
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventTransitionStart:
		return "start"
	case EventSettle:
		return "settle"
	case EventEffect:
		return "effect"
	case EventDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}
