package willowui

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 10}
	tests := []struct {
		x, y float64
		want bool
	}{
		{15, 15, true},
		{10, 10, true},
		{30, 20, true},
		{9.9, 15, false},
		{15, 20.1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v", tt.x, tt.y, got)
		}
	}
}

func TestRectIntersection(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	got, ok := a.Intersection(b)
	if !ok || got != (Rect{X: 5, Y: 5, Width: 5, Height: 5}) {
		t.Errorf("Intersection = %+v, %v", got, ok)
	}
	if !a.Intersects(b) {
		t.Error("Intersects = false")
	}

	edge := Rect{X: 10, Y: 0, Width: 5, Height: 5}
	if !a.Intersects(edge) {
		t.Error("rects sharing an edge should intersect")
	}
	if got, ok := Intersect(a, edge); !ok || got.Width != 0 {
		t.Errorf("edge intersection = %+v, %v", got, ok)
	}

	far := Rect{X: 50, Y: 50, Width: 1, Height: 1}
	if a.Intersects(far) {
		t.Error("distant rects intersect")
	}
	if got, ok := Intersect(a, far); ok || got != (Rect{}) {
		t.Errorf("disjoint intersection = %+v, %v", got, ok)
	}
}

func TestColorRGBA8(t *testing.T) {
	r, g, b, a := Color{R: 1, G: 0.5, B: 0, A: 2}.RGBA8()
	if r != 255 || b != 0 || a != 255 {
		t.Errorf("RGBA8 = %d %d %d %d", r, g, b, a)
	}
	if g < 127 || g > 128 {
		t.Errorf("g = %d", g)
	}
}

func TestEventTypeString(t *testing.T) {
	for typ, want := range map[EventType]string{
		EventTransitionStart: "start",
		EventSettle:          "settle",
		EventEffect:          "effect",
		EventDestroy:         "destroy",
	} {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", typ, got, want)
		}
	}
}
