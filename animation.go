package willowui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BlendLook interpolates from a to b; t is clamped to [0, 1].
func BlendLook(a, b Look, t float64) Look {
	t = clamp01(t)
	lerp := func(x, y float64) float64 { return x + (y-x)*t }
	return Look{
		Color: Color{
			R: lerp(a.Color.R, b.Color.R),
			G: lerp(a.Color.G, b.Color.G),
			B: lerp(a.Color.B, b.Color.B),
			A: lerp(a.Color.A, b.Color.A),
		},
		Alpha: lerp(a.Alpha, b.Alpha),
	}
}

// defaultLook is drawn for modes no provider covers.
var defaultLook = Look{Color: Color{R: 0.5, G: 0.5, B: 0.5, A: 1}, Alpha: 1}

// AxisLook returns the look axis a of w currently shows: the look of the
// settled mode, or while a transition plays, the blend from Pair().From to
// Pair().To at the eased fraction. Modes the skin has no provider for show a
// neutral grey.
func AxisLook(w *Widget, a Axis, fn ease.TweenFunc) Look {
	pair := w.Pair(a)
	from := providerLook(w.Provider(a, pair.From))
	if pair.Settled() {
		return from
	}
	to := providerLook(w.Provider(a, pair.To))
	return BlendLook(from, to, w.Fraction(a, fn))
}

func providerLook(p *Provider) Look {
	if p == nil {
		return defaultLook
	}
	return p.Look
}

// TweenGroup animates up to 4 float64 values of a widget simultaneously.
// Create one via the convenience constructors (TweenMove, TweenResize) and
// call Update(dt) each frame. The group applies values to the widget, which
// invalidates it. If the widget is destroyed, the group stops immediately.
//
// There is no global tween manager; callers call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	values [4]float64
	target *Widget
	apply  func(w *Widget, v [4]float64)
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values. If the
// target widget has been destroyed, Done is set and nothing is written.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target == nil || g.target.Destroyed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.values[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(g.target, g.values)
}

// TweenMove animates the widget's position to (toX, toY).
func TweenMove(w *Widget, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	b := w.Bounds()
	g := &TweenGroup{count: 2, target: w}
	g.tweens[0] = gween.New(float32(b.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(b.Y), float32(toY), duration, fn)
	g.apply = func(w *Widget, v [4]float64) { w.Move(v[0], v[1]) }
	return g
}

// TweenResize animates the widget's size to (toW, toH).
func TweenResize(w *Widget, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	b := w.Bounds()
	g := &TweenGroup{count: 2, target: w}
	g.tweens[0] = gween.New(float32(b.Width), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(b.Height), float32(toH), duration, fn)
	g.apply = func(w *Widget, v [4]float64) { w.Resize(v[0], v[1]) }
	return g
}

// TweenBounds animates position and size together.
func TweenBounds(w *Widget, to Rect, duration float32, fn ease.TweenFunc) *TweenGroup {
	b := w.Bounds()
	g := &TweenGroup{count: 4, target: w}
	g.tweens[0] = gween.New(float32(b.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(b.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(b.Width), float32(to.Width), duration, fn)
	g.tweens[3] = gween.New(float32(b.Height), float32(to.Height), duration, fn)
	g.apply = func(w *Widget, v [4]float64) {
		w.Move(v[0], v[1])
		w.Resize(v[2], v[3])
	}
	return g
}
