// Package term paints willowui widgets into a terminal with tcell and feeds
// terminal input back to them. Widget bounds are in cells.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/willowui"
)

// Painter implements willowui.Painter over a tcell screen. Mode looks
// become cell background colors, blended while a transition plays.
type Painter struct {
	screen tcell.Screen
	// Ease shapes mode blends.
	Ease ease.TweenFunc
	// Foreground is the text color.
	Foreground tcell.Color
	// Background fills cells no widget covers.
	Background tcell.Color

	last map[*willowui.Widget]rect
}

type rect struct {
	x, y, w, h int
}

var _ willowui.Painter = (*Painter)(nil)

// NewPainter creates a painter drawing into screen.
func NewPainter(screen tcell.Screen) *Painter {
	return &Painter{
		screen:     screen,
		Ease:       ease.OutQuad,
		Foreground: tcell.ColorWhite,
		Background: tcell.ColorReset,
		last:       make(map[*willowui.Widget]rect),
	}
}

func cellRect(b willowui.Rect) rect {
	return rect{int(b.X), int(b.Y), int(b.Width), int(b.Height)}
}

func (p *Painter) fill(r rect, style tcell.Style) {
	for y := r.y; y < r.y+r.h; y++ {
		for x := r.x; x < r.x+r.w; x++ {
			p.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// PaintWidget draws w into its cells, clearing the cells it covered the
// last time it was painted.
func (p *Painter) PaintWidget(w *willowui.Widget) {
	r := cellRect(w.Bounds())
	show := w.Visible() && !w.Destroyed() && r.w > 0 && r.h > 0
	if old, ok := p.last[w]; ok && (old != r || !show) {
		p.erase(w, old)
	}
	delete(p.last, w)
	if !show {
		return
	}
	p.last[w] = r

	look := willowui.AxisLook(w, willowui.AxisStyle, p.Ease)
	bg := tcellColor(look.Color, look.Alpha)
	base := tcell.StyleDefault.Background(bg).Foreground(p.Foreground)
	if !w.Enabled() {
		base = base.Dim(true)
	}
	p.fill(r, base)

	if w.Mode(willowui.AxisFocus) == willowui.ModeFocused && r.w >= 2 && r.h >= 2 {
		p.border(r, base.Bold(true))
	}

	deco := w.Decorations()
	if deco.HasValue {
		p.value(r, deco, base)
	}
	p.label(r, deco, base)
}

// Forget drops the painter's record of w, clearing its cells. Call it after
// destroying a widget.
func (p *Painter) Forget(w *willowui.Widget) {
	if old, ok := p.last[w]; ok {
		p.erase(w, old)
		delete(p.last, w)
	}
}

// erase blanks r, which w no longer covers, and queues the widgets that
// overlapped it for repainting.
func (p *Painter) erase(w *willowui.Widget, r rect) {
	p.fill(r, tcell.StyleDefault.Background(p.Background))
	gone := willowui.Rect{X: float64(r.x), Y: float64(r.y), Width: float64(r.w), Height: float64(r.h)}
	for _, o := range w.Runtime().Widgets() {
		if o != w && o.Visible() && o.Bounds().Intersects(gone) {
			o.Invalidate()
		}
	}
}

func (p *Painter) border(r rect, style tcell.Style) {
	x1, y1 := r.x+r.w-1, r.y+r.h-1
	for x := r.x + 1; x < x1; x++ {
		p.screen.SetContent(x, r.y, tcell.RuneHLine, nil, style)
		p.screen.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := r.y + 1; y < y1; y++ {
		p.screen.SetContent(r.x, y, tcell.RuneVLine, nil, style)
		p.screen.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	p.screen.SetContent(r.x, r.y, tcell.RuneULCorner, nil, style)
	p.screen.SetContent(x1, r.y, tcell.RuneURCorner, nil, style)
	p.screen.SetContent(r.x, y1, tcell.RuneLLCorner, nil, style)
	p.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)
}

func (p *Painter) value(r rect, deco willowui.Decorations, style tcell.Style) {
	v := max(0, min(1, deco.Value))
	if deco.Orientation == willowui.Vertical {
		n := int(v*float64(r.h) + 0.5)
		for i := 0; i < n; i++ {
			p.screen.SetContent(r.x, r.y+r.h-1-i, '█', nil, style)
		}
		return
	}
	n := int(v*float64(r.w) + 0.5)
	y := r.y + r.h - 1
	for i := 0; i < n; i++ {
		p.screen.SetContent(r.x+i, y, '▄', nil, style)
	}
}

func (p *Painter) label(r rect, deco willowui.Decorations, style tcell.Style) {
	inset := 0
	if r.w > 2 {
		inset = 1
	}
	y := r.y + (r.h-1)/2
	runes := []rune(deco.Label)
	width := r.w - 2*inset
	for i := 0; i < width && i < len(runes); i++ {
		p.screen.SetContent(r.x+inset+i, y, runes[i], nil, style)
	}
	if deco.Caret >= 0 && deco.Caret < width {
		ch := ' '
		if deco.Caret < len(runes) {
			ch = runes[deco.Caret]
		}
		p.screen.SetContent(r.x+inset+deco.Caret, y, ch, nil, style.Reverse(true))
	}
}

// tcellColor flattens c over black at the given alpha.
func tcellColor(c willowui.Color, alpha float64) tcell.Color {
	a := max(0, min(1, c.A*alpha))
	r, g, b, _ := willowui.Color{R: c.R * a, G: c.G * a, B: c.B * a, A: 1}.RGBA8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
