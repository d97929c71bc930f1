package willowui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"
)

// EbitenPainter paints widgets into per-widget offscreen images and
// composites them onto the screen. It is both the runtime's Painter and its
// ResourceFactory: provider regions are cut from the atlas once per widget
// and released with the widget's cache.
type EbitenPainter struct {
	// Ease shapes mode blends; nil is linear.
	Ease ease.TweenFunc
	// LabelColor is the color of labels and the caret.
	LabelColor Color

	atlas  *Atlas
	face   text.Face
	images map[*Widget]*ebiten.Image
}

// NewEbitenPainter creates a painter drawing provider regions from atlas,
// which may be nil for flat-color skins.
func NewEbitenPainter(atlas *Atlas) *EbitenPainter {
	return &EbitenPainter{
		Ease:       ease.OutQuad,
		LabelColor: ColorWhite,
		atlas:      atlas,
		face:       text.NewGoXFace(basicfont.Face7x13),
		images:     make(map[*Widget]*ebiten.Image),
	}
}

// SetAtlas replaces the atlas. Widgets keep the regions they already cut
// until their skin changes.
func (p *EbitenPainter) SetAtlas(atlas *Atlas) {
	p.atlas = atlas
}

// regionResource is a provider region copied into its own image.
type regionResource struct {
	img *ebiten.Image
}

func (r *regionResource) Release() {
	if r.img != nil {
		r.img.Deallocate()
		r.img = nil
	}
}

// NewResource cuts p's region out of the atlas. Providers without a region
// draw their flat look and need no resource.
func (p *EbitenPainter) NewResource(prov *Provider) Resource {
	if prov.Region == "" || p.atlas == nil {
		return nil
	}
	src := p.atlas.SubImage(prov.Region)
	b := src.Bounds()
	img := ebiten.NewImage(b.Dx(), b.Dy())
	img.DrawImage(src, nil)
	return &regionResource{img: img}
}

// Image returns the offscreen image last painted for w, or nil.
func (p *EbitenPainter) Image(w *Widget) *ebiten.Image {
	return p.images[w]
}

// PaintWidget repaints w's offscreen image: the style art blended between
// the pair's modes, a focus outline, the kind's value bar, label and caret.
func (p *EbitenPainter) PaintWidget(w *Widget) {
	b := w.Bounds()
	iw, ih := int(b.Width), int(b.Height)
	img := p.images[w]
	if img != nil && (img.Bounds().Dx() != iw || img.Bounds().Dy() != ih) {
		img.Deallocate()
		img = nil
		delete(p.images, w)
	}
	if iw <= 0 || ih <= 0 {
		return
	}
	if img == nil {
		img = ebiten.NewImage(iw, ih)
		p.images[w] = img
	}
	img.Clear()
	if !w.Visible() {
		return
	}

	p.paintAxis(img, w, AxisStyle)
	p.paintFocus(img, w)

	deco := w.Decorations()
	if deco.HasValue {
		p.paintValue(img, deco)
	}
	if deco.Label != "" || deco.Caret >= 0 {
		p.paintLabel(img, deco)
	}
}

// paintAxis draws the from-mode art faded out and the to-mode art faded in.
func (p *EbitenPainter) paintAxis(img *ebiten.Image, w *Widget, a Axis) {
	pair := w.Pair(a)
	if pair.From == NoMode {
		return
	}
	if pair.Settled() {
		p.paintProvider(img, w, w.Provider(a, pair.From), 1)
		return
	}
	f := w.Fraction(a, p.ease())
	p.paintProvider(img, w, w.Provider(a, pair.From), 1-f)
	p.paintProvider(img, w, w.Provider(a, pair.To), f)
}

func (p *EbitenPainter) paintProvider(img *ebiten.Image, w *Widget, prov *Provider, alpha float64) {
	if alpha <= 0 {
		return
	}
	look := providerLook(prov)
	c := look.Color
	c.A *= look.Alpha * alpha

	src := ensureWhiteImage()
	if res, _ := w.Resource(prov).(*regionResource); res != nil && res.img != nil {
		src = res.img
	}
	sb := src.Bounds()
	db := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(db.Dx())/float64(sb.Dx()), float64(db.Dy())/float64(sb.Dy()))
	op.ColorScale.ScaleWithColor(c.toRGBA())
	img.DrawImage(src, op)
}

// Flat looks are drawn by stretching a white pixel, so they blend like art.
var whiteImage *ebiten.Image

func ensureWhiteImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(1, 1)
		whiteImage.Fill(color.White)
	}
	return whiteImage
}

func (p *EbitenPainter) paintFocus(img *ebiten.Image, w *Widget) {
	pair := w.Pair(AxisFocus)
	if pair.From == NoMode {
		return
	}
	var strength float64
	switch {
	case pair.Settled() && pair.From == ModeFocused:
		strength = 1
	case !pair.Settled() && pair.To == ModeFocused:
		strength = w.Fraction(AxisFocus, p.ease())
	case !pair.Settled() && pair.From == ModeFocused:
		strength = 1 - w.Fraction(AxisFocus, p.ease())
	}
	if strength <= 0 {
		return
	}
	c := providerLook(w.Provider(AxisFocus, ModeFocused)).Color
	c.A *= strength
	outline(img, c.toRGBA(), 2)
}

func outline(img *ebiten.Image, c color.Color, width int) {
	b := img.Bounds()
	for _, r := range []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+width),
		image.Rect(b.Min.X, b.Max.Y-width, b.Max.X, b.Max.Y),
		image.Rect(b.Min.X, b.Min.Y, b.Min.X+width, b.Max.Y),
		image.Rect(b.Max.X-width, b.Min.Y, b.Max.X, b.Max.Y),
	} {
		img.SubImage(r).(*ebiten.Image).Fill(c)
	}
}

func (p *EbitenPainter) paintValue(img *ebiten.Image, deco Decorations) {
	b := img.Bounds()
	v := clamp01(deco.Value)
	var r image.Rectangle
	if deco.Orientation == Vertical {
		h := int(float64(b.Dy()) * v)
		r = image.Rect(b.Min.X, b.Max.Y-h, b.Min.X+4, b.Max.Y)
	} else {
		r = image.Rect(b.Min.X, b.Max.Y-4, b.Min.X+int(float64(b.Dx())*v), b.Max.Y)
	}
	if r.Empty() {
		return
	}
	c := p.LabelColor
	c.A *= 0.6
	img.SubImage(r).(*ebiten.Image).Fill(c.toRGBA())
}

func (p *EbitenPainter) paintLabel(img *ebiten.Image, deco Decorations) {
	const pad = 6
	b := img.Bounds()
	_, lh := text.Measure("Mg", p.face, 0)
	y := float64(b.Dy())/2 - lh/2

	op := &text.DrawOptions{}
	op.GeoM.Translate(pad, y)
	op.ColorScale.ScaleWithColor(p.LabelColor.toRGBA())
	text.Draw(img, deco.Label, p.face, op)

	if deco.Caret >= 0 {
		runes := []rune(deco.Label)
		caret := min(deco.Caret, len(runes))
		x := pad + int(text.Advance(string(runes[:caret]), p.face))
		r := image.Rect(x, int(y), x+1, int(y+lh))
		img.SubImage(r).(*ebiten.Image).Fill(p.LabelColor.toRGBA())
	}
}

func (p *EbitenPainter) ease() ease.TweenFunc {
	if p.Ease == nil {
		return ease.Linear
	}
	return p.Ease
}

// Draw composites every visible widget of rt onto screen in creation order
// and drops images of destroyed widgets.
func (p *EbitenPainter) Draw(screen *ebiten.Image, rt *Runtime) {
	for _, w := range rt.Widgets() {
		img := p.images[w]
		if img == nil || !w.Visible() {
			continue
		}
		b := w.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(b.X, b.Y)
		screen.DrawImage(img, op)
	}
	if len(p.images) > len(rt.Widgets()) {
		for w, img := range p.images {
			if w.Destroyed() {
				img.Deallocate()
				delete(p.images, w)
			}
		}
	}
}
