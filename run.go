package willowui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Background fills the screen before widgets are composited.
	Background Color
	// TicksPerFrame is the dt passed to Runtime.Update each frame. Blueprint
	// durations are in ticks; 0 means 1000/TPS, so a duration of 1000 lasts
	// one second.
	TicksPerFrame float64
	// ShowFPS draws the actual FPS and TPS in the top-left corner.
	ShowFPS bool
	// Atlas supplies provider regions; nil paints flat looks.
	Atlas *Atlas
	// OnUpdate is called every frame after input and before Runtime.Update.
	OnUpdate func()
	// ScreenshotDir receives the PNGs queued by Runtime.Screenshot and the
	// F12 key. Defaults to "screenshots".
	ScreenshotDir string
}

// game adapts a Runtime to ebiten.Game.
type game struct {
	rt      *Runtime
	cfg     RunConfig
	painter *EbitenPainter
	input   *InputRouter
	chars   []rune
}

// Run opens a window and drives rt until the window closes. It installs an
// EbitenPainter as the runtime's painter and resource factory, and routes
// mouse and keyboard input to the widgets through an InputRouter.
func Run(rt *Runtime, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 640, 480
	}
	if cfg.Title == "" {
		cfg.Title = "willowui"
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	g := newGame(rt, cfg)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(g)
}

func newGame(rt *Runtime, cfg RunConfig) *game {
	p := NewEbitenPainter(cfg.Atlas)
	rt.SetPainter(p)
	rt.SetResourceFactory(p)
	for _, w := range rt.Widgets() {
		w.Invalidate()
	}
	return &game{rt: rt, cfg: cfg, painter: p, input: NewInputRouter(rt)}
}

func (g *game) Update() error {
	if g.rt.testRunner == nil {
		g.pollInput()
	}
	if g.cfg.OnUpdate != nil {
		g.cfg.OnUpdate()
	}
	dt := g.cfg.TicksPerFrame
	if dt <= 0 {
		dt = 1000 / float64(ebiten.TPS())
	}
	g.rt.Update(dt)
	return nil
}

func (g *game) pollInput() {
	mx, my := ebiten.CursorPosition()
	g.input.Pointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	if len(g.chars) > 0 {
		g.input.Text(string(g.chars))
	}
	for _, km := range keyMap {
		if inpututil.IsKeyJustPressed(km.ebiten) || (km.key == KeyBackspace && repeating(km.ebiten)) {
			g.input.Key(km.key)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.rt.Screenshot("manual")
	}
}

var keyMap = []struct {
	ebiten ebiten.Key
	key    Key
}{
	{ebiten.KeyBackspace, KeyBackspace},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyTab, KeyTab},
	{ebiten.KeyEscape, KeyEscape},
}

// repeating reports key-repeat frames of a held key.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d > 30 && d%4 == 0
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background.toRGBA())
	g.painter.Draw(screen, g.rt)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	writeScreenshots(screen, g.cfg.ScreenshotDir, g.rt.Frame(), g.rt.takeScreenshots())
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

var _ ebiten.Game = (*game)(nil)

// BackgroundDefault is the screen color used by the examples.
var BackgroundDefault = Color{R: 0.12, G: 0.12, B: 0.14, A: 1}
