package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/willowui"
)

// Driver runs a willowui.Runtime in a terminal: it routes tcell mouse and
// key events to the widgets, advances the runtime on a fixed frame clock and
// shows the screen after every frame.
type Driver struct {
	screen  tcell.Screen
	rt      *willowui.Runtime
	painter *Painter
	input   *willowui.InputRouter

	// FrameTicks is the dt passed to Runtime.Update per frame.
	FrameTicks float64
	// FrameInterval is the wall-clock time between frames.
	FrameInterval time.Duration
	// OnFrame is called after every frame.
	OnFrame func()

	buttons tcell.ButtonMask
	mx, my  int
}

// NewDriver installs a Painter for screen on rt. The screen must already be
// initialized.
func NewDriver(screen tcell.Screen, rt *willowui.Runtime) *Driver {
	p := NewPainter(screen)
	rt.SetPainter(p)
	for _, w := range rt.Widgets() {
		w.Invalidate()
	}
	return &Driver{
		screen:        screen,
		rt:            rt,
		painter:       p,
		input:         willowui.NewInputRouter(rt),
		FrameTicks:    1000.0 / 30,
		FrameInterval: time.Second / 30,
	}
}

// Painter returns the installed painter.
func (d *Driver) Painter() *Painter {
	return d.painter
}

// Input returns the router events are fed through.
func (d *Driver) Input() *willowui.InputRouter {
	return d.input
}

// HandleEvent routes one tcell event. It reports false when the event asks
// to quit (Ctrl-C or Ctrl-Q).
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		d.mx, d.my = ev.Position()
		d.buttons = ev.Buttons()
		d.input.Pointer(float64(d.mx), float64(d.my), d.buttons&tcell.Button1 != 0)
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC, tcell.KeyCtrlQ:
			return false
		case tcell.KeyRune:
			d.input.Text(string(ev.Rune()))
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			d.input.Key(willowui.KeyBackspace)
		case tcell.KeyLeft:
			d.input.Key(willowui.KeyLeft)
		case tcell.KeyRight:
			d.input.Key(willowui.KeyRight)
		case tcell.KeyEnter:
			d.input.Key(willowui.KeyEnter)
		case tcell.KeyTab:
			d.input.Key(willowui.KeyTab)
		case tcell.KeyEscape:
			d.input.Key(willowui.KeyEscape)
		}
	case *tcell.EventResize:
		d.screen.Sync()
		for _, w := range d.rt.Widgets() {
			w.Invalidate()
		}
	}
	return true
}

// Frame advances the runtime one frame and shows the screen.
func (d *Driver) Frame() {
	d.rt.Update(d.FrameTicks)
	d.screen.Show()
	if d.OnFrame != nil {
		d.OnFrame()
	}
}

// Run polls events and draws frames until ctx is done or a quit key is
// pressed.
func (d *Driver) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	d.screen.EnableMouse()
	ticker := time.NewTicker(d.FrameInterval)
	defer ticker.Stop()
	d.Frame()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !d.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			d.Frame()
		}
	}
}
