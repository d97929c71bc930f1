package willowui

import "github.com/tanema/gween/ease"

// Kind is the per-widget-kind strategy shared by all instances: which axes
// exist, where each rests and which mode pairs must be rerouted.
type Kind struct {
	// Name is the skin key, e.g. "toggle". Orientation-specific skins
	// append a suffix ("slider.vertical").
	Name string
	// Axes lists the axes the kind animates. AxisStyle is always present.
	Axes []Axis
	// Resting is the initial and resting mode per axis.
	Resting [axisCount]Mode
	// Reroute per axis; nil means NoReroute.
	Reroute [axisCount]RerouteFunc
	// Size is the preferred size before a container resizes the widget.
	Size Vec2
}

func (k *Kind) has(a Axis) bool {
	for _, x := range k.Axes {
		if x == a {
			return true
		}
	}
	return false
}

// Decorations is the kind-specific content a painter draws on top of the
// mode art.
type Decorations struct {
	Label string
	// Value is a fill fraction in [0, 1] when HasValue is set (slider
	// position, toggle state index over its range).
	Value    float64
	HasValue bool
	// Caret is the text cursor index for editable text, -1 otherwise.
	Caret       int
	Orientation Orientation
}

// Widget is the adapter between input, the per-axis transitioners and the
// redraw queue. Concrete kinds (ToggleButton, Slider, TextField, Panel)
// embed it. Every mutation invalidates the widget.
type Widget struct {
	ID   uint32
	Name string

	// OnSettle is called whenever one of the widget's axes comes to rest.
	OnSettle func(axis Axis, mode Mode)

	rt        *Runtime
	kind      *Kind
	skinKey   string
	axes      [axisCount]*ModeTransitioner
	enabled   bool
	visible   bool
	destroyed bool
	bounds    Rect
	preferred Vec2
	skin      *Skin
	cache     ResourceCache
	deco      func() Decorations
	owner     any
	paints    int
}

func newWidget(rt *Runtime, kind *Kind, name, skinKey string) *Widget {
	w := &Widget{
		Name:      name,
		rt:        rt,
		kind:      kind,
		skinKey:   skinKey,
		enabled:   true,
		visible:   true,
		preferred: kind.Size,
	}
	w.bounds.Width, w.bounds.Height = kind.Size.X, kind.Size.Y
	rt.addWidget(w)
	for _, a := range kind.Axes {
		w.axes[a] = w.newTransitioner(a)
	}
	if rt.debug {
		debugCheckControllerCount(rt)
	}
	if s := rt.DefaultSkin(); s != nil {
		w.AttachSkin(s)
	}
	return w
}

func (w *Widget) newTransitioner(a Axis) *ModeTransitioner {
	t := NewModeTransitioner(a, w.kind.Resting[a], w.kind.Reroute[a])
	t.OnChange = w.Invalidate
	t.OnStart = func(pair ModePair, _ TransitionSpec) {
		w.rt.emit(ModeEvent{Type: EventTransitionStart, WidgetID: w.ID, Widget: w.Name,
			Axis: a, From: pair.From, To: pair.To})
	}
	t.OnSettle = func(m Mode) {
		w.rt.emit(ModeEvent{Type: EventSettle, WidgetID: w.ID, Widget: w.Name,
			Axis: a, From: m, To: NoMode})
		if w.OnSettle != nil {
			w.OnSettle(a, m)
		}
	}
	t.OnEffect = func(spec TransitionSpec) {
		if spec.Sound == "" {
			return
		}
		w.rt.playSound(spec.Sound)
		w.rt.emit(ModeEvent{Type: EventEffect, WidgetID: w.ID, Widget: w.Name,
			Axis: a, From: t.Pair().From, To: t.Pair().To, Sound: spec.Sound})
	}
	t.OnReentrantSettle = func() {
		if w.rt.debug {
			debugWarnReentrant(w, a)
		}
	}
	w.rt.register(t.Controller())
	return t
}

// Owner returns the concrete kind value embedding w (a *ToggleButton,
// *Slider, ...), or w itself for bare widgets.
func (w *Widget) Owner() any {
	if w.owner != nil {
		return w.owner
	}
	return w
}

// Kind returns the widget kind.
func (w *Widget) Kind() *Kind {
	return w.kind
}

// SkinKey returns the key the widget's transition tables are looked up by.
func (w *Widget) SkinKey() string {
	return w.skinKey
}

// Runtime returns the runtime the widget belongs to.
func (w *Widget) Runtime() *Runtime {
	return w.rt
}

// Transitioner returns the transitioner driving axis a, or nil if the kind
// has no such axis.
func (w *Widget) Transitioner(a Axis) *ModeTransitioner {
	if int(a) >= axisCount {
		return nil
	}
	return w.axes[a]
}

// Mode returns the mode axis a shows or is heading to.
func (w *Widget) Mode(a Axis) Mode {
	if t := w.Transitioner(a); t != nil {
		return t.Current()
	}
	return NoMode
}

// Pair returns the transition state of axis a.
func (w *Widget) Pair(a Axis) ModePair {
	if t := w.Transitioner(a); t != nil {
		return t.Pair()
	}
	return ModePair{From: NoMode, To: NoMode}
}

// Fraction reports the eased progress of axis a toward Pair(a).To.
func (w *Widget) Fraction(a Axis, fn ease.TweenFunc) float64 {
	if t := w.Transitioner(a); t != nil {
		return t.Fraction(fn)
	}
	return 1
}

// Settled reports whether every axis is resting.
func (w *Widget) Settled() bool {
	for _, t := range w.axes {
		if t != nil && !t.Settled() {
			return false
		}
	}
	return true
}

// Enabled reports whether the widget accepts input requests.
func (w *Widget) Enabled() bool {
	return w.enabled
}

// Visible reports whether the widget accepts requests and paints.
func (w *Widget) Visible() bool {
	return w.visible
}

// Destroyed reports whether Destroy was called.
func (w *Widget) Destroyed() bool {
	return w.destroyed
}

// RequestMode asks axis a to move to mode on behalf of input dispatch. It
// reports whether the request was accepted. Hidden and destroyed widgets
// accept nothing; disabled widgets accept only ModeDisabled on the style
// axis, losing focus, and state changes.
func (w *Widget) RequestMode(a Axis, mode Mode) bool {
	if w.destroyed {
		if w.rt.debug {
			debugCheckDestroyed(w, "RequestMode")
		}
		return false
	}
	if !w.visible {
		return false
	}
	t := w.Transitioner(a)
	if t == nil {
		return false
	}
	if !w.enabled {
		switch a {
		case AxisStyle:
			if mode != ModeDisabled {
				return false
			}
		case AxisFocus:
			if mode == ModeFocused {
				return false
			}
		}
	}
	t.Request(mode)
	return true
}

// SetEnabled enables or disables the widget. Disabling moves the style axis
// to ModeDisabled and drops focus; enabling returns the style axis to its
// resting mode.
func (w *Widget) SetEnabled(enabled bool) {
	if w.destroyed || w.enabled == enabled {
		return
	}
	w.enabled = enabled
	if style := w.axes[AxisStyle]; style != nil {
		if enabled {
			style.Request(w.kind.Resting[AxisStyle])
		} else {
			style.Request(ModeDisabled)
		}
	}
	if focus := w.axes[AxisFocus]; focus != nil && !enabled {
		focus.Request(ModeNotFocused)
	}
	w.Invalidate()
}

// SetVisible shows or hides the widget.
func (w *Widget) SetVisible(visible bool) {
	if w.destroyed || w.visible == visible {
		return
	}
	w.visible = visible
	w.Invalidate()
}

// Skin returns the attached skin, or nil.
func (w *Widget) Skin() *Skin {
	return w.skin
}

// AttachSkin installs s. Attaching the skin already attached is a no-op.
// Otherwise controllers still playing the old skin's assets are stopped and
// every cached resource is released before the new tables are installed.
func (w *Widget) AttachSkin(s *Skin) {
	if w.destroyed || s == w.skin {
		return
	}
	for _, t := range w.axes {
		if t != nil {
			t.Controller().Pause()
		}
	}
	w.cache.Release()
	w.skin = s
	for a, t := range w.axes {
		if t != nil {
			t.Attach(s.Table(w.skinKey, Axis(a)))
		}
	}
	w.Invalidate()
}

// Provider returns the skin provider for mode m on axis a, or nil.
func (w *Widget) Provider(a Axis, m Mode) *Provider {
	if w.skin == nil {
		return nil
	}
	return w.skin.Provider(w.skinKey, a, m)
}

// Resource returns the resource instantiated from p for this widget,
// creating it through the runtime's factory on first use.
func (w *Widget) Resource(p *Provider) Resource {
	return w.cache.Get(p, w.rt.factory)
}

// CachedResources returns how many resources the widget holds.
func (w *Widget) CachedResources() int {
	return w.cache.Len()
}

// Decorations returns the kind-specific content to draw.
func (w *Widget) Decorations() Decorations {
	if w.deco != nil {
		return w.deco()
	}
	return Decorations{Label: w.Name, Caret: -1}
}

// Invalidate queues the widget for repainting this frame.
func (w *Widget) Invalidate() {
	if w.destroyed {
		return
	}
	w.rt.Invalidate(w)
}

// Paint draws the widget through the runtime's painter. It is called by the
// redraw queue.
func (w *Widget) Paint() {
	if w.destroyed {
		return
	}
	w.paints++
	if w.rt.painter != nil {
		w.rt.painter.PaintWidget(w)
	}
}

// Paints returns how many times the widget was painted.
func (w *Widget) Paints() int {
	return w.paints
}

// PreferredSize returns the size the widget would like to be laid out at.
func (w *Widget) PreferredSize() Vec2 {
	return w.preferred
}

// SetPreferredSize overrides the kind's preferred size.
func (w *Widget) SetPreferredSize(size Vec2) {
	w.preferred = size
}

// Move places the widget's top-left corner.
func (w *Widget) Move(x, y float64) {
	if w.bounds.X == x && w.bounds.Y == y {
		return
	}
	w.bounds.X, w.bounds.Y = x, y
	w.Invalidate()
}

// Resize sets the widget's size.
func (w *Widget) Resize(width, height float64) {
	if w.bounds.Width == width && w.bounds.Height == height {
		return
	}
	w.bounds.Width, w.bounds.Height = width, height
	w.Invalidate()
}

// Bounds returns the widget's placement.
func (w *Widget) Bounds() Rect {
	return w.bounds
}

// Destroy removes the widget from the redraw queue and the frame driver and
// releases its cached resources. Destroy is idempotent.
func (w *Widget) Destroy() {
	if w.destroyed {
		return
	}
	w.rt.scheduler.Remove(w)
	for _, t := range w.axes {
		if t != nil {
			t.Controller().Stop()
			w.rt.unregister(t.Controller())
		}
	}
	w.cache.Release()
	w.rt.removeWidget(w)
	w.skin = nil
	w.destroyed = true
	w.rt.emit(ModeEvent{Type: EventDestroy, WidgetID: w.ID, Widget: w.Name, From: NoMode, To: NoMode})
}
