package willowui

import (
	"sort"
	"time"
)

// SoundSink plays the one-shot sounds named by transition specs.
type SoundSink interface {
	PlaySound(name string)
}

// EntityStore is the interface for optional ECS integration.
// When set on a Runtime, mode events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event ModeEvent)
}

// ModeEvent carries a widget mode change for the ECS bridge.
type ModeEvent struct {
	Type     EventType
	WidgetID uint32
	Widget   string
	Axis     Axis
	From     Mode
	To       Mode
	// Sound is set for EventEffect.
	Sound string
}

// Painter draws a widget. It is called from RedrawScheduler.Flush, once per
// frame at most, for every widget whose appearance changed.
type Painter interface {
	PaintWidget(w *Widget)
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithPainter sets the painter widgets draw through.
func WithPainter(p Painter) RuntimeOption {
	return func(rt *Runtime) { rt.painter = p }
}

// WithResourceFactory sets the factory widgets instantiate provider
// resources with.
func WithResourceFactory(f ResourceFactory) RuntimeOption {
	return func(rt *Runtime) { rt.factory = f }
}

// WithSoundSink sets where transition sounds play.
func WithSoundSink(s SoundSink) RuntimeOption {
	return func(rt *Runtime) { rt.sound = s }
}

// WithSkin registers skin and makes it the default.
func WithSkin(s *Skin) RuntimeOption {
	return func(rt *Runtime) {
		rt.RegisterSkin(s)
		rt.defaultSkin = s.Name
	}
}

// Runtime is the context object every widget belongs to. It owns the redraw
// queue, the ordered list of animation controllers, the skin registry and
// the optional sound, painting and ECS collaborators. A program usually has
// exactly one, created at startup and disposed at shutdown.
//
// All methods must be called from the update thread; nothing is locked.
type Runtime struct {
	scheduler   *RedrawScheduler
	controllers []*AnimationController
	compact     bool

	skins       map[string]*Skin
	defaultSkin string

	painter Painter
	factory ResourceFactory
	sound   SoundSink
	store   EntityStore

	widgets []*Widget
	byName  map[string]*Widget
	nextID  uint32

	injectQueue []injectedRequest
	testRunner  *TestRunner
	screenshots []string

	debug    bool
	frame    uint64
	disposed bool
}

// NewRuntime creates a runtime with an empty redraw queue.
func NewRuntime(opts ...RuntimeOption) *Runtime {
	rt := &Runtime{
		scheduler: NewRedrawScheduler(),
		skins:     make(map[string]*Skin),
		byName:    make(map[string]*Widget),
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Scheduler returns the runtime's redraw queue.
func (rt *Runtime) Scheduler() *RedrawScheduler {
	return rt.scheduler
}

// Frame returns the number of completed Update calls.
func (rt *Runtime) Frame() uint64 {
	return rt.frame
}

// Invalidate queues p for repainting at the end of the current frame.
func (rt *Runtime) Invalidate(p Paintable) {
	rt.scheduler.Invalidate(p)
}

// Update runs one frame: it feeds scripted and injected requests, advances
// every registered controller by dt ticks in registration order, then
// flushes the redraw queue so settlements from this frame paint this frame.
func (rt *Runtime) Update(dt float64) {
	if rt.disposed {
		return
	}
	var stats debugStats
	var t0 time.Time
	if rt.debug {
		t0 = time.Now()
	}

	if rt.testRunner != nil {
		rt.testRunner.step(rt)
	}
	rt.processInjected()

	for i := 0; i < len(rt.controllers); i++ {
		if c := rt.controllers[i]; c != nil {
			if !c.IsPaused() {
				stats.advanced++
			}
			c.Advance(dt)
		}
	}
	if rt.compact {
		rt.compactControllers()
	}

	if rt.debug {
		stats.advanceTime = time.Since(t0)
		t0 = time.Now()
	}

	stats.painted = rt.scheduler.Flush()

	if rt.debug {
		stats.flushTime = time.Since(t0)
		stats.controllers = len(rt.controllers)
		rt.debugLog(stats)
	}
	rt.frame++
}

// register appends c to the per-frame advance order.
func (rt *Runtime) register(c *AnimationController) {
	rt.controllers = append(rt.controllers, c)
}

// unregister removes c. Removal during Update leaves a hole that is
// compacted once the frame's advance loop is done.
func (rt *Runtime) unregister(c *AnimationController) {
	for i, x := range rt.controllers {
		if x == c {
			rt.controllers[i] = nil
			rt.compact = true
			return
		}
	}
}

func (rt *Runtime) compactControllers() {
	live := rt.controllers[:0]
	for _, c := range rt.controllers {
		if c != nil {
			live = append(live, c)
		}
	}
	clear(rt.controllers[len(live):])
	rt.controllers = live
	rt.compact = false
}

// Controllers returns the number of registered controllers.
func (rt *Runtime) Controllers() int {
	n := 0
	for _, c := range rt.controllers {
		if c != nil {
			n++
		}
	}
	return n
}

// RegisterSkin adds s to the registry under s.Name. The first registered
// skin becomes the default.
func (rt *Runtime) RegisterSkin(s *Skin) {
	rt.skins[s.Name] = s
	if rt.defaultSkin == "" {
		rt.defaultSkin = s.Name
	}
}

// Skin returns the registered skin called name.
func (rt *Runtime) Skin(name string) (*Skin, bool) {
	s, ok := rt.skins[name]
	return s, ok
}

// Skins returns the names of all registered skins, sorted.
func (rt *Runtime) Skins() []string {
	names := make([]string, 0, len(rt.skins))
	for n := range rt.skins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SetDefaultSkin selects the skin new widgets attach to. It reports false if
// no skin has that name.
func (rt *Runtime) SetDefaultSkin(name string) bool {
	if _, ok := rt.skins[name]; !ok {
		return false
	}
	rt.defaultSkin = name
	return true
}

// DefaultSkin returns the skin new widgets attach to, or nil.
func (rt *Runtime) DefaultSkin() *Skin {
	return rt.skins[rt.defaultSkin]
}

// SetPainter replaces the painter.
func (rt *Runtime) SetPainter(p Painter) {
	rt.painter = p
}

// SetResourceFactory replaces the resource factory. Cached resources made by
// the previous factory are released.
func (rt *Runtime) SetResourceFactory(f ResourceFactory) {
	for _, w := range rt.widgets {
		w.cache.Release()
	}
	rt.factory = f
}

// ResourceFactory returns the factory widgets instantiate resources with.
func (rt *Runtime) ResourceFactory() ResourceFactory {
	return rt.factory
}

// SetSoundSink sets where transition sounds play.
func (rt *Runtime) SetSoundSink(s SoundSink) {
	rt.sound = s
}

// SetEntityStore sets the optional ECS bridge.
func (rt *Runtime) SetEntityStore(store EntityStore) {
	rt.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, use of destroyed
// widgets panics and per-frame stats are logged to stderr.
func (rt *Runtime) SetDebugMode(enabled bool) {
	rt.debug = enabled
}

func (rt *Runtime) emit(ev ModeEvent) {
	if rt.store != nil {
		rt.store.EmitEvent(ev)
	}
}

func (rt *Runtime) playSound(name string) {
	if rt.sound != nil && name != "" {
		rt.sound.PlaySound(name)
	}
}

// addWidget assigns an ID and records w in creation order.
func (rt *Runtime) addWidget(w *Widget) {
	rt.nextID++
	w.ID = rt.nextID
	rt.widgets = append(rt.widgets, w)
	if w.Name != "" {
		rt.byName[w.Name] = w
	}
}

func (rt *Runtime) removeWidget(w *Widget) {
	for i, x := range rt.widgets {
		if x == w {
			rt.widgets = append(rt.widgets[:i], rt.widgets[i+1:]...)
			break
		}
	}
	if rt.byName[w.Name] == w {
		delete(rt.byName, w.Name)
	}
}

// Widgets returns the live widgets in creation order. The returned slice
// MUST NOT be mutated.
func (rt *Runtime) Widgets() []*Widget {
	return rt.widgets
}

// Widget returns the live widget called name.
func (rt *Runtime) Widget(name string) (*Widget, bool) {
	w, ok := rt.byName[name]
	return w, ok
}

// ApplySkin attaches s to every live widget and makes it the default.
func (rt *Runtime) ApplySkin(s *Skin) {
	rt.RegisterSkin(s)
	rt.defaultSkin = s.Name
	for _, w := range rt.widgets {
		w.AttachSkin(s)
	}
}

// Dispose destroys every widget and drops all collaborators. The runtime
// ignores Update afterwards.
func (rt *Runtime) Dispose() {
	for len(rt.widgets) > 0 {
		rt.widgets[len(rt.widgets)-1].Destroy()
	}
	rt.controllers = nil
	rt.injectQueue = nil
	rt.testRunner = nil
	rt.screenshots = nil
	rt.painter = nil
	rt.factory = nil
	rt.sound = nil
	rt.store = nil
	rt.disposed = true
}
