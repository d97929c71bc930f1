package willowui

import (
	"log"

	"github.com/tanema/gween/ease"
)

// RerouteFunc decides how a transitioner settled at from reaches requested.
// It returns the mode to transition to now and, when the pair may not be
// drawn directly, the mode to continue to once immediate settles (NoMode
// otherwise). Reroute functions are pure and configured per widget kind.
type RerouteFunc func(from, requested Mode) (immediate, then Mode)

// NoReroute sends every request straight to its target.
func NoReroute(_, requested Mode) (Mode, Mode) {
	return requested, NoMode
}

// RerouteThrough returns a RerouteFunc that detours every listed pair
// through via. A pair's From may be NoMode to match any origin.
func RerouteThrough(via Mode, pairs ...ModePair) RerouteFunc {
	return func(from, requested Mode) (Mode, Mode) {
		if from == via || requested == via {
			return requested, NoMode
		}
		for _, p := range pairs {
			if (p.From == NoMode || p.From == from) && p.To == requested {
				return via, requested
			}
		}
		return requested, NoMode
	}
}

// maxRequestDepth bounds nested re-issued requests so a cyclic RerouteFunc
// cannot recurse forever.
const maxRequestDepth = 16

// ModeTransitioner drives one axis of a widget between modes. It owns an
// AnimationController, the current ModePair and a single pending target.
//
// Requests made while a transition is in flight do not interrupt it: the
// latest one is kept in the pending slot and issued when the transition
// settles. Requests for the mode the axis is leaving reverse the transition.
type ModeTransitioner struct {
	axis    Axis
	table   *TransitionTable
	reroute RerouteFunc
	ctrl    *AnimationController

	pair    ModePair
	pending Mode
	spec    TransitionSpec
	loop    bool

	gen       uint64
	depth     int
	reentrant int

	// OnStart is called when an animated transition begins.
	OnStart func(pair ModePair, spec TransitionSpec)
	// OnSettle is called once every time the axis comes to rest, including
	// snaps to modes the table has no transition for.
	OnSettle func(mode Mode)
	// OnEffect is called with the spec whose one-shot side effect (sound)
	// should play. It fires for animated and instant transitions alike.
	OnEffect func(spec TransitionSpec)
	// OnChange is called after every visible mutation: starts, settles and
	// controller progress.
	OnChange func()
	// OnReentrantSettle is called when a settle callback arrives while the
	// axis is already resting.
	OnReentrantSettle func()
}

// NewModeTransitioner creates a transitioner resting at resting. Until a
// table is attached every request snaps.
func NewModeTransitioner(axis Axis, resting Mode, reroute RerouteFunc) *ModeTransitioner {
	if reroute == nil {
		reroute = NoReroute
	}
	t := &ModeTransitioner{
		axis:    axis,
		reroute: reroute,
		ctrl:    NewAnimationController(),
		pair:    ModePair{From: resting, To: NoMode},
		pending: NoMode,
	}
	t.ctrl.OnFinished(t.OnSettled)
	t.ctrl.OnAdvance(t.changed)
	return t
}

// Axis returns the axis this transitioner drives.
func (t *ModeTransitioner) Axis() Axis {
	return t.axis
}

// Controller returns the controller a frame driver must Advance.
func (t *ModeTransitioner) Controller() *AnimationController {
	return t.ctrl
}

// Table returns the attached transition table, or nil.
func (t *ModeTransitioner) Table() *TransitionTable {
	return t.table
}

// Pair returns the current transition state.
func (t *ModeTransitioner) Pair() ModePair {
	return t.pair
}

// Current returns the mode being shown or approached.
func (t *ModeTransitioner) Current() Mode {
	return t.pair.Current()
}

// Pending returns the mode waiting for the in-flight transition, or NoMode.
func (t *ModeTransitioner) Pending() Mode {
	return t.pending
}

// Settled reports whether the axis is resting.
func (t *ModeTransitioner) Settled() bool {
	return t.pair.Settled()
}

// Spec returns the spec of the in-flight transition.
func (t *ModeTransitioner) Spec() TransitionSpec {
	return t.spec
}

// ReentrantSettles returns how many settle callbacks arrived while resting.
func (t *ModeTransitioner) ReentrantSettles() int {
	return t.reentrant
}

// Attach installs a new transition table. An in-flight transition is stopped
// and accepted at its destination (or at the pending target, which the new
// skin would have reached next) so no controller keeps playing assets of
// the old skin.
func (t *ModeTransitioner) Attach(table *TransitionTable) {
	prev := t.pair.From
	if !t.pair.Settled() {
		final := t.pair.To
		if t.pending != NoMode {
			final = t.pending
		}
		t.ctrl.Stop()
		t.pair = ModePair{From: final, To: NoMode}
		t.spec = TransitionSpec{}
		t.loop = false
	}
	t.pending = NoMode
	t.table = table
	t.changed()
	if t.pair.From != prev && t.OnSettle != nil {
		t.OnSettle(t.pair.From)
	}
}

// Request asks the axis to move to target.
func (t *ModeTransitioner) Request(target Mode) {
	if target == NoMode {
		return
	}
	t.gen++
	t.depth++
	defer func() { t.depth-- }()

	if t.depth > maxRequestDepth {
		log.Printf("willowui: %s request chain too deep, snapping to %s",
			t.axis, ModeName(t.axis, target))
		t.pending = NoMode
		t.ctrl.Stop()
		t.snap(target, nil)
		return
	}

	if t.pair.Settled() {
		if target == t.pair.From {
			return
		}
		t.begin(target)
		return
	}

	switch {
	case target == t.pair.To:
		t.pending = NoMode
	case t.spec.Infinite():
		// Infinite transitions never settle, so nothing could consume
		// the pending slot. Accept the idle mode and move on.
		t.pending = NoMode
		t.collapse()
		t.Request(target)
	case target == t.pair.From:
		t.pending = NoMode
		t.reverse()
	default:
		t.pending = target
	}
}

// OnSettled is the controller's finished callback. Looping transitions
// restart; resting transitioners ignore it; otherwise the in-flight
// transition is committed and the pending target, if any, is requested.
func (t *ModeTransitioner) OnSettled() {
	if t.loop {
		t.ctrl.ResetProgress()
		return
	}
	if t.pair.Settled() {
		t.reentrant++
		if t.OnReentrantSettle != nil {
			t.OnReentrantSettle()
		}
		return
	}
	t.pair = ModePair{From: t.pair.To, To: NoMode}
	t.spec = TransitionSpec{}
	t.settled()
}

// begin starts leaving the settled mode toward target.
func (t *ModeTransitioner) begin(target Mode) {
	immediate, then := t.reroute(t.pair.From, target)
	if immediate == NoMode || immediate == t.pair.From {
		if then == NoMode || then == t.pair.From {
			return
		}
		immediate, then = then, NoMode
	}
	if then != NoMode && then != immediate {
		t.pending = then
	}

	spec, ok := t.table.Lookup(t.pair.From, immediate)
	if !ok {
		t.snap(immediate, nil)
		return
	}
	spec, _ = NormalizeSpec(spec)
	if spec.Instant() {
		t.snap(immediate, &spec)
		return
	}
	t.start(immediate, spec)
}

// start plays spec toward target.
func (t *ModeTransitioner) start(target Mode, spec TransitionSpec) {
	t.pair.To = target
	t.spec = spec
	t.loop = spec.Loop

	c := t.ctrl
	c.SetSpeed(float64(spec.Direction))
	if spec.Infinite() {
		c.SetPauseAt(NoPause)
		if spec.Loop {
			c.SetLoop(float64(spec.Cycle))
		} else {
			c.SetLoop(0)
		}
		if spec.Direction == Backward {
			c.SetProgress(float64(spec.Cycle))
		} else {
			c.SetProgress(0)
		}
	} else {
		c.SetLoop(0)
		d := float64(spec.Duration)
		if spec.Direction == Backward {
			c.SetProgress(d)
			c.SetPauseAt(0)
		} else {
			c.SetProgress(0)
			c.SetPauseAt(d)
		}
	}
	c.ClearFinishedFlag()
	c.Play()

	if t.OnStart != nil {
		t.OnStart(t.pair, spec)
	}
	t.effect(spec)
	t.changed()
}

// reverse turns an in-flight transition back toward the mode it left. When
// the way back is the same asset mirrored, the controller simply turns
// around at its current progress; otherwise the in-flight transition is
// accepted as complete and the request is re-issued from there.
func (t *ModeTransitioner) reverse() {
	back, ok := t.table.Lookup(t.pair.To, t.pair.From)
	if ok {
		back, _ = NormalizeSpec(back)
	}
	if ok && !back.Infinite() && !back.Instant() &&
		back.Duration == t.spec.Duration && back.Direction == t.spec.Direction.Inverse() {
		t.pair = ModePair{From: t.pair.To, To: t.pair.From}
		t.spec = back
		c := t.ctrl
		c.SetSpeed(float64(back.Direction))
		if back.Direction == Backward {
			c.SetPauseAt(0)
		} else {
			c.SetPauseAt(float64(back.Duration))
		}
		c.ClearFinishedFlag()
		c.Play()
		if t.OnStart != nil {
			t.OnStart(t.pair, back)
		}
		t.changed()
		return
	}
	target := t.pair.From
	t.collapse()
	t.Request(target)
}

// collapse accepts the in-flight transition as complete without notifying.
func (t *ModeTransitioner) collapse() {
	t.ctrl.Stop()
	t.pair = ModePair{From: t.pair.To, To: NoMode}
	t.spec = TransitionSpec{}
	t.loop = false
}

// snap settles at mode without animating. spec is non-nil for instant
// transitions, whose effect still plays.
func (t *ModeTransitioner) snap(mode Mode, spec *TransitionSpec) {
	t.pair = ModePair{From: mode, To: NoMode}
	t.spec = TransitionSpec{}
	t.loop = false
	if spec != nil {
		t.effect(*spec)
	}
	t.settled()
}

// settled notifies and then requests the pending target. A request made
// from inside OnSettle is newer than the pending one and replaces it.
func (t *ModeTransitioner) settled() {
	t.changed()
	next := t.pending
	t.pending = NoMode
	gen := t.gen
	if t.OnSettle != nil {
		t.OnSettle(t.pair.From)
	}
	if next != NoMode && t.gen == gen {
		t.Request(next)
	}
}

func (t *ModeTransitioner) effect(spec TransitionSpec) {
	if t.OnEffect != nil {
		t.OnEffect(spec)
	}
}

func (t *ModeTransitioner) changed() {
	if t.OnChange != nil {
		t.OnChange()
	}
}

// Fraction reports how far the axis has travelled from Pair().From toward
// Pair().To, in [0, 1], shaped by fn (nil is linear). Resting axes report 1.
// Infinite transitions report the phase of their current cycle.
func (t *ModeTransitioner) Fraction(fn ease.TweenFunc) float64 {
	if t.pair.Settled() {
		return 1
	}
	if t.spec.Infinite() {
		return t.ctrl.Fraction(float64(t.spec.Cycle), fn)
	}
	d := float64(t.spec.Duration)
	raw := clamp01(t.ctrl.Progress() / d)
	if t.spec.Direction == Backward {
		raw = 1 - raw
	}
	if fn == nil {
		return raw
	}
	return float64(fn(float32(raw), 0, 1, 1))
}
