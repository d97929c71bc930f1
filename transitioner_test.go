package willowui

import (
	"testing"
)

// recorder collects a transitioner's callbacks.
type recorder struct {
	starts  []ModePair
	settles []Mode
	effects []string
	changes int
}

func newRecorded(axis Axis, resting Mode, table *TransitionTable, reroute RerouteFunc) (*ModeTransitioner, *recorder) {
	t := NewModeTransitioner(axis, resting, reroute)
	rec := &recorder{}
	t.OnStart = func(p ModePair, _ TransitionSpec) { rec.starts = append(rec.starts, p) }
	t.OnSettle = func(m Mode) { rec.settles = append(rec.settles, m) }
	t.OnEffect = func(s TransitionSpec) { rec.effects = append(rec.effects, s.Sound) }
	t.OnChange = func() { rec.changes++ }
	if table != nil {
		t.Attach(table)
		rec.changes = 0
	}
	return t, rec
}

// run advances t in steps of dt until it settles or maxTicks pass.
func run(t *ModeTransitioner, dt, maxTicks float64) {
	for elapsed := 0.0; elapsed < maxTicks && !t.Settled(); elapsed += dt {
		t.Controller().Advance(dt)
	}
}

func TestMissingTransitionSnaps(t *testing.T) {
	modes := []Mode{ModeNormal, ModeHover, ModePressed, ModeDisabled, ModeMoving, ModeActive}
	empty := NewTransitionTable(ModeNormal, ModeNormal)
	for _, from := range modes {
		for _, to := range modes {
			if from == to {
				continue
			}
			tr, rec := newRecorded(AxisStyle, from, empty, nil)
			tr.Request(to)
			if p := tr.Pair(); p.From != to || p.To != NoMode {
				t.Fatalf("%s->%s: pair = %+v", ModeName(AxisStyle, from), ModeName(AxisStyle, to), p)
			}
			if !tr.Controller().IsPaused() || len(rec.starts) != 0 || len(rec.effects) != 0 {
				t.Fatalf("%s->%s: controller activity on snap", ModeName(AxisStyle, from), ModeName(AxisStyle, to))
			}
			if len(rec.settles) != 1 || rec.settles[0] != to {
				t.Fatalf("%s->%s: settles = %v", ModeName(AxisStyle, from), ModeName(AxisStyle, to), rec.settles)
			}
		}
	}
}

func TestInstantTransitionFiresEffectOnce(t *testing.T) {
	table := NewTransitionTable(ModeNormal, ModeNormal)
	table.Set(ModeNormal, ModePressed, TransitionSpec{Duration: 0, Sound: "click"})
	tr, rec := newRecorded(AxisStyle, ModeNormal, table, nil)

	tr.Request(ModePressed)
	if p := tr.Pair(); p.From != ModePressed || p.To != NoMode {
		t.Fatalf("pair = %+v", p)
	}
	if len(rec.effects) != 1 || rec.effects[0] != "click" {
		t.Errorf("effects = %v, want [click]", rec.effects)
	}
	if len(rec.starts) != 0 || !tr.Controller().IsPaused() {
		t.Error("instant transition should not start the controller")
	}
	tr.Controller().Advance(100)
	if len(rec.effects) != 1 || len(rec.settles) != 1 {
		t.Errorf("effects=%v settles=%v after advance", rec.effects, rec.settles)
	}
}

func TestRequestSettledModeIsIdempotent(t *testing.T) {
	table := NewTransitionTable(ModeNormal, ModeNormal)
	table.Set(ModeNormal, ModeHover, TransitionSpec{Duration: 100})
	tr, rec := newRecorded(AxisStyle, ModeNormal, table, nil)

	tr.Request(ModeNormal)
	if rec.changes != 0 || len(rec.settles) != 0 || len(rec.starts) != 0 {
		t.Errorf("changes=%d settles=%v starts=%v; want nothing", rec.changes, rec.settles, rec.starts)
	}

	// the same through a Widget: no second invalidate
	rt := NewRuntime()
	b := NewToggleButton(rt, "b", "B", 2)
	b.RequestMode(AxisStyle, ModeHover)
	rt.Update(16)
	paints := b.Paints()
	b.RequestMode(AxisStyle, ModeHover)
	if rt.Scheduler().Queued(b.Widget) {
		t.Error("idempotent request invalidated the widget")
	}
	rt.Update(16)
	if b.Paints() != paints {
		t.Errorf("paints = %d, want %d", b.Paints(), paints)
	}
}

func TestLatestRequestWins(t *testing.T) {
	table := NewTransitionTable(ModeNormal, ModeNormal)
	table.Set(ModeNormal, ModeHover, TransitionSpec{Duration: 100})
	table.Set(ModeHover, ModePressed, TransitionSpec{Duration: 100})
	table.Set(ModeHover, ModeActive, TransitionSpec{Duration: 100})
	table.Set(ModeHover, ModeMoving, TransitionSpec{Duration: 100})
	tr, rec := newRecorded(AxisStyle, ModeNormal, table, nil)

	tr.Request(ModeHover)
	tr.Request(ModePressed)
	tr.Request(ModeActive)
	tr.Request(ModeMoving)
	if tr.Pending() != ModeMoving {
		t.Fatalf("pending = %s, want moving", ModeName(AxisStyle, tr.Pending()))
	}

	run(tr, 10, 1000)
	run(tr, 10, 1000)

	if tr.Current() != ModeMoving || !tr.Settled() {
		t.Fatalf("ended at %+v, want moving", tr.Pair())
	}
	for _, m := range rec.settles {
		if m == ModePressed || m == ModeActive {
			t.Errorf("stopped at superseded mode %s (settles %v)", ModeName(AxisStyle, m), rec.settles)
		}
	}
	if len(rec.settles) != 2 || rec.settles[0] != ModeHover || rec.settles[1] != ModeMoving {
		t.Errorf("settles = %v, want [hover moving]", rec.settles)
	}
}

func TestRequestInFlightTargetClearsPending(t *testing.T) {
	table := NewTransitionTable(ModeNormal, ModeNormal)
	table.Set(ModeNormal, ModeHover, TransitionSpec{Duration: 100})
	tr, _ := newRecorded(AxisStyle, ModeNormal, table, nil)

	tr.Request(ModeHover)
	tr.Request(ModePressed)
	tr.Request(ModeHover)
	if tr.Pending() != NoMode {
		t.Errorf("pending = %s, want none", ModeName(AxisStyle, tr.Pending()))
	}
	run(tr, 10, 1000)
	if tr.Current() != ModeHover {
		t.Errorf("ended at %+v, want hover", tr.Pair())
	}
}

func TestLoopNeverSettles(t *testing.T) {
	table := NewTransitionTable(ModeNormal, ModeNormal)
	table.Set(ModeNormal, ModeActive, TransitionSpec{Duration: DurationLoop, Cycle: 100})
	tr, rec := newRecorded(AxisStyle, ModeNormal, table, nil)

	finished := 0
	ctrl := tr.Controller()
	tr.Request(ModeActive)
	for i := 0; i < 50; i++ {
		before := ctrl.Progress()
		ctrl.Advance(20)
		if ctrl.Finished() {
			finished++
			if ctrl.Progress() >= before+20 {
				t.Fatalf("cycle end did not reset progress: %v", ctrl.Progress())
			}
			ctrl.ClearFinishedFlag()
		}
		if tr.Settled() {
			t.Fatalf("looping transition settled after %d steps", i)
		}
	}
	if finished < 3 {
		t.Errorf("finished %d cycles, want at least 3", finished)
	}
	if len(rec.settles) != 0 {
		t.Errorf("settles = %v, want none", rec.settles)
	}
	if f := tr.Fraction(nil); f < 0 || f > 1 {
		t.Errorf("loop fraction %v out of range", f)
	}
}

func TestRequestDuringInfiniteMovesOn(t *testing.T) {
	table := NewTransitionTable(ModeNormal, ModeNormal)
	table.Set(ModeNormal, ModeActive, TransitionSpec{Duration: DurationInfinite})
	table.Set(ModeActive, ModeHover, TransitionSpec{Duration: 100})
	tr, rec := newRecorded(AxisStyle, ModeNormal, table, nil)

	tr.Request(ModeActive)
	tr.Controller().Advance(5000)
	if tr.Settled() {
		t.Fatal("infinite transition settled")
	}

	tr.Request(ModeHover)
	if p := tr.Pair(); p.From != ModeActive || p.To != ModeHover {
		t.Fatalf("pair = %+v, want active->hover", p)
	}
	run(tr, 10, 1000)
	if tr.Current() != ModeHover || !tr.Settled() {
		t.Errorf("ended at %+v", tr.Pair())
	}
	if len(rec.settles) != 1 || rec.settles[0] != ModeHover {
		t.Errorf("settles = %v, want [hover]", rec.settles)
	}
}

func TestScenarioMirroredReturn(t *testing.T) {
	table := NewTransitionTable(ModeNormal, ModeNormal)
	table.Set(ModeNormal, ModeHover, TransitionSpec{Direction: Forward, Duration: 200})
	tr, rec := newRecorded(AxisStyle, ModeNormal, table, nil)
	ctrl := tr.Controller()

	tr.Request(ModeHover)
	if p := tr.Pair(); p.From != ModeNormal || p.To != ModeHover {
		t.Fatalf("pair = %+v", p)
	}
	if ctrl.Speed() != 1 || ctrl.PauseAt() != 200 || ctrl.Progress() != 0 {
		t.Fatalf("speed=%v pauseAt=%v progress=%v", ctrl.Speed(), ctrl.PauseAt(), ctrl.Progress())
	}
	for i := 0; i < 20; i++ {
		ctrl.Advance(10)
	}
	if p := tr.Pair(); p.From != ModeHover || p.To != NoMode {
		t.Fatalf("after 200 ticks pair = %+v", p)
	}

	tr.Request(ModeNormal)
	if ctrl.Speed() != -1 || ctrl.PauseAt() != 0 || ctrl.Progress() != 200 {
		t.Fatalf("mirrored: speed=%v pauseAt=%v progress=%v", ctrl.Speed(), ctrl.PauseAt(), ctrl.Progress())
	}
	last := ctrl.Progress()
	for !tr.Settled() {
		ctrl.Advance(10)
		if ctrl.Progress() > last {
			t.Fatalf("progress increased: %v -> %v", last, ctrl.Progress())
		}
		last = ctrl.Progress()
	}
	if p := tr.Pair(); p.From != ModeNormal || p.To != NoMode {
		t.Errorf("pair = %+v", p)
	}
	if len(rec.settles) != 2 || rec.settles[1] != ModeNormal {
		t.Errorf("settles = %v", rec.settles)
	}
}

func TestScenarioRerouteSettlesIntermediateFirst(t *testing.T) {
	table := NewTransitionTable(ModeNormal, ModeNormal)
	table.Set(ModePressed, ModeNormal, TransitionSpec{Duration: 60})
	table.Set(ModeNormal, ModeDisabled, TransitionSpec{Duration: 100})
	tr, rec := newRecorded(AxisStyle, ModePressed, table, ToggleKind.Reroute[AxisStyle])

	tr.Request(ModeDisabled)
	if p := tr.Pair(); p.To != ModeNormal {
		t.Fatalf("first leg = %+v, want pressed->normal", p)
	}
	run(tr, 10, 1000)
	run(tr, 10, 1000)

	if p := tr.Pair(); p.From != ModeDisabled || p.To != NoMode {
		t.Fatalf("ended at %+v, want disabled", p)
	}
	if len(rec.settles) != 2 || rec.settles[0] != ModeNormal || rec.settles[1] != ModeDisabled {
		t.Errorf("settles = %v, want [normal disabled]", rec.settles)
	}
}

func TestRerouteWithSnaps(t *testing.T) {
	tr, rec := newRecorded(AxisStyle, ModePressed, nil, ToggleKind.Reroute[AxisStyle])
	tr.Request(ModeDisabled)
	if len(rec.settles) != 2 || rec.settles[0] != ModeNormal || rec.settles[1] != ModeDisabled {
		t.Errorf("settles = %v, want [normal disabled]", rec.settles)
	}
}

func TestReverseInPlace(t *testing.T) {
	table := NewTransitionTable(ModeNormal, ModeNormal)
	table.Set(ModeNormal, ModeHover, TransitionSpec{Duration: 100})
	tr, rec := newRecorded(AxisStyle, ModeNormal, table, nil)
	ctrl := tr.Controller()

	tr.Request(ModeHover)
	ctrl.Advance(30)
	if f := tr.Fraction(nil); f != 0.3 {
		t.Fatalf("fraction = %v, want 0.3", f)
	}

	tr.Request(ModeNormal)
	if p := tr.Pair(); p.From != ModeHover || p.To != ModeNormal {
		t.Fatalf("reversed pair = %+v", p)
	}
	if ctrl.Progress() != 30 {
		t.Errorf("progress = %v, want it kept at 30", ctrl.Progress())
	}
	if f := tr.Fraction(nil); f != 0.7 {
		t.Errorf("fraction after reversal = %v, want 0.7", f)
	}
	run(tr, 10, 1000)
	if tr.Current() != ModeNormal || len(rec.settles) != 1 {
		t.Errorf("pair=%+v settles=%v", tr.Pair(), rec.settles)
	}
}

func TestReverseWithoutMirrorCollapses(t *testing.T) {
	table := NewTransitionTable(ModeNormal, ModeNormal)
	table.Set(ModeNormal, ModeHover, TransitionSpec{Duration: 100})
	table.Set(ModeHover, ModeNormal, TransitionSpec{Duration: 40})
	tr, _ := newRecorded(AxisStyle, ModeNormal, table, nil)

	tr.Request(ModeHover)
	tr.Controller().Advance(30)
	tr.Request(ModeNormal)
	if p := tr.Pair(); p.From != ModeHover || p.To != ModeNormal {
		t.Fatalf("pair = %+v", p)
	}
	if tr.Spec().Duration != 40 || tr.Controller().Progress() != 0 {
		t.Errorf("expected the dedicated 40-tick return from the start, got %+v at %v", tr.Spec(), tr.Controller().Progress())
	}
}

func TestCyclicRerouteIsBounded(t *testing.T) {
	// every request detours through the other mode
	flip := func(from, requested Mode) (Mode, Mode) {
		if from == ModeNormal {
			return ModeHover, requested
		}
		return ModeNormal, requested
	}
	tr, _ := newRecorded(AxisStyle, ModeNormal, nil, flip)
	tr.Request(ModePressed)
	if !tr.Settled() {
		t.Fatal("cyclic reroute should end settled")
	}
}

func TestAttachMidTransitionAcceptsDestination(t *testing.T) {
	table := NewTransitionTable(ModeNormal, ModeNormal)
	table.Set(ModeNormal, ModeHover, TransitionSpec{Duration: 100})
	tr, rec := newRecorded(AxisStyle, ModeNormal, table, nil)

	tr.Request(ModeHover)
	tr.Request(ModePressed)
	tr.Controller().Advance(50)

	tr.Attach(NewTransitionTable(ModeNormal, ModeNormal))
	if p := tr.Pair(); p.From != ModePressed || p.To != NoMode {
		t.Errorf("pair = %+v, want settled at the pending target", p)
	}
	if !tr.Controller().IsPaused() || tr.Pending() != NoMode {
		t.Error("attach should stop the controller and clear pending")
	}
	if len(rec.settles) != 1 || rec.settles[0] != ModePressed {
		t.Errorf("settles = %v, want [pressed]", rec.settles)
	}
}

func TestSettleCallbackRequestReplacesPending(t *testing.T) {
	table := NewTransitionTable(ModeNormal, ModeNormal)
	table.Set(ModeNormal, ModeHover, TransitionSpec{Duration: 100})
	tr, _ := newRecorded(AxisStyle, ModeNormal, table, nil)
	tr.OnSettle = func(m Mode) {
		if m == ModeHover {
			tr.Request(ModeActive)
		}
	}

	tr.Request(ModeHover)
	tr.Request(ModePressed)
	run(tr, 10, 1000)
	if tr.Current() != ModeActive {
		t.Errorf("current = %s, want active", ModeName(AxisStyle, tr.Current()))
	}
}

func TestFractionBackwardSpec(t *testing.T) {
	table := NewTransitionTable(ModeNormal, ModeNormal)
	table.Set(ModeNormal, ModeHover, TransitionSpec{Direction: Backward, Duration: 100})
	tr, _ := newRecorded(AxisStyle, ModeNormal, table, nil)

	tr.Request(ModeHover)
	if f := tr.Fraction(nil); f != 0 {
		t.Fatalf("fraction at start = %v, want 0", f)
	}
	tr.Controller().Advance(25)
	if f := tr.Fraction(nil); f != 0.25 {
		t.Errorf("fraction = %v, want 0.25", f)
	}
	if tr.Controller().Progress() != 75 {
		t.Errorf("progress = %v, want 75", tr.Controller().Progress())
	}
}
