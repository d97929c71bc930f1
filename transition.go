package willowui

// Direction is the sign applied to an AnimationController's speed while a
// transition plays. It is independent of which mode is conceptually forward.
type Direction int8

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	if d == Backward {
		return Forward
	}
	return Backward
}

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Duration sentinels as they appear in blueprints.
const (
	// DurationInfinite plays an idle animation that never settles.
	DurationInfinite int32 = -1
	// DurationLoop is normalized to DurationInfinite with Loop set.
	DurationLoop int32 = -2
)

// DefaultCycleTicks is the length of one pass of an infinite animation when
// the blueprint does not give one.
const DefaultCycleTicks int32 = 1000

// TransitionSpec describes how an axis animates between two modes.
type TransitionSpec struct {
	Direction Direction
	// Duration is in ticks: 0 is instant, DurationInfinite never settles.
	Duration int32
	// Loop restarts an infinite animation at the end of every cycle.
	Loop bool
	// Cycle is the tick length of one pass of an infinite animation.
	Cycle int32
	// Sound names the one-shot effect fired when the transition starts.
	Sound string
	// Providers names the media handles the transition draws.
	Providers []string
}

// Infinite reports whether the transition never settles by itself.
func (s TransitionSpec) Infinite() bool {
	return s.Duration == DurationInfinite
}

// Instant reports whether the transition completes without interpolation.
func (s TransitionSpec) Instant() bool {
	return s.Duration == 0
}

// Mirror returns the spec played in the opposite direction.
func (s TransitionSpec) Mirror() TransitionSpec {
	s.Direction = s.Direction.Inverse()
	return s
}

// NormalizeSpec folds the loop sentinel into Loop, fills in a missing cycle
// and clamps invalid durations to 0. ok is false when the duration had to be
// clamped.
func NormalizeSpec(s TransitionSpec) (TransitionSpec, bool) {
	ok := true
	switch {
	case s.Duration == DurationLoop:
		s.Duration = DurationInfinite
		s.Loop = true
	case s.Duration < DurationLoop:
		s.Duration = 0
		s.Loop = false
		ok = false
	case s.Duration >= 0:
		s.Loop = false
	}
	if s.Direction != Backward {
		s.Direction = Forward
	}
	if s.Infinite() && s.Cycle <= 0 {
		s.Cycle = DefaultCycleTicks
	}
	return s, ok
}

type modeKey struct {
	from, to Mode
}

// TransitionTable resolves (from, to) mode pairs of one axis to transition
// specs. Tables are built by the blueprint loader and read-only afterwards.
type TransitionTable struct {
	entries  map[modeKey]TransitionSpec
	resting  Mode
	fallback Mode
}

// NewTransitionTable creates an empty table. resting is the mode the axis
// returns to between interactions and fallback is the designated default
// mode (usually ModeNormal) that incomplete skins route through.
func NewTransitionTable(resting, fallback Mode) *TransitionTable {
	return &TransitionTable{
		entries:  make(map[modeKey]TransitionSpec),
		resting:  resting,
		fallback: fallback,
	}
}

// Set stores the spec for the exact pair (from, to), normalizing it first.
// It reports false when the duration was invalid and clamped to 0.
func (t *TransitionTable) Set(from, to Mode, spec TransitionSpec) bool {
	spec, ok := NormalizeSpec(spec)
	t.entries[modeKey{from, to}] = spec
	return ok
}

// Len returns the number of exact entries.
func (t *TransitionTable) Len() int {
	return len(t.entries)
}

// Resting returns the axis resting mode.
func (t *TransitionTable) Resting() Mode {
	return t.resting
}

// Default returns the axis fallback mode.
func (t *TransitionTable) Default() Mode {
	return t.fallback
}

// Lookup resolves the transition from one mode to another. The first match
// wins:
//
//  1. the exact pair;
//  2. the mirrored pair (to, from), played in the inverse direction;
//  3. (from, resting), reusing the asset that leaves from;
//  4. the pairs through the default mode, (from, default) then
//     (default, to), when neither side is the default.
//
// ok is false when nothing matches, which is the normal signal to snap.
// A nil table never matches.
func (t *TransitionTable) Lookup(from, to Mode) (spec TransitionSpec, ok bool) {
	if t == nil || from == to {
		return TransitionSpec{}, false
	}
	if spec, ok = t.entries[modeKey{from, to}]; ok {
		return spec, true
	}
	if spec, ok = t.entries[modeKey{to, from}]; ok {
		return spec.Mirror(), true
	}
	if to != t.resting && from != t.resting {
		if spec, ok = t.entries[modeKey{from, t.resting}]; ok {
			return spec, true
		}
	}
	if from != t.fallback && to != t.fallback {
		if spec, ok = t.entries[modeKey{from, t.fallback}]; ok {
			return spec, true
		}
		if spec, ok = t.entries[modeKey{t.fallback, to}]; ok {
			return spec, true
		}
	}
	return TransitionSpec{}, false
}
