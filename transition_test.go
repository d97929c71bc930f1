package willowui

import "testing"

func TestNormalizeSpec(t *testing.T) {
	tests := []struct {
		name   string
		in     TransitionSpec
		want   TransitionSpec
		wantOK bool
	}{
		{"finite", TransitionSpec{Direction: Forward, Duration: 100, Loop: true},
			TransitionSpec{Direction: Forward, Duration: 100}, true},
		{"instant", TransitionSpec{Duration: 0},
			TransitionSpec{Direction: Forward, Duration: 0}, true},
		{"infinite gets default cycle", TransitionSpec{Direction: Backward, Duration: DurationInfinite},
			TransitionSpec{Direction: Backward, Duration: DurationInfinite, Cycle: DefaultCycleTicks}, true},
		{"loop sentinel", TransitionSpec{Duration: DurationLoop, Cycle: 400},
			TransitionSpec{Direction: Forward, Duration: DurationInfinite, Loop: true, Cycle: 400}, true},
		{"invalid clamped", TransitionSpec{Duration: -7, Loop: true},
			TransitionSpec{Direction: Forward, Duration: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeSpec(tt.in)
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got.Direction != tt.want.Direction || got.Duration != tt.want.Duration ||
				got.Loop != tt.want.Loop || got.Cycle != tt.want.Cycle {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDirectionInverse(t *testing.T) {
	if Forward.Inverse() != Backward || Backward.Inverse() != Forward {
		t.Error("Inverse should swap directions")
	}
	if Backward.String() != "backward" || Forward.String() != "forward" {
		t.Error("String mismatch")
	}
}

func TestLookupPrecedence(t *testing.T) {
	exact := TransitionSpec{Duration: 10}
	mirrored := TransitionSpec{Duration: 20}
	leave := TransitionSpec{Duration: 30}
	viaDefault := TransitionSpec{Duration: 40}
	fromDefault := TransitionSpec{Duration: 50}

	// resting = normal, default = normal
	table := NewTransitionTable(ModeNormal, ModeNormal)
	table.Set(ModeHover, ModePressed, exact)
	table.Set(ModeDisabled, ModeHover, mirrored)
	table.Set(ModeMoving, ModeNormal, leave)
	table.Set(ModeNormal, ModeActive, fromDefault)

	tests := []struct {
		name     string
		from, to Mode
		want     int32
		wantDir  Direction
		wantOK   bool
	}{
		{"exact", ModeHover, ModePressed, 10, Forward, true},
		{"mirror", ModeHover, ModeDisabled, 20, Backward, true},
		{"leave to resting", ModeMoving, ModeHover, 30, Forward, true},
		{"default to target", ModePressed, ModeActive, 50, Forward, true},
		{"no match", ModePressed, ModeDisabled, 0, Forward, false},
		{"same mode", ModeHover, ModeHover, 0, Forward, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, ok := table.Lookup(tt.from, tt.to)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if spec.Duration != tt.want || spec.Direction != tt.wantDir {
				t.Errorf("got duration %d %s, want %d %s", spec.Duration, spec.Direction, tt.want, tt.wantDir)
			}
		})
	}

	// the exact pair beats its mirror
	table.Set(ModePressed, ModeHover, viaDefault)
	if spec, _ := table.Lookup(ModePressed, ModeHover); spec.Duration != 40 {
		t.Errorf("exact should win over mirror, got %d", spec.Duration)
	}
}

func TestLookupThroughDistinctDefault(t *testing.T) {
	// resting differs from default
	table := NewTransitionTable(ModeActive, ModeNormal)
	table.Set(ModeHover, ModeNormal, TransitionSpec{Duration: 70})
	spec, ok := table.Lookup(ModeHover, ModePressed)
	if !ok || spec.Duration != 70 {
		t.Errorf("(from, default) fallback: ok=%v duration=%d", ok, spec.Duration)
	}
	if table.Resting() != ModeActive || table.Default() != ModeNormal {
		t.Error("resting/default accessors")
	}
}

func TestLookupNilTable(t *testing.T) {
	var table *TransitionTable
	if _, ok := table.Lookup(ModeNormal, ModeHover); ok {
		t.Error("nil table should never match")
	}
}

func TestTableSetReportsClamp(t *testing.T) {
	table := NewTransitionTable(ModeNormal, ModeNormal)
	if table.Set(ModeNormal, ModeHover, TransitionSpec{Duration: -9}) {
		t.Error("invalid duration should report false")
	}
	spec, ok := table.Lookup(ModeNormal, ModeHover)
	if !ok || !spec.Instant() {
		t.Errorf("clamped entry should be instant, got %+v", spec)
	}
	if table.Len() != 1 {
		t.Errorf("Len = %d, want 1", table.Len())
	}
}
