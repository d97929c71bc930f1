package willowui

// ToggleKind is the kind of ToggleButton. Skins draw no Pressed→Disabled
// art, so that pair (and its reverse) passes through Normal.
var ToggleKind = &Kind{
	Name:    "toggle",
	Axes:    []Axis{AxisStyle, AxisFocus, AxisState},
	Resting: [axisCount]Mode{ModeNormal, ModeNotFocused, 0},
	Reroute: [axisCount]RerouteFunc{
		AxisStyle: RerouteThrough(ModeNormal,
			ModePair{From: ModePressed, To: ModeDisabled},
			ModePair{From: ModeDisabled, To: ModePressed},
		),
	},
	Size: Vec2{X: 120, Y: 32},
}

// ToggleButton is a button cycling through a fixed number of states
// (2 for a checkbox, more for tri-state toggles). The state is its own axis,
// so a state change animates independently of hover and press.
type ToggleButton struct {
	*Widget

	Label string
	// OnToggle is called after a click changed the state.
	OnToggle func(state int)

	states  int
	hovered bool
	pressed bool
}

// MaxToggleStates bounds the number of states a toggle may cycle through,
// matching the state values blueprints can name.
const MaxToggleStates = 1 << 14

// NewToggleButton creates a toggle with the given number of states
// (between 2 and MaxToggleStates) resting at state 0.
func NewToggleButton(rt *Runtime, name, label string, states int) *ToggleButton {
	states = max(2, min(states, MaxToggleStates))
	b := &ToggleButton{Label: label, states: states}
	b.Widget = newWidget(rt, ToggleKind, name, ToggleKind.Name)
	b.owner = b
	b.deco = b.decorations
	return b
}

func (b *ToggleButton) decorations() Decorations {
	return Decorations{
		Label:    b.Label,
		Value:    float64(b.State()) / float64(b.states-1),
		HasValue: true,
		Caret:    -1,
	}
}

// States returns the number of states the toggle cycles through.
func (b *ToggleButton) States() int {
	return b.states
}

// State returns the state the toggle shows or is animating to.
func (b *ToggleButton) State() int {
	return int(b.Mode(AxisState))
}

// SetState moves the state axis to state. Out-of-range values are ignored.
func (b *ToggleButton) SetState(state int) bool {
	if state < 0 || state >= b.states {
		return false
	}
	return b.RequestMode(AxisState, Mode(state))
}

// Toggle advances to the next state, wrapping around. Disabled toggles
// ignore it.
func (b *ToggleButton) Toggle() {
	if !b.Enabled() {
		return
	}
	next := (b.State() + 1) % b.states
	if b.SetState(next) && b.OnToggle != nil {
		b.OnToggle(next)
	}
}

// Pressed reports whether a pointer press is in progress.
func (b *ToggleButton) Pressed() bool {
	return b.pressed
}

// PointerEnter handles the pointer moving over the button.
func (b *ToggleButton) PointerEnter() {
	b.hovered = true
	if b.pressed {
		b.RequestMode(AxisStyle, ModePressed)
		return
	}
	b.RequestMode(AxisStyle, ModeHover)
}

// PointerLeave handles the pointer leaving the button. A press in progress
// stays captured but shows the resting art until the pointer returns.
func (b *ToggleButton) PointerLeave() {
	b.hovered = false
	b.RequestMode(AxisStyle, ModeNormal)
}

// PointerDown handles a button press over the toggle.
func (b *ToggleButton) PointerDown() {
	if !b.Enabled() {
		return
	}
	b.pressed = true
	b.RequestMode(AxisStyle, ModePressed)
}

// PointerUp handles the release. Releasing over the button toggles it.
func (b *ToggleButton) PointerUp() {
	if !b.pressed {
		return
	}
	b.pressed = false
	if b.hovered && b.Enabled() {
		b.Toggle()
	}
	if b.hovered {
		b.RequestMode(AxisStyle, ModeHover)
	} else {
		b.RequestMode(AxisStyle, ModeNormal)
	}
}

// SetEnabled enables or disables the toggle, cancelling a press.
func (b *ToggleButton) SetEnabled(enabled bool) {
	if !enabled {
		b.pressed = false
	}
	b.Widget.SetEnabled(enabled)
	if enabled && b.hovered {
		b.RequestMode(AxisStyle, ModeHover)
	}
}
