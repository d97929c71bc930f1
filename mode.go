package willowui

import (
	"strconv"
	"strings"
)

// Mode is a named visual configuration along one axis. Its value is only
// meaningful within that axis: ModeHover and ModeFocused share a number.
type Mode int16

// NoMode marks the absence of a mode, e.g. ModePair.To while resting.
const NoMode Mode = -1

// Style axis modes. Widget kinds use the subset their skins draw.
const (
	ModeNormal   Mode = iota // idle
	ModeHover                // pointer over the widget
	ModePressed              // pointer button held on the widget
	ModeDisabled             // not accepting input
	ModeMoving               // being dragged (slider thumb, window)
	ModeActive               // editing (text field) or frontmost (panel)
)

// Focus axis modes.
const (
	ModeNotFocused Mode = iota
	ModeFocused
)

// Axis identifies one independent mode dimension of a widget.
type Axis uint8

const (
	AxisStyle Axis = iota // normal/hover/pressed/disabled and kind extras
	AxisFocus             // focused/not focused
	AxisState             // small integer states of multi-state toggles

	axisCount = 3
)

var axisNames = [axisCount]string{"style", "focus", "state"}

// String returns the axis name used in blueprints.
func (a Axis) String() string {
	if int(a) < len(axisNames) {
		return axisNames[a]
	}
	return "axis(" + strconv.Itoa(int(a)) + ")"
}

// ParseAxis converts a blueprint axis name to an Axis.
func ParseAxis(name string) (Axis, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range axisNames {
		if n == name {
			return Axis(i), true
		}
	}
	return 0, false
}

var styleModeNames = map[Mode]string{
	ModeNormal:   "normal",
	ModeHover:    "hover",
	ModePressed:  "pressed",
	ModeDisabled: "disabled",
	ModeMoving:   "moving",
	ModeActive:   "active",
}

var focusModeNames = map[Mode]string{
	ModeNotFocused: "unfocused",
	ModeFocused:    "focused",
}

// ModeName returns the blueprint name of m on axis a. State modes are their
// decimal value.
func ModeName(a Axis, m Mode) string {
	if m == NoMode {
		return "none"
	}
	switch a {
	case AxisStyle:
		if n, ok := styleModeNames[m]; ok {
			return n
		}
	case AxisFocus:
		if n, ok := focusModeNames[m]; ok {
			return n
		}
	}
	return strconv.Itoa(int(m))
}

// ParseMode converts a blueprint mode name on axis a to a Mode. State modes
// accept any non-negative integer below 1<<14.
func ParseMode(a Axis, name string) (Mode, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch a {
	case AxisStyle:
		for m, n := range styleModeNames {
			if n == name {
				return m, true
			}
		}
		// "down" is the name older skins use for the pressed art.
		if name == "down" {
			return ModePressed, true
		}
	case AxisFocus:
		for m, n := range focusModeNames {
			if n == name {
				return m, true
			}
		}
		if name == "notfocused" || name == "not_focused" {
			return ModeNotFocused, true
		}
	case AxisState:
		v, err := strconv.Atoi(name)
		if err == nil && v >= 0 && v < 1<<14 {
			return Mode(v), true
		}
	}
	return NoMode, false
}

// modeVocabulary lists the known names on axis a, used for suggestions.
func modeVocabulary(a Axis) []string {
	var names []string
	switch a {
	case AxisStyle:
		for _, n := range styleModeNames {
			names = append(names, n)
		}
	case AxisFocus:
		for _, n := range focusModeNames {
			names = append(names, n)
		}
	}
	return names
}

// ModePair is the transition state of one axis. From is the last settled
// mode; To is NoMode while resting, otherwise the mode being approached.
// To never equals From while set.
type ModePair struct {
	From, To Mode
}

// Settled reports whether the pair is resting.
func (p ModePair) Settled() bool {
	return p.To == NoMode
}

// Current returns the mode the axis is showing or heading to.
func (p ModePair) Current() Mode {
	if p.To != NoMode {
		return p.To
	}
	return p.From
}
