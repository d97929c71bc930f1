package willowui

import "math"

// SliderKind is the kind of Slider. Its tables are looked up as
// "slider.horizontal" or "slider.vertical", falling back to "slider".
var SliderKind = &Kind{
	Name:    "slider",
	Axes:    []Axis{AxisStyle, AxisFocus},
	Resting: [axisCount]Mode{ModeNormal, ModeNotFocused, 0},
	Reroute: [axisCount]RerouteFunc{
		AxisStyle: RerouteThrough(ModeNormal, ModePair{From: ModeMoving, To: ModeDisabled}),
	},
	Size: Vec2{X: 160, Y: 20},
}

// Slider selects a value in a closed range by dragging a thumb. Dragging puts
// the style axis into ModeMoving; scrollbars are sliders with a page step.
type Slider struct {
	*Widget

	// OnChange is called when the value changes.
	OnChange func(value float64)

	orientation Orientation
	min, max    float64
	value       float64
	step        float64
	hovered     bool
	dragging    bool
}

// NewSlider creates a slider over [lo, hi] resting at lo.
func NewSlider(rt *Runtime, name string, orientation Orientation, lo, hi float64) *Slider {
	if hi < lo {
		lo, hi = hi, lo
	}
	s := &Slider{orientation: orientation, min: lo, max: hi, value: lo}
	s.Widget = newWidget(rt, SliderKind, name, SliderKind.Name+"."+orientation.String())
	s.owner = s
	if orientation == Vertical {
		s.preferred = Vec2{X: SliderKind.Size.Y, Y: SliderKind.Size.X}
		s.bounds.Width, s.bounds.Height = s.preferred.X, s.preferred.Y
	}
	s.deco = s.decorations
	return s
}

func (s *Slider) decorations() Decorations {
	return Decorations{
		Label:       s.Name,
		Value:       s.Fill(),
		HasValue:    true,
		Caret:       -1,
		Orientation: s.orientation,
	}
}

// FillsHorizontally reports whether organizers should stretch the slider to
// the available width.
func (s *Slider) FillsHorizontally() bool {
	return s.orientation == Horizontal
}

// Orientation returns the slider's layout axis.
func (s *Slider) Orientation() Orientation {
	return s.orientation
}

// Range returns the slider's bounds.
func (s *Slider) Range() (lo, hi float64) {
	return s.min, s.max
}

// Value returns the current value.
func (s *Slider) Value() float64 {
	return s.value
}

// Fill returns the value as a fraction of the range.
func (s *Slider) Fill() float64 {
	if s.max == s.min {
		return 0
	}
	return (s.value - s.min) / (s.max - s.min)
}

// SetStep quantizes values to multiples of step from the range start. 0 disables it.
func (s *Slider) SetStep(step float64) {
	s.step = math.Abs(step)
	s.SetValue(s.value)
}

// SetValue clamps and stores v.
func (s *Slider) SetValue(v float64) {
	v = math.Max(s.min, math.Min(s.max, v))
	if s.step > 0 {
		v = s.min + math.Round((v-s.min)/s.step)*s.step
		v = math.Min(s.max, v)
	}
	if v == s.value {
		return
	}
	s.value = v
	s.Invalidate()
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

// Dragging reports whether the thumb is being dragged.
func (s *Slider) Dragging() bool {
	return s.dragging
}

// PointerEnter handles the pointer moving over the slider.
func (s *Slider) PointerEnter() {
	s.hovered = true
	if !s.dragging {
		s.RequestMode(AxisStyle, ModeHover)
	}
}

// PointerLeave handles the pointer leaving. A drag continues off the widget.
func (s *Slider) PointerLeave() {
	s.hovered = false
	if !s.dragging {
		s.RequestMode(AxisStyle, ModeNormal)
	}
}

// DragStart begins moving the thumb to the pointer at (x, y).
func (s *Slider) DragStart(x, y float64) {
	if !s.Enabled() {
		return
	}
	s.dragging = true
	s.RequestMode(AxisStyle, ModeMoving)
	s.Drag(x, y)
}

// Drag moves the thumb to the pointer at (x, y) in the slider's parent
// coordinates.
func (s *Slider) Drag(x, y float64) {
	if !s.dragging {
		return
	}
	b := s.Bounds()
	var t float64
	if s.orientation == Horizontal {
		if b.Width > 0 {
			t = (x - b.X) / b.Width
		}
	} else if b.Height > 0 {
		t = (y - b.Y) / b.Height
	}
	s.SetValue(s.min + clamp01(t)*(s.max-s.min))
}

// DragEnd releases the thumb.
func (s *Slider) DragEnd() {
	if !s.dragging {
		return
	}
	s.dragging = false
	if s.hovered {
		s.RequestMode(AxisStyle, ModeHover)
	} else {
		s.RequestMode(AxisStyle, ModeNormal)
	}
}

// SetEnabled enables or disables the slider, ending a drag.
func (s *Slider) SetEnabled(enabled bool) {
	if !enabled {
		s.dragging = false
	}
	s.Widget.SetEnabled(enabled)
}
