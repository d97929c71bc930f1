package willowui

import "math"

// Key is a non-text key the input router understands.
type Key uint8

const (
	KeyBackspace Key = iota
	KeyLeft
	KeyRight
	KeyEnter
	KeyTab
	KeyEscape
)

// pointerState tracks the single pointer between samples.
type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	hit      *Widget
	hover    *Widget
	dragging bool
}

// InputRouter turns raw pointer samples and key presses into the widget
// kinds' input calls (PointerEnter, DragStart, FocusGained, ...). Backends
// feed it once per frame before Runtime.Update. It finds the topmost widget
// under the pointer by bounds only; widgets are tested in reverse creation
// order.
type InputRouter struct {
	rt *Runtime
	ps pointerState

	focus *Widget
	// DragDeadZone is the distance the pointer must travel while pressed
	// before a panel drag starts.
	DragDeadZone float64
}

// NewInputRouter creates a router for rt.
func NewInputRouter(rt *Runtime) *InputRouter {
	return &InputRouter{rt: rt, DragDeadZone: 4}
}

// Focused returns the widget holding keyboard focus, or nil. A holder that
// can no longer take input is dropped.
func (r *InputRouter) Focused() *Widget {
	if w := r.focus; w != nil && (w.Destroyed() || !w.Enabled() || !w.Visible()) {
		r.focus = nil
	}
	return r.focus
}

// hitTest finds the topmost visible widget containing (x, y).
func (r *InputRouter) hitTest(x, y float64) *Widget {
	ws := r.rt.Widgets()
	for i := len(ws) - 1; i >= 0; i-- {
		w := ws[i]
		if w.Visible() && w.Bounds().Contains(x, y) {
			return w
		}
	}
	return nil
}

// Pointer feeds one pointer sample: position and whether the primary button
// is held.
func (r *InputRouter) Pointer(x, y float64, pressed bool) {
	ps := &r.ps
	if ps.hover != nil && ps.hover.Destroyed() {
		ps.hover = nil
	}
	if ps.hit != nil && ps.hit.Destroyed() {
		ps.hit, ps.dragging = nil, false
	}

	target := r.hitTest(x, y)
	if target != ps.hover {
		if ps.hover != nil {
			pointerLeave(ps.hover)
		}
		if target != nil {
			pointerEnter(target)
		}
		ps.hover = target
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.hit = target
		ps.dragging = false
		r.press(target, x, y)
	case !pressed && ps.down:
		if ps.hit != nil {
			r.release(ps.hit)
		}
		ps.down = false
		ps.hit = nil
		ps.dragging = false
	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			r.move(x, y)
		}
		ps.lastX, ps.lastY = x, y
	default:
		ps.lastX, ps.lastY = x, y
	}
}

func (r *InputRouter) press(w *Widget, x, y float64) {
	if w == nil {
		r.SetFocus(nil)
		return
	}
	if !w.Enabled() {
		return
	}
	if w.Transitioner(AxisFocus) != nil {
		r.SetFocus(w)
	}
	switch k := w.Owner().(type) {
	case *ToggleButton:
		k.PointerDown()
	case *Slider:
		k.DragStart(x, y)
		r.ps.dragging = true
	case *TextField:
		k.PointerDown()
	}
}

func (r *InputRouter) move(x, y float64) {
	ps := &r.ps
	switch k := ps.hit.Owner().(type) {
	case *Slider:
		k.Drag(x, y)
	case *Panel:
		if !ps.dragging {
			dx, dy := x-ps.startX, y-ps.startY
			if math.Sqrt(dx*dx+dy*dy) <= r.DragDeadZone {
				return
			}
			ps.dragging = true
			k.DragStart()
			k.Drag(x-ps.startX, y-ps.startY)
			return
		}
		k.Drag(x-ps.lastX, y-ps.lastY)
	}
}

func (r *InputRouter) release(w *Widget) {
	switch k := w.Owner().(type) {
	case *ToggleButton:
		k.PointerUp()
	case *Slider:
		k.DragEnd()
	case *Panel:
		k.DragEnd()
	}
}

func pointerEnter(w *Widget) {
	switch k := w.Owner().(type) {
	case *ToggleButton:
		k.PointerEnter()
	case *Slider:
		k.PointerEnter()
	case *TextField:
		k.PointerEnter()
	case *Panel:
		k.PointerEnter()
	default:
		w.RequestMode(AxisStyle, ModeHover)
	}
}

func pointerLeave(w *Widget) {
	switch k := w.Owner().(type) {
	case *ToggleButton:
		k.PointerLeave()
	case *Slider:
		k.PointerLeave()
	case *TextField:
		k.PointerLeave()
	case *Panel:
		k.PointerLeave()
	default:
		w.RequestMode(AxisStyle, ModeNormal)
	}
}

// SetFocus moves keyboard focus to w, or clears it when w is nil.
func (r *InputRouter) SetFocus(w *Widget) {
	prev := r.Focused()
	if prev == w {
		return
	}
	if prev != nil {
		setFocus(prev, false)
	}
	r.focus = nil
	if w != nil && setFocus(w, true) {
		r.focus = w
	}
}

// setFocus tells w it gained or lost focus, through the kind when it has
// editing or activation behavior. It reports whether the focus axis accepted
// the change.
func setFocus(w *Widget, gained bool) bool {
	if f, ok := w.Owner().(focuser); ok {
		if gained {
			f.FocusGained()
		} else {
			f.FocusLost()
		}
		want := ModeNotFocused
		if gained {
			want = ModeFocused
		}
		return w.Mode(AxisFocus) == want
	}
	if gained {
		return w.RequestMode(AxisFocus, ModeFocused)
	}
	return w.RequestMode(AxisFocus, ModeNotFocused)
}

// Text types s into the focused text field.
func (r *InputRouter) Text(s string) {
	if f, ok := r.focusedField(); ok && s != "" {
		f.Insert(s)
	}
}

// Key handles a non-text key: editing keys go to the focused text field,
// Tab moves focus to the next focusable widget and Escape clears focus.
func (r *InputRouter) Key(k Key) {
	switch k {
	case KeyTab:
		r.focusNext()
		return
	case KeyEscape:
		r.SetFocus(nil)
		return
	}
	f, ok := r.focusedField()
	if !ok {
		if w := r.Focused(); w != nil && k == KeyEnter {
			if t, ok := w.Owner().(*ToggleButton); ok {
				t.Toggle()
			}
		}
		return
	}
	switch k {
	case KeyBackspace:
		f.Backspace()
	case KeyLeft:
		f.MoveCaret(-1)
	case KeyRight:
		f.MoveCaret(1)
	case KeyEnter:
		f.Submit()
	}
}

func (r *InputRouter) focusedField() (*TextField, bool) {
	w := r.Focused()
	if w == nil {
		return nil, false
	}
	f, ok := w.Owner().(*TextField)
	return f, ok
}

// focusNext focuses the next enabled, visible widget with a focus axis,
// wrapping around.
func (r *InputRouter) focusNext() {
	ws := r.rt.Widgets()
	if len(ws) == 0 {
		return
	}
	start := -1
	for i, w := range ws {
		if w == r.Focused() {
			start = i
			break
		}
	}
	for n := 1; n <= len(ws); n++ {
		w := ws[(start+n+len(ws))%len(ws)]
		if w.Enabled() && w.Visible() && w.Transitioner(AxisFocus) != nil {
			r.SetFocus(w)
			return
		}
	}
}
