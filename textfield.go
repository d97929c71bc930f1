package willowui

import "unicode/utf8"

// TextFieldKind is the kind of TextField.
var TextFieldKind = &Kind{
	Name:    "textfield",
	Axes:    []Axis{AxisStyle, AxisFocus},
	Resting: [axisCount]Mode{ModeNormal, ModeNotFocused, 0},
	Reroute: [axisCount]RerouteFunc{
		AxisStyle: RerouteThrough(ModeNormal, ModePair{From: ModeActive, To: ModeDisabled}),
	},
	Size: Vec2{X: 200, Y: 28},
}

// TextField is a single-line editable text box. Gaining focus puts the style
// axis into ModeActive until focus is lost.
type TextField struct {
	*Widget

	// MaxLength limits the number of runes; 0 is unlimited.
	MaxLength int
	// OnSubmit is called by Submit with the current text.
	OnSubmit func(text string)

	text    []rune
	caret   int
	hovered bool
}

// NewTextField creates an empty text field.
func NewTextField(rt *Runtime, name string) *TextField {
	f := &TextField{}
	f.Widget = newWidget(rt, TextFieldKind, name, TextFieldKind.Name)
	f.owner = f
	f.deco = f.decorations
	return f
}

func (f *TextField) decorations() Decorations {
	caret := -1
	if f.Editing() {
		caret = f.caret
	}
	return Decorations{Label: string(f.text), Caret: caret}
}

// FillsHorizontally reports that text fields stretch to the available width.
func (f *TextField) FillsHorizontally() bool {
	return true
}

// Text returns the content.
func (f *TextField) Text() string {
	return string(f.text)
}

// Caret returns the cursor position in runes.
func (f *TextField) Caret() int {
	return f.caret
}

// Editing reports whether the field has focus.
func (f *TextField) Editing() bool {
	return f.Mode(AxisFocus) == ModeFocused
}

// SetText replaces the content and moves the caret to the end.
func (f *TextField) SetText(s string) {
	r := []rune(s)
	if f.MaxLength > 0 && len(r) > f.MaxLength {
		r = r[:f.MaxLength]
	}
	f.text = r
	f.caret = len(r)
	f.Invalidate()
}

// Insert types s at the caret. It reports how many runes were inserted.
func (f *TextField) Insert(s string) int {
	if !f.Enabled() || !f.Editing() {
		return 0
	}
	n := utf8.RuneCountInString(s)
	if f.MaxLength > 0 && len(f.text)+n > f.MaxLength {
		n = f.MaxLength - len(f.text)
	}
	if n <= 0 {
		return 0
	}
	ins := []rune(s)[:n]
	f.text = append(f.text[:f.caret], append(ins, f.text[f.caret:]...)...)
	f.caret += n
	f.Invalidate()
	return n
}

// Backspace deletes the rune before the caret.
func (f *TextField) Backspace() {
	if !f.Editing() || f.caret == 0 {
		return
	}
	f.text = append(f.text[:f.caret-1], f.text[f.caret:]...)
	f.caret--
	f.Invalidate()
}

// MoveCaret moves the caret by delta runes, clamped to the text.
func (f *TextField) MoveCaret(delta int) {
	c := max(0, min(len(f.text), f.caret+delta))
	if c == f.caret {
		return
	}
	f.caret = c
	f.Invalidate()
}

// Submit reports the text to OnSubmit.
func (f *TextField) Submit() {
	if f.OnSubmit != nil {
		f.OnSubmit(f.Text())
	}
}

// PointerEnter handles the pointer moving over the field.
func (f *TextField) PointerEnter() {
	f.hovered = true
	if !f.Editing() {
		f.RequestMode(AxisStyle, ModeHover)
	}
}

// PointerLeave handles the pointer leaving the field.
func (f *TextField) PointerLeave() {
	f.hovered = false
	if !f.Editing() {
		f.RequestMode(AxisStyle, ModeNormal)
	}
}

// PointerDown focuses the field.
func (f *TextField) PointerDown() {
	f.FocusGained()
}

// FocusGained starts editing.
func (f *TextField) FocusGained() {
	if f.RequestMode(AxisFocus, ModeFocused) {
		f.RequestMode(AxisStyle, ModeActive)
		f.Invalidate()
	}
}

// FocusLost stops editing.
func (f *TextField) FocusLost() {
	if !f.RequestMode(AxisFocus, ModeNotFocused) || !f.Enabled() {
		return
	}
	if f.hovered {
		f.RequestMode(AxisStyle, ModeHover)
	} else {
		f.RequestMode(AxisStyle, ModeNormal)
	}
	f.Invalidate()
}
