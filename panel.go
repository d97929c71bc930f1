package willowui

// PanelKind is the kind of Panel (windows and framed groups).
var PanelKind = &Kind{
	Name:    "panel",
	Axes:    []Axis{AxisStyle, AxisFocus},
	Resting: [axisCount]Mode{ModeNormal, ModeNotFocused, 0},
	Reroute: [axisCount]RerouteFunc{
		AxisStyle: RerouteThrough(ModeNormal,
			ModePair{From: ModeMoving, To: ModeDisabled},
			ModePair{From: ModeActive, To: ModeDisabled},
		),
	},
	Size: Vec2{X: 240, Y: 160},
}

// Panel is window chrome: it can be activated (brought to the front and
// focused) and moved by dragging its frame.
type Panel struct {
	*Widget

	Title string

	hovered  bool
	dragging bool
}

// NewPanel creates a panel.
func NewPanel(rt *Runtime, name, title string) *Panel {
	p := &Panel{Title: title}
	p.Widget = newWidget(rt, PanelKind, name, PanelKind.Name)
	p.owner = p
	p.deco = func() Decorations { return Decorations{Label: p.Title, Caret: -1} }
	return p
}

// FillsHorizontally reports that panels stretch to the available width.
func (p *Panel) FillsHorizontally() bool {
	return true
}

// Active reports whether the panel has focus.
func (p *Panel) Active() bool {
	return p.Mode(AxisFocus) == ModeFocused
}

// Dragging reports whether the panel is being moved.
func (p *Panel) Dragging() bool {
	return p.dragging
}

// restingStyle is the style the panel shows when not being dragged.
func (p *Panel) restingStyle() Mode {
	switch {
	case p.Active():
		return ModeActive
	case p.hovered:
		return ModeHover
	default:
		return ModeNormal
	}
}

// Activate focuses the panel.
func (p *Panel) Activate() {
	if p.RequestMode(AxisFocus, ModeFocused) && !p.dragging {
		p.RequestMode(AxisStyle, ModeActive)
	}
}

// Deactivate removes focus from the panel.
func (p *Panel) Deactivate() {
	if p.RequestMode(AxisFocus, ModeNotFocused) && !p.dragging && p.Enabled() {
		p.RequestMode(AxisStyle, p.restingStyle())
	}
}

// PointerEnter handles the pointer moving over the panel.
func (p *Panel) PointerEnter() {
	p.hovered = true
	if !p.dragging {
		p.RequestMode(AxisStyle, p.restingStyle())
	}
}

// PointerLeave handles the pointer leaving the panel.
func (p *Panel) PointerLeave() {
	p.hovered = false
	if !p.dragging {
		p.RequestMode(AxisStyle, p.restingStyle())
	}
}

// DragStart begins moving the panel; it also activates it.
func (p *Panel) DragStart() {
	if !p.Enabled() {
		return
	}
	p.RequestMode(AxisFocus, ModeFocused)
	p.dragging = true
	p.RequestMode(AxisStyle, ModeMoving)
}

// Drag moves the panel by (dx, dy).
func (p *Panel) Drag(dx, dy float64) {
	if !p.dragging {
		return
	}
	b := p.Bounds()
	p.Move(b.X+dx, b.Y+dy)
}

// DragEnd stops moving the panel.
func (p *Panel) DragEnd() {
	if !p.dragging {
		return
	}
	p.dragging = false
	p.RequestMode(AxisStyle, p.restingStyle())
}

// SetEnabled enables or disables the panel, ending a drag.
func (p *Panel) SetEnabled(enabled bool) {
	if !enabled {
		p.dragging = false
	}
	p.Widget.SetEnabled(enabled)
}

// FocusGained activates the panel.
func (p *Panel) FocusGained() {
	p.Activate()
}

// FocusLost deactivates the panel.
func (p *Panel) FocusLost() {
	p.Deactivate()
}
