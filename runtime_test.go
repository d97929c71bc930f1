package willowui

import "testing"

type orderLog struct {
	names []string
}

func (o *orderLog) PaintWidget(w *Widget) { o.names = append(o.names, w.Name) }

func TestRuntime_ControllersAdvanceInRegistrationOrder(t *testing.T) {
	rt := NewRuntime(WithSkin(newTestSkin()))
	a := NewToggleButton(rt, "a", "", 2)
	b := NewToggleButton(rt, "b", "", 2)

	var settled []string
	a.OnSettle = func(ax Axis, _ Mode) { settled = append(settled, "a") }
	b.OnSettle = func(ax Axis, _ Mode) { settled = append(settled, "b") }

	b.PointerEnter()
	a.PointerEnter()
	for i := 0; i < 10; i++ {
		rt.Update(10)
	}
	if len(settled) != 2 || settled[0] != "a" || settled[1] != "b" {
		t.Errorf("settled = %v, want a before b", settled)
	}
}

func TestRuntime_PaintsInInvalidationOrder(t *testing.T) {
	var painter orderLog
	rt := NewRuntime(WithPainter(&painter))
	a := NewToggleButton(rt, "a", "", 2)
	b := NewToggleButton(rt, "b", "", 2)
	rt.Update(1)
	painter.names = nil

	b.PointerEnter()
	a.PointerEnter()
	b.PointerLeave()
	rt.Update(1)
	if len(painter.names) != 2 || painter.names[0] != "b" || painter.names[1] != "a" {
		t.Errorf("painted %v, want [b a]", painter.names)
	}
	if rt.Frame() != 2 {
		t.Errorf("frame = %d, want 2", rt.Frame())
	}
}

func TestRuntime_DestroyDuringUpdate(t *testing.T) {
	rt := NewRuntime(WithSkin(newTestSkin()))
	a := NewToggleButton(rt, "a", "", 2)
	b := NewToggleButton(rt, "b", "", 2)
	a.OnSettle = func(Axis, Mode) { b.Destroy() }

	a.PointerEnter()
	b.PointerEnter()
	for i := 0; i < 10; i++ {
		rt.Update(10)
	}
	if !b.Destroyed() || rt.Controllers() != 3 {
		t.Errorf("destroyed=%v controllers=%d", b.Destroyed(), rt.Controllers())
	}
	if len(rt.controllers) != 3 {
		t.Errorf("controller slice not compacted: %d", len(rt.controllers))
	}
}

func TestRuntime_SkinRegistry(t *testing.T) {
	rt := NewRuntime()
	if rt.DefaultSkin() != nil {
		t.Fatal("new runtime has a default skin")
	}
	dark, light := NewSkin("dark"), NewSkin("light")
	rt.RegisterSkin(light)
	rt.RegisterSkin(dark)
	if rt.DefaultSkin() != light {
		t.Error("first registered skin should be the default")
	}
	if names := rt.Skins(); len(names) != 2 || names[0] != "dark" {
		t.Errorf("Skins = %v", names)
	}
	if rt.SetDefaultSkin("missing") {
		t.Error("SetDefaultSkin accepted an unknown name")
	}
	if !rt.SetDefaultSkin("dark") || rt.DefaultSkin() != dark {
		t.Error("SetDefaultSkin failed")
	}
	if s, ok := rt.Skin("light"); !ok || s != light {
		t.Error("Skin lookup failed")
	}

	b := NewToggleButton(rt, "b", "", 2)
	if b.Skin() != dark {
		t.Error("new widgets should attach the default skin")
	}
}

func TestRuntime_ApplySkin(t *testing.T) {
	rt := NewRuntime()
	b := NewToggleButton(rt, "b", "", 2)
	s := NewSlider(rt, "s", Horizontal, 0, 1)

	skin := newTestSkin()
	rt.ApplySkin(skin)
	if b.Skin() != skin || s.Skin() != skin || rt.DefaultSkin() != skin {
		t.Fatal("ApplySkin did not reach every widget")
	}
	if b.Transitioner(AxisStyle).Table() != skin.Table("toggle", AxisStyle) {
		t.Error("toggle style table not attached")
	}

	b.PointerEnter()
	if b.Settled() {
		t.Fatal("skinned hover should animate")
	}
	rt.ApplySkin(NewSkin("bare"))
	if !b.Settled() || b.Mode(AxisStyle) != ModeHover {
		t.Errorf("reskin should accept the in-flight destination, got %+v", b.Pair(AxisStyle))
	}
}

func TestRuntime_WidgetLookup(t *testing.T) {
	rt := NewRuntime()
	a := NewToggleButton(rt, "a", "", 2)
	b := NewPanel(rt, "b", "")
	if a.ID == 0 || a.ID == b.ID {
		t.Errorf("ids = %d, %d", a.ID, b.ID)
	}
	if w, ok := rt.Widget("b"); !ok || w != b.Widget {
		t.Error("Widget lookup failed")
	}
	if ws := rt.Widgets(); len(ws) != 2 || ws[0] != a.Widget {
		t.Errorf("Widgets = %v", ws)
	}
}

func TestRuntime_Dispose(t *testing.T) {
	var painter orderLog
	rt := NewRuntime(WithPainter(&painter))
	b := NewToggleButton(rt, "b", "", 2)
	NewPanel(rt, "p", "")

	rt.Dispose()
	if !b.Destroyed() || len(rt.Widgets()) != 0 || rt.Controllers() != 0 {
		t.Errorf("destroyed=%v widgets=%d controllers=%d", b.Destroyed(), len(rt.Widgets()), rt.Controllers())
	}
	rt.Update(10)
	if len(painter.names) != 0 || rt.Frame() != 0 {
		t.Error("disposed runtime kept running")
	}
}
