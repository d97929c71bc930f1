package willowui

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

// captureLog redirects the standard logger for the duration of fn.
func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev, flags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	defer func() {
		log.SetOutput(prev)
		log.SetFlags(flags)
	}()
	fn()
	return buf.String()
}

const testBlueprint = `
name: plain
atlas: plain.json
kinds:
  toggle:
    style:
      transitions:
        - {from: normal, to: hover, duration: 120, sound: tick}
        - {from: hover, to: down, duration: 60, direction: backward}
        - {from: normal, to: active, duration: -2, cycle: 300}
      providers:
        normal: {region: toggle_normal.png, color: "#3a3a3a"}
        hover:  {region: toggle_hover.png, color: "#fff", alpha: 1.7}
    state:
      transitions:
        - {from: "0", to: "1", duration: 80, providers: [flip.png]}
  slider.vertical:
    focus:
      resting: unfocused
      transitions:
        - {from: unfocused, to: focused, duration: 40}
`

func TestLoadBlueprint(t *testing.T) {
	var skin *Skin
	out := captureLog(t, func() {
		var err error
		skin, err = LoadBlueprint([]byte(testBlueprint))
		if err != nil {
			t.Fatalf("LoadBlueprint: %v", err)
		}
	})
	if out != "" {
		t.Errorf("unexpected warnings:\n%s", out)
	}
	if skin.Name != "plain" || skin.Atlas != "plain.json" {
		t.Errorf("name=%q atlas=%q", skin.Name, skin.Atlas)
	}

	style := skin.Table("toggle", AxisStyle)
	if style == nil || style.Len() != 3 {
		t.Fatalf("toggle style table = %v", style)
	}
	if spec, ok := style.Lookup(ModeNormal, ModeHover); !ok || spec.Duration != 120 || spec.Sound != "tick" {
		t.Errorf("normal->hover = %+v", spec)
	}
	if spec, _ := style.Lookup(ModeHover, ModePressed); spec.Direction != Backward {
		t.Errorf("hover->pressed direction = %s", spec.Direction)
	}
	if spec, _ := style.Lookup(ModeNormal, ModeActive); !spec.Loop || spec.Cycle != 300 {
		t.Errorf("normal->active = %+v, want a 300-tick loop", spec)
	}

	hover := skin.Provider("toggle", AxisStyle, ModeHover)
	if hover == nil || hover.Region != "toggle_hover.png" || hover.Look.Alpha != 1 || hover.Look.Color != ColorWhite {
		t.Errorf("hover provider = %+v", hover)
	}
	if p := skin.Provider("toggle", AxisStyle, ModeNormal); p.Look.Alpha != 1 || p.Look.Color.R == 1 {
		t.Errorf("normal provider = %+v", p)
	}

	if spec, ok := skin.Table("toggle", AxisState).Lookup(0, 1); !ok || len(spec.Providers) != 1 {
		t.Errorf("state 0->1 = %+v", spec)
	}
	if skin.Table("slider.vertical", AxisFocus) == nil || skin.Table("slider.horizontal", AxisFocus) != nil {
		t.Error("orientation-specific table misplaced")
	}
}

func TestLoadBlueprint_Warnings(t *testing.T) {
	data := `
name: sloppy
kinds:
  toggle:
    styel:
      transitions: []
    style:
      transitions:
        - {from: normal, to: hovr, duration: 100}
        - {from: normal, to: pressed, duration: -9}
        - {from: normal, to: disabled, duration: 50, direction: sideways}
      providers:
        normal: {color: "not-a-color"}
`
	var skin *Skin
	out := captureLog(t, func() {
		var err error
		skin, err = LoadBlueprint([]byte(data))
		if err != nil {
			t.Fatalf("LoadBlueprint: %v", err)
		}
	})

	for _, want := range []string{
		`unknown axis "styel" (did you mean "style"?)`,
		`unknown mode "hovr" (did you mean "hover"?)`,
		`invalid duration -9 clamped to 0`,
		`unknown direction "sideways"`,
		`invalid color "not-a-color"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("warnings missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, `blueprint "sloppy"`) {
		t.Errorf("warnings should name the skin:\n%s", out)
	}

	style := skin.Table("toggle", AxisStyle)
	if style.Len() != 2 {
		t.Errorf("table holds %d entries, want 2", style.Len())
	}
	if spec, ok := style.Lookup(ModeNormal, ModePressed); !ok || !spec.Instant() {
		t.Errorf("clamped entry = %+v", spec)
	}
	if spec, _ := style.Lookup(ModeNormal, ModeDisabled); spec.Direction != Forward {
		t.Error("unknown direction should fall back to forward")
	}
	if p := skin.Provider("toggle", AxisStyle, ModeNormal); p == nil || p.Look.Color != ColorWhite {
		t.Errorf("provider with a bad color = %+v", p)
	}
}

func TestLoadBlueprint_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "name: [unclosed"},
		{"missing name", "kinds: {}"},
		{"blank name", "name: '  '"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBlueprint([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !IsKind(err, KindBlueprint) {
				t.Errorf("kind = %v", err)
			}
		})
	}
}

func TestLoadBlueprint_GallerySkin(t *testing.T) {
	data, err := os.ReadFile("examples/gallery/classic.yaml")
	if err != nil {
		t.Skipf("gallery skin not found: %v", err)
	}
	var skin *Skin
	out := captureLog(t, func() {
		skin, err = LoadBlueprint(data)
	})
	if err != nil {
		t.Fatalf("LoadBlueprint: %v", err)
	}
	if out != "" {
		t.Errorf("gallery skin warns:\n%s", out)
	}
	for _, kind := range []string{"toggle", "slider", "textfield", "panel"} {
		if skin.Table(kind, AxisStyle) == nil {
			t.Errorf("gallery skin has no %s style table", kind)
		}
	}
}

func TestSuggest(t *testing.T) {
	known := []string{"normal", "hover", "pressed"}
	if got := suggest("Hover ", known); got != ` (did you mean "hover"?)` {
		t.Errorf("suggest = %q", got)
	}
	if got := suggest("xyzzyplugh", known); got != "" {
		t.Errorf("distant name suggested %q", got)
	}
	if got := suggest("", known); got != "" {
		t.Errorf("empty name suggested %q", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#ffffff", Color{1, 1, 1, 1}, true},
		{"000", Color{0, 0, 0, 1}, true},
		{"#f00", Color{1, 0, 0, 1}, true},
		{"#00ff0000", Color{0, 1, 0, 0}, true},
		{"#12345", Color{}, false},
		{"#gggggg", Color{}, false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseColor(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
