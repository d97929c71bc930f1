package willowui

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

// Blueprint YAML layout:
//
//	name: classic
//	atlas: classic.json
//	kinds:
//	  toggle:
//	    style:
//	      resting: normal
//	      default: normal
//	      transitions:
//	        - {from: normal, to: hover, duration: 120, sound: tick}
//	        - {from: hover, to: pressed, duration: 60, direction: backward}
//	      providers:
//	        normal:  {region: toggle_normal.png, color: "#3a3a3a"}
//	        hover:   {region: toggle_hover.png, color: "#4a4a6a", alpha: 0.9}
//
// Kind keys are widget kind names, optionally with an orientation suffix
// ("slider.vertical"). Durations are ticks: 0 instant, -1 infinite, -2
// infinite looping.

type blueprintFile struct {
	Name  string                               `yaml:"name"`
	Atlas string                               `yaml:"atlas"`
	Kinds map[string]map[string]*blueprintAxis `yaml:"kinds"`
}

type blueprintAxis struct {
	Resting     string                       `yaml:"resting"`
	Default     string                       `yaml:"default"`
	Transitions []blueprintTransition        `yaml:"transitions"`
	Providers   map[string]blueprintProvider `yaml:"providers"`
}

type blueprintTransition struct {
	From      string   `yaml:"from"`
	To        string   `yaml:"to"`
	Duration  int32    `yaml:"duration"`
	Direction string   `yaml:"direction"`
	Cycle     int32    `yaml:"cycle"`
	Sound     string   `yaml:"sound"`
	Providers []string `yaml:"providers"`
}

type blueprintProvider struct {
	Region string   `yaml:"region"`
	Color  string   `yaml:"color"`
	Alpha  *float64 `yaml:"alpha"`
}

// LoadBlueprint compiles YAML blueprint data into a Skin.
//
// Malformed YAML and a missing name are errors. Problems confined to one
// entry are logged and the entry is repaired or skipped: invalid durations
// are clamped to 0, unknown axis and mode names are skipped with a
// suggestion for the closest known name.
func LoadBlueprint(data []byte) (*Skin, error) {
	var bf blueprintFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, &Error{Op: "load blueprint", Kind: KindBlueprint, Err: err}
	}
	if strings.TrimSpace(bf.Name) == "" {
		return nil, &Error{Op: "load blueprint", Kind: KindBlueprint, Err: fmt.Errorf("missing skin name")}
	}

	skin := NewSkin(bf.Name)
	skin.Atlas = bf.Atlas
	for _, kind := range sortedKeys(bf.Kinds) {
		axes := bf.Kinds[kind]
		for _, axisName := range sortedKeys(axes) {
			a, ok := ParseAxis(axisName)
			if !ok {
				warnf(bf.Name, "%s: unknown axis %q%s", kind, axisName, suggest(axisName, axisNames[:]))
				continue
			}
			if ba := axes[axisName]; ba != nil {
				compileAxis(skin, kind, a, ba)
			}
		}
	}
	return skin, nil
}

func compileAxis(skin *Skin, kind string, a Axis, ba *blueprintAxis) {
	where := kind + "." + a.String()

	resting := initialMode(a)
	if ba.Resting != "" {
		if m, ok := parseModeWarn(skin.Name, where, a, ba.Resting); ok {
			resting = m
		}
	}
	fallback := resting
	if ba.Default != "" {
		if m, ok := parseModeWarn(skin.Name, where, a, ba.Default); ok {
			fallback = m
		}
	}

	table := NewTransitionTable(resting, fallback)
	for _, bt := range ba.Transitions {
		from, ok1 := parseModeWarn(skin.Name, where, a, bt.From)
		to, ok2 := parseModeWarn(skin.Name, where, a, bt.To)
		if !ok1 || !ok2 {
			continue
		}
		dir := Forward
		switch strings.ToLower(bt.Direction) {
		case "", "forward", "+1", "1":
		case "backward", "-1":
			dir = Backward
		default:
			warnf(skin.Name, "%s %s->%s: unknown direction %q, using forward", where, bt.From, bt.To, bt.Direction)
		}
		spec := TransitionSpec{
			Direction: dir,
			Duration:  bt.Duration,
			Cycle:     bt.Cycle,
			Sound:     bt.Sound,
			Providers: bt.Providers,
		}
		if !table.Set(from, to, spec) {
			warnf(skin.Name, "%s %s->%s: invalid duration %d clamped to 0", where, bt.From, bt.To, bt.Duration)
		}
	}
	skin.SetTable(kind, a, table)

	for _, name := range sortedKeys(ba.Providers) {
		m, ok := parseModeWarn(skin.Name, where, a, name)
		if !ok {
			continue
		}
		bp := ba.Providers[name]
		p := &Provider{
			Name:   kind + "." + a.String() + "." + ModeName(a, m),
			Region: bp.Region,
			Look:   Look{Color: ColorWhite, Alpha: 1},
		}
		if bp.Color != "" {
			c, err := ParseColor(bp.Color)
			if err != nil {
				warnf(skin.Name, "%s %s: %v", where, name, err)
			} else {
				p.Look.Color = c
			}
		}
		if bp.Alpha != nil {
			p.Look.Alpha = clamp01(*bp.Alpha)
		}
		skin.SetProvider(kind, a, m, p)
	}
}

// initialMode is the resting mode of an axis whose blueprint names none.
func initialMode(a Axis) Mode {
	switch a {
	case AxisFocus:
		return ModeNotFocused
	case AxisState:
		return 0
	}
	return ModeNormal
}

func parseModeWarn(skin, where string, a Axis, name string) (Mode, bool) {
	m, ok := ParseMode(a, name)
	if !ok {
		warnf(skin, "%s: unknown mode %q%s", where, name, suggest(name, modeVocabulary(a)))
	}
	return m, ok
}

// suggest returns a " (did you mean ...?)" hint for the known name closest
// to name, or "" when nothing is close.
func suggest(name string, known []string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	best, bestDist := "", -1
	for _, k := range known {
		d := levenshtein.ComputeDistance(name, k)
		if bestDist < 0 || d < bestDist || (d == bestDist && k < best) {
			best, bestDist = k, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(name)/3) {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}

func warnf(skin, format string, args ...any) {
	log.Printf("willowui: blueprint %q: "+format, append([]any{skin}, args...)...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa" (the leading '#' is
// optional).
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
