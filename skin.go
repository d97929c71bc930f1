package willowui

import (
	"sort"
	"strings"
)

// Look is the tint a provider applies when no image is available, and the
// value blended between modes while a transition plays.
type Look struct {
	Color Color
	Alpha float64
}

// Provider is a media handle supplied by a skin: an atlas region and a
// fallback look. Providers are compared by identity; resources instantiated
// from one are cached per widget under its pointer.
type Provider struct {
	Name   string
	Region string
	Look   Look
}

type axisSkin struct {
	table     *TransitionTable
	providers map[Mode]*Provider
}

// Skin is a compiled blueprint: per widget kind and axis, a transition table
// and the providers that draw each mode. Skins are read-only once attached.
type Skin struct {
	Name string
	// Atlas names the TexturePacker sheet provider regions are cut from.
	// Backends without images ignore it.
	Atlas string
	kinds map[string]*[axisCount]*axisSkin
}

// NewSkin creates an empty skin.
func NewSkin(name string) *Skin {
	return &Skin{Name: name, kinds: make(map[string]*[axisCount]*axisSkin)}
}

func (s *Skin) axis(kind string, a Axis, create bool) *axisSkin {
	if s == nil || int(a) >= axisCount {
		return nil
	}
	axes, ok := s.kinds[kind]
	if !ok {
		if !create {
			return nil
		}
		axes = new([axisCount]*axisSkin)
		s.kinds[kind] = axes
	}
	if axes[a] == nil && create {
		axes[a] = &axisSkin{providers: make(map[Mode]*Provider)}
	}
	return axes[a]
}

// resolve finds the entry for kind, falling back from "slider.vertical" to
// "slider".
func (s *Skin) resolve(kind string, a Axis) *axisSkin {
	for {
		if as := s.axis(kind, a, false); as != nil {
			return as
		}
		i := strings.LastIndexByte(kind, '.')
		if i < 0 {
			return nil
		}
		kind = kind[:i]
	}
}

// SetTable installs the transition table for kind on axis a.
func (s *Skin) SetTable(kind string, a Axis, t *TransitionTable) {
	s.axis(kind, a, true).table = t
}

// Table returns the transition table for kind on axis a, or nil when the
// skin has none. A nil table makes every request snap.
func (s *Skin) Table(kind string, a Axis) *TransitionTable {
	if as := s.resolve(kind, a); as != nil {
		return as.table
	}
	return nil
}

// SetProvider installs the provider drawing mode m of kind on axis a.
func (s *Skin) SetProvider(kind string, a Axis, m Mode, p *Provider) {
	s.axis(kind, a, true).providers[m] = p
}

// Provider returns the provider drawing mode m of kind on axis a. Modes the
// skin has no art for resolve to the axis default mode, then the resting
// mode, so an incomplete skin still draws something.
func (s *Skin) Provider(kind string, a Axis, m Mode) *Provider {
	as := s.resolve(kind, a)
	if as == nil {
		return nil
	}
	if p, ok := as.providers[m]; ok {
		return p
	}
	if as.table != nil {
		if p, ok := as.providers[as.table.Default()]; ok {
			return p
		}
		if p, ok := as.providers[as.table.Resting()]; ok {
			return p
		}
	}
	return nil
}

// Kinds returns the widget kinds the skin describes, sorted.
func (s *Skin) Kinds() []string {
	kinds := make([]string, 0, len(s.kinds))
	for k := range s.kinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
