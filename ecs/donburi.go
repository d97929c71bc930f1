package ecs

import (
	"github.com/phanxgames/willowui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// ModeEventType is the Donburi event type for willowui mode events.
var ModeEventType = events.NewEventType[willowui.ModeEvent]()

// Modes mirrors one widget's axes. Moving reports, per axis, whether a
// transition is playing; Modes holds the settled mode, or the target while
// moving.
type Modes struct {
	WidgetID uint32
	Widget   string
	Modes    [3]willowui.Mode
	Moving   [3]bool
	// Sound is the last effect played by the widget.
	Sound string
}

// ModesComponent is the component holding a widget's Modes.
var ModesComponent = donburi.NewComponentType[Modes]()

var modesQuery = donburi.NewQuery(filter.Contains(ModesComponent))

// DonburiStore implements willowui.EntityStore over a Donburi world.
type DonburiStore struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
}

var _ willowui.EntityStore = (*DonburiStore)(nil)

// NewDonburiStore creates an EntityStore backed by a Donburi world. Mode
// events are published to ModeEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{world: world, entities: make(map[uint32]donburi.Entity)}
}

// EmitEvent updates the widget's Modes component and publishes the event.
// A destroy event removes the widget's entity.
func (s *DonburiStore) EmitEvent(event willowui.ModeEvent) {
	if event.Type == willowui.EventDestroy {
		s.Forget(event.WidgetID)
	} else {
		s.apply(event)
	}
	ModeEventType.Publish(s.world, event)
}

func (s *DonburiStore) apply(ev willowui.ModeEvent) {
	if int(ev.Axis) >= 3 {
		return
	}
	entry := s.entry(ev)
	m := ModesComponent.Get(entry)
	switch ev.Type {
	case willowui.EventTransitionStart:
		m.Modes[ev.Axis] = ev.To
		m.Moving[ev.Axis] = true
	case willowui.EventSettle:
		m.Modes[ev.Axis] = ev.From
		m.Moving[ev.Axis] = false
	case willowui.EventEffect:
		m.Sound = ev.Sound
	}
}

func (s *DonburiStore) entry(ev willowui.ModeEvent) *donburi.Entry {
	if e, ok := s.entities[ev.WidgetID]; ok && s.world.Valid(e) {
		return s.world.Entry(e)
	}
	e := s.world.Create(ModesComponent)
	s.entities[ev.WidgetID] = e
	entry := s.world.Entry(e)
	ModesComponent.SetValue(entry, Modes{
		WidgetID: ev.WidgetID,
		Widget:   ev.Widget,
		Modes:    [3]willowui.Mode{willowui.NoMode, willowui.NoMode, willowui.NoMode},
	})
	return entry
}

// Entity returns the entity mirroring the widget with the given ID. Widgets
// get an entity on their first mode event.
func (s *DonburiStore) Entity(widgetID uint32) (donburi.Entity, bool) {
	e, ok := s.entities[widgetID]
	return e, ok && s.world.Valid(e)
}

// Moving returns the names of widgets with at least one axis in transition.
func (s *DonburiStore) Moving() []string {
	var names []string
	modesQuery.Each(s.world, func(entry *donburi.Entry) {
		m := ModesComponent.Get(entry)
		for _, moving := range m.Moving {
			if moving {
				names = append(names, m.Widget)
				return
			}
		}
	})
	return names
}

// Forget removes the entity mirroring a widget. Destroyed widgets are
// forgotten through their destroy event.
func (s *DonburiStore) Forget(widgetID uint32) {
	if e, ok := s.entities[widgetID]; ok {
		if s.world.Valid(e) {
			s.world.Remove(e)
		}
		delete(s.entities, widgetID)
	}
}
