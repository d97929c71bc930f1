// Package ecs provides ECS adapters for willowui's mode events.
//
// The primary adapter is [NewDonburiStore], which bridges willowui mode
// events (transition started, settled, effect) into a [Donburi] world as
// typed events, and mirrors every widget's modes into a [Modes] component
// on an entity of its own. Subscribe to [ModeEventType] in your ECS systems
// to receive events, or query [ModesComponent] to read the current state.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	rt.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
