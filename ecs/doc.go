// Package ecs provides ECS adapters for dicetray's die event system.
//
// The primary adapter is [NewDonburiStore], which bridges die state events
// (state changes, hover and drag edges) into a [Donburi] world as typed
// events. Subscribe to [DieEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	tray.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
