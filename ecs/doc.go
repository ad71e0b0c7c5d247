// Package ecs provides ECS adapters for trellis.
//
// The primary adapter is [NewDonburiStore], which bridges trellis
// interaction events (pointer, wheel, keyboard, focus) into a [Donburi]
// world as typed events. Controls opt in by setting a non-zero EntityID.
// Subscribe to [InteractionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	display.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
