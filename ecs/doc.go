// Package ecs provides ECS adapters for ballpit's stage events.
//
// The primary adapter is [NewDonburiStore], which bridges spawn and click
// events into a [Donburi] world as typed events. Subscribe to
// [StageEventType] in your ECS systems to receive them, or call [Mirror] to
// keep one Donburi entity per ball.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	stage.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
