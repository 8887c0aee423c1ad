// Package ecs provides ECS adapters for statsview's chart events.
//
// The primary adapter is [NewDonburiSink], which bridges chart events
// (redraw requests, animation start and end) into a [Donburi] world as typed
// events. Subscribe to [ChartEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	view.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
