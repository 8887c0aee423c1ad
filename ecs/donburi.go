package ecs

import (
	"github.com/phanxgames/statsview"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ChartEventType is the Donburi event type for statsview chart events.
// Subscribe to this in your ECS systems to receive redraw and animation events.
var ChartEventType = events.NewEventType[statsview.ChartEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Chart events are published to ChartEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) statsview.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event statsview.ChartEvent) {
	ChartEventType.Publish(s.world, event)
}
