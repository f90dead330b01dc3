package ecs

import (
	"github.com/cubeforge/dicetray"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DieEventType is the Donburi event type for die state events. Subscribe to
// this in your ECS systems to receive state changes and hover/drag edges.
var DieEventType = events.NewEventType[dicetray.DieEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Die events are published to DieEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) dicetray.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event dicetray.DieEvent) {
	DieEventType.Publish(s.world, event)
}
