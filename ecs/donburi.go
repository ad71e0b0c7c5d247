package ecs

import (
	"github.com/phanxgames/trellis"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for trellis interaction
// events.
var InteractionEventType = events.NewEventType[trellis.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world. Events
// are published to InteractionEventType and delivered by
// InteractionEventType.ProcessEvents.
func NewDonburiStore(world donburi.World) trellis.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event trellis.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
