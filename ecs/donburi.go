package ecs

import (
	"github.com/phanxgames/ballpit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StageEventType is the Donburi event type for ballpit stage events.
var StageEventType = events.NewEventType[ballpit.StageEvent]()

// BallData links an entity to the stage's ball at Index.
type BallData struct {
	Index int
	Ball  *ballpit.Ball
}

// BallComponent is attached to entities created by Mirror.
var BallComponent = donburi.NewComponentType[BallData]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Stage events are published to StageEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) ballpit.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event ballpit.StageEvent) {
	StageEventType.Publish(s.world, event)
}

// Mirror subscribes to spawn events and creates one entity with a
// BallComponent per spawned ball. Entities appear when the world's events
// are processed.
func Mirror(world donburi.World, stage *ballpit.Stage) {
	StageEventType.Subscribe(world, func(w donburi.World, e ballpit.StageEvent) {
		if e.Type != ballpit.EventSpawn {
			return
		}
		balls := stage.Balls()
		if e.Index < 0 || e.Index >= len(balls) {
			return
		}
		entity := w.Create(BallComponent)
		BallComponent.SetValue(w.Entry(entity), BallData{Index: e.Index, Ball: balls[e.Index]})
	})
}
