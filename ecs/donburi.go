package ecs

import (
	"github.com/phanxgames/xtween"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// FinishedEvent reports that a tween attached to Entity was cleared.
type FinishedEvent struct {
	Entity    donburi.Entity
	Completed bool
}

// FinishedEventType is the Donburi event type for finished tweens. Events are
// queued; call ProcessEvents on it to deliver them.
var FinishedEventType = events.NewEventType[FinishedEvent]()

type entityTag struct {
	world  donburi.World
	entity donburi.Entity
}

// Tag returns the tag Attach gives tweens of entity.
func Tag(world donburi.World, entity donburi.Entity) any {
	return entityTag{world: world, entity: entity}
}

// Attach tags tw with entity and installs a finally callback publishing a
// FinishedEvent. It replaces any finally callback already set on tw.
func Attach(world donburi.World, entity donburi.Entity, tw *xtween.Tween) *xtween.Tween {
	return tw.SetTag(Tag(world, entity)).OnFinally(func(completed bool) {
		FinishedEventType.Publish(world, FinishedEvent{Entity: entity, Completed: completed})
	})
}

// Detach stops the tweens s holds for entity.
func Detach(s *xtween.Scheduler, world donburi.World, entity donburi.Entity) {
	s.RemoveTag(Tag(world, entity))
}

// Component returns an idle, attached tween on s animating entity's c
// component in place. An entity that is gone or lacks the component yields a
// tween with no target, which still runs its delays and callbacks.
func Component[T any](s *xtween.Scheduler, world donburi.World, entity donburi.Entity, c *donburi.ComponentType[T]) *xtween.Tween {
	var target any
	if world.Valid(entity) {
		if entry := world.Entry(entity); entry.HasComponent(c) {
			target = c.Get(entry)
		}
	}
	return Attach(world, entity, s.New(target))
}
