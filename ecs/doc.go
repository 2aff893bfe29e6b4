// Package ecs ties tweens to [Donburi] entities.
//
// [Attach] tags a tween with an entity and publishes a [FinishedEvent] into
// the world when the tween is cleared. [Component] builds a tween that
// animates one component of an entity, and [Detach] stops every tween of an
// entity, typically from the system that removes it.
//
//	pos := donburi.NewComponentType[Position]()
//	ecs.Component(sched, world, e, pos).To(0.3, xtween.Props{"X": 64}).Play()
//
//	ecs.FinishedEventType.Subscribe(world, func(w donburi.World, ev ecs.FinishedEvent) {
//		// ...
//	})
//	// in the frame loop, after stepping the scheduler
//	ecs.FinishedEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
