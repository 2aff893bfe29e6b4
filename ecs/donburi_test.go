package ecs

import (
	"testing"

	"github.com/phanxgames/xtween"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type position struct {
	X, Y float64
}

var positionType = donburi.NewComponentType[position]()

func newScheduler() *xtween.Scheduler {
	s := xtween.NewScheduler()
	s.TimeUnit = 1
	return s
}

func TestComponentTweenAnimatesInPlace(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(positionType)
	s := newScheduler()

	Component(s, world, e, positionType).To(10, xtween.Props{"X": 100}).Play()
	s.Step(5)

	pos := positionType.Get(world.Entry(e))
	assert.InDelta(t, 50, pos.X, 1e-9)
}

func TestFinishedEventPublished(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(positionType)
	s := newScheduler()

	var received []FinishedEvent
	FinishedEventType.Subscribe(world, func(w donburi.World, ev FinishedEvent) {
		received = append(received, ev)
	})

	Component(s, world, e, positionType).To(10, xtween.Props{"Y": 1}).Play()
	s.Step(10)

	// queued until processed
	assert.Empty(t, received)
	FinishedEventType.ProcessEvents(world)

	require.Len(t, received, 1)
	assert.Equal(t, e, received[0].Entity)
	assert.True(t, received[0].Completed)
}

func TestDetachStopsEntityTweens(t *testing.T) {
	world := donburi.NewWorld()
	a := world.Create(positionType)
	b := world.Create(positionType)
	s := newScheduler()

	var received []FinishedEvent
	FinishedEventType.Subscribe(world, func(w donburi.World, ev FinishedEvent) {
		received = append(received, ev)
	})

	Component(s, world, a, positionType).To(10, xtween.Props{"X": 1}).Play()
	Component(s, world, a, positionType).Delay(10).Play()
	kept := Component(s, world, b, positionType).To(10, xtween.Props{"X": 1}).Play()

	Detach(s, world, a)
	FinishedEventType.ProcessEvents(world)

	assert.False(t, s.ContainsTag(Tag(world, a)))
	assert.True(t, s.ContainsTag(Tag(world, b)))
	assert.True(t, kept.IsPlaying())
	require.Len(t, received, 2)
	for _, ev := range received {
		assert.Equal(t, a, ev.Entity)
		assert.False(t, ev.Completed)
	}
}

func TestComponentOnRemovedEntity(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(positionType)
	world.Remove(e)
	s := newScheduler()

	calls := 0
	tw := Component(s, world, e, positionType).To(1, xtween.Props{"X": 1}).Call(func() { calls++ }).Play()
	s.Step(1)

	assert.Nil(t, tw.Target())
	assert.Equal(t, 1, calls)
}
