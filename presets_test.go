package xtween

import (
	"math"
	"testing"

	"github.com/phanxgames/xtween/easing"
)

type node struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Alpha          float64
	Rotation       float64
	Color          rgba
}

func TestPresetsReachTargets(t *testing.T) {
	s := newTestScheduler()
	n := &node{X: 10, Y: 20, ScaleX: 1, ScaleY: 1, Alpha: 1, Color: rgba{R: 1, A: 1}}
	tw := s.New(n).Add(
		s.New(n).MoveTo(1, 100, 200),
		s.New(n).ScaleTo(1, 2, 3, WithEasing(easing.BackOut)),
		s.New(n).FadeTo(1, 0.5),
		s.New(n).RotateTo(1, math.Pi),
		s.New(n).ColorTo(1, 0, 1, 0.5, 0.5),
	).Play()

	s.Step(0.5)
	s.Step(0.5)

	if tw.IsPlaying() {
		t.Fatal("expected done after full duration")
	}
	checks := []struct {
		name      string
		got, want float64
	}{
		{"X", n.X, 100}, {"Y", n.Y, 200},
		{"ScaleX", n.ScaleX, 2}, {"ScaleY", n.ScaleY, 3},
		{"Alpha", n.Alpha, 0.5}, {"Rotation", n.Rotation, math.Pi},
		{"R", n.Color.R, 0}, {"G", n.Color.G, 1}, {"B", n.Color.B, 0.5}, {"A", n.Color.A, 0.5},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %f, want %f", c.name, c.got, c.want)
		}
	}
}

func TestMoveByOnMap(t *testing.T) {
	s := newTestScheduler()
	m := map[string]any{"x": 1.0, "y": 2.0}
	tw := s.New(m).MoveBy(1, 10, -2).Play()

	stepUntilIdle(t, s, tw, 0.25, 8)

	if math.Abs(m["x"].(float64)-11) > 1e-9 || math.Abs(m["y"].(float64)) > 1e-9 {
		t.Errorf("got x=%v y=%v, want 11, 0", m["x"], m["y"])
	}
}

func TestMoveByOnIntegerFields(t *testing.T) {
	type tile struct{ X, Y int }
	s := newTestScheduler()
	n := &tile{X: 4, Y: 4}
	tw := s.New(n).MoveBy(1, 3, -7).Play()

	stepUntilIdle(t, s, tw, 1.0/60, 80)

	if n.X != 7 || n.Y != -3 {
		t.Errorf("got X=%d Y=%d, want 7, -3", n.X, n.Y)
	}
}
