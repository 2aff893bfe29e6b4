package xtween

import (
	"math"
	"testing"
)

func TestSigned(t *testing.T) {
	if got := signed(2, Forward); got != 2 {
		t.Errorf("signed(2, Forward) = %v", got)
	}
	if got := signed(2, Inverse); got != -2 {
		t.Errorf("signed(2, Inverse) = %v", got)
	}
	if got := signed(0, Inverse); !backward(got) {
		t.Error("a zero tick on the inverse axis must read as backward")
	}
	if backward(0) {
		t.Error("+0 is forward")
	}
}

func TestTimeAxisString(t *testing.T) {
	if Forward.String() != "forward" || Inverse.String() != "inverse" {
		t.Errorf("got %q, %q", Forward, Inverse)
	}
}

func TestDelayRemain(t *testing.T) {
	d := newDelayAction(10)
	d.Init(Forward)

	if r, running := d.Update(6); !running || r != 0 {
		t.Fatalf("Update(6) = %v, %v", r, running)
	}
	r, running := d.Update(6)
	if running || r != 2 {
		t.Errorf("Update(6) = %v, %v, want 2, false", r, running)
	}

	d.Start(Inverse)
	if r, running := d.Update(math.Copysign(0, -1)); !running || r != 0 {
		t.Errorf("inverse zero tick = %v, %v, want still running", r, running)
	}
	if r, running := d.Update(-15); running || r != 5 {
		t.Errorf("Update(-15) = %v, %v, want 5, false", r, running)
	}
}

func TestZeroDelayFinishesImmediately(t *testing.T) {
	d := newDelayAction(0)
	d.Start(Forward)
	if r, running := d.Update(0); running || r != 0 {
		t.Errorf("Update(0) = %v, %v, want 0, false", r, running)
	}
}

func TestCallActionNilFunc(t *testing.T) {
	c := &callAction{}
	if r, running := c.Update(-3); running || r != 3 {
		t.Errorf("Update(-3) = %v, %v, want 3, false", r, running)
	}
}

func TestTweenActionRemainBothWays(t *testing.T) {
	obj := &sprite{}
	a := newTweenAction(obj, modeTo, 10, Props{"X": 10}, nil)
	a.Init(Forward)
	a.Start(Forward)

	if r, running := a.Update(13); running || r != 3 || obj.X != 10 {
		t.Errorf("Update(13) = %v, %v, X=%f", r, running, obj.X)
	}
	a.Start(Inverse)
	if r, running := a.Update(-4); !running || r != 0 || math.Abs(obj.X-6) > 1e-9 {
		t.Errorf("Update(-4) = %v, %v, X=%f", r, running, obj.X)
	}
	if r, running := a.Update(-7); running || r != 1 || obj.X != 0 {
		t.Errorf("Update(-7) = %v, %v, X=%f", r, running, obj.X)
	}
}

func TestTweenActionNonRecordTarget(t *testing.T) {
	updates := 0
	a := newTweenAction(42, modeTo, 10, Props{"X": 10}, []Option{OnUpdate(func(any, float64) { updates++ })})
	a.Init(Forward)
	a.Start(Forward)
	a.Update(5)
	if updates != 1 {
		t.Errorf("updates = %d, want 1 even without a record target", updates)
	}
}

func TestByActionReentersAtBoundary(t *testing.T) {
	obj := &sprite{X: 0}
	a := newTweenAction(obj, modeBy, 10, Props{"X": 10}, nil)
	a.Init(Forward)
	a.Start(Forward)
	a.Update(10)
	if obj.X != 10 {
		t.Fatalf("X = %f, want 10", obj.X)
	}

	// playing backwards from the end removes the displacement again
	a.Start(Inverse)
	a.Update(-10)
	if math.Abs(obj.X) > 1e-9 {
		t.Errorf("X = %f, want 0", obj.X)
	}
}

type countingAction struct {
	noopAction
	inits, starts, completes, clears int
	left                             float64
}

func (c *countingAction) Init(TimeAxis)  { c.inits++ }
func (c *countingAction) Start(TimeAxis) { c.starts++; c.left = 3 }
func (c *countingAction) Complete()      { c.completes++ }
func (c *countingAction) Clear()         { c.clears++ }

func (c *countingAction) Update(dt float64) (float64, bool) {
	c.left -= math.Abs(dt)
	if c.left > 0 {
		return 0, true
	}
	r := -c.left
	c.left = 0
	return r, false
}

func TestAppendCustomAction(t *testing.T) {
	s := newTestScheduler()
	c := &countingAction{}
	tw := s.New(nil).Append(c).SetRepeat(2, false).Play()

	stepUntilIdle(t, s, tw, 1, 10)
	if c.inits != 1 || c.starts != 2 || c.completes != 2 || c.clears != 0 {
		t.Errorf("got %+v", *c)
	}

	tw.Play()
	tw.Stop()
	if c.inits != 2 || c.clears != 1 {
		t.Errorf("after Stop: inits=%d clears=%d, want 2, 1", c.inits, c.clears)
	}
}
