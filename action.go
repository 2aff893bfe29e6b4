package xtween

import "math"

// TimeAxis is a playback direction.
type TimeAxis int8

const (
	Forward TimeAxis = 1
	Inverse TimeAxis = -1
)

// String returns "forward" or "inverse".
func (a TimeAxis) String() string {
	if a == Inverse {
		return "inverse"
	}
	return "forward"
}

// Action is one step in a Tween's timeline. Actions are driven by their owning
// Tween and never by the Scheduler directly.
//
// Init is called once per play cycle when the Tween first reaches the action
// and is where start values are captured. Start is called on every entry, in
// either direction. Update receives a signed delta: negative values, including
// negative zero, move along the inverse axis. When the action stops running it
// returns the magnitude of dt it did not consume, so the Tween can hand the
// remainder to the next action in the same tick. Complete is called once when
// the action finishes in the active direction, Clear when the Tween is torn
// down before finishing.
type Action interface {
	Init(axis TimeAxis)
	Start(axis TimeAxis)
	Update(dt float64) (remain float64, running bool)
	Complete()
	Clear()
}

// backward reports whether dt moves along the inverse axis. A zero tick on the
// inverse axis arrives as -0.
func backward(dt float64) bool {
	return math.Signbit(dt)
}

// signed applies axis to a non-negative delta.
func signed(dt float64, axis TimeAxis) float64 {
	if axis == Inverse {
		return math.Copysign(dt, -1)
	}
	return dt
}

// noopAction supplies empty hooks for actions that do not need them.
type noopAction struct{}

func (noopAction) Init(TimeAxis)  {}
func (noopAction) Start(TimeAxis) {}
func (noopAction) Complete()      {}
func (noopAction) Clear()         {}

// delayAction waits for duration seconds.
type delayAction struct {
	noopAction
	duration float64
	elapsed  float64
}

func newDelayAction(duration float64) *delayAction {
	return &delayAction{duration: duration}
}

func (d *delayAction) Init(axis TimeAxis) { d.Start(axis) }

func (d *delayAction) Start(axis TimeAxis) {
	d.elapsed = 0
	if axis == Inverse {
		d.elapsed = d.duration
	}
}

// Update finishes on the tick that reaches the boundary and hands the
// overshoot on, so an action queued after the delay runs in that same tick.
func (d *delayAction) Update(dt float64) (float64, bool) {
	d.elapsed += dt
	if backward(dt) {
		if d.elapsed > 0 {
			return 0, true
		}
		remain := -d.elapsed
		d.elapsed = 0
		return remain, false
	}
	if d.elapsed < d.duration {
		return 0, true
	}
	remain := d.elapsed - d.duration
	d.elapsed = d.duration
	return remain, false
}

// callAction invokes fn once per entry and finishes immediately.
type callAction struct {
	noopAction
	fn func()
}

func (c *callAction) Update(dt float64) (float64, bool) {
	if c.fn != nil {
		c.fn()
	}
	return math.Abs(dt), false
}
