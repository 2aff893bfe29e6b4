package xtween

import "math"

// RepeatForever repeats a tween until it is stopped.
const RepeatForever = math.MaxInt

// Tween is a timeline of actions applied to a target. Build one with the
// chaining methods and call Play:
//
//	xtween.New(sprite).
//		To(0.5, xtween.Props{"X": 200}, xtween.WithEasing(easing.BackOut)).
//		Delay(0.25).
//		Call(func() { log.Println("arrived") }).
//		SetRepeat(4, true).
//		Play()
//
// A Tween is not safe for concurrent use. Nesting a tween inside itself, directly
// or through Add, is undefined behaviour. A tween passed to Add belongs to its
// parent: Pause, Resume and Stop still act on it, but only the parent drives it.
type Tween struct {
	target any
	tag    any
	sched  *Scheduler

	actions []Action
	inited  []bool

	repeatTimes int
	pingPong    bool
	timeScale   float64

	index       int
	axis        TimeAxis
	repeatCount int
	repeatStep  int

	playing bool
	paused  bool
	owned   bool // driven by a parent's parallel action, never registered
	armed   bool // finally pending for the current play cycle
	done    bool // last cycle ended naturally
	gen     uint64

	finally func(completed bool)
}

func newTween(s *Scheduler, target any) *Tween {
	return &Tween{
		target:      target,
		tag:         target,
		sched:       s,
		repeatTimes: 1,
		timeScale:   1,
		axis:        Forward,
		repeatStep:  1,
	}
}

// Target returns the object the tween animates.
func (t *Tween) Target() any { return t.target }

// Tag returns the tag used for bulk removal. It defaults to the target.
func (t *Tween) Tag() any { return t.tag }

// SetTag replaces the tag used by RemoveTag and ContainsTag.
func (t *Tween) SetTag(tag any) *Tween {
	t.tag = tag
	return t
}

// TimeScale returns the playback speed multiplier.
func (t *Tween) TimeScale() float64 { return t.timeScale }

// SetTimeScale sets the playback speed multiplier. Zero or negative values
// freeze the tween.
func (t *Tween) SetTimeScale(scale float64) *Tween {
	t.timeScale = scale
	return t
}

// SetRepeat plays the action list times times in total. With pingPong, every
// other cycle runs backwards. times below 1 is treated as 1.
func (t *Tween) SetRepeat(times int, pingPong bool) *Tween {
	t.repeatTimes = max(times, 1)
	t.pingPong = pingPong
	return t
}

// RepeatForever repeats the action list until the tween is stopped.
func (t *Tween) RepeatForever(pingPong bool) *Tween {
	return t.SetRepeat(RepeatForever, pingPong)
}

// RepeatTimes returns the configured number of cycles.
func (t *Tween) RepeatTimes() int { return t.repeatTimes }

// PingPong reports whether alternate cycles run backwards.
func (t *Tween) PingPong() bool { return t.pingPong }

// IsPlaying reports whether the tween is being driven.
func (t *Tween) IsPlaying() bool { return t.playing }

// IsPaused reports whether the tween is paused.
func (t *Tween) IsPaused() bool { return t.paused }

// Axis returns the current playback direction.
func (t *Tween) Axis() TimeAxis { return t.axis }

// Len returns the number of actions.
func (t *Tween) Len() int { return len(t.actions) }

// OnFinally registers fn to run once each time the tween is cleared: on
// natural completion (completed is true), on Stop, or on removal through the
// Scheduler (completed is false).
func (t *Tween) OnFinally(fn func(completed bool)) *Tween {
	t.finally = fn
	return t
}

// Append adds a custom action.
func (t *Tween) Append(a Action) *Tween {
	t.actions = append(t.actions, a)
	t.inited = append(t.inited, false)
	return t
}

// To animates props to the given absolute values over duration seconds.
func (t *Tween) To(duration float64, props Props, opts ...Option) *Tween {
	return t.Append(newTweenAction(t.target, modeTo, duration, props, opts))
}

// By animates props by the given displacements over duration seconds.
// Displacements accumulate, so other writers to the same fields are preserved.
func (t *Tween) By(duration float64, props Props, opts ...Option) *Tween {
	return t.Append(newTweenAction(t.target, modeBy, duration, props, opts))
}

// From animates from props back to the values the target had when the action
// was reached.
func (t *Tween) From(duration float64, props Props, opts ...Option) *Tween {
	return t.Append(newTweenAction(t.target, modeFrom, duration, props, opts))
}

// FromTo animates from one explicit tree to another. Leaves of to without a
// counterpart in from are ignored.
func (t *Tween) FromTo(duration float64, from, to Props, opts ...Option) *Tween {
	a := newTweenAction(t.target, modeFromTo, duration, to, opts)
	a.from = normalizeProps(from)
	return t.Append(a)
}

// Set writes props instantly.
func (t *Tween) Set(props Props) *Tween {
	return t.Append(newSetAction(t.target, props))
}

// Delay waits for duration seconds.
func (t *Tween) Delay(duration float64) *Tween {
	return t.Append(newDelayAction(duration))
}

// Call invokes fn when playback reaches this point, in either direction.
func (t *Tween) Call(fn func()) *Tween {
	return t.Append(&callAction{fn: fn})
}

// Add plays tweens in parallel as a single step. The step ends when the
// slowest of them finishes. The children are owned by t from now on and
// should not be played on their own.
func (t *Tween) Add(tweens ...*Tween) *Tween {
	children := make([]*Tween, 0, len(tweens))
	for _, c := range tweens {
		if c == nil {
			continue
		}
		c.sched = t.sched
		c.owned = true
		children = append(children, c)
	}
	return t.Append(newParallelAction(children))
}

// Then plays another tween to completion as the next step.
func (t *Tween) Then(next *Tween) *Tween {
	return t.Add(next)
}

// Sequence plays tweens one after another.
func (t *Tween) Sequence(tweens ...*Tween) *Tween {
	for _, next := range tweens {
		t.Then(next)
	}
	return t
}

// Play starts the tween from the beginning and registers it with its
// scheduler. It does nothing while the tween is playing or paused. A tween
// without actions completes immediately.
func (t *Tween) Play() *Tween {
	if t.playing || t.paused {
		return t
	}
	t.arm()
	if len(t.actions) == 0 {
		t.clear(true)
		return t
	}
	t.playing = true
	t.initActions()
	t.begin()
	t.register()
	return t
}

// Replay stops the tween if needed and plays it from the beginning.
func (t *Tween) Replay() *Tween {
	t.Stop()
	return t.Play()
}

// Reverse turns playback around. A playing or paused tween continues from its
// current position in the other direction, unwinding the cycles it has already
// run. An idle tween plays backwards from its end: after a natural completion
// it reuses the values it captured, otherwise it captures fresh ones.
func (t *Tween) Reverse() *Tween {
	if len(t.actions) == 0 {
		if !t.playing && !t.paused {
			t.arm()
			t.clear(true)
		}
		return t
	}
	if t.playing || t.paused {
		t.flip()
		return t
	}

	wasDone := t.done
	t.arm()
	t.playing = true
	if !wasDone {
		t.initActions()
		t.seekEnd()
	}
	t.rewind()
	t.register()
	return t
}

// Pause stops driving the tween without clearing it.
func (t *Tween) Pause() *Tween {
	if !t.playing || t.paused {
		return t
	}
	t.playing = false
	t.paused = true
	t.unregister()
	return t
}

// Resume continues a paused tween.
func (t *Tween) Resume() *Tween {
	if !t.paused || t.playing {
		return t
	}
	t.playing = true
	t.paused = false
	t.register()
	return t
}

// Stop unregisters and clears the tween, firing OnFinally with false.
func (t *Tween) Stop() *Tween {
	if !t.playing && !t.paused {
		return t
	}
	t.unregister()
	t.clear(false)
	return t
}

// register places a top-level tween in its scheduler.
func (t *Tween) register() {
	if !t.owned {
		t.sched.Add(t)
	}
}

func (t *Tween) unregister() {
	if !t.owned {
		t.sched.detach(t)
	}
}
