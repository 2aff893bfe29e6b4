package xtween

// initActions forgets captured start values; each action captures again when
// it is next reached.
func (t *Tween) initActions() {
	clear(t.inited)
}

// enter makes action i current on the tween's axis.
func (t *Tween) enter(i int) {
	a := t.actions[i]
	if !t.inited[i] {
		t.inited[i] = true
		a.Init(t.axis)
	}
	a.Start(t.axis)
}

// begin positions the tween at the start of its first cycle.
func (t *Tween) begin() {
	t.index = 0
	t.axis = Forward
	t.repeatCount = 0
	t.repeatStep = 1
	t.enter(0)
}

// seekEnd positions the tween where a full forward run would have left it,
// without entering any action.
func (t *Tween) seekEnd() {
	last := t.repeatTimes - 1
	if t.repeatTimes == RepeatForever {
		last = 0
	}
	t.repeatCount = last
	t.repeatStep = 1
	t.axis = Forward
	if t.pingPong && last%2 == 1 {
		t.axis = Inverse
	}
	t.index = len(t.actions) - 1
	if t.axis == Inverse {
		t.index = 0
	}
}

// flip turns the axis and the direction the repeat counter moves in.
func (t *Tween) flip() {
	t.axis = -t.axis
	t.repeatStep = -t.repeatStep
}

// rewind flips and re-enters the current action from its far end.
func (t *Tween) rewind() {
	t.flip()
	t.enter(t.index)
}

// launch starts a child tween owned by a parallel action. Entering backwards
// after a forward finish plays the child back from where it ended.
func (t *Tween) launch(axis TimeAxis) {
	finishedForward := t.done && t.repeatStep > 0
	t.arm()
	t.playing = true
	t.paused = false
	if len(t.actions) == 0 {
		return
	}
	switch {
	case axis == Forward:
		t.begin()
	case finishedForward:
		t.rewind()
	default:
		t.seekEnd()
		t.rewind()
	}
}

// update drives the tween by dt seconds of its parent's time. It returns the
// time left over once the tween finishes, and whether it is still running.
// Leftover time from a finished action is spent on the next one within the
// same call.
func (t *Tween) update(dt float64) (float64, bool) {
	if !t.playing {
		return dt, t.paused
	}
	if len(t.actions) == 0 {
		return dt, false
	}
	if t.timeScale <= 0 {
		return 0, true
	}

	gen := t.gen
	budget := dt * t.timeScale
	mark := budget
	for {
		a := t.actions[t.index]
		remain, running := a.Update(signed(budget, t.axis))
		if t.gen != gen {
			// A callback restarted or stopped this tween.
			return 0, true
		}
		if running {
			return 0, true
		}
		a.Complete()
		if t.gen != gen {
			return 0, true
		}
		budget = remain

		next := t.index + int(t.axis)
		if next >= 0 && next < len(t.actions) {
			t.index = next
			t.enter(next)
			if t.gen != gen {
				return 0, true
			}
			continue
		}

		if !t.nextCycle() {
			return budget / t.timeScale, false
		}
		if t.gen != gen {
			return 0, true
		}
		if budget >= mark {
			// A whole cycle consumed no time; carry on next tick.
			return 0, true
		}
		mark = budget
	}
}

// nextCycle moves to the next repeat cycle, reporting false when none is
// left in the current direction.
func (t *Tween) nextCycle() bool {
	if t.repeatStep > 0 {
		if t.repeatTimes != RepeatForever && t.repeatCount+1 >= t.repeatTimes {
			return false
		}
	} else if t.repeatCount <= 0 {
		return false
	}
	t.repeatCount += t.repeatStep

	if t.pingPong {
		// Turn around on the boundary action, reusing captured values.
		t.axis = -t.axis
		t.actions[t.index].Start(t.axis)
		return true
	}

	t.index = 0
	if t.axis == Inverse {
		t.index = len(t.actions) - 1
	}
	t.enter(t.index)
	return true
}

// arm opens a play cycle: the finally callback becomes pending and the
// scheduler's observer hears about the start.
func (t *Tween) arm() {
	t.gen++
	t.armed = true
	t.done = false
	if t.sched != nil {
		t.sched.began(t)
	}
}

// clear tears the tween down and fires the finally callback once per play
// cycle.
func (t *Tween) clear(completed bool) {
	active := t.playing || t.paused
	t.playing = false
	t.paused = false
	t.done = completed
	t.gen++
	if active && !completed {
		for _, a := range t.actions {
			a.Clear()
		}
	}
	if !t.armed {
		return
	}
	t.armed = false
	if t.sched != nil {
		t.sched.finished(t, completed)
	}
	if t.finally != nil {
		t.finally(completed)
	}
}
