package xtween

import "math"

// tweenMode selects how a tweenAction captures and writes values.
type tweenMode uint8

const (
	modeTo     tweenMode = iota // absolute: start is the current value
	modeBy                      // relative: end is a displacement
	modeFrom                    // start and end swapped after capture
	modeFromTo                  // explicit start tree
)

// tweenAction interpolates the numeric leaves of a property tree over time.
type tweenAction struct {
	target   any
	rec      record
	ok       bool
	mode     tweenMode
	duration float64
	opts     options

	props Props // configured end (or "from" for modeFrom) tree
	from  Props // explicit start tree for modeFromTo

	start   Props
	end     Props
	elapsed float64
}

func newTweenAction(target any, mode tweenMode, duration float64, props Props, opts []Option) *tweenAction {
	rec, ok := targetRecord(target)
	return &tweenAction{
		target:   target,
		rec:      rec,
		ok:       ok,
		mode:     mode,
		duration: duration,
		opts:     buildOptions(opts),
		props:    normalizeProps(props),
	}
}

func (a *tweenAction) Init(TimeAxis) {
	a.start = Props{}
	a.end = a.props
	if !a.ok {
		return
	}
	switch a.mode {
	case modeTo:
		setupProperties(a.rec, a.start, a.props, identity)
	case modeBy:
		setupProperties(a.rec, a.start, a.props, zero)
	case modeFrom:
		snapshot := Props{}
		setupProperties(a.rec, snapshot, a.props, identity)
		a.start, a.end = a.props.clone(), snapshot
	case modeFromTo:
		a.start = a.from.clone()
	}
}

func (a *tweenAction) Start(axis TimeAxis) {
	if a.opts.onStart != nil {
		a.opts.onStart(a.target)
	}
	a.elapsed = 0
	ratio := 0.0
	if axis == Inverse {
		a.elapsed = a.duration
		ratio = 1
	}
	if a.mode == modeBy {
		resetOffsets(a.start, a.end, a.opts.easing(ratio), a.opts.progress)
	}
}

func (a *tweenAction) Update(dt float64) (float64, bool) {
	back := backward(dt)
	if a.duration <= 0 {
		ratio := 1.0
		if back {
			ratio = 0
		}
		a.apply(ratio)
		return math.Abs(dt), false
	}

	a.elapsed += dt
	remain := 0.0
	switch {
	case a.elapsed > a.duration:
		remain = a.elapsed - a.duration
		a.elapsed = a.duration
	case a.elapsed < 0:
		remain = -a.elapsed
		a.elapsed = 0
	}

	a.apply(a.elapsed / a.duration)

	if back {
		return remain, a.elapsed > 0
	}
	return remain, a.elapsed < a.duration
}

func (a *tweenAction) apply(ratio float64) {
	if a.ok {
		lerp := lerpTo
		if a.mode == modeBy {
			lerp = lerpBy
		}
		updateProperties(a.rec, a.start, a.end, a.opts.easing(ratio), lerp, a.opts.progress)
	}
	if a.opts.onUpdate != nil {
		a.opts.onUpdate(a.target, ratio)
	}
}

func (a *tweenAction) Complete() {
	if a.opts.onComplete != nil {
		a.opts.onComplete(a.target)
	}
}

func (a *tweenAction) Clear() {}

// resetOffsets sets the accumulated displacement of every captured leaf to
// the value a relative tween has applied at the eased boundary ratio.
func resetOffsets(start, end Props, eased float64, progress ProgressFunc) {
	for key, ev := range end {
		switch e := ev.(type) {
		case Props:
			if sub, ok := start[key].(Props); ok {
				resetOffsets(sub, e, eased, progress)
			}
		case float64:
			if _, ok := start[key].(float64); ok {
				start[key] = progress(0, e, eased)
			}
		}
	}
}

// setAction writes its properties instantly: the configured values when moving
// forward, the captured originals when moving backward.
type setAction struct {
	noopAction
	rec   record
	ok    bool
	props Props
	start Props
}

func newSetAction(target any, props Props) *setAction {
	rec, ok := targetRecord(target)
	return &setAction{rec: rec, ok: ok, props: normalizeProps(props)}
}

func (s *setAction) Init(TimeAxis) {
	s.start = Props{}
	if s.ok {
		setupProperties(s.rec, s.start, s.props, identity)
	}
}

func (s *setAction) Update(dt float64) (float64, bool) {
	ratio := 1.0
	if backward(dt) {
		ratio = -1
	}
	if s.ok {
		updateProperties(s.rec, s.start, s.props, ratio, lerpSet, Lerp)
	}
	return math.Abs(dt), false
}
