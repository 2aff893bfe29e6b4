package xtween

import "math"

// parallelAction plays child tweens side by side and finishes when the slowest
// child does. Children that finish early keep their end state.
type parallelAction struct {
	children []*Tween
	active   []*Tween
	dir      TimeAxis
}

func newParallelAction(children []*Tween) *parallelAction {
	return &parallelAction{
		children: children,
		active:   make([]*Tween, 0, len(children)),
		dir:      Forward,
	}
}

func (p *parallelAction) Init(TimeAxis) {
	for _, c := range p.children {
		c.initActions()
	}
}

func (p *parallelAction) Start(axis TimeAxis) {
	p.dir = axis
	p.active = append(p.active[:0], p.children...)
	for _, c := range p.children {
		c.launch(axis)
	}
}

func (p *parallelAction) Update(dt float64) (float64, bool) {
	axis := Forward
	if backward(dt) {
		axis = Inverse
	}
	if axis != p.dir {
		p.turn(axis)
	}

	step := math.Abs(dt)
	remain := step
	n := 0
	for _, c := range p.active {
		r, running := c.update(step)
		if running {
			p.active[n] = c
			n++
			continue
		}
		if c.playing {
			c.clear(true)
		}
		remain = math.Min(remain, r)
	}
	clear(p.active[n:])
	p.active = p.active[:n]

	if n > 0 {
		return 0, true
	}
	return remain, false
}

// turn reverses the group mid-flight: running children flip in place and
// finished ones play back from their end.
func (p *parallelAction) turn(axis TimeAxis) {
	p.dir = axis
	running := make(map[*Tween]bool, len(p.active))
	for _, c := range p.active {
		running[c] = true
	}
	p.active = append(p.active[:0], p.children...)
	for _, c := range p.children {
		if running[c] {
			c.flip()
			continue
		}
		c.launch(axis)
	}
}

func (p *parallelAction) Complete() {}

func (p *parallelAction) Clear() {
	for _, c := range p.children {
		c.clear(false)
	}
	p.active = p.active[:0]
}
