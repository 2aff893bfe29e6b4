package xtween

import (
	"log/slog"
	"reflect"
	"slices"

	"github.com/phanxgames/xtween/internal/logging"
)

// DefaultTimeUnit converts the millisecond timestamps passed to Update into
// seconds.
const DefaultTimeUnit = 0.001

// Observer receives scheduler lifecycle notifications. All methods are called
// synchronously from the goroutine driving the Scheduler.
type Observer interface {
	// TweenStarted is called once per play cycle when a tween, or a tween
	// nested in one, starts playing. Resuming a paused tween does not count.
	TweenStarted(t *Tween)
	// TweenFinished is called once per play cycle when a tween, or a tween
	// nested in one, is cleared.
	TweenFinished(t *Tween, completed bool)
	// Stepped is called after every tick with the scaled delta and the number
	// of tweens still registered.
	Stepped(dt float64, active int)
}

// Scheduler drives registered tweens. It is not safe for concurrent use; run
// one Scheduler per timeline.
type Scheduler struct {
	// TimeUnit scales the timestamps passed to Update into seconds.
	// Zero means DefaultTimeUnit.
	TimeUnit float64
	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
	// Observer is optional.
	Observer Observer

	tweens  []*Tween // nil slots are tombstones
	last    float64
	started bool
	depth   int
}

// NewScheduler returns an empty scheduler using DefaultTimeUnit.
func NewScheduler() *Scheduler {
	return &Scheduler{TimeUnit: DefaultTimeUnit, Logger: logging.NewNop()}
}

// New returns an idle tween for target bound to s.
func (s *Scheduler) New(target any) *Tween {
	return newTween(s, target)
}

func (s *Scheduler) logger() *slog.Logger {
	if s.Logger == nil {
		s.Logger = logging.NewNop()
	}
	return s.Logger
}

// Add registers t. Registering a tween twice is a no-op. Use Tween.Play to
// start playback; Add only places the tween in the registry.
func (s *Scheduler) Add(t *Tween) {
	if t == nil || s.Contains(t) {
		return
	}
	s.tweens = append(s.tweens, t)
	s.logger().Debug("tween added", "tag", t.tag, "actions", len(t.actions))
}

// detach tombstones t's slot without clearing it.
func (s *Scheduler) detach(t *Tween) bool {
	for i, c := range s.tweens {
		if c == t {
			s.tweens[i] = nil
			s.compact()
			return true
		}
	}
	return false
}

// Remove unregisters t and stops it, firing its finally callback with false.
func (s *Scheduler) Remove(t *Tween) {
	if t == nil {
		return
	}
	if s.detach(t) {
		s.logger().Debug("tween removed", "tag", t.tag)
	}
	if t.playing || t.paused {
		t.clear(false)
	}
}

// RemoveTag removes every registered tween whose tag equals tag.
func (s *Scheduler) RemoveTag(tag any) {
	var matched []*Tween
	for _, t := range s.tweens {
		if t != nil && sameTag(t.tag, tag) {
			matched = append(matched, t)
		}
	}
	for _, t := range matched {
		s.Remove(t)
	}
}

// RemoveAll stops every registered tween.
func (s *Scheduler) RemoveAll() {
	n := len(s.tweens)
	for i := 0; i < n && i < len(s.tweens); i++ {
		t := s.tweens[i]
		if t == nil {
			continue
		}
		s.tweens[i] = nil
		t.clear(false)
	}
	s.compact()
	s.logger().Debug("tweens removed", "count", n)
}

// Contains reports whether t is registered.
func (s *Scheduler) Contains(t *Tween) bool {
	return t != nil && slices.Contains(s.tweens, t)
}

// ContainsTag reports whether any registered tween carries tag.
func (s *Scheduler) ContainsTag(tag any) bool {
	for _, t := range s.tweens {
		if t != nil && sameTag(t.tag, tag) {
			return true
		}
	}
	return false
}

// Len returns the number of registered tweens.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tweens {
		if t != nil {
			n++
		}
	}
	return n
}

// Update advances the scheduler to timestamp now. The first call only records
// a baseline. Later calls step by (now-last)*TimeUnit seconds; a clock that
// runs backwards steps by zero.
func (s *Scheduler) Update(now float64) {
	if !s.started {
		s.started = true
		s.last = now
		return
	}
	unit := s.TimeUnit
	if unit <= 0 {
		unit = DefaultTimeUnit
	}
	dt := max((now-s.last)*unit, 0)
	s.last = now
	s.Step(dt)
}

// Step advances every registered tween by dt seconds. Tweens are driven in
// reverse registration order; tweens removed or re-registered by a callback
// during the tick are skipped.
func (s *Scheduler) Step(dt float64) {
	s.depth++
	for i := len(s.tweens) - 1; i >= 0; i-- {
		if i >= len(s.tweens) {
			continue
		}
		t := s.tweens[i]
		if t == nil {
			continue
		}
		_, running := t.update(dt)
		if i >= len(s.tweens) || s.tweens[i] != t {
			continue
		}
		if !running {
			s.tweens[i] = nil
			t.clear(true)
		}
	}
	s.depth--
	s.compact()
	if s.Observer != nil {
		s.Observer.Stepped(dt, s.Len())
	}
}

// compact splices tombstones out once no tick is in progress.
func (s *Scheduler) compact() {
	if s.depth > 0 {
		return
	}
	s.tweens = slices.DeleteFunc(s.tweens, func(t *Tween) bool { return t == nil })
}

func (s *Scheduler) began(t *Tween) {
	if s.Observer != nil {
		s.Observer.TweenStarted(t)
	}
}

func (s *Scheduler) finished(t *Tween, completed bool) {
	s.logger().Debug("tween finished", "tag", t.tag, "completed", completed)
	if s.Observer != nil {
		s.Observer.TweenFinished(t, completed)
	}
}

// sameTag compares tags without panicking on uncomparable values: maps,
// slices and funcs match only when they share backing storage.
func sameTag(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() {
		return va.Equal(vb)
	}
	switch va.Kind() {
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	return false
}
