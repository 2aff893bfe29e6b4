package scenario

import (
	"errors"
	"fmt"
	"sort"

	"github.com/phanxgames/xtween"
)

// DefaultMaxDuration bounds simulations of scenarios that repeat forever when
// no limit is given.
const DefaultMaxDuration = 60.0

// ErrBadRate is returned by Simulate for a non-positive frame rate.
var ErrBadRate = errors.New("scenario: fps must be positive")

// Frame is the target's state after one tick.
type Frame struct {
	Index  int                `json:"index"`
	Time   float64            `json:"time"`
	Values map[string]float64 `json:"values"`
	Events []string           `json:"events,omitempty"`
}

// Summary describes a finished simulation.
type Summary struct {
	Frames    int                `json:"frames"`
	Duration  float64            `json:"duration"`
	Completed bool               `json:"completed"`
	Final     map[string]float64 `json:"final"`
}

// Simulate plays the scenario at a fixed frame rate on a private scheduler
// and calls sample with the initial state and after every tick. It stops when
// the tween finishes or maxDuration seconds have been simulated; zero or less
// means DefaultMaxDuration.
func (sc *Scenario) Simulate(fps, maxDuration float64, sample func(Frame)) (Summary, error) {
	if !(fps > 0) {
		return Summary{}, fmt.Errorf("%w: %v", ErrBadRate, fps)
	}
	if maxDuration <= 0 {
		maxDuration = DefaultMaxDuration
	}

	s := xtween.NewScheduler()
	var events []string
	target := copyTree(sc.Target)
	tw := sc.Track.build(s, target, func(label string) { events = append(events, label) })

	completed := false
	tw.OnFinally(func(c bool) { completed = c })
	tw.Play()

	emit := func(i int, at float64) {
		if sample != nil {
			sample(Frame{Index: i, Time: at, Values: Flatten(target), Events: events})
		}
		events = nil
	}

	emit(0, 0)
	n, elapsed := 0, 0.0
	for tw.IsPlaying() && elapsed < maxDuration {
		s.Step(1 / fps)
		n++
		elapsed = float64(n) / fps
		emit(n, elapsed)
	}
	s.RemoveAll()

	return Summary{
		Frames:    n + 1,
		Duration:  elapsed,
		Completed: completed,
		Final:     Flatten(target),
	}, nil
}

// Flatten lists the numeric leaves of p under dotted paths ("pos.y").
func Flatten(p xtween.Props) map[string]float64 {
	out := map[string]float64{}
	flatten(out, "", p)
	return out
}

func flatten(out map[string]float64, prefix string, m map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch x := v.(type) {
		case float64:
			out[key] = x
		case int:
			out[key] = float64(x)
		case xtween.Props:
			flatten(out, key, x)
		case map[string]any:
			flatten(out, key, x)
		}
	}
}

// Paths returns the keys of values in sorted order.
func Paths(values map[string]float64) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
