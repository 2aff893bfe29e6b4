// Package scenario loads tween timelines from YAML files and plays them
// headlessly.
//
// A scenario names a plain-data target and the steps to run on it:
//
//	name: bounce
//	target: {x: 5, pos: {x: 0, y: 0}}
//	repeat: 2
//	pingPong: true
//	steps:
//	  - {to: {x: 30}, duration: 0.2, easing: quadratic-out}
//	  - {delay: 0.1}
//	  - {by: {pos: {y: 10}}, duration: 0.5}
//	  - {set: {x: 1}}
//	  - {call: landed}
//	  - parallel:
//	      - steps: [{to: {x: 2}, duration: 0.3}]
//	      - steps: [{to: {pos: {x: 9}}, duration: 0.6}]
//
// Each step holds exactly one of to, by, from, fromTo, set, delay, call or
// parallel. repeat -1 repeats forever.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/phanxgames/xtween"
	"github.com/phanxgames/xtween/easing"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoSteps is returned for a scenario or parallel track without steps.
	ErrNoSteps = errors.New("scenario: no steps")
	// ErrUnknownStep is returned for a step that does not hold exactly one
	// known kind.
	ErrUnknownStep = errors.New("scenario: unknown step")
	// ErrUnknownEasing is returned for an easing name that does not resolve.
	ErrUnknownEasing = errors.New("scenario: unknown easing")
)

// Scenario is a parsed scenario file.
type Scenario struct {
	Name   string         `mapstructure:"name"`
	Target map[string]any `mapstructure:"target"`
	Track  `mapstructure:",squash"`
}

// Track is a timeline: the whole scenario, or one branch of a parallel step.
type Track struct {
	Repeat    int     `mapstructure:"repeat"`
	PingPong  bool    `mapstructure:"pingPong"`
	TimeScale float64 `mapstructure:"timeScale"`
	Steps     []Step  `mapstructure:"steps"`
}

// Step is one action of a track.
type Step struct {
	To       map[string]any `mapstructure:"to"`
	By       map[string]any `mapstructure:"by"`
	From     map[string]any `mapstructure:"from"`
	FromTo   *FromTo        `mapstructure:"fromTo"`
	Set      map[string]any `mapstructure:"set"`
	Delay    *float64       `mapstructure:"delay"`
	Call     string         `mapstructure:"call"`
	Parallel []Track        `mapstructure:"parallel"`

	Duration float64 `mapstructure:"duration"`
	Easing   string  `mapstructure:"easing"`
}

// FromTo holds the two trees of a fromTo step.
type FromTo struct {
	From map[string]any `mapstructure:"from"`
	To   map[string]any `mapstructure:"to"`
}

// Kind returns the step's action name, or "" when it holds none or several.
func (s Step) Kind() string {
	var kinds []string
	if s.To != nil {
		kinds = append(kinds, "to")
	}
	if s.By != nil {
		kinds = append(kinds, "by")
	}
	if s.From != nil {
		kinds = append(kinds, "from")
	}
	if s.FromTo != nil {
		kinds = append(kinds, "fromTo")
	}
	if s.Set != nil {
		kinds = append(kinds, "set")
	}
	if s.Delay != nil {
		kinds = append(kinds, "delay")
	}
	if s.Call != "" {
		kinds = append(kinds, "call")
	}
	if s.Parallel != nil {
		kinds = append(kinds, "parallel")
	}
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		base := filepath.Base(path)
		sc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return sc, nil
}

// Parse decodes and validates a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	var sc Scenario
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &sc,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownStep, err)
	}
	if err := sc.Track.validate("steps"); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (t *Track) validate(path string) error {
	if len(t.Steps) == 0 {
		return fmt.Errorf("%w at %s", ErrNoSteps, path)
	}
	for i, st := range t.Steps {
		at := fmt.Sprintf("%s[%d]", path, i)
		kind := st.Kind()
		if kind == "" {
			return fmt.Errorf("%w at %s: want exactly one of to, by, from, fromTo, set, delay, call, parallel", ErrUnknownStep, at)
		}
		if _, err := ParseEasing(st.Easing); err != nil {
			return fmt.Errorf("%w at %s", err, at)
		}
		for j := range st.Parallel {
			if err := st.Parallel[j].validate(fmt.Sprintf("%s.parallel[%d].steps", at, j)); err != nil {
				return err
			}
		}
	}
	return nil
}

// ParseEasing resolves a registry name, "cubic-bezier(x1, y1, x2, y2)" or
// "path(<svg path data>)". The empty string is linear.
func ParseEasing(name string) (easing.Func, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return easing.Linear, nil
	}
	if args, ok := call(name, "cubic-bezier"); ok {
		parts := strings.Split(args, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("%w %q", ErrUnknownEasing, name)
		}
		var p [4]float64
		for i, s := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("%w %q: %w", ErrUnknownEasing, name, err)
			}
			p[i] = f
		}
		return easing.Bezier(p[0], p[1], p[2], p[3]), nil
	}
	if args, ok := call(name, "path"); ok {
		fn, err := easing.Path(args)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrUnknownEasing, name, err)
		}
		return fn, nil
	}
	if fn, ok := easing.ByName(name); ok {
		return fn, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownEasing, name)
}

// call matches "fn(args)" and returns args.
func call(s, fn string) (string, bool) {
	rest, ok := strings.CutPrefix(s, fn+"(")
	if !ok || !strings.HasSuffix(rest, ")") {
		return "", false
	}
	return strings.TrimSuffix(rest, ")"), true
}

// Build creates the scenario's tween on s over a fresh copy of the target.
// The tween is idle; call Play to start it.
func (sc *Scenario) Build(s *xtween.Scheduler) (*xtween.Tween, xtween.Props) {
	target := copyTree(sc.Target)
	return sc.Track.build(s, target, nil), target
}

func (t *Track) build(s *xtween.Scheduler, target xtween.Props, onCall func(string)) *xtween.Tween {
	tw := s.New(target)
	switch {
	case t.Repeat < 0:
		tw.RepeatForever(t.PingPong)
	case t.Repeat > 0:
		tw.SetRepeat(t.Repeat, t.PingPong)
	}
	if t.TimeScale > 0 {
		tw.SetTimeScale(t.TimeScale)
	}
	for _, st := range t.Steps {
		fn, _ := ParseEasing(st.Easing)
		opt := xtween.WithEasing(fn)
		switch st.Kind() {
		case "to":
			tw.To(st.Duration, st.To, opt)
		case "by":
			tw.By(st.Duration, st.By, opt)
		case "from":
			tw.From(st.Duration, st.From, opt)
		case "fromTo":
			tw.FromTo(st.Duration, st.FromTo.From, st.FromTo.To, opt)
		case "set":
			tw.Set(st.Set)
		case "delay":
			tw.Delay(*st.Delay)
		case "call":
			label := st.Call
			tw.Call(func() {
				if onCall != nil {
					onCall(label)
				}
			})
		case "parallel":
			children := make([]*xtween.Tween, len(st.Parallel))
			for i := range st.Parallel {
				children[i] = st.Parallel[i].build(s, target, onCall)
			}
			tw.Add(children...)
		}
	}
	return tw
}

// copyTree deep-copies a decoded YAML tree, turning every number into a
// float64 so integer literals animate smoothly.
func copyTree(m map[string]any) xtween.Props {
	out := make(xtween.Props, len(m))
	for k, v := range m {
		switch x := v.(type) {
		case map[string]any:
			out[k] = copyTree(x)
		case int:
			out[k] = float64(x)
		case int64:
			out[k] = float64(x)
		case uint64:
			out[k] = float64(x)
		case float64:
			out[k] = x
		default:
			out[k] = v
		}
	}
	return out
}
