// Package metrics exports scheduler activity as Prometheus metrics.
package metrics

import (
	"strconv"

	"github.com/phanxgames/xtween"
	"github.com/prometheus/client_golang/prometheus"
)

// Observer is an xtween.Observer that records scheduler activity.
type Observer struct {
	started  prometheus.Counter
	finished *prometheus.CounterVec
	active   prometheus.Gauge
	ticks    prometheus.Counter
	elapsed  prometheus.Counter
}

var _ xtween.Observer = (*Observer)(nil)

// New creates an Observer and registers its collectors with reg. A nil reg
// leaves the collectors unregistered.
func New(reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		started: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "xtween_tweens_started_total",
			Help: "Total number of tween play cycles started, nested tweens included",
		}),
		finished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xtween_tweens_finished_total",
				Help: "Total number of tweens cleared, by natural completion or not",
			},
			[]string{"completed"},
		),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "xtween_tweens_active",
			Help: "Tweens registered after the last tick",
		}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "xtween_ticks_total",
			Help: "Total number of scheduler ticks",
		}),
		elapsed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "xtween_elapsed_seconds_total",
			Help: "Total tween time advanced by the scheduler",
		}),
	}
	if reg == nil {
		return o, nil
	}
	for _, c := range o.collectors() {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *Observer) collectors() []prometheus.Collector {
	return []prometheus.Collector{o.started, o.finished, o.active, o.ticks, o.elapsed}
}

// Attach makes o the observer of s.
func (o *Observer) Attach(s *xtween.Scheduler) {
	s.Observer = o
}

// TweenStarted implements xtween.Observer.
func (o *Observer) TweenStarted(*xtween.Tween) { o.started.Inc() }

// TweenFinished implements xtween.Observer.
func (o *Observer) TweenFinished(_ *xtween.Tween, completed bool) {
	o.finished.WithLabelValues(strconv.FormatBool(completed)).Inc()
}

// Stepped implements xtween.Observer.
func (o *Observer) Stepped(dt float64, active int) {
	o.ticks.Inc()
	if dt > 0 {
		o.elapsed.Add(dt)
	}
	o.active.Set(float64(active))
}
