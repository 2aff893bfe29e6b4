package xtween

import "github.com/phanxgames/xtween/easing"

// Option configures a single property tween (To, By, From, FromTo).
type Option func(*options)

type options struct {
	easing     easing.Func
	progress   ProgressFunc
	onStart    func(target any)
	onUpdate   func(target any, ratio float64)
	onComplete func(target any)
}

func buildOptions(opts []Option) options {
	o := options{easing: easing.Linear, progress: Lerp}
	for _, opt := range opts {
		opt(&o)
	}
	if o.easing == nil {
		o.easing = easing.Linear
	}
	if o.progress == nil {
		o.progress = Lerp
	}
	return o
}

// WithEasing sets the easing curve applied to the progress ratio. The default
// is easing.Linear.
func WithEasing(fn easing.Func) Option {
	return func(o *options) { o.easing = fn }
}

// WithProgress replaces the per-field interpolation.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) { o.progress = fn }
}

// OnStart is called every time playback enters the tween, in either direction.
func OnStart(fn func(target any)) Option {
	return func(o *options) { o.onStart = fn }
}

// OnUpdate is called after every write with the linear (uneased) ratio.
func OnUpdate(fn func(target any, ratio float64)) Option {
	return func(o *options) { o.onUpdate = fn }
}

// OnComplete is called when the tween finishes in the active direction.
func OnComplete(fn func(target any)) Option {
	return func(o *options) { o.onComplete = fn }
}
