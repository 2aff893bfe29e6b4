// Package easing provides easing curves for tweens.
//
// Every curve is a [Func] mapping a linear progress ratio in [0, 1] to an eased
// ratio. Ratios outside that range are extrapolated rather than rejected, which
// happens under reverse playback and overshooting curves.
//
// The classic families (Quadratic, Cubic, Quartic, Quintic, Sinusoidal,
// Exponential, Circular, Elastic, Back, Bounce) each come in In, Out and InOut
// variants and are the [github.com/tanema/gween/ease] curves adapted with
// [Gween]. Custom curves can be built with [Bezier] and [Path].
package easing

import "github.com/tanema/gween/ease"

// Func maps a progress ratio to an eased ratio.
type Func func(ratio float64) float64

// Linear returns ratio unchanged.
func Linear(ratio float64) float64 { return ratio }

// Quadratic curves (t²).
var (
	QuadraticIn    = Gween(ease.InQuad)
	QuadraticOut   = Gween(ease.OutQuad)
	QuadraticInOut = Gween(ease.InOutQuad)
)

// Cubic curves (t³).
var (
	CubicIn    = Gween(ease.InCubic)
	CubicOut   = Gween(ease.OutCubic)
	CubicInOut = Gween(ease.InOutCubic)
)

// Quartic curves (t⁴).
var (
	QuarticIn    = Gween(ease.InQuart)
	QuarticOut   = Gween(ease.OutQuart)
	QuarticInOut = Gween(ease.InOutQuart)
)

// Quintic curves (t⁵).
var (
	QuinticIn    = Gween(ease.InQuint)
	QuinticOut   = Gween(ease.OutQuint)
	QuinticInOut = Gween(ease.InOutQuint)
)

// Sinusoidal curves follow a quarter (In, Out) or half (InOut) cosine wave.
var (
	SinusoidalIn    = Gween(ease.InSine)
	SinusoidalOut   = Gween(ease.OutSine)
	SinusoidalInOut = Gween(ease.InOutSine)
)

// Exponential curves are based on 2^(10t).
var (
	ExponentialIn    = Gween(ease.InExpo)
	ExponentialOut   = Gween(ease.OutExpo)
	ExponentialInOut = Gween(ease.InOutExpo)
)

// Circular curves follow a quarter circle. They return NaN outside [0, 1],
// where the circle is undefined.
var (
	CircularIn    = Gween(ease.InCirc)
	CircularOut   = Gween(ease.OutCirc)
	CircularInOut = Gween(ease.InOutCirc)
)

// Elastic curves overshoot and wobble around the end (Out), the start (In)
// or both (InOut).
var (
	ElasticIn    = Gween(ease.InElastic)
	ElasticOut   = Gween(ease.OutElastic)
	ElasticInOut = Gween(ease.InOutElastic)
)

// Back curves pull back by an overshoot of 1.70158 (2.5949 for InOut) before
// moving on.
var (
	BackIn    = Gween(ease.InBack)
	BackOut   = Gween(ease.OutBack)
	BackInOut = Gween(ease.InOutBack)
)

// Bounce curves bounce off the end (Out). In and InOut are built from Out.
var (
	BounceIn    = Gween(ease.InBounce)
	BounceOut   = Gween(ease.OutBounce)
	BounceInOut = Gween(ease.InOutBounce)
)
