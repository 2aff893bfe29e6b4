package easing

import "github.com/tanema/gween/ease"

// Gween adapts a gween easing function to a Func. The gween curve is evaluated
// with a begin of 0, a change of 1 and a duration of 1, so its output is the
// eased ratio directly. Ratios 0 and 1 map to exactly 0 and 1; in between,
// precision is that of gween's float32 arithmetic.
func Gween(fn ease.TweenFunc) Func {
	return func(ratio float64) float64 {
		switch ratio {
		case 0:
			return 0
		case 1:
			return 1
		}
		return float64(fn(float32(ratio), 0, 1, 1))
	}
}
