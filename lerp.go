package xtween

// ProgressFunc blends a start and end value at an eased ratio. Supply one with
// WithProgress to interpolate fields non-linearly (hues, angles) independently
// of the easing curve.
type ProgressFunc func(start, end, ratio float64) float64

// Lerp is the default ProgressFunc.
func Lerp(start, end, ratio float64) float64 {
	return start + (end-start)*ratio
}

// lerpFunc writes one numeric leaf. start is the captured start tree of the
// record so relative tweens can update their accumulator.
type lerpFunc func(r record, key string, start Props, from, to, ratio float64, progress ProgressFunc)

// lerpTo writes the absolute interpolated value.
func lerpTo(r record, key string, _ Props, from, to, ratio float64, progress ProgressFunc) {
	r.setNumber(key, progress(from, to, ratio))
}

// lerpBy adds the displacement since the previous write and remembers in
// start the displacement actually applied so far. Integer fields round each
// write, so the part a write could not apply is carried to the next one.
func lerpBy(r record, key string, start Props, from, to, ratio float64, progress ProgressFunc) {
	cur, ok := r.number(key)
	if !ok {
		return
	}
	offset := progress(0, to, ratio)
	r.setNumber(key, cur+offset-from)
	if now, ok := r.number(key); ok {
		start[key] = from + now - cur
	}
}

// lerpSet writes the end value, or the start value when ratio is negative
// (inverse playback).
func lerpSet(r record, key string, _ Props, from, to, ratio float64, _ ProgressFunc) {
	if ratio < 0 {
		r.setNumber(key, from)
		return
	}
	r.setNumber(key, to)
}
