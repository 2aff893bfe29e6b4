// Package xtween animates the numeric fields of ordinary Go values.
//
// A [Tween] is a timeline of actions applied to one target: property tweens
// ([Tween.To], [Tween.By], [Tween.From], [Tween.FromTo]), instant writes
// ([Tween.Set]), pauses ([Tween.Delay]), callbacks ([Tween.Call]) and
// nested tweens played side by side ([Tween.Add]) or one after another
// ([Tween.Then], [Tween.Sequence]). Timelines repeat, ping-pong, reverse
// mid-flight and run at their own time scale.
//
// # Quick start
//
//	type Sprite struct{ X, Y, Alpha float64 }
//
//	hero := &Sprite{Alpha: 1}
//	xtween.New(hero).
//		To(0.4, xtween.Props{"X": 120, "Y": 40}, xtween.WithEasing(easing.CubicOut)).
//		Delay(0.2).
//		To(0.3, xtween.Props{"Alpha": 0}).
//		Play()
//
//	// once per frame, with a millisecond timestamp
//	xtween.UpdateTweens(float64(time.Since(start).Milliseconds()))
//
// # Targets
//
// Property trees ([Props]) name the fields to animate. Nested trees reach
// into nested structs and maps:
//
//	xtween.To(node, 1, xtween.Props{"Transform": xtween.Props{"Scale": 2}})
//
// Struct fields are matched by name, by a `tween:"name"` tag or
// case-insensitively. Integer fields are rounded on write. String-keyed maps
// are addressed by key. Types that need change notification implement
// [Tweenable]. Properties that do not resolve to a number are skipped.
//
// # Scheduling
//
// Play registers a tween with its [Scheduler]. The package-level helpers use
// [Default]; create more with [NewScheduler] for independent timelines. Drive
// a scheduler with [Scheduler.Update] (timestamps) or [Scheduler.Step]
// (deltas in seconds). Host loops for Ebitengine and Bubble Tea live in the
// ebitenloop and teaclock packages.
//
// Nothing in this package is safe for concurrent use.
package xtween
