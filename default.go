package xtween

// Default backs the package-level helpers. Hosts with a single timeline can
// call UpdateTweens once per frame and build tweens with New, To, By, From and
// FromTo.
var Default = NewScheduler()

// New returns an idle tween for target on the Default scheduler.
func New(target any) *Tween { return Default.New(target) }

// To is shorthand for New(target).To(duration, props, opts...).
func To(target any, duration float64, props Props, opts ...Option) *Tween {
	return New(target).To(duration, props, opts...)
}

// By is shorthand for New(target).By(duration, props, opts...).
func By(target any, duration float64, props Props, opts ...Option) *Tween {
	return New(target).By(duration, props, opts...)
}

// From is shorthand for New(target).From(duration, props, opts...).
func From(target any, duration float64, props Props, opts ...Option) *Tween {
	return New(target).From(duration, props, opts...)
}

// FromTo is shorthand for New(target).FromTo(duration, from, to, opts...).
func FromTo(target any, duration float64, from, to Props, opts ...Option) *Tween {
	return New(target).FromTo(duration, from, to, opts...)
}

// UpdateTweens advances the Default scheduler to the millisecond timestamp now.
func UpdateTweens(now float64) { Default.Update(now) }

// RemoveAllTweens stops every tween on the Default scheduler.
func RemoveAllTweens() { Default.RemoveAll() }

// RemoveTagTweens stops the Default scheduler's tweens tagged tag.
func RemoveTagTweens(tag any) { Default.RemoveTag(tag) }

// ContainTweens reports whether the Default scheduler has a tween tagged tag.
func ContainTweens(tag any) bool { return Default.ContainsTag(tag) }
