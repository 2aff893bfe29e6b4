package xtween

// Presets for the field names 2D nodes conventionally use. Field lookup is
// case-insensitive, so they also work on maps keyed "x", "scalex" and so on.

// MoveTo animates X and Y to the given coordinates.
func (t *Tween) MoveTo(duration, x, y float64, opts ...Option) *Tween {
	return t.To(duration, Props{"X": x, "Y": y}, opts...)
}

// MoveBy displaces X and Y by dx and dy.
func (t *Tween) MoveBy(duration, dx, dy float64, opts ...Option) *Tween {
	return t.By(duration, Props{"X": dx, "Y": dy}, opts...)
}

// ScaleTo animates ScaleX and ScaleY.
func (t *Tween) ScaleTo(duration, sx, sy float64, opts ...Option) *Tween {
	return t.To(duration, Props{"ScaleX": sx, "ScaleY": sy}, opts...)
}

// FadeTo animates Alpha.
func (t *Tween) FadeTo(duration, alpha float64, opts ...Option) *Tween {
	return t.To(duration, Props{"Alpha": alpha}, opts...)
}

// RotateTo animates Rotation, in whatever unit the target stores.
func (t *Tween) RotateTo(duration, rotation float64, opts ...Option) *Tween {
	return t.To(duration, Props{"Rotation": rotation}, opts...)
}

// ColorTo animates the four components of a nested Color record.
func (t *Tween) ColorTo(duration, r, g, b, a float64, opts ...Option) *Tween {
	return t.To(duration, Props{"Color": Props{"R": r, "G": g, "B": b, "A": a}}, opts...)
}
