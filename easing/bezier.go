package easing

import "math"

const (
	bezierSamples       = 11
	bezierSampleStep    = 1.0 / (bezierSamples - 1)
	newtonIterations    = 4
	newtonMinSlope      = 0.001
	subdivisionEpsilon  = 1e-7
	subdivisionMaxSteps = 10
)

// Bezier returns a cubic-bezier timing curve with control points (x1, y1) and
// (x2, y2), the same curve CSS uses for transition-timing-function. The end
// points are fixed at (0, 0) and (1, 1).
func Bezier(x1, y1, x2, y2 float64) Func {
	if x1 == y1 && x2 == y2 {
		return Linear
	}

	var samples [bezierSamples]float64
	for i := range samples {
		samples[i] = bezierCalc(float64(i)*bezierSampleStep, x1, x2)
	}

	return func(ratio float64) float64 {
		if ratio == 0 || ratio == 1 {
			return ratio
		}
		return bezierCalc(bezierSolveT(ratio, x1, x2, &samples), y1, y2)
	}
}

func bezierA(a1, a2 float64) float64 { return 1 - 3*a2 + 3*a1 }
func bezierB(a1, a2 float64) float64 { return 3*a2 - 6*a1 }
func bezierC(a1 float64) float64     { return 3 * a1 }

// bezierCalc evaluates one axis of the curve at parameter t.
func bezierCalc(t, a1, a2 float64) float64 {
	return ((bezierA(a1, a2)*t+bezierB(a1, a2))*t + bezierC(a1)) * t
}

func bezierSlope(t, a1, a2 float64) float64 {
	return 3*bezierA(a1, a2)*t*t + 2*bezierB(a1, a2)*t + bezierC(a1)
}

// bezierSolveT finds the curve parameter whose x equals x.
func bezierSolveT(x, x1, x2 float64, samples *[bezierSamples]float64) float64 {
	start := 0.0
	cur := 1
	for ; cur != bezierSamples-1 && samples[cur] <= x; cur++ {
		start += bezierSampleStep
	}
	cur--

	dist := (x - samples[cur]) / (samples[cur+1] - samples[cur])
	guess := start + dist*bezierSampleStep

	slope := bezierSlope(guess, x1, x2)
	switch {
	case slope >= newtonMinSlope:
		for i := 0; i < newtonIterations; i++ {
			s := bezierSlope(guess, x1, x2)
			if s == 0 {
				return guess
			}
			guess -= (bezierCalc(guess, x1, x2) - x) / s
		}
		return guess
	case slope == 0:
		return guess
	}

	a, b := start, start+bezierSampleStep
	var t float64
	for i := 0; i < subdivisionMaxSteps; i++ {
		t = a + (b-a)/2
		cx := bezierCalc(t, x1, x2) - x
		if math.Abs(cx) <= subdivisionEpsilon {
			break
		}
		if cx > 0 {
			b = t
		} else {
			a = t
		}
	}
	return t
}
