package easing

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidPath is returned by Path when the curve data cannot be parsed.
var ErrInvalidPath = errors.New("easing: invalid path data")

// pathSegmentSamples is the number of points sampled per cubic segment.
const pathSegmentSamples = 48

var (
	pathNumber   = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)
	pathCommands = regexp.MustCompile(`[A-Za-z]`)
)

type pathPoint struct {
	x, y float64
}

// Path builds a custom easing curve from cubic path data in the form
//
//	M0,0 C0.2,0 0.4,1.2 0.6,1 0.7,0.9 0.9,1 1,1
//
// Only absolute move (M) and cubic (C) commands are understood; the numbers may
// also be given bare. Four numbers describe a single segment from (0, 0) to
// (1, 1), like [Bezier]. Curves that do not start at x=0 and end at x=1 are
// normalised into that range. Ratios outside [0, 1] are clamped.
func Path(data string) (Func, error) {
	for _, cmd := range pathCommands.FindAllString(data, -1) {
		if cmd != "M" && cmd != "C" && cmd != "e" && cmd != "E" {
			return nil, fmt.Errorf("%w: unsupported command %q", ErrInvalidPath, cmd)
		}
	}

	raw := pathNumber.FindAllString(strings.TrimSpace(data), -1)
	values := make([]float64, 0, len(raw)+4)
	for _, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
		}
		values = append(values, v)
	}

	if len(values) == 4 {
		values = append([]float64{0, 0}, values...)
		values = append(values, 1, 1)
	}
	if len(values) < 8 || (len(values)-2)%6 != 0 {
		return nil, fmt.Errorf("%w: got %d numbers", ErrInvalidPath, len(values))
	}
	normalizePath(values)

	points := samplePath(values)
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: curve does not advance in x", ErrInvalidPath)
	}

	return func(ratio float64) float64 {
		switch {
		case ratio <= 0:
			return points[0].y
		case ratio >= 1:
			return points[len(points)-1].y
		}
		i := sort.Search(len(points), func(i int) bool { return points[i].x >= ratio })
		if i == 0 {
			return points[0].y
		}
		a, b := points[i-1], points[i]
		if b.x == a.x {
			return b.y
		}
		return a.y + (b.y-a.y)*(ratio-a.x)/(b.x-a.x)
	}, nil
}

// normalizePath rescales the path so it spans x in [0, 1] and, when the
// endpoints differ in y, maps the start to y=0 and the end to y=1.
func normalizePath(values []float64) {
	n := len(values)
	x0, y0 := values[0], values[1]
	x1, y1 := values[n-2], values[n-1]
	if x0 == 0 && x1 == 1 {
		return
	}
	sx := x1 - x0
	sy := y1 - y0
	if sx == 0 {
		return
	}
	for i := 0; i < n; i += 2 {
		values[i] = (values[i] - x0) / sx
		if sy != 0 {
			values[i+1] = (values[i+1] - y0) / sy
		}
	}
}

// samplePath flattens the cubic segments into points with increasing x.
// Points that step backwards in time are dropped.
func samplePath(values []float64) []pathPoint {
	points := []pathPoint{{values[0], values[1]}}
	for i := 2; i+5 < len(values); i += 6 {
		ax, ay := values[i-2], values[i-1]
		c1x, c1y := values[i], values[i+1]
		c2x, c2y := values[i+2], values[i+3]
		bx, by := values[i+4], values[i+5]
		for s := 1; s <= pathSegmentSamples; s++ {
			t := float64(s) / pathSegmentSamples
			p := pathPoint{
				x: cubicAt(t, ax, c1x, c2x, bx),
				y: cubicAt(t, ay, c1y, c2y, by),
			}
			if p.x < points[len(points)-1].x || p.x > 1 {
				continue
			}
			points = append(points, p)
		}
	}
	return points
}

func cubicAt(t, p0, p1, p2, p3 float64) float64 {
	mt := 1 - t
	return mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
}
