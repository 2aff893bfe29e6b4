package xtween

import (
	"math"
	"testing"
)

type rgba struct{ R, G, B, A float64 }

type point struct{ X, Y float64 }

type sprite struct {
	X, Y   float64
	Alpha  float64
	Count  int
	Level  uint8
	Hidden float64 `tween:"h"`
	Color  rgba
	Pos    *point
	Meta   map[string]any
	Name   string
	secret float64
}

// bag is a Tweenable with a write counter.
type bag struct {
	vals   map[string]float64
	writes int
}

func (b *bag) TweenProperty(key string) (any, bool) {
	v, ok := b.vals[key]
	return v, ok
}

func (b *bag) SetTweenProperty(key string, value any) {
	if f, ok := value.(float64); ok {
		b.vals[key] = f
		b.writes++
	}
}

func mustRecord(t *testing.T, target any) record {
	t.Helper()
	r, ok := targetRecord(target)
	if !ok {
		t.Fatalf("targetRecord(%T) failed", target)
	}
	return r
}

func TestNormalizeProps(t *testing.T) {
	p := normalizeProps(Props{
		"a":   3,
		"b":   float32(1.5),
		"c":   uint16(7),
		"d":   "skip",
		"e":   map[string]any{"x": int64(2)},
		"f":   point{X: 1, Y: 2},
		"g":   nil,
		"h":   &rgba{A: 1},
		"bad": []int{1},
	})

	if p["a"] != 3.0 || p["b"] != 1.5 || p["c"] != 7.0 {
		t.Errorf("numbers not normalised: %v", p)
	}
	for _, k := range []string{"d", "g", "bad"} {
		if _, ok := p[k]; ok {
			t.Errorf("key %q should be dropped", k)
		}
	}
	if e, ok := p["e"].(Props); !ok || e["x"] != 2.0 {
		t.Errorf("e = %#v, want Props{x:2}", p["e"])
	}
	if f, ok := p["f"].(Props); !ok || f["X"] != 1.0 || f["Y"] != 2.0 {
		t.Errorf("f = %#v, want Props{X:1 Y:2}", p["f"])
	}
	if h, ok := p["h"].(Props); !ok || h["A"] != 1.0 {
		t.Errorf("h = %#v, want Props{A:1 ...}", p["h"])
	}
}

func TestPropsCloneIsDeep(t *testing.T) {
	p := Props{"a": 1.0, "n": Props{"b": 2.0}}
	c := p.clone()
	c["n"].(Props)["b"] = 5.0
	if p["n"].(Props)["b"] != 2.0 {
		t.Error("clone shares nested trees")
	}
}

func TestTargetRecordRejectsScalars(t *testing.T) {
	var nilSprite *sprite
	for _, target := range []any{nil, 3, "x", nilSprite, map[int]float64{1: 1}, []float64{1}} {
		if _, ok := targetRecord(target); ok {
			t.Errorf("targetRecord(%#v) should fail", target)
		}
	}
}

func TestSetupCapturesNestedStart(t *testing.T) {
	s := &sprite{X: 1, Color: rgba{R: 0.5}, Pos: &point{Y: 3}, Name: "hero"}
	start := Props{}
	end := normalizeProps(Props{
		"X":       10,
		"Color":   Props{"R": 1},
		"Pos":     Props{"Y": 0},
		"Missing": 3,
		"Name":    4,
		"secret":  1,
	})

	setupProperties(mustRecord(t, s), start, end, identity)

	if start["X"] != 1.0 {
		t.Errorf("X start = %v, want 1", start["X"])
	}
	if c, ok := start["Color"].(Props); !ok || c["R"] != 0.5 {
		t.Errorf("Color start = %#v", start["Color"])
	}
	if p, ok := start["Pos"].(Props); !ok || p["Y"] != 3.0 {
		t.Errorf("Pos start = %#v", start["Pos"])
	}
	for _, k := range []string{"Missing", "Name", "secret"} {
		if _, ok := start[k]; ok {
			t.Errorf("start should not contain %q", k)
		}
	}
}

func TestSetupZeroTransform(t *testing.T) {
	s := &sprite{X: 7}
	start := Props{}
	setupProperties(mustRecord(t, s), start, Props{"X": 1.0}, zero)
	if start["X"] != 0.0 {
		t.Errorf("X start = %v, want 0", start["X"])
	}
}

func TestUpdateStructFields(t *testing.T) {
	s := &sprite{Pos: &point{}}
	r := mustRecord(t, s)
	end := normalizeProps(Props{"x": 10, "Count": 10, "Level": 10, "h": 4, "Color": Props{"A": 1}, "Pos": Props{"X": 8}})
	start := Props{}
	setupProperties(r, start, end, identity)

	updateProperties(r, start, end, 0.46, lerpTo, Lerp)

	if math.Abs(s.X-4.6) > 1e-9 {
		t.Errorf("X = %f, want 4.6", s.X)
	}
	if s.Count != 5 {
		t.Errorf("Count = %d, want 5 (rounded)", s.Count)
	}
	if s.Level != 5 {
		t.Errorf("Level = %d, want 5 (rounded)", s.Level)
	}
	if math.Abs(s.Hidden-1.84) > 1e-9 {
		t.Errorf("Hidden = %f, want 1.84 via tag", s.Hidden)
	}
	if math.Abs(s.Color.A-0.46) > 1e-9 {
		t.Errorf("Color.A = %f, want 0.46", s.Color.A)
	}
	if math.Abs(s.Pos.X-3.68) > 1e-9 {
		t.Errorf("Pos.X = %f, want 3.68", s.Pos.X)
	}
}

func TestUpdateMapTarget(t *testing.T) {
	m := map[string]any{
		"x":   5.0,
		"n":   2,
		"pos": map[string]any{"y": 1.0},
		"pt":  point{X: 0},
	}
	r := mustRecord(t, m)
	end := normalizeProps(Props{"x": 15, "n": 4, "pos": Props{"y": 11}, "pt": Props{"X": 10}, "nope": 1})
	start := Props{}
	setupProperties(r, start, end, identity)

	updateProperties(r, start, end, 0.5, lerpTo, Lerp)

	if m["x"] != 10.0 {
		t.Errorf("x = %v, want 10", m["x"])
	}
	if m["n"] != 3 {
		t.Errorf("n = %#v, want int 3", m["n"])
	}
	if y := m["pos"].(map[string]any)["y"]; y != 6.0 {
		t.Errorf("pos.y = %v, want 6", y)
	}
	if pt := m["pt"].(point); pt.X != 5 {
		t.Errorf("pt.X = %v, want 5 (struct copy written back)", pt.X)
	}
	if _, ok := m["nope"]; ok {
		t.Error("unknown keys must not be created")
	}
}

func TestUpdateTweenable(t *testing.T) {
	b := &bag{vals: map[string]float64{"a": 0}}
	r := mustRecord(t, b)
	end := Props{"a": 10.0}
	start := Props{}
	setupProperties(r, start, end, identity)

	updateProperties(r, start, end, 0.25, lerpTo, Lerp)

	if b.vals["a"] != 2.5 {
		t.Errorf("a = %v, want 2.5", b.vals["a"])
	}
	if b.writes != 1 {
		t.Errorf("writes = %d, want 1", b.writes)
	}
}

func TestUpdateTweenableValueField(t *testing.T) {
	type holder struct {
		Bag bag
	}
	h := &holder{Bag: bag{vals: map[string]float64{"a": 1}}}
	r := mustRecord(t, h)
	end := Props{"Bag": Props{"a": 3.0}}
	start := Props{}
	setupProperties(r, start, end, identity)

	updateProperties(r, start, end, 1, lerpTo, Lerp)

	if h.Bag.vals["a"] != 3 {
		t.Errorf("a = %v, want 3", h.Bag.vals["a"])
	}
}

func TestUpdateSkipsLeavesWithoutStart(t *testing.T) {
	s := &sprite{X: 1, Y: 1}
	updateProperties(mustRecord(t, s), Props{"X": 1.0}, Props{"X": 3.0, "Y": 9.0}, 1, lerpTo, Lerp)
	if s.X != 3 || s.Y != 1 {
		t.Errorf("got X=%v Y=%v, want X=3 Y=1", s.X, s.Y)
	}
}

func TestLerpByAccumulates(t *testing.T) {
	s := &sprite{X: 5}
	r := mustRecord(t, s)
	start := Props{"X": 0.0}
	end := Props{"X": 30.0}

	for _, ratio := range []float64{0.1, 0.5, 0.5, 0.9, 1} {
		updateProperties(r, start, end, ratio, lerpBy, Lerp)
	}
	if math.Abs(s.X-35) > 1e-9 {
		t.Errorf("X = %f, want 35", s.X)
	}

	// another writer in between is preserved
	s.X += 100
	updateProperties(r, start, end, 1, lerpBy, Lerp)
	if math.Abs(s.X-135) > 1e-9 {
		t.Errorf("X = %f, want 135", s.X)
	}
}

func TestLerpByCarriesIntegerRounding(t *testing.T) {
	s := &sprite{Count: 2}
	r := mustRecord(t, s)
	start := Props{"Count": 0.0}
	end := Props{"Count": 10.0}

	// Every step adds 0.4, which rounds away on its own.
	for i := 1; i <= 25; i++ {
		updateProperties(r, start, end, float64(i)/25, lerpBy, Lerp)
	}
	if s.Count != 12 {
		t.Errorf("Count = %d, want 12", s.Count)
	}
	if got := start["Count"]; got != 10.0 {
		t.Errorf("applied displacement = %v, want 10", got)
	}
}

func TestLerpSet(t *testing.T) {
	s := &sprite{X: 5}
	r := mustRecord(t, s)
	start := Props{"X": 5.0}
	end := Props{"X": 9.0}

	updateProperties(r, start, end, 1, lerpSet, Lerp)
	if s.X != 9 {
		t.Errorf("forward X = %v, want 9", s.X)
	}
	updateProperties(r, start, end, -1, lerpSet, Lerp)
	if s.X != 5 {
		t.Errorf("inverse X = %v, want 5", s.X)
	}
}

func TestStructInfoMatchOrder(t *testing.T) {
	type clash struct {
		Val float64
		Alt float64 `tween:"Val2"`
		VAL float64
	}
	c := &clash{}
	r := mustRecord(t, c)

	r.setNumber("Val", 1)
	r.setNumber("Val2", 2)
	r.setNumber("VAL", 3)
	r.setNumber("val", 4)

	if c.Val != 4 || c.Alt != 2 || c.VAL != 3 {
		t.Errorf("got %+v, want {Val:4 Alt:2 VAL:3}", *c)
	}
}
