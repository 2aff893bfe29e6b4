package easing

import (
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
)

var registry = map[string]Func{
	"linear": Linear,

	"quadratic-in":    QuadraticIn,
	"quadratic-out":   QuadraticOut,
	"quadratic-inout": QuadraticInOut,
	"cubic-in":        CubicIn,
	"cubic-out":       CubicOut,
	"cubic-inout":     CubicInOut,
	"quartic-in":      QuarticIn,
	"quartic-out":     QuarticOut,
	"quartic-inout":   QuarticInOut,
	"quintic-in":      QuinticIn,
	"quintic-out":     QuinticOut,
	"quintic-inout":   QuinticInOut,

	"sinusoidal-in":    SinusoidalIn,
	"sinusoidal-out":   SinusoidalOut,
	"sinusoidal-inout": SinusoidalInOut,

	"exponential-in":    ExponentialIn,
	"exponential-out":   ExponentialOut,
	"exponential-inout": ExponentialInOut,

	"circular-in":    CircularIn,
	"circular-out":   CircularOut,
	"circular-inout": CircularInOut,

	"elastic-in":    ElasticIn,
	"elastic-out":   ElasticOut,
	"elastic-inout": ElasticInOut,

	"back-in":    BackIn,
	"back-out":   BackOut,
	"back-inout": BackInOut,

	"bounce-in":    BounceIn,
	"bounce-out":   BounceOut,
	"bounce-inout": BounceInOut,

	// Out-then-in curves only exist in gween.
	"quadratic-outin":  Gween(ease.OutInQuad),
	"cubic-outin":      Gween(ease.OutInCubic),
	"sinusoidal-outin": Gween(ease.OutInSine),
	"elastic-outin":    Gween(ease.OutInElastic),
	"back-outin":       Gween(ease.OutInBack),
	"bounce-outin":     Gween(ease.OutInBounce),
}

// gween spells curves as InOutQuad, OutBounce and so on.
var gweenFamilies = map[string]string{
	"quad":    "quadratic",
	"cubic":   "cubic",
	"quart":   "quartic",
	"quint":   "quintic",
	"sine":    "sinusoidal",
	"expo":    "exponential",
	"circ":    "circular",
	"elastic": "elastic",
	"back":    "back",
	"bounce":  "bounce",
}

// ByName looks up a named curve. Names are case-insensitive and accept both the
// "family-variant" form ("cubic-inout") and gween's spelling ("InOutCubic").
func ByName(name string) (Func, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if fn, ok := registry[key]; ok {
		return fn, true
	}
	for _, variant := range []string{"inout", "outin", "in", "out"} {
		if !strings.HasPrefix(key, variant) {
			continue
		}
		if family, ok := gweenFamilies[key[len(variant):]]; ok {
			fn, ok := registry[family+"-"+variant]
			return fn, ok
		}
	}
	return nil, false
}

// Names returns every registered name in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
