package motion

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"none":         ease.Linear,
	"linear":       ease.Linear,
	"power1.in":    ease.InQuad,
	"power1.out":   ease.OutQuad,
	"power1.inout": ease.InOutQuad,
	"power2.in":    ease.InCubic,
	"power2.out":   ease.OutCubic,
	"power2.inout": ease.InOutCubic,
	"power3.in":    ease.InQuart,
	"power3.out":   ease.OutQuart,
	"power3.inout": ease.InOutQuart,
	"sine.in":      ease.InSine,
	"sine.out":     ease.OutSine,
	"sine.inout":   ease.InOutSine,
}

// Easing looks up an easing curve by its page-script name ("power2.out", "none", ...).
// An empty name means linear.
func Easing(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}

// Ease maps progress (0.0 to 1.0) from a to b along fn
func Ease(fn ease.TweenFunc, a, b, progress float64) float64 {
	if fn == nil {
		fn = ease.Linear
	}
	p := Clamp(progress, 0, 1)
	return float64(fn(float32(p), float32(a), float32(b-a), 1))
}
