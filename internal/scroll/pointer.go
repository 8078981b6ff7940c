package scroll

import (
	"sort"

	"github.com/ivlev/scrollfx/internal/motion"
)

// PointerKey is a scripted mouse position at a moment of the session
type PointerKey struct {
	Time float64 `yaml:"time"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// PointerPath moves the mouse linearly between keys. Outside the key range
// the pointer is absent, as if it had left the window.
type PointerPath []PointerKey

// At returns the pointer at time t
func (p PointerPath) At(t float64) Pointer {
	if len(p) == 0 || t < p[0].Time || t > p[len(p)-1].Time {
		return Pointer{}
	}
	i := sort.Search(len(p), func(i int) bool { return p[i].Time >= t })
	if p[i].Time == t || i == 0 {
		return Pointer{X: p[i].X, Y: p[i].Y, Present: true}
	}
	a, b := p[i-1], p[i]
	f := (t - a.Time) / (b.Time - a.Time)
	return Pointer{
		X:       motion.Lerp(a.X, b.X, f),
		Y:       motion.Lerp(a.Y, b.Y, f),
		Present: true,
	}
}
