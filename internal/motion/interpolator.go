package motion

import (
	"fmt"
	"math"
)

// KeyframeTable is a piecewise-linear path of vertical positions and rotations.
// Both sequences have the same length K, K >= 2.
type KeyframeTable struct {
	Positions []float64 `yaml:"positions"` // yPercent
	Rotations []float64 `yaml:"rotations"` // degrees
}

// Transform is the interpolated state of one element along its table
type Transform struct {
	Position float64
	Rotation float64
}

// Len returns the number of keyframes
func (t KeyframeTable) Len() int {
	return len(t.Positions)
}

// Validate rejects tables the interpolator cannot walk
func (t KeyframeTable) Validate() error {
	if len(t.Positions) != len(t.Rotations) {
		return fmt.Errorf("keyframe table: %d positions but %d rotations", len(t.Positions), len(t.Rotations))
	}
	if len(t.Positions) < 2 {
		return fmt.Errorf("keyframe table: need at least 2 keyframes, got %d", len(t.Positions))
	}
	return nil
}

// Interpolate returns the transform at elementProgress (0.0 to 1.0).
//
// Progress is scaled into segment space and the lower keyframe index is
// clamped to K-2, so once progress saturates the last segment is reused
// and the result lands exactly on the last keyframe.
func Interpolate(table KeyframeTable, elementProgress float64) Transform {
	k := table.Len()
	if len(table.Rotations) < k {
		k = len(table.Rotations)
	}
	switch k {
	case 0:
		return Transform{}
	case 1:
		return Transform{Position: table.Positions[0], Rotation: table.Rotations[0]}
	}

	p := Clamp(elementProgress, 0, 1)
	s := p * float64(k-1)

	idx := int(math.Floor(s))
	if idx > k-2 {
		idx = k - 2
	}
	if idx < 0 {
		idx = 0
	}
	frac := s - float64(idx)

	return Transform{
		Position: Lerp(table.Positions[idx], table.Positions[idx+1], frac),
		Rotation: Lerp(table.Rotations[idx], table.Rotations[idx+1], frac),
	}
}

// Lerp performs linear interpolation between a and b.
// Written as a weighted sum so that t == 1 returns b exactly.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
