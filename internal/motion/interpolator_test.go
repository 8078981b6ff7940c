package motion

import (
	"math"
	"testing"
)

var cardTables = []KeyframeTable{
	{Positions: []float64{10, 50, -10, 10, -30}, Rotations: []float64{20, -10, -45, 20, 60}},
	{Positions: []float64{0, 47.5, -10, 15, 40}, Rotations: []float64{-25, 15, -45, 30, -60}},
	{Positions: []float64{0, 60, -20, 50, 0}, Rotations: []float64{30, -20, 75, 120, -40}},
}

func TestInterpolateTwoKeyframes(t *testing.T) {
	table := KeyframeTable{Positions: []float64{0, 50}, Rotations: []float64{20, -10}}

	got := Interpolate(table, 0.5)
	if got.Position != 25 || got.Rotation != 5 {
		t.Errorf("Interpolate(0.5) = %+v, want {25 5}", got)
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	for i, table := range cardTables {
		k := table.Len()

		start := Interpolate(table, 0)
		if start.Position != table.Positions[0] || start.Rotation != table.Rotations[0] {
			t.Errorf("table %d: Interpolate(0) = %+v, want first keyframe", i, start)
		}

		end := Interpolate(table, 1)
		if end.Position != table.Positions[k-1] || end.Rotation != table.Rotations[k-1] {
			t.Errorf("table %d: Interpolate(1) = %+v, want last keyframe (%v, %v)",
				i, end, table.Positions[k-1], table.Rotations[k-1])
		}
	}
}

func TestInterpolateHitsInnerKeyframes(t *testing.T) {
	table := cardTables[0]
	k := table.Len()
	for j := 0; j < k; j++ {
		p := float64(j) / float64(k-1)
		got := Interpolate(table, p)
		if math.Abs(got.Position-table.Positions[j]) > 1e-9 || math.Abs(got.Rotation-table.Rotations[j]) > 1e-9 {
			t.Errorf("Interpolate(%.2f) = %+v, want keyframe %d (%v, %v)",
				p, got, j, table.Positions[j], table.Rotations[j])
		}
	}
}

func TestInterpolateStaysWithinBounds(t *testing.T) {
	for i, table := range cardTables {
		minP, maxP := bounds(table.Positions)
		minR, maxR := bounds(table.Rotations)
		for step := 0; step <= 1000; step++ {
			p := float64(step) / 1000
			got := Interpolate(table, p)
			if got.Position < minP || got.Position > maxP {
				t.Fatalf("table %d: position %v at %.3f outside [%v, %v]", i, got.Position, p, minP, maxP)
			}
			if got.Rotation < minR || got.Rotation > maxR {
				t.Fatalf("table %d: rotation %v at %.3f outside [%v, %v]", i, got.Rotation, p, minR, maxR)
			}
		}
	}
}

func TestInterpolateMonotonicWithinSegment(t *testing.T) {
	// Segment 0 of the first table rises in position and falls in rotation.
	table := cardTables[0]
	prev := Interpolate(table, 0)
	for step := 1; step <= 25; step++ {
		p := float64(step) / 100 // segment 0 covers [0, 0.25]
		cur := Interpolate(table, p)
		if cur.Position < prev.Position {
			t.Errorf("position decreased at %.2f: %v -> %v", p, prev.Position, cur.Position)
		}
		if cur.Rotation > prev.Rotation {
			t.Errorf("rotation increased at %.2f: %v -> %v", p, prev.Rotation, cur.Rotation)
		}
		prev = cur
	}
}

func TestInterpolateClampsOutOfRange(t *testing.T) {
	table := cardTables[1]
	if got, want := Interpolate(table, -0.5), Interpolate(table, 0); got != want {
		t.Errorf("Interpolate(-0.5) = %+v, want %+v", got, want)
	}
	if got, want := Interpolate(table, 1.7), Interpolate(table, 1); got != want {
		t.Errorf("Interpolate(1.7) = %+v, want %+v", got, want)
	}
}

func TestInterpolateDegenerateTables(t *testing.T) {
	if got := Interpolate(KeyframeTable{}, 0.4); got != (Transform{}) {
		t.Errorf("empty table: got %+v, want zero transform", got)
	}

	single := KeyframeTable{Positions: []float64{7}, Rotations: []float64{-3}}
	for _, p := range []float64{0, 0.5, 1} {
		if got := Interpolate(single, p); got.Position != 7 || got.Rotation != -3 {
			t.Errorf("single keyframe at %.1f: got %+v, want {7 -3}", p, got)
		}
	}
}

func TestKeyframeTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   KeyframeTable
		wantErr bool
	}{
		{"valid", cardTables[0], false},
		{"two keyframes", KeyframeTable{Positions: []float64{0, 1}, Rotations: []float64{0, 1}}, false},
		{"mismatched", KeyframeTable{Positions: []float64{0, 1, 2}, Rotations: []float64{0, 1}}, true},
		{"single", KeyframeTable{Positions: []float64{0}, Rotations: []float64{0}}, true},
		{"empty", KeyframeTable{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(25, -650, 0); got != 25 {
		t.Errorf("Lerp start = %v, want 25", got)
	}
	if got := Lerp(25, -650, 1); got != -650 {
		t.Errorf("Lerp end = %v, want -650", got)
	}
	if got := Lerp(25, -650, 0.5); got != -312.5 {
		t.Errorf("Lerp mid = %v, want -312.5", got)
	}
}

func bounds(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
