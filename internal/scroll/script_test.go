package scroll

import (
	"math"
	"testing"
)

func TestScriptPositions(t *testing.T) {
	s, err := NewScript([]Move{
		{To: 1000, Duration: 2},
		{Hold: 1},
		{To: 0, Duration: 1, Ease: "power2.out"},
	})
	if err != nil {
		t.Fatalf("NewScript failed: %v", err)
	}

	if s.Duration() != 4 {
		t.Errorf("Duration = %v, want 4", s.Duration())
	}

	tests := []struct {
		time float64
		want float64
	}{
		{0, 0},
		{1, 500},
		{2, 1000},
		{2.5, 1000},
		{4, 0},
		{10, 0},
	}
	for _, tt := range tests {
		if got := s.At(tt.time); math.Abs(got-tt.want) > 0.01 {
			t.Errorf("At(%v) = %v, want %v", tt.time, got, tt.want)
		}
	}

	positions := s.Positions(30)
	if len(positions) != 120 {
		t.Fatalf("Positions(30) returned %d frames, want 120", len(positions))
	}
}

func TestScriptRejectsBadMoves(t *testing.T) {
	bad := [][]Move{
		{{To: 100}},
		{{To: -5, Duration: 1}},
		{{To: 100, Duration: 1, Ease: "wobbly"}},
	}
	for i, moves := range bad {
		if _, err := NewScript(moves); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestSmoothConverges(t *testing.T) {
	targets := make([]float64, 180)
	for i := range targets {
		targets[i] = 1000
	}
	targets[0] = 0

	out := Smooth(targets, 60, 6, 1)
	if out[0] != 0 {
		t.Errorf("first frame = %v, want 0", out[0])
	}
	if out[1] <= 0 || out[1] >= 1000 {
		t.Errorf("second frame = %v, want strictly between 0 and 1000", out[1])
	}
	if last := out[len(out)-1]; math.Abs(last-1000) > 1 {
		t.Errorf("last frame = %v, want ~1000", last)
	}
}

func TestSmoothDisabled(t *testing.T) {
	targets := []float64{0, 10, 500, 20}
	out := Smooth(targets, 60, 0, 1)
	for i := range targets {
		if out[i] != targets[i] {
			t.Errorf("frame %d = %v, want %v", i, out[i], targets[i])
		}
	}
}

func TestPointerPath(t *testing.T) {
	path := PointerPath{
		{Time: 1, X: 0, Y: 0},
		{Time: 3, X: 200, Y: 100},
	}

	if p := path.At(0.5); p.Present {
		t.Error("pointer should be absent before the first key")
	}
	if p := path.At(2); !p.Present || p.X != 100 || p.Y != 50 {
		t.Errorf("At(2) = %+v, want {100 50 true}", p)
	}
	if p := path.At(3); !p.Present || p.X != 200 {
		t.Errorf("At(3) = %+v, want last key", p)
	}
	if p := path.At(3.5); p.Present {
		t.Error("pointer should be absent after the last key")
	}
	if p := PointerPath(nil).At(1); p.Present {
		t.Error("empty path should have no pointer")
	}
}
