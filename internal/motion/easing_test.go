package motion

import (
	"math"
	"testing"
)

func TestEasingLookup(t *testing.T) {
	for _, name := range []string{"", "none", "power2.out", "Power2.InOut", "sine.in"} {
		if _, err := Easing(name); err != nil {
			t.Errorf("Easing(%q) returned error: %v", name, err)
		}
	}
	if _, err := Easing("elastic.wobble"); err == nil {
		t.Error("Easing should reject unknown names")
	}
}

func TestEaseEndpoints(t *testing.T) {
	fn, err := Easing("power2.out")
	if err != nil {
		t.Fatal(err)
	}

	if got := Ease(fn, 1, 1.5, 0); math.Abs(got-1) > 1e-6 {
		t.Errorf("Ease at 0 = %v, want 1", got)
	}
	if got := Ease(fn, 1, 1.5, 1); math.Abs(got-1.5) > 1e-6 {
		t.Errorf("Ease at 1 = %v, want 1.5", got)
	}

	// Out-easing runs ahead of linear in the first half.
	if got := Ease(fn, 0, 1, 0.25); got <= 0.25 {
		t.Errorf("power2.out at 0.25 = %v, want > 0.25", got)
	}
}
