package motion

// Stagger spreads the active windows of N elements over the global progress.
//
// Element i starts after a delay of i*(Budget/N) and then runs Acceleration
// times faster than the global progress, so its window is 1/Acceleration wide.
type Stagger struct {
	Budget       float64 `yaml:"budget"`       // total delay, fraction of full progress
	Acceleration float64 `yaml:"acceleration"` // window compression factor
}

// DefaultStagger matches the pinned card section of the landing page
var DefaultStagger = Stagger{Budget: 0.75, Acceleration: 2}

// Delay returns the start offset of element i out of n
func (s Stagger) Delay(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(i) * (s.Budget / float64(n))
}

// ElementProgress derives the progress of element i out of n from the global
// progress. The second result reports whether the element has started: an
// element whose raw progress is <= 0 must be hidden instead of drawn at its
// first keyframe.
func (s Stagger) ElementProgress(global float64, i, n int) (float64, bool) {
	raw := (global - s.Delay(i, n)) * s.Acceleration
	return Clamp(raw, 0, 1), raw > 0
}
