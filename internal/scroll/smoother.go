package scroll

import "github.com/charmbracelet/harmonica"

// Smoother eases the rendered scroll offset towards the raw input offset
// with a damped spring, one step per frame.
type Smoother struct {
	spring  harmonica.Spring
	enabled bool
	pos     float64
	vel     float64
	started bool
}

// NewSmoother builds a spring stepping at fps. A frequency <= 0 disables smoothing.
func NewSmoother(fps int, frequency, damping float64) *Smoother {
	s := &Smoother{enabled: frequency > 0 && fps > 0}
	if s.enabled {
		s.spring = harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)
	}
	return s
}

// Step advances the spring one frame towards target and returns the new offset
func (s *Smoother) Step(target float64) float64 {
	if !s.enabled {
		return target
	}
	if !s.started {
		s.pos, s.started = target, true
		return s.pos
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	if s.pos < 0 {
		s.pos = 0
	}
	return s.pos
}

// Smooth runs a fresh smoother over a whole series of targets
func Smooth(targets []float64, fps int, frequency, damping float64) []float64 {
	s := NewSmoother(fps, frequency, damping)
	out := make([]float64, len(targets))
	for i, t := range targets {
		out[i] = s.Step(t)
	}
	return out
}
