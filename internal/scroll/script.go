package scroll

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/ivlev/scrollfx/internal/motion"
)

// Move is one step of a scripted scroll session. A move with Hold > 0 keeps
// the current offset for Hold seconds; otherwise it scrolls to To over Duration.
type Move struct {
	To       float64 `yaml:"to,omitempty"`
	Duration float64 `yaml:"duration,omitempty"`
	Ease     string  `yaml:"ease,omitempty"`
	Hold     float64 `yaml:"hold,omitempty"`
}

type segment struct {
	start, end float64
	tween      *gween.Tween
}

// Script replays a list of moves as a raw (unsmoothed) scroll offset over time
type Script struct {
	segments []segment
	duration float64
	final    float64
}

// NewScript compiles moves into tweens. Offsets below zero are rejected.
func NewScript(moves []Move) (*Script, error) {
	s := &Script{}
	pos := 0.0
	for i, m := range moves {
		if m.Hold > 0 {
			s.add(pos, pos, m.Hold, ease.Linear)
			continue
		}
		if m.Duration <= 0 {
			return nil, fmt.Errorf("move %d: duration must be positive", i+1)
		}
		if m.To < 0 {
			return nil, fmt.Errorf("move %d: negative scroll offset %.0f", i+1, m.To)
		}
		fn, err := motion.Easing(m.Ease)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		s.add(pos, m.To, m.Duration, fn)
		pos = m.To
	}
	s.final = pos
	return s, nil
}

func (s *Script) add(from, to, duration float64, fn ease.TweenFunc) {
	s.segments = append(s.segments, segment{
		start: s.duration,
		end:   s.duration + duration,
		tween: gween.New(float32(from), float32(to), float32(duration), fn),
	})
	s.duration += duration
}

// Duration is the total length of the session in seconds
func (s *Script) Duration() float64 {
	return s.duration
}

// At returns the raw scroll offset at time t
func (s *Script) At(t float64) float64 {
	for _, seg := range s.segments {
		if t < seg.end {
			if t < seg.start {
				t = seg.start
			}
			v, _ := seg.tween.Set(float32(t - seg.start))
			return float64(v)
		}
	}
	return s.final
}

// Frames returns the number of frames the session spans at fps
func (s *Script) Frames(fps int) int {
	n := int(math.Round(s.duration * float64(fps)))
	if n < 1 {
		n = 1
	}
	return n
}

// Positions samples the raw offset once per frame
func (s *Script) Positions(fps int) []float64 {
	n := s.Frames(fps)
	out := make([]float64, n)
	for i := range out {
		out[i] = s.At(float64(i) / float64(fps))
	}
	return out
}
