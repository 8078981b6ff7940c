package effects

import (
	"math"

	"github.com/ivlev/scrollfx/internal/director"
	"github.com/ivlev/scrollfx/internal/renderer"
	"github.com/ivlev/scrollfx/internal/scroll"
)

// Reveal latches each slide as shown once it is on screen and the visible
// share of it reaches the threshold
type Reveal struct {
	boxes     []scroll.Box
	threshold float64
	shown     []bool
}

func NewReveal(s director.Slides) *Reveal {
	return &Reveal{
		boxes:     s.Boxes,
		threshold: s.Threshold,
		shown:     make([]bool, len(s.Boxes)),
	}
}

func (r *Reveal) Name() string { return "reveal" }

func (r *Reveal) Update(s scroll.State, f *renderer.Frame) {
	for i, box := range r.boxes {
		if r.shown[i] || box.Height <= 0 {
			continue
		}
		// A slide off screen never counts, even with a zero threshold
		if ratio := visibleRatio(box, s.ScrollY, s.Viewport.Height); ratio > 0 && ratio >= r.threshold {
			r.shown[i] = true
		}
	}
	f.Slides = append(f.Slides[:0], r.shown...)
}

// visibleRatio is the share of box inside the viewport
func visibleRatio(box scroll.Box, scrollY, viewportHeight float64) float64 {
	top := box.Top - scrollY
	bottom := top + box.Height
	visible := math.Min(bottom, viewportHeight) - math.Max(top, 0)
	if visible <= 0 {
		return 0
	}
	return visible / box.Height
}
