package effects

import (
	"github.com/ivlev/scrollfx/internal/director"
	"github.com/ivlev/scrollfx/internal/renderer"
	"github.com/ivlev/scrollfx/internal/scroll"
)

// RadioRotation turns the radio icon in proportion to the scroll offset
type RadioRotation struct {
	speed float64
}

func NewRadioRotation(r director.Radio) *RadioRotation {
	return &RadioRotation{speed: r.Speed}
}

func (r *RadioRotation) Name() string { return "radio-rotation" }

func (r *RadioRotation) Update(s scroll.State, f *renderer.Frame) {
	f.RadioRotation = s.ScrollY * r.speed
}
