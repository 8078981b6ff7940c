package effects

import (
	"github.com/ivlev/scrollfx/internal/director"
	"github.com/ivlev/scrollfx/internal/motion"
	"github.com/ivlev/scrollfx/internal/renderer"
	"github.com/ivlev/scrollfx/internal/scroll"
)

// Tilt leans the tilt card towards the pointer while the pointer is over it
type Tilt struct {
	card     director.Tilt
	viewport scroll.Viewport
}

func NewTilt(t director.Tilt, vp scroll.Viewport) *Tilt {
	return &Tilt{card: t, viewport: vp}
}

func (t *Tilt) Name() string { return "tilt" }

func (t *Tilt) Update(s scroll.State, f *renderer.Frame) {
	if !t.hovered(s) {
		f.Tilt = renderer.TiltState{}
		return
	}

	w, h := t.viewport.Width, t.viewport.Height
	xAxis := motion.Clamp((w/2-s.Pointer.X)/w*t.card.Factor, -t.card.MaxAngle, t.card.MaxAngle)
	yAxis := motion.Clamp((h/2-s.Pointer.Y)/h*t.card.Factor, -t.card.MaxAngle, t.card.MaxAngle)
	f.Tilt = renderer.TiltState{RotateY: xAxis, RotateX: -yAxis}
}

// hovered reports whether the pointer is inside the card's on-screen rectangle
func (t *Tilt) hovered(s scroll.State) bool {
	if !s.Pointer.Present {
		return false
	}
	top := t.card.Box.Top - s.ScrollY
	left := (t.viewport.Width - t.card.Width) / 2
	return s.Pointer.X >= left && s.Pointer.X <= left+t.card.Width &&
		s.Pointer.Y >= top && s.Pointer.Y <= top+t.card.Box.Height
}
