package effects

import (
	"fmt"

	"github.com/ivlev/scrollfx/internal/director"
	"github.com/ivlev/scrollfx/internal/motion"
	"github.com/ivlev/scrollfx/internal/renderer"
	"github.com/ivlev/scrollfx/internal/scroll"
)

// HeaderScroll slides the pinned header left until its right edge meets the viewport
type HeaderScroll struct {
	trigger  scroll.Trigger
	distance float64
}

func NewHeaderScroll(s director.Sticky, vp scroll.Viewport) (*HeaderScroll, error) {
	end := fmt.Sprintf("+=%f", s.PinLength(vp.Height))
	tr, err := scroll.NewTrigger(s.Box, vp.Height, s.HeaderStart, end)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	width := renderer.TextWidth(s.Header, renderer.HeaderScale(vp.Height))
	return &HeaderScroll{trigger: tr, distance: width - vp.Width}, nil
}

func (h *HeaderScroll) Name() string { return "header-scroll" }

func (h *HeaderScroll) Update(s scroll.State, f *renderer.Frame) {
	f.HeaderX = motion.Lerp(0, -h.distance, h.trigger.Progress(s.ScrollY))
}
