package effects

import (
	"fmt"

	"github.com/tanema/gween"

	"github.com/ivlev/scrollfx/internal/director"
	"github.com/ivlev/scrollfx/internal/motion"
	"github.com/ivlev/scrollfx/internal/renderer"
	"github.com/ivlev/scrollfx/internal/scroll"
)

// VideoZoom scales the about video up as the section enters and back down
// as it leaves. The zoom-out scrub takes over once its start is passed.
type VideoZoom struct {
	in  scrub
	out scrub
}

func NewVideoZoom(a director.About, viewportHeight float64) (*VideoZoom, error) {
	in, err := newScrub("video zoom in", a.Box, viewportHeight, a.ZoomIn)
	if err != nil {
		return nil, err
	}
	out, err := newScrub("video zoom out", a.Box, viewportHeight, a.ZoomOut)
	if err != nil {
		return nil, err
	}
	return &VideoZoom{in: in, out: out}, nil
}

func (v *VideoZoom) Name() string { return "video-zoom" }

func (v *VideoZoom) Update(s scroll.State, f *renderer.Frame) {
	if s.ScrollY >= v.out.trigger.Start {
		f.About.VideoScale = v.out.value(s.ScrollY)
		return
	}
	f.About.VideoScale = v.in.value(s.ScrollY)
}

// AboutFade is a timed tween: it plays forward once the trigger is crossed
// downwards and plays backwards when it is crossed upwards. It keeps its play
// head between frames, so Update must be called in frame order.
type AboutFade struct {
	start    float64
	duration float64
	offsetY  float64
	tween    *gween.Tween

	passed   bool
	forward  bool
	playhead float64
}

func NewAboutFade(a director.About, viewportHeight float64) (*AboutFade, error) {
	anchor, err := scroll.ParseAnchor(a.TextFade.Start)
	if err != nil {
		return nil, fmt.Errorf("about fade: %w", err)
	}
	fn, err := motion.Easing(a.TextFade.Ease)
	if err != nil {
		return nil, fmt.Errorf("about fade: %w", err)
	}
	if a.TextFade.Duration <= 0 {
		return nil, fmt.Errorf("about fade: duration must be positive")
	}
	return &AboutFade{
		start:    anchor.Resolve(a.Video, viewportHeight, 0),
		duration: a.TextFade.Duration,
		offsetY:  a.TextFade.OffsetY,
		tween:    gween.New(0, 1, float32(a.TextFade.Duration), fn),
	}, nil
}

func (a *AboutFade) Name() string { return "about-fade" }

func (a *AboutFade) Update(s scroll.State, f *renderer.Frame) {
	passed := s.ScrollY >= a.start
	switch {
	case passed && !a.passed:
		a.forward = true
	case !passed && a.passed:
		a.forward = false
	}
	a.passed = passed

	if a.forward {
		a.playhead += s.Dt
	} else {
		a.playhead -= s.Dt
	}
	a.playhead = motion.Clamp(a.playhead, 0, a.duration)

	v, _ := a.tween.Set(float32(a.playhead))
	f.About.TextOpacity = float64(v)
	f.About.TextY = a.offsetY * (1 - float64(v))
}
