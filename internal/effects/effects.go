package effects

import (
	"fmt"

	"github.com/tanema/gween/ease"

	"github.com/ivlev/scrollfx/internal/director"
	"github.com/ivlev/scrollfx/internal/motion"
	"github.com/ivlev/scrollfx/internal/renderer"
	"github.com/ivlev/scrollfx/internal/scroll"
)

// Effect writes its part of the page state for one frame.
// Effects are called in frame order; most are pure functions of the state.
type Effect interface {
	Name() string
	Update(s scroll.State, f *renderer.Frame)
}

// Build creates every effect of the page in drawing order
func Build(page director.Page) ([]Effect, error) {
	vh := page.Viewport.Height

	builders := []func() (Effect, error){
		func() (Effect, error) { return NewHeroText(page.Hero, vh) },
		func() (Effect, error) { return NewHeroClip(page.Hero, vh) },
		func() (Effect, error) { return NewVideoZoom(page.About, vh) },
		func() (Effect, error) { return NewAboutFade(page.About, vh) },
		func() (Effect, error) { return NewHeaderScroll(page.Sticky, page.Viewport) },
		func() (Effect, error) { return NewMovingCards(page.Sticky, vh) },
		func() (Effect, error) { return NewReveal(page.Slides), nil },
		func() (Effect, error) { return NewRadioRotation(page.Radio), nil },
		func() (Effect, error) { return NewTilt(page.Tilt, page.Viewport), nil },
	}

	var out []Effect
	for _, b := range builders {
		e, err := b()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// scrub maps trigger progress onto a value range along an easing curve
type scrub struct {
	trigger scroll.Trigger
	from    float64
	to      float64
	ease    ease.TweenFunc
}

func newScrub(name string, box scroll.Box, viewportHeight float64, sc director.Scrub) (scrub, error) {
	tr, err := scroll.NewTrigger(box, viewportHeight, sc.Start, sc.End)
	if err != nil {
		return scrub{}, fmt.Errorf("%s: %w", name, err)
	}
	fn, err := motion.Easing(sc.Ease)
	if err != nil {
		return scrub{}, fmt.Errorf("%s: %w", name, err)
	}
	return scrub{trigger: tr, from: sc.From, to: sc.To, ease: fn}, nil
}

func (s scrub) progress(scrollY float64) float64 {
	return s.trigger.Progress(scrollY)
}

// eased is the progress bent by the easing curve, 0.0 to 1.0
func (s scrub) eased(scrollY float64) float64 {
	return motion.Ease(s.ease, 0, 1, s.progress(scrollY))
}

func (s scrub) value(scrollY float64) float64 {
	return motion.Ease(s.ease, s.from, s.to, s.progress(scrollY))
}
