package director

import (
	"errors"
	"fmt"

	"github.com/ivlev/scrollfx/internal/motion"
	"github.com/ivlev/scrollfx/internal/scroll"
)

// Validate checks a scenario before any frame is computed, so that bad
// configuration fails at load time with a readable message.
func (s *Scenario) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if s.Version == "" {
		add("version is missing")
	}

	p := s.Page
	if p.Viewport.Width <= 0 || p.Viewport.Height <= 0 {
		add("viewport must be positive, got %.0fx%.0f", p.Viewport.Width, p.Viewport.Height)
	}
	if p.Height < p.Viewport.Height {
		add("page height %.0f is smaller than the viewport", p.Height)
	}

	vh := p.Viewport.Height
	// Resolve triggers the way the effects will, so ranges that end before
	// they start are caught here and not halfway through a run.
	checkScrub := func(name string, box scroll.Box, sc Scrub) {
		if _, err := scroll.NewTrigger(box, vh, sc.Start, sc.End); err != nil {
			add("%s: %v", name, err)
		}
		if _, err := motion.Easing(sc.Ease); err != nil {
			add("%s: %v", name, err)
		}
	}
	checkScrub("hero.title_shift", p.Hero.Box, p.Hero.TitleShift)
	checkScrub("hero.gaming_shift", p.Hero.Box, p.Hero.GamingShift)
	checkScrub("hero.clip", p.Hero.Box, p.Hero.Clip)
	checkScrub("about.zoom_in", p.About.Box, p.About.ZoomIn)
	checkScrub("about.zoom_out", p.About.Box, p.About.ZoomOut)

	checkStart := func(name, anchor string) {
		a, err := scroll.ParseAnchor(anchor)
		switch {
		case err != nil:
			add("%s: %v", name, err)
		case a.Relative:
			add("%s: start anchor %q cannot be relative", name, anchor)
		}
	}
	checkStart("about.text_fade", p.About.TextFade.Start)
	if p.About.TextFade.Duration <= 0 {
		add("about.text_fade: duration must be positive")
	}
	if _, err := motion.Easing(p.About.TextFade.Ease); err != nil {
		add("about.text_fade: %v", err)
	}

	if p.Sticky.PinViewports <= 0 {
		add("sticky.pin_viewports must be positive")
	}
	checkStart("sticky.header_start", p.Sticky.HeaderStart)
	cards := p.Sticky.Cards
	if cards.Stagger.Acceleration <= 0 {
		add("sticky.cards.stagger.acceleration must be positive")
	}
	if cards.Stagger.Budget < 0 || cards.Stagger.Budget >= 1 {
		add("sticky.cards.stagger.budget must be in [0, 1), got %v", cards.Stagger.Budget)
	}
	for i, table := range cards.Tables {
		if err := table.Validate(); err != nil {
			add("sticky.cards.tables[%d]: %v", i, err)
		}
	}

	if p.Slides.Threshold < 0 || p.Slides.Threshold > 1 {
		add("slides.threshold must be in [0, 1], got %v", p.Slides.Threshold)
	}
	if p.Tilt.MaxAngle < 0 {
		add("tilt.max_angle must not be negative")
	}

	if _, err := scroll.NewScript(s.Session.Moves); err != nil {
		add("session: %v", err)
	}
	for i := 1; i < len(s.Session.Pointer); i++ {
		if s.Session.Pointer[i].Time <= s.Session.Pointer[i-1].Time {
			add("session.pointer[%d]: keys must be in increasing time order", i)
		}
	}
	if s.Session.Smoothing.Frequency < 0 || s.Session.Smoothing.Damping < 0 {
		add("session.smoothing must not be negative")
	}

	return errors.Join(errs...)
}
