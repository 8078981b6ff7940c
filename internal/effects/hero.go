package effects

import (
	"github.com/ivlev/scrollfx/internal/director"
	"github.com/ivlev/scrollfx/internal/renderer"
	"github.com/ivlev/scrollfx/internal/scroll"
)

// HeroText pushes the title right and the gaming line left while fading them in
type HeroText struct {
	title  scrub
	gaming scrub
}

func NewHeroText(h director.Hero, viewportHeight float64) (*HeroText, error) {
	title, err := newScrub("hero title", h.Box, viewportHeight, h.TitleShift)
	if err != nil {
		return nil, err
	}
	gaming, err := newScrub("hero gaming", h.Box, viewportHeight, h.GamingShift)
	if err != nil {
		return nil, err
	}
	return &HeroText{title: title, gaming: gaming}, nil
}

func (h *HeroText) Name() string { return "hero-text" }

func (h *HeroText) Update(s scroll.State, f *renderer.Frame) {
	f.Hero.TitleX = h.title.value(s.ScrollY)
	f.Hero.GamingX = h.gaming.value(s.ScrollY)
	f.Hero.Opacity = h.title.eased(s.ScrollY)
}

// HeroClip cuts the bottom-right corner of the hero section inwards
type HeroClip struct {
	clip scrub
}

func NewHeroClip(h director.Hero, viewportHeight float64) (*HeroClip, error) {
	clip, err := newScrub("hero clip", h.Box, viewportHeight, h.Clip)
	if err != nil {
		return nil, err
	}
	return &HeroClip{clip: clip}, nil
}

func (h *HeroClip) Name() string { return "hero-clip" }

func (h *HeroClip) Update(s scroll.State, f *renderer.Frame) {
	f.Hero.ClipCorner = h.clip.value(s.ScrollY)
}
