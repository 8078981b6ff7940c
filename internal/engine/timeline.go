package engine

import (
	"fmt"

	"github.com/ivlev/scrollfx/internal/director"
	"github.com/ivlev/scrollfx/internal/effects"
	"github.com/ivlev/scrollfx/internal/renderer"
	"github.com/ivlev/scrollfx/internal/scroll"
)

// BuildTimeline replays the scenario session at fps and returns the page state
// of every frame. It runs sequentially: the smoother and some effects carry
// state from one frame to the next.
func BuildTimeline(scenario *director.Scenario, fps int) ([]renderer.Frame, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", fps)
	}

	script, err := scroll.NewScript(scenario.Session.Moves)
	if err != nil {
		return nil, fmt.Errorf("сценарий прокрутки: %w", err)
	}

	fx, err := effects.Build(scenario.Page)
	if err != nil {
		return nil, fmt.Errorf("эффекты страницы: %w", err)
	}

	page := scenario.Page
	maxScroll := page.Height - page.Viewport.Height
	if maxScroll < 0 {
		maxScroll = 0
	}

	sm := scenario.Session.Smoothing
	positions := scroll.Smooth(script.Positions(fps), fps, sm.Frequency, sm.Damping)

	dt := 1 / float64(fps)
	frames := make([]renderer.Frame, len(positions))
	for i, y := range positions {
		if y > maxScroll {
			y = maxScroll
		}
		t := float64(i) * dt
		state := scroll.State{
			Frame:    i,
			Time:     t,
			ScrollY:  y,
			Viewport: page.Viewport,
			Pointer:  scenario.Session.Pointer.At(t),
		}
		if i > 0 {
			state.Dt = dt
		}

		f := &frames[i]
		f.Index, f.Time, f.ScrollY = i, t, y
		for _, e := range fx {
			e.Update(state, f)
		}
	}

	return frames, nil
}
