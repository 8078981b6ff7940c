package effects

import (
	"fmt"

	"github.com/ivlev/scrollfx/internal/director"
	"github.com/ivlev/scrollfx/internal/motion"
	"github.com/ivlev/scrollfx/internal/renderer"
	"github.com/ivlev/scrollfx/internal/scroll"
)

// MovingCards pins the sticky section and walks every card along its keyframe table
type MovingCards struct {
	pin   scroll.Trigger
	cards director.Cards
}

// NewMovingCards pins the section from "top top" for its pin length
func NewMovingCards(s director.Sticky, viewportHeight float64) (*MovingCards, error) {
	for i, table := range s.Cards.Tables {
		if err := table.Validate(); err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
	}
	pin := scroll.Trigger{Start: s.Box.Top, End: s.Box.Top + s.PinLength(viewportHeight)}
	return &MovingCards{pin: pin, cards: s.Cards}, nil
}

func (m *MovingCards) Name() string { return "moving-cards" }

func (m *MovingCards) Update(s scroll.State, f *renderer.Frame) {
	progress := m.pin.Progress(s.ScrollY)
	f.Pinned = m.pin.Active(s.ScrollY)
	f.PinProgress = progress
	m.OnProgressUpdate(progress, f)
}

// OnProgressUpdate computes every card for one global progress value (0.0 to 1.0)
// and hands the results to sink. Cards whose window has not started are hidden.
func (m *MovingCards) OnProgressUpdate(progress float64, sink renderer.TransformSink) {
	n := len(m.cards.Tables)
	for i, table := range m.cards.Tables {
		p, started := m.cards.Stagger.ElementProgress(progress, i, n)
		if !started {
			sink.ApplyTransform(i, renderer.CardTransform{Opacity: 0})
			continue
		}

		t := motion.Interpolate(table, p)
		sink.ApplyTransform(i, renderer.CardTransform{
			X:        motion.Lerp(m.cards.StartX, m.cards.EndX, p),
			Y:        t.Position,
			Rotation: t.Rotation,
			Opacity:  1,
		})
	}
}
