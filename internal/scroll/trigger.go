package scroll

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ivlev/scrollfx/internal/motion"
)

// ProgressProvider maps a scroll offset to the progress of one animated region
type ProgressProvider interface {
	Progress(scrollY float64) float64
}

// Box is the vertical extent of a page element in page coordinates
type Box struct {
	Top    float64 `yaml:"top"`
	Height float64 `yaml:"height"`
}

// Anchor is one end of a trigger: "<element edge> <viewport edge>" or "+=<px>".
//
// Edges are "top", "center", "bottom" or a percentage such as "80%".
type Anchor struct {
	Element  float64 // fraction of the element height
	Viewport float64 // fraction of the viewport height
	Offset   float64 // pixels after the start anchor
	Relative bool
}

// ParseAnchor parses the anchor notation used by page scenarios
func ParseAnchor(s string) (Anchor, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "+=") {
		v := strings.TrimSuffix(strings.TrimPrefix(s, "+="), "px")
		px, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Anchor{}, fmt.Errorf("anchor %q: bad offset: %w", s, err)
		}
		return Anchor{Offset: px, Relative: true}, nil
	}

	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Anchor{}, fmt.Errorf("anchor %q: want \"<element> <viewport>\"", s)
	}
	el, err := parseEdge(parts[0])
	if err != nil {
		return Anchor{}, fmt.Errorf("anchor %q: %w", s, err)
	}
	vp, err := parseEdge(parts[1])
	if err != nil {
		return Anchor{}, fmt.Errorf("anchor %q: %w", s, err)
	}
	return Anchor{Element: el, Viewport: vp}, nil
}

func parseEdge(s string) (float64, error) {
	switch s {
	case "top":
		return 0, nil
	case "center":
		return 0.5, nil
	case "bottom":
		return 1, nil
	}
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, fmt.Errorf("bad percentage %q", s)
		}
		return v / 100, nil
	}
	return 0, fmt.Errorf("unknown edge %q", s)
}

// Resolve returns the scroll offset at which the anchor is reached.
// start is used only by relative anchors.
func (a Anchor) Resolve(box Box, viewportHeight, start float64) float64 {
	if a.Relative {
		return start + a.Offset
	}
	return box.Top + a.Element*box.Height - a.Viewport*viewportHeight
}

// Trigger is a scroll range [Start, End] in page offsets
type Trigger struct {
	Start float64
	End   float64
}

// NewTrigger resolves start/end anchors against an element box
func NewTrigger(box Box, viewportHeight float64, start, end string) (Trigger, error) {
	sa, err := ParseAnchor(start)
	if err != nil {
		return Trigger{}, err
	}
	if sa.Relative {
		return Trigger{}, fmt.Errorf("start anchor %q cannot be relative", start)
	}
	ea, err := ParseAnchor(end)
	if err != nil {
		return Trigger{}, err
	}

	t := Trigger{Start: sa.Resolve(box, viewportHeight, 0)}
	t.End = ea.Resolve(box, viewportHeight, t.Start)
	if t.End < t.Start {
		return Trigger{}, fmt.Errorf("trigger %q -> %q ends before it starts (%.0f < %.0f)", start, end, t.End, t.Start)
	}
	return t, nil
}

// Progress returns the clamped progress (0.0 to 1.0) through the trigger range
func (t Trigger) Progress(scrollY float64) float64 {
	span := t.End - t.Start
	if span <= 0 {
		if scrollY >= t.Start {
			return 1
		}
		return 0
	}
	return motion.Clamp((scrollY-t.Start)/span, 0, 1)
}

// Active reports whether scrollY lies inside the range
func (t Trigger) Active(scrollY float64) bool {
	return scrollY >= t.Start && scrollY <= t.End
}
