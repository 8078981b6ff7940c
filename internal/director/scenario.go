package director

import (
	"github.com/ivlev/scrollfx/internal/motion"
	"github.com/ivlev/scrollfx/internal/scroll"
)

// Scenario is a complete animated page plus the scroll session replayed over it
type Scenario struct {
	Version string  `yaml:"version"`
	Page    Page    `yaml:"page"`
	Session Session `yaml:"session"`
}

// Page describes the layout of every animated section in page coordinates.
// Section boxes already include the spacing added by the pinned section.
type Page struct {
	URL      string          `yaml:"url,omitempty"`
	Viewport scroll.Viewport `yaml:"viewport"`
	Height   float64         `yaml:"height"`
	Hero     Hero            `yaml:"hero"`
	About    About           `yaml:"about"`
	Sticky   Sticky          `yaml:"sticky"`
	Slides   Slides          `yaml:"slides"`
	Radio    Radio           `yaml:"radio"`
	Tilt     Tilt            `yaml:"tilt"`
}

// Scrub is a property driven directly by scroll progress through a trigger
type Scrub struct {
	Start string  `yaml:"start"`
	End   string  `yaml:"end"`
	From  float64 `yaml:"from"`
	To    float64 `yaml:"to"`
	Ease  string  `yaml:"ease,omitempty"`
}

// Hero is the top section: two headings sliding sideways and a clip-path cut
type Hero struct {
	Box         scroll.Box `yaml:"box"`
	Title       string     `yaml:"title"`
	Subtitle    string     `yaml:"subtitle"`
	TitleShift  Scrub      `yaml:"title_shift"`
	GamingShift Scrub      `yaml:"gaming_shift"`
	Clip        Scrub      `yaml:"clip"` // bottom-right corner x, percent of width
}

// About holds the zooming video and the fading text block
type About struct {
	Box      scroll.Box `yaml:"box"`
	Video    scroll.Box `yaml:"video"`
	Text     string     `yaml:"text"`
	ZoomIn   Scrub      `yaml:"zoom_in"`
	ZoomOut  Scrub      `yaml:"zoom_out"`
	TextFade Fade       `yaml:"text_fade"`
}

// Fade is a time-based tween played when the trigger is passed downwards
// and reversed when it is passed upwards.
type Fade struct {
	Start    string  `yaml:"start"`
	Duration float64 `yaml:"duration"`
	Ease     string  `yaml:"ease,omitempty"`
	OffsetY  float64 `yaml:"offset_y"`
}

// Sticky is the pinned section with the scrolling header and the moving cards
type Sticky struct {
	Box          scroll.Box `yaml:"box"`
	PinViewports float64    `yaml:"pin_viewports"`
	Header       string     `yaml:"header"`
	HeaderStart  string     `yaml:"header_start"`
	Cards        Cards      `yaml:"cards"`
}

// PinLength is the scroll distance the section stays pinned for
func (s Sticky) PinLength(viewportHeight float64) float64 {
	return s.PinViewports * viewportHeight
}

// Cards configures the moving-card effect
type Cards struct {
	Width   float64                `yaml:"width"`
	Height  float64                `yaml:"height"`
	StartX  float64                `yaml:"start_x"` // xPercent
	EndX    float64                `yaml:"end_x"`   // xPercent
	Stagger motion.Stagger         `yaml:"stagger"`
	Tables  []motion.KeyframeTable `yaml:"tables"`
}

// Slides are containers revealed once enough of them is on screen
type Slides struct {
	Boxes     []scroll.Box `yaml:"boxes"`
	Threshold float64      `yaml:"threshold"`
}

// Radio is the icon rotating with the scroll offset
type Radio struct {
	Box   scroll.Box `yaml:"box"`
	Speed float64    `yaml:"speed"` // degrees per scrolled pixel
}

// Tilt is the card that leans towards the pointer
type Tilt struct {
	Box      scroll.Box `yaml:"box"`
	Width    float64    `yaml:"width"`
	Factor   float64    `yaml:"factor"`
	MaxAngle float64    `yaml:"max_angle"`
}

// Session is the scripted user input replayed over the page
type Session struct {
	Moves     []scroll.Move      `yaml:"moves"`
	Pointer   scroll.PointerPath `yaml:"pointer,omitempty"`
	Smoothing Smoothing          `yaml:"smoothing"`
}

// Smoothing configures the scroll spring; Frequency 0 turns it off
type Smoothing struct {
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
}
