package director

import (
	"github.com/ivlev/scrollfx/internal/motion"
	"github.com/ivlev/scrollfx/internal/scroll"
)

// CardTables are the six card paths of the landing page
var CardTables = []motion.KeyframeTable{
	{Positions: []float64{10, 50, -10, 10, -30}, Rotations: []float64{20, -10, -45, 20, 60}},
	{Positions: []float64{0, 47.5, -10, 15, 40}, Rotations: []float64{-25, 15, -45, 30, -60}},
	{Positions: []float64{0, 52.5, -10, 5, -50}, Rotations: []float64{15, -5, -40, 60, 30}},
	{Positions: []float64{0, 50, 30, -80, 10}, Rotations: []float64{20, -10, 60, 5, -20}},
	{Positions: []float64{0, 55, -15, 30, -10}, Rotations: []float64{25, -15, 60, 95, 50}},
	{Positions: []float64{0, 60, -20, 50, 0}, Rotations: []float64{30, -20, 75, 120, -40}},
}

// Director lays out the landing page for a viewport and scripts a session over it
type Director struct {
	ViewportWidth  int
	ViewportHeight int
	PinViewports   float64 // pinned section length in viewport heights
	ScrollSpeed    float64 // pixels per second of the scripted scroll
}

// NewDirector creates a new Director with default settings
func NewDirector(viewportWidth, viewportHeight int) *Director {
	return &Director{
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
		PinViewports:   8,
		ScrollSpeed:    400,
	}
}

// GenerateScenario builds the default page top to bottom and a session that
// scrolls to the end, plays with the tilt card and scrolls back up.
func (d *Director) GenerateScenario(url string) *Scenario {
	vw, vh := float64(d.ViewportWidth), float64(d.ViewportHeight)
	page := Page{
		URL:      url,
		Viewport: scroll.Viewport{Width: vw, Height: vh},
	}

	y := 0.0
	next := func(h float64) scroll.Box {
		b := scroll.Box{Top: y, Height: h}
		y += h
		return b
	}

	page.Hero = Hero{
		Box:         next(vh),
		Title:       "BLOOM",
		Subtitle:    "GAMING",
		TitleShift:  Scrub{Start: "top 80%", End: "bottom top", From: 0, To: 60, Ease: "power1.out"},
		GamingShift: Scrub{Start: "top 80%", End: "bottom top", From: 0, To: -100, Ease: "power1.out"},
		Clip:        Scrub{Start: "top center", End: "bottom top", From: 100, To: 98, Ease: "power1.out"},
	}

	about := next(vh * 1.25)
	page.About = About{
		Box:      about,
		Video:    scroll.Box{Top: about.Top + vh*0.1, Height: vh * 0.6},
		Text:     "Play beyond the screen",
		ZoomIn:   Scrub{Start: "top 75%", End: "top 30%", From: 1, To: 1.5, Ease: "power2.out"},
		ZoomOut:  Scrub{Start: "center center", End: "bottom top", From: 1.5, To: 1, Ease: "power2.out"},
		TextFade: Fade{Start: "top 60%", Duration: 1.5, Ease: "power2.out", OffsetY: 50},
	}

	sticky := Sticky{
		Box:          next(vh),
		PinViewports: d.PinViewports,
		Header:       "MOVE WITH THE WORLD  •  MOVE WITH THE WORLD",
		HeaderStart:  "top bottom",
		Cards: Cards{
			Width:   vh * 0.3,
			Height:  vh * 0.42,
			StartX:  25,
			EndX:    -650,
			Stagger: motion.DefaultStagger,
			Tables:  CardTables,
		},
	}
	page.Sticky = sticky
	// Pin spacing pushes everything below the pinned section down.
	y += sticky.PinLength(vh)

	page.Slides = Slides{Threshold: 0.3}
	for i := 0; i < 3; i++ {
		page.Slides.Boxes = append(page.Slides.Boxes, next(vh*0.7))
	}

	page.Radio = Radio{Box: next(vh * 0.5), Speed: 0.2}
	page.Tilt = Tilt{Box: next(vh * 0.6), Width: vw * 0.35, Factor: 50, MaxAngle: 25}
	page.Height = y

	maxScroll := page.Height - vh
	if maxScroll < 0 {
		maxScroll = 0
	}

	tiltTop := page.Tilt.Box.Top - maxScroll
	tiltMid := tiltTop + page.Tilt.Box.Height/2
	down := d.calculateScrollTime(maxScroll)

	session := Session{
		Moves: []scroll.Move{
			{Hold: 0.5},
			{To: maxScroll, Duration: down, Ease: "power1.inout"},
			{Hold: 2.5},
			{To: 0, Duration: down / 3, Ease: "power2.inout"},
			{Hold: 0.5},
		},
		Pointer: scroll.PointerPath{
			{Time: 0.5 + down + 0.2, X: vw * 0.2, Y: tiltMid},
			{Time: 0.5 + down + 1.2, X: vw * 0.8, Y: tiltTop + 10},
			{Time: 0.5 + down + 2.2, X: vw * 0.5, Y: tiltMid + 40},
		},
		Smoothing: Smoothing{Frequency: 6, Damping: 1},
	}

	return &Scenario{
		Version: "1.0",
		Page:    page,
		Session: session,
	}
}

// calculateScrollTime determines how long the scripted scroll to the bottom takes
func (d *Director) calculateScrollTime(distance float64) float64 {
	speed := d.ScrollSpeed
	if speed <= 0 {
		speed = 400
	}
	t := distance / speed
	if t < 1 {
		t = 1
	}
	return t
}
