package effects

import (
	"math"
	"testing"

	"github.com/ivlev/scrollfx/internal/director"
	"github.com/ivlev/scrollfx/internal/renderer"
	"github.com/ivlev/scrollfx/internal/scroll"
)

type recordingSink struct {
	calls map[int]renderer.CardTransform
}

func (r *recordingSink) ApplyTransform(i int, t renderer.CardTransform) {
	if r.calls == nil {
		r.calls = make(map[int]renderer.CardTransform)
	}
	r.calls[i] = t
}

func defaultPage() director.Page {
	return director.NewDirector(1280, 720).GenerateScenario("").Page
}

func TestBuild(t *testing.T) {
	effects, err := Build(defaultPage())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	seen := map[string]bool{}
	for _, e := range effects {
		if seen[e.Name()] {
			t.Errorf("Duplicate effect %s", e.Name())
		}
		seen[e.Name()] = true
	}
	if len(effects) != 9 {
		t.Errorf("Expected 9 effects, got %d", len(effects))
	}
}

func TestMovingCardsStaggeredVisibility(t *testing.T) {
	cards, err := NewMovingCards(defaultPage().Sticky, 720)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		progress float64
		first    float64
		last     float64
	}{
		{0, 0, 0},
		{0.01, 1, 0},
		{0.625, 1, 0},
		{0.63, 1, 1},
		{1, 1, 1},
	}
	for _, tt := range tests {
		sink := &recordingSink{}
		cards.OnProgressUpdate(tt.progress, sink)
		if len(sink.calls) != 6 {
			t.Fatalf("Expected 6 cards updated, got %d", len(sink.calls))
		}
		if sink.calls[0].Opacity != tt.first || sink.calls[5].Opacity != tt.last {
			t.Errorf("progress %.3f: opacity first=%v last=%v, want %v/%v",
				tt.progress, sink.calls[0].Opacity, sink.calls[5].Opacity, tt.first, tt.last)
		}
	}
}

func TestMovingCardsEndpoints(t *testing.T) {
	sticky := defaultPage().Sticky
	cards, err := NewMovingCards(sticky, 720)
	if err != nil {
		t.Fatal(err)
	}

	sink := &recordingSink{}
	cards.OnProgressUpdate(1, sink)
	n := len(sticky.Cards.Tables)
	for i, table := range sticky.Cards.Tables {
		// The last card starts too late to finish its path.
		if p, _ := sticky.Cards.Stagger.ElementProgress(1, i, n); p < 1 {
			continue
		}
		got := sink.calls[i]
		k := table.Len()
		if got.X != sticky.Cards.EndX {
			t.Errorf("card %d: X = %v, want %v", i, got.X, sticky.Cards.EndX)
		}
		if got.Y != table.Positions[k-1] || got.Rotation != table.Rotations[k-1] {
			t.Errorf("card %d: (%v, %v), want last keyframe (%v, %v)",
				i, got.Y, got.Rotation, table.Positions[k-1], table.Rotations[k-1])
		}
	}
}

func TestMovingCardsSaturation(t *testing.T) {
	cards, err := NewMovingCards(defaultPage().Sticky, 720)
	if err != nil {
		t.Fatal(err)
	}

	at := func(p float64) renderer.CardTransform {
		sink := &recordingSink{}
		cards.OnProgressUpdate(p, sink)
		return sink.calls[0]
	}

	ceiling := at(0.5)
	for _, p := range []float64{0.55, 0.7, 0.9, 1} {
		if got := at(p); got != ceiling {
			t.Errorf("card 0 at %.2f = %+v, want %+v", p, got, ceiling)
		}
	}
}

func TestMovingCardsPinning(t *testing.T) {
	page := defaultPage()
	cards, err := NewMovingCards(page.Sticky, page.Viewport.Height)
	if err != nil {
		t.Fatal(err)
	}

	var f renderer.Frame
	mid := page.Sticky.Box.Top + page.Sticky.PinLength(page.Viewport.Height)/2
	cards.Update(scroll.State{ScrollY: mid, Viewport: page.Viewport}, &f)
	if !f.Pinned || math.Abs(f.PinProgress-0.5) > 1e-9 {
		t.Errorf("Expected pinned at 0.5, got pinned=%v progress=%v", f.Pinned, f.PinProgress)
	}

	f = renderer.Frame{}
	cards.Update(scroll.State{ScrollY: 0, Viewport: page.Viewport}, &f)
	if f.Pinned || f.PinProgress != 0 {
		t.Errorf("Expected unpinned at top of page, got pinned=%v progress=%v", f.Pinned, f.PinProgress)
	}
}

func TestNewMovingCardsRejectsBadTable(t *testing.T) {
	sticky := defaultPage().Sticky
	sticky.Cards.Tables = append(sticky.Cards.Tables[:0:0], sticky.Cards.Tables...)
	sticky.Cards.Tables[1].Positions = sticky.Cards.Tables[1].Positions[:1]
	sticky.Cards.Tables[1].Rotations = sticky.Cards.Tables[1].Rotations[:1]

	if _, err := NewMovingCards(sticky, 720); err == nil {
		t.Error("Expected error for single-keyframe table")
	}
}

func TestMovingCardsNoElements(t *testing.T) {
	sticky := defaultPage().Sticky
	sticky.Cards.Tables = nil
	cards, err := NewMovingCards(sticky, 720)
	if err != nil {
		t.Fatal(err)
	}
	sink := &recordingSink{}
	cards.OnProgressUpdate(0.5, sink)
	if len(sink.calls) != 0 {
		t.Errorf("Expected no updates without cards, got %d", len(sink.calls))
	}
}

func TestHeaderScroll(t *testing.T) {
	page := defaultPage()
	h, err := NewHeaderScroll(page.Sticky, page.Viewport)
	if err != nil {
		t.Fatal(err)
	}

	var f renderer.Frame
	h.Update(scroll.State{ScrollY: 0}, &f)
	if f.HeaderX != 0 {
		t.Errorf("HeaderX before trigger = %v, want 0", f.HeaderX)
	}

	h.Update(scroll.State{ScrollY: page.Height}, &f)
	width := renderer.TextWidth(page.Sticky.Header, renderer.HeaderScale(page.Viewport.Height))
	if want := -(width - page.Viewport.Width); math.Abs(f.HeaderX-want) > 1e-9 {
		t.Errorf("HeaderX at the end = %v, want %v", f.HeaderX, want)
	}
}

func TestHeroEffects(t *testing.T) {
	page := defaultPage()
	text, err := NewHeroText(page.Hero, page.Viewport.Height)
	if err != nil {
		t.Fatal(err)
	}
	clip, err := NewHeroClip(page.Hero, page.Viewport.Height)
	if err != nil {
		t.Fatal(err)
	}

	var f renderer.Frame
	// Hero ends ("bottom top") when scrolled by its own height.
	s := scroll.State{ScrollY: page.Hero.Box.Height}
	text.Update(s, &f)
	clip.Update(s, &f)
	if f.Hero.TitleX != 60 || f.Hero.GamingX != -100 || f.Hero.Opacity != 1 {
		t.Errorf("Hero text at end = %+v", f.Hero)
	}
	if f.Hero.ClipCorner != 98 {
		t.Errorf("Clip corner at end = %v, want 98", f.Hero.ClipCorner)
	}

	// Halfway through the scrub power1.out is already three quarters done
	tr, err := scroll.NewTrigger(page.Hero.Box, page.Viewport.Height, page.Hero.TitleShift.Start, page.Hero.TitleShift.End)
	if err != nil {
		t.Fatal(err)
	}
	f = renderer.Frame{}
	text.Update(scroll.State{ScrollY: (tr.Start + tr.End) / 2}, &f)
	tests := []struct {
		name      string
		got, want float64
	}{
		{"title x", f.Hero.TitleX, 45},
		{"gaming x", f.Hero.GamingX, -75},
		{"opacity", f.Hero.Opacity, 0.75},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-4 {
			t.Errorf("%s at trigger midpoint = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	t.Logf("Hero at midpoint: %+v", f.Hero)
}

func TestVideoZoom(t *testing.T) {
	page := defaultPage()
	zoom, err := NewVideoZoom(page.About, page.Viewport.Height)
	if err != nil {
		t.Fatal(err)
	}

	vh := page.Viewport.Height
	box := page.About.Box
	tests := []struct {
		name    string
		scrollY float64
		want    float64
	}{
		{"before", 0, 1},
		{"zoomed in", box.Top - 0.3*vh, 1.5},
		{"left", box.Top + box.Height, 1},
	}
	for _, tt := range tests {
		var f renderer.Frame
		zoom.Update(scroll.State{ScrollY: tt.scrollY}, &f)
		if math.Abs(f.About.VideoScale-tt.want) > 1e-4 {
			t.Errorf("%s: scale = %v, want %v", tt.name, f.About.VideoScale, tt.want)
		}
	}
}

func TestAboutFadePlaysAndReverses(t *testing.T) {
	page := defaultPage()
	fade, err := NewAboutFade(page.About, page.Viewport.Height)
	if err != nil {
		t.Fatal(err)
	}

	const dt = 0.1
	step := func(scrollY float64) renderer.Frame {
		var f renderer.Frame
		fade.Update(scroll.State{ScrollY: scrollY, Dt: dt}, &f)
		return f
	}

	f := step(0)
	if f.About.TextOpacity != 0 || f.About.TextY != 50 {
		t.Errorf("Before trigger: %+v, want hidden and offset", f.About)
	}

	below := page.About.Box.Top + page.About.Box.Height
	for i := 0; i < 20; i++ {
		f = step(below)
	}
	if math.Abs(f.About.TextOpacity-1) > 1e-6 || math.Abs(f.About.TextY) > 1e-4 {
		t.Errorf("After playing: %+v, want fully shown", f.About)
	}

	// Scrolling down further does not replay it.
	f = step(below + 100)
	if math.Abs(f.About.TextOpacity-1) > 1e-6 {
		t.Errorf("Should stay shown, got %+v", f.About)
	}

	f = step(0)
	if f.About.TextOpacity >= 1 || f.About.TextOpacity <= 0 {
		t.Errorf("Reverse should start, got opacity %v", f.About.TextOpacity)
	}
	for i := 0; i < 20; i++ {
		f = step(0)
	}
	if f.About.TextOpacity > 1e-6 {
		t.Errorf("After reversing: opacity %v, want 0", f.About.TextOpacity)
	}
}

func TestRevealLatches(t *testing.T) {
	slides := director.Slides{
		Boxes:     []scroll.Box{{Top: 1000, Height: 400}, {Top: 2000, Height: 400}},
		Threshold: 0.3,
	}
	r := NewReveal(slides)
	vp := scroll.Viewport{Width: 1280, Height: 720}

	var f renderer.Frame
	// Slide 0 visible by 100px = 0.25
	r.Update(scroll.State{ScrollY: 380, Viewport: vp}, &f)
	if f.Slides[0] {
		t.Error("Slide 0 should not be shown at 25% visibility")
	}

	// 0.3 visible
	r.Update(scroll.State{ScrollY: 400, Viewport: vp}, &f)
	if !f.Slides[0] || f.Slides[1] {
		t.Errorf("Expected only slide 0 shown, got %v", f.Slides)
	}

	// Scroll back to the top: stays shown.
	f = renderer.Frame{}
	r.Update(scroll.State{ScrollY: 0, Viewport: vp}, &f)
	if !f.Slides[0] {
		t.Error("Slide 0 should stay shown after scrolling away")
	}
}

func TestRevealZeroThreshold(t *testing.T) {
	slides := director.Slides{
		Boxes:     []scroll.Box{{Top: 5000, Height: 500}, {Top: 600, Height: 400}},
		Threshold: 0,
	}
	r := NewReveal(slides)
	vp := scroll.Viewport{Width: 1280, Height: 720}

	var f renderer.Frame
	r.Update(scroll.State{ScrollY: 0, Viewport: vp}, &f)
	if f.Slides[0] {
		t.Error("Off-screen slide must not be shown")
	}
	if !f.Slides[1] {
		t.Error("Slide touching the viewport should be shown with a zero threshold")
	}

	// The first pixel on screen is enough
	r.Update(scroll.State{ScrollY: 5000 - 720 + 1, Viewport: vp}, &f)
	if !f.Slides[0] {
		t.Error("Slide 0 should be shown once it enters the viewport")
	}
}

func TestRadioRotation(t *testing.T) {
	r := NewRadioRotation(director.Radio{Speed: 0.2})
	var f renderer.Frame
	r.Update(scroll.State{ScrollY: 900}, &f)
	if f.RadioRotation != 180 {
		t.Errorf("RadioRotation = %v, want 180", f.RadioRotation)
	}
}

func TestTilt(t *testing.T) {
	vp := scroll.Viewport{Width: 1000, Height: 800}
	card := director.Tilt{Box: scroll.Box{Top: 100, Height: 600}, Width: 1000, Factor: 50, MaxAngle: 25}
	tilt := NewTilt(card, vp)

	tests := []struct {
		name    string
		pointer scroll.Pointer
		want    renderer.TiltState
	}{
		{"centre", scroll.Pointer{X: 500, Y: 400, Present: true}, renderer.TiltState{}},
		{"left", scroll.Pointer{X: 300, Y: 400, Present: true}, renderer.TiltState{RotateY: 10}},
		{"top edge", scroll.Pointer{X: 500, Y: 100, Present: true}, renderer.TiltState{RotateX: -18.75}},
		{"clamped", scroll.Pointer{X: 0, Y: 400, Present: true}, renderer.TiltState{RotateY: 25}},
		{"outside", scroll.Pointer{X: 300, Y: 750, Present: true}, renderer.TiltState{}},
		{"absent", scroll.Pointer{}, renderer.TiltState{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f renderer.Frame
			tilt.Update(scroll.State{Pointer: tt.pointer}, &f)
			if math.Abs(f.Tilt.RotateX-tt.want.RotateX) > 1e-9 || math.Abs(f.Tilt.RotateY-tt.want.RotateY) > 1e-9 {
				t.Errorf("Tilt = %+v, want %+v", f.Tilt, tt.want)
			}
		})
	}
}
