package renderer

// CardTransform is what the moving-card effect emits for one card.
// X and Y are percentages of the card size, Rotation is in degrees.
type CardTransform struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
	Opacity  float64 `yaml:"opacity"`
}

// TransformSink receives per-card transforms. The interpolation code only
// produces data; whoever implements the sink decides how to show it.
type TransformSink interface {
	ApplyTransform(index int, t CardTransform)
}

// HeroState is the top section: heading offsets and the clip corner
type HeroState struct {
	TitleX     float64 `yaml:"title_x"`
	GamingX    float64 `yaml:"gaming_x"`
	Opacity    float64 `yaml:"opacity"`
	ClipCorner float64 `yaml:"clip_corner"` // bottom-right x, percent of width
}

// AboutState is the zooming video and the fading text
type AboutState struct {
	VideoScale  float64 `yaml:"video_scale"`
	TextOpacity float64 `yaml:"text_opacity"`
	TextY       float64 `yaml:"text_y"`
}

// TiltState is the pointer-driven lean of the tilt card, in degrees
type TiltState struct {
	RotateX float64 `yaml:"rotate_x"`
	RotateY float64 `yaml:"rotate_y"`
}

// Frame is the complete visual state of the page at one moment.
// It is plain data: effects fill it in, a Canvas or a TraceWriter consumes it.
type Frame struct {
	Index         int             `yaml:"index"`
	Time          float64         `yaml:"time"`
	ScrollY       float64         `yaml:"scroll_y"`
	Hero          HeroState       `yaml:"hero"`
	About         AboutState      `yaml:"about"`
	Pinned        bool            `yaml:"pinned"`
	PinProgress   float64         `yaml:"pin_progress"`
	HeaderX       float64         `yaml:"header_x"`
	Cards         []CardTransform `yaml:"cards"`
	Slides        []bool          `yaml:"slides"`
	RadioRotation float64         `yaml:"radio_rotation"`
	Tilt          TiltState       `yaml:"tilt"`
}

// ApplyTransform stores the transform of card index, growing the card list as needed
func (f *Frame) ApplyTransform(index int, t CardTransform) {
	if index < 0 {
		return
	}
	for len(f.Cards) <= index {
		f.Cards = append(f.Cards, CardTransform{})
	}
	f.Cards[index] = t
}
