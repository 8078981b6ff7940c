package scroll

// Viewport is the visible window size in pixels
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Pointer is the mouse position in viewport coordinates
type Pointer struct {
	X, Y    float64
	Present bool
}

// State is everything an effect sees for one frame
type State struct {
	Frame    int
	Time     float64 // seconds since the session start
	Dt       float64 // seconds since the previous frame
	ScrollY  float64 // smoothed scroll offset
	Viewport Viewport
	Pointer  Pointer
}
