package config

type Config struct {
	ScenarioPath string
	OutputVideo  string
	TracePath    string
	PNGDir       string
	CardsPath    string
	Width        int
	Height       int
	FPS          int
	Workers      int
	DPI          int
	AudioPath    string
	Preset       string
	VideoEncoder string
	Quality      int
	ShowStats    bool
	BuildVersion string
}

// FrameParams describes the frame stream handed to an encoder
type FrameParams struct {
	Width, Height int
	FPS           int
	Frames        int
	Encoder       string
	Quality       int
	AudioPath     string
}

// Duration is the length of the stream in seconds
func (p FrameParams) Duration() float64 {
	if p.FPS <= 0 {
		return 0
	}
	return float64(p.Frames) / float64(p.FPS)
}
