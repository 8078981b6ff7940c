package video

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/ivlev/scrollfx/internal/config"
)

// PNGSequenceEncoder writes every frame as a numbered PNG file, no ffmpeg needed
type PNGSequenceEncoder struct {
	Dir string
}

func (e *PNGSequenceEncoder) Start(ctx context.Context, params config.FrameParams) (FrameWriter, error) {
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return nil, err
	}
	return &pngWriter{ctx: ctx, dir: e.Dir, enc: &png.Encoder{CompressionLevel: png.BestSpeed}}, nil
}

type pngWriter struct {
	ctx   context.Context
	dir   string
	enc   *png.Encoder
	index int
}

func (w *pngWriter) WriteFrame(img *image.RGBA) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(w.dir, fmt.Sprintf("frame_%05d.png", w.index))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := w.enc.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	w.index++
	return f.Close()
}

func (w *pngWriter) Close() error {
	return nil
}
