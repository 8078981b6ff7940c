package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os/exec"

	"github.com/ivlev/scrollfx/internal/config"
)

// FrameEncoder turns a stream of rendered frames into an output
type FrameEncoder interface {
	Start(ctx context.Context, params config.FrameParams) (FrameWriter, error)
}

// FrameWriter accepts frames in order. Close finalises the output.
type FrameWriter interface {
	WriteFrame(img *image.RGBA) error
	Close() error
}

// FFmpegEncoder pipes raw RGBA frames into an ffmpeg process
type FFmpegEncoder struct {
	OutputPath string
}

func (e *FFmpegEncoder) Start(ctx context.Context, params config.FrameParams) (FrameWriter, error) {
	args := e.buildFFmpegArgs(params)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe error: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("ffmpeg start error: %w", err)
	}

	return &ffmpegWriter{
		cmd:    cmd,
		stdin:  stdin,
		log:    &out,
		width:  params.Width,
		height: params.Height,
	}, nil
}

func (e *FFmpegEncoder) buildFFmpegArgs(params config.FrameParams) []string {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", params.Width, params.Height),
		"-framerate", fmt.Sprintf("%d", params.FPS),
		"-i", "-",
	}

	if params.AudioPath != "" {
		// The session length decides; longer audio is cut, shorter audio ends in silence
		args = append(args, "-i", params.AudioPath, "-map", "0:v", "-map", "1:a",
			"-t", fmt.Sprintf("%.3f", params.Duration()))
	}

	args = append(args,
		"-pix_fmt", "yuv420p",
		"-c:v", params.Encoder,
	)
	args = append(args, qualityArgs(params.Encoder, params.Quality)...)
	args = append(args, e.OutputPath)
	return args
}

// qualityArgs maps the quality setting onto the encoder's own knob
func qualityArgs(encoder string, quality int) []string {
	switch encoder {
	case "h264_videotoolbox":
		// VideoToolbox часто не поддерживает -q:v напрямую на всех версиях. Используем битрейт.
		bitrate := quality * 100 // кбит/с. 75 -> 7.5Мбит/с
		return []string{"-b:v", fmt.Sprintf("%dk", bitrate)}
	case "h264_nvenc":
		return []string{"-cq", fmt.Sprintf("%d", quality)}
	default: // libx264
		return []string{"-crf", fmt.Sprintf("%d", quality), "-preset", "medium"}
	}
}

type ffmpegWriter struct {
	cmd           *exec.Cmd
	stdin         io.WriteCloser
	log           *bytes.Buffer
	width, height int
}

func (w *ffmpegWriter) WriteFrame(img *image.RGBA) error {
	if img.Rect.Dx() != w.width || img.Rect.Dy() != w.height {
		return fmt.Errorf("frame is %dx%d, stream is %dx%d", img.Rect.Dx(), img.Rect.Dy(), w.width, w.height)
	}
	if err := writeRawRGBA(w.stdin, img); err != nil {
		return fmt.Errorf("write raw error: %w", err)
	}
	return nil
}

func (w *ffmpegWriter) Close() error {
	w.stdin.Close()
	if err := w.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg wait error: %w\nLog: %s", err, w.log.String())
	}
	return nil
}

// writeRawRGBA writes pixel rows without the stride padding ffmpeg does not expect
func writeRawRGBA(w io.Writer, img *image.RGBA) error {
	rowLen := img.Rect.Dx() * 4
	if img.Stride == rowLen {
		_, err := w.Write(img.Pix[:rowLen*img.Rect.Dy()])
		return err
	}
	for y := 0; y < img.Rect.Dy(); y++ {
		start := y * img.Stride
		if _, err := w.Write(img.Pix[start : start+rowLen]); err != nil {
			return err
		}
	}
	return nil
}
