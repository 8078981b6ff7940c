package engine

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/scrollfx/internal/config"
	"github.com/ivlev/scrollfx/internal/director"
	"github.com/ivlev/scrollfx/internal/renderer"
	"github.com/ivlev/scrollfx/internal/system"
	"github.com/ivlev/scrollfx/internal/video"
)

// FramePool hands out frame buffers to the render workers and takes them back
type FramePool interface {
	Get(rect image.Rectangle) *image.RGBA
	Put(img *image.RGBA)
}

type PreviewProject struct {
	Config   *config.Config
	Scenario *director.Scenario
	Canvas   *renderer.Canvas
	Encoder  video.FrameEncoder
	Pool     FramePool
}

func NewPreviewProject(cfg *config.Config, scenario *director.Scenario, canvas *renderer.Canvas, enc video.FrameEncoder) *PreviewProject {
	return &PreviewProject{
		Config:   cfg,
		Scenario: scenario,
		Canvas:   canvas,
		Encoder:  enc,
		Pool:     system.SharedPool(),
	}
}

type renderResult struct {
	Index int
	Image *image.RGBA
}

// Run computes the timeline, then either dumps it as a trace or renders and encodes it
func (p *PreviewProject) Run(ctx context.Context) error {
	startTime := time.Now()

	frames, err := BuildTimeline(p.Scenario, p.Config.FPS)
	if err != nil {
		return err
	}
	timelineTime := time.Since(startTime)

	fmt.Println("--- [PROJECT: SCROLL PREVIEW] ---")
	fmt.Printf("[*] Страница: %.0fx%.0f, высота %.0fpx | Кадров: %d (%.1fs)\n",
		p.Scenario.Page.Viewport.Width, p.Scenario.Page.Viewport.Height, p.Scenario.Page.Height,
		len(frames), float64(len(frames))/float64(p.Config.FPS))
	fmt.Println("-----------------------------")

	if p.Config.TracePath != "" {
		if err := p.writeTrace(frames); err != nil {
			return fmt.Errorf("ошибка записи трассы: %w", err)
		}
		fmt.Printf("[+++] Трасса сохранена: %s\n", p.Config.TracePath)
		return nil
	}

	renderStart := time.Now()
	if err := p.render(ctx, frames); err != nil {
		return err
	}

	if p.Config.ShowStats {
		printReport(Stats{
			Build:    p.Config.BuildVersion,
			Scenario: p.Config.ScenarioPath,
			Frames:   len(frames),
			Workers:  p.Config.Workers,
			Total:    time.Since(startTime),
			Timeline: timelineTime,
			Render:   time.Since(renderStart),
		})
	}

	return nil
}

func (p *PreviewProject) writeTrace(frames []renderer.Frame) error {
	f, err := os.Create(p.Config.TracePath)
	if err != nil {
		return err
	}
	defer f.Close()

	tw := renderer.NewTraceWriter(f)
	for i := range frames {
		if err := tw.WriteFrame(&frames[i]); err != nil {
			return err
		}
	}
	return tw.Close()
}

// render rasterises frames on a worker pool and feeds them to the encoder in order.
//
// frames -> render workers (parallel, any order) -> reorder -> encoder (sequential)
func (p *PreviewProject) render(ctx context.Context, frames []renderer.Frame) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rect := image.Rect(0, 0, p.Canvas.Width, p.Canvas.Height)

	workers := p.Config.Workers
	if workers <= 0 {
		workers = system.RecommendedWorkers(rect.Dx() * rect.Dy() * 4)
		p.Config.Workers = workers
	}
	if workers > len(frames) {
		workers = len(frames)
	}

	params := config.FrameParams{
		Width:     rect.Dx(),
		Height:    rect.Dy(),
		FPS:       p.Config.FPS,
		Frames:    len(frames),
		Encoder:   p.Config.VideoEncoder,
		Quality:   p.Config.Quality,
		AudioPath: p.Config.AudioPath,
	}
	writer, err := p.Encoder.Start(ctx, params)
	if err != nil {
		return fmt.Errorf("ошибка запуска кодировщика: %w", err)
	}

	pool := p.Pool
	if pool == nil {
		pool = system.SharedPool()
	}

	// abort lets the writer stop the workers before it drains their output
	ctx, abort := context.WithCancelCause(ctx)
	defer abort(nil)

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	results := make(chan renderResult, workers)

	g.Go(func() error {
		defer close(jobs)
		for i := range frames {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var wgRender sync.WaitGroup
	for w := 0; w < workers; w++ {
		wgRender.Add(1)
		g.Go(func() error {
			defer wgRender.Done()
			for i := range jobs {
				img := pool.Get(rect)
				p.Canvas.Draw(img, &frames[i])
				select {
				case results <- renderResult{Index: i, Image: img}:
				case <-gctx.Done():
					pool.Put(img)
					return gctx.Err()
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		wgRender.Wait()
		close(results)
		return nil
	})

	g.Go(func() error {
		// Кадры приходят в произвольном порядке, кодировщику нужен исходный
		pending := make(map[int]*image.RGBA)
		next := 0
		step := len(frames) / 20
		if step == 0 {
			step = 1
		}
		for res := range results {
			pending[res.Index] = res.Image
			for {
				img, ok := pending[next]
				if !ok {
					break
				}
				if err := writer.WriteFrame(img); err != nil {
					err = fmt.Errorf("кадр %d: %w", next, err)
					abort(err)
					for _, img := range pending {
						pool.Put(img)
					}
					for res := range results {
						pool.Put(res.Image)
					}
					return err
				}
				delete(pending, next)
				pool.Put(img)
				next++
				if next%step == 0 || next == len(frames) {
					fmt.Printf("[>] Ready: %d/%d\n", next, len(frames))
				}
			}
		}
		if next != len(frames) {
			return fmt.Errorf("закодировано %d из %d кадров", next, len(frames))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		// Workers stopped by abort report context.Canceled; the writer's error is the real one
		if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
			err = cause
		}
		writer.Close()
		return err
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("ошибка сборки финального видео: %w", err)
	}
	return nil
}
