package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/ivlev/scrollfx/internal/config"
	"github.com/ivlev/scrollfx/internal/director"
	"github.com/ivlev/scrollfx/internal/engine"
	"github.com/ivlev/scrollfx/internal/renderer"
	"github.com/ivlev/scrollfx/internal/source"
	"github.com/ivlev/scrollfx/internal/system"
	"github.com/ivlev/scrollfx/internal/video"
)

var buildVersion = "dev"

func main() {
	// Увеличиваем лимиты системы (для macOS/Linux)
	system.InitResourceLimits()

	// Создаем нужные директории, если их нет
	dirs := []string{"input/cards", "input/audio", "output", director.ScenariosDir}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	scenarioPtr := flag.String("scenario", "", "Путь к YAML сценарию (по умолчанию: самый свежий в scenarios/)")
	generatePtr := flag.Bool("generate-scenario", false, "Сгенерировать сценарий по умолчанию и выйти")
	urlPtr := flag.String("url", "https://bloom.example", "Адрес страницы для QR-бейджа (только с -generate-scenario)")
	outputPtr := flag.String("output", "", "Путь к видео (если пусто, генерируется автоматически в output/)")
	tracePtr := flag.String("trace", "", "Записать покадровые трансформации в YAML вместо видео")
	widthPtr := flag.Int("width", 1280, "Ширина")
	heightPtr := flag.Int("height", 720, "Высота")
	fpsPtr := flag.Int("fps", 30, "FPS")
	workersPtr := flag.Int("workers", 0, "Потоки (0 - по ресурсам системы)")
	cardsPtr := flag.String("cards", "", "PDF или папка с изображениями для карточек (по умолчанию: самый свежий PDF в input/cards/)")
	dpiPtr := flag.Int("dpi", 150, "DPI для страниц PDF")
	audioPtr := flag.String("audio", "", "Путь к аудио (по умолчанию: самый свежий файл в input/audio/)")
	qualityPtr := flag.Int("quality", 0, "Качество видео (0 - авто, x264: CRF 1-51, VideoToolbox: битрейт = Q*100кбит/с)")
	pngDirPtr := flag.String("png-dir", "", "Сохранять кадры как PNG в папку вместо видео")
	statsPtr := flag.Bool("stats", false, "Показать отчет о производительности")
	presetPtr := flag.String("preset", "", "Пресет формата: 16:9, 9:16 (Shorts/TikTok), 4:5 (Instagram)")

	flag.Parse()

	width, height := *widthPtr, *heightPtr
	switch *presetPtr {
	case "16:9":
		width, height = 1280, 720
	case "9:16":
		width, height = 720, 1280
	case "4:5":
		width, height = 1080, 1350
	case "":
	default:
		log.Fatalf("[-] Неизвестный пресет: %s", *presetPtr)
	}

	if *generatePtr {
		d := director.NewDirector(width, height)
		scenario := d.GenerateScenario(*urlPtr)
		path := *scenarioPtr
		if path == "" {
			path = director.GenerateScenarioPath(director.ScenariosDir)
		}
		if err := director.WriteScenario(scenario, path); err != nil {
			log.Fatalf("[-] Ошибка записи сценария: %v", err)
		}
		fmt.Printf("[+++] Сценарий создан: %s\n", path)
		return
	}

	scenarioPath := *scenarioPtr
	if scenarioPath == "" {
		latest, err := director.FindLatestScenario(director.ScenariosDir)
		if err != nil {
			log.Fatalf("[-] Ошибка: %v. Запустите с -generate-scenario", err)
		}
		scenarioPath = latest
		fmt.Printf("[*] Выбран сценарий: %s\n", scenarioPath)
	}

	scenario, err := director.ReadScenario(scenarioPath)
	if err != nil {
		log.Fatalf("[-] Ошибка загрузки сценария: %v", err)
	}

	cfg := &config.Config{
		ScenarioPath: scenarioPath,
		TracePath:    *tracePtr,
		PNGDir:       *pngDirPtr,
		Width:        width,
		Height:       height,
		FPS:          *fpsPtr,
		Workers:      *workersPtr,
		DPI:          *dpiPtr,
		Preset:       *presetPtr,
		Quality:      *qualityPtr,
		ShowStats:    *statsPtr,
		BuildVersion: buildVersion,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TracePath != "" {
		project := engine.NewPreviewProject(cfg, scenario, nil, nil)
		if err := project.Run(ctx); err != nil {
			log.Fatalf("[-] Ошибка проекта: %v", err)
		}
		return
	}

	cfg.CardsPath = *cardsPtr
	if cfg.CardsPath == "" {
		if latest, err := system.FindLatest("input/cards", ".pdf"); err == nil {
			cfg.CardsPath = latest
			fmt.Printf("[*] Карточки из: %s\n", cfg.CardsPath)
		}
	}
	artwork := loadCards(cfg.CardsPath, len(scenario.Page.Sticky.Cards.Tables), cfg.DPI)

	canvas := renderer.NewCanvas(scenario.Page, cfg.Width, cfg.Height, artwork)
	if err := canvas.SetBadge(scenario.Page.URL); err != nil {
		log.Printf("[!] Не удалось создать QR-бейдж: %v", err)
	}

	var enc video.FrameEncoder
	if cfg.PNGDir != "" {
		enc = &video.PNGSequenceEncoder{Dir: cfg.PNGDir}
		cfg.OutputVideo = cfg.PNGDir
	} else {
		cfg.AudioPath = *audioPtr
		if cfg.AudioPath == "" {
			if latest, err := system.FindLatestAudio("input/audio"); err == nil {
				cfg.AudioPath = latest
				fmt.Printf("[*] Выбрано аудио: %s\n", cfg.AudioPath)
			}
		}
		if cfg.AudioPath != "" {
			if audioDur, err := system.GetAudioDuration(cfg.AudioPath); err == nil {
				fmt.Printf("[*] Длительность аудио: %.2fs\n", audioDur)
			} else {
				log.Printf("[!] Не удалось получить длительность аудио: %v", err)
			}
		}

		cfg.OutputVideo = *outputPtr
		if cfg.OutputVideo == "" {
			cfg.OutputVideo = outputName(scenarioPath)
		}

		cfg.VideoEncoder = system.GetBestH264Encoder()
		if cfg.VideoEncoder != "libx264" {
			fmt.Printf("[*] Обнаружено аппаратное ускорение: %s\n", cfg.VideoEncoder)
		}
		if cfg.Quality == 0 {
			cfg.Quality = system.DefaultQuality(cfg.VideoEncoder)
		}
		enc = &video.FFmpegEncoder{OutputPath: cfg.OutputVideo}
	}

	project := engine.NewPreviewProject(cfg, scenario, canvas, enc)
	if err := project.Run(ctx); err != nil {
		log.Fatalf("[-] Ошибка проекта: %v", err)
	}

	fmt.Printf("[+++] Успех! Результат: %s\n", cfg.OutputVideo)
}

// loadCards renders card faces from a PDF or image folder; without one the cards stay plain
func loadCards(path string, n, dpi int) []image.Image {
	if path == "" || n == 0 {
		return nil
	}
	src, err := source.Open(path)
	if err != nil {
		log.Printf("[!] Ошибка источника карточек: %v", err)
		return nil
	}
	defer src.Close()

	artwork, err := source.LoadArtwork(src, n, dpi)
	if err != nil {
		log.Printf("[!] Карточки будут без изображений: %v", err)
		return nil
	}
	return artwork
}

func outputName(scenarioPath string) string {
	baseName := filepath.Base(scenarioPath)
	nameOnly := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	cleanName := strings.ReplaceAll(nameOnly, " ", "_")
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join("output", fmt.Sprintf("%s_%s.mp4", cleanName, timestamp))
}
