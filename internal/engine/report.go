package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Stats is the timing summary of one preview run
type Stats struct {
	Build    string
	Scenario string
	Frames   int
	Workers  int
	Total    time.Duration
	Timeline time.Duration
	Render   time.Duration
}

// FPS is the effective rendering speed of the whole run
func (s Stats) FPS() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Total.Seconds()
}

var (
	reportTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	reportBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (s Stats) String() string {
	lines := []string{
		reportTitle.Render("PERFORMANCE REPORT"),
		fmt.Sprintf("Build: %s", s.Build),
		fmt.Sprintf("Total Time: %.2fs", s.Total.Seconds()),
		fmt.Sprintf("Timeline: %.2fs", s.Timeline.Seconds()),
		fmt.Sprintf("Render + Encode: %.2fs (%d workers)", s.Render.Seconds(), s.Workers),
		fmt.Sprintf("Effective FPS: %.2f", s.FPS()),
	}
	return reportBox.Render(strings.Join(lines, "\n"))
}

// logEntry is the single-line form appended to benchmark.log
func (s Stats) logEntry(now time.Time) string {
	return fmt.Sprintf("[%s] Build: %s | Scenario: %s | Frames: %d | Workers: %d | Total: %.2fs | Render: %.2fs | FPS: %.2f\n",
		now.Format("2006-01-02 15:04:05"),
		s.Build,
		filepath.Base(s.Scenario),
		s.Frames,
		s.Workers,
		s.Total.Seconds(),
		s.Render.Seconds(),
		s.FPS(),
	)
}

const benchmarkLog = "benchmark.log"

func printReport(s Stats) {
	fmt.Println(s.String())

	if err := appendLog(benchmarkLog, s, time.Now()); err != nil {
		fmt.Printf("[!] Не удалось записать %s: %v\n", benchmarkLog, err)
	}
}

// appendLog adds the run to the benchmark log at path
func appendLog(path string, s Stats, now time.Time) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(s.logEntry(now)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
