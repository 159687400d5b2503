package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// fileLogger duplicates log output into a plain-text run log in the
// artifacts directory. The returned closer may be called even when
// setup failed; logging then stays on w alone.
func (c *CLI) fileLogger(artifactsDir string) func() {
	if artifactsDir == "" {
		return func() {}
	}
	if err := os.MkdirAll(artifactsDir, 0o755); err != nil {
		c.Logger.Debug("run log unavailable", "err", err)
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(artifactsDir, appName+".log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		c.Logger.Debug("run log unavailable", "err", err)
		return func() {}
	}
	prev := c.Logger
	c.Logger = newLogger(io.MultiWriter(os.Stderr, f), prev.GetLevel())
	return func() {
		c.Logger = prev
		f.Close()
	}
}

// progress tracks the start time of an operation and logs completion
// with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time
// as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Generated 42 strokes (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
