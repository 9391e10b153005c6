package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the deckgen logger on w. Debug output also reports the
// calling source line.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    level == log.DebugLevel,
		TimeFormat:      time.TimeOnly,
		Prefix:          "deckgen",
		Level:           level,
	})
}

// parseLevel maps a configured level name to a log level. The empty string
// means info.
func parseLevel(name string) (log.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return log.InfoLevel, nil
	case "warning":
		return log.WarnLevel, nil
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}

// buildReport times one build and logs its outcome as structured fields.
type buildReport struct {
	logger *log.Logger
	source string
	start  time.Time
}

// startBuild begins timing a build of the deck loaded from source.
func startBuild(l *log.Logger, source string) *buildReport {
	if source == "" {
		source = "built-in"
	}
	return &buildReport{logger: l, source: source, start: time.Now()}
}

// saved logs the written presentation, e.g.
// "Presentation saved deck=built-in slides=6 output=deck.pptx elapsed=12ms".
// previewDir is logged only when previews were rendered.
func (b *buildReport) saved(slides int, output, previewDir string) {
	kv := []any{"deck", b.source, "slides", slides, "output", output}
	if previewDir != "" {
		kv = append(kv, "previews", previewDir)
	}
	kv = append(kv, "elapsed", time.Since(b.start).Round(time.Millisecond))
	b.logger.Info("Presentation saved", kv...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
