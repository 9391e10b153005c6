package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
		{"info at warn level", log.WarnLevel, func(l *log.Logger) { l.Info("test") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"", log.InfoLevel},
		{"debug", log.DebugLevel},
		{" INFO ", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"Warning", log.WarnLevel},
		{"error", log.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseLevel("loud")
	assert.Error(t, err)
}

func TestLoggerContext(t *testing.T) {
	assert.NotNil(t, loggerFromContext(context.Background()))

	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestBuildReportSaved(t *testing.T) {
	var buf bytes.Buffer
	startBuild(newLogger(&buf, log.InfoLevel), "").saved(6, "deck.pptx", "")
	got := buf.String()
	assert.Contains(t, got, "Presentation saved")
	assert.Contains(t, got, "deck=built-in")
	assert.Contains(t, got, "slides=6")
	assert.Contains(t, got, "output=deck.pptx")
	assert.Contains(t, got, "elapsed=")
	assert.NotContains(t, got, "previews=")

	buf.Reset()
	startBuild(newLogger(&buf, log.InfoLevel), "release.yaml").saved(2, "r.pptx", "shots")
	assert.Contains(t, buf.String(), "deck=release.yaml")
	assert.Contains(t, buf.String(), "previews=shots")
}
