package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useStateHome points the XDG state directory at dir for the test.
func useStateHome(t *testing.T, dir string) {
	// registered first so it runs after Setenv restores the variable
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
}

// captureLog swaps the global logger for one writing into a buffer.
func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	orig := log.Logger
	origLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() {
		log.Logger = orig
		zerolog.SetGlobalLevel(origLevel)
	})
	return &buf
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			useStateHome(t, tempDir)
			origLevel := zerolog.GlobalLevel()
			t.Cleanup(func() { zerolog.SetGlobalLevel(origLevel) })

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "spanwrap", "spanwrap.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	dir := t.TempDir()
	useStateHome(t, dir)

	assert.Equal(t, filepath.Join(dir, "spanwrap", "spanwrap.log"), getLogFilePath())
}

func TestSetupLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.log")

	f, err := setupLogFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestGetLogger(t *testing.T) {
	buf := captureLog(t)

	logger := GetLogger("pipeline")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"pipeline"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestLogCommand(t *testing.T) {
	buf := captureLog(t)

	LogCommand("render", []string{"a.md", "b.md"})

	out := buf.String()
	assert.Contains(t, out, "render")
	assert.Contains(t, out, "a.md")
	assert.Contains(t, out, "Executing command")
}

func TestLogDuration(t *testing.T) {
	buf := captureLog(t)

	LogDuration(time.Now().Add(-5*time.Second), "render-files")

	assert.Contains(t, buf.String(), "render-files")
	assert.Contains(t, buf.String(), "duration")
}

func TestLogOperationStart(t *testing.T) {
	buf := captureLog(t)

	done := LogOperationStart(log.Logger, "wrap")
	assert.Contains(t, buf.String(), "Operation started")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
}

func TestMust_NoError(t *testing.T) {
	assert.NotPanics(t, func() {
		Must(nil, "this should not exit")
	})
}
