package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSplog(t *testing.T, opts Options) (*Splog, *bytes.Buffer) {
	t.Helper()
	t.Setenv("DEBUG", "")

	var buf bytes.Buffer
	s, err := New(&buf, opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, &buf
}

func TestSplog(t *testing.T) {
	t.Run("info messages reach the terminal", func(t *testing.T) {
		s, buf := newTestSplog(t, Options{})

		s.Info("opening %s", "http://example.com")

		require.Equal(t, "opening http://example.com\n", buf.String())
	})

	t.Run("messages without args are not format-expanded", func(t *testing.T) {
		s, buf := newTestSplog(t, Options{})

		// Sprintf would collapse %% to %, so the doubled verb proves the
		// message was passed through untouched.
		s.Info("progress: 100%% done")

		require.Equal(t, "progress: 100%% done\n", buf.String())
	})

	t.Run("debug is hidden unless verbose", func(t *testing.T) {
		s, buf := newTestSplog(t, Options{})

		s.Debug("resolved command")
		require.Empty(t, buf.String())

		verbose, verboseBuf := newTestSplog(t, Options{Verbose: true})
		verbose.Debug("resolved command")
		require.Equal(t, "resolved command\n", verboseBuf.String())
	})

	t.Run("DEBUG environment variable enables verbose", func(t *testing.T) {
		t.Setenv("DEBUG", "1")

		var buf bytes.Buffer
		s, err := New(&buf, Options{})
		require.NoError(t, err)

		s.Debug("resolved command")
		require.Equal(t, "resolved command\n", buf.String())
	})

	t.Run("warnings carry a prefix", func(t *testing.T) {
		s, buf := newTestSplog(t, Options{})

		s.Warn("no display detected")

		require.Contains(t, buf.String(), "⚠️")
		require.Contains(t, buf.String(), "no display detected")
	})

	t.Run("quiet suppresses everything below error", func(t *testing.T) {
		s, buf := newTestSplog(t, Options{Quiet: true})

		s.Info("hidden")
		s.Warn("hidden")
		s.Debug("hidden")
		s.Tip("hidden")
		s.Newline()
		s.Page("hidden\n")
		require.Empty(t, buf.String())

		s.Error("still visible")
		require.Contains(t, buf.String(), "still visible")
	})

	t.Run("quiet can be toggled after construction", func(t *testing.T) {
		s, buf := newTestSplog(t, Options{})
		require.False(t, s.IsQuiet())

		s.SetQuiet(true)
		require.True(t, s.IsQuiet())
		s.Info("hidden")
		require.Empty(t, buf.String())

		s.SetQuiet(false)
		s.Info("shown")
		require.Equal(t, "shown\n", buf.String())
	})

	t.Run("page writes content verbatim", func(t *testing.T) {
		s, buf := newTestSplog(t, Options{})

		s.Page("darwin\n  default open URL\n")

		require.Equal(t, "darwin\n  default open URL\n", buf.String())
	})

	t.Run("close without file logging is a no-op", func(t *testing.T) {
		s, _ := newTestSplog(t, Options{})

		require.NoError(t, s.Close())
	})
}

func TestSplogFileLogging(t *testing.T) {
	t.Run("writes all levels to the log file with timestamps", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		path := filepath.Join(t.TempDir(), "logs", "webopen.log")

		var buf bytes.Buffer
		s, err := New(&buf, Options{File: &FileLogging{Path: path, MaxSize: 1}})
		require.NoError(t, err)

		s.Info("launching browser")
		s.Debug("argv rendered")
		require.NoError(t, s.Close())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(content), "launching browser")
		require.Contains(t, string(content), "argv rendered")
		require.Contains(t, string(content), "level=INFO")
		require.Contains(t, string(content), "level=DEBUG")
	})

	t.Run("quiet does not affect the log file", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		path := filepath.Join(t.TempDir(), "webopen.log")

		var buf bytes.Buffer
		s, err := New(&buf, Options{Quiet: true, File: &FileLogging{Path: path, MaxSize: 1}})
		require.NoError(t, err)

		s.Info("suppressed on terminal")
		require.NoError(t, s.Close())

		require.Empty(t, buf.String())
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(content), "suppressed on terminal")
	})
}
