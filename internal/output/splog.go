// Package output provides the terminal logger and styling helpers for the
// webopen CLI.
package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// simpleHandler is a slog handler that writes bare messages without
// timestamps or level prefixes, for terminal output.
type simpleHandler struct {
	writer  io.Writer
	verbose *bool
	quiet   *bool
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return *h.verbose
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	if *h.quiet && record.Level < slog.LevelError {
		return nil
	}
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// multiHandler fans out log records to multiple handlers.
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// FileLogging configures the optional rotating debug log.
type FileLogging struct {
	Path       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// Options configures a Splog.
type Options struct {
	// Verbose enables debug messages on the terminal. The DEBUG
	// environment variable has the same effect.
	Verbose bool
	// Quiet suppresses everything below error level on the terminal.
	// File logging is unaffected.
	Quiet bool
	// File enables rotating file logging when non-nil.
	File *FileLogging
}

// Splog provides leveled terminal output with optional file logging.
type Splog struct {
	logger    *slog.Logger
	writer    io.Writer
	logWriter io.WriteCloser
	verbose   bool
	quiet     bool
}

// New creates a Splog writing terminal output to w.
func New(w io.Writer, opts Options) (*Splog, error) {
	s := &Splog{
		writer:  w,
		verbose: opts.Verbose || os.Getenv("DEBUG") != "",
		quiet:   opts.Quiet,
	}

	handlers := []slog.Handler{&simpleHandler{
		writer:  w,
		verbose: &s.verbose,
		quiet:   &s.quiet,
	}}

	if opts.File != nil && opts.File.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File.Path), 0750); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		rotator := &lumberjack.Logger{
			Filename:   opts.File.Path,
			MaxSize:    opts.File.MaxSize,
			MaxBackups: opts.File.MaxBackups,
			MaxAge:     opts.File.MaxAge,
		}
		s.logWriter = rotator

		// The file always gets everything, with timestamps.
		handlers = append(handlers, slog.NewTextHandler(rotator, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		}))
	}

	s.logger = slog.New(&multiHandler{handlers: handlers})
	return s, nil
}

// SetQuiet toggles quiet mode.
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

// IsQuiet reports whether quiet mode is on.
func (s *Splog) IsQuiet() bool {
	return s.quiet
}

func (s *Splog) log(level slog.Level, format string, args ...interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, msg)
}

// Info writes an info message.
func (s *Splog) Info(format string, args ...interface{}) {
	s.log(slog.LevelInfo, format, args...)
}

// Warn writes a warning message.
func (s *Splog) Warn(format string, args ...interface{}) {
	s.log(slog.LevelWarn, "⚠️  "+format, args...)
}

// Error writes an error message.
func (s *Splog) Error(format string, args ...interface{}) {
	s.log(slog.LevelError, "❌ "+format, args...)
}

// Debug writes a debug message, shown only in verbose mode.
func (s *Splog) Debug(format string, args ...interface{}) {
	s.log(slog.LevelDebug, format, args...)
}

// Tip writes a hint for the user.
func (s *Splog) Tip(format string, args ...interface{}) {
	s.log(slog.LevelInfo, "💡 "+format, args...)
}

// Page writes pre-rendered content verbatim. Quiet mode suppresses it like
// any other info output.
func (s *Splog) Page(content string) {
	if s.quiet {
		return
	}
	_, _ = fmt.Fprint(s.writer, content)
}

// Newline writes a blank line.
func (s *Splog) Newline() {
	if s.quiet {
		return
	}
	_, _ = fmt.Fprintln(s.writer)
}

// Close closes the log file if one was opened.
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
