package runtime

import (
	"context"
	"fmt"

	"webopen.dev/webopen"
	"webopen.dev/webopen/internal/config"
	"webopen.dev/webopen/internal/output"
)

// Context provides access to configuration and output for commands
type Context struct {
	Config     *config.Config
	ConfigPath string
	Splog      *output.Splog

	// Open launches url in browser. Commands call this instead of the
	// library directly so tests can observe launches without spawning
	// anything.
	Open func(browser webopen.Browser, url string) error
}

// Launcher is the browser launcher new contexts are wired to. Tests replace
// it to observe launches without spawning anything.
var Launcher = webopen.OpenBrowser

// NewContext creates a new context backed by the configured launcher
func NewContext(cfg *config.Config, configPath string, splog *output.Splog) *Context {
	return &Context{
		Config:     cfg,
		ConfigPath: configPath,
		Splog:      splog,
		Open:       Launcher,
	}
}

type contextKey struct{}

// WithContext returns a copy of ctx carrying rc.
func WithContext(ctx context.Context, rc *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// GetContext retrieves the runtime context installed by the root command.
func GetContext(ctx context.Context) (*Context, error) {
	rc, ok := ctx.Value(contextKey{}).(*Context)
	if !ok {
		return nil, fmt.Errorf("no runtime context available")
	}
	return rc, nil
}
