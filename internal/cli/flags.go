package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"webopen.dev/webopen"
	"webopen.dev/webopen/internal/runtime"
)

// browserFlag is a pflag.Value that only accepts known browser names.
type browserFlag struct {
	browser webopen.Browser
}

var _ pflag.Value = &browserFlag{}

func (f *browserFlag) String() string {
	if f.browser == "" {
		return ""
	}
	return string(f.browser)
}

func (f *browserFlag) Set(s string) error {
	b, err := webopen.ParseBrowser(s)
	if err != nil {
		return err
	}
	f.browser = b
	return nil
}

func (f *browserFlag) Type() string {
	return "browser"
}

// requestedBrowser applies the browser precedence: an explicit --browser flag
// wins, then WEBOPEN_BROWSER or the config file, then the platform default.
func requestedBrowser(cmd *cobra.Command, ctx *runtime.Context) webopen.Browser {
	if f := cmd.Flag("browser"); f != nil && f.Changed {
		if b, err := webopen.ParseBrowser(f.Value.String()); err == nil {
			return b
		}
	}
	return ctx.Config.PreferredBrowser()
}
