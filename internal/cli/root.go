package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"webopen.dev/webopen"
	"webopen.dev/webopen/internal/cli/common"
	"webopen.dev/webopen/internal/config"
	"webopen.dev/webopen/internal/output"
	"webopen.dev/webopen/internal/runtime"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		browser    browserFlag
		quiet      bool
		verbose    bool
		colorMode  string
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:   "webopen [url]",
		Short: "Open URLs in a browser from the command line",
		Long: `Webopen opens URLs in a browser through the platform's native launcher:
open on macOS, xdg-open on Linux and start on Windows.

Pass a URL to open it in the default browser, or pick one with --browser.
Named browsers are only available on macOS; everywhere else the platform
default is the single choice.`,
		Example: `  webopen http://example.com
  webopen --browser chrome http://example.com
  webopen resolve http://example.com`,
		Args:          cobra.MaximumNArgs(1),
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = config.DefaultPath()
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			color := cfg.Output.Color
			if cmd.Flags().Changed("color") {
				color = colorMode
			}
			output.ApplyColorMode(color)

			var file *output.FileLogging
			if cfg.Log.File != "" {
				file = &output.FileLogging{
					Path:       cfg.Log.File,
					MaxSize:    cfg.Log.MaxSize,
					MaxBackups: cfg.Log.MaxBackups,
					MaxAge:     cfg.Log.MaxAge,
				}
			}
			splog, err := output.New(cmd.OutOrStdout(), output.Options{
				Verbose: verbose,
				Quiet:   quiet || cfg.Output.Quiet,
				File:    file,
			})
			if err != nil {
				return err
			}

			cmd.SetContext(runtime.WithContext(cmd.Context(), runtime.NewContext(cfg, path, splog)))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			// Releases the log file handle when file logging is configured.
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return ctx.Splog.Close()
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return openURL(ctx, requestedBrowser(cmd, ctx), args[0])
			})
		},
	}

	// Persistent flags apply to every subcommand
	rootCmd.PersistentFlags().VarP(&browser, "browser", "b", "browser to use: default, firefox, ie, chrome, opera or safari")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only print errors")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "print debug output")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "colorize output: auto, always or never")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file")
	_ = rootCmd.RegisterFlagCompletionFunc("browser", completeBrowsers)
	_ = rootCmd.RegisterFlagCompletionFunc("color", completeColorModes)

	// Add subcommands
	rootCmd.AddCommand(newBrowsersCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newPickCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

// openURL launches url and reports what happened on the terminal.
func openURL(ctx *runtime.Context, browser webopen.Browser, url string) error {
	if !webopen.DisplayAvailable() {
		ctx.Splog.Warn("no graphical display detected, the browser may not appear")
	}

	if res, err := webopen.Resolve(webopen.DetectOS(), browser); err == nil {
		ctx.Splog.Debug("run: %s", res.CommandLine(url))
	}

	if err := ctx.Open(browser, url); err != nil {
		return err
	}

	if browser == webopen.Default {
		ctx.Splog.Info("Opening %s in the default browser", url)
	} else {
		ctx.Splog.Info("Opening %s in %s", url, browser)
	}
	return nil
}
