package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"webopen.dev/webopen"
	"webopen.dev/webopen/internal/cli/common"
	"webopen.dev/webopen/internal/config"
	"webopen.dev/webopen/internal/runtime"
)

// configKeys are the keys config get and config set understand.
var configKeys = []string{"browser", "color", "log-file"}

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set webopen configuration",
		Long: `Get and set webopen configuration values.

Examples:
  webopen config get browser
  webopen config set browser chrome
  webopen config set color never
  webopen config set log-file /tmp/webopen.log`,
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

// newConfigGetCmd creates the config get command
func newConfigGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "get <key>",
		Short:             "Get a configuration value",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeConfigKeys,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				// Reports the effective value, environment overrides included.
				switch key := args[0]; key {
				case "browser":
					fmt.Fprintln(cmd.OutOrStdout(), ctx.Config.PreferredBrowser())
				case "color":
					fmt.Fprintln(cmd.OutOrStdout(), ctx.Config.Output.Color)
				case "log-file":
					fmt.Fprintln(cmd.OutOrStdout(), ctx.Config.Log.File)
				default:
					return fmt.Errorf("unknown configuration key: %s", key)
				}
				return nil
			})
		},
	}

	return cmd
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "set <key> <value>",
		Short:             "Set a configuration value",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeConfigKeys,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				key, value := args[0], args[1]

				// Edit what the file actually contains, not the loaded
				// config, so environment overrides are never written back.
				cfg, err := config.LoadFile(ctx.ConfigPath)
				if err != nil {
					return err
				}

				// The config file may be shared between machines, so any
				// known browser is storable; flag the ones this host
				// cannot launch.
				var unavailable webopen.Browser
				host := webopen.DetectOS()

				switch key {
				case "browser":
					browser, err := webopen.ParseBrowser(value)
					if err != nil {
						return err
					}
					cfg.Open.Browser = string(browser)
					if host.Supported() {
						if _, err := webopen.Resolve(host, browser); err != nil {
							unavailable = browser
						}
					}
				case "color":
					cfg.Output.Color = value
				case "log-file":
					cfg.Log.File = value
				default:
					return fmt.Errorf("unknown configuration key: %s", key)
				}

				if err := config.Save(cfg, ctx.ConfigPath); err != nil {
					return err
				}
				ctx.Splog.Info("Set %s to: %s", key, value)
				if unavailable != "" {
					ctx.Splog.Tip("%s is not available on %s. Run 'webopen config set browser default' to use the platform default here.", unavailable, host)
				}
				return nil
			})
		},
	}

	return cmd
}

// completeConfigKeys returns the known configuration keys.
func completeConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return configKeys, cobra.ShellCompDirectiveNoFileComp
}
