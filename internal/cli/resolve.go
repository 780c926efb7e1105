package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"webopen.dev/webopen"
	"webopen.dev/webopen/internal/cli/common"
	"webopen.dev/webopen/internal/runtime"
)

// newResolveCmd creates the resolve command
func newResolveCmd() *cobra.Command {
	var platform string

	cmd := &cobra.Command{
		Use:   "resolve <url>",
		Short: "Print the command that would open a URL, without running it",
		Long: `Print the exact command webopen would run to open the URL, without
launching anything. The browser is chosen the same way opening chooses
it, so --browser, WEBOPEN_BROWSER and the config file all apply.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				target := webopen.DetectOS()
				if platform != "" {
					target = webopen.OS(platform)
				}
				res, err := webopen.Resolve(target, requestedBrowser(cmd, ctx))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), res.CommandLine(args[0]))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&platform, "os", "", "resolve for this platform instead of the current one")
	_ = cmd.RegisterFlagCompletionFunc("os", completePlatforms)

	return cmd
}
