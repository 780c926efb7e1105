package cli

import (
	"github.com/spf13/cobra"

	"webopen.dev/webopen"
	"webopen.dev/webopen/internal/cli/common"
	"webopen.dev/webopen/internal/output"
	"webopen.dev/webopen/internal/runtime"
)

// newBrowsersCmd creates the browsers command
func newBrowsersCmd() *cobra.Command {
	var platform string

	cmd := &cobra.Command{
		Use:   "browsers",
		Short: "List the browsers the registry can launch on each platform",
		Long: `List the browsers the registry can launch, grouped by platform, together
with the command each one resolves to. The current platform is marked.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				oses := webopen.SupportedOS()
				if platform != "" {
					os := webopen.OS(platform)
					if _, err := webopen.BrowsersFor(os); err != nil {
						return err
					}
					oses = []webopen.OS{os}
				}
				ctx.Splog.Page(output.RenderRegistry(oses, webopen.DetectOS()))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&platform, "os", "", "limit the listing to one platform")
	_ = cmd.RegisterFlagCompletionFunc("os", completePlatforms)

	return cmd
}
