package cli

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"webopen.dev/webopen"
	"webopen.dev/webopen/internal/cli/common"
	"webopen.dev/webopen/internal/output"
	"webopen.dev/webopen/internal/runtime"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via WEBOPEN_NON_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (WEBOPEN_NON_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive prompts are unavailable
func checkInteractiveAllowed() error {
	if os.Getenv("WEBOPEN_NON_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	if !output.IsTTY() {
		return fmt.Errorf("interactive prompts require a terminal")
	}
	return nil
}

// newPickCmd creates the pick command
func newPickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pick <url>",
		Short:        "Pick a browser interactively, then open the URL with it",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				if err := checkInteractiveAllowed(); err != nil {
					return err
				}

				browsers, err := webopen.BrowsersFor(webopen.DetectOS())
				if err != nil {
					return err
				}
				options := make([]string, len(browsers))
				for i, b := range browsers {
					options[i] = string(b)
				}

				var choice string
				prompt := &survey.Select{
					Message: "Open with which browser?",
					Options: options,
				}
				if err := survey.AskOne(prompt, &choice); err != nil {
					return fmt.Errorf("canceled")
				}

				browser, err := webopen.ParseBrowser(choice)
				if err != nil {
					return err
				}
				return openURL(ctx, browser, args[0])
			})
		},
	}

	return cmd
}
