package cli

import (
	"github.com/spf13/cobra"

	"webopen.dev/webopen"
	"webopen.dev/webopen/internal/config"
)

// completeBrowsers is a helper for cobra.ValidArgsFunction and RegisterFlagCompletionFunc
// that returns the browsers available on the current platform.
func completeBrowsers(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	browsers, err := webopen.BrowsersFor(webopen.DetectOS())
	if err != nil {
		// Unsupported platform. Offer every known name instead.
		browsers = webopen.KnownBrowsers()
	}
	names := make([]string, len(browsers))
	for i, b := range browsers {
		names[i] = string(b)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completePlatforms returns the platforms with a registry entry.
func completePlatforms(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	oses := webopen.SupportedOS()
	names := make([]string, len(oses))
	for i, os := range oses {
		names[i] = string(os)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeColorModes returns the accepted --color values.
func completeColorModes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return config.ColorModes, cobra.ShellCompDirectiveNoFileComp
}
