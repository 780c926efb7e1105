package output

import (
	"fmt"
	"strings"

	"webopen.dev/webopen"
)

// RenderRegistry renders the browser registry for the given platforms, one
// section per OS with the launcher command shown for every browser. The
// host platform is marked as current.
func RenderRegistry(oses []webopen.OS, host webopen.OS) string {
	var b strings.Builder
	for i, os := range oses {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(ColorPlatform(string(os), os == host))
		b.WriteString("\n")

		browsers, err := webopen.BrowsersFor(os)
		if err != nil {
			continue
		}
		for _, browser := range browsers {
			res, err := webopen.Resolve(os, browser)
			if err != nil {
				continue
			}
			b.WriteString(fmt.Sprintf("  %-9s %s\n", browser, Dim(res.CommandLine("URL"))))
		}
	}
	return b.String()
}
