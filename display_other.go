//go:build !darwin && !windows

package webopen

import "os"

// DisplayAvailable reports whether a graphical session is available. On
// Linux and the BSDs an X11 session sets $DISPLAY and a Wayland session
// sets $WAYLAND_DISPLAY; with neither present the host is likely headless.
func DisplayAvailable() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
