//go:build darwin

package webopen

// DisplayAvailable reports whether a graphical session is available.
// Headless macOS hosts are rare; report true and let open fail on its own.
func DisplayAvailable() bool {
	return true
}
