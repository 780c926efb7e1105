//go:build windows

package webopen

// DisplayAvailable reports whether a graphical session is available.
// Even Windows Server Core keeps a minimal desktop, so report true; start
// simply fails if no browser is installed.
func DisplayAvailable() bool {
	return true
}
