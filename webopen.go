// Package webopen opens a URL with an available web browser on the host
// platform.
//
// The package detects the operating system, resolves the requested browser
// against a static per-OS registry, and invokes the platform's native open
// mechanism as an external process. Opening is fire-and-forget: a call
// succeeds as soon as the launcher process starts, whether or not a browser
// window ever appears. On macOS a specific browser may be requested by name;
// Linux and Windows launch the platform default only.
package webopen

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"runtime"
)

// DetectOS returns the host operating system identifier.
func DetectOS() OS {
	return OS(runtime.GOOS)
}

// spawn launches the rendered command and reports success as soon as the
// process starts. Tests replace it so no browser is launched.
var spawn = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Open opens url with the default browser of the detected OS.
func Open(url string) error {
	return OpenBrowser(Default, url)
}

// OpenBrowser opens url with the requested browser on the detected OS.
// All failures surface as a NotFoundError, from lookup failures through a
// launcher that could not be started. errors.Is against ErrUnsupportedOS
// and ErrUnsupportedBrowser still distinguishes the lookup cases.
func OpenBrowser(browser Browser, url string) error {
	host := DetectOS()
	res, err := Resolve(host, browser)
	if err != nil {
		return NewNotFoundError(notFoundDetail(err), err)
	}
	argv := res.Argv(url)
	slog.Debug("launching browser", "os", host, "browser", browser, "command", res.CommandLine(url))
	if err := spawn(argv[0], argv[1:]...); err != nil {
		return NewNotFoundError(fmt.Sprintf("could not launch browser: %v", err), err)
	}
	return nil
}

// OpenFile opens the file at path in the default browser.
func OpenFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return Open("file://" + abs)
}

// notFoundDetail maps a resolution failure to the message exposed at the
// public boundary.
func notFoundDetail(err error) string {
	var osErr *UnsupportedOSError
	if errors.As(err, &osErr) {
		return fmt.Sprintf("Platform %s not yet supported by this library", osErr.OS)
	}
	if errors.Is(err, ErrUnsupportedBrowser) {
		return "Only the default browser is supported on this platform right now"
	}
	return err.Error()
}
