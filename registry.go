package webopen

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// OS identifies an operating system family. Values follow runtime.GOOS so
// that an unrecognized platform keeps its literal name in error messages.
type OS string

// Operating systems with a registry entry.
const (
	Darwin  OS = "darwin"
	Linux   OS = "linux"
	Windows OS = "windows"
)

// Supported reports whether the OS has a registry entry.
func (o OS) Supported() bool {
	_, ok := registry[o]
	return ok
}

func (o OS) String() string {
	return string(o)
}

// Browser identifies a browser a caller may request.
type Browser string

// Browsers known to the registry. Only macOS maps the named ones; on every
// other platform the registry carries Default alone.
const (
	Default          Browser = "default"
	Firefox          Browser = "firefox"
	InternetExplorer Browser = "ie"
	Chrome           Browser = "chrome"
	Opera            Browser = "opera"
	Safari           Browser = "safari"
)

func (b Browser) String() string {
	return string(b)
}

// knownBrowsers is the canonical ordering used by listings and completion.
var knownBrowsers = []Browser{Default, Firefox, InternetExplorer, Chrome, Opera, Safari}

// KnownBrowsers returns every browser a caller may request, in canonical
// order. Membership here does not imply availability on any particular OS.
func KnownBrowsers() []Browser {
	out := make([]Browser, len(knownBrowsers))
	copy(out, knownBrowsers)
	return out
}

// ParseBrowser converts a user-supplied string into a Browser.
// Matching is case-insensitive.
func ParseBrowser(s string) (Browser, error) {
	b := Browser(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range knownBrowsers {
		if b == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w %q (known browsers: %s)", ErrUnknownBrowser, s, joinBrowsers(knownBrowsers))
}

func joinBrowsers(browsers []Browser) string {
	names := make([]string, len(browsers))
	for i, b := range browsers {
		names[i] = string(b)
	}
	return strings.Join(names, ", ")
}

// App is the application identifier a browser resolves to: either a literal
// name the platform launcher understands ("Google Chrome"), or the empty
// DefaultApp sentinel meaning "whatever the OS considers the default".
type App string

// DefaultApp is the sentinel for the platform default browser.
const DefaultApp App = ""

// IsDefault reports whether the app is the platform-default sentinel.
func (a App) IsDefault() bool {
	return a == DefaultApp
}

func (a App) String() string {
	if a.IsDefault() {
		return "default"
	}
	return string(a)
}

// Command is the per-OS command template. Each variant renders the argv that
// launches a browser on its platform; rendering is a pure function of the
// app and the URL.
type Command int

// Command template variants, one per supported OS.
const (
	MacCommand Command = iota
	LinuxCommand
	WindowsCommand
)

// Render produces the argv for launching app at url. The URL is passed
// through untouched.
func (c Command) Render(app App, url string) []string {
	switch c {
	case MacCommand:
		if app.IsDefault() {
			return []string{"open", url}
		}
		return []string{"open", "-a", string(app), url}
	case LinuxCommand:
		return []string{"xdg-open", url}
	case WindowsCommand:
		// start is a cmd.exe builtin; "link" is the window title argument.
		return []string{"cmd", "/c", "start", "link", url}
	}
	return nil
}

func (c Command) String() string {
	switch c {
	case MacCommand:
		return "open"
	case LinuxCommand:
		return "xdg-open"
	case WindowsCommand:
		return "start"
	}
	return "unknown"
}

// entry is one per-OS registry record: the command template for the OS and
// the browsers it can launch.
type entry struct {
	command Command
	apps    map[Browser]App
}

// registry is the static browser table. It is package data, never mutated;
// accessors hand out copies.
var registry = map[OS]entry{
	Darwin: {
		command: MacCommand,
		apps: map[Browser]App{
			Default: DefaultApp,
			Firefox: "Firefox",
			Chrome:  "Google Chrome",
			Opera:   "Opera",
			Safari:  "Safari",
		},
	},
	Linux: {
		command: LinuxCommand,
		apps: map[Browser]App{
			Default: DefaultApp,
		},
	},
	Windows: {
		command: WindowsCommand,
		apps: map[Browser]App{
			Default: DefaultApp,
		},
	},
}

// supportedOS is the listing order for the registry.
var supportedOS = []OS{Darwin, Linux, Windows}

// SupportedOS returns the operating systems with a registry entry, in
// listing order.
func SupportedOS() []OS {
	out := make([]OS, len(supportedOS))
	copy(out, supportedOS)
	return out
}

// Resolution is a successful lookup: the application to launch and the
// command template that launches it.
type Resolution struct {
	OS      OS
	Browser Browser
	App     App
	Command Command
}

// Argv renders the command for url.
func (r Resolution) Argv(url string) []string {
	return r.Command.Render(r.App, url)
}

// CommandLine renders the command for url as a single shell-quoted string,
// for display and logging only; spawning always uses Argv.
func (r Resolution) CommandLine(url string) string {
	return shellquote.Join(r.Argv(url)...)
}

// Resolve maps (os, browser) to the application and command template that
// launch it. It is a pure lookup against the static registry: an OS without
// a registry entry yields an UnsupportedOSError, a browser without a mapping
// on that OS yields an UnsupportedBrowserError.
func Resolve(os OS, browser Browser) (Resolution, error) {
	ent, ok := registry[os]
	if !ok {
		return Resolution{}, NewUnsupportedOSError(os)
	}
	app, ok := ent.apps[browser]
	if !ok {
		return Resolution{}, NewUnsupportedBrowserError(os, browser)
	}
	return Resolution{
		OS:      os,
		Browser: browser,
		App:     app,
		Command: ent.command,
	}, nil
}

// Browsers returns the full registry as a fresh map of OS to the browsers
// available on it, in canonical order.
func Browsers() map[OS][]Browser {
	out := make(map[OS][]Browser, len(registry))
	for os := range registry {
		browsers, _ := BrowsersFor(os)
		out[os] = browsers
	}
	return out
}

// BrowsersFor returns the browsers available on os, in canonical order.
func BrowsersFor(os OS) ([]Browser, error) {
	ent, ok := registry[os]
	if !ok {
		return nil, NewUnsupportedOSError(os)
	}
	browsers := make([]Browser, 0, len(ent.apps))
	for _, b := range knownBrowsers {
		if _, ok := ent.apps[b]; ok {
			browsers = append(browsers, b)
		}
	}
	return browsers, nil
}
