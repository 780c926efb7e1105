package webopen

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrUnsupportedOS indicates that the operating system has no registry entry
	ErrUnsupportedOS = errors.New("unsupported operating system")

	// ErrUnsupportedBrowser indicates that the browser is not available on the given OS
	ErrUnsupportedBrowser = errors.New("unsupported browser")

	// ErrNotFound is the public boundary error for all open failures
	ErrNotFound = errors.New("not found")

	// ErrUnknownBrowser indicates that a string does not name any known browser
	ErrUnknownBrowser = errors.New("unknown browser")
)

// UnsupportedOSError represents an error when the OS has no registry entry
type UnsupportedOSError struct {
	OS OS
}

func (e *UnsupportedOSError) Error() string {
	return fmt.Sprintf("unsupported operating system: %s", e.OS)
}

// Is returns true if the target error is ErrUnsupportedOS
func (e *UnsupportedOSError) Is(target error) bool {
	return target == ErrUnsupportedOS
}

// NewUnsupportedOSError creates a new UnsupportedOSError
func NewUnsupportedOSError(os OS) *UnsupportedOSError {
	return &UnsupportedOSError{OS: os}
}

// UnsupportedBrowserError represents an error when a browser has no mapping on an OS
type UnsupportedBrowserError struct {
	OS      OS
	Browser Browser
}

func (e *UnsupportedBrowserError) Error() string {
	return fmt.Sprintf("browser %s is not available on %s", e.Browser, e.OS)
}

// Is returns true if the target error is ErrUnsupportedBrowser
func (e *UnsupportedBrowserError) Is(target error) bool {
	return target == ErrUnsupportedBrowser
}

// NewUnsupportedBrowserError creates a new UnsupportedBrowserError
func NewUnsupportedBrowserError(os OS, browser Browser) *UnsupportedBrowserError {
	return &UnsupportedBrowserError{OS: os, Browser: browser}
}

// NotFoundError is the error surfaced by Open and OpenBrowser for every
// failure: unsupported OS, unsupported browser, or a failed spawn.
// Detail carries the human-readable message; the underlying cause is
// available through Unwrap.
type NotFoundError struct {
	Detail string
	Err    error
}

func (e *NotFoundError) Error() string {
	return e.Detail
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(detail string, err error) *NotFoundError {
	return &NotFoundError{Detail: detail, Err: err}
}
