// Package display describes display devices, cursor location, and the OS
// display-configuration surface.
package display

import "errors"

// ErrNoActiveDisplays indicates enumeration found nothing to configure.
var ErrNoActiveDisplays = errors.New("no active displays found")

// ErrDeviceNotFound indicates the named display is no longer present.
var ErrDeviceNotFound = errors.New("display device not found")

// ErrUnsupportedMode indicates the display does not support the resolution.
var ErrUnsupportedMode = errors.New("resolution not supported")

// ErrApplyRejected indicates the OS refused to commit a validated mode.
var ErrApplyRejected = errors.New("display driver rejected the mode change")

// Provider is the OS display-configuration surface. Every call is a fresh
// query; results are snapshots that go stale as soon as hardware changes.
type Provider interface {
	// ListDisplays returns the currently active displays in OS
	// enumeration order. An empty slice is a valid result.
	ListDisplays() ([]Device, error)
	// CursorPos returns the current pointer position.
	CursorPos() (Point, error)
	// SupportedModes returns the resolution modes the named display
	// reports as valid, independent of refresh rate and color depth.
	// A missing device yields ErrDeviceNotFound.
	SupportedModes(deviceName string) ([]Mode, error)
	// ApplyMode commits a new resolution to the named display, leaving
	// all other settings and displays untouched. An empty name targets
	// the primary display.
	ApplyMode(deviceName string, m Mode) error
}
