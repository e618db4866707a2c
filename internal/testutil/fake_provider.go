// Package testutil provides recording fakes for tests.
package testutil

import (
	"fmt"

	"github.com/frudas24/screenmode/internal/display"
)

// Call records a single provider invocation.
type Call struct {
	Name   string
	Device string
	Mode   display.Mode
}

// FakeProvider implements display.Provider against in-memory state and
// records calls for tests.
type FakeProvider struct {
	Devices  []display.Device
	Cursor   display.Point
	Modes    map[string][]display.Mode
	Current  map[string]display.Mode
	ApplyErr error
	Calls    []Call
}

// Ensure FakeProvider implements the interface.
var _ display.Provider = (*FakeProvider)(nil)

// ListDisplays returns the configured devices.
func (f *FakeProvider) ListDisplays() ([]display.Device, error) {
	f.Calls = append(f.Calls, Call{Name: "ListDisplays"})
	return f.Devices, nil
}

// CursorPos returns the configured cursor position.
func (f *FakeProvider) CursorPos() (display.Point, error) {
	f.Calls = append(f.Calls, Call{Name: "CursorPos"})
	return f.Cursor, nil
}

// SupportedModes returns the configured mode set for the device.
func (f *FakeProvider) SupportedModes(deviceName string) ([]display.Mode, error) {
	f.Calls = append(f.Calls, Call{Name: "SupportedModes", Device: deviceName})
	modes, ok := f.Modes[deviceName]
	if !ok {
		return nil, fmt.Errorf("%s: %w", deviceName, display.ErrDeviceNotFound)
	}
	return modes, nil
}

// ApplyMode records the mode as current, mimicking the OS test-then-commit
// behavior: unknown devices and unsupported modes are rejected.
func (f *FakeProvider) ApplyMode(deviceName string, m display.Mode) error {
	f.Calls = append(f.Calls, Call{Name: "ApplyMode", Device: deviceName, Mode: m})
	if f.ApplyErr != nil {
		return f.ApplyErr
	}
	modes, ok := f.Modes[deviceName]
	if !ok {
		return fmt.Errorf("%s: %w", deviceName, display.ErrDeviceNotFound)
	}
	supported := false
	for _, known := range modes {
		if known == m {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("%dx%d: %w", m.Width, m.Height, display.ErrUnsupportedMode)
	}
	if f.Current == nil {
		f.Current = make(map[string]display.Mode)
	}
	f.Current[deviceName] = m
	return nil
}

// CallsNamed returns the recorded calls with the given name.
func (f *FakeProvider) CallsNamed(name string) []Call {
	var out []Call
	for _, c := range f.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}
