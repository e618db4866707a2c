//go:build !windows

// Package display describes display devices, cursor location, and the OS
// display-configuration surface.
package display

import "errors"

// ErrUnsupported indicates the WinAPI display surface is not available.
var ErrUnsupported = errors.New("display configuration is only supported on Windows")

// StubProvider is a placeholder provider for non-Windows builds.
type StubProvider struct{}

// NewProvider returns a non-functional provider on non-Windows platforms.
func NewProvider(dpiAware bool) (Provider, error) {
	_ = dpiAware
	return &StubProvider{}, ErrUnsupported
}

// ListDisplays returns ErrUnsupported.
func (s *StubProvider) ListDisplays() ([]Device, error) {
	return nil, ErrUnsupported
}

// CursorPos returns ErrUnsupported.
func (s *StubProvider) CursorPos() (Point, error) {
	return Point{}, ErrUnsupported
}

// SupportedModes returns ErrUnsupported.
func (s *StubProvider) SupportedModes(deviceName string) ([]Mode, error) {
	_ = deviceName
	return nil, ErrUnsupported
}

// ApplyMode returns ErrUnsupported.
func (s *StubProvider) ApplyMode(deviceName string, m Mode) error {
	_ = deviceName
	_ = m
	return ErrUnsupported
}
