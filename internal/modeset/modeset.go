// Package modeset validates and applies display resolution changes.
package modeset

import (
	"errors"
	"fmt"

	"github.com/frudas24/screenmode/internal/display"
)

// ErrInvalidDimensions indicates a non-positive width or height.
var ErrInvalidDimensions = errors.New("width and height must be positive")

// Change validates that the device supports the requested resolution and
// applies it. Validation failures never reach the OS apply step. Applying
// the already-active resolution is a no-op success; the full
// validate-then-apply sequence still runs on every call.
func Change(p display.Provider, width, height int, d display.Device) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	modes, err := p.SupportedModes(d.Name)
	if err != nil {
		return fmt.Errorf("query modes for %s: %w", d.Name, err)
	}
	want := display.Mode{Width: width, Height: height}
	if !supported(modes, want) {
		return fmt.Errorf("%dx%d on %s: %w", width, height, d.Name, display.ErrUnsupportedMode)
	}
	if err := p.ApplyMode(d.Name, want); err != nil {
		return fmt.Errorf("apply %dx%d to %s: %w", width, height, d.Name, err)
	}
	return nil
}

// supported reports whether the mode appears in the supported set.
func supported(modes []display.Mode, want display.Mode) bool {
	for _, m := range modes {
		if m == want {
			return true
		}
	}
	return false
}
