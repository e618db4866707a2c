// Package app drives the interactive resolution-change flow.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/frudas24/screenmode/internal/config"
	"github.com/frudas24/screenmode/internal/display"
	"github.com/frudas24/screenmode/internal/modeset"
	"github.com/frudas24/screenmode/internal/preset"
)

// App coordinates enumeration, cursor lookup, prompting, and the change.
type App struct {
	cfg      config.Config
	provider display.Provider
	in       *bufio.Scanner
	out      io.Writer
	debug    bool
	presets  preset.Presets
}

// New creates the interactive driver with its dependencies wired.
func New(cfg config.Config, provider display.Provider, in io.Reader, out io.Writer, debug bool) (*App, error) {
	if provider == nil {
		return nil, errors.New("display provider is required")
	}
	if in == nil {
		return nil, errors.New("prompt input is required")
	}
	if out == nil {
		return nil, errors.New("prompt output is required")
	}
	return &App{
		cfg:      cfg,
		provider: provider,
		in:       bufio.NewScanner(in),
		out:      out,
		debug:    debug,
	}, nil
}

// Run executes one list, locate, select, and apply sequence. Each step
// either transitions to the next or returns a terminal error; only prompt
// steps loop on invalid input.
func (a *App) Run() error {
	a.presets = a.loadPresets()

	devices, err := a.listStep()
	if err != nil {
		return err
	}
	a.cursorStep(devices)
	selected, err := a.selectStep(devices)
	if err != nil {
		return err
	}
	width, height, err := a.dimensionStep(selected)
	if err != nil {
		return err
	}
	return a.applyStep(width, height, selected)
}

// listStep enumerates displays and prints the numbered list.
func (a *App) listStep() ([]display.Device, error) {
	devices, err := a.provider.ListDisplays()
	if err != nil {
		return nil, fmt.Errorf("enumerate displays: %w", err)
	}
	if len(devices) == 0 {
		return nil, display.ErrNoActiveDisplays
	}
	fmt.Fprintln(a.out, "Active displays:")
	for _, d := range devices {
		line := fmt.Sprintf("  %d. %s", d.Index, d.Name)
		if d.Label != "" {
			line += " - " + d.Label
		}
		if d.Primary {
			line += " [primary]"
		}
		if m, ok := a.presets.Get(d.Name); ok {
			line += fmt.Sprintf(" (last set %dx%d)", m.Width, m.Height)
		}
		fmt.Fprintln(a.out, line)
	}
	return devices, nil
}

// cursorStep reports which display currently hosts the pointer.
func (a *App) cursorStep(devices []display.Device) {
	pt, err := a.provider.CursorPos()
	if err != nil {
		if a.debug {
			log.Printf("debug: cursor read: %v", err)
		}
		fmt.Fprintln(a.out, "Mouse cursor is on: unknown")
		return
	}
	d, ok := display.Locate(devices, pt)
	if !ok {
		fmt.Fprintln(a.out, "Mouse cursor is on: unknown")
		return
	}
	fmt.Fprintf(a.out, "Mouse cursor is on: %s\n", d.Name)
}

// selectStep prompts for a 1-based display index until a valid one is read.
func (a *App) selectStep(devices []display.Device) (display.Device, error) {
	for {
		fmt.Fprintf(a.out, "Select display (1-%d): ", len(devices))
		line, ok := a.readLine()
		if !ok {
			return display.Device{}, errors.New("input closed before a display was selected")
		}
		idx, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(a.out, "Invalid selection: enter a number.")
			continue
		}
		d, found := display.DeviceByIndex(devices, idx)
		if !found {
			fmt.Fprintln(a.out, "Invalid selection: no such display.")
			continue
		}
		fmt.Fprintf(a.out, "Selected: %s\n", d.Name)
		return d, nil
	}
}

// dimensionStep prompts for the desired width and height in pixels.
func (a *App) dimensionStep(d display.Device) (int, int, error) {
	if a.debug {
		a.logModes(d)
	}
	width, err := a.promptPositive("Enter desired width: ")
	if err != nil {
		return 0, 0, err
	}
	height, err := a.promptPositive("Enter desired height: ")
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

// applyStep performs the change and reports the outcome.
func (a *App) applyStep(width, height int, d display.Device) error {
	if err := modeset.Change(a.provider, width, height, d); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Resolution changed to %dx%d successfully.\n", width, height)
	a.recordPreset(d.Name, width, height)
	return nil
}

// promptPositive prompts until a positive integer is read.
func (a *App) promptPositive(prompt string) (int, error) {
	for {
		fmt.Fprint(a.out, prompt)
		line, ok := a.readLine()
		if !ok {
			return 0, errors.New("input closed before dimensions were entered")
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || v <= 0 {
			fmt.Fprintln(a.out, "Invalid value: enter a positive integer.")
			continue
		}
		return v, nil
	}
}

// readLine reads one prompt line. ok is false once input is exhausted.
func (a *App) readLine() (string, bool) {
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}

// loadPresets reads stored presets. Presets are a listing hint, so read
// failures log and fall back to empty data.
func (a *App) loadPresets() preset.Presets {
	if a.cfg.PresetsPath == "" {
		return preset.Presets{}
	}
	p, err := preset.Load(a.cfg.PresetsPath)
	if err != nil {
		log.Printf("presets: %v", err)
		return preset.Presets{}
	}
	return p
}

// recordPreset saves the applied mode for the next run's listing.
func (a *App) recordPreset(deviceName string, width, height int) {
	if a.cfg.PresetsPath == "" {
		return
	}
	a.presets.Set(deviceName, preset.Mode{Width: width, Height: height})
	if err := preset.Save(a.cfg.PresetsPath, a.presets); err != nil {
		log.Printf("presets: %v", err)
	}
}

// logModes prints the supported mode set for a display in debug mode.
func (a *App) logModes(d display.Device) {
	modes, err := a.provider.SupportedModes(d.Name)
	if err != nil {
		log.Printf("debug: modes for %s: %v", d.Name, err)
		return
	}
	parts := make([]string, 0, len(modes))
	for _, m := range modes {
		parts = append(parts, fmt.Sprintf("%dx%d", m.Width, m.Height))
	}
	log.Printf("debug: %s supports: %s", d.Name, strings.Join(parts, ", "))
}
