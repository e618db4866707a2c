package app

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frudas24/screenmode/internal/config"
	"github.com/frudas24/screenmode/internal/display"
	"github.com/frudas24/screenmode/internal/preset"
	"github.com/frudas24/screenmode/internal/testutil"
)

// newFake returns a fake provider with two abutting displays.
func newFake() *testutil.FakeProvider {
	return &testutil.FakeProvider{
		Devices: []display.Device{
			{Index: 1, Name: `\\.\DISPLAY1`, Label: "Generic PnP Monitor", X: 0, Y: 0, W: 1920, H: 1080, Primary: true},
			{Index: 2, Name: `\\.\DISPLAY2`, Label: "Generic PnP Monitor", X: 1920, Y: 0, W: 1280, H: 1024},
		},
		Cursor: display.Point{X: 100, Y: 100},
		Modes: map[string][]display.Mode{
			`\\.\DISPLAY1`: {{Width: 1920, Height: 1080}, {Width: 1280, Height: 720}},
			`\\.\DISPLAY2`: {{Width: 1280, Height: 1024}},
		},
		Current: map[string]display.Mode{
			`\\.\DISPLAY1`: {Width: 1920, Height: 1080},
			`\\.\DISPLAY2`: {Width: 1280, Height: 1024},
		},
	}
}

// runApp runs one interactive sequence over scripted input.
func runApp(t *testing.T, cfg config.Config, fake *testutil.FakeProvider, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a, err := New(cfg, fake, strings.NewReader(input), &out, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	err = a.Run()
	return out.String(), err
}

// TestRun_HappyPath verifies the full list, locate, select, apply sequence.
func TestRun_HappyPath(t *testing.T) {
	fake := newFake()
	out, err := runApp(t, config.Config{}, fake, "1\n1280\n720\n")
	if err != nil {
		t.Fatalf("unexpected error: %v\noutput:\n%s", err, out)
	}
	if !strings.Contains(out, `1. \\.\DISPLAY1`) || !strings.Contains(out, `2. \\.\DISPLAY2`) {
		t.Fatalf("expected numbered display list, got:\n%s", out)
	}
	if !strings.Contains(out, `Mouse cursor is on: \\.\DISPLAY1`) {
		t.Fatalf("expected cursor on DISPLAY1, got:\n%s", out)
	}
	if !strings.Contains(out, "Resolution changed to 1280x720 successfully.") {
		t.Fatalf("expected success line, got:\n%s", out)
	}
	got := fake.Current[`\\.\DISPLAY1`]
	if got.Width != 1280 || got.Height != 720 {
		t.Fatalf("expected 1280x720 applied, got %+v", got)
	}
}

// TestRun_CursorOnSharedEdge verifies the boundary point belongs to the
// display it is entering.
func TestRun_CursorOnSharedEdge(t *testing.T) {
	fake := newFake()
	fake.Cursor = display.Point{X: 1920, Y: 0}
	out, err := runApp(t, config.Config{}, fake, "2\n1280\n1024\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `Mouse cursor is on: \\.\DISPLAY2`) {
		t.Fatalf("expected cursor on DISPLAY2, got:\n%s", out)
	}
}

// TestRun_CursorOutsideAll verifies an unlocatable cursor reports unknown.
func TestRun_CursorOutsideAll(t *testing.T) {
	fake := newFake()
	fake.Cursor = display.Point{X: 5000, Y: 5000}
	out, err := runApp(t, config.Config{}, fake, "1\n1920\n1080\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Mouse cursor is on: unknown") {
		t.Fatalf("expected unknown cursor display, got:\n%s", out)
	}
}

// TestRun_NoActiveDisplays verifies an empty enumeration stops the run.
func TestRun_NoActiveDisplays(t *testing.T) {
	fake := &testutil.FakeProvider{}
	_, err := runApp(t, config.Config{}, fake, "")
	if !errors.Is(err, display.ErrNoActiveDisplays) {
		t.Fatalf("expected ErrNoActiveDisplays, got %v", err)
	}
}

// TestRun_InvalidSelectionReprompts verifies bad indexes re-prompt.
func TestRun_InvalidSelectionReprompts(t *testing.T) {
	fake := newFake()
	out, err := runApp(t, config.Config{}, fake, "abc\n9\n1\n1280\n720\n")
	if err != nil {
		t.Fatalf("unexpected error: %v\noutput:\n%s", err, out)
	}
	if strings.Count(out, "Invalid selection") != 2 {
		t.Fatalf("expected two invalid-selection messages, got:\n%s", out)
	}
	if !strings.Contains(out, "Resolution changed to 1280x720 successfully.") {
		t.Fatalf("expected success after re-prompting, got:\n%s", out)
	}
}

// TestRun_InvalidDimensionsReprompt verifies non-positive sizes re-prompt.
func TestRun_InvalidDimensionsReprompt(t *testing.T) {
	fake := newFake()
	out, err := runApp(t, config.Config{}, fake, "1\n-5\n1280\nwide\n720\n")
	if err != nil {
		t.Fatalf("unexpected error: %v\noutput:\n%s", err, out)
	}
	if strings.Count(out, "Invalid value") != 2 {
		t.Fatalf("expected two invalid-value messages, got:\n%s", out)
	}
	got := fake.Current[`\\.\DISPLAY1`]
	if got.Width != 1280 || got.Height != 720 {
		t.Fatalf("expected 1280x720 applied, got %+v", got)
	}
}

// TestRun_UnsupportedMode verifies a rejected mode leaves the display as-is.
func TestRun_UnsupportedMode(t *testing.T) {
	fake := newFake()
	_, err := runApp(t, config.Config{}, fake, "1\n9999\n9999\n")
	if !errors.Is(err, display.ErrUnsupportedMode) {
		t.Fatalf("expected ErrUnsupportedMode, got %v", err)
	}
	got := fake.Current[`\\.\DISPLAY1`]
	if got.Width != 1920 || got.Height != 1080 {
		t.Fatalf("expected mode unchanged, got %+v", got)
	}
}

// TestRun_EOFDuringSelection verifies exhausted input fails cleanly.
func TestRun_EOFDuringSelection(t *testing.T) {
	fake := newFake()
	_, err := runApp(t, config.Config{}, fake, "")
	if err == nil || !strings.Contains(err.Error(), "input closed") {
		t.Fatalf("expected input-closed error, got %v", err)
	}
}

// TestRun_RecordsPreset verifies a successful change is remembered and
// shown on the next listing.
func TestRun_RecordsPreset(t *testing.T) {
	cfg := config.Config{PresetsPath: filepath.Join(t.TempDir(), "presets.json")}

	fake := newFake()
	if _, err := runApp(t, cfg, fake, "1\n1280\n720\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := preset.Load(cfg.PresetsPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	m, ok := p.Get(`\\.\DISPLAY1`)
	if !ok || m.Width != 1280 || m.Height != 720 {
		t.Fatalf("expected recorded 1280x720, got ok=%v mode=%+v", ok, m)
	}

	out, err := runApp(t, cfg, newFake(), "1\n1920\n1080\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "(last set 1280x720)") {
		t.Fatalf("expected last-set hint in listing, got:\n%s", out)
	}
}
