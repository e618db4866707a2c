package preset

import (
	"path/filepath"
	"testing"
)

// TestSaveLoad_RoundTrip verifies saving and loading preserves preset data.
func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.json")
	var in Presets
	in.Set(`\\.\DISPLAY1`, Mode{Width: 1920, Height: 1080})
	in.Set(`\\.\DISPLAY2`, Mode{Width: 1280, Height: 1024})

	if err := Save(path, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	m, ok := out.Get(`\\.\DISPLAY1`)
	if !ok || m.Width != 1920 || m.Height != 1080 {
		t.Fatalf("expected 1920x1080 for DISPLAY1, got ok=%v mode=%+v", ok, m)
	}
	m, ok = out.Get(`\\.\DISPLAY2`)
	if !ok || m.Width != 1280 || m.Height != 1024 {
		t.Fatalf("expected 1280x1024 for DISPLAY2, got ok=%v mode=%+v", ok, m)
	}
}

// TestLoad_MissingFile_ReturnsEmpty verifies missing files return zero data.
func TestLoad_MissingFile_ReturnsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(out.LastApplied) != 0 {
		t.Fatalf("expected empty presets, got %+v", out)
	}
}

// TestGet_UnknownDevice verifies lookups on unseen devices return false.
func TestGet_UnknownDevice(t *testing.T) {
	var p Presets
	if _, ok := p.Get(`\\.\DISPLAY1`); ok {
		t.Fatalf("expected not found on empty presets")
	}
}
