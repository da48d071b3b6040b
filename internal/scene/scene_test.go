package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SKittan/3DvoxGen/internal/sims/clouds"
)

func TestDefaultScene(t *testing.T) {
	s := Default()
	if s.Grid.Width != 100 || s.Grid.Depth != 100 || s.Grid.Height != 100 {
		t.Fatalf("default grid = %+v, want 100x100x100", s.Grid)
	}
	if s.Steps != 20 {
		t.Fatalf("default steps = %d, want 20", s.Steps)
	}
	if len(s.Zones) != 1 {
		t.Fatalf("default zones = %d, want 1", len(s.Zones))
	}
	zone := s.Zones[0]
	if zone.PHum != 100 || zone.PAct != 1 || zone.PExt != 500 {
		t.Fatalf("default zone probabilities = %d/%d/%d, want 100/1/500", zone.PHum, zone.PAct, zone.PExt)
	}
	if zone.Radius != 10 || zone.Overlap != 10 {
		t.Fatalf("default zone radius/overlap = %g/%g, want 10/10", zone.Radius, zone.Overlap)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	content := `
grid:
  width: 32
  depth: 24
  height: 16
steps: 5
zones:
  - center: [16, 12, 8]
    stretch: [2, 2, 1]
    p_hum: 50
    p_act: 2
    p_ext: 100
    radius: 4
    overlap: 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing scene: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Grid.Width != 32 || s.Grid.Depth != 24 || s.Grid.Height != 16 {
		t.Fatalf("grid = %+v, want 32x24x16", s.Grid)
	}
	if s.Steps != 5 {
		t.Fatalf("steps = %d, want 5", s.Steps)
	}
	// Fields absent from the file keep their defaults.
	if s.Seed != 1337 {
		t.Fatalf("seed = %d, want default 1337", s.Seed)
	}
	if s.Backend != "serial" {
		t.Fatalf("backend = %q, want default serial", s.Backend)
	}

	want := []clouds.Zone{{
		CenterX: 16, CenterY: 12, CenterZ: 8,
		StretchX: 2, StretchY: 2, StretchZ: 1,
		PHum: 50, PAct: 2, PExt: 100,
		Radius: 4, Overlap: 2,
	}}
	if diff := cmp.Diff(want, s.CloudZones()); diff != "" {
		t.Fatalf("zones mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsBadGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	content := `
grid:
  width: 0
  depth: 10
  height: 10
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing scene: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for non-positive grid dimensions")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing scene file")
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if diff := cmp.Diff(Default(), s); diff != "" {
		t.Fatalf("scene mismatch (-default +got):\n%s", diff)
	}
}
