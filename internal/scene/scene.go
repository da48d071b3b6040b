// Package scene loads simulation scene files: the grid dimensions, the
// elliptical probability zones to seed, and run settings.
package scene

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SKittan/3DvoxGen/internal/sims/clouds"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Grid holds the volume dimensions.
type Grid struct {
	Width  int `yaml:"width"`
	Depth  int `yaml:"depth"`
	Height int `yaml:"height"`
}

// Zone is one elliptical probability volume in scene-file form.
type Zone struct {
	Center  [3]float64 `yaml:"center"`
	Stretch [3]float64 `yaml:"stretch"`
	PHum    int        `yaml:"p_hum"`
	PAct    int        `yaml:"p_act"`
	PExt    int        `yaml:"p_ext"`
	Radius  float64    `yaml:"radius"`
	Overlap float64    `yaml:"overlap"`
}

// Scene is a full simulation description.
type Scene struct {
	Grid    Grid   `yaml:"grid"`
	Seed    int64  `yaml:"seed"`
	Backend string `yaml:"backend"`
	Steps   int    `yaml:"steps"`
	Zones   []Zone `yaml:"zones"`
}

// Default returns the embedded default scene.
func Default() Scene {
	var s Scene
	if err := yaml.Unmarshal(defaultsYAML, &s); err != nil {
		panic(fmt.Sprintf("scene: embedded defaults invalid: %v", err))
	}
	return s
}

// Load reads a scene file, starting from the embedded defaults so omitted
// fields keep their default values. An empty path returns the defaults.
func Load(path string) (Scene, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("scene: parsing %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

func (s Scene) validate() error {
	if s.Grid.Width <= 0 || s.Grid.Depth <= 0 || s.Grid.Height <= 0 {
		return fmt.Errorf("scene: grid dimensions must be positive, got %dx%dx%d",
			s.Grid.Width, s.Grid.Depth, s.Grid.Height)
	}
	if s.Steps < 0 {
		return fmt.Errorf("scene: steps must be non-negative, got %d", s.Steps)
	}
	return nil
}

// CloudZones converts the scene zones into engine seeding zones. Out-of-range
// zone values are not validated here; the engine clamps them with
// diagnostics.
func (s Scene) CloudZones() []clouds.Zone {
	zones := make([]clouds.Zone, len(s.Zones))
	for i, z := range s.Zones {
		zones[i] = clouds.Zone{
			CenterX:  z.Center[0],
			CenterY:  z.Center[1],
			CenterZ:  z.Center[2],
			StretchX: z.Stretch[0],
			StretchY: z.Stretch[1],
			StretchZ: z.Stretch[2],
			PHum:     z.PHum,
			PAct:     z.PAct,
			PExt:     z.PExt,
			Radius:   z.Radius,
			Overlap:  z.Overlap,
		}
	}
	return zones
}
