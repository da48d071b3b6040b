package clouds

import (
	"log/slog"
	"strconv"

	"github.com/SKittan/3DvoxGen/internal/compute"
)

// Zone describes one elliptical probability volume. A cell at (x, y, z)
// belongs to the formation region when
//
//	(x-cx)²/fx + (y-cy)²/fy + (z-cz)²/fz <= radius + overlap
//
// and to the extinction region when the distance exceeds radius - overlap.
// The band where both hold is intentional: clouds both form and dissolve in
// that shell.
type Zone struct {
	CenterX float64
	CenterY float64
	CenterZ float64

	StretchX float64
	StretchY float64
	StretchZ float64

	// Probabilities in basis points: 0 is 0.00%, 10000 is 100.00%.
	PHum int
	PAct int
	PExt int

	Radius  float64
	Overlap float64
}

// Params holds the seeding zones applied on Reset.
type Params struct {
	Zones []Zone
}

// Config controls the cloud simulation dimensions and seeding.
type Config struct {
	Width  int
	Depth  int
	Height int

	Seed int64

	// Backend schedules whole-array kernels. Nil selects the serial backend.
	Backend compute.Backend

	// Logger receives clamp diagnostics from InitElliptic. Nil selects
	// slog.Default().
	Logger *slog.Logger

	Params Params
}

// DefaultConfig returns the standard configuration: a 100³ volume with a
// single storm ellipse at its center.
func DefaultConfig() Config {
	return Config{
		Width:  100,
		Depth:  100,
		Height: 100,
		Seed:   1337,
		Params: Params{
			Zones: []Zone{
				{
					CenterX: 50, CenterY: 50, CenterZ: 50,
					StretchX: 5, StretchY: 5, StretchZ: 1,
					PHum: 100, PAct: 1, PExt: 500,
					Radius: 10, Overlap: 10,
				},
			},
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Zone keys apply to the first seeding zone.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["d"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Depth = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	zone := &c.Params.Zones[0]
	if v, ok := cfg["c_x"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			zone.CenterX = parsed
		}
	}
	if v, ok := cfg["c_y"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			zone.CenterY = parsed
		}
	}
	if v, ok := cfg["c_z"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			zone.CenterZ = parsed
		}
	}
	if v, ok := cfg["f_x"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			zone.StretchX = parsed
		}
	}
	if v, ok := cfg["f_y"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			zone.StretchY = parsed
		}
	}
	if v, ok := cfg["f_z"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			zone.StretchZ = parsed
		}
	}
	if v, ok := cfg["p_hum"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			zone.PHum = parsed
		}
	}
	if v, ok := cfg["p_act"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			zone.PAct = parsed
		}
	}
	if v, ok := cfg["p_ext"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			zone.PExt = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			zone.Radius = parsed
		}
	}
	if v, ok := cfg["overlap"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			zone.Overlap = parsed
		}
	}
	return c
}
