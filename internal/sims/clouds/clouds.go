// Package clouds implements a volumetric cloud-formation cellular automaton
// on a toroidal 3D grid. Humidity cells ignite next to active cells, ignited
// cells condense into permanent cloud, and elliptical probability zones drive
// stochastic formation and extinction.
//
// The rule set follows Immanuel, Deborrah and Selvaraj, "Application of
// cellular automata approach for cloud simulation and rendering",
// Chaos 24, 013125 (2014).
package clouds

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/SKittan/3DvoxGen/internal/compute"
	"github.com/SKittan/3DvoxGen/internal/core"
)

// ErrInvalidDimension reports a non-positive grid dimension at construction.
var ErrInvalidDimension = errors.New("clouds: grid dimensions must be positive")

// Sampler supplies the per-cell uniform draws consumed by the stochastic
// formation/extinction phase. Implementations fill buf with independent values
// in [0, 10000] inclusive.
type Sampler interface {
	FillBasisPoints(buf []int16)
}

// World stores all state for the cloud simulation: the humidity, activation
// and cloud fields, the coordinate grids, and the basis-point probability
// grids written by InitElliptic. Every field shares one flatten order fixed by
// core.Size.Index.
type World struct {
	cfg Config

	size   core.Size
	coords core.Coords

	hum []uint8
	act []uint8
	cld []uint8

	humNext []uint8
	actNext []uint8

	pHum []int16
	pAct []int16
	pExt []int16

	rndHum []int16
	rndAct []int16
	rndExt []int16

	sampler Sampler
	backend compute.Backend
	log     *slog.Logger
}

var _ core.Sim = (*World)(nil)

// New returns a cloud world with the provided dimensions using defaults.
func New(width, depth, height int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Depth = depth
	cfg.Height = height
	return NewWithConfig(cfg)
}

// NewWithConfig returns a cloud world configured from the provided options.
// Construction fails with ErrInvalidDimension when any dimension is not
// positive; a degenerate grid is never built.
func NewWithConfig(cfg Config) (*World, error) {
	if cfg.Width <= 0 || cfg.Depth <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%dx%d", ErrInvalidDimension, cfg.Width, cfg.Depth, cfg.Height)
	}
	size := core.Size{W: cfg.Width, D: cfg.Depth, H: cfg.Height}
	total := size.Volume()

	backend := cfg.Backend
	if backend == nil {
		backend = compute.Serial{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	w := &World{
		cfg:     cfg,
		size:    size,
		coords:  core.NewCoords(size),
		hum:     make([]uint8, total),
		act:     make([]uint8, total),
		cld:     make([]uint8, total),
		humNext: make([]uint8, total),
		actNext: make([]uint8, total),
		pHum:    make([]int16, total),
		pAct:    make([]int16, total),
		pExt:    make([]int16, total),
		rndHum:  make([]int16, total),
		rndAct:  make([]int16, total),
		rndExt:  make([]int16, total),
		sampler: core.NewRNG(cfg.Seed),
		backend: backend,
		log:     logger,
	}
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "clouds" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.size }

// Cells exposes the cloud field as the display layer.
func (w *World) Cells() []uint8 { return w.cld }

// Humidity exposes the humidity field.
func (w *World) Humidity() []uint8 { return w.hum }

// Activation exposes the activation field.
func (w *World) Activation() []uint8 { return w.act }

// Cloud exposes the dense cloud field. Together with Size it is the surface
// consumed by the voxel exporter.
func (w *World) Cloud() []uint8 { return w.cld }

// HumidityProb exposes the humidity formation probability grid.
func (w *World) HumidityProb() []int16 { return w.pHum }

// ActivationProb exposes the spontaneous ignition probability grid.
func (w *World) ActivationProb() []int16 { return w.pAct }

// ExtinctionProb exposes the cloud dissipation probability grid.
func (w *World) ExtinctionProb() []int16 { return w.pExt }

// Coords exposes the precomputed coordinate grids.
func (w *World) Coords() core.Coords { return w.coords }

// SetSampler replaces the randomness source for the stochastic phase. Tests
// use this to force deterministic draws. Reset installs a fresh seeded RNG,
// so install custom samplers after Reset.
func (w *World) SetSampler(s Sampler) {
	if s != nil {
		w.sampler = s
	}
}

// Reset clears every field, reinstalls a deterministic sampler and re-applies
// the configured seeding zones. A zero seed falls back to the config seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.sampler = core.NewRNG(effective)

	for i := range w.hum {
		w.hum[i] = 0
		w.act[i] = 0
		w.cld[i] = 0
		w.humNext[i] = 0
		w.actNext[i] = 0
		w.pHum[i] = 0
		w.pAct[i] = 0
		w.pExt[i] = 0
	}

	for _, zone := range w.cfg.Params.Zones {
		w.InitElliptic(zone)
	}
}

func init() {
	core.Register("clouds", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		// FromMap only accepts positive dimensions, so construction
		// cannot fail here.
		w, err := NewWithConfig(c)
		if err != nil {
			return nil
		}
		return w
	})
}
