// Package facade owns the grid, heatmap, and parameters for a BeeClust
// simulation and exposes the three core kernels as methods. It is the
// boundary between well-formed kernel inputs (internal/sim assumes
// this) and whatever a driver hands it.
package facade

import (
	"github.com/pkg/errors"

	"github.com/cvut/beeclust/internal/core"
	"github.com/cvut/beeclust/internal/rng"
	"github.com/cvut/beeclust/internal/sim"
)

// Config collects the parameters a Simulation is constructed from.
type Config struct {
	Rows, Cols int
	Heat       core.HeatParams
	Tick       core.TickParams
	Seed       *uint64 // nil: seed from the wall clock
}

// Simulation owns a grid and heatmap and drives the kernels in
// internal/sim against them. It is the last line of validation before
// a malformed configuration reaches kernel code that assumes
// well-formed input.
type Simulation struct {
	grid    *core.Grid
	heatmap *core.Heatmap
	heat    core.HeatParams
	tick    core.TickParams
	rng     rng.Source
}

// New validates cfg and constructs an empty Simulation (all cells
// CodeEmpty). Callers populate the grid via Place before the first Tick
// or RecalculateHeat call.
func New(cfg Config) (*Simulation, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, errors.Errorf("facade: grid dimensions must be positive, got %dx%d", cfg.Rows, cfg.Cols)
	}
	if err := validateProbability("p_changedir", cfg.Tick.PChangeDir); err != nil {
		return nil, err
	}
	if err := validateProbability("p_wall", cfg.Tick.PWall); err != nil {
		return nil, err
	}
	if err := validateProbability("p_meet", cfg.Tick.PMeet); err != nil {
		return nil, err
	}
	if cfg.Tick.MinWait < 0 {
		return nil, errors.Errorf("facade: min_wait must be non-negative, got %d", cfg.Tick.MinWait)
	}

	var source rng.Source
	if cfg.Seed != nil {
		source = rng.NewSeeded(*cfg.Seed, *cfg.Seed^0x9e3779b97f4a7c15)
	} else {
		source = rng.New()
	}

	return &Simulation{
		grid:    core.NewGrid(cfg.Rows, cfg.Cols),
		heatmap: core.NewHeatmap(cfg.Rows, cfg.Cols),
		heat:    cfg.Heat,
		tick:    cfg.Tick,
		rng:     source,
	}, nil
}

func validateProbability(name string, p float64) error {
	if p < 0 || p > 1 {
		return errors.Errorf("facade: %s must be in [0,1], got %v", name, p)
	}
	return nil
}

// Grid exposes the backing grid for placement of bees, walls, heaters,
// and coolers prior to simulation.
func (s *Simulation) Grid() *core.Grid { return s.grid }

// Heatmap exposes the current heatmap, last written by RecalculateHeat.
func (s *Simulation) Heatmap() *core.Heatmap { return s.heatmap }

// Place writes a boundary Cell at (row, col), rejecting out-of-bounds
// coordinates rather than letting a kernel see a programming error.
func (s *Simulation) Place(row, col int, cell core.Cell) error {
	if !s.grid.InBounds(row, col) {
		return errors.Errorf("facade: Place(%d,%d) out of bounds for %dx%d grid", row, col, s.grid.Rows, s.grid.Cols)
	}
	s.grid.Set(row, col, cell.ToCode())
	return nil
}

// RecalculateHeat derives a fresh heatmap from the current grid's
// heater, cooler, and wall layout and stores the result.
func (s *Simulation) RecalculateHeat() *core.Heatmap {
	return sim.RecalculateHeat(s.heatmap, s.grid, s.heat)
}

// Swarms partitions the current grid's bees into 4-connected components.
func (s *Simulation) Swarms() [][]sim.Coord {
	return sim.Swarms(s.grid)
}

// Tick advances the simulation by one discrete time step, returning
// the number of bees that moved.
func (s *Simulation) Tick() int {
	return sim.Tick(s.grid, s.heatmap, s.tick, s.rng)
}

// BeeCount reports the current number of bee-occupied cells.
func (s *Simulation) BeeCount() int {
	return s.grid.CountBees()
}
