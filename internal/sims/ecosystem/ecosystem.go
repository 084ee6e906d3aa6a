package ecosystem

import (
	"ecosim/internal/core"
	pcore "ecosim/pkg/core"
)

// World owns the grid and drives the predator-prey rules one tick at a time.
// It is not safe for concurrent use.
type World struct {
	cfg   Config
	rules Rules

	w, h int

	grid *core.Grid[Cell]
	prev *core.Grid[Cell]
	done *core.Grid[bool]

	display []uint8
	tick    int

	rng *pcore.RNG
	src Source
}

// New returns a world with the default configuration.
func New() *World {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns an empty world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	return newWorld(cfg, DefaultRules())
}

func newWorld(cfg Config, rules Rules) *World {
	if cfg.Scheduler == "" {
		cfg.Scheduler = SchedulerSequential
	}
	rng := pcore.NewRNG(cfg.Seed)
	return &World{
		cfg:     cfg,
		rules:   rules,
		w:       GridSize,
		h:       GridSize,
		grid:    core.NewGrid[Cell](GridSize, GridSize),
		prev:    core.NewGrid[Cell](GridSize, GridSize),
		done:    core.NewGrid[bool](GridSize, GridSize),
		display: make([]uint8, GridSize*GridSize),
		rng:     rng,
		src:     rng,
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "ecosystem" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the display buffer: one Kind per cell, row-major.
func (w *World) Cells() []uint8 { return w.display }

// Ticks returns the number of ticks since the grid was last seeded.
func (w *World) Ticks() int { return w.tick }

// Rules returns the rule constants the world runs with.
func (w *World) Rules() Rules { return w.rules }

// Config returns the world configuration.
func (w *World) Config() Config { return w.cfg }

// Cell returns the cell at (row, col).
func (w *World) Cell(row, col int) (Cell, error) {
	return w.grid.Get(col, row)
}

// SetCell overwrites the cell at (row, col).
func (w *World) SetCell(row, col int, c Cell) error {
	if err := w.grid.Set(col, row, c); err != nil {
		return err
	}
	w.display[w.grid.Index(col, row)] = uint8(c.Kind)
	return nil
}

// Clear empties every cell and resets the tick counter.
func (w *World) Clear() {
	w.grid.Reset(Cell{})
	w.tick = 0
	w.rebuildDisplay()
}

// Reset reseeds the RNG and repopulates the grid with the configured initial
// population. A zero seed reuses the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = pcore.NewRNG(effective)
	w.src = w.rng
	pop := w.cfg.Initial
	if err := w.Seed(pop.Plants, pop.Herbivores, pop.Carnivores); err != nil {
		w.Clear()
	}
}

// Step advances the simulation by one tick.
func (w *World) Step() { w.Tick() }

// Tick advances the simulation by one step. Every entity alive when the tick
// starts gets exactly one aging and behaviour pass unless it is eaten before
// its turn; entities born or moved during the tick are not visited again.
func (w *World) Tick() {
	w.prev.CopyFrom(w.grid)
	w.done.Reset(false)

	switch w.cfg.Scheduler {
	case SchedulerBanded:
		w.tickBanded()
	default:
		w.sweep(0, w.h, w.src)
	}

	w.done.Reset(false)
	w.tick++
	w.rebuildDisplay()
}

// sweep visits rows [from, to) in row-major order.
func (w *World) sweep(from, to int, src Source) {
	p := pass{rules: &w.rules, grid: w.grid, done: w.done, rnd: src}
	for row := from; row < to; row++ {
		for col := 0; col < w.w; col++ {
			if !w.prev.At(col, row).Alive() || w.done.At(col, row) {
				continue
			}
			p.visit(Position{Row: row, Col: col})
		}
	}
}

// Population counts the current grid by kind.
func (w *World) Population() Population {
	pop := Population{Tick: w.tick}
	for _, c := range w.grid.Cells() {
		switch c.Kind {
		case Plant:
			pop.Plants++
		case Herbivore:
			pop.Herbivores++
		case Carnivore:
			pop.Carnivores++
		default:
			pop.Empty++
		}
	}
	return pop
}

// Stats reports the population as labelled counters.
func (w *World) Stats() []core.Stat {
	pop := w.Population()
	return []core.Stat{
		{Label: "Tick", Value: pop.Tick},
		{Label: "Plants", Value: pop.Plants},
		{Label: "Herbivores", Value: pop.Herbivores},
		{Label: "Carnivores", Value: pop.Carnivores},
	}
}

func (w *World) rebuildDisplay() {
	for i, c := range w.grid.Cells() {
		w.display[i] = uint8(c.Kind)
	}
}

func init() {
	core.Register("ecosystem", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
