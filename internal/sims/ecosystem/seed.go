package ecosystem

import (
	"errors"
	"fmt"

	"ecosim/internal/core"
)

var (
	// ErrTooManyEntities reports a seeding request larger than the grid.
	ErrTooManyEntities = errors.New("too many entities")
	// ErrInvalidCount reports a negative seeding count.
	ErrInvalidCount = errors.New("invalid entity count")
)

// Seed replaces the grid with a fresh random placement of the requested
// entities and resets the tick counter. On error the current grid is left
// untouched.
func (w *World) Seed(plants, herbivores, carnivores int) error {
	if plants < 0 || herbivores < 0 || carnivores < 0 {
		return fmt.Errorf("seed %d/%d/%d: %w", plants, herbivores, carnivores, ErrInvalidCount)
	}
	capacity := w.w * w.h
	// Compared piecewise so huge counts cannot wrap the sum.
	if plants > capacity || herbivores > capacity-plants || carnivores > capacity-plants-herbivores {
		return fmt.Errorf("seed %d/%d/%d on %d cells: %w", plants, herbivores, carnivores, capacity, ErrTooManyEntities)
	}

	next := core.NewGrid[Cell](w.w, w.h)
	w.place(next, plants, Cell{Kind: Plant})
	w.place(next, herbivores, Cell{Kind: Herbivore, Energy: w.rules.InitialEnergy})
	w.place(next, carnivores, Cell{Kind: Carnivore, Energy: w.rules.InitialEnergy})

	w.grid.CopyFrom(next)
	w.tick = 0
	w.rebuildDisplay()
	return nil
}

// place puts n copies of c on uniformly random empty cells, re-rolling on
// collision. The caller guarantees enough empty cells exist.
func (w *World) place(g *core.Grid[Cell], n int, c Cell) {
	for i := 0; i < n; i++ {
		for {
			x, y := w.rng.IntN(g.W), w.rng.IntN(g.H)
			if g.At(x, y).Alive() {
				continue
			}
			g.Put(x, y, c)
			break
		}
	}
}
