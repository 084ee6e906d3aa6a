package ecosystem

import (
	"fmt"

	"ecosim/internal/core"
)

// CellView is the transport-neutral rendering of one cell.
type CellView struct {
	Type   Kind `json:"type"`
	Energy int  `json:"energy"`
	Age    int  `json:"age"`
}

// Snapshot is a row-major rendering of the whole grid.
type Snapshot [][]CellView

// Export renders g without mutating it.
func Export(g *core.Grid[Cell]) Snapshot {
	rows := make(Snapshot, g.H)
	for y := 0; y < g.H; y++ {
		row := make([]CellView, g.W)
		for x := 0; x < g.W; x++ {
			c := g.At(x, y)
			row[x] = CellView{Type: c.Kind, Energy: c.Energy, Age: c.Age}
		}
		rows[y] = row
	}
	return rows
}

// Export renders the current grid.
func (w *World) Export() Snapshot { return Export(w.grid) }

// Load replaces the grid with the contents of s and resets the tick counter.
// s must be GridSize rows of GridSize cells.
func (w *World) Load(s Snapshot) error {
	next := core.NewGrid[Cell](w.w, w.h)
	if len(s) != w.h {
		return fmt.Errorf("load %d rows into %d-row grid: %w", len(s), w.h, core.ErrOutOfBounds)
	}
	for y, row := range s {
		if len(row) != w.w {
			return fmt.Errorf("load row %d with %d cells into %d columns: %w", y, len(row), w.w, core.ErrOutOfBounds)
		}
		for x, v := range row {
			c := Cell{Kind: v.Type, Energy: v.Energy, Age: v.Age}
			switch c.Kind {
			case Empty:
				c = Cell{}
			case Plant:
				c.Energy = 0
			}
			next.Put(x, y, c)
		}
	}
	w.grid.CopyFrom(next)
	w.tick = 0
	w.rebuildDisplay()
	return nil
}
