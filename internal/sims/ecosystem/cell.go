package ecosystem

import "fmt"

// Kind enumerates what occupies a grid cell.
type Kind uint8

const (
	Empty Kind = iota
	Plant
	Herbivore
	Carnivore
)

var kindTokens = [...]string{
	Empty:     " ",
	Plant:     "P",
	Herbivore: "H",
	Carnivore: "C",
}

// String returns the single-character wire token for k.
func (k Kind) String() string {
	if int(k) < len(kindTokens) {
		return kindTokens[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MarshalText renders k as its wire token.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindTokens) {
		return nil, fmt.Errorf("unknown kind %d", uint8(k))
	}
	return []byte(kindTokens[k]), nil
}

// UnmarshalText parses a wire token.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, tok := range kindTokens {
		if tok == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown kind token %q", b)
}

// Cell is the state of one grid position. Energy is only meaningful for
// herbivores and carnivores; an empty cell is always the zero value.
type Cell struct {
	Kind   Kind
	Energy int
	Age    int
}

// Alive reports whether the cell holds an entity.
func (c Cell) Alive() bool { return c.Kind != Empty }

// Position addresses a cell by row and column. Coordinates are signed so
// neighbours of edge cells fall outside the grid instead of wrapping.
type Position struct {
	Row, Col int
}

// Add offsets p by d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// cross is the von Neumann neighbourhood in scan order: up, down, left, right.
var cross = [4]Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// moore is the 8-cell neighbourhood in row-major scan order.
var moore = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
