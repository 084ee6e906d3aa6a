package ecosystem

import "ecosim/internal/core"

// Source supplies the randomness the rules consume.
type Source interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// pass applies the per-entity rules for one tick against the live grid.
// done is the processed-set: every position written as a move target, a birth
// or a consumed prey is marked so the driver does not visit it again.
type pass struct {
	rules *Rules
	grid  *core.Grid[Cell]
	done  *core.Grid[bool]
	rnd   Source
}

func (p *pass) in(pos Position) bool { return p.grid.In(pos.Col, pos.Row) }

func (p *pass) at(pos Position) Cell { return p.grid.At(pos.Col, pos.Row) }

func (p *pass) put(pos Position, c Cell) { p.grid.Put(pos.Col, pos.Row, c) }

// claim writes c to a neighbouring cell and marks it processed.
func (p *pass) claim(pos Position, c Cell) {
	p.grid.Put(pos.Col, pos.Row, c)
	p.done.Put(pos.Col, pos.Row, true)
}

func (p *pass) chance(prob float64) bool { return p.rnd.Float64() < prob }

// shuffled returns the cross neighbourhood of pos in a fresh random order.
// Entries may lie outside the grid.
func (p *pass) shuffled(pos Position) [4]Position {
	n := cross
	p.rnd.Shuffle(len(n), func(i, j int) { n[i], n[j] = n[j], n[i] })
	for i := range n {
		n[i] = pos.Add(n[i])
	}
	return n
}

// firstEmpty returns the first in-bounds empty cell of a random ordering of
// the cross neighbourhood.
func (p *pass) firstEmpty(pos Position) (Position, bool) {
	for _, n := range p.shuffled(pos) {
		if p.in(n) && p.at(n).Kind == Empty {
			return n, true
		}
	}
	return Position{}, false
}

// visit runs one aging and behaviour pass for the entity at pos.
func (p *pass) visit(pos Position) {
	c := p.at(pos)
	if c.Kind == Empty {
		return
	}

	c.Age++
	if c.Age >= p.rules.MaxAge(c.Kind) || (c.Kind != Plant && c.Energy <= 0) {
		p.put(pos, Cell{})
		return
	}

	switch c.Kind {
	case Plant:
		p.put(pos, c)
		p.spread(pos)
	case Herbivore:
		c = p.graze(pos, c)
		c = p.reproduce(pos, c, p.rules.HerbivoreReproduction)
		p.move(pos, c, p.rules.HerbivoreMove)
	case Carnivore:
		c = p.hunt(pos, c)
		c = p.reproduce(pos, c, p.rules.CarnivoreReproduction)
		p.move(pos, c, p.rules.CarnivoreMove)
	}
}

func (p *pass) spread(pos Position) {
	if !p.chance(p.rules.PlantReproduction) {
		return
	}
	if n, ok := p.firstEmpty(pos); ok {
		p.claim(n, Cell{Kind: Plant})
	}
}

// graze eats the first plant in fixed cross order.
func (p *pass) graze(pos Position, c Cell) Cell {
	if !p.chance(p.rules.HerbivoreEat) {
		return c
	}
	for _, d := range cross {
		n := pos.Add(d)
		if p.in(n) && p.at(n).Kind == Plant {
			p.claim(n, Cell{})
			c.Energy += p.rules.PlantEnergy
			break
		}
	}
	return c
}

// hunt eats every herbivore in the Moore neighbourhood.
func (p *pass) hunt(pos Position, c Cell) Cell {
	if !p.chance(p.rules.CarnivoreEat) {
		return c
	}
	for _, d := range moore {
		n := pos.Add(d)
		if p.in(n) && p.at(n).Kind == Herbivore {
			p.claim(n, Cell{})
			c.Energy += p.rules.HerbivoreEnergy
		}
	}
	return c
}

func (p *pass) reproduce(pos Position, c Cell, prob float64) Cell {
	r := p.rules
	if c.Energy <= r.ReproductionThreshold || !p.chance(prob) || c.Energy < r.ReproductionCost {
		return c
	}
	if n, ok := p.firstEmpty(pos); ok {
		c.Energy -= r.ReproductionCost
		p.claim(n, Cell{Kind: c.Kind, Energy: r.ChildEnergy})
	}
	return c
}

// move relocates c to a random empty neighbour or writes it back in place.
func (p *pass) move(pos Position, c Cell, prob float64) {
	if p.chance(prob) {
		if n, ok := p.firstEmpty(pos); ok {
			c.Energy -= p.rules.MoveCost
			p.put(pos, Cell{})
			p.claim(n, c)
			return
		}
	}
	p.put(pos, c)
}
