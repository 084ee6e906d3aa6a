package ecosystem

import (
	"fmt"
	"strconv"
)

// GridSize is the fixed edge length of the square world.
const GridSize = 15

// Scheduler selects how a tick walks the grid.
type Scheduler string

const (
	// SchedulerSequential visits every cell in row-major order on one goroutine.
	SchedulerSequential Scheduler = "sequential"
	// SchedulerBanded processes non-adjacent row bands in parallel.
	SchedulerBanded Scheduler = "banded"
)

// ParseScheduler validates a scheduler name. The empty string selects the
// sequential scheduler.
func ParseScheduler(s string) (Scheduler, error) {
	switch Scheduler(s) {
	case "", SchedulerSequential:
		return SchedulerSequential, nil
	case SchedulerBanded:
		return SchedulerBanded, nil
	}
	return "", fmt.Errorf("unknown scheduler %q", s)
}

// Rules holds the fixed lifecycle, probability and energy constants.
type Rules struct {
	PlantMaxAge     int
	HerbivoreMaxAge int
	CarnivoreMaxAge int

	PlantReproduction     float64
	HerbivoreReproduction float64
	CarnivoreReproduction float64
	HerbivoreMove         float64
	CarnivoreMove         float64
	HerbivoreEat          float64
	CarnivoreEat          float64

	ReproductionThreshold int
	ReproductionCost      int
	ChildEnergy           int
	MoveCost              int
	PlantEnergy           int
	HerbivoreEnergy       int
	InitialEnergy         int
}

// DefaultRules returns the rule set every world runs with.
func DefaultRules() Rules {
	return Rules{
		PlantMaxAge:     10,
		HerbivoreMaxAge: 50,
		CarnivoreMaxAge: 80,

		PlantReproduction:     0.2,
		HerbivoreReproduction: 0.075,
		CarnivoreReproduction: 0.025,
		HerbivoreMove:         0.7,
		CarnivoreMove:         0.5,
		HerbivoreEat:          0.9,
		CarnivoreEat:          1.0,

		ReproductionThreshold: 20,
		ReproductionCost:      10,
		ChildEnergy:           20,
		MoveCost:              5,
		PlantEnergy:           30,
		HerbivoreEnergy:       20,
		InitialEnergy:         100,
	}
}

// MaxAge returns the age at which an entity of kind k dies.
func (r Rules) MaxAge(k Kind) int {
	switch k {
	case Plant:
		return r.PlantMaxAge
	case Herbivore:
		return r.HerbivoreMaxAge
	case Carnivore:
		return r.CarnivoreMaxAge
	}
	return 0
}

// Population counts entities by kind.
type Population struct {
	Tick       int `json:"tick"`
	Plants     int `json:"plants"`
	Herbivores int `json:"herbivores"`
	Carnivores int `json:"carnivores"`
	Empty      int `json:"empty"`
}

// Total returns the number of living entities.
func (p Population) Total() int { return p.Plants + p.Herbivores + p.Carnivores }

// Config controls seeding and scheduling of a world.
type Config struct {
	Seed      int64
	Scheduler Scheduler

	// Initial is the population Reset seeds.
	Initial Population
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:      1337,
		Scheduler: SchedulerSequential,
		Initial:   Population{Plants: 60, Herbivores: 20, Carnivores: 5},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Invalid values are ignored and leave the default in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scheduler"]; ok {
		if parsed, err := ParseScheduler(v); err == nil {
			c.Scheduler = parsed
		}
	}
	if v, ok := cfg["plants"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Initial.Plants = parsed
		}
	}
	if v, ok := cfg["herbivores"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Initial.Herbivores = parsed
		}
	}
	if v, ok := cfg["carnivores"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Initial.Carnivores = parsed
		}
	}
	return c
}
