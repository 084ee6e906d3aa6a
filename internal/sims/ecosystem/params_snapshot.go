package ecosystem

import (
	"strconv"

	"ecosim/internal/core"
)

// Parameters describes the world settings and the fixed rule constants.
func (w *World) Parameters() core.ParameterSnapshot {
	r := w.rules
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("size", "Grid size", w.w),
				int64Param("seed", "Seed", w.cfg.Seed),
				stringParam("scheduler", "Scheduler", string(w.cfg.Scheduler)),
			},
		},
		{
			Name:    "Lifespan",
			Summary: "Entities die once their age reaches the maximum.",
			Params: []core.Parameter{
				intParam("plant_max_age", "Plant max age", r.PlantMaxAge),
				intParam("herbivore_max_age", "Herbivore max age", r.HerbivoreMaxAge),
				intParam("carnivore_max_age", "Carnivore max age", r.CarnivoreMaxAge),
			},
		},
		{
			Name: "Probabilities",
			Params: []core.Parameter{
				floatParam("plant_reproduction", "Plant reproduction", r.PlantReproduction),
				floatParam("herbivore_reproduction", "Herbivore reproduction", r.HerbivoreReproduction),
				floatParam("carnivore_reproduction", "Carnivore reproduction", r.CarnivoreReproduction),
				floatParam("herbivore_move", "Herbivore move", r.HerbivoreMove),
				floatParam("carnivore_move", "Carnivore move", r.CarnivoreMove),
				floatParam("herbivore_eat", "Herbivore eat", r.HerbivoreEat),
				floatParam("carnivore_eat", "Carnivore eat", r.CarnivoreEat),
			},
		},
		{
			Name: "Energy",
			Params: []core.Parameter{
				intParam("initial_energy", "Initial energy", r.InitialEnergy),
				intParam("reproduction_threshold", "Reproduction threshold", r.ReproductionThreshold),
				intParam("reproduction_cost", "Reproduction cost", r.ReproductionCost),
				intParam("child_energy", "Child energy", r.ChildEnergy),
				intParam("move_cost", "Move cost", r.MoveCost),
				intParam("plant_energy", "Energy per plant eaten", r.PlantEnergy),
				intParam("herbivore_energy", "Energy per herbivore eaten", r.HerbivoreEnergy),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
