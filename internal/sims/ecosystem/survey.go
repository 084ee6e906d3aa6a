package ecosystem

import (
	"sync"
)

// RunResult captures population telemetry from one seeded run.
type RunResult struct {
	Seed int64
	// Ticks is the number of ticks actually simulated.
	Ticks int
	// Tick at which the last member of each animal kind died, 0 if it
	// survived the run or was never present.
	HerbivoresExtinct int
	CarnivoresExtinct int
	// Peak populations observed after any tick, including the seeded state.
	PeakPlants     int
	PeakHerbivores int
	PeakCarnivores int
	Final          Population
}

// Collapsed reports whether the run had animals and lost all of them.
func (r RunResult) Collapsed() bool {
	if r.PeakHerbivores == 0 && r.PeakCarnivores == 0 {
		return false
	}
	return r.Final.Herbivores == 0 && r.Final.Carnivores == 0
}

// SimulateRun seeds a world from cfg and advances it ticks times, recording
// extinction ticks and peak populations. A run stops early once the grid is
// empty.
func SimulateRun(cfg Config, ticks int) (RunResult, error) {
	res := RunResult{Seed: cfg.Seed}
	w := NewWithConfig(cfg)
	if err := w.Seed(cfg.Initial.Plants, cfg.Initial.Herbivores, cfg.Initial.Carnivores); err != nil {
		return res, err
	}

	observe := func(p Population) {
		res.PeakPlants = max(res.PeakPlants, p.Plants)
		res.PeakHerbivores = max(res.PeakHerbivores, p.Herbivores)
		res.PeakCarnivores = max(res.PeakCarnivores, p.Carnivores)
		if p.Herbivores == 0 && res.PeakHerbivores > 0 && res.HerbivoresExtinct == 0 {
			res.HerbivoresExtinct = p.Tick
		}
		if p.Carnivores == 0 && res.PeakCarnivores > 0 && res.CarnivoresExtinct == 0 {
			res.CarnivoresExtinct = p.Tick
		}
	}

	pop := w.Population()
	observe(pop)
	for i := 0; i < ticks && pop.Total() > 0; i++ {
		w.Tick()
		pop = w.Population()
		observe(pop)
	}
	res.Ticks = pop.Tick
	res.Final = pop
	return res, nil
}

// Survey runs count independent simulations on a pool of workers. Run i uses
// seed base.Seed+i; results are returned in seed order.
func Survey(base Config, count, ticks, workers int) ([]RunResult, error) {
	if count <= 0 {
		return nil, nil
	}
	workers = max(1, min(workers, count))

	type outcome struct {
		idx int
		res RunResult
		err error
	}

	jobs := make(chan int)
	results := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				cfg := base
				cfg.Seed = base.Seed + int64(idx)
				res, err := SimulateRun(cfg, ticks)
				results <- outcome{idx: idx, res: res, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < count; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	out := make([]RunResult, count)
	var firstErr error
	for o := range results {
		if o.err != nil && firstErr == nil {
			firstErr = o.err
		}
		out[o.idx] = o.res
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
