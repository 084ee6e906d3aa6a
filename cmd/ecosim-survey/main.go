package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"ecosim/internal/sims/ecosystem"
)

func main() {
	runs := flag.Int("runs", 64, "number of seeded runs")
	ticks := flag.Int("ticks", 500, "ticks to simulate per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "seed of the first run; run i uses seed+i")
	plants := flag.Int("plants", 60, "initial plants")
	herbivores := flag.Int("herbivores", 20, "initial herbivores")
	carnivores := flag.Int("carnivores", 5, "initial carnivores")
	scheduler := flag.String("scheduler", string(ecosystem.SchedulerSequential), "tick scheduler: sequential or banded")
	flag.Parse()

	sched, err := ecosystem.ParseScheduler(*scheduler)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg := ecosystem.DefaultConfig()
	cfg.Seed = *seed
	cfg.Scheduler = sched
	cfg.Initial = ecosystem.Population{Plants: *plants, Herbivores: *herbivores, Carnivores: *carnivores}

	fmt.Printf("Surveying %d runs (%d workers, %d ticks, %d/%d/%d initial)\n",
		*runs, *workers, *ticks, *plants, *herbivores, *carnivores)

	start := time.Now()
	results, err := ecosystem.Survey(cfg, *runs, *ticks, *workers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	var herbDead, carnDead, collapsed int
	var herbSum, carnSum int
	for _, res := range results {
		if res.HerbivoresExtinct > 0 {
			herbDead++
			herbSum += res.HerbivoresExtinct
		}
		if res.CarnivoresExtinct > 0 {
			carnDead++
			carnSum += res.CarnivoresExtinct
		}
		if res.Collapsed() {
			collapsed++
		}
	}

	fmt.Printf("\nCarnivores extinct in %d/%d runs (mean tick %s)\n", carnDead, len(results), mean(carnSum, carnDead))
	fmt.Printf("Herbivores extinct in %d/%d runs (mean tick %s)\n", herbDead, len(results), mean(herbSum, herbDead))
	fmt.Printf("All animals extinct in %d/%d runs\n", collapsed, len(results))

	sort.Slice(results, func(i, j int) bool { return survival(results[i]) > survival(results[j]) })
	fmt.Printf("\nLongest-lived runs (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < 5; i++ {
		res := results[i]
		fmt.Printf("%2d) seed=%d ticks=%d herbExtinct=%d carnExtinct=%d peak P/H/C=%d/%d/%d final P/H/C=%d/%d/%d\n",
			i+1, res.Seed, res.Ticks, res.HerbivoresExtinct, res.CarnivoresExtinct,
			res.PeakPlants, res.PeakHerbivores, res.PeakCarnivores,
			res.Final.Plants, res.Final.Herbivores, res.Final.Carnivores)
	}
}

// survival ranks a run by how long its last animal kind held out.
func survival(r ecosystem.RunResult) int {
	if (r.PeakHerbivores > 0 && r.HerbivoresExtinct == 0) || (r.PeakCarnivores > 0 && r.CarnivoresExtinct == 0) {
		return r.Ticks + 1
	}
	return max(r.HerbivoresExtinct, r.CarnivoresExtinct)
}

func mean(sum, n int) string {
	if n == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(n))
}
