package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"torus-life/internal/sims/life"
)

func main() {
	n := flag.Int("n", life.DefaultSize, "grid size (cells per side)")
	density := flag.Float64("density", life.DefaultDensity, "probability a seeded cell starts alive")
	rule := flag.String("rule", life.Conway.String(), "birth/survival rule in B/S notation")
	seeds := flag.Int("seeds", 64, "number of seeds to run")
	seedStart := flag.Int64("seed-start", 1, "first seed")
	maxGen := flag.Int("max-gen", 5000, "generations to run before giving up on a seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of grids simulated concurrently")
	flag.Parse()

	cfg, err := life.FromMap(map[string]string{
		"n":       fmt.Sprint(*n),
		"density": fmt.Sprint(*density),
		"rule":    *rule,
	})
	if err != nil {
		log.Fatalf("invalid settings: %v", err)
	}

	list := make([]int64, *seeds)
	for i := range list {
		list[i] = *seedStart + int64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d seeds on %dx%d %s (density %.2f, %d workers, max %d generations)\n",
		len(list), cfg.Size, cfg.Size, cfg.Rule, cfg.Density, *workers, *maxGen)

	start := time.Now()
	results, err := sweep(ctx, cfg, list, *workers, *maxGen)
	if err != nil {
		log.Fatalf("sweep failed: %v", err)
	}
	elapsed := time.Since(start)

	for _, res := range results {
		fmt.Println(res)
	}

	s := summarize(results)
	names := make([]string, 0, len(s.outcomes))
	for name := range s.outcomes {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("\nSummary (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, name := range names {
		fmt.Printf("  %-10s %d\n", name, s.outcomes[name])
	}
	if s.hasLongest {
		fmt.Printf("  mean settle generation %.1f, longest: %s\n", s.meanSettle, s.longest)
	}
}
