package main

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"torus-life/internal/core"
	"torus-life/internal/sims/life"
)

// seedResult describes one seed's run. settledAt is the generation at which
// a repeat was first seen, or -1 when the run hit the generation cap.
type seedResult struct {
	seed       int64
	initialPop int
	finalPop   int
	peakPop    int
	settledAt  int
	period     int
}

func (r seedResult) outcome() string {
	switch {
	case r.settledAt < 0:
		return "unsettled"
	case r.finalPop == 0:
		return "extinct"
	case r.period == 1:
		return "still"
	}
	return fmt.Sprintf("period %d", r.period)
}

func (r seedResult) String() string {
	settled := "-"
	if r.settledAt >= 0 {
		settled = fmt.Sprint(r.settledAt)
	}
	return fmt.Sprintf("seed=%d pop=%d->%d peak=%d settled=%s outcome=%s",
		r.seed, r.initialPop, r.finalPop, r.peakPop, settled, r.outcome())
}

// runSeed evolves one grid until it repeats a recent generation or maxGen
// steps have run.
func runSeed(cfg life.Config, seed int64, maxGen int) (seedResult, error) {
	cfg.Seed = seed
	l, err := cfg.Build()
	if err != nil {
		return seedResult{}, err
	}
	history := core.NewHistory(core.DefaultHistory)
	history.Observe(l.Cells())

	res := seedResult{seed: seed, initialPop: l.Population(), settledAt: -1}
	res.peakPop = res.initialPop
	for gen := 1; gen <= maxGen; gen++ {
		l.Step()
		pop := l.Population()
		if pop > res.peakPop {
			res.peakPop = pop
		}
		if period := history.Observe(l.Cells()); period > 0 {
			res.settledAt = gen
			res.period = period
			break
		}
	}
	res.finalPop = l.Population()
	return res, nil
}

// sweep runs every seed on its own grid with at most workers grids in
// flight. Results are ordered by seed.
func sweep(ctx context.Context, cfg life.Config, seeds []int64, workers, maxGen int) ([]seedResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]seedResult, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runSeed(cfg, seed, maxGen)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool { return results[i].seed < results[j].seed })
	return results, nil
}

type summary struct {
	outcomes   map[string]int
	settled    int
	meanSettle float64
	longest    seedResult
	hasLongest bool
}

func summarize(results []seedResult) summary {
	s := summary{outcomes: map[string]int{}}
	total := 0
	for _, r := range results {
		s.outcomes[r.outcome()]++
		if r.settledAt < 0 {
			continue
		}
		s.settled++
		total += r.settledAt
		if !s.hasLongest || r.settledAt > s.longest.settledAt {
			s.longest = r
			s.hasLongest = true
		}
	}
	if s.settled > 0 {
		s.meanSettle = float64(total) / float64(s.settled)
	}
	return s
}
