package combat

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"vengeance/internal/util"
)

type BatchConfig struct {
	Runs    int
	Workers int
	Seed    int64
	Ticks   int
	Rules   Rules
	Log     *slog.Logger
}

type BatchSummary struct {
	BatchID            string             `json:"batch_id"`
	Runs               int                `json:"runs"`
	Ticks              int                `json:"ticks"`
	AvgEvents          float64            `json:"avg_events"`
	AvgCriticals       float64            `json:"avg_criticals"`
	CritRate           float64            `json:"crit_rate"`
	AvgTotalDamage     float64            `json:"avg_total_damage"`
	AvgDamageByActor   map[string]float64 `json:"avg_damage_by_actor"`
	DamageShareByActor map[string]float64 `json:"damage_share_by_actor"`
}

// RunBatch runs cfg.Runs independent simulations. Each run gets fresh actors
// from build, its own Ledger and a random source seeded with Seed+i, so
// results do not depend on worker scheduling.
func RunBatch(ctx context.Context, cfg BatchConfig, build func() []*Actor) (BatchSummary, error) {
	if cfg.Runs <= 0 {
		return BatchSummary{}, fmt.Errorf("batch: runs must be positive, got %d", cfg.Runs)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 8
	}
	logger := cfg.Log
	if logger == nil {
		logger = slog.Default()
	}

	var (
		mu      sync.Mutex
		events  int
		crits   int
		attacks int
		total   float64
		byActor = map[string]float64{}
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < cfg.Runs; i++ {
		i := i // per-iteration copy; go.mod targets go 1.21 loop semantics
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			env := NewEnv(util.New(cfg.Seed+int64(i)), NewLedger())
			env.Rules = cfg.Rules.orDefault()
			env.Log = logger
			res := Run(env, cfg.Ticks, build(), false)

			mu.Lock()
			defer mu.Unlock()
			events += res.Events
			crits += res.Criticals
			attacks += res.Attacks
			total += res.TotalDamage
			for name, dmg := range res.DamageByActor {
				byActor[name] += dmg
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchSummary{}, fmt.Errorf("batch: %w", err)
	}

	n := float64(cfg.Runs)
	sum := BatchSummary{
		BatchID:            uuid.NewString(),
		Runs:               cfg.Runs,
		Ticks:              cfg.Ticks,
		AvgEvents:          float64(events) / n,
		AvgCriticals:       float64(crits) / n,
		AvgTotalDamage:     total / n,
		AvgDamageByActor:   map[string]float64{},
		DamageShareByActor: map[string]float64{},
	}
	if attacks > 0 {
		sum.CritRate = float64(crits) / float64(attacks)
	}
	for name, dmg := range byActor {
		sum.AvgDamageByActor[name] = dmg / n
		if total > 0 {
			sum.DamageShareByActor[name] = dmg / total
		}
	}
	logger.Info("batch finished", "batch_id", sum.BatchID, "runs", cfg.Runs, "workers", workers)
	return sum, nil
}
