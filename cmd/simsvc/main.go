package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"vengeance/internal/combat"
	"vengeance/internal/config"
	"vengeance/internal/report"
	"vengeance/internal/util"
)

var (
	cfgPath  string
	ticks    int
	seed     int64
	out      string
	actorArg string
	logLevel string
	runs     int
	workers  int
	saveLog  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simsvc",
	Short: "Tick-based combat simulation with vengeance buffs",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var level slog.Level
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation and print the event log",
	RunE:  runSingle,
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run many seeded simulations and summarise damage",
	RunE:  runBatch,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "assets/roster.yaml", "roster YAML file")
	rootCmd.PersistentFlags().IntVar(&ticks, "ticks", 0, "tick limit (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&out, "out", "", "write JSON result to file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")

	runCmd.Flags().StringVar(&actorArg, "actor", "", "print only this actor's events")
	runCmd.Flags().BoolVar(&saveLog, "log", true, "include the full event log in --out")

	batchCmd.Flags().IntVarP(&runs, "runs", "n", 100, "number of simulations")
	batchCmd.Flags().IntVar(&workers, "workers", 8, "concurrent simulations")

	rootCmd.AddCommand(runCmd, batchCmd)
}

func loadRoster() (*config.RosterConfig, error) {
	rc, err := config.LoadRoster(cfgPath)
	if err != nil {
		return nil, err
	}
	if ticks > 0 {
		rc.Ticks = ticks
	}
	if seed != 0 {
		rc.Seed = seed
	}
	return rc, nil
}

func runSingle(cmd *cobra.Command, args []string) error {
	rc, err := loadRoster()
	if err != nil {
		return err
	}
	party := combat.NewParty(rc.Specs())

	env := combat.NewEnv(util.New(rc.Seed), combat.NewLedger())
	env.Rules = rc.CombatRules()
	env.Log = slog.Default()
	res := combat.Run(env, rc.Ticks, party.Actors, saveLog)

	w := cmd.OutOrStdout()
	events := env.Ledger.Events()
	title := "All actors"
	if actorArg != "" {
		a := party.Find(actorArg)
		if a == nil {
			return fmt.Errorf("unknown actor %q (have %v)", actorArg, party.Names())
		}
		events = a.Events()
		title = a.String()
	}
	if err := report.EventLog(w, title, events); err != nil {
		return err
	}
	if err := report.Totals(w, res); err != nil {
		return err
	}

	if out != "" {
		if err := os.WriteFile(out, combat.MarshalPretty(res), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		slog.Info("result written", "path", out, "run_id", res.RunID)
	}
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	rc, err := loadRoster()
	if err != nil {
		return err
	}
	party := combat.NewParty(rc.Specs())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := combat.RunBatch(ctx, combat.BatchConfig{
		Runs:    runs,
		Workers: workers,
		Seed:    rc.Seed,
		Ticks:   rc.Ticks,
		Rules:   rc.CombatRules(),
		Log:     slog.Default(),
	}, party.Fresh)
	if err != nil {
		return err
	}
	if err := report.Batch(cmd.OutOrStdout(), sum); err != nil {
		return err
	}
	if out != "" {
		if err := os.WriteFile(out, combat.MarshalPretty(sum), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		slog.Info("summary written", "path", out, "batch_id", sum.BatchID)
	}
	return nil
}
