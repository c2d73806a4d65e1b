// Command raidsim plays boss raids: one reported battle, or a batch of
// seeded battles summarised as JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"raidsim/internal/combat"
	"raidsim/internal/config"
	"raidsim/internal/observability"
	"raidsim/internal/report"
	"raidsim/internal/util"
)

func main() {
	var cfgPath, rosterPath, out, prof string
	var seed int64
	var n, workers, maxRounds int
	var record, color bool
	flag.StringVar(&cfgPath, "config", "", "config file (yaml); defaults and RAIDSIM_* env apply without it")
	flag.StringVar(&rosterPath, "roster", "", "roster file; empty uses the built-in roster")
	flag.StringVar(&out, "out", "", "output file: battle result (single) or summary (batch)")
	flag.StringVar(&prof, "profile", "", "write a profile: cpu or mem")
	flag.Int64Var(&seed, "seed", 0, "seed")
	flag.IntVar(&n, "n", 1, "number of battles")
	flag.IntVar(&workers, "workers", 8, "concurrent battles in batch mode")
	flag.IntVar(&maxRounds, "max-rounds", 1000, "round limit per battle, 0 for none")
	flag.BoolVar(&record, "log", false, "keep the event log in the single-battle result")
	flag.BoolVar(&color, "color", false, "colour the battle report")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "roster":
			cfg.Sim.Roster = rosterPath
		case "out":
			cfg.Sim.Out = out
		case "seed":
			cfg.Sim.Seed = seed
		case "n":
			cfg.Sim.Runs = n
		case "workers":
			cfg.Sim.Workers = workers
		case "max-rounds":
			cfg.Sim.MaxRounds = maxRounds
		case "log":
			cfg.Sim.Record = record
		case "color":
			cfg.Sim.Color = color
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if prof != "" {
		mode, err := profileMode(prof)
		if err != nil {
			logger.Fatal("profiling", zap.Error(err))
		}
		defer profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	roster, err := config.LoadRoster(cfg.Sim.Roster)
	if err != nil {
		logger.Fatal("loading roster", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Sim.Runs <= 1 {
		if err := runSingle(cfg.Sim, roster, logger); err != nil {
			logger.Fatal("battle", zap.Error(err))
		}
		return
	}
	if err := runBatch(ctx, cfg.Sim, roster, logger); err != nil {
		logger.Fatal("batch", zap.Error(err))
	}
}

func profileMode(name string) (func(*profile.Profile), error) {
	switch name {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	}
	return nil, fmt.Errorf("unknown profile mode %q (want cpu or mem)", name)
}

func runSingle(sim config.SimConfig, roster *config.RosterConfig, logger *zap.Logger) error {
	boss, party, err := combat.FromRoster(roster)
	if err != nil {
		return err
	}
	battle := combat.NewBattle(boss, party, combat.Options{
		Rng:       util.NewLogged(util.New(sim.Seed), logger),
		Reporter:  report.NewText(os.Stdout, sim.Color),
		Logger:    logger,
		MaxRounds: sim.MaxRounds,
		Record:    sim.Record,
	})
	res := battle.Run()
	logger.Info("battle finished",
		zap.String("id", res.ID),
		zap.String("outcome", string(res.Outcome)),
		zap.Int("rounds", res.Rounds),
		zap.Strings("survivors", res.Survivors),
	)
	if sim.Out == "" {
		return nil
	}
	if err := os.WriteFile(sim.Out, combat.MarshalPretty(res), 0644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

func runBatch(ctx context.Context, sim config.SimConfig, roster *config.RosterConfig, logger *zap.Logger) error {
	sum, err := combat.RunBatch(ctx, combat.BatchSpec{
		Roster:    roster,
		Runs:      sim.Runs,
		Workers:   sim.Workers,
		Seed:      sim.Seed,
		MaxRounds: sim.MaxRounds,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	b := combat.MarshalPretty(sum)
	if sim.Out == "" {
		fmt.Println(string(b))
		return nil
	}
	if err := os.WriteFile(sim.Out, b, 0644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	fmt.Printf("Batch %d done -> %s\n", sum.Runs, sim.Out)
	return nil
}
