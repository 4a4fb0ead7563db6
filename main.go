package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults to $CLASSROOM_CONFIG)")
	seed := flag.Int64("seed", 0, "base random seed, 0 seeds from the clock")
	trials := flag.Int("trials", 0, "override number of trials")
	out := flag.String("out", "", "override CSV output path")
	flag.Parse()

	cfg, err := LoadConfig(*configPath, func(cfg *Config) {
		if *seed != 0 {
			cfg.Seed = *seed
		}
		if *trials != 0 {
			cfg.Trials = *trials
		}
		if *out != "" {
			cfg.OutputCSV = *out
		}
	})
	if err != nil {
		// logger config is part of what failed to load
		boot := NopLogger()
		if l, lerr := NewLogger("dev"); lerr == nil {
			boot = l
		}
		boot.Fatal("load config", "error", err)
	}

	log, err := NewLogger(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl := NewController(cfg, log)
	rows, err := ctrl.RunAllTrials(ctx)
	if err != nil {
		log.Fatal("run trials", "error", err)
	}

	summary := SummarizeExperiment(Summarize(rows), cfg.Students)
	log.Info("experiment summary",
		"run_id", ctrl.RunID().String(),
		"trials", summary.Trials,
		"mean_final_infected", summary.MeanFinalInfected,
		"mean_attack_rate", summary.MeanAttackRate,
		"no_spread_fraction", summary.NoSpreadFraction,
	)

	if cfg.OutputCSV != "" {
		if err := SaveResultsCSV(cfg.OutputCSV, rows); err != nil {
			log.Fatal("save csv", "path", cfg.OutputCSV, "error", err)
		}
		log.Info("csv saved", "path", cfg.OutputCSV, "rows", len(rows))
	}

	if cfg.ResultsDSN != "" {
		store, err := OpenResultsStore(cfg.ResultsDSN)
		if err != nil {
			log.Fatal("open results store", "error", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Error("close results store", "error", err)
			}
		}()
		if err := store.SaveRun(ctx, rows); err != nil {
			log.Fatal("save results", "error", err)
		}
		log.Info("results stored", "run_id", ctrl.RunID().String(), "rows", len(rows))
	}

	log.Info("finished")
}
