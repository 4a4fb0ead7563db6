package main

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestRunAllTrialsAggregates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Students = 20
	cfg.Infectiousness = 0.3
	cfg.SimLength = 9
	cfg.Trials = 7
	cfg.Seed = 1234
	cfg.Workers = 3

	ctrl := testController(cfg)
	rows, err := ctrl.RunAllTrials(context.Background())
	if err != nil {
		t.Fatalf("RunAllTrials: %v", err)
	}
	if want := cfg.Trials * (cfg.SimLength + 1); len(rows) != want {
		t.Fatalf("rows: want=%d got=%d", want, len(rows))
	}

	for i, row := range rows {
		wantTrial := i/(cfg.SimLength+1) + 1
		wantDay := i % (cfg.SimLength + 1)
		if row.Trial != wantTrial || row.Day != wantDay {
			t.Fatalf("row %d: want (trial %d, day %d) got (%d, %d)", i, wantTrial, wantDay, row.Trial, row.Day)
		}
		if row.RunID != ctrl.RunID() {
			t.Fatalf("row %d: run id want=%s got=%s", i, ctrl.RunID(), row.RunID)
		}
		if row.Day == 0 && (row.Infected != 1 || row.Contagious != 1) {
			t.Fatalf("trial %d day 0: want 1/1 got %d/%d", row.Trial, row.Infected, row.Contagious)
		}
	}
	if len(ctrl.Results()) != len(rows) {
		t.Fatalf("Results: want=%d got=%d", len(rows), len(ctrl.Results()))
	}
}

func TestRunAllTrialsReproducible(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Students = 30
	cfg.Infectiousness = 0.2
	cfg.MaskedFraction = 0.5
	cfg.SimLength = 15
	cfg.Trials = 12
	cfg.Seed = 2024

	run := func(workers int) []DayStats {
		c := cfg
		c.Workers = workers
		rows, err := testController(c).RunAllTrials(context.Background())
		if err != nil {
			t.Fatalf("RunAllTrials(workers=%d): %v", workers, err)
		}
		return rows
	}

	a, b, c := run(1), run(1), run(5)
	for i := range a {
		a[i].RunID, b[i].RunID, c[i].RunID = uuid.Nil, uuid.Nil, uuid.Nil
		if a[i] != b[i] {
			t.Fatalf("row %d differs between identical runs: %+v vs %+v", i, a[i], b[i])
		}
		if a[i] != c[i] {
			t.Fatalf("row %d differs across worker counts: %+v vs %+v", i, a[i], c[i])
		}
	}
}

func TestRunAllTrialsCancelled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Trials = 50
	cfg.Seed = 1

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testController(cfg).RunAllTrials(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled run: want context.Canceled got %v", err)
	}
}

func TestTrialSeedDistinct(t *testing.T) {
	seen := make(map[int64]int)
	for trial := 1; trial <= 1000; trial++ {
		s := trialSeed(77, trial)
		if prev, ok := seen[s]; ok {
			t.Fatalf("trials %d and %d share seed %d", prev, trial, s)
		}
		seen[s] = trial
	}
	if trialSeed(77, 3) != trialSeed(77, 3) {
		t.Fatalf("trialSeed not deterministic")
	}
}

func TestRunAllTrialsClockSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Trials = 2
	cfg.SimLength = 3
	cfg.Seed = 0

	ctrl := testController(cfg)
	if _, err := ctrl.RunAllTrials(context.Background()); err != nil {
		t.Fatalf("RunAllTrials: %v", err)
	}
	if ctrl.cfg.Seed == 0 {
		t.Fatalf("seed: want clock seed recorded, got 0")
	}
}
