package main

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

func (c *Controller) RunID() uuid.UUID    { return c.runID }
func (c *Controller) Results() []DayStats { return c.results }

// RunAllTrials runs trials 1..cfg.Trials and returns the combined rows ordered by
// (trial, day). Every trial gets a fresh population, a fresh classroom and its own
// random stream, so trials can run on parallel workers without sharing state.
func (c *Controller) RunAllTrials(ctx context.Context) ([]DayStats, error) {
	if c.cfg.Seed == 0 {
		c.cfg.Seed = time.Now().UnixNano()
		c.log.Warn("no seed configured, seeding from the clock", "seed", c.cfg.Seed)
	}
	workers := c.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	c.log.Info("starting trials",
		"run_id", c.runID.String(),
		"trials", c.cfg.Trials,
		"students", c.cfg.Students,
		"sim_length", c.cfg.SimLength,
		"seed", c.cfg.Seed,
		"workers", workers,
	)
	start := time.Now()

	perTrial := make([][]DayStats, c.cfg.Trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range perTrial {
		trial := i + 1
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows, err := c.runTrial(trial)
			if err != nil {
				return err
			}
			perTrial[trial-1] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]DayStats, 0, c.cfg.Trials*(c.cfg.SimLength+1))
	for _, rows := range perTrial {
		for _, row := range rows {
			row.RunID = c.runID
			results = append(results, row)
		}
	}
	c.results = results

	c.log.Info("trials finished",
		"run_id", c.runID.String(),
		"rows", len(results),
		"elapsed", time.Since(start).String(),
	)
	return results, nil
}

func (c *Controller) runTrial(trial int) ([]DayStats, error) {
	rng := rand.New(rand.NewSource(trialSeed(c.cfg.Seed, trial)))
	population := c.buildStudentPopulation(rng)
	classroom := NewClassroom(population, c.cfg.SimLength, trial)

	var dayLog *Logger
	if c.cfg.LogDays {
		dayLog = c.log.With("trial", trial)
	}
	rows, err := classroom.RunSimulation(rng, dayLog)
	if err != nil {
		return nil, fmt.Errorf("run trial %d: %w", trial, err)
	}
	if dayLog != nil {
		dayLog.Debug("trial done", "final_infected", rows[len(rows)-1].Infected)
	}
	return rows, nil
}
