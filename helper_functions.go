package main

import (
	"math/rand"
	"sync/atomic"
	"time"
)

// 0-1 clamp
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// helper functions to validate probability values and draw random float
func validProb(p float64) bool   { return p >= 0.0 && p <= 1.0 }
func draw(rng *rand.Rand) float64 { return rng.Float64() }

func boolFactor(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

var (
	fallbackBase = time.Now().UnixNano()
	fallbackSeq  atomic.Int64
)

// random number generator helper
// Callers in the simulation always pass a generator; nil gets a fresh stream whose seed
// differs from every other fallback stream, even when created in the same nanosecond.
func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(trialSeed(fallbackBase, int(fallbackSeq.Add(1)))))
}

// trialSeed derives an independent stream seed for a trial from the run seed,
// so a trial's draws do not depend on which worker runs it.
func trialSeed(base int64, trial int) int64 {
	z := uint64(base) + uint64(trial)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}

func printStats(log *Logger, row DayStats) {
	if log == nil {
		return
	}
	log.Debug("day stats",
		"trial", row.Trial,
		"day", row.Day,
		"masked", row.Masked,
		"vaccinated", row.Vaccinated,
		"infected", row.Infected,
		"contagious", row.Contagious,
		"exposure", row.Exposure,
	)
}
