package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// RunSimulation runs the whole trial and returns its per-day rows.
// Row 0 is the seed snapshot: exactly one infected and contagious student (patient zero).
// Every row records the state before that day's advance together with the exposure applied
// on that day; the last row (day simLength) holds the end state.
func (c *Classroom) RunSimulation(rng *rand.Rand, log *Logger) ([]DayStats, error) {
	if c == nil || len(c.students) == 0 {
		return nil, errors.New("empty classroom")
	}
	if c.simLength <= 0 {
		return nil, errors.New("invalid simulation length")
	}
	rng = rngOrDefault(rng)
	c.stats = c.stats[:0]

	exposure := c.CalcExposure()
	masked, vaccinated, _, _ := c.ComputePopulationStats()
	c.stats = append(c.stats, DayStats{
		Trial:      c.trial,
		Day:        0,
		Masked:     masked,
		Vaccinated: vaccinated,
		Infected:   1,
		Contagious: 1,
		Exposure:   exposure,
	})
	printStats(log, c.stats[0])

	for day := 0; day < c.simLength; day++ {
		exposure = c.CalcExposure()
		if day > 0 {
			c.LogStatistics(day, exposure)
			printStats(log, c.stats[day])
		}
		if err := c.advanceDay(exposure, rng); err != nil {
			return nil, fmt.Errorf("trial %d day %d: %w", c.trial, day, err)
		}
	}

	c.LogStatistics(c.simLength, c.CalcExposure())
	printStats(log, c.stats[c.simLength])

	if err := checkDense(c.stats, c.simLength); err != nil {
		return nil, fmt.Errorf("trial %d: %w", c.trial, err)
	}
	return c.stats, nil
}

// advanceDay moves every student forward one day with the same exposure.
func (c *Classroom) advanceDay(exposure float64, rng *rand.Rand) error {
	for _, s := range c.students {
		if err := s.AdvanceOneDay(exposure, rng); err != nil {
			return err
		}
	}
	return nil
}

// CalcExposure is the chance that at least one contagious student transmits:
// 1 - prod(1 - pOut) over the whole class. Non-contagious students contribute a factor of 1.
// The product is summed in log space so a tiny pOut still gives a nonzero exposure.
func (c *Classroom) CalcExposure() float64 {
	logEscape := 0.0
	for _, s := range c.students {
		if s == nil {
			continue
		}
		logEscape += math.Log1p(-s.pOut)
	}
	if logEscape == 0 {
		return 0
	}
	return clamp01(-math.Expm1(logEscape))
}

// LogStatistics appends the row for day with the current population counts.
func (c *Classroom) LogStatistics(day int, exposure float64) {
	masked, vaccinated, infected, contagious := c.ComputePopulationStats()
	c.stats = append(c.stats, DayStats{
		Trial:      c.trial,
		Day:        day,
		Masked:     masked,
		Vaccinated: vaccinated,
		Infected:   infected,
		Contagious: contagious,
		Exposure:   exposure,
	})
}

// ComputePopulationStats counts students by predicate.
func (c *Classroom) ComputePopulationStats() (masked, vaccinated, infected, contagious int) {
	for _, s := range c.students {
		if s == nil {
			continue
		}
		if s.masked {
			masked++
		}
		if s.vaccinated {
			vaccinated++
		}
		if s.previouslyInfected {
			infected++
		}
		if s.contagious {
			contagious++
		}
	}
	return masked, vaccinated, infected, contagious
}

// checkDense verifies rows cover day 0..simLength with no gaps.
func checkDense(rows []DayStats, simLength int) error {
	if len(rows) != simLength+1 {
		return fmt.Errorf("expected %d day rows, got %d", simLength+1, len(rows))
	}
	for i, row := range rows {
		if row.Day != i {
			return fmt.Errorf("day rows not dense: row %d has day %d", i, row.Day)
		}
	}
	return nil
}
