package main

import (
	"math/rand"

	"github.com/google/uuid"
)

// NewStudent creates a student and samples its traits.
// vaccinated and masked are each drawn once, in that order, from rng.
func NewStudent(vaccinationProb, vaccineEfficacy, maskProb, maskEfficacy, infectiousness float64, rng *rand.Rand) *Student {
	rng = rngOrDefault(rng)

	return &Student{
		vaccinationProb: vaccinationProb,
		vaccineEfficacy: vaccineEfficacy,
		maskProb:        maskProb,
		maskEfficacy:    maskEfficacy,
		infectiousness:  infectiousness,
		vaccinated:      draw(rng) <= vaccinationProb,
		masked:          draw(rng) <= maskProb,
	}
}

// NewClassroom wraps one trial's population.
func NewClassroom(students []*Student, simLength, trial int) *Classroom {
	return &Classroom{
		students:  students,
		simLength: simLength,
		trial:     trial,
		stats:     make([]DayStats, 0, simLength+1),
	}
}

// NewController prepares an experiment for cfg. cfg is expected to be validated already.
func NewController(cfg Config, log *Logger) *Controller {
	if log == nil {
		log = NopLogger()
	}
	return &Controller{
		cfg:   cfg,
		log:   log,
		runID: uuid.New(),
	}
}

// buildStudentPopulation samples cfg.Students students with identical parameters.
// Index 0 is patient zero: forced unvaccinated and infected whatever it drew.
func (c *Controller) buildStudentPopulation(rng *rand.Rand) []*Student {
	population := make([]*Student, c.cfg.Students)
	for i := range population {
		population[i] = NewStudent(
			c.cfg.VaccinatedFraction,
			c.cfg.VaccineEfficacy,
			c.cfg.MaskedFraction,
			c.cfg.MaskEffectiveness,
			c.cfg.Infectiousness,
			rng,
		)
	}

	if len(population) > 0 {
		population[0].vaccinated = false
		population[0].Infect()
	}
	return population
}
