package main

import (
	"errors"
	"math/rand"
)

// AdvanceOneDay applies one day of class to the student.
// Rules:
// - not yet infected: infected with prob exposure*(1 - vaccinated*vaccineEfficacy)
// - infected and still inside the window: daysInfected++, contagion ends on the last day
//
// The window counter also moves on the day the student got infected.
func (s *Student) AdvanceOneDay(exposure float64, rng *rand.Rand) error {
	if s == nil {
		return errors.New("nil student")
	}
	if !validProb(exposure) {
		return errors.New("invalid exposure: must be within [0,1]")
	}
	rng = rngOrDefault(rng)

	if !s.previouslyInfected {
		pIn := exposure * (1 - boolFactor(s.vaccinated)*s.vaccineEfficacy)
		if draw(rng) <= pIn {
			s.Infect()
		}
	}

	if s.previouslyInfected && s.daysInfected < ContagiousDays {
		s.daysInfected++
		if s.daysInfected == ContagiousDays {
			s.contagious = false
			s.pOut = 0
		}
	}
	return nil
}

// Infect marks the student infected and contagious. Masking cuts outward transmission.
// Infection is permanent, so infecting an already infected student changes nothing.
func (s *Student) Infect() {
	if s.previouslyInfected {
		return
	}
	s.previouslyInfected = true
	s.contagious = true
	s.pOut = s.infectiousness * (1 - boolFactor(s.masked)*s.maskEfficacy)
}

func (s *Student) Vaccinated() bool            { return s.vaccinated }
func (s *Student) Masked() bool                { return s.masked }
func (s *Student) Infected() bool              { return s.previouslyInfected }
func (s *Student) Contagious() bool            { return s.contagious }
func (s *Student) DaysInfected() int           { return s.daysInfected }
func (s *Student) OutwardProbability() float64 { return s.pOut }
