package main

import (
	"github.com/google/uuid"
)

// ContagiousDays is the length of the contagious window that follows infection.
const ContagiousDays = 3

// Student is one classroom member. Its state only changes through Infect and AdvanceOneDay.
type Student struct {
	vaccinationProb float64
	vaccineEfficacy float64
	maskProb        float64
	maskEfficacy    float64
	infectiousness  float64

	vaccinated bool
	masked     bool

	previouslyInfected bool
	contagious         bool
	daysInfected       int
	pOut               float64 // outward transmission probability, 0 unless contagious
}

// Classroom is a single trial: a fixed population advanced day by day.
type Classroom struct {
	students  []*Student
	simLength int
	trial     int
	stats     []DayStats
}

// DayStats is one (trial, day) row of the results table.
// It doubles as the row model of the results store.
type DayStats struct {
	RunID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	Trial      int       `gorm:"primaryKey;autoIncrement:false" json:"trial"`
	Day        int       `gorm:"primaryKey;autoIncrement:false" json:"day"`
	Masked     int       `gorm:"not null" json:"masked"`
	Vaccinated int       `gorm:"not null" json:"vaccinated"`
	Infected   int       `gorm:"not null" json:"infected"`
	Contagious int       `gorm:"not null" json:"contagious"`
	Exposure   float64   `gorm:"not null" json:"exposure"`
}

func (DayStats) TableName() string { return "day_stats" }

// Controller owns the experiment: parameters, trial count and the combined results.
type Controller struct {
	cfg     Config
	log     *Logger
	runID   uuid.UUID
	results []DayStats
}

// TrialSummary condenses one trial's rows.
type TrialSummary struct {
	Trial          int
	FinalInfected  int
	PeakContagious int
	PeakDay        int
	MaxExposure    float64
}

// ExperimentSummary condenses every trial of a run.
type ExperimentSummary struct {
	Trials            int
	MeanFinalInfected float64
	MeanAttackRate    float64
	NoSpreadFraction  float64 // trials where nobody besides patient zero got infected
}
