package main

import "sort"

// Summarize condenses combined rows into one summary per trial, ordered by trial.
func Summarize(rows []DayStats) []TrialSummary {
	byTrial := make(map[int]*TrialSummary)
	lastDay := make(map[int]int)

	for _, row := range rows {
		ts, ok := byTrial[row.Trial]
		if !ok {
			ts = &TrialSummary{Trial: row.Trial, PeakDay: row.Day, PeakContagious: row.Contagious}
			byTrial[row.Trial] = ts
			lastDay[row.Trial] = -1
		}
		if row.Day > lastDay[row.Trial] {
			lastDay[row.Trial] = row.Day
			ts.FinalInfected = row.Infected
		}
		if row.Contagious > ts.PeakContagious {
			ts.PeakContagious = row.Contagious
			ts.PeakDay = row.Day
		}
		if row.Exposure > ts.MaxExposure {
			ts.MaxExposure = row.Exposure
		}
	}

	out := make([]TrialSummary, 0, len(byTrial))
	for _, ts := range byTrial {
		out = append(out, *ts)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Trial < out[j].Trial })
	return out
}

// SummarizeExperiment averages trial summaries over a class of students.
func SummarizeExperiment(trials []TrialSummary, students int) ExperimentSummary {
	es := ExperimentSummary{Trials: len(trials)}
	if len(trials) == 0 || students <= 0 {
		return es
	}

	var infected, noSpread int
	for _, ts := range trials {
		infected += ts.FinalInfected
		if ts.FinalInfected <= 1 {
			noSpread++
		}
	}
	n := float64(len(trials))
	es.MeanFinalInfected = float64(infected) / n
	es.MeanAttackRate = es.MeanFinalInfected / float64(students)
	es.NoSpreadFraction = float64(noSpread) / n
	return es
}
