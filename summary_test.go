package main

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	rows := []DayStats{
		{Trial: 2, Day: 0, Infected: 1, Contagious: 1, Exposure: 0.1},
		{Trial: 2, Day: 1, Infected: 3, Contagious: 3, Exposure: 0.27},
		{Trial: 2, Day: 2, Infected: 4, Contagious: 2, Exposure: 0.19},
		{Trial: 1, Day: 0, Infected: 1, Contagious: 1, Exposure: 0.1},
		{Trial: 1, Day: 1, Infected: 1, Contagious: 1, Exposure: 0.1},
		{Trial: 1, Day: 2, Infected: 1, Contagious: 1, Exposure: 0.1},
	}

	got := Summarize(rows)
	if len(got) != 2 {
		t.Fatalf("summaries: want=%d got=%d", 2, len(got))
	}
	if got[0].Trial != 1 || got[1].Trial != 2 {
		t.Fatalf("order: got trials %d, %d", got[0].Trial, got[1].Trial)
	}
	want := TrialSummary{Trial: 2, FinalInfected: 4, PeakContagious: 3, PeakDay: 1, MaxExposure: 0.27}
	if got[1] != want {
		t.Fatalf("trial 2: want %+v got %+v", want, got[1])
	}

	es := SummarizeExperiment(got, 10)
	if es.Trials != 2 {
		t.Fatalf("trials: want=%d got=%d", 2, es.Trials)
	}
	if math.Abs(es.MeanFinalInfected-2.5) > 1e-12 {
		t.Fatalf("mean final infected: want=%v got=%v", 2.5, es.MeanFinalInfected)
	}
	if math.Abs(es.MeanAttackRate-0.25) > 1e-12 {
		t.Fatalf("mean attack rate: want=%v got=%v", 0.25, es.MeanAttackRate)
	}
	if es.NoSpreadFraction != 0.5 {
		t.Fatalf("no spread fraction: want=%v got=%v", 0.5, es.NoSpreadFraction)
	}
}

func TestSummarizeExperimentEmpty(t *testing.T) {
	es := SummarizeExperiment(nil, 30)
	if es.Trials != 0 || es.MeanFinalInfected != 0 {
		t.Fatalf("empty: got %+v", es)
	}
}
