package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteResultsCSV(t *testing.T) {
	rows := []DayStats{
		{Trial: 1, Day: 0, Masked: 3, Vaccinated: 4, Infected: 1, Contagious: 1, Exposure: 0.02},
		{Trial: 1, Day: 1, Masked: 3, Vaccinated: 4, Infected: 2, Contagious: 2, Exposure: 0.0396},
	}
	var buf bytes.Buffer
	if err := WriteResultsCSV(&buf, rows); err != nil {
		t.Fatalf("WriteResultsCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records: want=%d got=%d", 3, len(records))
	}
	if got := strings.Join(records[0], ","); got != "trial,day,masked,vaccinated,infected,contagious,exposure" {
		t.Fatalf("header: got %q", got)
	}
	if got := strings.Join(records[2], ","); got != "1,1,3,4,2,2,0.0396" {
		t.Fatalf("row: got %q", got)
	}
}

func TestSaveResultsCSVCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "out.csv")
	rows := []DayStats{{Trial: 1, Day: 0, Infected: 1, Contagious: 1}}
	if err := SaveResultsCSV(path, rows); err != nil {
		t.Fatalf("SaveResultsCSV: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if lines := strings.Count(string(data), "\n"); lines != 2 {
		t.Fatalf("lines: want=%d got=%d", 2, lines)
	}
}

func TestSaveResultsCSVEmpty(t *testing.T) {
	if err := SaveResultsCSV(filepath.Join(t.TempDir(), "x.csv"), nil); err == nil {
		t.Fatalf("empty rows: expected error, got nil")
	}
}
