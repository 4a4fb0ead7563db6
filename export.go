package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

var csvHeader = []string{"trial", "day", "masked", "vaccinated", "infected", "contagious", "exposure"}

// SaveResultsCSV writes rows to filename, creating parent directories as needed.
func SaveResultsCSV(filename string, rows []DayStats) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows to save")
	}
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteResultsCSV(f, rows); err != nil {
		return err
	}
	return f.Close()
}

// WriteResultsCSV writes the header and one line per (trial, day) row.
func WriteResultsCSV(w io.Writer, rows []DayStats) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	record := make([]string, len(csvHeader))
	for _, row := range rows {
		record[0] = strconv.Itoa(row.Trial)
		record[1] = strconv.Itoa(row.Day)
		record[2] = strconv.Itoa(row.Masked)
		record[3] = strconv.Itoa(row.Vaccinated)
		record[4] = strconv.Itoa(row.Infected)
		record[5] = strconv.Itoa(row.Contagious)
		record[6] = strconv.FormatFloat(row.Exposure, 'g', -1, 64)
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
