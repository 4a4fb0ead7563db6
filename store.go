package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const storeBatchSize = 500

// ResultsStore persists day rows tagged with their run id.
type ResultsStore struct {
	db *gorm.DB
}

// OpenResultsStore opens postgres for postgres:// DSNs and a sqlite file otherwise,
// then migrates the day_stats table.
func OpenResultsStore(dsn string) (*ResultsStore, error) {
	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open results store: %w", err)
	}
	if err := db.AutoMigrate(&DayStats{}); err != nil {
		return nil, fmt.Errorf("migrate results store: %w", err)
	}
	return &ResultsStore{db: db}, nil
}

func (s *ResultsStore) SaveRun(ctx context.Context, rows []DayStats) error {
	if len(rows) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&rows, storeBatchSize).Error
	})
}

// LoadRun returns a run's rows ordered by (trial, day).
func (s *ResultsStore) LoadRun(ctx context.Context, runID uuid.UUID) ([]DayStats, error) {
	var rows []DayStats
	err := s.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("trial ASC, day ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ResultsStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
