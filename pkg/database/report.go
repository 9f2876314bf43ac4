// Package database provides optional PostgreSQL persistence for analysis
// reports.
package database

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"time"

	_ "github.com/lib/pq"

	"github.com/hervehildenbrand/bgp-vantage/pkg/models"
)

// ReportWriter stores finished analysis reports in PostgreSQL.
type ReportWriter struct {
	db *sql.DB
}

// NewReportWriter connects to the database and verifies the connection.
func NewReportWriter(databaseURL string) (*ReportWriter, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("Connected to PostgreSQL database")
	return &ReportWriter{db: db}, nil
}

// Close releases the connection pool.
func (w *ReportWriter) Close() {
	w.db.Close()
}

// WriteReport stores the run row, the per-view summaries and the pairwise
// distances in a single transaction: a report lands completely or not at
// all. Incomparable distance pairs are skipped; undefined means are
// stored as NULL.
func (w *ReportWriter) WriteReport(fingerprint string, summaries []models.ViewSummary, distances []models.ViewDistance) error {
	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("begin report transaction: %w", err)
	}
	defer tx.Rollback()

	var runID int
	err = tx.QueryRow(`
		INSERT INTO analysis_runs (fingerprint, created_at)
		VALUES ($1, $2)
		RETURNING id
	`, fingerprint, time.Now()).Scan(&runID)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, s := range summaries {
		_, err = tx.Exec(`
			INSERT INTO view_summaries (
				run_id, name, vantages, destinations,
				hard_core_mean, all_seen_mean
			) VALUES ($1, $2, $3, $4, $5, $6)
		`, runID, s.Name, s.Vantages, s.Destinations,
			nullableFloat(s.HardCoreMean), nullableFloat(s.AllSeenMean))
		if err != nil {
			return fmt.Errorf("insert summary for view %s: %w", s.Name, err)
		}
	}

	for _, d := range distances {
		if !d.Comparable {
			continue
		}
		_, err = tx.Exec(`
			INSERT INTO view_distances (
				run_id, view_a, view_b,
				core_dissimilarity, jaccard_dissimilarity
			) VALUES ($1, $2, $3, $4, $5)
		`, runID, d.A, d.B, d.Core, d.Jaccard)
		if err != nil {
			return fmt.Errorf("insert distance %s/%s: %w", d.A, d.B, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit report: %w", err)
	}
	return nil
}

// nullableFloat maps an undefined mean (NaN) to SQL NULL.
func nullableFloat(v float64) interface{} {
	if math.IsNaN(v) {
		return nil
	}
	return v
}
