package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// AnalysisRepo stores completed analysis runs as JSONB keyed by
// ticker, upserting so reruns replace the previous result.
//
// Schema assumption (managed outside this package):
//
//	CREATE TABLE IF NOT EXISTS catalyst_analysis (
//	  ticker TEXT PRIMARY KEY,
//	  cik TEXT,
//	  analysis_json JSONB,
//	  updated_at TIMESTAMPTZ
//	);
type AnalysisRepo struct{}

// NewAnalysisRepo creates a repository instance.
func NewAnalysisRepo() *AnalysisRepo {
	return &AnalysisRepo{}
}

// Save upserts one analysis payload for a ticker.
func (r *AnalysisRepo) Save(ctx context.Context, ticker, cik string, payload interface{}) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	query := `
		INSERT INTO catalyst_analysis (ticker, cik, analysis_json, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (ticker)
		DO UPDATE SET
			cik = EXCLUDED.cik,
			analysis_json = EXCLUDED.analysis_json,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := pool.Exec(ctx, query, ticker, cik, jsonData, time.Now()); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// Load unmarshals the stored analysis for a ticker into out.
func (r *AnalysisRepo) Load(ctx context.Context, ticker string, out interface{}) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	var jsonData []byte
	err := pool.QueryRow(ctx, `SELECT analysis_json FROM catalyst_analysis WHERE ticker = $1`, ticker).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("no analysis found for ticker %s", ticker)
		}
		return fmt.Errorf("failed to load analysis: %w", err)
	}

	if err := json.Unmarshal(jsonData, out); err != nil {
		return fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return nil
}
