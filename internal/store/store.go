// Package store persists submitted scenarios and their solve outcomes
// to Postgres, the collaborator persistence layer spec.md §1 places
// out of the core's scope.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/diagnostic"
	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/model"
)

// Store wraps a Postgres connection pool.
type Store struct {
	db *sql.DB
}

// Open connects to Postgres at dsn and verifies the connection.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: opening connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("store: pinging database: %w", err)
	}
	return &Store{db: db}, nil
}

// Migrate creates the scenarios table if it does not already exist.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS scenarios (
			id TEXT PRIMARY KEY,
			scenario_json JSONB NOT NULL,
			plan_json JSONB,
			report_json JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("store: running migration: %w", err)
	}
	return nil
}

// SaveOutcome records a scenario and the plan or report that resulted
// from solving it, upserting by id.
func (s *Store) SaveOutcome(ctx context.Context, id string, scenario model.Scenario, plan *model.Plan, report *diagnostic.Report) error {
	scenarioJSON, err := json.Marshal(scenario)
	if err != nil {
		return fmt.Errorf("store: marshaling scenario: %w", err)
	}
	var planJSON, reportJSON []byte
	if plan != nil {
		if planJSON, err = json.Marshal(plan); err != nil {
			return fmt.Errorf("store: marshaling plan: %w", err)
		}
	}
	if report != nil {
		if reportJSON, err = json.Marshal(report); err != nil {
			return fmt.Errorf("store: marshaling report: %w", err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO scenarios (id, scenario_json, plan_json, report_json)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			scenario_json = EXCLUDED.scenario_json,
			plan_json = EXCLUDED.plan_json,
			report_json = EXCLUDED.report_json
	`, id, scenarioJSON, planJSON, reportJSON)
	if err != nil {
		return fmt.Errorf("store: upserting scenario %s: %w", id, err)
	}

	return tx.Commit()
}

// Outcome is a replayed scenario/solve-result pair.
type Outcome struct {
	Scenario model.Scenario
	Plan     *model.Plan
	Report   *diagnostic.Report
}

// LoadOutcome fetches a previously-saved scenario and its solve result.
func (s *Store) LoadOutcome(ctx context.Context, id string) (*Outcome, error) {
	var scenarioJSON []byte
	var planJSON, reportJSON sql.NullString

	row := s.db.QueryRowContext(ctx, `
		SELECT scenario_json, plan_json, report_json FROM scenarios WHERE id = $1
	`, id)
	if err := row.Scan(&scenarioJSON, &planJSON, &reportJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("store: no scenario with id %s", id)
		}
		return nil, fmt.Errorf("store: loading scenario %s: %w", id, err)
	}

	var out Outcome
	if err := json.Unmarshal(scenarioJSON, &out.Scenario); err != nil {
		return nil, fmt.Errorf("store: unmarshaling scenario %s: %w", id, err)
	}
	if planJSON.Valid {
		out.Plan = &model.Plan{}
		if err := json.Unmarshal([]byte(planJSON.String), out.Plan); err != nil {
			return nil, fmt.Errorf("store: unmarshaling plan %s: %w", id, err)
		}
	}
	if reportJSON.Valid {
		out.Report = &diagnostic.Report{}
		if err := json.Unmarshal([]byte(reportJSON.String), out.Report); err != nil {
			return nil, fmt.Errorf("store: unmarshaling report %s: %w", id, err)
		}
	}
	return &out, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
