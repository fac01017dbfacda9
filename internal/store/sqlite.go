package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// migrate creates the schema. Statements are idempotent so Open can run
// them on every start.
func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS llm_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			provider TEXT NOT NULL,
			model TEXT NOT NULL,
			purpose TEXT NOT NULL,
			input_tokens INTEGER NOT NULL DEFAULT 0,
			output_tokens INTEGER NOT NULL DEFAULT 0,
			latency_ms INTEGER NOT NULL DEFAULT 0,
			success INTEGER NOT NULL,
			error_message TEXT NOT NULL DEFAULT '',
			request_body TEXT NOT NULL DEFAULT '',
			response_body TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS activity_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			detail TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS progress (
			subject TEXT PRIMARY KEY,
			percentage REAL NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS assessments (
			id TEXT PRIMARY KEY,
			subject TEXT NOT NULL,
			score INTEGER NOT NULL,
			total INTEGER NOT NULL,
			level TEXT NOT NULL,
			report TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// sqliteRepo implements EventRepo, ActivityRepo, and AssessmentRepo over
// the shared database handle.
type sqliteRepo struct {
	db *sql.DB
}

func (r *sqliteRepo) AppendLLMEvent(ctx context.Context, data LLMEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_events
			(provider, model, purpose, input_tokens, output_tokens, latency_ms,
			 success, error_message, request_body, response_body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		data.Success, data.ErrorMessage, data.RequestBody, data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("insert llm event: %w", err)
	}
	return nil
}

func (r *sqliteRepo) RecentLLMEvents(ctx context.Context, limit int) ([]LLMEventRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, provider, model, purpose, input_tokens, output_tokens,
		        latency_ms, success, error_message, request_body, response_body, created_at
		 FROM llm_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var out []LLMEventRecord
	for rows.Next() {
		rec, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *sqliteRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, provider, model, purpose, input_tokens, output_tokens,
		        latency_ms, success, error_message, request_body, response_body, created_at
		 FROM llm_events WHERE id = ?`, id)

	rec, err := scanLLMEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rec, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(row rowScanner) (*LLMEventRecord, error) {
	var rec LLMEventRecord
	var ts time.Time
	err := row.Scan(&rec.ID, &rec.Provider, &rec.Model, &rec.Purpose,
		&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs,
		&rec.Success, &rec.ErrorMessage, &rec.RequestBody, &rec.ResponseBody, &ts)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan llm event: %w", err)
	}
	rec.Timestamp = ts
	return &rec, nil
}

func (r *sqliteRepo) LogActivity(ctx context.Context, userID, kind, detail string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activity_log (user_id, kind, detail) VALUES (?, ?, ?)`,
		userID, kind, detail,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *sqliteRepo) UpdateProgress(ctx context.Context, subject string, percentage float64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO progress (subject, percentage, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(subject) DO UPDATE SET
			percentage = excluded.percentage,
			updated_at = CURRENT_TIMESTAMP`,
		subject, percentage,
	)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

func (r *sqliteRepo) Progress(ctx context.Context) (map[string]float64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT subject, percentage FROM progress`)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	defer rows.Close()

	out := make(map[string]float64)
	for rows.Next() {
		var subject string
		var pct float64
		if err := rows.Scan(&subject, &pct); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		out[subject] = pct
	}
	return out, rows.Err()
}

func (r *sqliteRepo) SaveAssessment(ctx context.Context, rec AssessmentRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO assessments (id, subject, score, total, level, report)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Subject, rec.Score, rec.Total, rec.Level, rec.Report,
	)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

func (r *sqliteRepo) RecentAssessments(ctx context.Context, limit int) ([]AssessmentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, subject, score, total, level, report, created_at
		 FROM assessments ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	var out []AssessmentRecord
	for rows.Next() {
		var rec AssessmentRecord
		if err := rows.Scan(&rec.ID, &rec.Subject, &rec.Score, &rec.Total,
			&rec.Level, &rec.Report, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
