package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"styleval/internal/report"
	"styleval/pkg/confusion"
)

// nowUTC returns the current UTC time as an ISO 8601 string.
func nowUTC() string { return time.Now().UTC().Format(time.RFC3339) }

// nullStr converts a sql.NullString to a plain string (empty if null).
func nullStr(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// SqlStore records runs and results in SQLite.
type SqlStore struct {
	db *sql.DB
}

// Open opens or creates a SQLite DB at path and runs migrations. The parent
// directory is created if it does not exist.
func Open(path string) (*SqlStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &SqlStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SqlStore) migrate() error {
	var tableCount int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableCount == 0 {
		// Fresh database.
		if _, err := s.db.Exec(schemaV1); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_version(version) VALUES(?)", schemaVersionV1); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
		return nil
	}

	var v int
	err = s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read schema version: %w", err)
	}
	if v != schemaVersionV1 {
		return fmt.Errorf("unknown schema version %d", v)
	}
	return nil
}

// Close closes the database.
func (s *SqlStore) Close() error {
	return s.db.Close()
}

// CreateRun records the start of an evaluation run and returns its ID.
func (s *SqlStore) CreateRun(dataset, renderer, reportPath string) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO runs(started_at, status, dataset, renderer, report_path) VALUES(?,?,?,?,?)",
		nowUTC(), StatusRunning, dataset, renderer, reportPath,
	)
	if err != nil {
		return 0, fmt.Errorf("create run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}
	return id, nil
}

// FinishRun marks a run finished with the given status.
func (s *SqlStore) FinishRun(id int64, status string) error {
	res, err := s.db.Exec(
		"UPDATE runs SET finished_at = ?, status = ? WHERE id = ?",
		nowUTC(), status, id,
	)
	if err != nil {
		return fmt.Errorf("finish run %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("finish run %d: no such run", id)
	}
	return nil
}

// AddResult records one evaluated file of a run.
func (s *SqlStore) AddResult(runID int64, row report.Row) error {
	_, err := s.db.Exec(`INSERT INTO results(
		run_id, repo, filepath, style,
		misdetection, undetected, detected_bad_change, detected_good_change,
		local_misdetection, local_undetected, local_detected_bad_change, local_detected_good_change
	) VALUES(?,?,?,?,?,?,?,?,?,?,?,?)`,
		runID, row.Repo, row.Path, row.Style,
		row.Global.Misdetection, row.Global.Undetected,
		row.Global.DetectedBadChange, row.Global.DetectedGoodChange,
		row.Local.Misdetection, row.Local.Undetected,
		row.Local.DetectedBadChange, row.Local.DetectedGoodChange,
	)
	if err != nil {
		return fmt.Errorf("add result for %s: %w", row.Path, err)
	}
	return nil
}

// ListRuns returns all recorded runs, newest first.
func (s *SqlStore) ListRuns() ([]Run, error) {
	rows, err := s.db.Query(
		"SELECT id, started_at, finished_at, status, dataset, renderer, report_path FROM runs ORDER BY id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var finished sql.NullString
		if err := rows.Scan(&r.ID, &r.StartedAt, &finished, &r.Status, &r.Dataset, &r.Renderer, &r.ReportPath); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.FinishedAt = nullStr(finished)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Results returns the per-file results of a run in insertion order.
func (s *SqlStore) Results(runID int64) ([]Result, error) {
	rows, err := s.db.Query(`SELECT
		run_id, repo, filepath, style,
		misdetection, undetected, detected_bad_change, detected_good_change,
		local_misdetection, local_undetected, local_detected_bad_change, local_detected_good_change
		FROM results WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("list results of run %d: %w", runID, err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var g, l confusion.Counts
		if err := rows.Scan(&r.RunID, &r.Repo, &r.Path, &r.Style,
			&g.Misdetection, &g.Undetected, &g.DetectedBadChange, &g.DetectedGoodChange,
			&l.Misdetection, &l.Undetected, &l.DetectedBadChange, &l.DetectedGoodChange,
		); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Global, r.Local = g, l
		results = append(results, r)
	}
	return results, rows.Err()
}
