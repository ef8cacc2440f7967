package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"lectern/internal/config"
	"lectern/internal/report"
)

// ErrNotFound indicates no archived report matches the requested ID.
var ErrNotFound = errors.New("report not found")

// Record is one archived evaluation.
type Record struct {
	ID          string
	Topic       string
	TeacherName string
	FinalScore  float64
	EvaluatedAt time.Time
	Report      *report.Report
}

// Store manages report persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	lock *flock.Flock
	path string
}

// Open initializes or connects to the archive database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.ArchiveDir, "archive.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:   db,
		lock: flock.New(filepath.Join(cfg.Paths.ArchiveDir, "archive.lock")),
		path: dbPath,
	}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save archives one evaluated report, assigning its identity here so the
// engine's output stays deterministic.
func (s *Store) Save(ctx context.Context, rep *report.Report) (*Record, error) {
	if rep == nil {
		return nil, fmt.Errorf("archive: report is required")
	}

	locked, err := s.lock.TryLockContext(ctx, 250*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("acquire archive lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("archive lock held by another process")
	}
	defer func() { _ = s.lock.Unlock() }()

	payload, err := json.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}

	rec := &Record{
		ID:          uuid.NewString(),
		Topic:       rep.Session.Topic,
		TeacherName: rep.Session.TeacherName,
		FinalScore:  rep.FinalScore,
		EvaluatedAt: time.Now().UTC(),
		Report:      rep,
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reports (id, topic, teacher_name, final_score, evaluated_at, report_json)
         VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Topic,
		rec.TeacherName,
		rec.FinalScore,
		rec.EvaluatedAt.Format(time.RFC3339Nano),
		string(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}
	return rec, nil
}

// List returns archived report summaries, newest first. The report payload
// is not loaded; use Get for the full document.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, topic, teacher_name, final_score, evaluated_at
         FROM reports ORDER BY evaluated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []Record
	for rows.Next() {
		var rec Record
		var evaluatedAt string
		if err := rows.Scan(&rec.ID, &rec.Topic, &rec.TeacherName, &rec.FinalScore, &evaluatedAt); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		rec.EvaluatedAt, err = time.Parse(time.RFC3339Nano, evaluatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse evaluated_at %q: %w", evaluatedAt, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate report rows: %w", err)
	}
	return records, nil
}

// Get loads one archived report, including its full payload.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	var rec Record
	var evaluatedAt, payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, topic, teacher_name, final_score, evaluated_at, report_json
         FROM reports WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.Topic, &rec.TeacherName, &rec.FinalScore, &evaluatedAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load report %s: %w", id, err)
	}

	rec.EvaluatedAt, err = time.Parse(time.RFC3339Nano, evaluatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse evaluated_at %q: %w", evaluatedAt, err)
	}
	rec.Report = report.New()
	if err := json.Unmarshal([]byte(payload), rec.Report); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", id, err)
	}
	return &rec, nil
}
