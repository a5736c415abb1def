// Package sqlite provides the durable procedure store used by the CLI
// and TUI, where state must survive between invocations.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ingrain/internal/domain"
	"ingrain/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

// Store implements ports.ProcedureRepository on SQLite
type Store struct {
	db *sql.DB
}

// Ensure Store implements ProcedureRepository
var _ ports.ProcedureRepository = (*Store)(nil)

// Open creates or opens the store at dbPath. The special path
// ":memory:" opens a private in-memory database.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		// Expand ~ in path
		if len(dbPath) > 0 && dbPath[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to get home directory: %w", err)
			}
			dbPath = filepath.Join(home, dbPath[1:])
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Pragmas + schema in a single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS procedures (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			algorithm TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			current_step INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS steps (
			procedure_id TEXT NOT NULL REFERENCES procedures(id) ON DELETE CASCADE,
			ord INTEGER NOT NULL,
			description TEXT NOT NULL,
			PRIMARY KEY (procedure_id, ord)
		);
		CREATE TABLE IF NOT EXISTS reviews (
			procedure_id TEXT NOT NULL REFERENCES procedures(id) ON DELETE CASCADE,
			idx INTEGER NOT NULL,
			review_date TEXT NOT NULL,
			label TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (procedure_id, idx)
		);
		CREATE INDEX IF NOT EXISTS idx_reviews_date ON reviews(review_date, completed);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Get retrieves a procedure by id, or (nil, nil) if unknown
func (s *Store) Get(id string) (*domain.Procedure, error) {
	return getProcedure(s.db, id)
}

// Put stores a procedure, replacing any existing record with the same id
func (s *Store) Put(p *domain.Procedure) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := putProcedure(tx, p); err != nil {
		return err
	}
	return tx.Commit()
}

// List returns all procedures ordered by creation time, then id
func (s *Store) List() ([]*domain.Procedure, error) {
	rows, err := s.db.Query(`SELECT id FROM procedures ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]*domain.Procedure, 0, len(ids))
	for _, id := range ids {
		p, err := getProcedure(s.db, id)
		if err != nil {
			return nil, err
		}
		if p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

// Update applies fn to the stored record inside one transaction, so
// concurrent read-modify-writes on the same procedure serialize at the
// database. Returns (nil, nil) for an unknown id.
func (s *Store) Update(id string, fn func(p *domain.Procedure) error) (*domain.Procedure, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	p, err := getProcedure(tx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	if err := fn(p); err != nil {
		return nil, err
	}

	if err := putProcedure(tx, p); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return p, nil
}

// querier covers both *sql.DB and *sql.Tx
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

func getProcedure(q querier, id string) (*domain.Procedure, error) {
	var p domain.Procedure
	var algorithm string
	var createdAt int64

	err := q.QueryRow(`
		SELECT id, title, algorithm, created_at, current_step
		FROM procedures WHERE id = ?
	`, id).Scan(&p.ID, &p.Title, &algorithm, &createdAt, &p.CurrentStep)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.Algorithm = domain.Algorithm(algorithm)
	p.CreatedAt = time.Unix(createdAt, 0)

	steps, err := q.Query(`
		SELECT ord, description FROM steps
		WHERE procedure_id = ? ORDER BY ord
	`, id)
	if err != nil {
		return nil, err
	}
	defer steps.Close()
	for steps.Next() {
		var step domain.ProcedureStep
		if err := steps.Scan(&step.Order, &step.Description); err != nil {
			return nil, err
		}
		p.Steps = append(p.Steps, step)
	}
	if err := steps.Err(); err != nil {
		return nil, err
	}

	reviews, err := q.Query(`
		SELECT review_date, label, completed FROM reviews
		WHERE procedure_id = ? ORDER BY idx
	`, id)
	if err != nil {
		return nil, err
	}
	defer reviews.Close()
	for reviews.Next() {
		var ev domain.ReviewEvent
		var date string
		if err := reviews.Scan(&date, &ev.Label, &ev.Completed); err != nil {
			return nil, err
		}
		if ev.Date, err = domain.ParseDate(date); err != nil {
			return nil, fmt.Errorf("corrupt review date for %s: %w", id, err)
		}
		p.ReviewSchedule = append(p.ReviewSchedule, ev)
	}
	if err := reviews.Err(); err != nil {
		return nil, err
	}

	return &p, nil
}

func putProcedure(q querier, p *domain.Procedure) error {
	_, err := q.Exec(`
		INSERT OR REPLACE INTO procedures (id, title, algorithm, created_at, current_step)
		VALUES (?, ?, ?, ?, ?)
	`, p.ID, p.Title, string(p.Algorithm), p.CreatedAt.Unix(), p.CurrentStep)
	if err != nil {
		return err
	}

	// Children are rewritten wholesale; steps and schedule are small
	// and fixed-length.
	if _, err := q.Exec(`DELETE FROM steps WHERE procedure_id = ?`, p.ID); err != nil {
		return err
	}
	if _, err := q.Exec(`DELETE FROM reviews WHERE procedure_id = ?`, p.ID); err != nil {
		return err
	}

	for _, step := range p.Steps {
		if _, err := q.Exec(`
			INSERT INTO steps (procedure_id, ord, description) VALUES (?, ?, ?)
		`, p.ID, step.Order, step.Description); err != nil {
			return err
		}
	}
	for i, ev := range p.ReviewSchedule {
		if _, err := q.Exec(`
			INSERT INTO reviews (procedure_id, idx, review_date, label, completed)
			VALUES (?, ?, ?, ?, ?)
		`, p.ID, i, ev.Date.String(), ev.Label, ev.Completed); err != nil {
			return err
		}
	}
	return nil
}
