package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	log "github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/umputun/taskman/app/task"
)

// SQLite keeps tasks in a single table, ordered by position
type SQLite struct {
	path string
	db   *sqlx.DB
}

type taskRow struct {
	Position    int    `db:"position"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Priority    string `db:"priority"`
	DueDate     string `db:"due_date"`
}

// NewSQLite makes SQLite backend for path. The database file is not touched until Load or Save.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &SQLite{path: path, db: db}, nil
}

// Load reads all tasks in position order. A missing database file is reported as not existing
// and left uncreated, a file which is not a database is reported as malformed.
func (s *SQLite) Load() ([]task.Task, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if err := s.initialize(); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrMalformed, s.path, err)
	}

	rows := []taskRow{}
	if err := s.db.Select(&rows, `SELECT position, name, description, priority, due_date FROM tasks ORDER BY position`); err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}

	tasks := make([]task.Task, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, task.Task{Name: r.Name, Description: r.Description, Priority: task.Priority(r.Priority), DueDate: r.DueDate})
	}
	return tasks, nil
}

// Save replaces all stored tasks in one transaction
func (s *SQLite) Save(tasks []task.Task) error {
	if err := s.initialize(); err != nil {
		return err
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			log.Printf("[WARN] rollback failed: %v", err)
		}
	}()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}
	for i, t := range tasks {
		row := taskRow{Position: i, Name: t.Name, Description: t.Description, Priority: string(t.Priority), DueDate: t.DueDate}
		_, err := tx.NamedExec(`INSERT INTO tasks (position, name, description, priority, due_date)
			VALUES (:position, :name, :description, :priority, :due_date)`, row)
		if err != nil {
			return fmt.Errorf("failed to save task %q: %w", t.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) String() string {
	return "sqlite:" + s.path
}

// initialize creates the schema if missing
func (s *SQLite) initialize() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS tasks (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			priority TEXT NOT NULL,
			due_date TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create tasks table: %w", err)
	}
	return nil
}
