package storages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/reusee/tbas/tbas"
	_ "modernc.org/sqlite"
)

var ErrRunNotFound = errors.New("run not found")

// Store persists runs and their frames in a sqlite database.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			program TEXT NOT NULL,
			dialect TEXT NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			frames INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS frames (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			seq INTEGER NOT NULL,
			data BLOB NOT NULL,
			PRIMARY KEY (run_id, seq)
		)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating table: %w", err)
		}
	}
	return &Store{
		db: db,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Begin(ctx context.Context) (Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return sqlTx{tx: tx}, nil
}

// RunInfo is a stored run without its frames.
type RunInfo struct {
	ID        int64
	Program   string
	Dialect   string
	Error     string
	NumFrames int
	CreatedAt time.Time
}

type Run struct {
	RunInfo
	Frames []tbas.Frame
}

// SaveRun stores the program, outcome and frames of c and returns the run id.
func (s *Store) SaveRun(ctx context.Context, c *tbas.Context, dialect tbas.Dialect) (id int64, err error) {
	tx, err := s.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var errText string
	if c.Err != nil {
		errText = c.Err.Error()
	}
	res, err := tx.Exec(ctx,
		`INSERT INTO runs (program, dialect, error, frames, created_at) VALUES (?, ?, ?, ?, ?)`,
		c.Program, dialect.String(), errText, len(c.Frames), time.Now().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i, frame := range c.Frames {
		data, err := MarshalFrame(frame)
		if err != nil {
			return 0, err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO frames (run_id, seq, data) VALUES (?, ?, ?)`,
			id, i, data,
		); err != nil {
			return 0, fmt.Errorf("inserting frame %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) LoadRun(ctx context.Context, id int64) (*Run, error) {
	tx, err := s.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row, err := tx.QueryRow(ctx,
		`SELECT id, program, dialect, error, frames, created_at FROM runs WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, err
	}
	run := new(Run)
	if err := scanRunInfo(row, &run.RunInfo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", ErrRunNotFound, id)
		}
		return nil, fmt.Errorf("querying run: %w", err)
	}

	rows, err := tx.Query(ctx,
		`SELECT data FROM frames WHERE run_id = ? ORDER BY seq`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("querying frames: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		frame, err := UnmarshalFrame(data)
		if err != nil {
			return nil, err
		}
		run.Frames = append(run.Frames, frame)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return run, nil
}

// Runs lists stored runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]RunInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, program, dialect, error, frames, created_at FROM runs ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()
	var ret []RunInfo
	for rows.Next() {
		var info RunInfo
		if err := scanRunInfo(rows, &info); err != nil {
			return nil, err
		}
		ret = append(ret, info)
	}
	return ret, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRunInfo(row scanner, info *RunInfo) error {
	var createdAt int64
	if err := row.Scan(
		&info.ID,
		&info.Program,
		&info.Dialect,
		&info.Error,
		&info.NumFrames,
		&createdAt,
	); err != nil {
		return err
	}
	info.CreatedAt = time.UnixMilli(createdAt)
	return nil
}
