// Package store handles the SQLite sample-text library.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/verte-zerg/typesprint/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrTextNotFound is returned when no text matches a lookup.
var ErrTextNotFound = errors.New("text not found")

// Store wraps SQLite access for sample texts.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create db directory")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open db")
	}
	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, errors.Wrap(err, "failed to migrate db")
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS texts (
			name TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveText inserts a text or replaces the body of an existing one with the same name.
func (s *Store) SaveText(ctx context.Context, text model.SampleText) error {
	name := strings.TrimSpace(text.Name)
	if name == "" {
		return errors.New("text name is empty")
	}
	if strings.TrimSpace(text.Body) == "" {
		return errors.Newf("text %q is empty", name)
	}
	createdAt := text.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO texts (name, body, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET body = excluded.body`,
		name, text.Body, createdAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return errors.Wrapf(err, "failed to save text %q", name)
	}
	return nil
}

// SaveTexts stores several texts in one transaction.
func (s *Store) SaveTexts(ctx context.Context, texts []model.SampleText) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO texts (name, body, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET body = excluded.body`)
	if err != nil {
		return errors.Wrap(err, "failed to prepare insert")
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	now := s.now().UTC().Format(time.RFC3339Nano)
	for _, text := range texts {
		name := strings.TrimSpace(text.Name)
		if name == "" || strings.TrimSpace(text.Body) == "" {
			return errors.Newf("text %q has an empty name or body", text.Name)
		}
		if _, err = stmt.ExecContext(ctx, name, text.Body, now); err != nil {
			return errors.Wrapf(err, "failed to save text %q", name)
		}
	}
	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit texts")
	}
	return nil
}

// GetText returns the text stored under name.
func (s *Store) GetText(ctx context.Context, name string) (model.SampleText, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT name, body, created_at FROM texts WHERE name = ?`, strings.TrimSpace(name))
	text, err := scanText(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SampleText{}, errors.Wrapf(ErrTextNotFound, "%q", name)
	}
	return text, err
}

// RandomText returns one stored text chosen at random.
func (s *Store) RandomText(ctx context.Context) (model.SampleText, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT name, body, created_at FROM texts ORDER BY RANDOM() LIMIT 1`)
	text, err := scanText(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SampleText{}, errors.Wrap(ErrTextNotFound, "library is empty")
	}
	return text, err
}

// ListTexts returns all stored texts ordered by name.
func (s *Store) ListTexts(ctx context.Context) ([]model.SampleText, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, body, created_at FROM texts ORDER BY name ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list texts")
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var texts []model.SampleText
	for rows.Next() {
		text, err := scanText(rows)
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list texts")
	}
	return texts, nil
}

// DeleteText removes the text stored under name.
func (s *Store) DeleteText(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM texts WHERE name = ?`, strings.TrimSpace(name))
	if err != nil {
		return errors.Wrapf(err, "failed to delete text %q", name)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to delete text")
	}
	if n == 0 {
		return errors.Wrapf(ErrTextNotFound, "%q", name)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanText(row scanner) (model.SampleText, error) {
	var text model.SampleText
	var createdAt string
	if err := row.Scan(&text.Name, &text.Body, &createdAt); err != nil {
		return model.SampleText{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return model.SampleText{}, errors.Wrapf(err, "bad timestamp for text %q", text.Name)
	}
	text.CreatedAt = parsed
	return text, nil
}
