// Package store keeps a library of ship designs in a local SQLite
// database: the full record as a YAML blob plus enough derived columns
// to list and search without re-evaluating every design.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"

	"github.com/orionarts/sharpie/pkg/perf"
	"github.com/orionarts/sharpie/pkg/ship"
)

// ErrNotFound marks a design id that is not in the library.
var ErrNotFound = errors.New("design not found")

const schema = `
CREATE TABLE IF NOT EXISTS designs (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	country     TEXT NOT NULL,
	kind        TEXT NOT NULL,
	year        INTEGER NOT NULL,
	disp_normal REAL NOT NULL,
	speed_max   REAL NOT NULL,
	sound       INTEGER NOT NULL,
	record      TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL,
	updated_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS designs_name ON designs(name);
CREATE INDEX IF NOT EXISTS designs_year ON designs(year);
`

// Entry is one library row, without the full record.
type Entry struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Country    string    `db:"country" json:"country"`
	Kind       string    `db:"kind" json:"kind"`
	Year       int       `db:"year" json:"year"`
	DispNormal float64   `db:"disp_normal" json:"disp_normal"`
	SpeedMax   float64   `db:"speed_max" json:"speed_max"`
	Sound      bool      `db:"sound" json:"sound"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// Store is an open design library.
type Store struct {
	db  *sqlx.DB
	log *slog.Logger
}

// Open opens or creates a library at the given path. Use ":memory:" for
// an ephemeral library.
func Open(path string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate library: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Close releases the library.
func (st *Store) Close() error {
	return st.db.Close()
}

// Save adds a design to the library and returns its id.
func (st *Store) Save(ctx context.Context, s *ship.Ship) (string, error) {
	blob, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode design: %w", err)
	}

	sum := perf.New(s).Summarize()
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err = st.db.ExecContext(ctx, `
		INSERT INTO designs
			(id, name, country, kind, year, disp_normal, speed_max, sound,
			 record, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, s.Name, s.Country, s.Kind, s.Year,
		sum.DispNormal, sum.SpeedMax, sum.Sound,
		string(blob), now, now)
	if err != nil {
		return "", fmt.Errorf("save design: %w", err)
	}

	st.log.Info("design saved", "id", id, "name", s.Name)
	return id, nil
}

// Update replaces a stored design.
func (st *Store) Update(ctx context.Context, id string, s *ship.Ship) error {
	blob, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode design: %w", err)
	}

	sum := perf.New(s).Summarize()
	res, err := st.db.ExecContext(ctx, `
		UPDATE designs SET
			name = ?, country = ?, kind = ?, year = ?,
			disp_normal = ?, speed_max = ?, sound = ?,
			record = ?, updated_at = ?
		WHERE id = ?`,
		s.Name, s.Country, s.Kind, s.Year,
		sum.DispNormal, sum.SpeedMax, sum.Sound,
		string(blob), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update design: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns the library index, newest first, optionally filtered by a
// case-insensitive name substring.
func (st *Store) List(ctx context.Context, nameFilter string) ([]Entry, error) {
	var out []Entry
	var err error
	if nameFilter == "" {
		err = st.db.SelectContext(ctx, &out, `
			SELECT id, name, country, kind, year, disp_normal, speed_max,
				sound, created_at, updated_at
			FROM designs ORDER BY updated_at DESC`)
	} else {
		err = st.db.SelectContext(ctx, &out, `
			SELECT id, name, country, kind, year, disp_normal, speed_max,
				sound, created_at, updated_at
			FROM designs WHERE lower(name) LIKE ?
			ORDER BY updated_at DESC`,
			"%"+strings.ToLower(nameFilter)+"%")
	}
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	return out, nil
}

// Get loads a design by id.
func (st *Store) Get(ctx context.Context, id string) (*ship.Ship, error) {
	var blob string
	err := st.db.GetContext(ctx, &blob,
		`SELECT record FROM designs WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load design: %w", err)
	}

	s := ship.New()
	if err := yaml.Unmarshal([]byte(blob), s); err != nil {
		return nil, fmt.Errorf("decode design %s: %w", id, err)
	}
	return s, nil
}

// Delete removes a design by id.
func (st *Store) Delete(ctx context.Context, id string) error {
	res, err := st.db.ExecContext(ctx,
		`DELETE FROM designs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete design: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	st.log.Info("design deleted", "id", id)
	return nil
}
