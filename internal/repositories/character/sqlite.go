package character

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/pkg/clock"
	"github.com/KirkDiggler/quest-chronicles/internal/pkg/idgen"
	"github.com/KirkDiggler/quest-chronicles/internal/savefile"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS character_saves (
	name     TEXT PRIMARY KEY,
	revision TEXT NOT NULL,
	data     TEXT NOT NULL,
	saved_at INTEGER NOT NULL
);
`

// SQLiteRepository stores saves in a SQLite database. Each save gets a new
// ULID revision.
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
	idGen idgen.Generator
}

// SQLiteConfig contains configuration for the SQLite character repository
type SQLiteConfig struct {
	Path        string
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", cfg.Path, vb)
	return vb.Build()
}

// NewSQLite opens or creates the save database at cfg.Path
func NewSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCorrupted, "cannot create database directory")
	}

	db, err := sql.Open("sqlite", cfg.Path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCorrupted, "cannot open save database")
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeCorrupted, "cannot migrate save database")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewULID(c)
	}

	return &SQLiteRepository{
		db:    db,
		clock: c,
		idGen: gen,
	}, nil
}

// Close releases the database handle
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Save upserts the character's save row
func (r *SQLiteRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSaveInput(input); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	revision := r.idGen.Generate()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO character_saves (name, revision, data, saved_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET revision = excluded.revision, data = excluded.data, saved_at = excluded.saved_at`,
		input.Character.Name, revision, savefile.Encode(input.Character), now.Unix(),
	)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeCorrupted, "failed to save character %s", input.Character.Name)
	}

	slog.DebugContext(ctx, "Saved character to sqlite",
		"name", input.Character.Name,
		"revision", revision,
	)

	return &SaveOutput{Revision: revision, SavedAt: now}, nil
}

// Load reads the character's save row
func (r *SQLiteRepository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM character_saves WHERE name = ?`, input.Name,
	).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.CharacterNotFoundf("no save for %s", input.Name)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeCorrupted, "failed to read save for %s", input.Name)
	}

	c, err := savefile.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode save for %s", input.Name)
	}

	return &LoadOutput{Character: c}, nil
}

// List returns saved character names in order
func (r *SQLiteRepository) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM character_saves ORDER BY name`)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCorrupted, "failed to list saves")
	}
	defer func() {
		_ = rows.Close()
	}()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCorrupted, "failed to scan save name")
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCorrupted, "failed to list saves")
	}

	return &ListOutput{Names: names}, nil
}

// Delete removes the character's save row
func (r *SQLiteRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM character_saves WHERE name = ?`, input.Name)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeCorrupted, "failed to delete save for %s", input.Name)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, errors.CharacterNotFoundf("no save for %s", input.Name)
	}

	slog.InfoContext(ctx, "Deleted character save",
		"name", input.Name,
		"backend", "sqlite",
	)
	return &DeleteOutput{}, nil
}

// Revision returns the current revision and save time for a character
func (r *SQLiteRepository) Revision(ctx context.Context, name string) (string, time.Time, error) {
	var (
		revision string
		savedAt  int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT revision, saved_at FROM character_saves WHERE name = ?`, name,
	).Scan(&revision, &savedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", time.Time{}, errors.CharacterNotFoundf("no save for %s", name)
		}
		return "", time.Time{}, errors.WrapWithCodef(err, errors.CodeCorrupted, "failed to read revision for %s", name)
	}
	return revision, time.Unix(savedAt, 0).UTC(), nil
}
