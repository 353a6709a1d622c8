package monsters

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/brainmon-api/internal/entities/brainmon"
	"github.com/KirkDiggler/brainmon-api/internal/errors"
	"github.com/KirkDiggler/brainmon-api/internal/pkg/clock"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	migrationsDir      = "migrations"
	migrationTableName = "schema_migrations"

	// MemoryPath opens a private in-memory database
	MemoryPath = ":memory:"
)

// goose keeps its dialect and filesystem in package globals
var gooseMu sync.Mutex

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite monster repository
type SQLiteConfig struct {
	// Path to the database file, or MemoryPath
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Path == "" {
		return errors.InvalidArgument("path cannot be empty")
	}
	return nil
}

// SQLiteRepository is a Repository that owns a database handle
type SQLiteRepository interface {
	Repository
	Close() error
}

// NewSQLite opens the database, applies pending migrations and returns the repository
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := cfg.Path
	if cfg.Path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create directory for %s", cfg.Path)
		}
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", cfg.Path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database")
	}
	// one writer; also keeps a :memory: database on a single connection
	db.SetMaxOpenConns(1)

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqliteRepository{db: db, clock: c}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetLogger(&slogGooseLogger{})
	goose.SetBaseFS(migrations)
	goose.SetTableName(migrationTableName)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return errors.Wrapf(err, "failed to set migration dialect")
	}

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return errors.Wrapf(err, "failed to apply migrations")
	}
	return nil
}

func (r *sqliteRepository) Close() error {
	return r.db.Close()
}

func (r *sqliteRepository) Insert(ctx context.Context, input InsertInput) (*InsertOutput, error) {
	if err := validateForWrite(input.Monster); err != nil {
		return nil, err
	}

	m := *input.Monster
	if m.CaughtAt.IsZero() {
		m.CaughtAt = r.clock.Now()
	}
	m.CaughtAt = m.CaughtAt.UTC()

	if m.ID > 0 {
		res, err := r.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO monsters
			(id, name, species, type, combat_power, image_url, caught_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			m.ID, m.Name, m.Species, m.Type, m.CombatPower, m.ImageURL, m.CaughtAt.UnixNano(),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to insert monster")
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read insert result")
		}
		return &InsertOutput{Monster: &m, Ignored: n == 0}, nil
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO monsters
		(name, species, type, combat_power, image_url, caught_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.Name, m.Species, m.Type, m.CombatPower, m.ImageURL, m.CaughtAt.UnixNano(),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to insert monster")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read inserted id")
	}
	m.ID = id

	return &InsertOutput{Monster: &m}, nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateForWrite(input.Monster); err != nil {
		return nil, err
	}
	m := input.Monster
	if m.ID <= 0 {
		return nil, errors.InvalidArgument(errIDRequired)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE monsters
		SET name = ?, species = ?, type = ?, combat_power = ?, image_url = ?, caught_at = ?
		WHERE id = ?`,
		m.Name, m.Species, m.Type, m.CombatPower, m.ImageURL, m.CaughtAt.UnixNano(), m.ID,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update monster")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read update result")
	}
	if n == 0 {
		return nil, errors.NotFoundf("monster with ID %d not found", m.ID)
	}

	return &UpdateOutput{Monster: m}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errIDRequired)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM monsters WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete monster")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read delete result")
	}

	return &DeleteOutput{Deleted: n > 0}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errIDRequired)
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, species, type, combat_power, image_url, caught_at
		FROM monsters
		WHERE id = ?`,
		input.ID,
	)

	m, err := scanMonster(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("monster with ID %d not found", input.ID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster")
	}

	return &GetOutput{Monster: m}, nil
}

func (r *sqliteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, species, type, combat_power, image_url, caught_at
		FROM monsters
		ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list monsters")
	}
	defer func() {
		_ = rows.Close()
	}()

	monsters := []*brainmon.Monster{}
	for rows.Next() {
		m, err := scanMonster(rows)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan monster")
		}
		monsters = append(monsters, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to iterate monsters")
	}

	return &ListOutput{Monsters: monsters}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMonster(s scanner) (*brainmon.Monster, error) {
	var (
		m        brainmon.Monster
		caughtAt int64
	)
	if err := s.Scan(&m.ID, &m.Name, &m.Species, &m.Type, &m.CombatPower, &m.ImageURL, &caughtAt); err != nil {
		return nil, err
	}
	m.CaughtAt = time.Unix(0, caughtAt).UTC()
	return &m, nil
}

// slogGooseLogger routes goose output through slog
type slogGooseLogger struct{}

func (l *slogGooseLogger) Printf(format string, v ...any) {
	slog.Debug(fmt.Sprintf(format, v...), "component", "migrations")
}

// Fatalf logs at error level; goose callers get the error returned instead of an exit
func (l *slogGooseLogger) Fatalf(format string, v ...any) {
	slog.Error(fmt.Sprintf(format, v...), "component", "migrations")
}
