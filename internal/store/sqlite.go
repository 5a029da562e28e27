// internal/store/sqlite.go
//
// SQLite-backed player store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying the embedded sql/*.sql migrations once each, recorded in _migrations.
//   - Player accounts and their aggregate score record (wins, losses, streaks).
//
// Only the tally is persisted. Individual rounds live in Memory and are gone
// after a restart.

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
)

//go:embed sql/*.sql
var migrations embed.FS

// ErrUsernameTaken is returned by CreatePlayer for a duplicate name.
var ErrUsernameTaken = errors.New("username taken")

// Player is a row of the players table.
type Player struct {
	ID           string           `json:"id"`
	Username     string           `json:"username"`
	PasswordHash string           `json:"-"`
	CreatedAt    time.Time        `json:"createdAt"`
	Score        game.ScoreRecord `json:"score"`
}

// Players persists accounts and score records.
type Players struct {
	db *sql.DB
}

// OpenPlayers opens (creating if missing) the database at dsn and applies
// migrations. ":memory:" is accepted for tests.
func OpenPlayers(dsn string) (*Players, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Players{db: db}, nil
}

// Close closes the underlying database.
func (p *Players) Close() error { return p.db.Close() }

// openDB opens a SQLite database file with busy timeout, WAL and foreign keys.
func openDB(dsn string) (*sql.DB, error) {
	if dsn != ":memory:" {
		// Ensure directory exists for ./data/app.db, etc.
		if dir := filepath.Dir(dsn); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if dsn == ":memory:" {
		// Every pooled connection would get its own empty database.
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies the embedded migrations in lexical order, each inside
// its own transaction, skipping any already recorded in _migrations.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(migrations, "sql", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// CreatePlayer inserts a new player. Usernames are unique case-insensitively.
func (p *Players) CreatePlayer(ctx context.Context, username, passwordHash string) (*Player, error) {
	pl := &Player{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	var exists int
	err := p.db.QueryRowContext(ctx, `SELECT 1 FROM players WHERE lower(username)=lower(?)`, username).Scan(&exists)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err := p.insertPlayer(ctx, pl); err != nil {
		return nil, err
	}
	return pl, nil
}

// insertPlayer writes pl. A concurrent signup that slipped past the lookup
// in CreatePlayer trips the unique index and gets ErrUsernameTaken.
func (p *Players) insertPlayer(ctx context.Context, pl *Player) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO players (id, username, password_hash, created_at) VALUES (?,?,?,?)`,
		pl.ID, pl.Username, pl.PasswordHash, pl.CreatedAt.Format(time.RFC3339))
	var se sqlite3.Error
	if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique {
		return ErrUsernameTaken
	}
	return err
}

const playerCols = `id, username, password_hash, created_at, wins, losses, streak, best_streak`

// PlayerByName loads a player by username (case-insensitive).
func (p *Players) PlayerByName(ctx context.Context, username string) (*Player, error) {
	return scanPlayer(p.db.QueryRowContext(ctx,
		`SELECT `+playerCols+` FROM players WHERE lower(username)=lower(?)`, username))
}

// PlayerByID loads a player by ID.
func (p *Players) PlayerByID(ctx context.Context, id string) (*Player, error) {
	return scanPlayer(p.db.QueryRowContext(ctx,
		`SELECT `+playerCols+` FROM players WHERE id=?`, id))
}

func scanPlayer(row *sql.Row) (*Player, error) {
	var pl Player
	var created string
	err := row.Scan(&pl.ID, &pl.Username, &pl.PasswordHash, &created,
		&pl.Score.Wins, &pl.Score.Losses, &pl.Score.Streak, &pl.Score.BestStreak)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	pl.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &pl, nil
}

// RecordResult applies one finished round to the player's score record
// inside a transaction and returns the updated record.
func (p *Players) RecordResult(ctx context.Context, id string, won bool) (game.ScoreRecord, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return game.ScoreRecord{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var r game.ScoreRecord
	err = tx.QueryRowContext(ctx, `SELECT wins, losses, streak, best_streak FROM players WHERE id=?`, id).
		Scan(&r.Wins, &r.Losses, &r.Streak, &r.BestStreak)
	if errors.Is(err, sql.ErrNoRows) {
		return game.ScoreRecord{}, ErrNotFound
	}
	if err != nil {
		return game.ScoreRecord{}, err
	}
	r.Record(won)
	if _, err := tx.ExecContext(ctx,
		`UPDATE players SET wins=?, losses=?, streak=?, best_streak=? WHERE id=?`,
		r.Wins, r.Losses, r.Streak, r.BestStreak, id); err != nil {
		return game.ScoreRecord{}, err
	}
	return r, tx.Commit()
}
