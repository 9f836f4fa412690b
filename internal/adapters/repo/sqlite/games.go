package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/bnema/gamectl/internal/ports"
)

type GameRepository struct {
	db *sql.DB
}

var _ ports.GameRepository = (*GameRepository)(nil)

// Sync inserts every game and refreshes display names. Play times are kept.
func (r *GameRepository) Sync(ctx context.Context, games []domain.Game) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin games sync: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO games (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name`)
	if err != nil {
		return fmt.Errorf("prepare games sync: %w", err)
	}
	defer stmt.Close()

	for _, game := range games {
		if _, err := stmt.ExecContext(ctx, string(game.ID), game.Name); err != nil {
			return fmt.Errorf("sync game %s: %w", game.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit games sync: %w", err)
	}
	return nil
}

func (r *GameRepository) GetByID(ctx context.Context, id domain.GameID) (domain.Game, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, last_played_at FROM games WHERE id = ?`, string(id))

	game, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Game{}, fmt.Errorf("%w: %s", domain.ErrUnknownGame, id)
	}
	if err != nil {
		return domain.Game{}, fmt.Errorf("get game %s: %w", id, err)
	}

	return game, nil
}

// List orders games by most recently played, never-played games last.
func (r *GameRepository) List(ctx context.Context) ([]domain.Game, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, last_played_at FROM games
		ORDER BY last_played_at IS NULL, last_played_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate games: %w", err)
	}

	return games, nil
}

func (r *GameRepository) MarkPlayed(ctx context.Context, id domain.GameID, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO games (id, last_played_at) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET last_played_at = excluded.last_played_at`,
		string(id), toMillis(at))
	if err != nil {
		return fmt.Errorf("mark game %s played: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (domain.Game, error) {
	var (
		id, name   string
		lastPlayed sql.NullInt64
	)
	if err := row.Scan(&id, &name, &lastPlayed); err != nil {
		return domain.Game{}, err
	}

	return domain.Game{ID: domain.GameID(id), Name: name, LastPlayedAt: fromMillis(lastPlayed)}, nil
}
