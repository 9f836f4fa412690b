package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/bnema/gamectl/internal/ports"
	"github.com/google/uuid"
)

const DefaultRecentSessions = 20

type SessionLog struct {
	db *sql.DB
}

var _ ports.SessionLog = (*SessionLog)(nil)

func (l *SessionLog) Start(ctx context.Context, session domain.Session) (string, error) {
	id := session.ID
	if id == "" {
		id = uuid.NewString()
	}

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO sessions (id, game_id, version, channel, path, process_id, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id,
		string(session.Launch.Game),
		string(session.Launch.Version),
		int(session.Launch.Channel),
		session.Path,
		session.ProcessID,
		session.StartedAt.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("record session start: %w", err)
	}

	return id, nil
}

func (l *SessionLog) Finish(ctx context.Context, id string, endedAt time.Time, reason domain.SessionEndReason) error {
	result, err := l.db.ExecContext(ctx, `
		UPDATE sessions SET ended_at = ?, end_reason = ?
		WHERE id = ? AND ended_at IS NULL`,
		endedAt.UnixMilli(), string(reason), id)
	if err != nil {
		return fmt.Errorf("record session end: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("record session end: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session %s is unknown or already finished", id)
	}

	return nil
}

func (l *SessionLog) Recent(ctx context.Context, limit int) ([]domain.Session, error) {
	if limit <= 0 {
		limit = DefaultRecentSessions
	}

	rows, err := l.db.QueryContext(ctx, `
		SELECT id, game_id, version, channel, path, process_id, started_at, ended_at, end_reason
		FROM sessions
		ORDER BY started_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var (
			session   domain.Session
			game      string
			version   string
			channel   int
			startedAt int64
			endedAt   sql.NullInt64
			reason    sql.NullString
		)
		if err := rows.Scan(&session.ID, &game, &version, &channel, &session.Path, &session.ProcessID, &startedAt, &endedAt, &reason); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		session.Launch = domain.LaunchContext{Game: domain.GameID(game), Version: domain.Version(version), Channel: domain.Channel(channel)}
		session.StartedAt = time.UnixMilli(startedAt)
		session.EndedAt = fromMillis(endedAt)
		session.EndReason = domain.SessionEndReason(reason.String)
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}
