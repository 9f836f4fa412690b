package ports

import (
	"context"
	"time"

	"github.com/bnema/gamectl/internal/domain"
)

type PathRepository interface {
	Get(ctx context.Context, game domain.GameID) (domain.InstallRecord, error)
	List(ctx context.Context) ([]domain.InstallRecord, error)
	Save(ctx context.Context, record domain.InstallRecord) error
}

type PreferenceRepository interface {
	DeleteHoyoPass(ctx context.Context) (bool, error)
	SetDeleteHoyoPass(ctx context.Context, value bool) error
	// SuppressedAdvisory returns the stored slot, deleting it when it is invalid
	// or expired at now.
	SuppressedAdvisory(ctx context.Context, now time.Time) (domain.SuppressedAdvisory, bool, error)
	SaveSuppressedAdvisory(ctx context.Context, advisory domain.SuppressedAdvisory) error
	ClearSuppressedAdvisory(ctx context.Context) error
}

type GameRepository interface {
	GetByID(ctx context.Context, id domain.GameID) (domain.Game, error)
	List(ctx context.Context) ([]domain.Game, error)
	MarkPlayed(ctx context.Context, id domain.GameID, at time.Time) error
}

type SessionLog interface {
	Start(ctx context.Context, session domain.Session) (string, error)
	Finish(ctx context.Context, id string, endedAt time.Time, reason domain.SessionEndReason) error
	Recent(ctx context.Context, limit int) ([]domain.Session, error)
}
