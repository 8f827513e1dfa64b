package ports

import (
	"context"

	"github.com/ovsov/healthwise-cli/internal/domain"
)

type AccountRepository interface {
	Get(ctx context.Context, username string) (domain.Account, error)
	Save(ctx context.Context, account domain.Account) error
	Exists(ctx context.Context, username string) (bool, error)
}

// SessionStore persists the single active-account pointer across runs.
type SessionStore interface {
	Current(ctx context.Context) (domain.Profile, error)
	Set(ctx context.Context, profile domain.Profile) error
	Clear(ctx context.Context) error
}

type HistoryRepository interface {
	// Get returns the stored history, or an empty one when the user has
	// no records yet.
	Get(ctx context.Context, username string) (domain.HealthHistory, error)
	Save(ctx context.Context, username string, history domain.HealthHistory) error
}
