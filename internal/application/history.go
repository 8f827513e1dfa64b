package application

import (
	"context"
	"fmt"

	"github.com/ovsov/healthwise-cli/internal/domain"
	"github.com/ovsov/healthwise-cli/internal/ports"
)

type HistoryService struct {
	histories ports.HistoryRepository
	clock     ports.Clock
}

func NewHistoryService(histories ports.HistoryRepository, clock ports.Clock) *HistoryService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &HistoryService{histories: histories, clock: clock}
}

// History returns the user's stored entries, empty when none exist.
func (s *HistoryService) History(ctx context.Context, username string) (domain.HealthHistory, error) {
	return s.histories.Get(ctx, username)
}

// Record upserts one day's entry into the user's history and persists
// the merged result: an entry for an already-present date replaces it in
// place, a new date appends, and the collection stays sorted ascending.
// An entry without a date is keyed on the clock's current day.
func (s *HistoryService) Record(ctx context.Context, username string, entry domain.HealthEntry) (domain.HealthHistory, error) {
	if entry.Date == "" {
		entry.Date = domain.NewDate(s.clock.Now())
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	history, err := s.histories.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	merged := history.Upsert(entry)
	if err := s.histories.Save(ctx, username, merged); err != nil {
		return nil, fmt.Errorf("save history: %w", err)
	}

	return merged, nil
}
