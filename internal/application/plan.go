package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/ovsov/healthwise-cli/internal/domain"
	"github.com/ovsov/healthwise-cli/internal/ports"
)

// CredentialKey is the fixed secret-store key holding the DeepSeek API
// key, independent of the account store.
const CredentialKey = "deepseek_api_key"

type PlanService struct {
	histories ports.HistoryRepository
	secrets   ports.SecretStore
	client    ports.PlanClient
}

func NewPlanService(histories ports.HistoryRepository, secrets ports.SecretStore, client ports.PlanClient) *PlanService {
	return &PlanService{histories: histories, secrets: secrets, client: client}
}

// Generate builds a diet plan from the user's latest entry and free-text
// preferences. It fails with ErrMissingData when no entry exists and
// with ErrMissingCredential when no API key is stored, both before any
// network I/O.
func (s *PlanService) Generate(ctx context.Context, username string, preferences string) (domain.DietPlan, error) {
	history, err := s.histories.Get(ctx, username)
	if err != nil {
		return domain.DietPlan{}, fmt.Errorf("load history: %w", err)
	}

	latest, ok := history.Latest()
	if !ok {
		return domain.DietPlan{}, domain.ErrMissingData
	}

	apiKey, err := s.secrets.Get(ctx, CredentialKey)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			return domain.DietPlan{}, domain.ErrMissingCredential
		}
		return domain.DietPlan{}, fmt.Errorf("load API key: %w", err)
	}

	return s.client.Generate(ctx, latest, preferences, apiKey)
}
