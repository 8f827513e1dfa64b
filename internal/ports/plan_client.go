package ports

import (
	"context"

	"github.com/ovsov/healthwise-cli/internal/domain"
)

// PlanClient talks to the external completion endpoint. A single
// synchronous request per call; no retries, no streaming.
type PlanClient interface {
	Generate(ctx context.Context, entry domain.HealthEntry, preferences string, apiKey string) (domain.DietPlan, error)
}
