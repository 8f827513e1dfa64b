package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/ovsov/healthwise-cli/internal/adapters/deepseek"
	tomlrepo "github.com/ovsov/healthwise-cli/internal/adapters/repo/toml"
	chainstore "github.com/ovsov/healthwise-cli/internal/adapters/secrets/chain"
	"github.com/ovsov/healthwise-cli/internal/application"
	"github.com/ovsov/healthwise-cli/internal/ports"
)

type app struct {
	accounts    *application.AccountService
	history     *application.HistoryService
	plans       *application.PlanService
	secretStore ports.SecretStore
	now         func() time.Time
}

func wireApp() (*app, error) {
	dataDir, err := tomlrepo.ResolveDataDir(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire record store: %w", err)
	}

	accountRepo := tomlrepo.NewAccountRepository(dataDir)
	sessionStore := tomlrepo.NewSessionStore(dataDir)
	historyRepo := tomlrepo.NewHistoryRepository(dataDir)

	secretStore, err := chainstore.NewEnvFirstWithFileFallback(dataDir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	planClient := deepseek.Client{
		BaseURL:    envOrDefault("HEALTHWISE_API_BASE_URL", deepseek.DefaultBaseURL),
		HTTPClient: http.DefaultClient,
	}

	return &app{
		accounts:    application.NewAccountService(accountRepo, sessionStore),
		history:     application.NewHistoryService(historyRepo, ports.SystemClock{}),
		plans:       application.NewPlanService(historyRepo, secretStore, planClient),
		secretStore: secretStore,
		now:         time.Now,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
