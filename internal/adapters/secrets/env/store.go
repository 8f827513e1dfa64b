// Package env reads secrets from environment variables. The store is
// read-only: Put and Delete report ErrReadOnly so a chained fallback
// store can take over writes.
package env

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ovsov/healthwise-cli/internal/domain"
	"github.com/ovsov/healthwise-cli/internal/ports"
)

var ErrReadOnly = errors.New("environment secret store is read-only")

const envPrefix = "HEALTHWISE_"

type Store struct {
	lookup func(string) (string, bool)
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{lookup: os.LookupEnv}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	value, ok := s.lookup(envNameForKey(key))
	if !ok || strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("environment secret %q: %w", key, domain.ErrCredentialNotFound)
	}

	return strings.TrimSpace(value), nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return ErrReadOnly
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return ErrReadOnly
}

// envNameForKey maps a secret key onto its variable name, for example
// "deepseek_api_key" -> "HEALTHWISE_DEEPSEEK_API_KEY".
func envNameForKey(key string) string {
	name := strings.ToUpper(strings.TrimSpace(key))
	name = strings.NewReplacer("-", "_", ".", "_", "/", "_").Replace(name)

	return envPrefix + name
}
