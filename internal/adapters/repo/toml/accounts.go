package toml

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"github.com/ovsov/healthwise-cli/internal/domain"
	"github.com/ovsov/healthwise-cli/internal/ports"
)

type AccountRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.AccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(dataDir string) *AccountRepository {
	path := filepath.Join(dataDir, accountsFileName)
	return &AccountRepository{path: path, mu: lockForPath(path)}
}

func (r *AccountRepository) Get(ctx context.Context, username string) (domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return domain.Account{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.read()
	if err != nil {
		return domain.Account{}, err
	}

	for _, record := range file.Accounts {
		if record.Username == username {
			return accountFromSchema(record), nil
		}
	}

	return domain.Account{}, domain.ErrAccountNotFound
}

func (r *AccountRepository) Exists(ctx context.Context, username string) (bool, error) {
	_, err := r.Get(ctx, username)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrAccountNotFound) {
		return false, nil
	}

	return false, err
}

// Save replaces the record keyed by the account's username, or appends
// a new one. The store never holds two records with the same username.
func (r *AccountRepository) Save(ctx context.Context, account domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.read()
	if err != nil {
		return err
	}

	encoded := accountToSchema(account)
	updated := false
	for i := range file.Accounts {
		if file.Accounts[i].Username == encoded.Username {
			file.Accounts[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Accounts = append(file.Accounts, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeRecordFile(r.path, file)
}

func (r *AccountRepository) read() (accountsSchema, error) {
	var file accountsSchema
	if err := readRecordFile(r.path, &file); err != nil {
		return accountsSchema{}, err
	}
	if err := file.validateVersion(); err != nil {
		return accountsSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}
