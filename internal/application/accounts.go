// Package application wires the domain to its ports: account lifecycle
// and session handling, the history merge rule, and plan generation.
package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ovsov/healthwise-cli/internal/domain"
	"github.com/ovsov/healthwise-cli/internal/ports"
)

type AccountService struct {
	accounts ports.AccountRepository
	sessions ports.SessionStore
}

func NewAccountService(accounts ports.AccountRepository, sessions ports.SessionStore) *AccountService {
	return &AccountService{accounts: accounts, sessions: sessions}
}

// Registration holds the candidate account plus its plaintext password,
// which exists only for the duration of the call.
type Registration struct {
	Username string
	Password string
	Name     string
	Age      int
	Gender   domain.Gender
	Email    string
}

// Register stores the candidate with a bcrypt hash, establishes the
// session and returns the password-stripped profile.
func (s *AccountService) Register(ctx context.Context, candidate Registration) (domain.Profile, error) {
	username := strings.TrimSpace(candidate.Username)
	if username == "" {
		return domain.Profile{}, fmt.Errorf("%w: username is empty", domain.ErrInvalidInput)
	}
	if candidate.Password == "" {
		return domain.Profile{}, fmt.Errorf("%w: password is empty", domain.ErrInvalidInput)
	}
	if candidate.Age < 0 {
		return domain.Profile{}, fmt.Errorf("%w: age is negative", domain.ErrInvalidInput)
	}

	taken, err := s.accounts.Exists(ctx, username)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return domain.Profile{}, domain.ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(candidate.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("hash password: %w", err)
	}

	account := domain.Account{
		Username:     username,
		PasswordHash: string(hash),
		Name:         candidate.Name,
		Age:          candidate.Age,
		Gender:       candidate.Gender,
		Email:        candidate.Email,
	}

	if err := s.accounts.Save(ctx, account); err != nil {
		return domain.Profile{}, fmt.Errorf("save account: %w", err)
	}

	profile := account.Public()
	if err := s.sessions.Set(ctx, profile); err != nil {
		return domain.Profile{}, fmt.Errorf("set session: %w", err)
	}

	return profile, nil
}

// Login verifies the password against the stored hash. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, username, password string) (domain.Profile, error) {
	account, err := s.accounts.Get(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.Profile{}, domain.ErrInvalidCredentials
		}
		return domain.Profile{}, fmt.Errorf("load account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return domain.Profile{}, domain.ErrInvalidCredentials
	}

	profile := account.Public()
	if err := s.sessions.Set(ctx, profile); err != nil {
		return domain.Profile{}, fmt.Errorf("set session: %w", err)
	}

	return profile, nil
}

// Logout clears the session pointer unconditionally.
func (s *AccountService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

func (s *AccountService) CurrentSession(ctx context.Context) (domain.Profile, error) {
	return s.sessions.Current(ctx)
}

// UpdateProfile merges the patch onto the stored account of the active
// session, keeping the password hash, and refreshes the session pointer.
func (s *AccountService) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (domain.Profile, error) {
	session, err := s.sessions.Current(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return domain.Profile{}, domain.ErrAccountNotFound
		}
		return domain.Profile{}, fmt.Errorf("load session: %w", err)
	}

	account, err := s.accounts.Get(ctx, session.Username)
	if err != nil {
		return domain.Profile{}, err
	}

	if patch.Age != nil && *patch.Age < 0 {
		return domain.Profile{}, fmt.Errorf("%w: age is negative", domain.ErrInvalidInput)
	}

	merged := patch.Apply(account)
	if err := s.accounts.Save(ctx, merged); err != nil {
		return domain.Profile{}, fmt.Errorf("save account: %w", err)
	}

	profile := merged.Public()
	if err := s.sessions.Set(ctx, profile); err != nil {
		return domain.Profile{}, fmt.Errorf("refresh session: %w", err)
	}

	return profile, nil
}
