package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	tomlrepo "github.com/ovsov/healthwise-cli/internal/adapters/repo/toml"
	"github.com/ovsov/healthwise-cli/internal/domain"
)

func newAccountFixture(t *testing.T) (*AccountService, *tomlrepo.AccountRepository) {
	t.Helper()

	dataDir := t.TempDir()
	repo := tomlrepo.NewAccountRepository(dataDir)
	sessions := tomlrepo.NewSessionStore(dataDir)

	return NewAccountService(repo, sessions), repo
}

func aliceRegistration() Registration {
	return Registration{
		Username: "alice",
		Password: "secret1",
		Name:     "Alice",
		Age:      30,
		Gender:   domain.GenderFemale,
		Email:    "alice@example.com",
	}
}

func TestRegisterStoresHashedPasswordAndOpensSession(t *testing.T) {
	service, repo := newAccountFixture(t)

	profile, err := service.Register(context.Background(), aliceRegistration())
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "Alice", profile.Name)

	stored, err := repo.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))

	session, err := service.CurrentSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, profile, session)
}

func TestRegisterDuplicateUsernameKeepsFirstAccount(t *testing.T) {
	service, repo := newAccountFixture(t)

	_, err := service.Register(context.Background(), aliceRegistration())
	require.NoError(t, err)

	second := aliceRegistration()
	second.Name = "Impostor"
	_, err = service.Register(context.Background(), second)
	assert.ErrorIs(t, err, domain.ErrDuplicateAccount)

	stored, err := repo.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", stored.Name)
}

func TestRegisterRejectsEmptyPassword(t *testing.T) {
	service, _ := newAccountFixture(t)

	candidate := aliceRegistration()
	candidate.Password = ""
	_, err := service.Register(context.Background(), candidate)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterRejectsNegativeAge(t *testing.T) {
	service, _ := newAccountFixture(t)

	candidate := aliceRegistration()
	candidate.Age = -1
	_, err := service.Register(context.Background(), candidate)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoginWrongPasswordThenRightPassword(t *testing.T) {
	service, _ := newAccountFixture(t)

	_, err := service.Register(context.Background(), aliceRegistration())
	require.NoError(t, err)
	require.NoError(t, service.Logout(context.Background()))

	_, err = service.Login(context.Background(), "alice", "wrongpass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = service.CurrentSession(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)

	profile, err := service.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
}

func TestLoginUnknownUsername(t *testing.T) {
	service, _ := newAccountFixture(t)

	_, err := service.Login(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogoutIsIdempotent(t *testing.T) {
	service, _ := newAccountFixture(t)

	require.NoError(t, service.Logout(context.Background()))
	require.NoError(t, service.Logout(context.Background()))
}

func TestUpdateProfilePreservesUsernameAndHash(t *testing.T) {
	service, repo := newAccountFixture(t)

	_, err := service.Register(context.Background(), aliceRegistration())
	require.NoError(t, err)

	before, err := repo.Get(context.Background(), "alice")
	require.NoError(t, err)

	newName := "New Name"
	profile, err := service.UpdateProfile(context.Background(), domain.ProfilePatch{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "New Name", profile.Name)

	after, err := repo.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
	assert.Equal(t, "New Name", after.Name)
	assert.Equal(t, before.Email, after.Email)

	// session pointer follows the update
	session, err := service.CurrentSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "New Name", session.Name)
}

func TestUpdateProfileWithoutSession(t *testing.T) {
	service, _ := newAccountFixture(t)

	name := "x"
	_, err := service.UpdateProfile(context.Background(), domain.ProfilePatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestLoginAfterRestartReusesStoredSession(t *testing.T) {
	dataDir := t.TempDir()
	repo := tomlrepo.NewAccountRepository(dataDir)
	sessions := tomlrepo.NewSessionStore(dataDir)
	service := NewAccountService(repo, sessions)

	_, err := service.Register(context.Background(), aliceRegistration())
	require.NoError(t, err)

	// a fresh service over the same data directory sees the session
	restarted := NewAccountService(tomlrepo.NewAccountRepository(dataDir), tomlrepo.NewSessionStore(dataDir))
	session, err := restarted.CurrentSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username)
}
