package file

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovsov/healthwise-cli/internal/domain"
)

func TestStorePutGetDelete(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	require.NoError(t, store.Put(context.Background(), "deepseek_api_key", "sk-test-123"))

	value, err := store.Get(context.Background(), "deepseek_api_key")
	require.NoError(t, err)
	assert.Equal(t, "sk-test-123", value)

	require.NoError(t, store.Delete(context.Background(), "deepseek_api_key"))

	_, err = store.Get(context.Background(), "deepseek_api_key")
	assert.ErrorIs(t, err, domain.ErrCredentialNotFound)
}

func TestStoreGetTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	require.NoError(t, store.Put(context.Background(), "deepseek_api_key", "sk-test-123\n"))

	value, err := store.Get(context.Background(), "deepseek_api_key")
	require.NoError(t, err)
	assert.Equal(t, "sk-test-123", value)
}

func TestStoreDeleteAbsentKeyIsNoop(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	assert.NoError(t, store.Delete(context.Background(), "deepseek_api_key"))
}

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	for _, key := range []string{"", "  ", "../escape", "/abs"} {
		_, err := store.Get(context.Background(), key)
		assert.Error(t, err, key)
	}
}
