package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/agent-onboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "credential key is empty"},
		{name: "whitespace", key: "   ", wantErr: "credential key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid credential key"},
		{name: "parent", key: "..", wantErr: "invalid credential key"},
		{name: "traversal", key: "../escape", wantErr: "invalid credential key"},
		{name: "nested traversal", key: "openai/../../escape", wantErr: "invalid credential key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	key := "openai/api_key"

	require.NoError(t, store.Put(context.Background(), key, "sk-test\n"))

	got, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", got)

	info, err := os.Stat(filepath.Join(root, "openai", "api_key"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(credentialFileMode), info.Mode().Perm())
}

func TestStorePutTightensExistingFileMode(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := filepath.Join(root, "xai", "api_key")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	store := NewStore(root)
	require.NoError(t, store.Put(context.Background(), "xai/api_key", "new"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(credentialFileMode), info.Mode().Perm())
}

func TestStoreGetMissingReturnsSecretNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Get(context.Background(), "google/api_key")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeleteIsIdempotentWhenSecretMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	key := "anthropic/api_key"

	require.NoError(t, store.Delete(context.Background(), key))
	require.NoError(t, store.Delete(context.Background(), key))
}
