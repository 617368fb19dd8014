package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestTokenRoundTrip(t *testing.T) {
	store := newTestStore(t)

	// Fresh store has no credentials.
	_, err := store.Token()
	assert.ErrorIs(t, err, ErrNoCredentials)

	tok := &oauth2.Token{
		AccessToken:  "access-abc",
		RefreshToken: "refresh-xyz",
		TokenType:    "Bearer",
	}
	require.NoError(t, store.SaveToken(tok))

	loaded, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "access-abc", loaded.AccessToken)
	assert.Equal(t, "refresh-xyz", loaded.RefreshToken)

	// Saving again overwrites.
	tok.AccessToken = "access-2"
	require.NoError(t, store.SaveToken(tok))
	loaded, err = store.Token()
	require.NoError(t, err)
	assert.Equal(t, "access-2", loaded.AccessToken)
}

func TestClearToken(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveToken(&oauth2.Token{AccessToken: "abc"}))
	require.NoError(t, store.ClearToken())

	_, err := store.Token()
	assert.ErrorIs(t, err, ErrNoCredentials)

	// Clearing an already-empty store is fine.
	require.NoError(t, store.ClearToken())
}

func TestLastSeenNotification(t *testing.T) {
	store := newTestStore(t)

	id, err := store.LastSeenNotification()
	require.NoError(t, err)
	assert.Zero(t, id)

	require.NoError(t, store.SetLastSeenNotification(42))
	id, err = store.LastSeenNotification()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestNewStoreRequiresPath(t *testing.T) {
	_, err := NewStore("")
	assert.Error(t, err)
}
