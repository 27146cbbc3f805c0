package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	return store, path
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, path := tempStore(t)

	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cred, err := NewCredential("user-1", "kay@example.com", "tok-abc", issued, time.Hour)
	require.NoError(t, err)

	require.NoError(t, store.Save(&cred))

	got := store.Load()
	require.NotNil(t, got)
	assert.Equal(t, cred, *got)

	// Atomic write leaves no temp file behind.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	// Session file is private to the user.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStoreSaveNilClears(t *testing.T) {
	store, path := tempStore(t)

	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cred, err := NewCredential("user-1", "kay@example.com", "tok-abc", issued, time.Hour)
	require.NoError(t, err)
	require.NoError(t, store.Save(&cred))

	require.NoError(t, store.Save(nil))
	assert.Nil(t, store.Load())

	// The document is overwritten, not deleted.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestFileStoreLoadMissing(t *testing.T) {
	store, _ := tempStore(t)
	assert.Nil(t, store.Load())
}

func TestFileStoreLoadCorrupt(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		store, path := tempStore(t)
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))
		assert.Nil(t, store.Load())
	})

	t.Run("missing token", func(t *testing.T) {
		store, path := tempStore(t)
		require.NoError(t, os.WriteFile(path, []byte(`{"email":"kay@example.com"}`), 0600))
		assert.Nil(t, store.Load())
	})

	t.Run("inverted expiry", func(t *testing.T) {
		store, path := tempStore(t)
		doc := `{"user_id":"u","email":"kay@example.com","token":"tok",` +
			`"issued_at":"2026-03-01T12:00:00Z","expires_at":"2026-03-01T11:00:00Z"}`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0600))
		assert.Nil(t, store.Load())
	})
}

func TestFileStoreOverwrite(t *testing.T) {
	store, _ := tempStore(t)

	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first, err := NewCredential("user-1", "kay@example.com", "tok-1", issued, time.Hour)
	require.NoError(t, err)
	second, err := NewCredential("user-2", "lou@example.com", "tok-2", issued.Add(time.Minute), time.Hour)
	require.NoError(t, err)

	require.NoError(t, store.Save(&first))
	require.NoError(t, store.Save(&second))

	got := store.Load()
	require.NotNil(t, got)
	assert.Equal(t, "tok-2", got.Token)
	assert.Equal(t, "lou@example.com", got.Email)
}
