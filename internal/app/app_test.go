package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipehub/recipectl/internal/config"
	"github.com/recipehub/recipectl/internal/session"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.APIURL = "http://127.0.0.1:1"
	return cfg
}

func TestNewStartsLoggedOut(t *testing.T) {
	a, err := New(testConfig(), filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	defer a.Close()

	assert.False(t, a.State.Current().IsActive())

	decision := a.Guard.Check()
	assert.False(t, decision.Allowed())
	target, _ := decision.Redirect()
	assert.Equal(t, "/auth", target)
}

func TestNewAutoLoginRestoresSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	now := time.Now().UTC()
	doc := session.Document{
		UserID:    "user-1",
		Email:     "kay@example.com",
		Token:     "tok-abc",
		IssuedAt:  now.Add(-10 * time.Minute),
		ExpiresAt: now.Add(50 * time.Minute),
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))

	a, err := New(testConfig(), path)
	require.NoError(t, err)
	defer a.Close()

	assert.True(t, a.Guard.Check().Allowed())
	cred, ok := a.State.Current().Credential()
	require.True(t, ok)
	assert.Equal(t, "kay@example.com", cred.Email)
}

func TestNewAutoLoginClearsExpiredSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	now := time.Now().UTC()
	doc := session.Document{
		UserID:    "user-1",
		Email:     "kay@example.com",
		Token:     "tok-abc",
		IssuedAt:  now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))

	a, err := New(testConfig(), path)
	require.NoError(t, err)
	defer a.Close()

	assert.False(t, a.State.Current().IsActive())
	assert.False(t, a.Guard.Check().Allowed())

	// The expired entry was erased, not kept around.
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	var cleared session.Document
	require.NoError(t, json.Unmarshal(data, &cleared))
	assert.Empty(t, cleared.Token)
}
