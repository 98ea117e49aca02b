package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	s := NewStore(path)

	assert.Empty(t, s.Token(), "fresh store starts logged out")

	session := Session{
		Token: "tok-abc",
		User:  User{ID: "u1", Name: "Admin", Email: "admin@example.com", Role: "admin"},
	}
	require.NoError(t, s.Save(session))

	// A second store reading the same file sees the session.
	s2 := NewStore(path)
	assert.Equal(t, "tok-abc", s2.Token())
	assert.Equal(t, "admin@example.com", s2.Current().User.Email)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	s := NewStore(path)
	require.NoError(t, s.Save(Session{Token: "tok"}))

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-cleared store is fine.
	require.NoError(t, s.Clear())
}

func TestStoreCorruptFileReadsAsLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := NewStore(path)
	assert.Empty(t, s.Token())
}
