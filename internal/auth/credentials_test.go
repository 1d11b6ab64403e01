package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminCredentials_PlaintextMatch(t *testing.T) {
	creds := AdminCredentials{Username: "admin", Password: "hunter2hunter2"}

	assert.True(t, creds.Match("admin", "hunter2hunter2"))
	assert.False(t, creds.Match("admin", "wrong"))
	assert.False(t, creds.Match("someone", "hunter2hunter2"))
	assert.False(t, creds.Match("", ""))
}

func TestAdminCredentials_HashedMatch(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	creds := AdminCredentials{Username: "admin", PasswordHash: string(hash)}

	assert.True(t, creds.Match("admin", "hunter2hunter2"))
	assert.False(t, creds.Match("admin", "wrong"))

	// the hash takes precedence over a lingering plaintext value
	creds.Password = "something-else"
	assert.True(t, creds.Match("admin", "hunter2hunter2"))
	assert.False(t, creds.Match("admin", "something-else"))
}
