package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expenseflow/internal/kv"
)

func newStore(t *testing.T) (*CredentialStore, kv.Store) {
	t.Helper()
	substrate := kv.NewMemory()
	c, err := NewCredentialStore(context.Background(), substrate)
	require.NoError(t, err)
	return c, substrate
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	c, _ := newStore(t)

	ok, err := c.Signup(ctx, "Asha", "asha@example.com", "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	// Same email again: refused, registry unchanged.
	ok, err = c.Signup(ctx, "Other", "asha@example.com", "different")
	require.NoError(t, err)
	assert.False(t, ok)

	accounts, err := c.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Asha", accounts[0].Name)
	assert.Equal(t, "secret", accounts[0].Password)
}

func TestSignupDoesNotLogin(t *testing.T) {
	ctx := context.Background()
	c, _ := newStore(t)

	ok, err := c.Signup(ctx, "Asha", "asha@example.com", "secret")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Nil(t, c.Session())
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	c, _ := newStore(t)
	_, err := c.Signup(ctx, "Asha", "asha@example.com", "secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{"exact match", "asha@example.com", "secret", true},
		{"wrong password", "asha@example.com", "SECRET", false},
		{"unknown email", "nobody@example.com", "secret", false},
		{"case sensitive email", "Asha@example.com", "secret", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := c.Login(ctx, tt.email, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestLoginFailureKeepsPriorSession(t *testing.T) {
	ctx := context.Background()
	c, _ := newStore(t)
	_, err := c.Signup(ctx, "Asha", "asha@example.com", "secret")
	require.NoError(t, err)

	ok, err := c.Login(ctx, "asha@example.com", "secret")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.Login(ctx, "asha@example.com", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NotNil(t, c.Session())
	assert.Equal(t, "asha@example.com", c.Session().Email)
}

func TestLogoutClearsPersistedSession(t *testing.T) {
	ctx := context.Background()
	c, substrate := newStore(t)
	_, err := c.Signup(ctx, "Asha", "asha@example.com", "secret")
	require.NoError(t, err)
	_, err = c.Login(ctx, "asha@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, c.Logout(ctx))
	assert.Nil(t, c.Session())

	_, ok, err := substrate.Get(ctx, kv.KeyCurrentUser)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionRestoredOnConstruction(t *testing.T) {
	ctx := context.Background()
	substrate := kv.NewMemory()

	first, err := NewCredentialStore(ctx, substrate)
	require.NoError(t, err)
	_, err = first.Signup(ctx, "Asha", "asha@example.com", "secret")
	require.NoError(t, err)
	ok, err := first.Login(ctx, "asha@example.com", "secret")
	require.NoError(t, err)
	require.True(t, ok)

	// A new store over the same substrate sees the persisted session.
	second, err := NewCredentialStore(ctx, substrate)
	require.NoError(t, err)
	require.NotNil(t, second.Session())
	assert.Equal(t, "asha@example.com", second.Session().Email)
	assert.Equal(t, "Asha", second.Session().Name)
}
