// Package auth owns the global account registry and the single active
// session. Passwords are stored and compared verbatim; this is a local
// single-user-machine tracker, not an authentication system.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"expenseflow/internal/core"
	"expenseflow/internal/kv"
)

// CredentialStore manages signup, login and logout over the key-value
// substrate. Every successful mutation persists before returning.
type CredentialStore struct {
	store   kv.Store
	session *core.Session
}

// NewCredentialStore restores a previously persisted session if one exists.
// The restored session is not re-validated against the registry.
func NewCredentialStore(ctx context.Context, store kv.Store) (*CredentialStore, error) {
	c := &CredentialStore{store: store}

	raw, ok, err := store.Get(ctx, kv.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if ok {
		var s core.Session
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return nil, fmt.Errorf("decode session: %w", err)
		}
		c.session = &s
		slog.Debug("Restored session", "email", s.Email)
	}
	return c, nil
}

// Session returns the active session, or nil when no one is logged in.
func (c *CredentialStore) Session() *core.Session {
	return c.session
}

// Accounts returns the full registry.
func (c *CredentialStore) Accounts(ctx context.Context) ([]core.Account, error) {
	return c.loadAccounts(ctx)
}

// Signup registers a new account. It returns false, with no mutation, when
// an account with the same email already exists. Signup never logs in.
func (c *CredentialStore) Signup(ctx context.Context, name, email, password string) (bool, error) {
	accounts, err := c.loadAccounts(ctx)
	if err != nil {
		return false, err
	}

	for _, a := range accounts {
		if a.Email == email {
			return false, nil
		}
	}

	accounts = append(accounts, core.Account{Name: name, Email: email, Password: password})
	if err := c.saveAccounts(ctx, accounts); err != nil {
		return false, err
	}

	slog.Info("Account registered", "email", email)
	return true, nil
}

// Login matches email and password exactly. On success the session is set
// and persisted; on mismatch any prior session is left untouched.
func (c *CredentialStore) Login(ctx context.Context, email, password string) (bool, error) {
	accounts, err := c.loadAccounts(ctx)
	if err != nil {
		return false, err
	}

	for _, a := range accounts {
		if a.Email == email && a.Password == password {
			s := core.Session{Email: a.Email, Name: a.Name}
			raw, err := json.Marshal(s)
			if err != nil {
				return false, fmt.Errorf("encode session: %w", err)
			}
			if err := c.store.Set(ctx, kv.KeyCurrentUser, string(raw)); err != nil {
				return false, fmt.Errorf("persist session: %w", err)
			}
			c.session = &s
			slog.Info("Login succeeded", "email", email)
			return true, nil
		}
	}

	slog.Debug("Login rejected", "email", email)
	return false, nil
}

// Logout clears the session and removes its persisted record.
func (c *CredentialStore) Logout(ctx context.Context) error {
	if err := c.store.Delete(ctx, kv.KeyCurrentUser); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	c.session = nil
	return nil
}

func (c *CredentialStore) loadAccounts(ctx context.Context) ([]core.Account, error) {
	raw, ok, err := c.store.Get(ctx, kv.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var accounts []core.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	return accounts, nil
}

func (c *CredentialStore) saveAccounts(ctx context.Context, accounts []core.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	if err := c.store.Set(ctx, kv.KeyUsers, string(raw)); err != nil {
		return fmt.Errorf("persist accounts: %w", err)
	}
	return nil
}
