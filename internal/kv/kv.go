// Package kv provides the persistent key-value substrate the stores write
// through: string keys mapped to JSON-encoded string values, rewritten in
// full on every mutation.
package kv

import "context"

// Well-known keys. Per-account collections are namespaced with the account
// email via IncomesKey, ExpensesKey and BudgetsKey.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyTheme       = "theme"
	KeyColorIndex  = "themeColorIndex"
)

// IncomesKey returns the storage key for an account's income list.
func IncomesKey(email string) string { return "incomes_" + email }

// ExpensesKey returns the storage key for an account's expense list.
func ExpensesKey(email string) string { return "expenses_" + email }

// BudgetsKey returns the storage key for an account's budget mapping.
func BudgetsKey(email string) string { return "budgets_" + email }

// Store is the substrate interface. Set overwrites, Get reports presence
// explicitly, Delete of a missing key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}
