// Package ledger owns the per-account collections: incomes, expenses and
// budgets. Collections are fully loaded when a session starts and fully
// rewritten to the substrate on every mutation.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"expenseflow/internal/cache"
	"expenseflow/internal/core"
	"expenseflow/internal/kv"
)

// Store manages the ledger of the currently loaded account and derives
// aggregate figures from it. Aggregates are pure recomputations memoized on
// a version counter that advances with every mutation.
type Store struct {
	store kv.Store
	email string

	incomes  []core.Income
	expenses []core.Expense
	budgets  core.Budgets

	version uint64
	lastID  int64

	catSums   *cache.LRU[[]core.CategoryAmount]
	monthSums *cache.LRU[[]core.MonthAmount]
}

func NewStore(store kv.Store) *Store {
	return &Store{
		store:     store,
		budgets:   make(core.Budgets),
		catSums:   cache.NewLRU[[]core.CategoryAmount](4),
		monthSums: cache.NewLRU[[]core.MonthAmount](4),
	}
}

// Load replaces the in-memory state with the collections persisted under the
// given account email.
func (s *Store) Load(ctx context.Context, email string) error {
	var (
		incomes  []core.Income
		expenses []core.Expense
		budgets  = make(core.Budgets)
	)

	if err := s.loadJSON(ctx, kv.IncomesKey(email), &incomes); err != nil {
		return fmt.Errorf("load incomes: %w", err)
	}
	if err := s.loadJSON(ctx, kv.ExpensesKey(email), &expenses); err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}
	if err := s.loadJSON(ctx, kv.BudgetsKey(email), &budgets); err != nil {
		return fmt.Errorf("load budgets: %w", err)
	}

	s.email = email
	s.incomes = incomes
	s.expenses = expenses
	s.budgets = budgets
	s.version++

	slog.Info("Ledger loaded",
		"email", email,
		"incomes", len(incomes),
		"expenses", len(expenses),
		"budgets", len(budgets))
	return nil
}

// Reset drops all in-memory state. Called on logout so the next session can
// never observe the previous account's data.
func (s *Store) Reset() {
	s.email = ""
	s.incomes = nil
	s.expenses = nil
	s.budgets = make(core.Budgets)
	s.lastID = 0
	s.version++
}

// Loaded reports whether an account ledger is currently in memory.
func (s *Store) Loaded() bool { return s.email != "" }

// Email returns the account the ledger is loaded for.
func (s *Store) Email() string { return s.email }

// Version returns the mutation counter.
func (s *Store) Version() uint64 { return s.version }

// nextID returns a millisecond timestamp, bumped past the previous id when
// two entries land within the same millisecond. Ids stay unique and
// creation-time ordered.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// AddIncome validates the entry, assigns an id and persists the full income
// list. The stored entry is returned.
func (s *Store) AddIncome(ctx context.Context, in core.Income) (core.Income, error) {
	if err := s.requireLoaded(); err != nil {
		return core.Income{}, err
	}
	if err := in.Validate(); err != nil {
		return core.Income{}, err
	}

	in.ID = s.nextID()
	updated := append(append([]core.Income(nil), s.incomes...), in)
	if err := s.saveJSON(ctx, kv.IncomesKey(s.email), updated); err != nil {
		return core.Income{}, fmt.Errorf("persist incomes: %w", err)
	}
	s.incomes = updated
	s.version++

	slog.Debug("Income added", "id", in.ID, "source", in.Source, "amount", in.Amount)
	return in, nil
}

// AddExpense validates the entry, assigns an id and persists the full
// expense list.
func (s *Store) AddExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	if err := s.requireLoaded(); err != nil {
		return core.Expense{}, err
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}

	e.ID = s.nextID()
	updated := append(append([]core.Expense(nil), s.expenses...), e)
	if err := s.saveJSON(ctx, kv.ExpensesKey(s.email), updated); err != nil {
		return core.Expense{}, fmt.Errorf("persist expenses: %w", err)
	}
	s.expenses = updated
	s.version++

	slog.Debug("Expense added", "id", e.ID, "category", e.Category, "amount", e.Amount)
	return e, nil
}

// UpdateExpense replaces the entry whose id matches. The replacement's id is
// forced to the original regardless of what was passed; other entries are
// untouched. When no entry matches, the unchanged list is still persisted.
func (s *Store) UpdateExpense(ctx context.Context, id int64, replacement core.Expense) error {
	if err := s.requireLoaded(); err != nil {
		return err
	}
	if err := replacement.Validate(); err != nil {
		return err
	}

	updated := make([]core.Expense, len(s.expenses))
	for i, e := range s.expenses {
		if e.ID == id {
			replacement.ID = id
			updated[i] = replacement
		} else {
			updated[i] = e
		}
	}
	if err := s.saveJSON(ctx, kv.ExpensesKey(s.email), updated); err != nil {
		return fmt.Errorf("persist expenses: %w", err)
	}
	s.expenses = updated
	s.version++
	return nil
}

// DeleteExpense removes every entry with a matching id and persists the
// filtered list.
func (s *Store) DeleteExpense(ctx context.Context, id int64) error {
	if err := s.requireLoaded(); err != nil {
		return err
	}

	updated := make([]core.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		if e.ID != id {
			updated = append(updated, e)
		}
	}
	if err := s.saveJSON(ctx, kv.ExpensesKey(s.email), updated); err != nil {
		return fmt.Errorf("persist expenses: %w", err)
	}
	s.expenses = updated
	s.version++
	return nil
}

// SetBudget overwrites (or creates) the limit for a category and persists
// the full mapping. Limits must be positive.
func (s *Store) SetBudget(ctx context.Context, category string, amount float64) error {
	if err := s.requireLoaded(); err != nil {
		return err
	}
	if category == "" {
		return core.ErrEmptyCategory
	}
	if amount <= 0 {
		return core.ErrInvalidLimit
	}

	updated := make(core.Budgets, len(s.budgets)+1)
	for k, v := range s.budgets {
		updated[k] = v
	}
	updated[category] = amount
	if err := s.saveJSON(ctx, kv.BudgetsKey(s.email), updated); err != nil {
		return fmt.Errorf("persist budgets: %w", err)
	}
	s.budgets = updated
	s.version++
	return nil
}

// Incomes returns a copy of the income list.
func (s *Store) Incomes() []core.Income {
	return append([]core.Income(nil), s.incomes...)
}

// Expenses returns a copy of the expense list.
func (s *Store) Expenses() []core.Expense {
	return append([]core.Expense(nil), s.expenses...)
}

// Budgets returns a copy of the budget mapping.
func (s *Store) Budgets() core.Budgets {
	out := make(core.Budgets, len(s.budgets))
	for k, v := range s.budgets {
		out[k] = v
	}
	return out
}

func (s *Store) TotalIncome() float64 { return core.TotalIncome(s.incomes) }

func (s *Store) TotalExpense() float64 { return core.TotalExpense(s.expenses) }

func (s *Store) Balance() float64 { return s.TotalIncome() - s.TotalExpense() }

// CategorySums returns per-category expense totals, memoized per version.
func (s *Store) CategorySums() []core.CategoryAmount {
	key := fmt.Sprintf("category@%d", s.version)
	if sums, ok := s.catSums.Get(key); ok {
		return sums
	}
	sums := core.CategorySums(s.expenses)
	s.catSums.Set(key, sums)
	return sums
}

// MonthlySums returns per-month expense totals, memoized per version.
func (s *Store) MonthlySums() []core.MonthAmount {
	key := fmt.Sprintf("monthly@%d", s.version)
	if sums, ok := s.monthSums.Get(key); ok {
		return sums
	}
	sums := core.MonthlySums(s.expenses)
	s.monthSums.Set(key, sums)
	return sums
}

// BudgetProgress reports spending against limits for every known category.
func (s *Store) BudgetProgress() []core.BudgetProgressRow {
	return core.BudgetProgress(s.budgets, s.expenses)
}

// History returns the filtered, ordered expense history.
func (s *Store) History(f core.Filter) []core.Expense {
	return core.FilterExpenses(s.expenses, f)
}

var errNoSession = fmt.Errorf("no account ledger loaded")

func (s *Store) requireLoaded() error {
	if s.email == "" {
		return errNoSession
	}
	return nil
}

func (s *Store) loadJSON(ctx context.Context, key string, dst any) error {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}

func (s *Store) saveJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, key, string(raw))
}
