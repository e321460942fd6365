package core

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the wire format for entry dates (ISO calendar date).
const DateLayout = "2006-01-02"

type (
	// Account is a registered user. Email is the unique key; comparison is
	// case-sensitive exact match. The password is stored as entered.
	Account struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// Session is the projection of the authenticated account.
	Session struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	// Income is a single income record. Amount stays a decimal string on the
	// wire; arithmetic goes through ParseAmount.
	Income struct {
		ID     int64  `json:"id"`
		Amount string `json:"amount"`
		Source string `json:"source"`
		Date   string `json:"date"`
	}

	// Expense is a single expense record.
	Expense struct {
		ID       int64  `json:"id"`
		Amount   string `json:"amount"`
		Category string `json:"category"`
		Note     string `json:"note"`
		Date     string `json:"date"`
	}

	// Budgets maps a category name to its spending limit.
	Budgets map[string]float64
)

var (
	ErrEmptyAmount   = errors.New("empty amount")
	ErrEmptySource   = errors.New("empty source")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidLimit  = errors.New("invalid budget limit")
)

// DefaultCategories are the expense categories offered before the user adds
// custom ones.
var DefaultCategories = []string{"Food", "Travel", "Rent", "Shopping", "Bills"}

func validDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func (i Income) Validate() error {
	if strings.TrimSpace(i.Amount) == "" {
		return ErrEmptyAmount
	}
	if strings.TrimSpace(i.Source) == "" {
		return ErrEmptySource
	}
	if !validDate(i.Date) {
		return ErrInvalidDate
	}
	return nil
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Amount) == "" {
		return ErrEmptyAmount
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if !validDate(e.Date) {
		return ErrInvalidDate
	}
	return nil
}

// Month returns the short month name of the expense date ("Jan", "Feb", ...)
// used for monthly grouping. Empty when the date does not parse.
func (e Expense) Month() string {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return ""
	}
	return t.Format("Jan")
}

// Categories returns the default categories plus any custom category present
// in the expense list, in first-appearance order.
func Categories(expenses []Expense) []string {
	out := append([]string(nil), DefaultCategories...)
	seen := make(map[string]struct{}, len(out))
	for _, c := range out {
		seen[c] = struct{}{}
	}
	for _, e := range expenses {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	return out
}
