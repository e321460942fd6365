package core

import (
	"sort"
	"time"
)

// Sort orders for expense history.
const (
	SortByDate   = "date"
	SortByAmount = "amount"
)

// Filter narrows and orders the expense history. An empty or "All" category
// passes every entry; an empty date disables date matching.
type Filter struct {
	Category string
	Date     string
	SortBy   string
}

// FilterExpenses applies f to a copy of expenses. Ordering is newest-first
// for SortByDate and largest-first for SortByAmount; the input slice is
// never mutated.
func FilterExpenses(expenses []Expense, f Filter) []Expense {
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if f.Category != "" && f.Category != "All" && e.Category != f.Category {
			continue
		}
		if f.Date != "" && e.Date != f.Date {
			continue
		}
		out = append(out, e)
	}

	switch f.SortBy {
	case SortByAmount:
		sort.SliceStable(out, func(i, j int) bool {
			return ParseAmount(out[i].Amount) > ParseAmount(out[j].Amount)
		})
	case SortByDate, "":
		sort.SliceStable(out, func(i, j int) bool {
			ti, _ := time.Parse(DateLayout, out[i].Date)
			tj, _ := time.Parse(DateLayout, out[j].Date)
			return ti.After(tj)
		})
	}
	return out
}
