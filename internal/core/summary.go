package core

import "sort"

// CategoryAmount is an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount float64
}

// MonthAmount is an amount aggregated by short month name.
type MonthAmount struct {
	Month  string
	Amount float64
}

// BudgetProgressRow reports how far a category's spending has progressed
// against its limit.
type BudgetProgressRow struct {
	Category   string
	Limit      float64
	Spent      float64
	Remaining  float64
	Percent    float64
	OverBudget bool
}

// TotalIncome sums all income amounts.
func TotalIncome(incomes []Income) float64 {
	var sum float64
	for _, in := range incomes {
		sum += ParseAmount(in.Amount)
	}
	return sum
}

// TotalExpense sums all expense amounts.
func TotalExpense(expenses []Expense) float64 {
	var sum float64
	for _, e := range expenses {
		sum += ParseAmount(e.Amount)
	}
	return sum
}

// Balance is total income minus total expense.
func Balance(incomes []Income, expenses []Expense) float64 {
	return TotalIncome(incomes) - TotalExpense(expenses)
}

// CategorySums aggregates expense amounts per category, in first-appearance
// order so chart slices stay stable across recomputation.
func CategorySums(expenses []Expense) []CategoryAmount {
	idx := make(map[string]int, len(expenses))
	var out []CategoryAmount
	for _, e := range expenses {
		if i, ok := idx[e.Category]; ok {
			out[i].Amount += ParseAmount(e.Amount)
			continue
		}
		idx[e.Category] = len(out)
		out = append(out, CategoryAmount{Name: e.Category, Amount: ParseAmount(e.Amount)})
	}
	return out
}

// CategoryExpense sums the expenses recorded under a single category.
func CategoryExpense(expenses []Expense, category string) float64 {
	var sum float64
	for _, e := range expenses {
		if e.Category == category {
			sum += ParseAmount(e.Amount)
		}
	}
	return sum
}

// MonthlySums aggregates expense amounts per calendar month of the entry
// date, in first-appearance order. Entries with unparseable dates are
// skipped.
func MonthlySums(expenses []Expense) []MonthAmount {
	idx := make(map[string]int, 12)
	var out []MonthAmount
	for _, e := range expenses {
		m := e.Month()
		if m == "" {
			continue
		}
		if i, ok := idx[m]; ok {
			out[i].Amount += ParseAmount(e.Amount)
			continue
		}
		idx[m] = len(out)
		out = append(out, MonthAmount{Month: m, Amount: ParseAmount(e.Amount)})
	}
	return out
}

// BudgetProgress computes per-category progress for every known category:
// the defaults, any custom category found in the expenses, and any category
// that only has a budget set. Percent is 0 when no limit is set.
func BudgetProgress(budgets Budgets, expenses []Expense) []BudgetProgressRow {
	cats := Categories(expenses)
	seen := make(map[string]struct{}, len(cats))
	for _, c := range cats {
		seen[c] = struct{}{}
	}
	var extra []string
	for c := range budgets {
		if _, ok := seen[c]; !ok {
			extra = append(extra, c)
		}
	}
	sort.Strings(extra)
	cats = append(cats, extra...)

	out := make([]BudgetProgressRow, 0, len(cats))
	for _, c := range cats {
		limit := budgets[c]
		spent := CategoryExpense(expenses, c)
		row := BudgetProgressRow{
			Category:  c,
			Limit:     limit,
			Spent:     spent,
			Remaining: limit - spent,
		}
		if limit > 0 {
			row.Percent = spent / limit * 100
			row.OverBudget = spent > limit
		}
		out = append(out, row)
	}
	return out
}
