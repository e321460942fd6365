package core

import "testing"

func TestIncomeValidate(t *testing.T) {
	good := Income{Amount: "100", Source: "Salary", Date: "2024-01-05"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Income{
		{Amount: "", Source: "Salary", Date: "2024-01-05"},
		{Amount: "  ", Source: "Salary", Date: "2024-01-05"},
		{Amount: "100", Source: "", Date: "2024-01-05"},
		{Amount: "100", Source: "Salary", Date: ""},
		{Amount: "100", Source: "Salary", Date: "05/01/2024"},
	}
	for i, in := range bads {
		if err := in.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{Amount: "30", Category: "Food", Note: "lunch", Date: "2024-01-05"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	// Note is optional.
	if err := (Expense{Amount: "30", Category: "Food", Date: "2024-01-05"}).Validate(); err != nil {
		t.Fatalf("expected ok without note, got %v", err)
	}

	bads := []Expense{
		{Amount: "", Category: "Food", Date: "2024-01-05"},
		{Amount: "30", Category: "", Date: "2024-01-05"},
		{Amount: "30", Category: "  ", Date: "2024-01-05"},
		{Amount: "30", Category: "Food", Date: "not-a-date"},
	}
	for i, e := range bads {
		if err := e.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestExpenseMonth(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2024-01-05", "Jan"},
		{"2024-12-31", "Dec"},
		{"bad", ""},
	}
	for i, tc := range cases {
		got := Expense{Date: tc.date}.Month()
		if got != tc.want {
			t.Fatalf("case %d: got %q, want %q", i, got, tc.want)
		}
	}
}

func TestCategories(t *testing.T) {
	expenses := []Expense{
		{Category: "Food"},
		{Category: "Coffee"},
		{Category: "Travel"},
		{Category: "Coffee"},
		{Category: "Gym"},
	}
	got := Categories(expenses)
	want := []string{"Food", "Travel", "Rent", "Shopping", "Bills", "Coffee", "Gym"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
