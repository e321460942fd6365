package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"expenseflow/internal/auth"
	"expenseflow/internal/cli"
	"expenseflow/internal/core"
	"expenseflow/internal/ledger"
	"expenseflow/internal/router"
	"expenseflow/internal/theme"
)

const usage = `Usage: expenseflow <command> [flags]

Commands:
  signup          register a new account
  login           authenticate and start a session
  logout          end the current session
  whoami          show the active session
  add-income      record an income entry
  add-expense     record an expense entry
  update-expense  replace an expense entry by id
  delete-expense  remove an expense entry by id
  set-budget      set the spending limit for a category
  history         list expenses with optional filters
  summary         show totals, category and monthly breakdowns
  budgets         show budget progress per category
  theme           show or change display preferences
`

// app wires the stores together. They are constructed once at startup and
// passed explicitly; there are no package-level singletons.
type app struct {
	creds  *auth.CredentialStore
	ledger *ledger.Store
	theme  *theme.Store
	router *router.Router
}

func main() {
	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)
	cli.SetupLogger(cfg.LogLevel)

	if cats := cfg.CategoryList(); cats != nil {
		core.DefaultCategories = cats
	}

	ctx := context.Background()
	res := cli.InitStore(ctx, logger, cfg)
	defer func() {
		if err := res.Cleanup(); err != nil {
			logger.Error("Failed to close storage backend", "error", err)
		}
	}()

	creds, err := auth.NewCredentialStore(ctx, res.Store)
	if err != nil {
		logger.Error("Failed to initialize credential store", "error", err)
		os.Exit(1)
	}

	themes, err := theme.NewStore(ctx, res.Store)
	if err != nil {
		logger.Error("Failed to initialize theme store", "error", err)
		os.Exit(1)
	}

	a := &app{
		creds:  creds,
		ledger: ledger.NewStore(res.Store),
		theme:  themes,
		router: router.New(creds.Session),
	}

	// A restored session means the ledger loads before any command runs,
	// exactly as a fresh page load would.
	if s := creds.Session(); s != nil {
		if err := a.ledger.Load(ctx, s.Email); err != nil {
			logger.Error("Failed to load ledger", "error", err, "email", s.Email)
			os.Exit(1)
		}
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		logger.Error("Command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "signup":
		return a.cmdSignup(ctx, args)
	case "login":
		return a.cmdLogin(ctx, args)
	case "logout":
		return a.cmdLogout(ctx)
	case "whoami":
		return a.cmdWhoami()
	case "add-income":
		return a.cmdAddIncome(ctx, args)
	case "add-expense":
		return a.cmdAddExpense(ctx, args)
	case "update-expense":
		return a.cmdUpdateExpense(ctx, args)
	case "delete-expense":
		return a.cmdDeleteExpense(ctx, args)
	case "set-budget":
		return a.cmdSetBudget(ctx, args)
	case "history":
		return a.cmdHistory(args)
	case "summary":
		return a.cmdSummary()
	case "budgets":
		return a.cmdBudgets()
	case "theme":
		return a.cmdTheme(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) cmdSignup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "account holder name")
	email := fs.String("email", "", "account email (unique)")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if *name == "" || *email == "" || *password == "" {
		return fmt.Errorf("name, email and password are required")
	}

	ok, err := a.creds.Signup(ctx, *name, *email, *password)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Email already exists")
		return nil
	}
	fmt.Println("Account created. Log in to continue.")
	return nil
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	ok, err := a.creds.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Invalid credentials")
		return nil
	}
	if err := a.ledger.Load(ctx, *email); err != nil {
		return err
	}
	if err := a.router.Navigate(router.PageDashboard); err != nil {
		return err
	}
	fmt.Printf("Welcome, %s\n", a.creds.Session().Name)
	return nil
}

func (a *app) cmdLogout(ctx context.Context) error {
	if err := a.creds.Logout(ctx); err != nil {
		return err
	}
	// Drop the ledger before anything else can read it.
	a.ledger.Reset()
	if err := a.router.Navigate(router.PageHome); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

func (a *app) cmdWhoami() error {
	s := a.creds.Session()
	if s == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s>\n", s.Name, s.Email)
	return nil
}

func (a *app) requireSession(page router.Page) error {
	return a.router.Navigate(page)
}

func (a *app) cmdAddIncome(ctx context.Context, args []string) error {
	if err := a.requireSession(router.PageAddIncome); err != nil {
		return err
	}

	fs := flag.NewFlagSet("add-income", flag.ExitOnError)
	amount := fs.String("amount", "", "income amount")
	source := fs.String("source", "", "income source")
	date := fs.String("date", today(), "entry date (YYYY-MM-DD)")
	fs.Parse(args)

	in, err := a.ledger.AddIncome(ctx, core.Income{Amount: *amount, Source: *source, Date: *date})
	if err != nil {
		return err
	}
	fmt.Printf("Income #%d recorded: %s from %s\n", in.ID, in.Amount, in.Source)
	return nil
}

func (a *app) cmdAddExpense(ctx context.Context, args []string) error {
	if err := a.requireSession(router.PageAddExpense); err != nil {
		return err
	}

	fs := flag.NewFlagSet("add-expense", flag.ExitOnError)
	amount := fs.String("amount", "", "expense amount")
	category := fs.String("category", "", "expense category")
	note := fs.String("note", "", "optional note")
	date := fs.String("date", today(), "entry date (YYYY-MM-DD)")
	fs.Parse(args)

	e, err := a.ledger.AddExpense(ctx, core.Expense{
		Amount:   *amount,
		Category: *category,
		Note:     *note,
		Date:     *date,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Expense #%d recorded: %s on %s\n", e.ID, e.Amount, e.Category)
	return nil
}

func (a *app) cmdUpdateExpense(ctx context.Context, args []string) error {
	if err := a.requireSession(router.PageHistory); err != nil {
		return err
	}

	fs := flag.NewFlagSet("update-expense", flag.ExitOnError)
	id := fs.Int64("id", 0, "expense id")
	amount := fs.String("amount", "", "expense amount")
	category := fs.String("category", "", "expense category")
	note := fs.String("note", "", "optional note")
	date := fs.String("date", today(), "entry date (YYYY-MM-DD)")
	fs.Parse(args)

	err := a.ledger.UpdateExpense(ctx, *id, core.Expense{
		Amount:   *amount,
		Category: *category,
		Note:     *note,
		Date:     *date,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Expense #%d updated\n", *id)
	return nil
}

func (a *app) cmdDeleteExpense(ctx context.Context, args []string) error {
	if err := a.requireSession(router.PageHistory); err != nil {
		return err
	}

	fs := flag.NewFlagSet("delete-expense", flag.ExitOnError)
	id := fs.Int64("id", 0, "expense id")
	fs.Parse(args)

	if err := a.ledger.DeleteExpense(ctx, *id); err != nil {
		return err
	}
	fmt.Printf("Expense #%d deleted\n", *id)
	return nil
}

func (a *app) cmdSetBudget(ctx context.Context, args []string) error {
	if err := a.requireSession(router.PageBudget); err != nil {
		return err
	}

	fs := flag.NewFlagSet("set-budget", flag.ExitOnError)
	category := fs.String("category", "", "budget category")
	amount := fs.Float64("amount", 0, "budget limit")
	fs.Parse(args)

	if err := a.ledger.SetBudget(ctx, *category, *amount); err != nil {
		return err
	}
	fmt.Printf("Budget for %s set to %s\n", *category, core.FormatAmount(*amount))
	return nil
}

func (a *app) cmdHistory(args []string) error {
	if err := a.requireSession(router.PageHistory); err != nil {
		return err
	}

	fs := flag.NewFlagSet("history", flag.ExitOnError)
	category := fs.String("category", "All", "filter by category")
	date := fs.String("date", "", "filter by exact date (YYYY-MM-DD)")
	sortBy := fs.String("sort", core.SortByDate, "sort order: date or amount")
	fs.Parse(args)

	items := a.ledger.History(core.Filter{Category: *category, Date: *date, SortBy: *sortBy})
	if len(items) == 0 {
		fmt.Println("No expenses found")
		return nil
	}
	for _, e := range items {
		fmt.Printf("#%d  %s  %10s  %-12s %s\n", e.ID, e.Date, e.Amount, e.Category, e.Note)
	}
	return nil
}

func (a *app) cmdSummary() error {
	if err := a.requireSession(router.PageDashboard); err != nil {
		return err
	}

	fmt.Printf("Total income:  %s\n", core.FormatAmount(a.ledger.TotalIncome()))
	fmt.Printf("Total expense: %s\n", core.FormatAmount(a.ledger.TotalExpense()))
	fmt.Printf("Balance:       %s\n", core.FormatAmount(a.ledger.Balance()))

	if sums := a.ledger.CategorySums(); len(sums) > 0 {
		fmt.Println("\nBy category:")
		for _, cs := range sums {
			fmt.Printf("  %-12s %s\n", cs.Name, core.FormatAmount(cs.Amount))
		}
	}
	if sums := a.ledger.MonthlySums(); len(sums) > 0 {
		fmt.Println("\nBy month:")
		for _, ms := range sums {
			fmt.Printf("  %-12s %s\n", ms.Month, core.FormatAmount(ms.Amount))
		}
	}
	return nil
}

func (a *app) cmdBudgets() error {
	if err := a.requireSession(router.PageBudget); err != nil {
		return err
	}

	for _, row := range a.ledger.BudgetProgress() {
		status := ""
		if row.OverBudget {
			status = "  OVER BUDGET"
		}
		if row.Limit > 0 {
			fmt.Printf("%-12s spent %s of %s (%.0f%%)%s\n",
				row.Category,
				core.FormatAmount(row.Spent),
				core.FormatAmount(row.Limit),
				row.Percent,
				status)
		} else {
			fmt.Printf("%-12s spent %s (no budget set)\n",
				row.Category, core.FormatAmount(row.Spent))
		}
	}
	return nil
}

func (a *app) cmdTheme(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("theme", flag.ExitOnError)
	toggle := fs.Bool("toggle", false, "switch between dark and light")
	rotate := fs.Bool("rotate", false, "advance to the next accent palette")
	fs.Parse(args)

	if *toggle {
		mode, err := a.theme.Toggle(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Theme set to %s\n", mode)
	}
	if *rotate {
		p, err := a.theme.RotateColors(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Accent palette set to %s\n", p.Name)
	}
	if !*toggle && !*rotate {
		p := a.theme.Colors()
		fmt.Printf("Mode: %s, palette: %s (%s)\n", a.theme.Mode(), p.Name, p.Primary)
	}
	return nil
}

func today() string {
	return time.Now().Format(core.DateLayout)
}
