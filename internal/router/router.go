// Package router is the explicit page state machine: an enum of page
// identifiers plus a navigation call with an authentication guard, replacing
// the broadcast-event page switching of earlier iterations.
package router

import (
	"errors"
	"fmt"

	"expenseflow/internal/core"
)

// Page identifies a screen of the application.
type Page string

const (
	PageHome       Page = "home"
	PageFeatures   Page = "features"
	PageLogin      Page = "login"
	PageSignup     Page = "signup"
	PageDashboard  Page = "dashboard"
	PageAddIncome  Page = "add-income"
	PageAddExpense Page = "add-expense"
	PageHistory    Page = "expense-history"
	PageBudget     Page = "budget-planner"
)

var pages = map[Page]bool{
	PageHome:       true,
	PageFeatures:   true,
	PageLogin:      true,
	PageSignup:     true,
	PageDashboard:  true,
	PageAddIncome:  true,
	PageAddExpense: true,
	PageHistory:    true,
	PageBudget:     true,
}

// RequiresAuth reports whether the page belongs to the dashboard family.
func (p Page) RequiresAuth() bool {
	switch p {
	case PageDashboard, PageAddIncome, PageAddExpense, PageHistory, PageBudget:
		return true
	}
	return false
}

// Valid reports whether p names a known page.
func (p Page) Valid() bool { return pages[p] }

var ErrAuthRequired = errors.New("page requires an active session")

// SessionFunc reports the active session, nil when logged out.
type SessionFunc func() *core.Session

// Router tracks the current page. Components call Navigate directly instead
// of listening for a global event.
type Router struct {
	current Page
	session SessionFunc
}

// New starts at the home page. session may be nil, which disables guards.
func New(session SessionFunc) *Router {
	return &Router{current: PageHome, session: session}
}

// Current returns the active page.
func (r *Router) Current() Page { return r.current }

// Navigate moves to the given page. Dashboard-family pages are refused
// without an active session.
func (r *Router) Navigate(p Page) error {
	if !p.Valid() {
		return fmt.Errorf("unknown page %q", p)
	}
	if p.RequiresAuth() && r.session != nil && r.session() == nil {
		return ErrAuthRequired
	}
	r.current = p
	return nil
}
