// Package actions implements the dashboard's form actions: create, update and
// delete invoices, and sign in.
//
// Create and update report persistence failures as a message on the returned
// State, because their caller is a form that re-renders with that message.
// Delete returns persistence failures as an error, because its caller is a
// table row with no place to show one; the HTTP layer turns it into a 500.
package actions

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/mmynk/acme-dashboard/internal/auth"
	"github.com/mmynk/acme-dashboard/internal/cache"
	"github.com/mmynk/acme-dashboard/internal/metrics"
	"github.com/mmynk/acme-dashboard/internal/storage"
	"github.com/mmynk/acme-dashboard/internal/validation"
)

const (
	// InvoicesPath is the cached invoice listing and the post-mutation redirect.
	InvoicesPath = "/dashboard/invoices"
	// DashboardPath is where a successful sign-in lands.
	DashboardPath = "/dashboard"
)

const (
	MsgCreateMissing = "Missing Fields. Failed to Create Invoice."
	MsgCreateDB      = "Database Error: Failed to Create Invoice."
	MsgUpdateMissing = "Missing Fields. Failed to Update Invoice."
	MsgUpdateDB      = "Database Error: Failed to Update Invoice."
	MsgDeleted       = "Deleted Invoice."
	MsgInvalidCreds  = "Invalid credentials."
	MsgSomethingWent = "Something went wrong."
)

// State is what a form shows after a failed submission.
type State struct {
	Errors  validation.FieldErrors `json:"errors,omitempty"`
	Message string                 `json:"message,omitempty"`
}

// Outcome is the result of a create or update. Exactly one of State
// (failure) or RedirectTo (success) is meaningful.
type Outcome struct {
	State
	RedirectTo string `json:"redirectTo,omitempty"`
}

// Redirected reports whether the action succeeded.
func (o Outcome) Redirected() bool {
	return o.RedirectTo != ""
}

// AuthResult is the result of a sign-in attempt.
type AuthResult struct {
	Message    string
	Session    *auth.Session
	RedirectTo string
}

// Actions runs the form actions against a store, a page cache and an auth provider.
type Actions struct {
	store    storage.InvoiceWriter
	cache    cache.PageCache
	provider auth.Provider
	metrics  *metrics.Metrics
	now      func() time.Time
	logger   *slog.Logger
}

// Option configures Actions.
type Option func(*Actions)

// WithClock sets the clock used to date new invoices.
func WithClock(now func() time.Time) Option {
	return func(a *Actions) { a.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *Actions) { a.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Actions) { a.metrics = m }
}

// New creates the actions.
func New(store storage.InvoiceWriter, pages cache.PageCache, provider auth.Provider, opts ...Option) *Actions {
	a := &Actions{
		store:    store,
		cache:    pages,
		provider: provider,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.cache == nil {
		a.cache = cache.Disabled{}
	}
	return a
}

// Form fields read by Authenticate.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

func credentialsFrom(form url.Values) auth.Credentials {
	return auth.Credentials{
		Email:    form.Get(FieldEmail),
		Password: form.Get(FieldPassword),
	}
}

func (a *Actions) invalidate(ctx context.Context) {
	a.cache.Invalidate(ctx, InvoicesPath)
}
