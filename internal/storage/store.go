// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/acme-dashboard/internal/models"
)

// ItemsPerPage is the page size of the filtered invoice listing.
const ItemsPerPage = 6

// InvoiceWriter is the write side used by the invoice form actions.
type InvoiceWriter interface {
	// CreateInvoice persists a new invoice. The invoice.ID field is
	// populated by the store when empty.
	CreateInvoice(ctx context.Context, invoice *models.Invoice) error

	// UpdateInvoice overwrites customer, amount and status of the invoice
	// with invoice.ID. The date is left untouched. Updating an id that
	// matches no row is not an error.
	UpdateInvoice(ctx context.Context, invoice *models.Invoice) error

	// DeleteInvoice removes the invoice with the given id. Deleting an id
	// that matches no row is not an error.
	DeleteInvoice(ctx context.Context, id string) error
}

// InvoiceReader serves the dashboard's invoice reads.
type InvoiceReader interface {
	// GetInvoice returns the invoice with the given id or an error marked
	// ErrNotFound.
	GetInvoice(ctx context.Context, id string) (*models.Invoice, error)

	// ListInvoices returns one page (1-based) of invoices matching query,
	// newest first.
	ListInvoices(ctx context.Context, query string, page int) ([]models.InvoiceRow, error)

	// CountInvoicePages returns how many pages ListInvoices has for query.
	CountInvoicePages(ctx context.Context, query string) (int, error)

	// LatestInvoices returns the most recent invoices with formatted amounts.
	LatestInvoices(ctx context.Context, limit int) ([]models.LatestInvoice, error)

	// CardData returns the overview counts and paid/pending totals.
	CardData(ctx context.Context) (*models.CardData, error)
}

// CustomerStore covers customer reads and seeding.
type CustomerStore interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	ListCustomers(ctx context.Context) ([]models.CustomerField, error)
	ListCustomerSummaries(ctx context.Context, query string) ([]models.CustomerSummary, error)
}

// UserStore covers the dashboard login user.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns nil, nil when no user has the address.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns nil, nil when no user has the id.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Store defines the full persistence boundary of the dashboard.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the action and service layers.
type Store interface {
	InvoiceWriter
	InvoiceReader
	CustomerStore
	UserStore

	// Close releases any resources held by the store.
	Close() error
}
