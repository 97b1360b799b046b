package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	ierr "github.com/mmynk/acme-dashboard/internal/errors"
	"github.com/mmynk/acme-dashboard/internal/models"
	"github.com/mmynk/acme-dashboard/internal/money"
	"github.com/mmynk/acme-dashboard/internal/storage"
)

const invoiceSearch = `
	FROM invoices
	JOIN customers ON invoices.customer_id = customers.id
	WHERE customers.name LIKE ? ESCAPE '\'
		OR customers.email LIKE ? ESCAPE '\'
		OR CAST(invoices.amount AS TEXT) LIKE ? ESCAPE '\'
		OR invoices.date LIKE ? ESCAPE '\'
		OR invoices.status LIKE ? ESCAPE '\'
`

// CreateInvoice persists a new invoice to the database.
func (s *SQLiteStore) CreateInvoice(ctx context.Context, invoice *models.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO invoices (id, customer_id, amount, status, date) VALUES (?, ?, ?, ?, ?)",
		invoice.ID, invoice.CustomerID, invoice.Amount, string(invoice.Status), invoice.Date,
	)
	if err != nil {
		return dbError(err, "failed to insert invoice")
	}
	return nil
}

// UpdateInvoice updates customer, amount and status. Zero matched rows is not an error.
func (s *SQLiteStore) UpdateInvoice(ctx context.Context, invoice *models.Invoice) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE invoices SET customer_id = ?, amount = ?, status = ? WHERE id = ?",
		invoice.CustomerID, invoice.Amount, string(invoice.Status), invoice.ID,
	)
	if err != nil {
		return dbError(err, "failed to update invoice")
	}
	return nil
}

// DeleteInvoice removes an invoice. Zero matched rows is not an error.
func (s *SQLiteStore) DeleteInvoice(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM invoices WHERE id = ?", id); err != nil {
		return dbError(err, "failed to delete invoice")
	}
	return nil
}

// GetInvoice retrieves an invoice by ID.
func (s *SQLiteStore) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	invoice := &models.Invoice{}
	var status string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, customer_id, amount, status, date FROM invoices WHERE id = ?",
		id,
	).Scan(&invoice.ID, &invoice.CustomerID, &invoice.Amount, &status, &invoice.Date)
	if err == sql.ErrNoRows {
		return nil, ierr.NewError("invoice not found: " + id).
			WithHint("Invoice not found.").
			Mark(ierr.ErrNotFound)
	}
	if err != nil {
		return nil, dbError(err, "failed to get invoice")
	}
	invoice.Status = models.InvoiceStatus(status)
	return invoice, nil
}

// ListInvoices returns one page of invoices whose customer name, email,
// amount, date or status contains query, newest first.
func (s *SQLiteStore) ListInvoices(ctx context.Context, query string, page int) ([]models.InvoiceRow, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * storage.ItemsPerPage

	args := append(searchArgs(query), storage.ItemsPerPage, offset)
	rows, err := s.db.QueryContext(ctx, `
		SELECT invoices.id, invoices.customer_id, customers.name, customers.email,
			customers.image_url, invoices.date, invoices.amount, invoices.status
		`+invoiceSearch+`
		ORDER BY invoices.date DESC, invoices.id
		LIMIT ? OFFSET ?`,
		args...,
	)
	if err != nil {
		return nil, dbError(err, "failed to list invoices")
	}
	defer rows.Close()

	var invoices []models.InvoiceRow
	for rows.Next() {
		var row models.InvoiceRow
		var status string
		if err := rows.Scan(&row.ID, &row.CustomerID, &row.Name, &row.Email,
			&row.ImageURL, &row.Date, &row.Amount, &status); err != nil {
			return nil, dbError(err, "failed to scan invoice")
		}
		row.Status = models.InvoiceStatus(status)
		invoices = append(invoices, row)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to iterate invoices")
	}
	return invoices, nil
}

// CountInvoicePages returns ceil(matches / ItemsPerPage).
func (s *SQLiteStore) CountInvoicePages(ctx context.Context, query string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) "+invoiceSearch, searchArgs(query)...).Scan(&count)
	if err != nil {
		return 0, dbError(err, "failed to count invoices")
	}
	return (count + storage.ItemsPerPage - 1) / storage.ItemsPerPage, nil
}

// LatestInvoices returns the newest invoices with their customer.
func (s *SQLiteStore) LatestInvoices(ctx context.Context, limit int) ([]models.LatestInvoice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT invoices.id, customers.name, customers.email, customers.image_url, invoices.amount
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC, invoices.id
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, dbError(err, "failed to fetch latest invoices")
	}
	defer rows.Close()

	var latest []models.LatestInvoice
	for rows.Next() {
		var inv models.LatestInvoice
		var amount int64
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.Email, &inv.ImageURL, &amount); err != nil {
			return nil, dbError(err, "failed to scan latest invoice")
		}
		inv.Amount = money.FormatCurrency(amount)
		latest = append(latest, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to iterate latest invoices")
	}
	return latest, nil
}

// CardData returns counts and paid/pending totals for the overview cards.
func (s *SQLiteStore) CardData(ctx context.Context) (*models.CardData, error) {
	var totals models.InvoiceTotals
	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM customers),
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0)
		FROM invoices`,
	).Scan(&totals.NumberOfCustomers, &totals.NumberOfInvoices, &totals.PaidCents, &totals.PendingCents)
	if err != nil {
		return nil, dbError(err, "failed to fetch card data")
	}

	return &models.CardData{
		NumberOfCustomers:    totals.NumberOfCustomers,
		NumberOfInvoices:     totals.NumberOfInvoices,
		TotalPaidInvoices:    money.FormatCurrency(totals.PaidCents),
		TotalPendingInvoices: money.FormatCurrency(totals.PendingCents),
	}, nil
}

// searchArgs returns the LIKE pattern for query once per searched column.
func searchArgs(query string) []any {
	pattern := likePattern(query)
	return []any{pattern, pattern, pattern, pattern, pattern}
}

// likePattern wraps query in % wildcards, escaping LIKE metacharacters.
func likePattern(query string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(query)) + "%"
}
