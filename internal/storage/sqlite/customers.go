package sqlite

import (
	"context"

	"github.com/google/uuid"

	"github.com/mmynk/acme-dashboard/internal/models"
	"github.com/mmynk/acme-dashboard/internal/money"
)

// CreateCustomer inserts a customer.
func (s *SQLiteStore) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO customers (id, name, email, image_url) VALUES (?, ?, ?, ?)",
		customer.ID, customer.Name, customer.Email, customer.ImageURL,
	)
	if err != nil {
		return dbError(err, "failed to insert customer")
	}
	return nil
}

// ListCustomers returns the customer choices for the invoice forms, ordered by name.
func (s *SQLiteStore) ListCustomers(ctx context.Context) ([]models.CustomerField, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM customers ORDER BY name ASC")
	if err != nil {
		return nil, dbError(err, "failed to fetch customers")
	}
	defer rows.Close()

	var customers []models.CustomerField
	for rows.Next() {
		var c models.CustomerField
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, dbError(err, "failed to scan customer")
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to iterate customers")
	}
	return customers, nil
}

// ListCustomerSummaries returns customers whose name or email contains query,
// with their invoice count and pending/paid totals.
func (s *SQLiteStore) ListCustomerSummaries(ctx context.Context, query string) ([]models.CustomerSummary, error) {
	pattern := likePattern(query)
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			customers.id,
			customers.name,
			customers.email,
			customers.image_url,
			COUNT(invoices.id),
			COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0)
		FROM customers
		LEFT JOIN invoices ON customers.id = invoices.customer_id
		WHERE customers.name LIKE ? ESCAPE '\' OR customers.email LIKE ? ESCAPE '\'
		GROUP BY customers.id, customers.name, customers.email, customers.image_url
		ORDER BY customers.name ASC`,
		pattern, pattern,
	)
	if err != nil {
		return nil, dbError(err, "failed to fetch customer table")
	}
	defer rows.Close()

	var summaries []models.CustomerSummary
	for rows.Next() {
		var c models.CustomerSummary
		var pending, paid int64
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL, &c.TotalInvoices, &pending, &paid); err != nil {
			return nil, dbError(err, "failed to scan customer summary")
		}
		c.TotalPending = money.FormatCurrency(pending)
		c.TotalPaid = money.FormatCurrency(paid)
		summaries = append(summaries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to iterate customer summaries")
	}
	return summaries, nil
}
