package models

// Customer is a counterparty referenced by invoices.
// The dashboard never mutates customers; they are seeded or managed elsewhere.
type Customer struct {
	// ID is the unique identifier for the customer (UUID format).
	ID string `json:"id"`

	// Name is the display name shown in tables and selects.
	Name string `json:"name"`

	// Email is the customer's contact address.
	Email string `json:"email"`

	// ImageURL is the avatar path shown next to the name.
	ImageURL string `json:"image_url"`
}

// CustomerField is the id/name pair used to populate the customer select.
type CustomerField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerSummary is a customer with aggregated invoice figures.
type CustomerSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`

	// TotalPending and TotalPaid are formatted currency strings.
	TotalPending string `json:"total_pending"`
	TotalPaid    string `json:"total_paid"`
}
