package models

// DateLayout is the layout invoice dates are stored and exchanged in.
const DateLayout = "2006-01-02"

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Valid reports whether s is one of the two known statuses.
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice represents a billing record for one customer.
type Invoice struct {
	// ID is the unique identifier for the invoice (UUID format).
	// Assigned by the store on insert.
	ID string `json:"id"`

	// CustomerID references the customer being billed.
	// Must point at an existing customer.
	CustomerID string `json:"customer_id"`

	// Amount is the invoice total in cents. Always positive once persisted.
	Amount int64 `json:"amount"`

	// Status is either pending or paid.
	Status InvoiceStatus `json:"status"`

	// Date is the issue date (YYYY-MM-DD). Set on creation, never updated.
	Date string `json:"date"`
}

// InvoiceRow is an invoice joined with the customer it bills.
// Used by the paginated invoices table.
type InvoiceRow struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	ImageURL   string        `json:"image_url"`
	Date       string        `json:"date"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
}

// LatestInvoice is one row of the overview's latest invoices list.
type LatestInvoice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`

	// Amount is already formatted for display (e.g. "$1,050.00").
	Amount string `json:"amount"`
}

// InvoiceTotals holds the raw aggregates behind the overview cards.
type InvoiceTotals struct {
	NumberOfCustomers int64
	NumberOfInvoices  int64
	PaidCents         int64
	PendingCents      int64
}

// CardData is the display form of InvoiceTotals.
type CardData struct {
	NumberOfCustomers    int64  `json:"number_of_customers"`
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}

// InvoiceForm is everything the edit form needs: the invoice being edited
// and the customers it may be reassigned to.
type InvoiceForm struct {
	Invoice   *Invoice        `json:"invoice"`
	Customers []CustomerField `json:"customers"`
}
