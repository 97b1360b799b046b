package service

import "github.com/mmynk/acme-dashboard/internal/models"

type ListInvoicesRequest struct {
	Query string `json:"query"`
	Page  int    `json:"page"`
}

type ListInvoicesResponse struct {
	Invoices   []InvoiceView `json:"invoices"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

// InvoiceView is an invoice row as shown in the invoices table.
type InvoiceView struct {
	ID          string               `json:"id"`
	CustomerID  string               `json:"customerId"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	ImageURL    string               `json:"imageUrl"`
	Date        string               `json:"date"`
	Amount      string               `json:"amount"`
	AmountCents int64                `json:"amountCents"`
	Status      models.InvoiceStatus `json:"status"`
}

type GetInvoiceFormRequest struct {
	ID string `json:"id"`
}

type GetInvoiceFormResponse struct {
	Invoice   InvoiceFormView        `json:"invoice"`
	Customers []models.CustomerField `json:"customers"`
}

// InvoiceFormView pre-fills the edit form. Amount is in dollars, e.g. "20.50".
type InvoiceFormView struct {
	ID         string               `json:"id"`
	CustomerID string               `json:"customerId"`
	Amount     string               `json:"amount"`
	Status     models.InvoiceStatus `json:"status"`
	Date       string               `json:"date"`
}

type LatestInvoicesRequest struct {
	Limit int `json:"limit"`
}

type LatestInvoicesResponse struct {
	Invoices []models.LatestInvoice `json:"invoices"`
}

type GetCardDataRequest struct{}

type GetCardDataResponse struct {
	Cards models.CardData `json:"cards"`
}

type GetOverviewRequest struct{}

type GetOverviewResponse struct {
	Cards          models.CardData        `json:"cards"`
	LatestInvoices []models.LatestInvoice `json:"latestInvoices"`
}

type ListCustomersRequest struct{}

type ListCustomersResponse struct {
	Customers []models.CustomerField `json:"customers"`
}

type ListCustomerSummariesRequest struct {
	Query string `json:"query"`
}

type ListCustomerSummariesResponse struct {
	Customers []models.CustomerSummary `json:"customers"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token      string   `json:"token"`
	ExpiresAt  string   `json:"expiresAt"`
	User       UserView `json:"user"`
	RedirectTo string   `json:"redirectTo"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User UserView `json:"user"`
}

type UserView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt,omitempty"`
}
