package seed

import "github.com/mmynk/acme-dashboard/internal/models"

// DefaultUser is the dashboard login created by Run.
var DefaultUser = struct {
	Name     string
	Email    string
	Password string
}{
	Name:     "User",
	Email:    "user@nextmail.com",
	Password: "123456",
}

var customers = []models.Customer{
	{ID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	{ID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{ID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{ID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{ID: "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	{ID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
}

// invoices reference customers by index.
var invoices = []struct {
	customer int
	amount   int64
	status   models.InvoiceStatus
	date     string
}{
	{0, 15795, models.InvoiceStatusPending, "2022-12-06"},
	{1, 20348, models.InvoiceStatusPending, "2022-11-14"},
	{4, 3040, models.InvoiceStatusPaid, "2022-10-29"},
	{3, 44800, models.InvoiceStatusPaid, "2023-09-10"},
	{5, 34577, models.InvoiceStatusPending, "2023-08-05"},
	{2, 54246, models.InvoiceStatusPending, "2023-07-16"},
	{0, 666, models.InvoiceStatusPending, "2023-06-27"},
	{3, 32545, models.InvoiceStatusPaid, "2023-06-09"},
	{4, 1250, models.InvoiceStatusPaid, "2023-06-17"},
	{5, 8546, models.InvoiceStatusPaid, "2023-06-07"},
	{1, 500, models.InvoiceStatusPaid, "2023-08-19"},
	{5, 8945, models.InvoiceStatusPaid, "2023-06-03"},
	{2, 1000, models.InvoiceStatusPaid, "2022-06-05"},
}
