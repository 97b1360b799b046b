// Package seed loads placeholder customers, invoices and the dashboard user.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/acme-dashboard/internal/auth"
	"github.com/mmynk/acme-dashboard/internal/models"
	"github.com/mmynk/acme-dashboard/internal/storage"
)

// Summary reports what Run inserted.
type Summary struct {
	Customers int
	Invoices  int
	Users     int
}

// Run seeds store. It is safe to run repeatedly: customers and invoices are
// only loaded into an empty database, and the user only when missing.
func Run(ctx context.Context, store storage.Store, authn auth.Authenticator) (Summary, error) {
	var sum Summary

	cards, err := store.CardData(ctx)
	if err != nil {
		return sum, fmt.Errorf("failed to inspect database: %w", err)
	}

	if cards.NumberOfCustomers == 0 {
		for i := range customers {
			c := customers[i]
			if err := store.CreateCustomer(ctx, &c); err != nil {
				return sum, fmt.Errorf("failed to seed customer %s: %w", c.Name, err)
			}
			sum.Customers++
		}
		for _, inv := range invoices {
			invoice := &models.Invoice{
				CustomerID: customers[inv.customer].ID,
				Amount:     inv.amount,
				Status:     inv.status,
				Date:       inv.date,
			}
			if err := store.CreateInvoice(ctx, invoice); err != nil {
				return sum, fmt.Errorf("failed to seed invoice: %w", err)
			}
			sum.Invoices++
		}
	} else {
		slog.Info("Customers already present, skipping placeholder data",
			"customers", cards.NumberOfCustomers,
			"invoices", cards.NumberOfInvoices,
		)
	}

	_, err = authn.Register(ctx, DefaultUser.Email, DefaultUser.Name, DefaultUser.Password)
	switch {
	case errors.Is(err, auth.ErrEmailExists):
	case err != nil:
		return sum, fmt.Errorf("failed to seed user: %w", err)
	default:
		sum.Users++
	}

	slog.Info("Seed complete", "customers", sum.Customers, "invoices", sum.Invoices, "users", sum.Users)
	return sum, nil
}
