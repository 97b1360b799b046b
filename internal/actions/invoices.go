package actions

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mmynk/acme-dashboard/internal/metrics"
	"github.com/mmynk/acme-dashboard/internal/models"
	"github.com/mmynk/acme-dashboard/internal/validation"
)

// CreateInvoice validates form, inserts an invoice dated today (UTC) and
// redirects to the invoice listing.
func (a *Actions) CreateInvoice(ctx context.Context, form url.Values) Outcome {
	res := validation.ParseInvoiceForm(form)
	if !res.Valid() {
		a.metrics.ObserveAction("create_invoice", metrics.OutcomeInvalid)
		return Outcome{State: State{Errors: res.Errors, Message: MsgCreateMissing}}
	}

	invoice := &models.Invoice{
		CustomerID: res.Input.CustomerID,
		Amount:     res.Input.AmountCents,
		Status:     res.Input.Status,
		Date:       a.now().UTC().Format(models.DateLayout),
	}
	if err := a.store.CreateInvoice(ctx, invoice); err != nil {
		a.logger.Error("Failed to create invoice",
			"customer_id", invoice.CustomerID,
			"error", err,
		)
		a.metrics.ObserveAction("create_invoice", metrics.OutcomeError)
		return Outcome{State: State{Message: MsgCreateDB}}
	}

	a.invalidate(ctx)
	a.metrics.ObserveAction("create_invoice", metrics.OutcomeSuccess)
	a.logger.Info("Created invoice",
		"invoice_id", invoice.ID,
		"customer_id", invoice.CustomerID,
		"amount", invoice.Amount,
		"status", invoice.Status,
	)
	return Outcome{RedirectTo: InvoicesPath}
}

// UpdateInvoice validates form and overwrites customer, amount and status of
// invoice id. The invoice date is never changed.
func (a *Actions) UpdateInvoice(ctx context.Context, id string, form url.Values) Outcome {
	res := validation.ParseInvoiceForm(form)
	if !res.Valid() {
		a.metrics.ObserveAction("update_invoice", metrics.OutcomeInvalid)
		return Outcome{State: State{Errors: res.Errors, Message: MsgUpdateMissing}}
	}

	invoice := &models.Invoice{
		ID:         id,
		CustomerID: res.Input.CustomerID,
		Amount:     res.Input.AmountCents,
		Status:     res.Input.Status,
	}
	if err := a.store.UpdateInvoice(ctx, invoice); err != nil {
		a.logger.Error("Failed to update invoice",
			"invoice_id", id,
			"error", err,
		)
		a.metrics.ObserveAction("update_invoice", metrics.OutcomeError)
		return Outcome{State: State{Message: MsgUpdateDB}}
	}

	a.invalidate(ctx)
	a.metrics.ObserveAction("update_invoice", metrics.OutcomeSuccess)
	a.logger.Info("Updated invoice",
		"invoice_id", id,
		"customer_id", invoice.CustomerID,
		"amount", invoice.Amount,
		"status", invoice.Status,
	)
	return Outcome{RedirectTo: InvoicesPath}
}

// DeleteInvoice removes invoice id. Deleting an id that does not exist
// succeeds. Store failures are returned, not reported in State.
func (a *Actions) DeleteInvoice(ctx context.Context, id string) (State, error) {
	if err := a.store.DeleteInvoice(ctx, id); err != nil {
		a.metrics.ObserveAction("delete_invoice", metrics.OutcomeError)
		return State{}, fmt.Errorf("delete invoice %s: %w", id, err)
	}

	a.invalidate(ctx)
	a.metrics.ObserveAction("delete_invoice", metrics.OutcomeSuccess)
	a.logger.Info("Deleted invoice", "invoice_id", id)
	return State{Message: MsgDeleted}, nil
}
