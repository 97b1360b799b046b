// Package models defines the core domain models for the Acme dashboard.
//
// # Entities
//
//   - Invoice: a billing record linking a customer, an amount, a status and a date
//   - Customer: a counterparty referenced by invoices, read-only for the dashboard
//   - User: the single account allowed to sign in
//
// # Read projections
//
// The listing, overview and customers pages read joined or aggregated rows
// rather than raw entities:
//   - InvoiceRow: an invoice joined with its customer
//   - LatestInvoice: an overview row with a formatted amount
//   - CardData: counts and paid/pending totals for the overview cards
//   - CustomerSummary: a customer with invoice count and totals
//
// # Conventions
//
//  1. Amounts are integer cents; formatting happens at the edge (see internal/money)
//  2. Dates are calendar dates stored as YYYY-MM-DD text
//  3. Relationships use ID strings, never pointers
package models
