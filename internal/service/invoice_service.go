package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"connectrpc.com/connect"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"

	"github.com/mmynk/acme-dashboard/internal/actions"
	"github.com/mmynk/acme-dashboard/internal/cache"
	"github.com/mmynk/acme-dashboard/internal/metrics"
	"github.com/mmynk/acme-dashboard/internal/models"
	"github.com/mmynk/acme-dashboard/internal/money"
	"github.com/mmynk/acme-dashboard/internal/storage"
)

const (
	defaultLatestInvoices = 5
	maxLatestInvoices     = 50
)

// InvoiceService serves the invoice reads of the dashboard.
type InvoiceService struct {
	store   storage.Store
	pages   cache.PageCache
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewInvoiceService creates the invoice read service. The invoice listing is
// served through pages, which the form actions invalidate on every mutation.
func NewInvoiceService(store storage.Store, pages cache.PageCache, m *metrics.Metrics, logger *slog.Logger) *InvoiceService {
	if pages == nil {
		pages = cache.Disabled{}
	}
	return &InvoiceService{
		store:   store,
		pages:   pages,
		metrics: m,
		logger:  logger,
	}
}

// ListInvoices returns one page of invoices matching the search query.
// The page defaults to 1 and is clamped to the last page.
func (s *InvoiceService) ListInvoices(ctx context.Context, req *connect.Request[ListInvoicesRequest]) (*connect.Response[ListInvoicesResponse], error) {
	query := strings.TrimSpace(req.Msg.Query)
	page := max(req.Msg.Page, 1)

	key := cache.Key(actions.InvoicesPath, listParams(query, page))
	gen := s.pages.Generation(ctx, actions.InvoicesPath)
	if v, ok := s.pages.Get(ctx, key); ok {
		if cached, ok := v.(*ListInvoicesResponse); ok {
			s.metrics.ObserveCacheLookup(true)
			return connect.NewResponse(cached), nil
		}
	}
	s.metrics.ObserveCacheLookup(false)

	totalPages, err := s.store.CountInvoicePages(ctx, query)
	if err != nil {
		s.logger.Error("Failed to count invoice pages", "query", query, "error", err)
		return nil, toConnectError(err)
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	rows, err := s.store.ListInvoices(ctx, query, page)
	if err != nil {
		s.logger.Error("Failed to list invoices", "query", query, "page", page, "error", err)
		return nil, toConnectError(err)
	}

	resp := &ListInvoicesResponse{
		Invoices:   lo.Map(rows, func(row models.InvoiceRow, _ int) InvoiceView { return toInvoiceView(row) }),
		Page:       page,
		TotalPages: totalPages,
	}
	// Skipped when a mutation invalidated the listing while it was being read.
	s.pages.SetIfCurrent(ctx, actions.InvoicesPath, key, gen, resp)

	return connect.NewResponse(resp), nil
}

// GetInvoiceForm returns the invoice being edited together with the customer
// choices. Both are fetched concurrently.
func (s *InvoiceService) GetInvoiceForm(ctx context.Context, req *connect.Request[GetInvoiceFormRequest]) (*connect.Response[GetInvoiceFormResponse], error) {
	if req.Msg.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("id required"))
	}

	var (
		invoice   *models.Invoice
		customers []models.CustomerField
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		invoice, err = s.store.GetInvoice(ctx, req.Msg.ID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		customers, err = s.store.ListCustomers(ctx)
		return err
	})
	if err := p.Wait(); err != nil {
		s.logger.Warn("Failed to load invoice form", "invoice_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&GetInvoiceFormResponse{
		Invoice: InvoiceFormView{
			ID:         invoice.ID,
			CustomerID: invoice.CustomerID,
			Amount:     money.ToUnits(invoice.Amount).StringFixed(2),
			Status:     invoice.Status,
			Date:       invoice.Date,
		},
		Customers: lo.Ternary(customers == nil, []models.CustomerField{}, customers),
	}), nil
}

// LatestInvoices returns the newest invoices, 5 unless a limit is given.
func (s *InvoiceService) LatestInvoices(ctx context.Context, req *connect.Request[LatestInvoicesRequest]) (*connect.Response[LatestInvoicesResponse], error) {
	latest, err := s.store.LatestInvoices(ctx, latestLimit(req.Msg.Limit))
	if err != nil {
		s.logger.Error("Failed to fetch latest invoices", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&LatestInvoicesResponse{Invoices: nonNil(latest)}), nil
}

// GetCardData returns the overview counts and totals.
func (s *InvoiceService) GetCardData(ctx context.Context, _ *connect.Request[GetCardDataRequest]) (*connect.Response[GetCardDataResponse], error) {
	cards, err := s.store.CardData(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch card data", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetCardDataResponse{Cards: *cards}), nil
}

// GetOverview returns the cards and the latest invoices in one call.
func (s *InvoiceService) GetOverview(ctx context.Context, _ *connect.Request[GetOverviewRequest]) (*connect.Response[GetOverviewResponse], error) {
	var (
		cards  *models.CardData
		latest []models.LatestInvoice
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		cards, err = s.store.CardData(ctx)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		latest, err = s.store.LatestInvoices(ctx, defaultLatestInvoices)
		return err
	})
	if err := p.Wait(); err != nil {
		s.logger.Error("Failed to load overview", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&GetOverviewResponse{
		Cards:          *cards,
		LatestInvoices: nonNil(latest),
	}), nil
}

func listParams(query string, page int) url.Values {
	v := url.Values{"page": {strconv.Itoa(page)}}
	if query != "" {
		v.Set("query", query)
	}
	return v
}

func latestLimit(n int) int {
	if n <= 0 {
		return defaultLatestInvoices
	}
	return min(n, maxLatestInvoices)
}

func toInvoiceView(row models.InvoiceRow) InvoiceView {
	return InvoiceView{
		ID:          row.ID,
		CustomerID:  row.CustomerID,
		Name:        row.Name,
		Email:       row.Email,
		ImageURL:    row.ImageURL,
		Date:        row.Date,
		Amount:      money.FormatCurrency(row.Amount),
		AmountCents: row.Amount,
		Status:      row.Status,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
