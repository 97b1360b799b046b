package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/acme-dashboard/internal/storage"
)

// CustomerService serves the customer reads.
type CustomerService struct {
	store  storage.CustomerStore
	logger *slog.Logger
}

func NewCustomerService(store storage.CustomerStore, logger *slog.Logger) *CustomerService {
	return &CustomerService{store: store, logger: logger}
}

// ListCustomers returns the id/name choices for the invoice forms.
func (s *CustomerService) ListCustomers(ctx context.Context, _ *connect.Request[ListCustomersRequest]) (*connect.Response[ListCustomersResponse], error) {
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch customers", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListCustomersResponse{Customers: nonNil(customers)}), nil
}

// ListCustomerSummaries returns customers matching query with invoice totals.
func (s *CustomerService) ListCustomerSummaries(ctx context.Context, req *connect.Request[ListCustomerSummariesRequest]) (*connect.Response[ListCustomerSummariesResponse], error) {
	query := strings.TrimSpace(req.Msg.Query)
	summaries, err := s.store.ListCustomerSummaries(ctx, query)
	if err != nil {
		s.logger.Error("Failed to fetch customer table", "query", query, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListCustomerSummariesResponse{Customers: nonNil(summaries)}), nil
}
