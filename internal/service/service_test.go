package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/acme-dashboard/internal/actions"
	"github.com/mmynk/acme-dashboard/internal/auth"
	"github.com/mmynk/acme-dashboard/internal/cache"
	"github.com/mmynk/acme-dashboard/internal/metrics"
	"github.com/mmynk/acme-dashboard/internal/middleware"
	"github.com/mmynk/acme-dashboard/internal/models"
	"github.com/mmynk/acme-dashboard/internal/seed"
	"github.com/mmynk/acme-dashboard/internal/storage"
	"github.com/mmynk/acme-dashboard/internal/storage/sqlite"
	"github.com/mmynk/acme-dashboard/pkg/logging"
)

type testServer struct {
	store     *sqlite.SQLiteStore
	actions   *actions.Actions
	invoices  *InvoiceServiceClient
	customers *CustomerServiceClient
	auth      *AuthServiceClient
	token     string
}

// setupTestServer serves all three services over a seeded temp database.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	authn := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
	if _, err := seed.Run(context.Background(), store, authn); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	logger := logging.Discard()
	tokens := auth.NewJWTManager("service-test-secret-0123", time.Hour)
	pages := cache.NewInMemory(cache.Options{Enabled: true})
	m := metrics.New(prometheus.NewRegistry())
	a := actions.New(store, pages, auth.NewCredentialsProvider(authn, tokens),
		actions.WithLogger(logger),
		actions.WithMetrics(m),
	)

	protected := connect.WithInterceptors(middleware.RequireAuth(tokens))
	optional := connect.WithInterceptors(middleware.OptionalAuth(tokens))

	mux := http.NewServeMux()
	mux.Handle(NewInvoiceServiceHandler(NewInvoiceService(store, pages, m, logger), protected))
	mux.Handle(NewCustomerServiceHandler(NewCustomerService(store, logger), protected))
	mux.Handle(NewAuthServiceHandler(NewAuthService(a, store, logger), optional))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	})

	ts := &testServer{
		store:     store,
		actions:   a,
		invoices:  NewInvoiceServiceClient(http.DefaultClient, server.URL),
		customers: NewCustomerServiceClient(http.DefaultClient, server.URL),
		auth:      NewAuthServiceClient(http.DefaultClient, server.URL),
	}

	resp, err := ts.auth.Login(context.Background(), connect.NewRequest(&LoginRequest{
		Email:    seed.DefaultUser.Email,
		Password: seed.DefaultUser.Password,
	}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	ts.token = resp.Msg.Token

	return ts
}

func authed[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func TestLogin(t *testing.T) {
	ts := setupTestServer(t)

	if ts.token == "" {
		t.Fatal("expected token from Login")
	}

	_, err := ts.auth.Login(context.Background(), connect.NewRequest(&LoginRequest{
		Email:    seed.DefaultUser.Email,
		Password: "not-the-password",
	}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) || connectErr.Message() != actions.MsgInvalidCreds {
		t.Errorf("expected message %q, got %v", actions.MsgInvalidCreds, err)
	}
}

func TestGetCurrentUser(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	resp, err := ts.auth.GetCurrentUser(ctx, authed(ts.token, &GetCurrentUserRequest{}))
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if resp.Msg.User.Email != seed.DefaultUser.Email || resp.Msg.User.Name != seed.DefaultUser.Name {
		t.Errorf("unexpected user: %+v", resp.Msg.User)
	}

	_, err = ts.auth.GetCurrentUser(ctx, connect.NewRequest(&GetCurrentUserRequest{}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("expected Unauthenticated without token, got %v", err)
	}
}

func TestReadsRequireAuth(t *testing.T) {
	ts := setupTestServer(t)

	_, err := ts.invoices.ListInvoices(context.Background(), connect.NewRequest(&ListInvoicesRequest{}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}

func TestListInvoices(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	resp, err := ts.invoices.ListInvoices(ctx, authed(ts.token, &ListInvoicesRequest{}))
	if err != nil {
		t.Fatalf("ListInvoices failed: %v", err)
	}
	if resp.Msg.Page != 1 {
		t.Errorf("expected page 1, got %d", resp.Msg.Page)
	}
	if len(resp.Msg.Invoices) != storage.ItemsPerPage {
		t.Errorf("expected %d invoices, got %d", storage.ItemsPerPage, len(resp.Msg.Invoices))
	}
	if resp.Msg.TotalPages != 3 {
		t.Errorf("expected 3 pages for seeded data, got %d", resp.Msg.TotalPages)
	}

	first := resp.Msg.Invoices[0]
	if first.Date != "2023-09-10" || first.Amount != "$448.00" || first.AmountCents != 44800 {
		t.Errorf("unexpected newest invoice: %+v", first)
	}

	search, err := ts.invoices.ListInvoices(ctx, authed(ts.token, &ListInvoicesRequest{Query: "lee", Page: 9}))
	if err != nil {
		t.Fatalf("ListInvoices with query failed: %v", err)
	}
	if search.Msg.TotalPages != 1 || search.Msg.Page != 1 || len(search.Msg.Invoices) != 2 {
		t.Errorf("unexpected search result: page=%d total=%d n=%d",
			search.Msg.Page, search.Msg.TotalPages, len(search.Msg.Invoices))
	}

	empty, err := ts.invoices.ListInvoices(ctx, authed(ts.token, &ListInvoicesRequest{Query: "zzz"}))
	if err != nil {
		t.Fatalf("ListInvoices with no match failed: %v", err)
	}
	if empty.Msg.Invoices == nil || len(empty.Msg.Invoices) != 0 || empty.Msg.TotalPages != 0 {
		t.Errorf("expected empty non-nil result, got %+v", empty.Msg)
	}
}

func TestListInvoicesCacheInvalidatedByActions(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	before, err := ts.invoices.ListInvoices(ctx, authed(ts.token, &ListInvoicesRequest{Query: "evil"}))
	if err != nil {
		t.Fatalf("ListInvoices failed: %v", err)
	}

	// Write directly to the store: the cached page must still be served.
	customers, _ := ts.store.ListCustomers(ctx)
	var evilID string
	for _, c := range customers {
		if c.Name == "Evil Rabbit" {
			evilID = c.ID
		}
	}
	direct := before.Msg.Invoices[0]
	if err := ts.store.DeleteInvoice(ctx, direct.ID); err != nil {
		t.Fatalf("DeleteInvoice failed: %v", err)
	}

	cached, _ := ts.invoices.ListInvoices(ctx, authed(ts.token, &ListInvoicesRequest{Query: "evil"}))
	if len(cached.Msg.Invoices) != len(before.Msg.Invoices) {
		t.Fatalf("expected cached listing, got %d invoices", len(cached.Msg.Invoices))
	}

	// A create through the actions invalidates every cached invoice page.
	out := ts.actions.CreateInvoice(ctx, map[string][]string{
		"customerId": {evilID},
		"amount":     {"1.00"},
		"status":     {"paid"},
	})
	if !out.Redirected() {
		t.Fatalf("CreateInvoice failed: %+v", out.State)
	}

	after, err := ts.invoices.ListInvoices(ctx, authed(ts.token, &ListInvoicesRequest{Query: "evil"}))
	if err != nil {
		t.Fatalf("ListInvoices failed: %v", err)
	}
	if len(after.Msg.Invoices) != len(before.Msg.Invoices) {
		t.Errorf("expected one deleted and one created invoice, got %d", len(after.Msg.Invoices))
	}
	if after.Msg.Invoices[0].Amount != "$1.00" {
		t.Errorf("expected the new invoice first, got %+v", after.Msg.Invoices[0])
	}
}

// pausingStore blocks the first ListInvoices after it has read from the store.
type pausingStore struct {
	*sqlite.SQLiteStore
	once    sync.Once
	read    chan struct{}
	release chan struct{}
}

func (s *pausingStore) ListInvoices(ctx context.Context, query string, page int) ([]models.InvoiceRow, error) {
	rows, err := s.SQLiteStore.ListInvoices(ctx, query, page)
	s.once.Do(func() {
		close(s.read)
		<-s.release
	})
	return rows, err
}

func TestListInvoicesDoesNotCacheReadRacingAMutation(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	racing := &models.Customer{Name: "Racing Customer", Email: "racing@example.com"}
	if err := ts.store.CreateCustomer(ctx, racing); err != nil {
		t.Fatalf("CreateCustomer failed: %v", err)
	}

	store := &pausingStore{SQLiteStore: ts.store, read: make(chan struct{}), release: make(chan struct{})}
	pages := cache.NewInMemory(cache.Options{Enabled: true})
	svc := NewInvoiceService(store, pages, nil, logging.Discard())
	a := actions.New(store, pages, nil, actions.WithLogger(logging.Discard()))

	done := make(chan error, 1)
	go func() {
		_, err := svc.ListInvoices(ctx, connect.NewRequest(&ListInvoicesRequest{Query: "racing"}))
		done <- err
	}()

	<-store.read
	out := a.CreateInvoice(ctx, map[string][]string{
		"customerId": {racing.ID},
		"amount":     {"3.00"},
		"status":     {"pending"},
	})
	if !out.Redirected() {
		t.Fatalf("CreateInvoice failed: %+v", out.State)
	}

	close(store.release)
	if err := <-done; err != nil {
		t.Fatalf("ListInvoices failed: %v", err)
	}

	after, err := svc.ListInvoices(ctx, connect.NewRequest(&ListInvoicesRequest{Query: "racing"}))
	if err != nil {
		t.Fatalf("ListInvoices failed: %v", err)
	}
	if len(after.Msg.Invoices) != 1 {
		t.Fatalf("expected the created invoice after invalidation, got %d invoices", len(after.Msg.Invoices))
	}
}

func TestGetInvoiceForm(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	list, err := ts.invoices.ListInvoices(ctx, authed(ts.token, &ListInvoicesRequest{}))
	if err != nil {
		t.Fatalf("ListInvoices failed: %v", err)
	}
	target := list.Msg.Invoices[0]

	resp, err := ts.invoices.GetInvoiceForm(ctx, authed(ts.token, &GetInvoiceFormRequest{ID: target.ID}))
	if err != nil {
		t.Fatalf("GetInvoiceForm failed: %v", err)
	}
	if resp.Msg.Invoice.Amount != "448.00" || resp.Msg.Invoice.CustomerID != target.CustomerID {
		t.Errorf("unexpected form invoice: %+v", resp.Msg.Invoice)
	}
	if len(resp.Msg.Customers) != 6 {
		t.Errorf("expected 6 customers, got %d", len(resp.Msg.Customers))
	}

	_, err = ts.invoices.GetInvoiceForm(ctx, authed(ts.token, &GetInvoiceFormRequest{ID: "missing"}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Errorf("expected NotFound, got %v", err)
	}

	_, err = ts.invoices.GetInvoiceForm(ctx, authed(ts.token, &GetInvoiceFormRequest{}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", err)
	}
}

func TestOverview(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	cards, err := ts.invoices.GetCardData(ctx, authed(ts.token, &GetCardDataRequest{}))
	if err != nil {
		t.Fatalf("GetCardData failed: %v", err)
	}
	if cards.Msg.Cards.NumberOfCustomers != 6 || cards.Msg.Cards.NumberOfInvoices != 13 {
		t.Errorf("unexpected cards: %+v", cards.Msg.Cards)
	}

	latest, err := ts.invoices.LatestInvoices(ctx, authed(ts.token, &LatestInvoicesRequest{}))
	if err != nil {
		t.Fatalf("LatestInvoices failed: %v", err)
	}
	if len(latest.Msg.Invoices) != 5 {
		t.Errorf("expected 5 latest invoices, got %d", len(latest.Msg.Invoices))
	}

	overview, err := ts.invoices.GetOverview(ctx, authed(ts.token, &GetOverviewRequest{}))
	if err != nil {
		t.Fatalf("GetOverview failed: %v", err)
	}
	if overview.Msg.Cards != cards.Msg.Cards {
		t.Errorf("overview cards %+v differ from %+v", overview.Msg.Cards, cards.Msg.Cards)
	}
	if len(overview.Msg.LatestInvoices) != 5 {
		t.Errorf("expected 5 latest invoices in overview, got %d", len(overview.Msg.LatestInvoices))
	}
}

func TestCustomers(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	list, err := ts.customers.ListCustomers(ctx, authed(ts.token, &ListCustomersRequest{}))
	if err != nil {
		t.Fatalf("ListCustomers failed: %v", err)
	}
	if len(list.Msg.Customers) != 6 || list.Msg.Customers[0].Name != "Amy Burns" {
		t.Errorf("unexpected customers: %+v", list.Msg.Customers)
	}

	summaries, err := ts.customers.ListCustomerSummaries(ctx, authed(ts.token, &ListCustomerSummariesRequest{Query: "oliveira"}))
	if err != nil {
		t.Fatalf("ListCustomerSummaries failed: %v", err)
	}
	if len(summaries.Msg.Customers) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries.Msg.Customers))
	}
	delba := summaries.Msg.Customers[0]
	if delba.TotalInvoices != 2 || delba.TotalPending != "$203.48" || delba.TotalPaid != "$5.00" {
		t.Errorf("unexpected summary: %+v", delba)
	}
}
