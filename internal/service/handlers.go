package service

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	InvoiceServiceName  = "acme.dashboard.v1.InvoiceService"
	CustomerServiceName = "acme.dashboard.v1.CustomerService"
	AuthServiceName     = "acme.dashboard.v1.AuthService"
)

const (
	InvoiceServiceListInvoicesProcedure   = "/" + InvoiceServiceName + "/ListInvoices"
	InvoiceServiceGetInvoiceFormProcedure = "/" + InvoiceServiceName + "/GetInvoiceForm"
	InvoiceServiceLatestInvoicesProcedure = "/" + InvoiceServiceName + "/LatestInvoices"
	InvoiceServiceGetCardDataProcedure    = "/" + InvoiceServiceName + "/GetCardData"
	InvoiceServiceGetOverviewProcedure    = "/" + InvoiceServiceName + "/GetOverview"

	CustomerServiceListCustomersProcedure         = "/" + CustomerServiceName + "/ListCustomers"
	CustomerServiceListCustomerSummariesProcedure = "/" + CustomerServiceName + "/ListCustomerSummaries"

	AuthServiceLoginProcedure          = "/" + AuthServiceName + "/Login"
	AuthServiceLogoutProcedure         = "/" + AuthServiceName + "/Logout"
	AuthServiceGetCurrentUserProcedure = "/" + AuthServiceName + "/GetCurrentUser"
)

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{Codec()}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{Codec()}, opts...)
}

// NewInvoiceServiceHandler builds an HTTP handler for svc and returns the
// path prefix to mount it on.
func NewInvoiceServiceHandler(svc *InvoiceService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(InvoiceServiceListInvoicesProcedure, connect.NewUnaryHandler(InvoiceServiceListInvoicesProcedure, svc.ListInvoices, opts...))
	mux.Handle(InvoiceServiceGetInvoiceFormProcedure, connect.NewUnaryHandler(InvoiceServiceGetInvoiceFormProcedure, svc.GetInvoiceForm, opts...))
	mux.Handle(InvoiceServiceLatestInvoicesProcedure, connect.NewUnaryHandler(InvoiceServiceLatestInvoicesProcedure, svc.LatestInvoices, opts...))
	mux.Handle(InvoiceServiceGetCardDataProcedure, connect.NewUnaryHandler(InvoiceServiceGetCardDataProcedure, svc.GetCardData, opts...))
	mux.Handle(InvoiceServiceGetOverviewProcedure, connect.NewUnaryHandler(InvoiceServiceGetOverviewProcedure, svc.GetOverview, opts...))
	return "/" + InvoiceServiceName + "/", mux
}

// NewCustomerServiceHandler builds an HTTP handler for svc.
func NewCustomerServiceHandler(svc *CustomerService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(CustomerServiceListCustomersProcedure, connect.NewUnaryHandler(CustomerServiceListCustomersProcedure, svc.ListCustomers, opts...))
	mux.Handle(CustomerServiceListCustomerSummariesProcedure, connect.NewUnaryHandler(CustomerServiceListCustomerSummariesProcedure, svc.ListCustomerSummaries, opts...))
	return "/" + CustomerServiceName + "/", mux
}

// NewAuthServiceHandler builds an HTTP handler for svc.
func NewAuthServiceHandler(svc *AuthService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(AuthServiceLoginProcedure, connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...))
	mux.Handle(AuthServiceLogoutProcedure, connect.NewUnaryHandler(AuthServiceLogoutProcedure, svc.Logout, opts...))
	mux.Handle(AuthServiceGetCurrentUserProcedure, connect.NewUnaryHandler(AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...))
	return "/" + AuthServiceName + "/", mux
}

// InvoiceServiceClient calls InvoiceService over HTTP.
type InvoiceServiceClient struct {
	listInvoices   *connect.Client[ListInvoicesRequest, ListInvoicesResponse]
	getInvoiceForm *connect.Client[GetInvoiceFormRequest, GetInvoiceFormResponse]
	latestInvoices *connect.Client[LatestInvoicesRequest, LatestInvoicesResponse]
	getCardData    *connect.Client[GetCardDataRequest, GetCardDataResponse]
	getOverview    *connect.Client[GetOverviewRequest, GetOverviewResponse]
}

func NewInvoiceServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *InvoiceServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &InvoiceServiceClient{
		listInvoices:   connect.NewClient[ListInvoicesRequest, ListInvoicesResponse](httpClient, baseURL+InvoiceServiceListInvoicesProcedure, opts...),
		getInvoiceForm: connect.NewClient[GetInvoiceFormRequest, GetInvoiceFormResponse](httpClient, baseURL+InvoiceServiceGetInvoiceFormProcedure, opts...),
		latestInvoices: connect.NewClient[LatestInvoicesRequest, LatestInvoicesResponse](httpClient, baseURL+InvoiceServiceLatestInvoicesProcedure, opts...),
		getCardData:    connect.NewClient[GetCardDataRequest, GetCardDataResponse](httpClient, baseURL+InvoiceServiceGetCardDataProcedure, opts...),
		getOverview:    connect.NewClient[GetOverviewRequest, GetOverviewResponse](httpClient, baseURL+InvoiceServiceGetOverviewProcedure, opts...),
	}
}

func (c *InvoiceServiceClient) ListInvoices(ctx context.Context, req *connect.Request[ListInvoicesRequest]) (*connect.Response[ListInvoicesResponse], error) {
	return c.listInvoices.CallUnary(ctx, req)
}

func (c *InvoiceServiceClient) GetInvoiceForm(ctx context.Context, req *connect.Request[GetInvoiceFormRequest]) (*connect.Response[GetInvoiceFormResponse], error) {
	return c.getInvoiceForm.CallUnary(ctx, req)
}

func (c *InvoiceServiceClient) LatestInvoices(ctx context.Context, req *connect.Request[LatestInvoicesRequest]) (*connect.Response[LatestInvoicesResponse], error) {
	return c.latestInvoices.CallUnary(ctx, req)
}

func (c *InvoiceServiceClient) GetCardData(ctx context.Context, req *connect.Request[GetCardDataRequest]) (*connect.Response[GetCardDataResponse], error) {
	return c.getCardData.CallUnary(ctx, req)
}

func (c *InvoiceServiceClient) GetOverview(ctx context.Context, req *connect.Request[GetOverviewRequest]) (*connect.Response[GetOverviewResponse], error) {
	return c.getOverview.CallUnary(ctx, req)
}

// CustomerServiceClient calls CustomerService over HTTP.
type CustomerServiceClient struct {
	listCustomers         *connect.Client[ListCustomersRequest, ListCustomersResponse]
	listCustomerSummaries *connect.Client[ListCustomerSummariesRequest, ListCustomerSummariesResponse]
}

func NewCustomerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *CustomerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &CustomerServiceClient{
		listCustomers:         connect.NewClient[ListCustomersRequest, ListCustomersResponse](httpClient, baseURL+CustomerServiceListCustomersProcedure, opts...),
		listCustomerSummaries: connect.NewClient[ListCustomerSummariesRequest, ListCustomerSummariesResponse](httpClient, baseURL+CustomerServiceListCustomerSummariesProcedure, opts...),
	}
}

func (c *CustomerServiceClient) ListCustomers(ctx context.Context, req *connect.Request[ListCustomersRequest]) (*connect.Response[ListCustomersResponse], error) {
	return c.listCustomers.CallUnary(ctx, req)
}

func (c *CustomerServiceClient) ListCustomerSummaries(ctx context.Context, req *connect.Request[ListCustomerSummariesRequest]) (*connect.Response[ListCustomerSummariesResponse], error) {
	return c.listCustomerSummaries.CallUnary(ctx, req)
}

// AuthServiceClient calls AuthService over HTTP.
type AuthServiceClient struct {
	login          *connect.Client[LoginRequest, LoginResponse]
	logout         *connect.Client[LogoutRequest, LogoutResponse]
	getCurrentUser *connect.Client[GetCurrentUserRequest, GetCurrentUserResponse]
}

func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &AuthServiceClient{
		login:          connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		logout:         connect.NewClient[LogoutRequest, LogoutResponse](httpClient, baseURL+AuthServiceLogoutProcedure, opts...),
		getCurrentUser: connect.NewClient[GetCurrentUserRequest, GetCurrentUserResponse](httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
	}
}

func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *AuthServiceClient) Logout(ctx context.Context, req *connect.Request[LogoutRequest]) (*connect.Response[LogoutResponse], error) {
	return c.logout.CallUnary(ctx, req)
}

func (c *AuthServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}
