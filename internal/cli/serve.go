package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/acme-dashboard/internal/actions"
	"github.com/mmynk/acme-dashboard/internal/auth"
	"github.com/mmynk/acme-dashboard/internal/cache"
	"github.com/mmynk/acme-dashboard/internal/config"
	"github.com/mmynk/acme-dashboard/internal/metrics"
	"github.com/mmynk/acme-dashboard/internal/middleware"
	"github.com/mmynk/acme-dashboard/internal/service"
	"github.com/mmynk/acme-dashboard/internal/storage"
	"github.com/mmynk/acme-dashboard/internal/storage/sqlite"
	"github.com/mmynk/acme-dashboard/internal/web"
)

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if err := cfg.RequireSecret(); err != nil {
				return err
			}

			store, err := sqlite.New(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer store.Close()
			slog.Info("Storage initialized", "database", cfg.Database.Path)

			handler := newHandler(cfg, store, prometheus.NewRegistry())

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg.Server, handler)
		},
	}
}

// newHandler assembles the HTTP surface: Connect read services, form posts
// and /metrics, wrapped in request logging and h2c.
func newHandler(cfg *config.Configuration, store storage.Store, registry *prometheus.Registry) http.Handler {
	logger := slog.Default()

	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	tokens := auth.NewJWTManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	authn := auth.NewPasswordAuthenticator(store)
	pages := cache.NewInMemory(cache.Options{Enabled: cfg.Cache.Enabled, TTL: cfg.Cache.TTL})

	a := actions.New(store, pages, auth.NewCredentialsProvider(authn, tokens),
		actions.WithLogger(logger),
		actions.WithMetrics(m),
	)

	protected := connect.WithInterceptors(middleware.LoggingInterceptor(), middleware.RequireAuth(tokens))
	public := connect.WithInterceptors(middleware.LoggingInterceptor(), middleware.OptionalAuth(tokens))

	mux := http.NewServeMux()
	mux.Handle(service.NewInvoiceServiceHandler(service.NewInvoiceService(store, pages, m, logger), protected))
	mux.Handle(service.NewCustomerServiceHandler(service.NewCustomerService(store, logger), protected))
	mux.Handle(service.NewAuthServiceHandler(service.NewAuthService(a, store, logger), public))
	web.NewHandler(a, tokens, cfg.Auth.SecureCookies, logger).Register(mux)
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// h2c serves HTTP/2 without TLS, which Connect clients may use.
	return h2c.NewHandler(middleware.RequestLogger(m)(mux), &http2.Server{})
}

func run(ctx context.Context, cfg config.ServerConfig, handler http.Handler) error {
	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", cfg.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("Server stopped")
	return nil
}
