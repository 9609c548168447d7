package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/todolist/internal/adapter/memory"
	"github.com/pscheid92/todolist/internal/adapter/metrics"
	"github.com/pscheid92/todolist/internal/app"
	"github.com/pscheid92/todolist/internal/domain"
	"github.com/pscheid92/todolist/internal/platform/config"
)

// --- Mock implementations ---

type mockAppService struct {
	listItemsFn func(ctx context.Context) ([]domain.Item, error)
	addItemFn   func(ctx context.Context, item domain.NewItem) ([]domain.Item, error)
}

func (m *mockAppService) ListItems(ctx context.Context) ([]domain.Item, error) {
	if m.listItemsFn != nil {
		return m.listItemsFn(ctx)
	}
	return []domain.Item{}, nil
}

func (m *mockAppService) AddItem(ctx context.Context, item domain.NewItem) ([]domain.Item, error) {
	if m.addItemFn != nil {
		return m.addItemFn(ctx, item)
	}
	return nil, errors.New("not implemented")
}

// --- Test helpers ---

func newTestServer(t *testing.T, app appService, opts ...func(*Server)) *Server {
	t.Helper()

	reg := prometheus.NewRegistry()
	clock := clockwork.NewFakeClock()

	srv := &Server{
		echo: echo.New(),
		config: &config.Config{
			Port:               "8000",
			CORSAllowedOrigins: []string{"*"},
		},
		app:            app,
		httpMetrics:    metrics.NewHTTPMetrics(reg),
		metricsHandler: metrics.Handler(reg),
		clock:          clock,
		startTime:      clock.Now(),
	}

	for _, opt := range opts {
		opt(srv)
	}

	// Register routes so endpoints are available for testing
	srv.registerRoutes()

	return srv
}

// newStoreBackedServer wires the real service and in-memory store.
func newStoreBackedServer(t *testing.T, opts ...func(*Server)) *Server {
	t.Helper()
	svc := app.NewService(memory.NewItemStore(), metrics.NewItemMetrics(prometheus.NewRegistry()), clockwork.NewFakeClock())
	return newTestServer(t, svc, opts...)
}

func withHealthChecks(checks ...HealthCheck) func(*Server) {
	return func(s *Server) {
		s.healthChecks = checks
	}
}

func withAllowedOrigins(origins ...string) func(*Server) {
	return func(s *Server) {
		s.config.CORSAllowedOrigins = origins
	}
}

func withClock(clock clockwork.Clock) func(*Server) {
	return func(s *Server) {
		s.clock = clock
		s.startTime = clock.Now()
	}
}

// callHandler wraps a handler with error middleware, matching production behavior
func callHandler(handler echo.HandlerFunc, c echo.Context) error {
	return ErrorHandlingMiddleware()(handler)(c)
}

// serve runs a request through the full middleware chain.
func serve(srv *Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

var jsonHeaders = map[string]string{echo.HeaderContentType: echo.MIMEApplicationJSON}
