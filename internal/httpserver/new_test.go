package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	appConfig "user-management-backend/config"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()

	srv, err := New(&mockLogger{}, Config{
		Logger:      &mockLogger{},
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "development",
		RateLimit:   appConfig.RateLimitConfig{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil, Config{Port: 8080, Mode: gin.TestMode}); err == nil {
		t.Error("expected error for missing logger")
	}
	if _, err := New(&mockLogger{}, Config{Mode: gin.TestMode}); err == nil {
		t.Error("expected error for missing port")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", path, w.Code)
		}
	}
}

func TestDomainRoutesAreWired(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list users: status = %d, want 200", w.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("unexpected body: %v", resp)
	}
	if data["total"].(float64) != 0 {
		t.Errorf("total = %v, want 0", data["total"])
	}

	// Unknown users surface through the global translator.
	w = httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/users/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("detail of unknown user: status = %d, want 404", w.Code)
	}
}
