package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"user-management-backend/config"
	"user-management-backend/internal/middleware"
	userHTTP "user-management-backend/internal/user/delivery/http"
	"user-management-backend/internal/user/repository/inmem"
	"user-management-backend/internal/user/usecase"
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

// newAPI wires the full request path: router → middleware → handlers →
// usecase → in-memory repository.
func newAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	mw := middleware.New(l, config.RateLimitConfig{})

	r := gin.New()
	r.Use(mw.Recovery(), mw.ErrorHandler())

	repo := inmem.New(l)
	uc := usecase.New(repo, l)
	h := userHTTP.New(l, uc)
	userHTTP.RegisterRoutes(r.Group("/api/v1"), h)

	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("body is not JSON: %v\nbody: %s", err, w.Body.String())
		}
	}
	return w, parsed
}

// createUser is a test helper returning the new user's ID.
func createUser(t *testing.T, r *gin.Engine, email, role string) string {
	t.Helper()

	body := fmt.Sprintf(`{"first_name":"Jane","last_name":"Doe","email":%q,"role":%q}`, email, role)
	w, resp := do(t, r, http.MethodPost, "/api/v1/users", body)
	if w.Code != http.StatusOK {
		t.Fatalf("create user: status %d, body %s", w.Code, w.Body.String())
	}

	data := resp["data"].(map[string]any)
	u := data["user"].(map[string]any)
	return u["id"].(string)
}

func TestUserLifecycle(t *testing.T) {
	r := newAPI(t)

	id := createUser(t, r, "jane@example.com", "member")

	w, resp := do(t, r, http.MethodGet, "/api/v1/users/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("detail: status %d", w.Code)
	}
	u := resp["data"].(map[string]any)["user"].(map[string]any)
	if u["email"] != "jane@example.com" {
		t.Errorf("email = %v", u["email"])
	}

	w, _ = do(t, r, http.MethodPut, "/api/v1/users/"+id, `{"first_name":"Janet"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status %d", w.Code)
	}

	w, resp = do(t, r, http.MethodGet, "/api/v1/users?limit=10", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	total := resp["data"].(map[string]any)["total"].(float64)
	if total != 1 {
		t.Errorf("total = %v, want 1", total)
	}

	w, _ = do(t, r, http.MethodDelete, "/api/v1/users/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status %d", w.Code)
	}
}

func TestUserErrorPaths(t *testing.T) {
	r := newAPI(t)

	adminID := createUser(t, r, "root@example.com", "admin")
	memberID := createUser(t, r, "jane@example.com", "member")

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantLabel  string
	}{
		{
			name:       "duplicate email on create",
			method:     http.MethodPost,
			path:       "/api/v1/users",
			body:       `{"first_name":"J","last_name":"D","email":"jane@example.com"}`,
			wantStatus: http.StatusConflict,
			wantLabel:  "Conflict",
		},
		{
			name:       "missing required fields",
			method:     http.MethodPost,
			path:       "/api/v1/users",
			body:       `{"email":"x@example.com"}`,
			wantStatus: http.StatusBadRequest,
			wantLabel:  "Invalid Payload",
		},
		{
			name:       "broken json body",
			method:     http.MethodPost,
			path:       "/api/v1/users",
			body:       `{"first_name":`,
			wantStatus: http.StatusBadRequest,
			wantLabel:  "Invalid Data",
		},
		{
			name:       "bad limit query param",
			method:     http.MethodGet,
			path:       "/api/v1/users?limit=many",
			wantStatus: http.StatusBadRequest,
			wantLabel:  "Invalid Parameter",
		},
		{
			name:       "unknown user detail",
			method:     http.MethodGet,
			path:       "/api/v1/users/does-not-exist",
			wantStatus: http.StatusNotFound,
			wantLabel:  "Not Found",
		},
		{
			name:       "delete admin",
			method:     http.MethodDelete,
			path:       "/api/v1/users/" + adminID,
			wantStatus: http.StatusForbidden,
			wantLabel:  "Forbidden",
		},
		{
			name:       "update admin",
			method:     http.MethodPut,
			path:       "/api/v1/users/" + adminID,
			body:       `{"first_name":"Rooted"}`,
			wantStatus: http.StatusForbidden,
			wantLabel:  "Forbidden",
		},
		{
			name:       "update to taken email",
			method:     http.MethodPut,
			path:       "/api/v1/users/" + memberID,
			body:       `{"email":"root@example.com"}`,
			wantStatus: http.StatusConflict,
			wantLabel:  "Conflict",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, body := do(t, r, tc.method, tc.path, tc.body)

			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tc.wantStatus, w.Body.String())
			}
			if body["error"] != tc.wantLabel {
				t.Errorf("error = %v, want %q", body["error"], tc.wantLabel)
			}
			if body["message"] == "" || body["message"] == nil {
				t.Error("message must not be empty")
			}
			if got, _ := body["path"].(string); got == "" {
				t.Error("path must be set")
			}
		})
	}
}
