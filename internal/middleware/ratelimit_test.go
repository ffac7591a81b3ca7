package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"user-management-backend/config"
	"user-management-backend/internal/middleware"
	"user-management-backend/pkg/response"
)

func TestRateLimitRejectsWithUniformBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mw := middleware.New(&mockLogger{}, config.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 1,
		Burst:             2,
	})

	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/x", func(c *gin.Context) { response.OK(c, nil) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)

		if w.Code == http.StatusTooManyRequests {
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("429 body is not JSON: %v", err)
			}
			for _, field := range []string{"timestamp", "status", "path", "error", "message"} {
				if _, ok := body[field]; !ok {
					t.Errorf("429 body missing field %q", field)
				}
			}
		}
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("burst requests should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request should be limited, got %v", codes)
	}
}

func TestRateLimitDisabledIsPassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mw := middleware.New(&mockLogger{}, config.RateLimitConfig{Enabled: false})

	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/x", func(c *gin.Context) { response.OK(c, nil) })

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, w.Code)
		}
	}
}
