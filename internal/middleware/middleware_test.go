package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"executive-assistant/pkg/log"
)

func newEngine(m Middleware) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var traceID string
	r := gin.New()
	r.Use(m.RequestID())
	r.GET("/private", m.Auth(), func(c *gin.Context) {
		traceID = log.TraceID(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r, &traceID
}

func TestAuth(t *testing.T) {
	r, _ := newEngine(New(log.NewNop(), "secret"))

	tests := []struct {
		name string
		key  string
		want int
	}{
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "nope", http.StatusUnauthorized},
		{"valid key", "secret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestAuth_DisabledWithoutKey(t *testing.T) {
	r, _ := newEngine(New(log.NewNop(), ""))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	r, traceID := newEngine(New(log.NewNop(), ""))

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get(HeaderRequestID) != "req-42" || *traceID != "req-42" {
		t.Errorf("request id not propagated: header=%q trace=%q", w.Header().Get(HeaderRequestID), *traceID)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
	if w.Header().Get(HeaderRequestID) == "" {
		t.Errorf("request id not generated")
	}
}
