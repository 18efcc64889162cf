package webhook

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"executive-assistant/pkg/log"
)

func TestValidateSecretToken(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{Secret: "s3cret"})
	if err := v.ValidateSecretToken("s3cret"); err != nil {
		t.Errorf("valid token rejected: %v", err)
	}
	if err := v.ValidateSecretToken("nope"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
	if err := NewSecurityValidator(SecurityConfig{}).ValidateSecretToken(""); err != nil {
		t.Errorf("empty secret should disable the check: %v", err)
	}
}

func TestValidateIPAddress(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{AllowedIPs: []string{"10.0.0.1", "149.154.160.0/20"}})

	tests := []struct {
		name   string
		remote string
		xff    string
		ok     bool
	}{
		{"exact match", "10.0.0.1:443", "", true},
		{"cidr match", "149.154.167.99:443", "", true},
		{"forwarded header wins", "127.0.0.1:80", "149.154.161.1, 10.9.9.9", true},
		{"outside", "192.168.0.1:443", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			err := v.ValidateIPAddress(r)
			if tt.ok && err != nil {
				t.Errorf("unexpected error %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrIPNotAllowed) {
				t.Errorf("expected ErrIPNotAllowed, got %v", err)
			}
		})
	}
}

func TestCheckRateLimit(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{RateLimitPerMin: 20})

	for i := 0; i < 2; i++ {
		if err := v.CheckRateLimit("a"); err != nil {
			t.Fatalf("request %d rejected: %v", i, err)
		}
	}
	if err := v.CheckRateLimit("a"); !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
	if err := v.CheckRateLimit("b"); err != nil {
		t.Errorf("other source limited: %v", err)
	}
}

func TestGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	v := NewSecurityValidator(SecurityConfig{Secret: "tok", RateLimitPerMin: 10})
	r := gin.New()
	r.POST("/hook", Guard(v, "X-Secret", log.NewNop()), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(token string) int {
		req := httptest.NewRequest(http.MethodPost, "/hook", nil)
		req.Header.Set("X-Secret", token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := send("bad"); code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", code)
	}
	if code := send("tok"); code != http.StatusOK {
		t.Errorf("expected 200, got %d", code)
	}
	if code := send("tok"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 once the burst is spent, got %d", code)
	}
}
