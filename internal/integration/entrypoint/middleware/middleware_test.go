package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-daddy/backend/internal/application/adapter"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

type stubVerifier struct {
	claims *adapter.TokenClaims
	err    error
}

func (v stubVerifier) ValidateAccessToken(context.Context, string) (*adapter.TokenClaims, error) {
	return v.claims, v.err
}

func newAuthEngine(verifier adapter.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", NewAuthMiddleware(verifier).Authenticate(), func(c *gin.Context) {
		subject, _ := GetSubjectFromContext(c)
		username, _ := GetUsernameFromContext(c)
		c.String(http.StatusOK, subject+"/"+username)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	valid := stubVerifier{claims: &adapter.TokenClaims{Subject: "u-1", Username: "ana"}}
	expired := stubVerifier{err: domainerror.NewAuthError(
		domainerror.ErrCodeExpiredToken, "token has expired", errors.Join(domainerror.ErrExpiredToken, errors.New("exp")),
	)}
	invalid := stubVerifier{err: domainerror.NewAuthError(
		domainerror.ErrCodeInvalidToken, "invalid token", domainerror.ErrInvalidToken,
	)}

	tests := []struct {
		name     string
		verifier adapter.TokenVerifier
		header   string
		wantCode int
		wantBody string
	}{
		{name: "valid token", verifier: valid, header: "Bearer abc", wantCode: http.StatusOK, wantBody: "u-1/ana"},
		{name: "missing header", verifier: valid, header: "", wantCode: http.StatusUnauthorized, wantBody: string(domainerror.ErrCodeMissingToken)},
		{name: "wrong scheme", verifier: valid, header: "Basic abc", wantCode: http.StatusUnauthorized, wantBody: string(domainerror.ErrCodeInvalidToken)},
		{name: "empty token", verifier: valid, header: "Bearer ", wantCode: http.StatusUnauthorized, wantBody: string(domainerror.ErrCodeMissingToken)},
		{name: "expired token", verifier: expired, header: "Bearer abc", wantCode: http.StatusUnauthorized, wantBody: string(domainerror.ErrCodeExpiredToken)},
		{name: "invalid token", verifier: invalid, header: "Bearer abc", wantCode: http.StatusUnauthorized, wantBody: string(domainerror.ErrCodeInvalidToken)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			newAuthEngine(tt.verifier).ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body %q does not contain %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	limiter := NewRateLimiter(2, time.Minute)
	limiter.now = func() time.Time { return now }

	r := gin.New()
	r.POST("/import", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/import", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 2; i++ {
		if w := send(); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
		}
	}

	w := send()
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") != "61" {
		t.Errorf("Retry-After = %q, want \"61\"", w.Header().Get("Retry-After"))
	}

	now = now.Add(time.Minute + time.Second)
	if w := send(); w.Code != http.StatusOK {
		t.Errorf("request after window status = %d, want 200", w.Code)
	}

	limiter.Cleanup()
	limiter.Reset()
}

func TestRateLimiter_Disabled(t *testing.T) {
	limiter := NewRateLimiter(0, time.Minute)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/import", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/import", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
		}
	}
}
