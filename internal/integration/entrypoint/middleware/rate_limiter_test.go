package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/integration/entrypoint/dto"
)

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	rl := NewRateLimiterWithConfig(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if rl.allow("10.0.0.1") {
		t.Error("attempt past the limit should be blocked")
	}
	if !rl.allow("10.0.0.2") {
		t.Error("another address must not share the budget")
	}
}

func TestRateLimiter_WindowExpiryAdmitsAgain(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

	if !rl.allow("10.0.0.1") {
		t.Fatal("first attempt should be allowed")
	}
	if rl.allow("10.0.0.1") {
		t.Error("second attempt within the window should be blocked")
	}

	time.Sleep(20 * time.Millisecond)
	if !rl.allow("10.0.0.1") {
		t.Error("attempt after the window expired should be allowed")
	}
}

func TestRateLimiter_MiddlewareReturns429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("ENV", "development")

	rl := NewRateLimiterWithConfig(1, time.Minute)
	router := gin.New()
	router.POST("/login", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	if rec := send(); rec.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", rec.Code)
	}

	rec := send()
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Code != string(domainerror.ErrCodeRateLimited) {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeRateLimited, resp.Code)
	}
}

func TestRateLimiter_SkippedInTestEnv(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("ENV", "test")

	rl := NewRateLimiterWithConfig(1, time.Minute)
	router := gin.New()
	router.POST("/login", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d should bypass the limiter, got %d", i+1, rec.Code)
		}
	}
}
