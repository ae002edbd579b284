package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/storefront/catalog-api/docs"
	"github.com/storefront/catalog-api/internal/infrastructure/config"
)

func TestRouter_ServesSwaggerSpec(t *testing.T) {
	cfg := &config.Config{
		Port: "8080",
		JWT:  config.JWTConfig{Secret: "secret", TTL: time.Hour},
		Security: config.SecurityConfig{
			AllowedOrigins:  []string{"*"},
			AllowedMethods:  []string{http.MethodGet},
			RateLimitWindow: time.Minute,
			RateLimitMax:    100,
		},
	}
	e := NewRouter(cfg, zerolog.Nop(), nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"/api/auth/login"`) {
		t.Fatalf("served spec missing login route: %s", body[:min(len(body), 200)])
	}
	if !strings.Contains(body, `"/api/products"`) {
		t.Fatalf("served spec missing products route")
	}
}
