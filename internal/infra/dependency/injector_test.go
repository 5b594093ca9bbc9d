package dependency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/expense-daddy/backend/config"
	"github.com/expense-daddy/backend/internal/integration/adapters"
	"github.com/expense-daddy/backend/internal/integration/persistence"
)

func testConfig(secret string) *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Environment: "test"},
		Storage: config.StorageConfig{Backend: config.BackendMemory},
		Auth:    config.AuthConfig{JWTSecret: secret},
		Backup:  config.BackupConfig{ImportMaxAttempts: 0, ImportWindow: time.Minute, MaxImportBytes: 1 << 20},
	}
}

func signToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "user-1",
		"username": "ana",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestNewInjector_Routes(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		path     string
		token    bool
		wantCode int
	}{
		{name: "health is public", secret: "s3cret", path: "/health", wantCode: http.StatusOK},
		{name: "open api without secret", path: "/api/v1/profile", wantCode: http.StatusOK},
		{name: "api requires token", secret: "s3cret", path: "/api/v1/expenses", wantCode: http.StatusUnauthorized},
		{name: "api accepts signed token", secret: "s3cret", path: "/api/v1/dashboard/summary", token: true, wantCode: http.StatusOK},
		{name: "calendar route", path: "/api/v1/dashboard/calendar?year=2024&month=2", wantCode: http.StatusOK},
		{name: "backup export route", path: "/api/v1/backup/export", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			injector := NewInjector(testConfig(tt.secret), persistence.NewMemoryStore(), config.BackendMemory, adapters.NewSystemClock())
			engine := injector.Router.Setup("test")

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token {
				req.Header.Set("Authorization", "Bearer "+signToken(t, tt.secret))
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestOpenStorage(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
	}{
		{
			name: "memory",
			cfg:  &config.Config{Storage: config.StorageConfig{Backend: config.BackendMemory}},
		},
		{
			name: "sqlite in memory",
			cfg: &config.Config{
				Storage: config.StorageConfig{Backend: config.BackendSQLite, KeyPrefix: "test:"},
				SQLite:  config.SQLiteConfig{Path: ":memory:"},
			},
		},
		{
			name:    "unknown backend",
			cfg:     &config.Config{Storage: config.StorageConfig{Backend: "tape"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, err := OpenStorage(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("OpenStorage: %v", err)
			}
			defer storage.Close()

			ctx := context.Background()
			if err := storage.Store.Set(ctx, "k", []byte(`[1]`)); err != nil {
				t.Fatalf("Set: %v", err)
			}
			got, found, err := storage.Store.Get(ctx, "k")
			if err != nil || !found || string(got) != `[1]` {
				t.Errorf("Get = %q, %v, %v", got, found, err)
			}
		})
	}
}
