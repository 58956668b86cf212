package config

import (
	"os"
	"testing"
	"time"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "AUTH_JWT_SECRET", "DESK_SEARCH_DEBOUNCE", "DESK_HTTP_TIMEOUT", "PAYMENTS_TABLE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Desk.SearchDebounce != 300*time.Millisecond {
		t.Fatalf("expected 300ms debounce, got %v", cfg.Desk.SearchDebounce)
	}
	if cfg.DynamoDB.PaymentsTable != "payments" {
		t.Fatalf("expected default payments table, got %q", cfg.DynamoDB.PaymentsTable)
	}
	if cfg.Auth.Enabled() {
		t.Fatalf("expected auth disabled without secret")
	}
}

func TestLoadOverrides(t *testing.T) {
	unsetenv(t, "DESK_HTTP_TIMEOUT")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("DESK_SEARCH_DEBOUNCE", "50ms")
	t.Setenv("ORDER_PARTS_TABLE", "parts_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Auth.Enabled() || cfg.Desk.SearchDebounce != 50*time.Millisecond || cfg.DynamoDB.PartsTable != "parts_test" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("DESK_HTTP_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}
