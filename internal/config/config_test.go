package config

import (
	"os"
	"testing"
)

func setRequiredVars(t *testing.T) {
	t.Helper()
	os.Setenv("GEMINI_API_KEY", "test-gemini-key")
	os.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	os.Setenv("RAZORPAY_KEY_SECRET", "rzp_test_secret")
	t.Cleanup(func() {
		os.Unsetenv("GEMINI_API_KEY")
		os.Unsetenv("RAZORPAY_KEY_ID")
		os.Unsetenv("RAZORPAY_KEY_SECRET")
	})
}

func TestLoad_WithRequiredVars(t *testing.T) {
	setRequiredVars(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.GeminiAPIKey != "test-gemini-key" {
		t.Errorf("expected GeminiAPIKey to be set, got %s", cfg.GeminiAPIKey)
	}

	if cfg.RazorpayKeyID != "rzp_test_key" {
		t.Errorf("expected RazorpayKeyID to be set, got %s", cfg.RazorpayKeyID)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("GEMINI_API_KEY")
	os.Unsetenv("RAZORPAY_KEY_ID")
	os.Unsetenv("RAZORPAY_KEY_SECRET")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing required vars, got nil")
	}
}

func TestConfig_Defaults(t *testing.T) {
	setRequiredVars(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("expected default AppEnv 'development', got %s", cfg.AppEnv)
	}

	if cfg.AppPort != 3000 {
		t.Errorf("expected default AppPort 3000, got %d", cfg.AppPort)
	}

	if cfg.StoreBackend != "file" {
		t.Errorf("expected default StoreBackend 'file', got %s", cfg.StoreBackend)
	}

	if cfg.DataFile != "users.json" {
		t.Errorf("expected default DataFile 'users.json', got %s", cfg.DataFile)
	}

	if cfg.RazorpayCurrency != "INR" {
		t.Errorf("expected default RazorpayCurrency 'INR', got %s", cfg.RazorpayCurrency)
	}

	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Errorf("expected default GeminiModel 'gemini-1.5-flash', got %s", cfg.GeminiModel)
	}
}

func TestLoad_InvalidStoreBackend(t *testing.T) {
	setRequiredVars(t)
	os.Setenv("STORE_BACKEND", "postgres")
	defer os.Unsetenv("STORE_BACKEND")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown store backend")
	}
}

func TestLoad_RedisBackendRequiresURL(t *testing.T) {
	setRequiredVars(t)
	os.Setenv("STORE_BACKEND", "redis")
	os.Unsetenv("REDIS_URL")
	defer os.Unsetenv("STORE_BACKEND")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when STORE_BACKEND=redis without REDIS_URL")
	}
}

func TestConfig_GetCORSAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: "https://a.example.com, https://b.example.com ,"}

	origins := cfg.GetCORSAllowedOrigins()
	if len(origins) != 2 {
		t.Fatalf("expected 2 origins, got %d", len(origins))
	}
	if origins[0] != "https://a.example.com" || origins[1] != "https://b.example.com" {
		t.Errorf("unexpected origins %v", origins)
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{AppEnv: "development"}
	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to return true")
	}

	cfg.AppEnv = "production"
	if cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to return false")
	}
}
