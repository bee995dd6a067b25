package config

import (
	"strings"
	"testing"
	"time"

	"homehive/pkg/logger"
)

func validConfig() *Config {
	return &Config{
		APIBaseURL:      "https://api.homehive.example/api",
		RequestTimeout:  30 * time.Second,
		RefreshMargin:   300 * time.Second,
		TokenStorePath:  ".homehive/session.json",
		DisplayCurrency: "NGN",
		PaginationLimit: 50,
		Log:             logger.New(logger.Config{Level: "error"}),
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid config", func(c *Config) {}, ""},
		{"empty base url", func(c *Config) { c.APIBaseURL = "" }, "APIBaseURL"},
		{"non-http base url", func(c *Config) { c.APIBaseURL = "ftp://x" }, "APIBaseURL"},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }, "RequestTimeout"},
		{"zero margin", func(c *Config) { c.RefreshMargin = 0 }, "RefreshMargin"},
		{"empty store path", func(c *Config) { c.TokenStorePath = "" }, "TokenStorePath"},
		{"bad currency code", func(c *Config) { c.DisplayCurrency = "NAIRA" }, "DisplayCurrency"},
		{"zero pagination limit", func(c *Config) { c.PaginationLimit = 0 }, "PaginationLimit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.APIBaseURL = ""
	cfg.RequestTimeout = 0
	cfg.DisplayCurrency = "X"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil for a triply-broken config")
	}
	for _, field := range []string{"APIBaseURL", "RequestTimeout", "DisplayCurrency"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error does not mention %s: %v", field, err)
		}
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "https://staging.homehive.example/api/")
	t.Setenv(EnvRequestTimeout, "5s")
	t.Setenv(EnvDisplayCurrency, "usd")
	t.Setenv(EnvPaginationLimit, "25")

	cfg := Load("homehive-test")

	if cfg.APIBaseURL != "https://staging.homehive.example/api" {
		t.Errorf("APIBaseURL = %q, want trailing slash stripped", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %s, want 5s", cfg.RequestTimeout)
	}
	if cfg.DisplayCurrency != "USD" {
		t.Errorf("DisplayCurrency = %q, want uppercased USD", cfg.DisplayCurrency)
	}
	if cfg.PaginationLimit != 25 {
		t.Errorf("PaginationLimit = %d, want 25", cfg.PaginationLimit)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "")
	t.Setenv(EnvRequestTimeout, "")
	t.Setenv(EnvRefreshMargin, "")
	t.Setenv(EnvDisplayCurrency, "")
	t.Setenv(EnvPaginationLimit, "")

	cfg := Load("homehive-test")

	if cfg.APIBaseURL != DefaultAPIBaseURL {
		t.Errorf("APIBaseURL = %q, want default", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != DefaultRequestTimeout {
		t.Errorf("RequestTimeout = %s, want default", cfg.RequestTimeout)
	}
	if cfg.RefreshMargin != DefaultRefreshMargin {
		t.Errorf("RefreshMargin = %s, want default", cfg.RefreshMargin)
	}
	if cfg.DisplayCurrency != DefaultDisplayCurrency {
		t.Errorf("DisplayCurrency = %q, want default", cfg.DisplayCurrency)
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("HOMEHIVE_TEST_NUM", "not-a-number")
	if got := getEnvNum("HOMEHIVE_TEST_NUM", 7); got != 7 {
		t.Errorf("getEnvNum with garbage = %d, want fallback 7", got)
	}

	t.Setenv("HOMEHIVE_TEST_DUR", "garbage")
	if got := getEnvDuration("HOMEHIVE_TEST_DUR", time.Minute); got != time.Minute {
		t.Errorf("getEnvDuration with garbage = %s, want fallback 1m", got)
	}
}

func TestNormalizePaginationLimit(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, 10},
		{-3, 10},
		{25, 25},
		{DefaultPaginationLimit + 100, DefaultPaginationLimit},
	}

	for _, tt := range tests {
		if got := NormalizePaginationLimit(tt.input); got != tt.want {
			t.Errorf("NormalizePaginationLimit(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
