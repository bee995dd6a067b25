package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"homehive/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL string

	PaymentPublishableKey string
	OAuthClientID         string

	RequestTimeout time.Duration
	RefreshMargin  time.Duration

	TokenStorePath  string
	DisplayCurrency string
	PaginationLimit int

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL: strings.TrimRight(getEnvStr(EnvAPIBaseURL, DefaultAPIBaseURL), "/"),

		PaymentPublishableKey: getEnvStr(EnvPaymentPublishableKey, ""),
		OAuthClientID:         getEnvStr(EnvOAuthClientID, ""),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		RefreshMargin:  getEnvDuration(EnvRefreshMargin, DefaultRefreshMargin),

		TokenStorePath:  getEnvStr(EnvTokenStorePath, defaultTokenStorePath()),
		DisplayCurrency: strings.ToUpper(getEnvStr(EnvDisplayCurrency, DefaultDisplayCurrency)),
		PaginationLimit: getEnvNum(EnvPaginationLimit, DefaultPaginationLimit),

		Log: logger.New(logger.Config{
			Level:   getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:  logger.JSON,
			Service: serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errors []string

	if cfg.APIBaseURL == "" {
		errors = append(errors, "APIBaseURL cannot be empty")
	} else if u, err := url.Parse(cfg.APIBaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		errors = append(errors, fmt.Sprintf("APIBaseURL must be an http(s) URL, got: %s", cfg.APIBaseURL))
	}

	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.RefreshMargin <= 0 {
		errors = append(errors, fmt.Sprintf("RefreshMargin must be positive, got: %s", cfg.RefreshMargin))
	}

	if cfg.TokenStorePath == "" {
		errors = append(errors, "TokenStorePath cannot be empty")
	}
	if len(cfg.DisplayCurrency) != 3 {
		errors = append(errors, fmt.Sprintf("DisplayCurrency must be a 3-letter ISO code, got: %s", cfg.DisplayCurrency))
	}
	if cfg.PaginationLimit <= 0 {
		errors = append(errors, fmt.Sprintf("PaginationLimit must be positive, got: %d", cfg.PaginationLimit))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"api_base_url", cfg.APIBaseURL,
		"payment_key_set", cfg.PaymentPublishableKey != "",
		"oauth_client_id_set", cfg.OAuthClientID != "",
		"request_timeout", cfg.RequestTimeout,
		"refresh_margin", cfg.RefreshMargin,
		"token_store_path", cfg.TokenStorePath,
		"display_currency", cfg.DisplayCurrency,
		"pagination_limit", cfg.PaginationLimit,
	)
}

func defaultTokenStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultTokenStorePath
	}
	return filepath.Join(home, DefaultTokenStorePath)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func NormalizePaginationLimit(limit int) int {
	if limit <= 0 {
		limit = 10
	} else if limit > DefaultPaginationLimit {
		limit = DefaultPaginationLimit
	}
	return limit
}
