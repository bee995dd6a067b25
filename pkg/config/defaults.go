package config

import "time"

const (
	DefaultAPIBaseURL = "http://localhost:5000/api"

	DefaultRequestTimeout = 30 * time.Second
	DefaultRefreshMargin  = 300 * time.Second

	DefaultTokenStorePath  = ".homehive/session.json"
	DefaultDisplayCurrency = "NGN"

	DefaultLogLevel = "info"

	DefaultPaginationLimit = 50
)
