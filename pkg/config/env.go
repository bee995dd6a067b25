package config

const (
	EnvAPIBaseURL = "API_BASE_URL"

	EnvPaymentPublishableKey = "PAYMENT_PUBLISHABLE_KEY"
	EnvOAuthClientID         = "OAUTH_CLIENT_ID"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvRefreshMargin  = "REFRESH_MARGIN"

	EnvTokenStorePath  = "TOKEN_STORE_PATH"
	EnvDisplayCurrency = "DISPLAY_CURRENCY"

	EnvPaginationLimit = "PAGINATION_LIMIT"

	EnvLogLevel = "LOG_LEVEL"
)
