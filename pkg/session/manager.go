package session

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"homehive/pkg/logger"
	"homehive/pkg/model"
)

const refreshRequestTimeout = 10 * time.Second

// Manager is the single source of truth for credential state. It is
// constructed explicitly and injected wherever tokens are needed; no other
// component touches the persisted pair directly.
type Manager struct {
	store      Store
	refreshURL string
	httpClient *http.Client
	margin     time.Duration
	log        *logger.Logger

	// Serializes refreshes so concurrent callers cannot race the backend
	// into rotating the refresh token twice.
	mu sync.Mutex

	now func() time.Time
}

type ManagerConfig struct {
	Store Store
	// RefreshURL is the absolute URL of the token refresh endpoint. The
	// manager talks to it with its own bare HTTP client: the authenticated
	// transport depends on the manager, not the other way around.
	RefreshURL string
	// Margin is how much remaining access-token lifetime counts as "still
	// fresh". Zero means the 300-second default.
	Margin time.Duration
	Log    *logger.Logger
}

func NewManager(cfg ManagerConfig) *Manager {
	if cfg.Margin <= 0 {
		cfg.Margin = 300 * time.Second
	}
	return &Manager{
		store:      cfg.Store,
		refreshURL: cfg.RefreshURL,
		httpClient: &http.Client{Timeout: refreshRequestTimeout},
		margin:     cfg.Margin,
		log:        cfg.Log,
		now:        time.Now,
	}
}

func (m *Manager) SetTokens(access, refresh string) {
	m.store.SetTokens(access, refresh)
}

func (m *Manager) AccessToken() string {
	return m.store.AccessToken()
}

func (m *Manager) RefreshToken() string {
	return m.store.RefreshToken()
}

func (m *Manager) SetProfile(user *model.User) {
	m.store.SetProfile(user)
}

func (m *Manager) Profile() *model.User {
	return m.store.Profile()
}

// ClearTokens removes tokens and the cached profile. Idempotent.
func (m *Manager) ClearTokens() {
	m.store.Clear()
}

// IsAuthenticated reports whether a well-formed, unexpired access token is
// present. Malformed tokens decode-fail safely to false.
func (m *Manager) IsAuthenticated() bool {
	claims, err := DecodeClaims(m.store.AccessToken())
	if err != nil {
		return false
	}
	return !claims.expired(m.now())
}

// IsTokenExpired checks an arbitrary token, defaulting to the stored access
// token when given the empty string. An absent or malformed token is always
// expired.
func (m *Manager) IsTokenExpired(token string) bool {
	if token == "" {
		token = m.store.AccessToken()
	}
	claims, err := DecodeClaims(token)
	if err != nil {
		return true
	}
	return claims.expired(m.now())
}

// UserFromToken decodes the identity embedded in a token, defaulting to the
// stored access token. Returns nil when decoding fails.
func (m *Manager) UserFromToken(token string) *Identity {
	if token == "" {
		token = m.store.AccessToken()
	}
	claims, err := DecodeClaims(token)
	if err != nil {
		return nil
	}
	return claims.Identity()
}

// RefreshIfNeeded returns true without a network call when the access token
// still has more than the safety margin of lifetime left. Otherwise it
// exchanges the refresh token for a new pair. It never returns an error:
// any failure means false, and deciding what to do about it is the
// caller's concern.
func (m *Manager) RefreshIfNeeded(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	refresh := m.store.RefreshToken()

	if claims, err := DecodeClaims(m.store.AccessToken()); err == nil && refresh != "" && claims.ExpiresAt != nil {
		if remaining := claims.ExpiresAt.Time.Sub(m.now()); remaining > m.margin {
			return true
		}
	}

	if refresh == "" {
		m.log.Debug("No refresh token available, cannot refresh session")
		return false
	}

	pair, err := m.requestRefresh(ctx, refresh)
	if err != nil {
		m.log.Warn("Token refresh failed", "error", err)
		return false
	}
	if pair.AccessToken == "" {
		m.log.Warn("Token refresh response carried no access token")
		return false
	}

	m.store.SetTokens(pair.AccessToken, pair.RefreshToken)
	m.log.Debug("Access token refreshed")
	return true
}

// Initialize runs the startup check: an expired access token triggers a
// refresh attempt, and an unrecoverable failure clears all credential state.
// It runs synchronously rather than in a background goroutine: the process is
// a one-shot command that needs the outcome before it talks to the API, and
// would exit before a fire-and-forget refresh landed.
func (m *Manager) Initialize(ctx context.Context) {
	access := m.store.AccessToken()
	if access == "" || !m.IsTokenExpired(access) {
		return
	}

	if !m.RefreshIfNeeded(ctx) {
		m.log.Info("Stored session could not be refreshed, clearing tokens")
		m.ClearTokens()
	}
}

func (m *Manager) requestRefresh(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	body, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.refreshURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &refreshError{status: resp.StatusCode}
	}

	var envelope struct {
		Data model.TokenPair `json:"data"`
	}
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Data, nil
}

type refreshError struct {
	status int
}

func (e *refreshError) Error() string {
	return http.StatusText(e.status)
}
