package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	apperrors "homehive/pkg/errors"
	"homehive/pkg/logger"
	"homehive/pkg/session"
)

const DefaultRequestTimeout = 30 * time.Second

// HttpClient dispatches every request with the current access token attached
// and transparently refreshes on an expiry-flagged 401, retrying the
// original request exactly once. The attempt count is carried explicitly per
// dispatch; nothing is mutated on the request itself.
type HttpClient struct {
	BaseURL    string
	HTTPClient *http.Client

	sessions *session.Manager
	log      *logger.Logger

	// onAuthFailure is invoked after an unrecoverable refresh failure, once
	// tokens are cleared. The CLI wires the sign-in redirect here.
	onAuthFailure func()
}

func NewHttpClient(baseURL string, timeout time.Duration, sessions *session.Manager, log *logger.Logger) *HttpClient {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &HttpClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		sessions: sessions,
		log:      log,
	}
}

// OnAuthFailure registers the callback for forced sign-out.
func (c *HttpClient) OnAuthFailure(fn func()) {
	c.onAuthFailure = fn
}

func (c *HttpClient) GET(ctx context.Context, path string) (*Response, error) {
	return c.request(ctx, http.MethodGet, path, nil, nil)
}

func (c *HttpClient) POST(ctx context.Context, path string, body any) (*Response, error) {
	return c.request(ctx, http.MethodPost, path, body, nil)
}

func (c *HttpClient) POSTWithHeaders(ctx context.Context, path string, body any, headers map[string]string) (*Response, error) {
	return c.request(ctx, http.MethodPost, path, body, headers)
}

func (c *HttpClient) PUT(ctx context.Context, path string, body any) (*Response, error) {
	return c.request(ctx, http.MethodPut, path, body, nil)
}

func (c *HttpClient) DELETE(ctx context.Context, path string) (*Response, error) {
	return c.request(ctx, http.MethodDelete, path, nil, nil)
}

// POSTRaw sends a pre-encoded body with the given content type. Used for
// multipart uploads.
func (c *HttpClient) POSTRaw(ctx context.Context, path string, rawBody []byte, contentType string) (*Response, error) {
	headers := map[string]string{"Content-Type": contentType}
	return c.do(ctx, http.MethodPost, path, rawBody, headers, 0)
}

func (c *HttpClient) request(ctx context.Context, method, path string, body any, headers map[string]string) (*Response, error) {
	var rawBody []byte

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		rawBody = jsonData
		if headers == nil {
			headers = map[string]string{}
		}
		if _, ok := headers["Content-Type"]; !ok {
			headers["Content-Type"] = "application/json"
		}
	}

	return c.do(ctx, method, path, rawBody, headers, 0)
}

// do performs one dispatch. attempt counts completed dispatches of this
// logical request; the refresh-and-retry branch is only taken at attempt 0,
// which is the invariant that rules out retry loops.
func (c *HttpClient) do(ctx context.Context, method, path string, rawBody []byte, headers map[string]string, attempt int) (*Response, error) {
	url := c.BaseURL + path

	var reqBody io.Reader
	if rawBody != nil {
		reqBody = bytes.NewReader(rawBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	if token := c.sessions.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, apperrors.Timeout(fmt.Sprintf("%s %s timed out", method, path))
		}
		return nil, apperrors.Unavailable("HomeHive API")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	response := &Response{Response: resp, Body: respBody}

	if resp.StatusCode == http.StatusUnauthorized && attempt == 0 && isExpiryFlagged(response) {
		c.log.Debug("Access token rejected, attempting refresh", "method", method, "path", path)

		if c.sessions.RefreshIfNeeded(ctx) {
			return c.do(ctx, method, path, rawBody, headers, attempt+1)
		}

		c.sessions.ClearTokens()
		if c.onAuthFailure != nil {
			c.onAuthFailure()
		}
	}

	return response, nil
}

// isExpiryFlagged reports whether a 401 body signals token expiry or
// invalidity, as opposed to e.g. missing permissions on a valid token.
func isExpiryFlagged(resp *Response) bool {
	msg := strings.ToLower(GetErrorMessage(resp))
	return strings.Contains(msg, "expired") || strings.Contains(msg, "invalid token")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// ensureSuccess converts a non-2xx response into the backend's error message
// verbatim so callers can surface it to the user unchanged.
func ensureSuccess(resp *Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return apperrors.Backend(GetErrorMessage(resp), resp.StatusCode)
}
