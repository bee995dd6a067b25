package client

import (
	"context"

	"homehive/pkg/model"
)

type AuthClient struct {
	httpClient *HttpClient
	sessions   sessionWriter
}

// sessionWriter is the slice of the session manager the auth client needs to
// persist what the backend hands back.
type sessionWriter interface {
	SetTokens(access, refresh string)
	SetProfile(user *model.User)
	ClearTokens()
}

func NewAuthClient(httpClient *HttpClient, sessions sessionWriter) *AuthClient {
	return &AuthClient{
		httpClient: httpClient,
		sessions:   sessions,
	}
}

// Login exchanges credentials for a token pair and persists it.
func (c *AuthClient) Login(ctx context.Context, creds model.Credentials) (*model.User, error) {
	resp, err := c.httpClient.POST(ctx, "/auth/login", creds)
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}
	return c.persistTokenPair(resp)
}

// Register creates an account; the backend logs the new user straight in.
func (c *AuthClient) Register(ctx context.Context, reg model.Registration) (*model.User, error) {
	resp, err := c.httpClient.POST(ctx, "/auth/register", reg)
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}
	return c.persistTokenPair(resp)
}

// Logout invalidates the session server-side, then clears local state. The
// local clear happens even when the network call fails: a dead backend must
// not pin the user to a session.
func (c *AuthClient) Logout(ctx context.Context) error {
	_, err := c.httpClient.POST(ctx, "/auth/logout", nil)
	c.sessions.ClearTokens()
	return err
}

func (c *AuthClient) Profile(ctx context.Context) (*model.User, error) {
	resp, err := c.httpClient.GET(ctx, "/auth/profile")
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var user model.User
	if err := decodeData(resp, &user); err != nil {
		return nil, err
	}
	c.sessions.SetProfile(&user)
	return &user, nil
}

func (c *AuthClient) UpdateProfile(ctx context.Context, user model.User) (*model.User, error) {
	resp, err := c.httpClient.PUT(ctx, "/auth/profile", user)
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var updated model.User
	if err := decodeData(resp, &updated); err != nil {
		return nil, err
	}
	c.sessions.SetProfile(&updated)
	return &updated, nil
}

func (c *AuthClient) ChangePassword(ctx context.Context, change model.PasswordChange) error {
	resp, err := c.httpClient.PUT(ctx, "/auth/change-password", change)
	if err != nil {
		return err
	}
	return ensureSuccess(resp)
}

// DeleteAccount removes the account and destroys the local session.
func (c *AuthClient) DeleteAccount(ctx context.Context) error {
	resp, err := c.httpClient.DELETE(ctx, "/auth/account")
	if err != nil {
		return err
	}
	if err := ensureSuccess(resp); err != nil {
		return err
	}
	c.sessions.ClearTokens()
	return nil
}

func (c *AuthClient) persistTokenPair(resp *Response) (*model.User, error) {
	var pair model.TokenPair
	if err := decodeData(resp, &pair); err != nil {
		return nil, err
	}

	c.sessions.SetTokens(pair.AccessToken, pair.RefreshToken)
	if pair.User != nil {
		c.sessions.SetProfile(pair.User)
	}
	return pair.User, nil
}
