package client

import (
	"time"

	"homehive/pkg/logger"
	"homehive/pkg/session"
)

// Client aggregates the per-resource API facades over one shared transport.
type Client struct {
	Auth         *AuthClient
	Properties   *PropertyClient
	Bookings     *BookingClient
	Favorites    *FavoriteClient
	Reviews      *ReviewClient
	Testimonials *TestimonialClient
	Files        *FileClient
	Analytics    *AnalyticsClient
	Premium      *PremiumClient
	Payments     *PaymentClient

	httpClient *HttpClient
}

// NewClient builds the facade over one shared transport. A zero timeout
// means DefaultRequestTimeout.
func NewClient(baseURL string, timeout time.Duration, sessions *session.Manager, log *logger.Logger) *Client {
	httpClient := NewHttpClient(baseURL, timeout, sessions, log)

	return &Client{
		Auth:         NewAuthClient(httpClient, sessions),
		Properties:   NewPropertyClient(httpClient),
		Bookings:     NewBookingClient(httpClient),
		Favorites:    NewFavoriteClient(httpClient),
		Reviews:      NewReviewClient(httpClient),
		Testimonials: NewTestimonialClient(httpClient),
		Files:        NewFileClient(httpClient),
		Analytics:    NewAnalyticsClient(httpClient),
		Premium:      NewPremiumClient(httpClient),
		Payments:     NewPaymentClient(httpClient),

		httpClient: httpClient,
	}
}

// OnAuthFailure wires the forced sign-out hook on the shared transport.
func (c *Client) OnAuthFailure(fn func()) {
	c.httpClient.OnAuthFailure(fn)
}
