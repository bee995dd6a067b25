package client

import (
	"context"
)

// PaymentIntent is the gateway handle for a pending charge. The card charge
// itself happens in the external payment gateway; the client only shuttles
// identifiers.
type PaymentIntent struct {
	ID           string  `json:"id"`
	ClientSecret string  `json:"clientSecret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

type PaymentClient struct {
	httpClient *HttpClient
}

func NewPaymentClient(httpClient *HttpClient) *PaymentClient {
	return &PaymentClient{httpClient: httpClient}
}

func (c *PaymentClient) CreateIntent(ctx context.Context, bookingID string, amount float64, currency string) (*PaymentIntent, error) {
	body := map[string]any{
		"bookingId": bookingID,
		"amount":    amount,
		"currency":  currency,
	}

	resp, err := c.httpClient.POST(ctx, "/payments/create-intent", body)
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var intent PaymentIntent
	if err := decodeData(resp, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}
