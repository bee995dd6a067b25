package client

import (
	"context"
	"fmt"
	"net/url"

	"homehive/pkg/model"
)

type BookingClient struct {
	httpClient *HttpClient
}

func NewBookingClient(httpClient *HttpClient) *BookingClient {
	return &BookingClient{httpClient: httpClient}
}

// Create submits a booking. The idempotency key makes a double-submit caused
// by a racing second trigger collapse into one booking server-side.
func (c *BookingClient) Create(ctx context.Context, booking model.BookingCreate, idempotencyKey string) (*model.Booking, error) {
	headers := map[string]string{}
	if idempotencyKey != "" {
		headers["Idempotency-Key"] = idempotencyKey
	}

	resp, err := c.httpClient.POSTWithHeaders(ctx, "/bookings", booking, headers)
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var created model.Booking
	if err := decodeData(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *BookingClient) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, *Metadata, error) {
	path := fmt.Sprintf("/bookings?limit=%d&offset=%d", limit, offset)
	resp, err := c.httpClient.GET(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, nil, err
	}

	var bookings []*model.Booking
	metadata, err := decodePaginated(resp, &bookings)
	if err != nil {
		return nil, nil, err
	}
	return bookings, metadata, nil
}

func (c *BookingClient) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	resp, err := c.httpClient.GET(ctx, "/bookings/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var booking model.Booking
	if err := decodeData(resp, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *BookingClient) Update(ctx context.Context, id string, booking model.Booking) (*model.Booking, error) {
	resp, err := c.httpClient.PUT(ctx, "/bookings/"+url.PathEscape(id), booking)
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var updated model.Booking
	if err := decodeData(resp, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *BookingClient) Cancel(ctx context.Context, id string) (*model.Booking, error) {
	return c.transition(ctx, id, "cancel", nil)
}

// Confirm finalizes a booking after the payment gateway reports success.
func (c *BookingClient) Confirm(ctx context.Context, id, paymentConfirmationID string) (*model.Booking, error) {
	body := map[string]string{"paymentConfirmationId": paymentConfirmationID}
	return c.transition(ctx, id, "confirm", body)
}

// CheckAvailability is advisory: a positive answer is not a reservation, the
// backend re-validates at submission time.
func (c *BookingClient) CheckAvailability(ctx context.Context, propertyID, checkIn, checkOut string) (*model.Availability, error) {
	q := url.Values{}
	q.Set("checkIn", checkIn)
	q.Set("checkOut", checkOut)

	path := "/properties/" + url.PathEscape(propertyID) + "/availability?" + q.Encode()
	resp, err := c.httpClient.GET(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var availability model.Availability
	if err := decodeData(resp, &availability); err != nil {
		return nil, err
	}
	return &availability, nil
}

func (c *BookingClient) transition(ctx context.Context, id, action string, body any) (*model.Booking, error) {
	path := "/bookings/" + url.PathEscape(id) + "/" + action
	resp, err := c.httpClient.PUT(ctx, path, body)
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var booking model.Booking
	if err := decodeData(resp, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
