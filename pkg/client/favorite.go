package client

import (
	"context"
	"net/url"

	"homehive/pkg/model"
)

type FavoriteClient struct {
	httpClient *HttpClient
}

func NewFavoriteClient(httpClient *HttpClient) *FavoriteClient {
	return &FavoriteClient{httpClient: httpClient}
}

func (c *FavoriteClient) GetAll(ctx context.Context) ([]*model.Property, error) {
	resp, err := c.httpClient.GET(ctx, "/favorites")
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	favorites, _, err := decodeProperties(resp)
	return favorites, err
}

func (c *FavoriteClient) Add(ctx context.Context, propertyID string) error {
	body := map[string]string{"propertyId": propertyID}
	resp, err := c.httpClient.POST(ctx, "/favorites", body)
	if err != nil {
		return err
	}
	return ensureSuccess(resp)
}

func (c *FavoriteClient) Remove(ctx context.Context, propertyID string) error {
	resp, err := c.httpClient.DELETE(ctx, "/favorites/"+url.PathEscape(propertyID))
	if err != nil {
		return err
	}
	return ensureSuccess(resp)
}
