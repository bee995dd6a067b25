package client

import (
	"context"
	"net/url"

	"homehive/pkg/model"
)

type ReviewClient struct {
	httpClient *HttpClient
}

func NewReviewClient(httpClient *HttpClient) *ReviewClient {
	return &ReviewClient{httpClient: httpClient}
}

func (c *ReviewClient) ForProperty(ctx context.Context, propertyID string) ([]*model.Review, error) {
	resp, err := c.httpClient.GET(ctx, "/reviews/"+url.PathEscape(propertyID))
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var reviews []*model.Review
	if err := decodeData(resp, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *ReviewClient) Create(ctx context.Context, review model.Review) (*model.Review, error) {
	resp, err := c.httpClient.POST(ctx, "/reviews", review)
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var created model.Review
	if err := decodeData(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *ReviewClient) Update(ctx context.Context, id string, review model.Review) (*model.Review, error) {
	resp, err := c.httpClient.PUT(ctx, "/reviews/"+url.PathEscape(id), review)
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var updated model.Review
	if err := decodeData(resp, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *ReviewClient) Delete(ctx context.Context, id string) error {
	resp, err := c.httpClient.DELETE(ctx, "/reviews/"+url.PathEscape(id))
	if err != nil {
		return err
	}
	return ensureSuccess(resp)
}
