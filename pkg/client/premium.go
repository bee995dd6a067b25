package client

import (
	"context"

	"homehive/pkg/model"
)

type PremiumClient struct {
	httpClient *HttpClient
}

func NewPremiumClient(httpClient *HttpClient) *PremiumClient {
	return &PremiumClient{httpClient: httpClient}
}

func (c *PremiumClient) Status(ctx context.Context) (*model.PremiumStatus, error) {
	resp, err := c.httpClient.GET(ctx, "/premium/status")
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var status model.PremiumStatus
	if err := decodeData(resp, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *PremiumClient) Plans(ctx context.Context) ([]*model.PremiumPlan, error) {
	resp, err := c.httpClient.GET(ctx, "/premium/plans")
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var plans []*model.PremiumPlan
	if err := decodeData(resp, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (c *PremiumClient) FeaturedImages(ctx context.Context) ([]*model.FeaturedImage, error) {
	resp, err := c.httpClient.GET(ctx, "/premium/featured-images")
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var images []*model.FeaturedImage
	if err := decodeData(resp, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (c *PremiumClient) Upgrade(ctx context.Context, planID string) (*model.PremiumStatus, error) {
	body := map[string]string{"planId": planID}
	resp, err := c.httpClient.POST(ctx, "/premium/upgrade", body)
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var status model.PremiumStatus
	if err := decodeData(resp, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *PremiumClient) Cancel(ctx context.Context) error {
	resp, err := c.httpClient.POST(ctx, "/premium/cancel", nil)
	if err != nil {
		return err
	}
	return ensureSuccess(resp)
}

func (c *PremiumClient) SetFeaturedImage(ctx context.Context, propertyID, imageURL string) error {
	body := map[string]string{"propertyId": propertyID, "url": imageURL}
	resp, err := c.httpClient.POST(ctx, "/premium/featured-image", body)
	if err != nil {
		return err
	}
	return ensureSuccess(resp)
}
