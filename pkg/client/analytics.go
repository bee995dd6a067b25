package client

import (
	"context"
	"net/url"

	"homehive/pkg/model"
)

type AnalyticsClient struct {
	httpClient *HttpClient
}

func NewAnalyticsClient(httpClient *HttpClient) *AnalyticsClient {
	return &AnalyticsClient{httpClient: httpClient}
}

func (c *AnalyticsClient) Host(ctx context.Context) (*model.HostAnalytics, error) {
	resp, err := c.httpClient.GET(ctx, "/analytics/host")
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var analytics model.HostAnalytics
	if err := decodeData(resp, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (c *AnalyticsClient) Property(ctx context.Context, propertyID string) (*model.PropertyAnalytics, error) {
	resp, err := c.httpClient.GET(ctx, "/analytics/property/"+url.PathEscape(propertyID))
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var analytics model.PropertyAnalytics
	if err := decodeData(resp, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}
