package client

import (
	"context"

	"homehive/pkg/model"
)

type TestimonialClient struct {
	httpClient *HttpClient
}

func NewTestimonialClient(httpClient *HttpClient) *TestimonialClient {
	return &TestimonialClient{httpClient: httpClient}
}

func (c *TestimonialClient) GetAll(ctx context.Context) ([]*model.Testimonial, error) {
	resp, err := c.httpClient.GET(ctx, "/testimonials")
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var testimonials []*model.Testimonial
	if err := decodeData(resp, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (c *TestimonialClient) Create(ctx context.Context, testimonial model.Testimonial) (*model.Testimonial, error) {
	resp, err := c.httpClient.POST(ctx, "/testimonials", testimonial)
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var created model.Testimonial
	if err := decodeData(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *TestimonialClient) Stats(ctx context.Context) (*model.TestimonialStats, error) {
	resp, err := c.httpClient.GET(ctx, "/testimonials/stats")
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var stats model.TestimonialStats
	if err := decodeData(resp, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
