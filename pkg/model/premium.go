package model

import "time"

type PremiumStatus struct {
	Active    bool      `json:"active"`
	Plan      string    `json:"plan,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}

type PremiumPlan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Currency string   `json:"currency"`
	Interval string   `json:"interval"`
	Features []string `json:"features"`
}

type FeaturedImage struct {
	ID         string `json:"id"`
	PropertyID string `json:"propertyId"`
	URL        string `json:"url"`
}
