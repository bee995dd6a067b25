package model

import "time"

type Review struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId" validate:"required"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	Rating     int       `json:"rating" validate:"required,min=1,max=5"`
	Comment    string    `json:"comment" validate:"required,min=2,max=2000"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,min=1,max=100"`
	Role      string    `json:"role"`
	Message   string    `json:"message" validate:"required,min=2,max=2000"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

type TestimonialStats struct {
	Total         int     `json:"total"`
	AverageRating float64 `json:"averageRating"`
}
