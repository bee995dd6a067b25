package model

import "time"

// Property is the canonical client-side projection of a listing. It is
// read-only: the booking workflow never mutates it, and every backend
// response shape is normalized into this type at the decode boundary.
type Property struct {
	ID           string    `json:"id" validate:"required"`
	HostID       string    `json:"hostId"`
	Title        string    `json:"title" validate:"required,min=2,max=200"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	NightlyPrice float64   `json:"nightlyPrice" validate:"required,gt=0"`
	Currency     string    `json:"currency" validate:"required,len=3"`
	MaxGuests    int       `json:"maxGuests" validate:"required,min=1"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    float64   `json:"bathrooms"`
	Amenities    []string  `json:"amenities"`
	Images       []string  `json:"images"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"reviewCount"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// PropertySearch carries the filter parameters for POST /properties/search.
type PropertySearch struct {
	Location  string   `json:"location,omitempty"`
	CheckIn   string   `json:"checkIn,omitempty"`
	CheckOut  string   `json:"checkOut,omitempty"`
	Guests    int      `json:"guests,omitempty" validate:"omitempty,min=1"`
	MinPrice  float64  `json:"minPrice,omitempty" validate:"omitempty,gte=0"`
	MaxPrice  float64  `json:"maxPrice,omitempty" validate:"omitempty,gtefield=MinPrice"`
	Amenities []string `json:"amenities,omitempty"`
}
