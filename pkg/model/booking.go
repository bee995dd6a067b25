package model

import "time"

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// BookingDraft is the in-progress form state before submission. Dates are
// date-only strings (2006-01-02): the workflow compares calendar days, never
// time of day.
type BookingDraft struct {
	PropertyID string `json:"propertyId" validate:"required"`
	CheckIn    string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Guests     int    `json:"guests" validate:"required,min=1"`
}

// Reset discards the draft after a successful submission, keeping only the
// property binding.
func (d *BookingDraft) Reset() {
	d.CheckIn = ""
	d.CheckOut = ""
	d.Guests = 1
}

// Quote is derived pricing, recomputed whenever dates, property, or display
// currency change. Never cached across a change.
type Quote struct {
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"pricePerNight"`
	Total         float64 `json:"totalAmount"`
	Currency      string  `json:"currency"`
}

// BookingCreate is the submission payload for POST /bookings.
type BookingCreate struct {
	PropertyID  string  `json:"propertyId"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
	Guests      int     `json:"guests"`
	Nights      int     `json:"nights"`
	TotalAmount float64 `json:"totalAmount"`
	Currency    string  `json:"currency"`
}

// Booking is a booking as returned by the backend.
type Booking struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"propertyId"`
	UserID      string    `json:"userId"`
	CheckIn     string    `json:"checkIn"`
	CheckOut    string    `json:"checkOut"`
	Guests      int       `json:"guests"`
	Nights      int       `json:"nights"`
	TotalAmount float64   `json:"totalAmount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// Availability is the advisory pre-check result. A positive answer is not a
// guarantee: the backend re-validates at submission time.
type Availability struct {
	PropertyID string `json:"propertyId"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Available  bool   `json:"available"`
	Reason     string `json:"reason,omitempty"`
}
