package model

// HostAnalytics summarizes a host's performance across their listings.
type HostAnalytics struct {
	TotalBookings   int     `json:"totalBookings"`
	TotalRevenue    float64 `json:"totalRevenue"`
	Currency        string  `json:"currency"`
	OccupancyRate   float64 `json:"occupancyRate"`
	AverageRating   float64 `json:"averageRating"`
	ActiveListings  int     `json:"activeListings"`
	PendingRequests int     `json:"pendingRequests"`
}

type PropertyAnalytics struct {
	PropertyID    string  `json:"propertyId"`
	Views         int     `json:"views"`
	Bookings      int     `json:"bookings"`
	Revenue       float64 `json:"revenue"`
	Currency      string  `json:"currency"`
	OccupancyRate float64 `json:"occupancyRate"`
}

type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}
