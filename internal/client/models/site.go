package models

// Site is a dive site as returned by GET /api/divingSpots.
type Site struct {
	ID            string  `json:"_id"`
	Name          string  `json:"name"`
	Location      string  `json:"location,omitempty"`
	Latitude      float64 `json:"latitude,omitempty"`
	Longitude     float64 `json:"longitude,omitempty"`
	AverageRating float64 `json:"averageRating,omitempty"`
}

// User is the account record returned by the auth endpoints.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DiveLogSummary is the slice of a dive log the stats view cares about.
type DiveLogSummary struct {
	Title               string  `json:"title"`
	Date                string  `json:"date"`
	Depth               float64 `json:"depth"`
	BottomTimeInMinutes float64 `json:"bottomTimeInMinutes"`
	Rating              *int    `json:"rating,omitempty"`
}
