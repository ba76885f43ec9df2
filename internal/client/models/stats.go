package models

// StatsSummary is the aggregate the stats view presents over the user's
// dive logs.
type StatsSummary struct {
	Dives              int
	MaxDepth           float64
	TotalBottomTimeMin float64
	RatedDives         int
	AverageRating      float64
}
