package services

import (
	"context"

	"github.com/reeflog/reeflog/internal/client/api"
	"github.com/reeflog/reeflog/internal/client/models"
)

// StatsService aggregates the user's dive logs into the summary numbers the
// stats view shows.
type StatsService struct {
	client api.Client
}

// NewStatsService returns a StatsService over the given API client.
func NewStatsService(client api.Client) *StatsService {
	return &StatsService{client: client}
}

// Summary fetches the user's logs and computes dive count, deepest dive,
// total bottom time and the average rating over rated dives.
func (s *StatsService) Summary(ctx context.Context) (models.StatsSummary, error) {
	logs, err := s.client.ListDiveLogs(ctx)
	if err != nil {
		return models.StatsSummary{}, err
	}

	var sum models.StatsSummary
	var ratingTotal int
	for _, l := range logs {
		sum.Dives++
		if l.Depth > sum.MaxDepth {
			sum.MaxDepth = l.Depth
		}
		sum.TotalBottomTimeMin += l.BottomTimeInMinutes
		if l.Rating != nil {
			sum.RatedDives++
			ratingTotal += *l.Rating
		}
	}
	if sum.RatedDives > 0 {
		sum.AverageRating = float64(ratingTotal) / float64(sum.RatedDives)
	}
	return sum, nil
}
