package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflog/reeflog/internal/client/models"
)

func TestSummary_AggregatesLogs(t *testing.T) {
	r4, r5 := 4, 5
	fc := &fakeClient{logs: []models.DiveLogSummary{
		{Depth: 18, BottomTimeInMinutes: 40, Rating: &r4},
		{Depth: 32, BottomTimeInMinutes: 25, Rating: &r5},
		{Depth: 12, BottomTimeInMinutes: 50}, // unrated
	}}
	svc := NewStatsService(fc)

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, sum.Dives)
	assert.Equal(t, float64(32), sum.MaxDepth)
	assert.Equal(t, float64(115), sum.TotalBottomTimeMin)
	assert.Equal(t, 2, sum.RatedDives)
	assert.Equal(t, 4.5, sum.AverageRating)
}

func TestSummary_EmptyLogbook(t *testing.T) {
	svc := NewStatsService(&fakeClient{})

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum.Dives)
	assert.Zero(t, sum.AverageRating)
}

func TestSummary_FetchErrorSurfaces(t *testing.T) {
	svc := NewStatsService(&fakeClient{logsErr: errors.New("server unavailable")})

	_, err := svc.Summary(context.Background())
	require.Error(t, err)
}
