// Package services contains the application services of the client: auth,
// dive-site lookup, statistics and the submission orchestrator.
package services

import (
	"context"

	"github.com/reeflog/reeflog/internal/client/api"
	"github.com/reeflog/reeflog/internal/client/models"
	"github.com/reeflog/reeflog/internal/logging"
	"github.com/reeflog/reeflog/internal/normalize"
)

// SiteService lists dive sites and resolves free-text site names to ids.
type SiteService struct {
	client api.Client
	log    logging.Logger
}

// NewSiteService returns a SiteService over the given API client.
func NewSiteService(client api.Client, log logging.Logger) *SiteService {
	return &SiteService{client: client, log: log}
}

// List returns the full catalogue of known dive sites.
func (s *SiteService) List(ctx context.Context) ([]models.Site, error) {
	return s.client.ListDivingSpots(ctx)
}

// ResolveSiteID maps a free-text site name to a site id by case- and
// accent-insensitive comparison against the remote site list, fetched fresh
// per call. The first match in list order wins; duplicate names are not
// deduplicated. Resolution is best-effort: any fetch failure, like an
// unknown name, yields "".
func (s *SiteService) ResolveSiteID(ctx context.Context, name string) string {
	target := normalize.Text(name)
	if target == "" {
		return ""
	}

	sites, err := s.client.ListDivingSpots(ctx)
	if err != nil {
		s.log.Warn(ctx, "site list fetch failed, resolution skipped", "error", err)
		return ""
	}

	for _, site := range sites {
		if normalize.Text(site.Name) == target {
			return site.ID
		}
	}
	return ""
}
