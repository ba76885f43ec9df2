package cli

import (
	"context"
	"fmt"
)

// Spots lists the known dive sites.
func (a *App) Spots(ctx context.Context) error {
	sites, err := a.sites.List(ctx)
	if err != nil {
		printlnFn("Could not load dive sites:", err.Error())
		return err
	}
	if len(sites) == 0 {
		printlnFn("No dive sites known yet")
		return nil
	}

	for _, s := range sites {
		line := s.Name
		if s.Location != "" {
			line += ", " + s.Location
		}
		if s.AverageRating > 0 {
			line += fmt.Sprintf(" (rated %.1f)", s.AverageRating)
		}
		printlnFn(" ", line)
	}
	return nil
}
