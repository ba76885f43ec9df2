package cli

import (
	"context"
	"fmt"
)

// Stats prints the summary numbers over the user's logged dives.
func (a *App) Stats(ctx context.Context) error {
	sum, err := a.stats.Summary(ctx)
	if err != nil {
		printlnFn("Could not load statistics:", err.Error())
		return err
	}
	if sum.Dives == 0 {
		printlnFn("No dives logged yet")
		return nil
	}

	printlnFn("Dives logged:   ", sum.Dives)
	printlnFn("Deepest dive:   ", fmt.Sprintf("%.1f m", sum.MaxDepth))
	printlnFn("Total bottom time:", fmt.Sprintf("%.0f min", sum.TotalBottomTimeMin))
	if sum.RatedDives > 0 {
		printlnFn("Average rating: ", fmt.Sprintf("%.1f (%d rated)", sum.AverageRating, sum.RatedDives))
	}
	return nil
}
