package app

import (
	"context"
	"sort"

	"payroast/internal/models"
)

// defaultFeedLimit is applied when a query passes a non-positive limit.
const defaultFeedLimit = 10

// RecentRoasts returns accepted roasts ordered by creation time, newest first.
// Every call reflects the latest persisted state; nothing is cached.
func (app *App) RecentRoasts(ctx context.Context, limit int) ([]models.Roast, error) {
	roasts, err := app.acceptedRoasts(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(roasts, func(i, j int) bool {
		return roasts[i].CreatedAt.After(roasts[j].CreatedAt)
	})
	return truncateFeed(roasts, limit), nil
}

// TrendingRoasts returns accepted roasts ordered by engagement score, highest
// first. Ties keep the stored order.
func (app *App) TrendingRoasts(ctx context.Context, limit int) ([]models.Roast, error) {
	roasts, err := app.acceptedRoasts(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(roasts, func(i, j int) bool {
		return engagementScore(roasts[i]) > engagementScore(roasts[j])
	})
	return truncateFeed(roasts, limit), nil
}

// HighestPaidRoasts returns accepted roasts ordered by raw amount, highest first.
// Amounts in different currencies are compared as plain numbers with no
// conversion, so 1000 BONK outranks 5 SOL.
func (app *App) HighestPaidRoasts(ctx context.Context, limit int) ([]models.Roast, error) {
	roasts, err := app.acceptedRoasts(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(roasts, func(i, j int) bool {
		return roasts[i].Amount > roasts[j].Amount
	})
	return truncateFeed(roasts, limit), nil
}

// acceptedRoasts reads the latest collection and keeps only accepted roasts.
func (app *App) acceptedRoasts(ctx context.Context) ([]models.Roast, error) {
	roasts, err := app.db.ReadRoasts(ctx)
	if err != nil {
		return nil, err
	}
	accepted := make([]models.Roast, 0, len(roasts))
	for _, roast := range roasts {
		if roast.Status == models.StatusAccepted {
			accepted = append(accepted, roast)
		}
	}
	return accepted, nil
}

// engagementScore weighs comments twice as heavily as likes and views at a tenth.
func engagementScore(roast models.Roast) float64 {
	return float64(roast.Likes) + 2*float64(roast.Comments) + 0.1*float64(roast.Views)
}

func truncateFeed(roasts []models.Roast, limit int) []models.Roast {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if len(roasts) > limit {
		roasts = roasts[:limit]
	}
	return roasts
}
