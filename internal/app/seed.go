package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"payroast/internal/models"
)

// sampleRoast describes one demo feed entry before identifiers and timestamps
// are assigned.
type sampleRoast struct {
	message  string
	amount   float64
	currency string
	sender   string
	ageHours int
	likes    int
	comments int
	views    int
}

var sampleRoasts = []sampleRoast{
	{"Your crypto portfolio is so bad, even LUNA investors feel sorry for you.", 0.75, "sol", "sol1a2b3c4d", 2, 24, 5, 142},
	{"You HODL your opinions like you HODL your shitcoins - way past their expiration date.", 50, "usdc", "sol2b3c4d5e", 5, 18, 3, 89},
	{"Your trading strategy is so bad, even a random number generator outperforms you.", 1.2, "sol", "sol3c4d5e6f", 12, 42, 7, 231},
	{"You're so slow to adopt new tech, you're still waiting for Ethereum 2.0.", 0.5, "sol", "sol4d5e6f7g", 24, 15, 2, 78},
	{"Your wallet is so empty, even Ethereum gas fees feel sorry for you.", 100, "usdt", "sol5e6f7g8h", 36, 56, 11, 320},
	{"You have so many failed transactions, Solana's outages are more reliable than you.", 2.5, "sol", "sol6f7g8h9i", 48, 38, 6, 175},
	{"Your NFT collection is so worthless, even right-clickers don't want it.", 1000, "bonk", "sol7g8h9i0j", 72, 29, 4, 132},
	{"You're so bad at picking winners, you'd lose money in a bull market.", 5, "sol", "sol8h9i0j1k", 96, 47, 9, 267},
	{"Your seed phrase is probably 'password123' repeated four times.", 200, "usdc", "sol9i0j1k2l", 120, 33, 5, 154},
	{"You're so gullible, you'd send your crypto to a Nigerian prince.", 10000, "trump", "sol0j1k2l3m", 144, 61, 13, 345},
}

// SeedDemoFeed populates the store with a set of already-accepted sample roasts
// so a fresh deployment has a feed to show. It is a no-op when any roasts exist.
func (app *App) SeedDemoFeed(ctx context.Context) error {
	existing, err := app.db.ReadRoasts(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	roasts := make([]models.Roast, 0, len(sampleRoasts))
	for _, sample := range sampleRoasts {
		reference, err := app.payer.Transfer(sample.amount, sample.currency, sample.sender, "")
		if err != nil {
			return err
		}
		roasts = append(roasts, models.Roast{
			ID:            uuid.NewString(),
			Message:       sample.message,
			Amount:        sample.amount,
			Currency:      sample.currency,
			SenderAddress: sample.sender,
			Status:        models.StatusAccepted,
			CreatedAt:     now.Add(-time.Duration(sample.ageHours) * time.Hour),
			TransactionID: reference,
			Likes:         sample.likes,
			Comments:      sample.comments,
			Views:         sample.views,
		})
	}

	if err := app.db.WriteRoasts(ctx, roasts); err != nil {
		return err
	}
	app.log.Sugar().Infof("Seeded %d demo roasts", len(roasts))
	return nil
}
