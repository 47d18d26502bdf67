package app

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"payroast/internal/models"
	"payroast/internal/pkg/wallet"
)

// MintNFT records a one-to-one purchase claim over a roast's content.
// The roast must exist and must not have been minted before; its lifecycle status
// is deliberately not checked, so pending and rejected roasts can be minted too.
func (app *App) MintNFT(ctx context.Context, roastID, buyerAddress string, price float64) (*models.NFT, error) {
	if roastID == "" {
		return nil, fmt.Errorf("%w: roast ID is required", ErrValidation)
	}
	if buyerAddress == "" {
		return nil, fmt.Errorf("%w: buyer address is required", ErrValidation)
	}
	if math.IsNaN(price) || price <= 0 {
		return nil, fmt.Errorf("%w: price must be a positive number", ErrValidation)
	}

	roast, err := app.GetRoast(ctx, roastID)
	if err != nil {
		return nil, err
	}

	nfts, err := app.db.ReadNFTs(ctx)
	if err != nil {
		return nil, err
	}
	if findNFTByRoast(nfts, roastID) >= 0 {
		return nil, ErrAlreadyMinted
	}

	reference, err := app.payer.Transfer(price, "sol", buyerAddress, roast.SenderAddress)
	if err != nil {
		return nil, err
	}
	if reference == "" {
		if reference, err = wallet.NewTransactionReference(); err != nil {
			return nil, err
		}
	}

	nft := models.NFT{
		ID:            fmt.Sprintf("nft_%s", uuid.NewString()),
		RoastID:       roastID,
		OwnerAddress:  buyerAddress,
		Price:         price,
		PurchaseDate:  time.Now().UTC(),
		TokenID:       fmt.Sprintf("token_%d", rand.Intn(1000000)),
		TransactionID: reference,
	}

	nfts = append(nfts, nft)
	if err := app.db.WriteNFTs(ctx, nfts); err != nil {
		return nil, err
	}

	return &nft, nil
}

// IsMinted reports whether a claim already exists for the given roast.
func (app *App) IsMinted(ctx context.Context, roastID string) (bool, error) {
	nfts, err := app.db.ReadNFTs(ctx)
	if err != nil {
		return false, err
	}
	return findNFTByRoast(nfts, roastID) >= 0, nil
}

// GetNFT retrieves a single claim by its identifier.
func (app *App) GetNFT(ctx context.Context, id string) (*models.NFT, error) {
	nfts, err := app.db.ReadNFTs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range nfts {
		if nfts[i].ID == id {
			nft := nfts[i]
			return &nft, nil
		}
	}
	return nil, fmt.Errorf("%w: nft %s", ErrNotFound, id)
}

// NFTByRoast retrieves the claim minted for the given roast, if any.
func (app *App) NFTByRoast(ctx context.Context, roastID string) (*models.NFT, error) {
	nfts, err := app.db.ReadNFTs(ctx)
	if err != nil {
		return nil, err
	}
	index := findNFTByRoast(nfts, roastID)
	if index < 0 {
		return nil, fmt.Errorf("%w: no nft for roast %s", ErrNotFound, roastID)
	}
	nft := nfts[index]
	return &nft, nil
}

// NFTsByOwner returns every claim held by the given owner address.
func (app *App) NFTsByOwner(ctx context.Context, ownerAddress string) ([]models.NFT, error) {
	nfts, err := app.db.ReadNFTs(ctx)
	if err != nil {
		return nil, err
	}
	owned := make([]models.NFT, 0, len(nfts))
	for _, nft := range nfts {
		if nft.OwnerAddress == ownerAddress {
			owned = append(owned, nft)
		}
	}
	return owned, nil
}

// RecentNFTs returns claims ordered by purchase date, newest first.
func (app *App) RecentNFTs(ctx context.Context, limit int) ([]models.NFT, error) {
	nfts, err := app.db.ReadNFTs(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(nfts, func(i, j int) bool {
		return nfts[i].PurchaseDate.After(nfts[j].PurchaseDate)
	})
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if len(nfts) > limit {
		nfts = nfts[:limit]
	}
	return nfts, nil
}

// NFTsInPriceRange returns claims whose price falls within [minPrice, maxPrice].
func (app *App) NFTsInPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.NFT, error) {
	nfts, err := app.db.ReadNFTs(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]models.NFT, 0, len(nfts))
	for _, nft := range nfts {
		if nft.Price >= minPrice && nft.Price <= maxPrice {
			matched = append(matched, nft)
		}
	}
	return matched, nil
}

// findNFTByRoast returns the index of the claim for the given roast, or -1.
func findNFTByRoast(nfts []models.NFT, roastID string) int {
	for i := range nfts {
		if nfts[i].RoastID == roastID {
			return i
		}
	}
	return -1
}
