package app

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"payroast/internal/models"
	"payroast/internal/pkg/wallet"
)

// CreateRoast validates the request and persists a new roast in the pending state
// with zeroed engagement counters and a freshly assigned identifier.
func (app *App) CreateRoast(ctx context.Context, senderAddress string, req models.CreateRoastRequest) (*models.Roast, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("%w: roast message is required", ErrValidation)
	}
	if math.IsNaN(req.Amount) || req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be a positive number", ErrValidation)
	}
	if req.Currency == "" {
		return nil, fmt.Errorf("%w: currency is required", ErrValidation)
	}
	if senderAddress == "" {
		return nil, fmt.Errorf("%w: sender address is required", ErrValidation)
	}

	roast := models.Roast{
		ID:            uuid.NewString(),
		Message:       req.Message,
		Amount:        req.Amount,
		Currency:      req.Currency,
		SenderAddress: senderAddress,
		Status:        models.StatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	roasts, err := app.db.ReadRoasts(ctx)
	if err != nil {
		return nil, err
	}
	roasts = append(roasts, roast)
	if err := app.db.WriteRoasts(ctx, roasts); err != nil {
		return nil, err
	}

	return &roast, nil
}

// AcceptRoast transitions a pending roast to accepted and records the transaction
// reference obtained from the payment collaborator. Issuing the monetary transfer
// itself is the collaborator's business; a placeholder reference is minted when
// the collaborator hands back none.
func (app *App) AcceptRoast(ctx context.Context, id, receiverAddress string) (*models.Roast, error) {
	if receiverAddress == "" {
		return nil, fmt.Errorf("%w: receiver address is required", ErrValidation)
	}

	roasts, err := app.db.ReadRoasts(ctx)
	if err != nil {
		return nil, err
	}

	index := findRoast(roasts, id)
	if index < 0 {
		return nil, fmt.Errorf("%w: roast %s", ErrNotFound, id)
	}
	if roasts[index].Status != models.StatusPending {
		return nil, ErrInvalidState
	}

	reference, err := app.payer.Transfer(roasts[index].Amount, roasts[index].Currency, roasts[index].SenderAddress, receiverAddress)
	if err != nil {
		return nil, err
	}
	if reference == "" {
		if reference, err = wallet.NewTransactionReference(); err != nil {
			return nil, err
		}
	}

	roasts[index].Status = models.StatusAccepted
	roasts[index].TransactionID = reference
	if err := app.db.WriteRoasts(ctx, roasts); err != nil {
		return nil, err
	}

	updated := roasts[index]
	return &updated, nil
}

// RejectRoast transitions a pending roast to rejected. The transaction reference
// stays empty; rejection moves no funds.
func (app *App) RejectRoast(ctx context.Context, id string) (*models.Roast, error) {
	roasts, err := app.db.ReadRoasts(ctx)
	if err != nil {
		return nil, err
	}

	index := findRoast(roasts, id)
	if index < 0 {
		return nil, fmt.Errorf("%w: roast %s", ErrNotFound, id)
	}
	if roasts[index].Status != models.StatusPending {
		return nil, ErrInvalidState
	}

	roasts[index].Status = models.StatusRejected
	if err := app.db.WriteRoasts(ctx, roasts); err != nil {
		return nil, err
	}

	updated := roasts[index]
	return &updated, nil
}

// GetRoast retrieves a single roast by identifier.
func (app *App) GetRoast(ctx context.Context, id string) (*models.Roast, error) {
	roasts, err := app.db.ReadRoasts(ctx)
	if err != nil {
		return nil, err
	}

	index := findRoast(roasts, id)
	if index < 0 {
		return nil, fmt.Errorf("%w: roast %s", ErrNotFound, id)
	}

	roast := roasts[index]
	return &roast, nil
}

// ListRoasts returns the full roast collection in stored order.
func (app *App) ListRoasts(ctx context.Context) ([]models.Roast, error) {
	return app.db.ReadRoasts(ctx)
}

// RecordEngagement adds the like and comment deltas to the stored counters and
// counts one view as a side effect of the call. Deduplication of repeated likes
// from the same caller is left to the caller.
func (app *App) RecordEngagement(ctx context.Context, id string, likes, comments int) (*models.Roast, error) {
	roasts, err := app.db.ReadRoasts(ctx)
	if err != nil {
		return nil, err
	}

	index := findRoast(roasts, id)
	if index < 0 {
		return nil, fmt.Errorf("%w: roast %s", ErrNotFound, id)
	}

	roasts[index].Likes += likes
	roasts[index].Comments += comments
	roasts[index].Views++
	if err := app.db.WriteRoasts(ctx, roasts); err != nil {
		return nil, err
	}

	updated := roasts[index]
	return &updated, nil
}

// ShareRoast hands the roast content to the sharing collaborator and returns the
// URL of the resulting post.
func (app *App) ShareRoast(ctx context.Context, id, twitterUsername string) (string, error) {
	roast, err := app.GetRoast(ctx, id)
	if err != nil {
		return "", err
	}
	return app.poster.Post(twitterUsername, roast.Message)
}

// findRoast returns the index of the roast with the given id, or -1.
func findRoast(roasts []models.Roast, id string) int {
	for i := range roasts {
		if roasts[i].ID == id {
			return i
		}
	}
	return -1
}
