package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroast/internal/models"
	"payroast/internal/pkg/logger"
	"payroast/internal/pkg/social"
	"payroast/internal/pkg/wallet"
	"payroast/internal/storage"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	l, err := logger.CreateLogger("error")
	require.NoError(t, err)
	return NewApp(storage.NewMemory(), wallet.NewSimulatedPayer(), social.NewIntentPoster(), l)
}

func mustCreate(t *testing.T, app *App, sender string, req models.CreateRoastRequest) *models.Roast {
	t.Helper()
	roast, err := app.CreateRoast(context.Background(), sender, req)
	require.NoError(t, err)
	return roast
}

func TestCreateRoast(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	roast := mustCreate(t, app, "sender1", models.CreateRoastRequest{
		Message:  "your bags are heavier than your conscience",
		Amount:   0.5,
		Currency: "sol",
	})

	assert.NotEmpty(t, roast.ID)
	assert.Equal(t, models.StatusPending, roast.Status)
	assert.Empty(t, roast.TransactionID)
	assert.Zero(t, roast.Likes)
	assert.Zero(t, roast.Comments)
	assert.Zero(t, roast.Views)
	assert.Equal(t, "sender1", roast.SenderAddress)
	assert.False(t, roast.CreatedAt.IsZero())

	stored, err := app.GetRoast(ctx, roast.ID)
	require.NoError(t, err)
	assert.Equal(t, roast.ID, stored.ID)

	other := mustCreate(t, app, "sender1", models.CreateRoastRequest{
		Message:  "second roast",
		Amount:   1,
		Currency: "sol",
	})
	assert.NotEqual(t, roast.ID, other.ID)
}

func TestCreateRoastValidation(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	testCases := []struct {
		name   string
		sender string
		req    models.CreateRoastRequest
	}{
		{name: "empty message", sender: "s", req: models.CreateRoastRequest{Message: "", Amount: 1, Currency: "sol"}},
		{name: "whitespace message", sender: "s", req: models.CreateRoastRequest{Message: "   ", Amount: 1, Currency: "sol"}},
		{name: "zero amount", sender: "s", req: models.CreateRoastRequest{Message: "x", Amount: 0, Currency: "sol"}},
		{name: "negative amount", sender: "s", req: models.CreateRoastRequest{Message: "x", Amount: -2, Currency: "sol"}},
		{name: "missing currency", sender: "s", req: models.CreateRoastRequest{Message: "x", Amount: 1}},
		{name: "missing sender", sender: "", req: models.CreateRoastRequest{Message: "x", Amount: 1, Currency: "sol"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := app.CreateRoast(ctx, tc.sender, tc.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	roasts, err := app.ListRoasts(ctx)
	require.NoError(t, err)
	assert.Empty(t, roasts, "failed creations must not persist anything")
}

func TestAcceptRoast(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	roast := mustCreate(t, app, "sender1", models.CreateRoastRequest{Message: "x", Amount: 0.5, Currency: "sol"})

	accepted, err := app.AcceptRoast(ctx, roast.ID, "receiver1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, accepted.Status)
	assert.NotEmpty(t, accepted.TransactionID)

	stored, err := app.GetRoast(ctx, roast.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, stored.Status)
	assert.Equal(t, accepted.TransactionID, stored.TransactionID)
}

func TestAcceptRoastUnknownID(t *testing.T) {
	app := newTestApp(t)

	_, err := app.AcceptRoast(context.Background(), "no-such-id", "receiver1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAcceptRoastMissingReceiver(t *testing.T) {
	app := newTestApp(t)
	roast := mustCreate(t, app, "sender1", models.CreateRoastRequest{Message: "x", Amount: 1, Currency: "sol"})

	_, err := app.AcceptRoast(context.Background(), roast.ID, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRejectRoast(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	roast := mustCreate(t, app, "sender1", models.CreateRoastRequest{Message: "x", Amount: 1, Currency: "sol"})

	rejected, err := app.RejectRoast(ctx, roast.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)
	assert.Empty(t, rejected.TransactionID)
}

func TestLifecycleTransitionsAreTerminal(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	accepted := mustCreate(t, app, "sender1", models.CreateRoastRequest{Message: "x", Amount: 1, Currency: "sol"})
	_, err := app.AcceptRoast(ctx, accepted.ID, "receiver1")
	require.NoError(t, err)

	rejected := mustCreate(t, app, "sender1", models.CreateRoastRequest{Message: "y", Amount: 1, Currency: "sol"})
	_, err = app.RejectRoast(ctx, rejected.ID)
	require.NoError(t, err)

	_, err = app.AcceptRoast(ctx, accepted.ID, "receiver1")
	assert.ErrorIs(t, err, ErrInvalidState, "accept after accept")
	_, err = app.RejectRoast(ctx, accepted.ID)
	assert.ErrorIs(t, err, ErrInvalidState, "reject after accept")
	_, err = app.AcceptRoast(ctx, rejected.ID, "receiver1")
	assert.ErrorIs(t, err, ErrInvalidState, "accept after reject")
	_, err = app.RejectRoast(ctx, rejected.ID)
	assert.ErrorIs(t, err, ErrInvalidState, "reject after reject")
}

func TestRecordEngagement(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	roast := mustCreate(t, app, "sender1", models.CreateRoastRequest{Message: "x", Amount: 1, Currency: "sol"})

	updated, err := app.RecordEngagement(ctx, roast.ID, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Likes)
	assert.Equal(t, 0, updated.Comments)
	assert.Equal(t, 1, updated.Views, "every engagement call counts one view")

	updated, err = app.RecordEngagement(ctx, roast.ID, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Likes)
	assert.Equal(t, 2, updated.Comments)
	assert.Equal(t, 2, updated.Views)

	_, err = app.RecordEngagement(ctx, "no-such-id", 1, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestShareRoast(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	roast := mustCreate(t, app, "sender1", models.CreateRoastRequest{Message: "gm only when green", Amount: 1, Currency: "sol"})

	postURL, err := app.ShareRoast(ctx, roast.ID, "degenuser")
	require.NoError(t, err)
	assert.Contains(t, postURL, "https://x.com/intent/post?text=")
	assert.Contains(t, postURL, "degenuser")

	_, err = app.ShareRoast(ctx, "no-such-id", "degenuser")
	assert.ErrorIs(t, err, ErrNotFound)
}
