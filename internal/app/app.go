// Package app provides the core business logic for the pay-to-roast application.
// It manages the roast lifecycle (pending, accepted, rejected), engagement counters,
// ranked feed queries, and the NFT minting ledger. The package integrates with the
// storage layer for data persistence and delegates fund movement to the wallet
// payment collaborator; it only records the transaction references it is handed.
// Logging functionality is provided via the logger package.
package app

import (
	"errors"

	"payroast/internal/pkg/logger"
	"payroast/internal/pkg/social"
	"payroast/internal/pkg/wallet"
	"payroast/internal/storage"
)

// Predefined error kinds surfaced by the application layer. Specific failures
// wrap one of these so handlers can classify them with errors.Is.
var (
	// ErrValidation indicates malformed or missing input at creation time.
	ErrValidation = errors.New("app: validation failed")
	// ErrNotFound indicates that no record matches the given identifier.
	ErrNotFound = errors.New("app: not found")
	// ErrInvalidState indicates a lifecycle transition attempted from a terminal state.
	ErrInvalidState = errors.New("app: roast already processed")
	// ErrAlreadyMinted indicates a duplicate mint attempt for the same roast.
	ErrAlreadyMinted = errors.New("app: roast already minted")
)

// App encapsulates the application logic and dependencies required to process requests.
// Every operation re-reads the full collection from storage, mutates the target record,
// and re-writes the full collection; no mutable copies are cached across operations.
type App struct {
	db     storage.Storage // Entity store holding the roast and NFT claim collections.
	payer  wallet.Payer    // Payment collaborator issuing transaction references.
	poster social.Poster   // Sharing collaborator turning roasts into posts.
	log    *logger.Logger  // Logger for logging application events and errors.
}

// NewApp creates and returns a new instance of App with the provided dependencies.
func NewApp(db storage.Storage, payer wallet.Payer, poster social.Poster, log *logger.Logger) *App {
	return &App{db: db, payer: payer, poster: poster, log: log}
}
