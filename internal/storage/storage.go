// Package storage provides primitives for connecting to and interacting with the
// entity store holding the serialized roast and NFT-claim collections. It defines
// the Storage interface along with BoltDB, in-memory, and PostgreSQL implementations.
//
// Every implementation persists each collection as a single whole blob: a read
// returns the last successfully written full collection, and a write replaces the
// full collection or leaves the prior one visible. Callers follow a read-modify-write
// discipline over the whole collection; concurrent independent writers are
// last-writer-wins.
package storage

import (
	"context"

	"payroast/internal/models"
)

// Collection names used as keys in the underlying store.
const (
	roastsCollection = "roasts"
	nftsCollection   = "nft_claims"
)

// Storage defines the methods required for entity store operations.
type Storage interface {
	// Close closes the underlying store.
	Close()

	// Roast collection.
	ReadRoasts(ctx context.Context) ([]models.Roast, error)
	WriteRoasts(ctx context.Context, roasts []models.Roast) error

	// NFT claim collection.
	ReadNFTs(ctx context.Context) ([]models.NFT, error)
	WriteNFTs(ctx context.Context, nfts []models.NFT) error
}
