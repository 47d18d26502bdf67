package storage

import (
	"context"
	"encoding/json"
	"sync"

	"payroast/internal/models"
)

// Memory implements the Storage interface with in-process byte blobs.
// It keeps the same serialize-whole-collection discipline as the file-backed
// stores so tests observe identical semantics.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{blobs: map[string][]byte{}}
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() {}

func (m *Memory) readBlob(key string, out interface{}) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (m *Memory) writeBlob(key string, in interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = data
	return nil
}

// ReadRoasts returns the last written roast collection.
func (m *Memory) ReadRoasts(ctx context.Context) ([]models.Roast, error) {
	var roasts []models.Roast
	if err := m.readBlob(roastsCollection, &roasts); err != nil {
		return nil, err
	}
	if roasts == nil {
		roasts = []models.Roast{}
	}
	return roasts, nil
}

// WriteRoasts replaces the full roast collection.
func (m *Memory) WriteRoasts(ctx context.Context, roasts []models.Roast) error {
	return m.writeBlob(roastsCollection, roasts)
}

// ReadNFTs returns the last written NFT claim collection.
func (m *Memory) ReadNFTs(ctx context.Context) ([]models.NFT, error) {
	var nfts []models.NFT
	if err := m.readBlob(nftsCollection, &nfts); err != nil {
		return nil, err
	}
	if nfts == nil {
		nfts = []models.NFT{}
	}
	return nfts, nil
}

// WriteNFTs replaces the full NFT claim collection.
func (m *Memory) WriteNFTs(ctx context.Context, nfts []models.NFT) error {
	return m.writeBlob(nftsCollection, nfts)
}
