package storage

import (
	"context"
	"encoding/json"
	"time"

	bolt "github.com/boltdb/bolt"

	"payroast/internal/models"
	"payroast/internal/pkg/logger"
)

const bucketName = "collections"

// Bolt implements the Storage interface on top of a single-file BoltDB database.
// Each collection lives under one key as a JSON array blob, so a write replaces
// the whole collection in one transaction and a torn write is never visible.
type Bolt struct {
	db  *bolt.DB
	log *logger.Logger
}

// NewBolt opens (or creates) the database file at the given path and ensures the
// collections bucket exists.
func NewBolt(path string, l *logger.Logger) (*Bolt, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		l.Sugar().Errorf("Failed to open the store file: %s", err)
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		l.Sugar().Errorf("Failed to create the collections bucket: %s", err)
		return nil, err
	}

	return &Bolt{db: db, log: l}, nil
}

// Close releases the database file lock.
func (b *Bolt) Close() {
	if b.db != nil {
		b.db.Close()
	}
}

func (b *Bolt) readBlob(key string, out interface{}) error {
	return b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, out)
	})
}

func (b *Bolt) writeBlob(key string, in interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		b.log.Sugar().Errorf("Failed to serialize the %s collection: %s", key, err)
		return err
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), data)
	})
}

// ReadRoasts returns the last written roast collection, or an empty slice when
// nothing has been written yet.
func (b *Bolt) ReadRoasts(ctx context.Context) ([]models.Roast, error) {
	var roasts []models.Roast
	if err := b.readBlob(roastsCollection, &roasts); err != nil {
		b.log.Sugar().Errorf("Failed to read the roast collection: %s", err)
		return nil, err
	}
	if roasts == nil {
		roasts = []models.Roast{}
	}
	return roasts, nil
}

// WriteRoasts replaces the full roast collection.
func (b *Bolt) WriteRoasts(ctx context.Context, roasts []models.Roast) error {
	if err := b.writeBlob(roastsCollection, roasts); err != nil {
		b.log.Sugar().Errorf("Failed to write the roast collection: %s", err)
		return err
	}
	return nil
}

// ReadNFTs returns the last written NFT claim collection, or an empty slice when
// nothing has been written yet.
func (b *Bolt) ReadNFTs(ctx context.Context) ([]models.NFT, error) {
	var nfts []models.NFT
	if err := b.readBlob(nftsCollection, &nfts); err != nil {
		b.log.Sugar().Errorf("Failed to read the NFT collection: %s", err)
		return nil, err
	}
	if nfts == nil {
		nfts = []models.NFT{}
	}
	return nfts, nil
}

// WriteNFTs replaces the full NFT claim collection.
func (b *Bolt) WriteNFTs(ctx context.Context, nfts []models.NFT) error {
	if err := b.writeBlob(nftsCollection, nfts); err != nil {
		b.log.Sugar().Errorf("Failed to write the NFT collection: %s", err)
		return err
	}
	return nil
}
