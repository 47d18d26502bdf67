package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"payroast/internal/models"
	"payroast/internal/pkg/logger"
)

const (
	createCollectionsTableQuery = `CREATE TABLE IF NOT EXISTS collections (name TEXT PRIMARY KEY, data JSONB NOT NULL, updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW());`
	readCollectionQuery         = `SELECT data FROM collections WHERE name = $1;`
	writeCollectionQuery        = `INSERT INTO collections (name, data, updated_at) VALUES ($1, $2, NOW()) ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW();`
)

// PostgreSQL implements the Storage interface on a single blob table.
// Each collection is one row holding the full JSON array, so the store keeps the
// same whole-collection write semantics as the file-backed implementations.
type PostgreSQL struct {
	db  *sql.DB
	log *logger.Logger
}

// NewPostgreSQL creates a new PostgreSQL instance with the provided connection string
// and logger. It opens the connection, pings the database to ensure connectivity,
// and creates the collections table if it does not exist.
func NewPostgreSQL(configDBString string, l *logger.Logger) (*PostgreSQL, error) {
	db, err := sql.Open("pgx", configDBString)
	if err != nil {
		l.Sugar().Errorf("Failed to open a database: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	const defaultTimeout = 10 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		l.Sugar().Errorf("Database ping failed: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	if _, err := db.ExecContext(ctx, createCollectionsTableQuery); err != nil {
		l.Sugar().Errorf("Failed to execute a query createCollectionsTableQuery: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	return &PostgreSQL{db: db, log: l}, nil
}

// Close closes the database connection if it is open.
func (postgresql *PostgreSQL) Close() {
	if postgresql.db != nil {
		postgresql.db.Close()
	}
}

func (postgresql *PostgreSQL) readBlob(ctx context.Context, name string, out interface{}) error {
	var data []byte
	err := postgresql.db.QueryRowContext(ctx, readCollectionQuery, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query readCollectionQuery: %s", err)
		return err
	}
	return json.Unmarshal(data, out)
}

func (postgresql *PostgreSQL) writeBlob(ctx context.Context, name string, in interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to serialize the %s collection: %s", name, err)
		return err
	}

	if _, err := postgresql.db.ExecContext(ctx, writeCollectionQuery, name, data); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query writeCollectionQuery: %s", err)
		return err
	}
	return nil
}

// ReadRoasts returns the last written roast collection.
func (postgresql *PostgreSQL) ReadRoasts(ctx context.Context) ([]models.Roast, error) {
	var roasts []models.Roast
	if err := postgresql.readBlob(ctx, roastsCollection, &roasts); err != nil {
		return nil, err
	}
	if roasts == nil {
		roasts = []models.Roast{}
	}
	return roasts, nil
}

// WriteRoasts replaces the full roast collection.
func (postgresql *PostgreSQL) WriteRoasts(ctx context.Context, roasts []models.Roast) error {
	return postgresql.writeBlob(ctx, roastsCollection, roasts)
}

// ReadNFTs returns the last written NFT claim collection.
func (postgresql *PostgreSQL) ReadNFTs(ctx context.Context) ([]models.NFT, error) {
	var nfts []models.NFT
	if err := postgresql.readBlob(ctx, nftsCollection, &nfts); err != nil {
		return nil, err
	}
	if nfts == nil {
		nfts = []models.NFT{}
	}
	return nfts, nil
}

// WriteNFTs replaces the full NFT claim collection.
func (postgresql *PostgreSQL) WriteNFTs(ctx context.Context, nfts []models.NFT) error {
	return postgresql.writeBlob(ctx, nftsCollection, nfts)
}
