// Package wallet provides the payment collaborator used by the roast lifecycle
// and the NFT minting ledger. No real funds move through this service: a payer
// issues the transfer elsewhere, and the collaborator only hands back an opaque
// transaction reference to record against the roast or claim.
package wallet

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Payer settles a transfer and returns the transaction reference to record.
type Payer interface {
	Transfer(amount float64, currency, fromAddress, toAddress string) (string, error)
}

// SimulatedPayer is a Payer that mints placeholder references instead of
// submitting anything to a chain.
type SimulatedPayer struct{}

// NewSimulatedPayer returns a ready-to-use SimulatedPayer.
func NewSimulatedPayer() *SimulatedPayer {
	return &SimulatedPayer{}
}

// Transfer returns a freshly minted reference for the simulated transaction.
func (p *SimulatedPayer) Transfer(amount float64, currency, fromAddress, toAddress string) (string, error) {
	return NewTransactionReference()
}

// NewTransactionReference generates an opaque tx_-prefixed reference.
// The random component is wide enough that collisions within a store are
// negligible.
func NewTransactionReference() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return fmt.Sprintf("tx_%s", hex.EncodeToString(bytes)), nil
}
