// Package models defines the data structures used throughout the application.
// It includes the roast and NFT domain records persisted by the entity store,
// along with request and response payloads for authentication, roast creation,
// engagement, feed queries, and NFT minting.
package models

import "time"

// Roast status values. A roast starts out pending and moves exactly once to
// either accepted or rejected; both are terminal.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Roast represents one paid roast offer from a sender to a recipient.
// TransactionID stays empty while the roast is pending and is populated only
// when the roast is accepted. The engagement counters never decrease.
type Roast struct {
	ID            string    `json:"id"`
	Message       string    `json:"message"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	SenderAddress string    `json:"senderAddress"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	TransactionID string    `json:"transactionId"`
	Likes         int       `json:"likes"`
	Comments      int       `json:"comments"`
	Views         int       `json:"views"`
}

// NFT represents a minted ownership claim over a roast's content.
// At most one claim may ever exist for a given roast.
type NFT struct {
	ID            string    `json:"id"`
	RoastID       string    `json:"roastId"`
	OwnerAddress  string    `json:"ownerAddress"`
	Price         float64   `json:"price"`
	PurchaseDate  time.Time `json:"purchaseDate"`
	TokenID       string    `json:"tokenId,omitempty"`
	TransactionID string    `json:"transactionId"`
}

// AuthRequest represents the authentication request payload.
// It carries the wallet address the caller wants a session token for.
type AuthRequest struct {
	WalletAddress string `json:"walletAddress"`
}

// AuthResponse represents the authentication response payload.
type AuthResponse struct {
	Token string `json:"token"`
}

// ErrorResponse represents a generic error response payload.
type ErrorResponse struct {
	Errors string `json:"errors"`
}

// CreateRoastRequest represents the payload for creating a new roast.
// The sender address is taken from the authenticated session, not the body.
type CreateRoastRequest struct {
	Message  string  `json:"message"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// EngageRequest represents the payload for recording engagement on a roast.
// Both deltas are additive; every engagement call also counts one view.
type EngageRequest struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
}

// MintRequest represents the payload for minting a roast as an NFT.
// The buyer address is taken from the authenticated session.
type MintRequest struct {
	RoastID string  `json:"roastId"`
	Price   float64 `json:"price"`
}

// MintedResponse reports whether a roast has already been minted.
type MintedResponse struct {
	Minted bool `json:"minted"`
}

// ShareRequest represents the payload for sharing a roast on X.
type ShareRequest struct {
	TwitterUsername string `json:"twitterUsername"`
}

// ShareResponse carries the URL of the resulting post.
type ShareResponse struct {
	PostURL string `json:"postUrl"`
}
