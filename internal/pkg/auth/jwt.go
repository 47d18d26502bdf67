// Package auth provides functionality for generating and parsing JSON Web Tokens (JWT)
// that bind a session to a wallet address. It defines custom claims, token generation,
// and validation logic, along with middleware for validating tokens on HTTP requests.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"payroast/internal/config"
)

// TOKENEXP defines the token expiration duration.
const TOKENEXP = time.Hour * 24

// Claims represents the custom JWT claims that include the caller's wallet address
// and standard claims. It embeds jwt.RegisteredClaims for fields like expiration time.
type Claims struct {
	WalletAddress string
	jwt.RegisteredClaims
}

// GenerateToken creates a new JWT token for a given wallet address.
// It sets the expiration time based on TOKENEXP and includes the address in the claims.
func GenerateToken(walletAddress string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TOKENEXP)),
		},
		WalletAddress: walletAddress,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// ParseToken validates the provided JWT token string and parses its claims.
// It returns the Claims if the token is valid, or an error otherwise.
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
