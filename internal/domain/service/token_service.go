package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the API access tokens.
type Claims struct {
	UserID uuid.UUID
	Tier   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for validating API JWTs.
// This abstracts the details of token verification from the use cases.
type TokenService interface {
	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
