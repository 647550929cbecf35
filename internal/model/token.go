package model

import "github.com/google/uuid"

// AccessClaims are the identity claims carried by an access token.
type AccessClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenPair is a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenManager generates and validates access/refresh tokens. The two scopes
// use independent secrets, so a token of one scope never verifies as the
// other.
type TokenManager interface {
	GenerateAccessToken(user User) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ParseAccessToken(token string) (AccessClaims, error)
	ParseRefreshToken(token string) (uuid.UUID, error)
}

// Hasher hashes and verifies passwords.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) bool
}
