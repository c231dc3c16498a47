package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims are the identity claims carried by an access token.
type AccessClaims struct {
	UserID   uuid.UUID
	Username string
	Role     string
}

// CreateAccessToken issues a signed HS256 token bound to the user identity and role.
func CreateAccessToken(secret string, expiry time.Duration, userID uuid.UUID, username, role string) (string, time.Time, error) {
	expiresAt := time.Now().Add(expiry)

	claims := jwt.MapClaims{
		"sub":      userID.String(),
		"username": username,
		"role":     role,
		"iat":      jwt.NewNumericDate(time.Now()),
		"exp":      jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}

	return signed, expiresAt, nil
}

// ParseAccessToken validates a token string and returns its claims.
func ParseAccessToken(secret, tokenStr string) (*AccessClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("parse access token: token is not valid")
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("parse access token subject: %w", err)
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return &AccessClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
	}, nil
}
