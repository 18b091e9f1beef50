package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/user_auth_app/internal/apperrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateJWT signs a new HS256 token whose subject is the given user ID.
// issuedAt is passed in rather than read from the wall clock so issuance is
// deterministic under test.
func GenerateJWT(userID string, secret string, issuer string, issuedAt time.Time, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		// Unique per token: two tokens minted in the same second still differ.
		ID: uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a token string and validates its signature and
// standard claims against the supplied clock value. Expiry surfaces as
// apperrors.ErrTokenExpired; every other failure as apperrors.ErrTokenInvalid.
func ParseAndValidateJWT(tokenString string, secret string, now time.Time) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrTokenExpired, err.Error())
		}
		return nil, fmt.Errorf("%w: %s", apperrors.ErrTokenInvalid, err.Error())
	}

	if !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}
