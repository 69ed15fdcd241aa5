package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/giftmart/giftadmin/internal/models"
	"github.com/golang-jwt/jwt/v4"
)

const tokenDuration = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// AuthToken verifies admin bearer tokens minted by the auth service.
// Both sides share the same HMAC key.
type AuthToken struct {
	key []byte
}

// NewAuthToken creates new AuthToken instance
func NewAuthToken(key []byte) *AuthToken {
	return &AuthToken{key: key}
}

// CreateToken issues a signed token for the subject
func (t *AuthToken) CreateToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.key)
}

// VerifyToken parses and validates a token string
func (t *AuthToken) VerifyToken(tokenString string) (*models.TokenPayload, error) {
	claims := jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return &models.TokenPayload{Subject: claims.Subject}, nil
}
