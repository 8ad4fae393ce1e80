package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an access token stays valid.
const TokenTTL = 30 * time.Minute

// TypeAdmin marks tokens issued by the legacy admin login. Regular user
// tokens carry no type claim.
const TypeAdmin = "admin"

type Claims struct {
	Type string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		secret = "your-secret-key-here-change-in-production"
	}
	return []byte(secret)
}

// SignToken issues an HS256 token with sub=username. tokenType is either
// empty (user track) or TypeAdmin (legacy admin track).
func SignToken(username, tokenType string, ttl time.Duration) (string, error) {
	claims := &Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(jwtSecret())
}

// ParseToken validates the signature and expiry and returns the claims.
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if c, ok := token.Claims.(*Claims); ok && token.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}
