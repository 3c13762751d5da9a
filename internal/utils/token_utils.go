package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LedgerClaims are the JWT claims accepted by the API. The subject is the caller id.
type LedgerClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateLedgerJWT signs an HS256 token for callerID with the given role.
func GenerateLedgerJWT(callerID, role, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := LedgerClaims{
		Role: strings.ToLower(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   callerID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseLedgerJWT parses a token string and validates its signature and standard claims.
// Only HMAC signing methods are accepted.
func ParseLedgerJWT(tokenString, secretKey string) (*LedgerClaims, error) {
	claims := &LedgerClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
