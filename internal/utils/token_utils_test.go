package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerJWT_RoundTrip(t *testing.T) {
	token, err := GenerateLedgerJWT("user_1", "Merchant", "secret", time.Hour, "ledger-test")
	require.NoError(t, err)

	claims, err := ParseLedgerJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user_1", claims.Subject)
	assert.Equal(t, "merchant", claims.Role)
	assert.Equal(t, "ledger-test", claims.Issuer)
}

func TestParseLedgerJWT_Rejects(t *testing.T) {
	valid, err := GenerateLedgerJWT("user_1", "customer", "secret", time.Hour, "ledger-test")
	require.NoError(t, err)
	expired, err := GenerateLedgerJWT("user_1", "customer", "secret", -time.Minute, "ledger-test")
	require.NoError(t, err)
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, LedgerClaims{Role: "admin"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ParseLedgerJWT(valid, "other")
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})
	t.Run("expired", func(t *testing.T) {
		_, err := ParseLedgerJWT(expired, "secret")
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})
	t.Run("none algorithm", func(t *testing.T) {
		_, err := ParseLedgerJWT(unsigned, "secret")
		assert.Error(t, err)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := ParseLedgerJWT("not-a-token", "secret")
		assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
	})
}
