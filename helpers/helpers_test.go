package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-pass", hash)

	assert.True(t, CheckPassword("secret-pass", hash))
	assert.False(t, CheckPassword("wrong-pass", hash))
	assert.False(t, CheckPassword("secret-pass", "not-a-hash"))
}

func TestReferenceShapes(t *testing.T) {
	cases := []struct {
		prefix string
		gen    func() string
	}{
		{"ORD-", OrderNumber},
		{"PAY-", PaymentReference},
		{"TRX-", TransactionReference},
	}
	for _, tc := range cases {
		ref := tc.gen()
		assert.True(t, strings.HasPrefix(ref, tc.prefix), ref)
		assert.Len(t, ref, len(tc.prefix)+32)
		assert.LessOrEqual(t, len(ref), 50)
		assert.Equal(t, strings.ToUpper(ref), ref)
	}
}

func TestReferencesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		ref := OrderNumber()
		assert.False(t, seen[ref])
		seen[ref] = true
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42)
	require.NoError(t, err)

	id, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateToken(7)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
