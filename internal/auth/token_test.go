package auth

import (
	"testing"
	"time"

	"github.com/GoArmGo/AddressBook/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func testUser() *domain.User {
	return &domain.User{
		ID:    42,
		Email: "a@x.com",
		Name:  "A",
		Phone: "555",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0)

	token, err := codec.Encode(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Decode(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "A", claims.Name)
	assert.Equal(t, "555", claims.Phone)
	assert.NotEmpty(t, claims.ID, "jti должен присутствовать")
}

func TestTokenWithoutTTLHasNoExpiry(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0)

	token, err := codec.Encode(testUser())
	require.NoError(t, err)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestTokenTamperDetection(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0)

	token, err := codec.Encode(testUser())
	require.NoError(t, err)

	// меняем последний символ подписи
	last := token[len(token)-1]
	replacement := byte('A')
	if last == 'A' {
		replacement = 'B'
	}
	tampered := token[:len(token)-1] + string(replacement)

	_, err = codec.Decode(tampered)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0)
	other := NewTokenCodec("another-secret", 0)

	token, err := codec.Encode(testUser())
	require.NoError(t, err)

	_, err = other.Decode(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenRejectsForeignAlgorithm(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0)

	// токен с alg=none не должен приниматься, даже синтаксически корректный
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 42})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenRejectsGarbage(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := codec.Decode(token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken, "token=%q", token)
	}
}

func TestTokenExpiry(t *testing.T) {
	codec := NewTokenCodec(testSecret, time.Hour)

	token, err := codec.Encode(testUser())
	require.NoError(t, err)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)

	// уже истекший токен отклоняется
	expiredClaims := Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = codec.Decode(expired)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
