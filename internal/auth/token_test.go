package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumniportal/internal/model"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m, err := NewTokenManager("s3cret", time.Hour)
	require.NoError(t, err)

	token, exp, err := m.Issue(&model.User{ID: "u-1", Name: "Ana", Role: model.RoleAlumni})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	s, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, &Session{UserID: "u-1", Role: model.RoleAlumni, Name: "Ana"}, s)
}

func TestTokenManager_Rejects(t *testing.T) {
	m, err := NewTokenManager("s3cret", time.Hour)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, _, err := m.Issue(&model.User{ID: "u-1", Role: model.RoleAdmin})
		m.now = time.Now
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other, _ := NewTokenManager("different", time.Hour)
		token, _, err := other.Issue(&model.User{ID: "u-1", Role: model.RoleAdmin})
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		token, _, err := m.Issue(&model.User{ID: "u-1", Role: model.Role("ROOT")})
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		claims := Claims{Role: model.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{
			Issuer: issuer, Subject: "u-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)

	m, err := NewTokenManager("x", 0)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, m.TTL())
}
