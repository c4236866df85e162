package jwt_test

import (
	"testing"
	"time"

	"github.com/inklet/core/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	jwt.SetSecret("test-secret")

	token, err := jwt.Sign("user-1", jwt.RoleAdmin, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwt.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseExpired(t *testing.T) {
	jwt.SetSecret("test-secret")

	token, err := jwt.Sign("user-1", jwt.RoleAdmin, -time.Minute)
	require.NoError(t, err)

	_, err = jwt.Parse(token)
	assert.ErrorIs(t, err, jwt.ErrExpired)
}

func TestParseTamperedSignature(t *testing.T) {
	jwt.SetSecret("test-secret")

	token, err := jwt.Sign("user-1", jwt.RoleAdmin, time.Hour)
	require.NoError(t, err)

	// Flip a byte in the signature segment.
	b := []byte(token)
	last := b[len(b)-1]
	if last == 'A' {
		b[len(b)-1] = 'B'
	} else {
		b[len(b)-1] = 'A'
	}

	_, err = jwt.Parse(string(b))
	assert.ErrorIs(t, err, jwt.ErrInvalidSignature)
}

func TestParseWrongSecret(t *testing.T) {
	jwt.SetSecret("secret-one")
	token, err := jwt.Sign("user-1", jwt.RoleAdmin, time.Hour)
	require.NoError(t, err)

	jwt.SetSecret("secret-two")
	_, err = jwt.Parse(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidSignature)
}

func TestParseMalformed(t *testing.T) {
	jwt.SetSecret("test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"two_segments", "abc.def"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jwt.Parse(tt.token)
			assert.ErrorIs(t, err, jwt.ErrMalformed)
		})
	}
}
