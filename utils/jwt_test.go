package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJWTAuth_RoundTrip(t *testing.T) {
	auth := NewJWTAuth("test-secret", time.Hour)

	token, err := auth.Issue("a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := auth.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", identity.Email)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	token, err := NewJWTAuth("secret-one", time.Hour).Issue("a@x.com")
	require.NoError(t, err)

	_, err = NewJWTAuth("secret-two", time.Hour).Verify(token)
	require.Error(t, err)
}

func TestJWTAuth_Expired(t *testing.T) {
	auth := NewJWTAuth("test-secret", -time.Minute)

	token, err := auth.Issue("a@x.com")
	require.NoError(t, err)

	_, err = auth.Verify(token)
	require.Error(t, err)
}

func TestJWTAuth_Garbage(t *testing.T) {
	_, err := NewJWTAuth("test-secret", time.Hour).Verify("not-a-jwt")
	require.Error(t, err)
}
