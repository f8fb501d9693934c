package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("e@x.com", time.Hour)
	require.NoError(t, err)

	email, err := ExtractEmailFromToken(token)
	require.NoError(t, err)
	require.Equal(t, "e@x.com", email)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("e@x.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractEmailFromToken(token)
	require.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := ExtractEmailFromToken("not.a.token")
	require.Error(t, err)
}
