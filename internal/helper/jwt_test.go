package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT(t *testing.T) {
	issued, err := GenerateJWT("secret", 1, "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, issued.TokenID)

	claims, err := ParseJWT("secret", issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, issued.TokenID, claims.ID)

	_, err = ParseJWT("other", issued.Token)
	assert.Error(t, err)

	expired, err := GenerateJWT("secret", -1, "user-1")
	require.NoError(t, err)
	_, err = ParseJWT("secret", expired.Token)
	assert.Error(t, err)
}
