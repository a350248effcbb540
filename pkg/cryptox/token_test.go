package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateTokenLengthAndCharset(t *testing.T) {
	t.Parallel()

	for _, size := range []int{TokenSize32, TokenSize48, TokenSize256} {
		token, err := GenerateToken(size)
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, err)
		require.Len(t, raw, size)
	}
}

func TestGenerateTokenRejectsNonPositiveSize(t *testing.T) {
	t.Parallel()

	_, err := GenerateToken(0)
	require.Error(t, err)
	_, err = GenerateToken(-1)
	require.Error(t, err)
}

func TestGenerateTokenUniqueness(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		token := MustGenerateToken(TokenSize32)
		_, dup := seen[token]
		require.False(t, dup, "token collision within 1000 draws: %s", token)
		seen[token] = struct{}{}
	}
}
