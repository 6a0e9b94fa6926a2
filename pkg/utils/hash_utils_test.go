package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashSecretRoundTrip(t *testing.T) {
	hash, err := HashSecret("1234")
	require.NoError(t, err)
	assert.NotEqual(t, "1234", hash)

	assert.True(t, CheckSecretHash("1234", hash))
	assert.False(t, CheckSecretHash("4321", hash))
	assert.False(t, CheckSecretHash("", hash))
}

func TestHashSecretRejectsEmpty(t *testing.T) {
	_, err := HashSecret("")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestHashSecretSalted(t *testing.T) {
	h1, err := HashSecret("1234")
	require.NoError(t, err)
	h2, err := HashSecret("1234")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
