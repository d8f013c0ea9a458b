package upload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snaplink/internal/config/configs"
)

func TestSign(t *testing.T) {
	s := NewSigner(configs.Upload{CloudName: "demo", APIKey: "key", APISecret: "abcd"})

	sig, err := s.Sign(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(1714564800), sig.Timestamp)
	assert.Equal(t, "510e1d667fe209367c63a2af2ec11d657f9271a7", sig.Signature)
	assert.Equal(t, "key", sig.APIKey)
	assert.Equal(t, "demo", sig.CloudName)
}

func TestSignWithoutCredentials(t *testing.T) {
	_, err := NewSigner(configs.Upload{CloudName: "demo"}).Sign(time.Now())
	require.ErrorIs(t, err, ErrNotConfigured)
}
