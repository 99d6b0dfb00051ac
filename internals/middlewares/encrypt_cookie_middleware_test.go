package middlewares

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieKeyDerivesFromPlainSecret(t *testing.T) {
	key := CookieKey("2093009841")
	raw, err := base64.StdEncoding.DecodeString(key)
	require.NoError(t, err, "derived key is not base64")
	assert.Len(t, raw, 32)
	assert.Equal(t, key, CookieKey("2093009841"), "derivation must be deterministic")
}

func TestCookieKeyKeepsValidKey(t *testing.T) {
	valid := base64.StdEncoding.EncodeToString(make([]byte, 32))
	assert.Equal(t, valid, CookieKey(valid))
}

func TestCookieKeyRandomWhenEmpty(t *testing.T) {
	assert.NotEqual(t, CookieKey(""), CookieKey(""), "expected distinct random keys")
}
