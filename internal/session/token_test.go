package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Viviane-Queiroz/dev-shop/configs"
)

func testConfig() configs.Config {
	var cfg configs.Config
	cfg.Session.JWTSecret = "test-secret"
	cfg.Session.Issuer = "devshop"
	cfg.Session.Audience = "devshop-web"
	cfg.Session.TTL = time.Hour
	return cfg
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testConfig()

	raw, err := NewToken(cfg, "sess-123")
	require.NoError(t, err)

	sid, err := ParseToken(cfg, raw)
	require.NoError(t, err)
	assert.Equal(t, "sess-123", sid)
}

func TestParseToken_WrongSecret(t *testing.T) {
	cfg := testConfig()
	raw, err := NewToken(cfg, "sess-123")
	require.NoError(t, err)

	other := cfg
	other.Session.JWTSecret = "another-secret"
	_, err = ParseToken(other, raw)
	assert.Error(t, err)
}

func TestParseToken_IssuerMismatch(t *testing.T) {
	cfg := testConfig()
	raw, err := NewToken(cfg, "sess-123")
	require.NoError(t, err)

	other := cfg
	other.Session.Issuer = "someone-else"
	_, err = ParseToken(other, raw)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken(testConfig(), "not.a.jwt")
	assert.Error(t, err)
}
