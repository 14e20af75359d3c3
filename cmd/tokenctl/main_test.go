package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwttoken "flightsurety/internal/jwt_token"
	"flightsurety/internal/platform/config"
	"flightsurety/pkg/domain"
)

func TestRunMintsValidToken(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "tokenctl-test-key")
	caller := domain.MustParseAddress("0x9965507d1a55bcc2695c58ba16fb37d819b0a4dc")

	var out bytes.Buffer
	require.NoError(t, run([]string{"-address", caller.String(), "-ttl", "5m"}, &out))

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	claims, err := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer, cfg.Auth.Audience).
		ValidateToken(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	got, err := claims.Caller()
	require.NoError(t, err)
	assert.Equal(t, caller, got)
}

func TestRunRejectsBadAddress(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"-address", "0x12"}, &out))
	assert.Error(t, run(nil, &out))
	assert.Empty(t, out.String())
}
