package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestClaimsCommandEnabled(t *testing.T) {
	out := runCLI(t, "claims", "--enabled",
		"-H", "X-Auth0-User-Id=auth0|123",
		"-H", "X-Auth0-User-Name: Alice",
	)
	assert.JSONEq(t, `{
		"claims":{"oid":"auth0|123","name":"Alice","preferred_username":"Alice","auth_provider":"auth0"},
		"authSetup":{"useLogin":true,"requireAccessControl":false,"enableUnauthenticatedAccess":false,"msalConfig":null}
	}`, out)
}

func TestClaimsCommandDisabledByDefault(t *testing.T) {
	t.Setenv("AUTH0_AUTH_ENABLED", "")
	out := runCLI(t, "claims", "-H", "X-Auth0-User-Id=auth0|123")
	assert.JSONEq(t, `{
		"claims":{},
		"authSetup":{"useLogin":false,"requireAccessControl":false,"enableUnauthenticatedAccess":true,"msalConfig":null}
	}`, out)
}

func TestClaimsCommandFlagsDoNotLeakBetweenRuns(t *testing.T) {
	t.Setenv("AUTH0_AUTH_ENABLED", "")
	first := runCLI(t, "claims", "--enabled", "-H", "X-Auth0-User-Id=auth0|123")
	assert.Contains(t, first, `"oid":"auth0|123"`)

	second := runCLI(t, "claims")
	assert.JSONEq(t, `{
		"claims":{},
		"authSetup":{"useLogin":false,"requireAccessControl":false,"enableUnauthenticatedAccess":true,"msalConfig":null}
	}`, second)
}

func TestParseHeaders(t *testing.T) {
	h, err := parseHeaders([]string{"a=1", "B: two", "a=3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, h.Values("A"))
	assert.Equal(t, "two", h.Get("b"))

	_, err = parseHeaders([]string{"=oops"})
	require.Error(t, err)
	_, err = parseHeaders([]string{"novalue"})
	require.Error(t, err)
}
