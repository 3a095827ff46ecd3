package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oauth2gateway "github.com/oauthkit/go-oauth2-gateway"
)

func TestParseHeaders(t *testing.T) {
	t.Run("valid entries keep order", func(t *testing.T) {
		got, err := parseHeaders([]string{"X-One=1", "X-Two=2", "Empty="})
		require.NoError(t, err)

		want := []oauth2gateway.Header{
			{Name: "X-One", Value: "1"},
			{Name: "X-Two", Value: "2"},
			{Name: "Empty", Value: ""},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("headers mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing separator", func(t *testing.T) {
		_, err := parseHeaders([]string{"X-One"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected name=value")
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := parseHeaders([]string{"=value"})
		require.Error(t, err)
	})
}

func TestApplyFlags(t *testing.T) {
	t.Run("flags layer over file config", func(t *testing.T) {
		cfg := oauth2gateway.MapConfig{
			oauth2gateway.KeyCustomPayload: "from=file",
		}
		err := applyFlags(cfg, flags{
			customPayload: "from=flag",
			http2:         true,
			insecure:      true,
		})
		require.NoError(t, err)

		payload, _ := cfg.GetString(oauth2gateway.KeyCustomPayload)
		assert.Equal(t, "from=flag", payload)

		version, _ := cfg.GetString(oauth2gateway.KeyHTTPVersion)
		assert.Equal(t, "HTTP/2", version)

		secureSocket, ok := cfg.GetMap(oauth2gateway.KeySecureSocket)
		require.True(t, ok)
		disable, _ := secureSocket.GetBool(oauth2gateway.KeyDisable)
		assert.True(t, disable)
	})

	t.Run("truststore flags build the nested block", func(t *testing.T) {
		cfg := oauth2gateway.MapConfig{}
		err := applyFlags(cfg, flags{
			truststore:         "/etc/pki/trust.p12",
			truststorePassword: "changeit",
		})
		require.NoError(t, err)

		secureSocket, ok := cfg.GetMap(oauth2gateway.KeySecureSocket)
		require.True(t, ok)
		store, ok := secureSocket.GetMap(oauth2gateway.KeyTrustStore)
		require.True(t, ok)

		path, _ := store.GetString(oauth2gateway.KeyPath)
		assert.Equal(t, "/etc/pki/trust.p12", path)
		password, _ := store.GetString(oauth2gateway.KeyPassword)
		assert.Equal(t, "changeit", password)
	})

	t.Run("no flags leaves config untouched", func(t *testing.T) {
		cfg := oauth2gateway.MapConfig{}
		require.NoError(t, applyFlags(cfg, flags{}))
		assert.Empty(t, cfg)
	})
}
