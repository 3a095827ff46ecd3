package oauth2gateway

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "config", KindConfig.String())
	assert.Equal(t, "transport", KindTransport.String())
	assert.Equal(t, "protocol", KindProtocol.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestProtocolError(t *testing.T) {
	err := newProtocolError(401, "invalid_client")

	assert.Equal(t, KindProtocol, err.Kind)
	assert.Equal(t, 401, err.StatusCode)
	assert.Equal(t, "invalid_client", err.Body)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid_client")
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := newTransportError("failed to send the request to the endpoint", cause)

	assert.Contains(t, err.Error(), "connection refused")
	require.ErrorIs(t, err, cause)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConfig, KindOf(newConfigError("bad store", nil)))
	assert.Equal(t, KindTransport, KindOf(newTransportError("io", nil)))
	assert.Equal(t, KindProtocol, KindOf(newProtocolError(500, "oops")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain error")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}
