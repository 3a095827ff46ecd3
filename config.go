package oauth2gateway

import "sort"

// Recognized client-config keys. Hosts pass these through a ConfigSource;
// unknown keys are ignored.
const (
	// KeyCustomPayload is an extra form-encoded fragment appended to the
	// base payload with a "&" separator.
	KeyCustomPayload = "customPayload"

	// KeyCustomHeaders holds extra headers merged after the explicitly
	// passed headers.
	KeyCustomHeaders = "customHeaders"

	// KeyHTTPVersion selects the protocol version. The value "HTTP/2"
	// negotiates HTTP/2; anything else (including absent) uses HTTP/1.1.
	KeyHTTPVersion = "httpVersion"

	// KeySecureSocket nests the TLS trust configuration.
	KeySecureSocket = "secureSocket"

	// KeyDisable, inside secureSocket, enables the insecure trust-all mode.
	KeyDisable = "disable"

	// KeyTrustStore, inside secureSocket, nests the PKCS12 trust-store
	// location under KeyPath and KeyPassword.
	KeyTrustStore = "truststore"
	KeyPath       = "path"
	KeyPassword   = "password"
)

// httpVersionHTTP2 is the only httpVersion value that changes behavior.
const httpVersionHTTP2 = "HTTP/2"

// HTTPVersion is the protocol version used for a single call.
type HTTPVersion int

const (
	// HTTP11 pins the exchange to HTTP/1.1. This is the default.
	HTTP11 HTTPVersion = iota

	// HTTP2 negotiates HTTP/2 via ALPN, falling back to HTTP/1.1 when the
	// server does not support it.
	HTTP2
)

func (v HTTPVersion) String() string {
	if v == HTTP2 {
		return "HTTP/2"
	}
	return "HTTP/1.1"
}

func versionFromConfig(value string) HTTPVersion {
	if value == httpVersionHTTP2 {
		return HTTP2
	}
	return HTTP11
}

// Header is a single name/value pair. Headers are kept as an ordered slice
// rather than a map so callers control the order they are written in and so
// repeated names survive as repeated header lines.
type Header struct {
	Name  string
	Value string
}

// ConfigSource abstracts the host's configuration representation. Hosts that
// marshal values across a language boundary implement this over their own
// value types; Go callers can use MapConfig directly.
//
// All methods report false when the key is absent or holds a value of the
// wrong type.
type ConfigSource interface {
	// GetString returns the string value for key.
	GetString(key string) (string, bool)

	// GetBool returns the boolean value for key.
	GetBool(key string) (bool, bool)

	// GetMap returns the nested configuration under key.
	GetMap(key string) (ConfigSource, bool)

	// GetHeaders returns the ordered header pairs under key.
	GetHeaders(key string) ([]Header, bool)
}

// MapConfig is a map-backed ConfigSource.
//
// Nested configuration may be another MapConfig, a map[string]any, or any
// ConfigSource. Header values may be a []Header (order preserved) or a
// map[string]string (iterated in sorted name order, since Go maps carry no
// order of their own).
type MapConfig map[string]any

// GetString implements ConfigSource.
func (m MapConfig) GetString(key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

// GetBool implements ConfigSource.
func (m MapConfig) GetBool(key string) (bool, bool) {
	b, ok := m[key].(bool)
	return b, ok
}

// GetMap implements ConfigSource.
func (m MapConfig) GetMap(key string) (ConfigSource, bool) {
	switch v := m[key].(type) {
	case MapConfig:
		return v, true
	case map[string]any:
		return MapConfig(v), true
	case ConfigSource:
		return v, true
	default:
		return nil, false
	}
}

// GetHeaders implements ConfigSource.
func (m MapConfig) GetHeaders(key string) ([]Header, bool) {
	switch v := m[key].(type) {
	case []Header:
		return v, true
	case map[string]string:
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		headers := make([]Header, 0, len(v))
		for _, name := range names {
			headers = append(headers, Header{Name: name, Value: v[name]})
		}
		return headers, true
	default:
		return nil, false
	}
}

// getString is a nil-safe ConfigSource lookup.
func getString(cfg ConfigSource, key string) (string, bool) {
	if cfg == nil {
		return "", false
	}
	return cfg.GetString(key)
}

// composePayload appends the customPayload fragment, when present, to the
// base payload with a "&" separator.
func composePayload(cfg ConfigSource, payload string) string {
	if custom, ok := getString(cfg, KeyCustomPayload); ok {
		return payload + "&" + custom
	}
	return payload
}

// composeHeaders returns the explicitly passed headers followed by the
// customHeaders entries, in order. Duplicate names are not deduplicated.
func composeHeaders(cfg ConfigSource, headers []Header) []Header {
	composed := make([]Header, 0, len(headers))
	composed = append(composed, headers...)
	if cfg != nil {
		if custom, ok := cfg.GetHeaders(KeyCustomHeaders); ok {
			composed = append(composed, custom...)
		}
	}
	return composed
}

// resolveVersion reads the httpVersion key, defaulting to HTTP/1.1.
func resolveVersion(cfg ConfigSource) HTTPVersion {
	if v, ok := getString(cfg, KeyHTTPVersion); ok {
		return versionFromConfig(v)
	}
	return HTTP11
}
