package oauth2gateway

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

// newHTTPClient builds the single-use client for one exchange. Connections
// are not reused across calls; each Send starts from a fresh transport.
func newHTTPClient(version HTTPVersion, tlsCfg *tls.Config, timeout time.Duration) (*http.Client, error) {
	transport := &http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		TLSClientConfig: tlsCfg,
	}

	if version == HTTP2 {
		// Registers h2 via ALPN; the connection falls back to HTTP/1.1
		// when the server does not offer it.
		if err := http2.ConfigureTransport(transport); err != nil {
			return nil, fmt.Errorf("configure HTTP/2 transport: %w", err)
		}
	} else {
		// An empty ALPN map pins the transport to HTTP/1.1.
		transport.TLSNextProto = map[string]func(string, *tls.Conn) http.RoundTripper{}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}
