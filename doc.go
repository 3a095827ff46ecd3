/*
Package oauth2gateway issues form-encoded POST requests to OAuth2 token and
introspection endpoints.

Each call builds its own HTTP client and request from the supplied
configuration: an optional extra payload fragment, extra headers, the HTTP
protocol version (HTTP/1.1 by default, HTTP/2 on request), and the TLS trust
posture (system trust, an explicit trust-all mode, or a PKCS12 trust store).
Nothing is shared or cached between calls, so concurrent use is safe by
construction.

# Quick Start

	gateway, err := oauth2gateway.New()
	if err != nil {
	    log.Fatal(err)
	}

	body, err := gateway.Send(
	    context.Background(),
	    "https://idp.example.com/oauth2/introspect",
	    oauth2gateway.MapConfig{
	        oauth2gateway.KeyHTTPVersion: "HTTP/2",
	    },
	    []oauth2gateway.Header{{Name: "Authorization", Value: "Basic ..."}},
	    "token=2YotnFZFEjr1zCsicMWpAA",
	)
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(body)

A 200 response returns the raw body unaltered. Any other status, a transport
failure, or a failure to build the TLS trust configuration returns an *Error
tagged with an ErrorKind. The gateway never retries; retry policy belongs to
the caller.

# Configuration

Client configuration arrives through the ConfigSource interface so hosts can
plug in their own value representation. MapConfig is a ready-made map-backed
implementation, and LoadConfigFile reads the same shape from a YAML file.
The recognized keys are the Key* constants in this package.

The trust-all mode (secureSocket.disable, surfacing as TrustAll) skips server
certificate validation entirely. It is insecure and intended for development
and testing only.
*/
package oauth2gateway
