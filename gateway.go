package oauth2gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const contentTypeFormURLEncoded = "application/x-www-form-urlencoded"

// Gateway issues form-encoded POST requests to OAuth2 token and
// introspection endpoints. It holds only ambient configuration (timeout,
// logger, metrics, tracer); every call builds its own client and request,
// so a Gateway is safe for concurrent use.
type Gateway struct {
	timeout time.Duration
	logger  Logger
	metrics Metrics
	tracer  Tracer
}

// New constructs a Gateway with the supplied options.
//
// Example:
//
//	gateway, err := oauth2gateway.New(
//	    oauth2gateway.WithTimeout(10*time.Second),
//	    oauth2gateway.WithLogger(oauth2gateway.NewLogrusLogger(logrus.StandardLogger())),
//	)
func New(opts ...Option) (*Gateway, error) {
	g := &Gateway{
		timeout: 30 * time.Second,
		logger:  &NoopLogger{},
		metrics: &NoopMetrics{},
		tracer:  &NoopTracer{},
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	return g, nil
}

// Send POSTs the form-encoded payload to endpoint and blocks until the
// exchange completes or fails.
//
// clientConfig may be nil; recognized keys are the Key* constants. The
// composed request body is payload plus "&"+customPayload when present. The
// composed header list is headers in order, then customHeaders in order,
// without deduplication; Content-Type is always
// application/x-www-form-urlencoded, replacing any caller-supplied value.
//
// A 200 response returns the raw body unaltered. Anything else returns a
// *Error: KindProtocol for a non-200 status (message carries the code and
// body), KindTransport for I/O failures, KindConfig when the request or the
// TLS trust configuration cannot be built. No failure is retried.
func (g *Gateway) Send(ctx context.Context, endpoint string, clientConfig ConfigSource, headers []Header, payload string) (string, error) {
	span := g.tracer.StartSpan("oauth2gateway.Send")
	defer span.Finish()
	span.SetTag("http.url", endpoint)

	start := time.Now()

	body := composePayload(clientConfig, payload)
	composedHeaders := composeHeaders(clientConfig, headers)
	version := resolveVersion(clientConfig)

	trust := resolveTrust(clientConfig)
	tlsCfg, err := trust.clientTLS()
	if err != nil {
		g.observe(start, "config_error")
		return "", newConfigError("failed to init TLS context", err)
	}

	client, err := newHTTPClient(version, tlsCfg, g.timeout)
	if err != nil {
		g.observe(start, "config_error")
		return "", newConfigError("failed to build HTTP client", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		g.observe(start, "config_error")
		return "", newConfigError("failed to build the request", err)
	}
	for _, h := range composedHeaders {
		req.Header.Add(h.Name, h.Value)
	}
	req.Header.Set("Content-Type", contentTypeFormURLEncoded)

	g.logger.Debugf("sending POST to %s (version=%s, trust=%T)", endpoint, version, trust)

	resp, err := client.Do(req)
	if err != nil {
		g.observe(start, "transport_error")
		g.logger.Warnf("request to %s failed: %v", endpoint, err)
		return "", newTransportError("failed to send the request to the endpoint", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		g.observe(start, "transport_error")
		return "", newTransportError("failed to read the response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		g.observe(start, "rejected")
		g.logger.Warnf("endpoint %s rejected the request with status %d", endpoint, resp.StatusCode)
		return "", newProtocolError(resp.StatusCode, string(respBody))
	}

	g.observe(start, "ok")
	g.logger.Debugf("received %d bytes from %s", len(respBody), endpoint)
	return string(respBody), nil
}

func (g *Gateway) observe(start time.Time, outcome string) {
	tags := map[string]string{"outcome": outcome}
	g.metrics.IncCounter("oauth2_gateway_requests_total", tags)
	g.metrics.ObserveHistogram("oauth2_gateway_request_duration_seconds", time.Since(start).Seconds(), tags)
}
