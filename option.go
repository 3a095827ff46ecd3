package oauth2gateway

import (
	"errors"
	"time"
)

// Option configures the Gateway.
// Returns an error for validation failures.
type Option func(*Gateway) error

// WithTimeout sets the per-call client timeout.
//
// Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(g *Gateway) error {
		if timeout <= 0 {
			return ErrTimeoutInvalid
		}
		g.timeout = timeout
		return nil
	}
}

// WithLogger sets an optional logger used around each exchange.
//
// Default: no logging.
func WithLogger(logger Logger) Option {
	return func(g *Gateway) error {
		if logger == nil {
			return ErrLoggerNil
		}
		g.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics sink recording request counts and durations.
//
// Default: no metrics.
func WithMetrics(metrics Metrics) Option {
	return func(g *Gateway) error {
		if metrics == nil {
			return ErrMetricsNil
		}
		g.metrics = metrics
		return nil
	}
}

// WithTracer sets the tracer opening one span per Send.
//
// Default: no tracing.
func WithTracer(tracer Tracer) Option {
	return func(g *Gateway) error {
		if tracer == nil {
			return ErrTracerNil
		}
		g.tracer = tracer
		return nil
	}
}

// Sentinel errors for configuration validation
var (
	ErrTimeoutInvalid = errors.New("timeout must be positive")
	ErrLoggerNil      = errors.New("logger cannot be nil")
	ErrMetricsNil     = errors.New("metrics cannot be nil")
	ErrTracerNil      = errors.New("tracer cannot be nil")
)
