package oauth2gateway

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a Send failure.
type ErrorKind int

const (
	// KindUnknown is the zero value and never set by this package.
	KindUnknown ErrorKind = iota

	// KindConfig covers failures preparing the call: a request that cannot
	// be built from the given URL, or a TLS trust configuration that cannot
	// be constructed (unreadable trust-store file, wrong password, malformed
	// store contents).
	KindConfig

	// KindTransport covers I/O failures while exchanging the request:
	// connection refused, TLS handshake failures, timeouts, cancellation.
	KindTransport

	// KindProtocol covers responses with a status other than 200. The
	// endpoint answered; it rejected the request at the application level.
	KindProtocol
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTransport:
		return "transport"
	case KindProtocol:
		return "protocol"
	default:
		return "unknown"
	}
}

// Error is the failure value returned by Gateway.Send. It carries the kind
// of failure, a descriptive message, and, for protocol errors, the response
// status code and body.
type Error struct {
	Kind ErrorKind

	// StatusCode and Body are set for KindProtocol errors only.
	StatusCode int
	Body       string

	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap exposes the underlying cause, if any, for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf returns the ErrorKind carried by err, or KindUnknown when err is
// not a gateway error.
func KindOf(err error) ErrorKind {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Kind
	}
	return KindUnknown
}

func newConfigError(msg string, cause error) *Error {
	return &Error{Kind: KindConfig, msg: msg, cause: cause}
}

func newTransportError(msg string, cause error) *Error {
	return &Error{Kind: KindTransport, msg: msg, cause: cause}
}

func newProtocolError(statusCode int, body string) *Error {
	return &Error{
		Kind:       KindProtocol,
		StatusCode: statusCode,
		Body:       body,
		msg: fmt.Sprintf(
			"failed to get a success response from the endpoint. response code: %d. response body: %s",
			statusCode, body,
		),
	}
}
