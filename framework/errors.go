package framework

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// ErrorKind says why an endpoint invocation failed.
type ErrorKind int

const (
	// KindTransport means the service could not be reached, or the HTTP exchange itself
	// failed (connection refused, timeout, non-2xx status).
	KindTransport ErrorKind = iota + 1
	// KindProtocol means the service was reached and answered with an application-level
	// error object.
	KindProtocol
	// KindEncoding means the service answered, but the response could not be decoded into
	// the expected shape.
	KindEncoding
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindProtocol:
		return "protocol"
	case KindEncoding:
		return "encoding"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// MarshalText lets the kind appear by name in JSON reports.
func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// EndpointError is the single error type produced by endpoint invokers. Every failure is
// tagged with exactly one ErrorKind; protocol errors also carry the remote error code,
// message and optional data payload so they can be shown in diagnostics.
type EndpointError struct {
	Kind    ErrorKind
	Code    int64
	Message string
	Data    ldvalue.Value
	Err     error
}

// TransportError wraps a failure to reach a service.
func TransportError(err error) *EndpointError {
	return &EndpointError{Kind: KindTransport, Err: err}
}

// ProtocolError describes an error object returned by the remote service.
func ProtocolError(code int64, message string, data ldvalue.Value) *EndpointError {
	return &EndpointError{Kind: KindProtocol, Code: code, Message: message, Data: data}
}

// EncodingError wraps a failure to decode a response.
func EncodingError(err error) *EndpointError {
	return &EndpointError{Kind: KindEncoding, Err: err}
}

func (e *EndpointError) Error() string {
	switch e.Kind {
	case KindProtocol:
		var b strings.Builder
		fmt.Fprintf(&b, "protocol error %d: %s", e.Code, e.Message)
		if !e.Data.IsNull() {
			fmt.Fprintf(&b, " (data: %s)", e.Data.JSONString())
		}
		return b.String()
	default:
		if e.Err == nil {
			return e.Kind.String() + " error"
		}
		return fmt.Sprintf("%s error: %s", e.Kind, e.Err)
	}
}

func (e *EndpointError) Unwrap() error {
	return e.Err
}

// AsEndpointError returns the EndpointError in err's chain. Errors that were not tagged by
// the invoker are treated as transport failures, since the call did not complete.
func AsEndpointError(err error) *EndpointError {
	if err == nil {
		return nil
	}
	var ee *EndpointError
	if errors.As(err, &ee) {
		return ee
	}
	return TransportError(err)
}
