package framework

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func succeed() Invocation {
	return func(context.Context, Logger) (interface{}, error) {
		return "success", nil
	}
}

func failWith(err error) Invocation {
	return func(context.Context, Logger) (interface{}, error) {
		return nil, err
	}
}

func transportFailure() error {
	return TransportError(errors.New("dial tcp 127.0.0.1:5113: connect: connection refused"))
}

func protocolFailure(code int64, message string) error {
	return ProtocolError(code, message, ldvalue.Null())
}

func encodingFailure() error {
	return EncodingError(errors.New("invalid character 'x' looking for beginning of value"))
}

type fakeVersions map[string]string

func (f fakeVersions) LookupVersion(_ context.Context, service string) (string, error) {
	if v, ok := f[service]; ok {
		return v, nil
	}
	return "", fmt.Errorf("package %s is not installed", service)
}

type countingVersions struct {
	calls []string
}

func (c *countingVersions) LookupVersion(_ context.Context, service string) (string, error) {
	c.calls = append(c.calls, service)
	return "1.0.0", nil
}

type recordingProbeLogger struct {
	events []string
}

func (r *recordingProbeLogger) ServiceStarted(service string, version string) {
	r.events = append(r.events, fmt.Sprintf("start %s %s", service, version))
}

func (r *recordingProbeLogger) EndpointFinished(service string, outcome Outcome) {
	r.events = append(r.events, fmt.Sprintf("endpoint %s/%s %t", service, outcome.Endpoint, outcome.Passed))
}

func (r *recordingProbeLogger) ServiceFinished(result ProbeResult) {
	r.events = append(r.events, fmt.Sprintf("finish %s %t", result.Microservice, result.IsRunning()))
}

func ldvalueString(s string) ldvalue.Value {
	return ldvalue.String(s)
}
