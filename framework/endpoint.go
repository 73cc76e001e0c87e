package framework

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Mode is how the verdict for an endpoint is decided.
type Mode int

const (
	// ModePlain endpoints are healthy when the call succeeds.
	ModePlain Mode = iota
	// ModeAssertError endpoints are healthy when the call is refused with a specific
	// protocol error, because the probe deliberately sends them synthetic input.
	ModeAssertError
)

func (m Mode) String() string {
	if m == ModeAssertError {
		return "assert-error"
	}
	return "plain"
}

// Invocation performs one remote call. The debug logger receives the request and response
// details for this call only; they are shown to the user if the endpoint fails.
type Invocation func(ctx context.Context, debug Logger) (interface{}, error)

// ErrorSignature identifies the error an assertion-mode endpoint is expected to return.
type ErrorSignature struct {
	Code int64
	// MessageContains, if not empty, must also appear in the error message.
	MessageContains string
}

// Matches reports whether a protocol error has this signature.
func (s ErrorSignature) Matches(e *EndpointError) bool {
	if e == nil || e.Kind != KindProtocol || e.Code != s.Code {
		return false
	}
	return s.MessageContains == "" || strings.Contains(e.Message, s.MessageContains)
}

func (s ErrorSignature) String() string {
	if s.MessageContains == "" {
		return fmt.Sprintf("code %d", s.Code)
	}
	return fmt.Sprintf("code %d containing %q", s.Code, s.MessageContains)
}

// Endpoint describes one remote operation to probe.
type Endpoint struct {
	Name   string
	Mode   Mode
	Expect ErrorSignature
	Call   Invocation
}

// Plain declares an endpoint that must succeed.
func Plain(name string, call Invocation) Endpoint {
	return Endpoint{Name: name, Mode: ModePlain, Call: call}
}

// AssertError declares an endpoint that must fail with the given error signature.
func AssertError(name string, expect ErrorSignature, call Invocation) Endpoint {
	return Endpoint{Name: name, Mode: ModeAssertError, Expect: expect, Call: call}
}

// Service is a microservice together with its endpoints, in the order they are probed.
type Service struct {
	ID        string
	Endpoints []Endpoint
}

// EndpointNames returns the declared endpoint names in order.
func (s Service) EndpointNames() []string {
	ret := make([]string, 0, len(s.Endpoints))
	for _, e := range s.Endpoints {
		ret = append(ret, e.Name)
	}
	return ret
}

// Validate checks that the service can be probed: it needs an id, and every endpoint needs a
// unique name and an invocation.
func (s Service) Validate() error {
	if s.ID == "" {
		return errors.New("service has no id")
	}
	seen := make(map[string]bool, len(s.Endpoints))
	for i, e := range s.Endpoints {
		switch {
		case e.Name == "":
			return fmt.Errorf("%s: endpoint %d has no name", s.ID, i)
		case seen[e.Name]:
			return fmt.Errorf("%s: endpoint %q is declared more than once", s.ID, e.Name)
		case e.Call == nil:
			return fmt.Errorf("%s: endpoint %q has no invocation", s.ID, e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}
