package framework

import (
	"fmt"
	"time"
)

// Outcome is the classified result of one endpoint invocation.
type Outcome struct {
	Endpoint   string         `json:"endpoint"`
	Mode       string         `json:"mode"`
	Passed     bool           `json:"passed"`
	Kind       ErrorKind      `json:"kind,omitempty"`
	Diagnostic string         `json:"diagnostic"`
	Elapsed    time.Duration  `json:"elapsed"`
	Err        error          `json:"-"`
	Debug      CapturedOutput `json:"-"`
}

// Classify decides the verdict for one invocation of endpoint that returned err (nil
// meaning the call succeeded). It depends on nothing but its arguments, so classifying the
// same recorded outcome again always gives the same verdict.
//
// For plain endpoints any error is a failure and the error kind only shapes the diagnostic.
// For assertion-mode endpoints only a protocol error matching the expected signature passes;
// a successful call means the service accepted input it should have refused.
func Classify(endpoint Endpoint, err error) Outcome {
	o := Outcome{
		Endpoint: endpoint.Name,
		Mode:     endpoint.Mode.String(),
		Err:      err,
	}
	ee := AsEndpointError(err)
	if ee != nil {
		o.Kind = ee.Kind
	}

	switch endpoint.Mode {
	case ModeAssertError:
		switch {
		case ee == nil:
			o.Diagnostic = fmt.Sprintf("endpoint should not succeed (expected error %s)", endpoint.Expect)
		case endpoint.Expect.Matches(ee):
			o.Passed = true
			o.Diagnostic = fmt.Sprintf("endpoint returned expected error %s", endpoint.Expect)
		default:
			o.Diagnostic = fmt.Sprintf("expected error %s but got %s", endpoint.Expect, ee)
		}
	default:
		if ee == nil {
			o.Passed = true
			o.Diagnostic = "endpoint is online"
		} else {
			o.Diagnostic = fmt.Sprintf("endpoint is offline: %s", ee)
		}
	}
	return o
}
