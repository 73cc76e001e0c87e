package framework

import (
	"encoding/json"
	"time"
)

const unknownVersion = "unknown"

// ProbeResult accumulates the verdicts for one microservice.
//
// Successes and Failures hold endpoint names in the order the endpoints were invoked. Every
// probed endpoint appears in exactly one of them. Outcomes holds the diagnostic for each
// invocation, in the same order; it never influences the verdict lists.
type ProbeResult struct {
	Microservice string
	Version      string
	Successes    []string
	Failures     []string
	Outcomes     []Outcome

	versionSet bool
}

func newProbeResult(microservice string) ProbeResult {
	return ProbeResult{
		Microservice: microservice,
		Successes:    []string{},
		Failures:     []string{},
		Outcomes:     []Outcome{},
	}
}

// IsRunning is true if no endpoint of the service failed.
func (r ProbeResult) IsRunning() bool {
	return len(r.Failures) == 0
}

// DisplayVersion returns the version, or "unknown" if it could not be determined.
func (r ProbeResult) DisplayVersion() string {
	if r.Version == "" {
		return unknownVersion
	}
	return r.Version
}

// Record appends a classified outcome to the result.
func (r *ProbeResult) Record(o Outcome) {
	if o.Passed {
		r.Successes = append(r.Successes, o.Endpoint)
	} else {
		r.Failures = append(r.Failures, o.Endpoint)
	}
	r.Outcomes = append(r.Outcomes, o)
}

// setVersion sets the version the first time it is called and ignores later calls.
func (r *ProbeResult) setVersion(version string) bool {
	if r.versionSet {
		return false
	}
	r.Version = version
	r.versionSet = true
	return true
}

// FailedOutcomes returns the outcomes of the endpoints that failed, in invocation order.
func (r ProbeResult) FailedOutcomes() []Outcome {
	var ret []Outcome
	for _, o := range r.Outcomes {
		if !o.Passed {
			ret = append(ret, o)
		}
	}
	return ret
}

func (r ProbeResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Microservice string    `json:"microservice"`
		Version      string    `json:"version"`
		Running      bool      `json:"running"`
		Successes    []string  `json:"successes"`
		Failures     []string  `json:"failures"`
		Outcomes     []Outcome `json:"outcomes"`
	}{
		Microservice: r.Microservice,
		Version:      r.DisplayVersion(),
		Running:      r.IsRunning(),
		Successes:    r.Successes,
		Failures:     r.Failures,
		Outcomes:     r.Outcomes,
	})
}

// Results is the outcome of a whole run: one ProbeResult per service, in probe order.
type Results struct {
	RunID    string        `json:"runId"`
	Started  time.Time     `json:"started"`
	Finished time.Time     `json:"finished"`
	Services []ProbeResult `json:"services"`
}

// OK is true if every probed service is running.
func (r Results) OK() bool {
	for _, s := range r.Services {
		if !s.IsRunning() {
			return false
		}
	}
	return true
}

// Failed returns the results of the services that are not running.
func (r Results) Failed() []ProbeResult {
	var ret []ProbeResult
	for _, s := range r.Services {
		if !s.IsRunning() {
			ret = append(ret, s)
		}
	}
	return ret
}
