package framework

// ProbeLogger receives progress notifications while a run is in progress.
type ProbeLogger interface {
	ServiceStarted(service string, version string)
	EndpointFinished(service string, outcome Outcome)
	ServiceFinished(result ProbeResult)
}

type nullProbeLogger struct{}

func (n nullProbeLogger) ServiceStarted(string, string)    {}
func (n nullProbeLogger) EndpointFinished(string, Outcome) {}
func (n nullProbeLogger) ServiceFinished(ProbeResult)      {}
