package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/peachcloud/peach-probe/framework"
)

// ConsoleProbeLogger prints progress while services are being probed.
type ConsoleProbeLogger struct {
	Out io.Writer
	// Verbose also lists the endpoints that passed.
	Verbose bool
}

func (c *ConsoleProbeLogger) ServiceStarted(service string, version string) {
	fmt.Fprintf(c.Out, "[%s] version %s\n", service, version)
}

func (c *ConsoleProbeLogger) EndpointFinished(service string, outcome framework.Outcome) {
	if outcome.Passed {
		if c.Verbose {
			fmt.Fprintf(c.Out, "  %s: %s\n", color.GreenString("ok"), outcome.Endpoint)
		}
		return
	}
	fmt.Fprintf(c.Out, "  %s: %s: %s\n", color.RedString("FAILED"), outcome.Endpoint, outcome.Diagnostic)
}

func (c *ConsoleProbeLogger) ServiceFinished(result framework.ProbeResult) {
	fmt.Fprintf(c.Out, "  %d passed, %d failed\n", len(result.Successes), len(result.Failures))
}
