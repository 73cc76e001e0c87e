// Package report renders the results of a probe run.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/peachcloud/peach-probe/framework"
)

// Format selects how results are rendered.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

var allFormats = []Format{FormatText, FormatTable, FormatJSON}

func ParseFormat(s string) (Format, error) {
	for _, f := range allFormats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (expected text, table or json)", s)
}

type Options struct {
	// Verbose adds the diagnostic of every failing endpoint to the text report, along with the
	// request and response that led to it.
	Verbose bool
}

// Write renders the results in the given format.
func Write(w io.Writer, results framework.Results, format Format, opts Options) error {
	switch format {
	case FormatTable:
		return Table(w, results)
	case FormatJSON:
		return JSON(w, results)
	default:
		return Text(w, results, opts)
	}
}

// Text writes one line per service, saying whether it is online or which endpoints failed.
func Text(w io.Writer, results framework.Results, opts Options) error {
	online := color.New(color.FgGreen).SprintFunc()
	failing := color.New(color.FgRed).SprintFunc()

	for _, r := range results.Services {
		if r.IsRunning() {
			_, err := fmt.Fprintf(w, "%s (version %s): %s, all endpoints running\n",
				r.Microservice, r.DisplayVersion(), online("online"))
			if err != nil {
				return err
			}
			continue
		}
		_, err := fmt.Fprintf(w, "%s (version %s): %s: [%s]\n",
			r.Microservice, r.DisplayVersion(),
			failing(fmt.Sprintf("had %d %s that returned errors", len(r.Failures), plural(len(r.Failures), "endpoint"))),
			strings.Join(r.Failures, ", "))
		if err != nil {
			return err
		}
		if opts.Verbose {
			for _, o := range r.FailedOutcomes() {
				if _, err := fmt.Fprintf(w, "  %s: %s\n", o.Endpoint, o.Diagnostic); err != nil {
					return err
				}
				o.Debug.Dump(w, "    DEBUG ")
			}
		}
	}
	return nil
}

// Table writes a summary table with one row per service.
func Table(w io.Writer, results framework.Results) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"SERVICE", "VERSION", "STATUS", "PASSED", "FAILED", "FAILING ENDPOINTS"})
	for _, r := range results.Services {
		t.AppendRow(table.Row{
			r.Microservice,
			r.DisplayVersion(),
			status(r),
			len(r.Successes),
			len(r.Failures),
			strings.Join(r.Failures, ", "),
		})
	}
	t.Render()
	return nil
}

// JSON writes the whole results structure, including every endpoint's outcome.
func JSON(w io.Writer, results framework.Results) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func status(r framework.ProbeResult) string {
	if r.IsRunning() {
		return "online"
	}
	return "failing"
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
