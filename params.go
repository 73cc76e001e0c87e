package main

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/peachcloud/peach-probe/report"
)

type commandParams struct {
	verbose        bool
	configFile     string
	output         string
	logFile        string
	timeout        time.Duration
	noVersion      bool
	alwaysExitZero bool
}

func (c *commandParams) bind(fs *pflag.FlagSet) {
	fs.BoolVarP(&c.verbose, "verbose", "v", false, "show debug logging and the diagnostics of failing endpoints")
	fs.StringVarP(&c.configFile, "config", "c", "", "YAML file with service addresses and test parameters")
	fs.StringVarP(&c.output, "output", "o", string(report.FormatText), "report format: text, table or json")
	fs.StringVar(&c.logFile, "log-file", "", "also write JSON logs to this file")
	fs.DurationVar(&c.timeout, "timeout", 0, "timeout for each endpoint call (default 10s)")
	fs.BoolVar(&c.noVersion, "no-version", false, "do not look up installed service versions with dpkg-query")
	fs.BoolVar(&c.alwaysExitZero, "always-exit-zero", false, "exit with status 0 even if some services are failing")
}
