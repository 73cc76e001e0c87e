// Package pkgversion finds the installed versions of the PeachCloud microservices from the
// system package manager.
package pkgversion

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/alessio/shellescape"
	"go.uber.org/zap"
)

const defaultLookupTimeout = time.Second * 5

// DpkgLookup asks dpkg-query for the version of the package that has the same name as the
// service.
type DpkgLookup struct {
	// Command is the program and leading arguments; the package name is appended. Defaults
	// to dpkg-query printing only the version field.
	Command []string
	Timeout time.Duration
	Logger  *zap.Logger
}

func NewDpkgLookup(logger *zap.Logger) *DpkgLookup {
	return &DpkgLookup{Logger: logger}
}

func (d *DpkgLookup) command() []string {
	if len(d.Command) > 0 {
		return d.Command
	}
	return []string{"dpkg-query", "-W", "-f=${Version}"}
}

// LookupVersion returns the installed version of the package, or an error if it is not
// installed or dpkg-query cannot be run.
func (d *DpkgLookup) LookupVersion(ctx context.Context, service string) (string, error) {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := append(append([]string(nil), d.command()...), service)
	if d.Logger != nil {
		d.Logger.Debug("looking up package version",
			zap.String("service", service),
			zap.String("command", shellescape.QuoteCommand(args)))
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", shellescape.QuoteCommand(args), err, msg)
		}
		return "", fmt.Errorf("%s: %w", shellescape.QuoteCommand(args), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
