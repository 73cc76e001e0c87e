package framework

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// VersionLookup finds the installed version of a microservice.
type VersionLookup interface {
	LookupVersion(ctx context.Context, service string) (string, error)
}

// RunOptions are the collaborators of a run. All fields are optional.
type RunOptions struct {
	// Versions resolves service versions; if nil, versions are left empty.
	Versions VersionLookup
	// ProbeLogger is told about progress as endpoints are classified.
	ProbeLogger ProbeLogger
	// Logger receives structured log entries for every classification.
	Logger *zap.Logger
	// DebugLogger receives the debug output of every invocation, in addition to the
	// per-endpoint capture kept in each Outcome.
	DebugLogger Logger
}

// Prober probes services one at a time and owns the Results of the run until Finish is
// called.
type Prober struct {
	versions    VersionLookup
	probeLogger ProbeLogger
	logger      *zap.Logger
	debugLogger Logger
	results     Results
	finished    bool
}

func NewProber(opts RunOptions) *Prober {
	p := &Prober{
		versions:    opts.Versions,
		probeLogger: opts.ProbeLogger,
		logger:      opts.Logger,
		debugLogger: opts.DebugLogger,
		results: Results{
			RunID:    ulid.Make().String(),
			Started:  time.Now(),
			Services: []ProbeResult{},
		},
	}
	if p.probeLogger == nil {
		p.probeLogger = nullProbeLogger{}
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	return p
}

// Run probes each service in order and returns the results.
func Run(ctx context.Context, services []Service, opts RunOptions) Results {
	p := NewProber(opts)
	for _, s := range services {
		p.ProbeService(ctx, s)
	}
	return p.Finish()
}

// ProbeService invokes every endpoint of the service exactly once, in declared order, and
// records each verdict. The ProbeResult is added to the run before anything is invoked, so
// it is reported even if the service turns out to be entirely unreachable. Failures of
// individual endpoints, including panics in the invoker, never stop the loop.
func (p *Prober) ProbeService(ctx context.Context, service Service) {
	if p.finished {
		panic("ProbeService called after Finish")
	}
	p.results.Services = append(p.results.Services, newProbeResult(service.ID))
	result := &p.results.Services[len(p.results.Services)-1]

	log := p.logger.With(zap.String("service", service.ID))
	log.Info("probing service", zap.Int("endpoints", len(service.Endpoints)))

	if p.versions != nil {
		version, err := p.versions.LookupVersion(ctx, service.ID)
		if err != nil {
			log.Debug("could not determine version", zap.Error(err))
			version = ""
		}
		result.setVersion(strings.TrimSpace(version))
	}
	p.probeLogger.ServiceStarted(service.ID, result.DisplayVersion())

	for _, e := range service.Endpoints {
		o := p.probeEndpoint(ctx, e)
		result.Record(o)
		logOutcome(log, o)
		p.probeLogger.EndpointFinished(service.ID, o)
	}

	p.probeLogger.ServiceFinished(*result)
}

// Finish ends the run and hands over its results. The Prober cannot be used afterward.
func (p *Prober) Finish() Results {
	p.finished = true
	ret := p.results
	ret.Finished = time.Now()
	p.results = Results{}
	return ret
}

func (p *Prober) probeEndpoint(ctx context.Context, e Endpoint) Outcome {
	capture := &CapturingLogger{}
	debugLogger := TeeLogger(capture, p.debugLogger)

	start := time.Now()
	err := invoke(ctx, e, debugLogger)
	o := Classify(e, err)
	o.Elapsed = time.Since(start)
	o.Debug = capture.Output()
	return o
}

func invoke(ctx context.Context, e Endpoint, debugLogger Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			debugLogger.Printf("panic in %s: %+v\n%s", e.Name, r, string(debug.Stack()))
			err = TransportError(fmt.Errorf("unexpected panic in endpoint invocation: %+v", r))
		}
	}()
	if e.Call == nil {
		return TransportError(errors.New("endpoint has no invocation"))
	}
	_, err = e.Call(ctx, debugLogger)
	return err
}

func logOutcome(log *zap.Logger, o Outcome) {
	fields := []zap.Field{
		zap.String("endpoint", o.Endpoint),
		zap.String("mode", o.Mode),
		zap.Duration("elapsed", o.Elapsed),
	}
	if o.Kind != 0 {
		fields = append(fields, zap.Stringer("kind", o.Kind))
	}
	if o.Passed {
		log.Info(o.Diagnostic, fields...)
	} else {
		log.Warn(o.Diagnostic, fields...)
	}
}
