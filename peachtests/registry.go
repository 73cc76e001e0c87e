package peachtests

import (
	"context"
	"time"

	"go.uber.org/multierr"

	"github.com/peachcloud/peach-probe/client"
	"github.com/peachcloud/peach-probe/config"
	"github.com/peachcloud/peach-probe/framework"
	"github.com/peachcloud/peach-probe/servicedef"
)

// Registry maps each microservice to its endpoint descriptors, using the addresses and test
// parameters from the configuration.
type Registry struct {
	cfg config.Config
}

func NewRegistry(cfg config.Config) *Registry {
	return &Registry{cfg: cfg}
}

// Service returns the descriptor of one microservice.
func (r *Registry) Service(m servicedef.Microservice) framework.Service {
	rpc := client.New(r.cfg.Address(m), r.cfg.Timeout)
	var endpoints []framework.Endpoint
	switch m {
	case servicedef.Network:
		endpoints = networkEndpoints(client.NewNetworkClient(rpc), r.cfg.Interface, r.cfg.TestSSID)
	case servicedef.OLED:
		endpoints = oledEndpoints(client.NewOLEDClient(rpc))
	case servicedef.Stats:
		endpoints = statsEndpoints(client.NewStatsClient(rpc))
	case servicedef.Menu:
		endpoints = menuEndpoints(client.NewMenuClient(rpc))
	}
	for i := range endpoints {
		endpoints[i].Call = withTimeout(r.cfg.Timeout, endpoints[i].Call)
	}
	return framework.Service{ID: m.ID(), Endpoints: endpoints}
}

// Services returns the descriptors of the selected microservices, in the same order. It fails
// if any descriptor could not be probed, such as one declaring an endpoint name twice.
func (r *Registry) Services(selected []servicedef.Microservice) ([]framework.Service, error) {
	ret := make([]framework.Service, 0, len(selected))
	for _, m := range selected {
		ret = append(ret, r.Service(m))
	}
	if err := validateServices(ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func validateServices(services []framework.Service) error {
	var err error
	for _, s := range services {
		err = multierr.Append(err, s.Validate())
	}
	return err
}

func withTimeout(timeout time.Duration, call framework.Invocation) framework.Invocation {
	if timeout <= 0 {
		return call
	}
	return func(ctx context.Context, debug framework.Logger) (interface{}, error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return call(ctx, debug)
	}
}
