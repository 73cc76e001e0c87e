package peachtests

import (
	"context"

	"github.com/peachcloud/peach-probe/config"
	"github.com/peachcloud/peach-probe/framework"
	"github.com/peachcloud/peach-probe/servicedef"
)

// RunProbeSuite probes the selected microservices, in order, and returns the results. An
// error means nothing was probed.
func RunProbeSuite(
	ctx context.Context,
	cfg config.Config,
	selected []servicedef.Microservice,
	opts framework.RunOptions,
) (framework.Results, error) {
	services, err := NewRegistry(cfg).Services(selected)
	if err != nil {
		return framework.Results{}, err
	}
	return framework.Run(ctx, services, opts), nil
}
