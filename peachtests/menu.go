package peachtests

import (
	"context"

	"github.com/peachcloud/peach-probe/client"
	"github.com/peachcloud/peach-probe/framework"
)

func menuEndpoints(c client.MenuClient) []framework.Endpoint {
	return []framework.Endpoint{
		framework.Plain("ping", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).Ping(ctx)
		}),
	}
}
