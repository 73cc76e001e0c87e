package peachtests

import (
	"context"

	"github.com/peachcloud/peach-probe/client"
	"github.com/peachcloud/peach-probe/framework"
)

func statsEndpoints(c client.StatsClient) []framework.Endpoint {
	return []framework.Endpoint{
		framework.Plain("cpu_stats", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).CPUStats(ctx)
		}),
		framework.Plain("cpu_stats_percent", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).CPUStatsPercent(ctx)
		}),
		framework.Plain("disk_usage", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).DiskUsage(ctx)
		}),
		framework.Plain("load_average", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).LoadAverage(ctx)
		}),
		framework.Plain("mem_stats", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).MemStats(ctx)
		}),
		framework.Plain("ping", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).Ping(ctx)
		}),
		framework.Plain("uptime", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).Uptime(ctx)
		}),
	}
}
