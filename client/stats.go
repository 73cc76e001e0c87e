package client

import (
	"context"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/peachcloud/peach-probe/framework"
	"github.com/peachcloud/peach-probe/servicedef"
)

// StatsClient calls the peach-stats microservice.
type StatsClient struct {
	rpc *Client
}

func NewStatsClient(rpc *Client) StatsClient {
	return StatsClient{rpc: rpc}
}

func (s StatsClient) WithLogger(logger framework.Logger) StatsClient {
	return StatsClient{rpc: s.rpc.WithLogger(logger)}
}

func (s StatsClient) CPUStats(ctx context.Context) (servicedef.CPUStat, error) {
	var ret servicedef.CPUStat
	err := s.rpc.CallEmbedded(ctx, "cpu_stats", ldvalue.Null(), &ret)
	return ret, err
}

func (s StatsClient) CPUStatsPercent(ctx context.Context) (servicedef.CPUStatPercentages, error) {
	var ret servicedef.CPUStatPercentages
	err := s.rpc.CallEmbedded(ctx, "cpu_stats_percent", ldvalue.Null(), &ret)
	return ret, err
}

func (s StatsClient) DiskUsage(ctx context.Context) ([]servicedef.DiskUsage, error) {
	var ret []servicedef.DiskUsage
	err := s.rpc.CallEmbedded(ctx, "disk_usage", ldvalue.Null(), &ret)
	return ret, err
}

func (s StatsClient) LoadAverage(ctx context.Context) (servicedef.LoadAverage, error) {
	var ret servicedef.LoadAverage
	err := s.rpc.CallEmbedded(ctx, "load_average", ldvalue.Null(), &ret)
	return ret, err
}

func (s StatsClient) MemStats(ctx context.Context) (servicedef.MemStat, error) {
	var ret servicedef.MemStat
	err := s.rpc.CallEmbedded(ctx, "mem_stats", ldvalue.Null(), &ret)
	return ret, err
}

func (s StatsClient) Ping(ctx context.Context) (string, error) {
	return callString(ctx, s.rpc, "ping", ldvalue.Null())
}

// Uptime returns the system uptime in seconds, as reported by the service.
func (s StatsClient) Uptime(ctx context.Context) (string, error) {
	return callString(ctx, s.rpc, "uptime", ldvalue.Null())
}

func callString(ctx context.Context, rpc *Client, method string, params ldvalue.Value) (string, error) {
	var ret string
	err := rpc.Call(ctx, method, params, &ret)
	return ret, err
}
