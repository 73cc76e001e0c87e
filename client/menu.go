package client

import (
	"context"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/peachcloud/peach-probe/framework"
)

// MenuClient calls the peach-menu microservice.
type MenuClient struct {
	rpc *Client
}

func NewMenuClient(rpc *Client) MenuClient {
	return MenuClient{rpc: rpc}
}

func (m MenuClient) WithLogger(logger framework.Logger) MenuClient {
	return MenuClient{rpc: m.rpc.WithLogger(logger)}
}

func (m MenuClient) Ping(ctx context.Context) (string, error) {
	return callString(ctx, m.rpc, "ping", ldvalue.Null())
}
