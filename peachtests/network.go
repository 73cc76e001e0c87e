package peachtests

import (
	"context"

	"github.com/peachcloud/peach-probe/client"
	"github.com/peachcloud/peach-probe/framework"
	"github.com/peachcloud/peach-probe/servicedef"
)

// The state-changing methods are called with a test SSID that is not a saved network, so
// a healthy service refuses them without touching the real configuration.
func networkEndpoints(c client.NetworkClient, iface, testSSID string) []framework.Endpoint {
	return []framework.Endpoint{
		framework.Plain("available_networks", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).AvailableNetworks(ctx, iface)
		}),
		framework.AssertError("connect",
			framework.ErrorSignature{Code: servicedef.ErrCodeConnectFailed},
			func(ctx context.Context, debug framework.Logger) (interface{}, error) {
				return c.WithLogger(debug).Connect(ctx, testSSID, iface)
			}),
		framework.AssertError("disable",
			framework.ErrorSignature{Code: servicedef.ErrCodeDisableFailed},
			func(ctx context.Context, debug framework.Logger) (interface{}, error) {
				return c.WithLogger(debug).Disable(ctx, testSSID, iface)
			}),
		framework.AssertError("forget",
			framework.ErrorSignature{Code: servicedef.ErrCodeForgetFailed},
			func(ctx context.Context, debug framework.Logger) (interface{}, error) {
				return c.WithLogger(debug).Forget(ctx, testSSID, iface)
			}),
		framework.AssertError("id",
			framework.ErrorSignature{Code: servicedef.ErrCodeNetworkIDNotFound},
			func(ctx context.Context, debug framework.Logger) (interface{}, error) {
				return c.WithLogger(debug).ID(ctx, testSSID, iface)
			}),
		framework.Plain("ip", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).IP(ctx, iface)
		}),
		framework.Plain("ping", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).Ping(ctx)
		}),
		framework.Plain("rssi", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).RSSI(ctx, iface)
		}),
		framework.Plain("rssi_percent", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).RSSIPercent(ctx, iface)
		}),
		framework.Plain("saved_networks", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).SavedNetworks(ctx)
		}),
		framework.Plain("ssid", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).SSID(ctx, iface)
		}),
		framework.Plain("state", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).State(ctx, iface)
		}),
		framework.Plain("status", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).Status(ctx, iface)
		}),
		framework.Plain("traffic", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).Traffic(ctx, iface)
		}),
	}
}
