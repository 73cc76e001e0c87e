package client

import (
	"context"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/peachcloud/peach-probe/framework"
	"github.com/peachcloud/peach-probe/servicedef"
)

// NetworkClient calls the peach-network microservice.
type NetworkClient struct {
	rpc *Client
}

func NewNetworkClient(rpc *Client) NetworkClient {
	return NetworkClient{rpc: rpc}
}

func (n NetworkClient) WithLogger(logger framework.Logger) NetworkClient {
	return NetworkClient{rpc: n.rpc.WithLogger(logger)}
}

func ifaceParams(iface string) ldvalue.Value {
	return ldvalue.ObjectBuild().Set("iface", ldvalue.String(iface)).Build()
}

func ssidParams(ssid, iface string) ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("ssid", ldvalue.String(ssid)).
		Set("iface", ldvalue.String(iface)).
		Build()
}

// AvailableNetworks scans for access points visible on iface.
func (n NetworkClient) AvailableNetworks(ctx context.Context, iface string) ([]servicedef.Scan, error) {
	var ret []servicedef.Scan
	err := n.rpc.CallEmbedded(ctx, "available_networks", ifaceParams(iface), &ret)
	return ret, err
}

// Connect asks the service to connect iface to the saved network with the given SSID.
func (n NetworkClient) Connect(ctx context.Context, ssid, iface string) (string, error) {
	return callString(ctx, n.rpc, "connect", ssidParams(ssid, iface))
}

func (n NetworkClient) Disable(ctx context.Context, ssid, iface string) (string, error) {
	return callString(ctx, n.rpc, "disable", ssidParams(ssid, iface))
}

func (n NetworkClient) Forget(ctx context.Context, ssid, iface string) (string, error) {
	return callString(ctx, n.rpc, "forget", ssidParams(ssid, iface))
}

// ID returns the wpa_supplicant network id of the saved network with the given SSID.
func (n NetworkClient) ID(ctx context.Context, ssid, iface string) (string, error) {
	return callString(ctx, n.rpc, "id", ssidParams(ssid, iface))
}

func (n NetworkClient) IP(ctx context.Context, iface string) (string, error) {
	return callString(ctx, n.rpc, "ip", ifaceParams(iface))
}

func (n NetworkClient) Ping(ctx context.Context) (string, error) {
	return callString(ctx, n.rpc, "ping", ldvalue.Null())
}

func (n NetworkClient) RSSI(ctx context.Context, iface string) (string, error) {
	return callString(ctx, n.rpc, "rssi", ifaceParams(iface))
}

func (n NetworkClient) RSSIPercent(ctx context.Context, iface string) (string, error) {
	return callString(ctx, n.rpc, "rssi_percent", ifaceParams(iface))
}

func (n NetworkClient) SavedNetworks(ctx context.Context) ([]servicedef.SavedNetwork, error) {
	var ret []servicedef.SavedNetwork
	err := n.rpc.CallEmbedded(ctx, "saved_networks", ldvalue.Null(), &ret)
	return ret, err
}

func (n NetworkClient) SSID(ctx context.Context, iface string) (string, error) {
	return callString(ctx, n.rpc, "ssid", ifaceParams(iface))
}

func (n NetworkClient) State(ctx context.Context, iface string) (string, error) {
	return callString(ctx, n.rpc, "state", ifaceParams(iface))
}

func (n NetworkClient) Status(ctx context.Context, iface string) (servicedef.Status, error) {
	var ret servicedef.Status
	err := n.rpc.CallEmbedded(ctx, "status", ifaceParams(iface), &ret)
	return ret, err
}

func (n NetworkClient) Traffic(ctx context.Context, iface string) (servicedef.Traffic, error) {
	var ret servicedef.Traffic
	err := n.rpc.CallEmbedded(ctx, "traffic", ifaceParams(iface), &ret)
	return ret, err
}
