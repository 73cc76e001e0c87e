package client

import (
	"context"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/peachcloud/peach-probe/framework"
)

// OLEDClient calls the peach-oled microservice, which drives the display.
type OLEDClient struct {
	rpc *Client
}

func NewOLEDClient(rpc *Client) OLEDClient {
	return OLEDClient{rpc: rpc}
}

func (o OLEDClient) WithLogger(logger framework.Logger) OLEDClient {
	return OLEDClient{rpc: o.rpc.WithLogger(logger)}
}

func (o OLEDClient) Clear(ctx context.Context) (string, error) {
	return callString(ctx, o.rpc, "clear", ldvalue.Null())
}

// Draw copies a 1-bit bitmap of the given size into the display buffer at (x, y).
func (o OLEDClient) Draw(ctx context.Context, bitmap []byte, width, height, x, y int) (string, error) {
	bytes := ldvalue.ArrayBuild()
	for _, b := range bitmap {
		bytes.Add(ldvalue.Int(int(b)))
	}
	params := ldvalue.ObjectBuild().
		Set("bytes", bytes.Build()).
		Set("width", ldvalue.Int(width)).
		Set("height", ldvalue.Int(height)).
		Set("x_coord", ldvalue.Int(x)).
		Set("y_coord", ldvalue.Int(y)).
		Build()
	return callString(ctx, o.rpc, "draw", params)
}

// Flush writes the display buffer to the screen.
func (o OLEDClient) Flush(ctx context.Context) (string, error) {
	return callString(ctx, o.rpc, "flush", ldvalue.Null())
}

func (o OLEDClient) Ping(ctx context.Context) (string, error) {
	return callString(ctx, o.rpc, "ping", ldvalue.Null())
}

func (o OLEDClient) Power(ctx context.Context, on bool) (string, error) {
	return callString(ctx, o.rpc, "power", ldvalue.ObjectBuild().Set("on", ldvalue.Bool(on)).Build())
}

// Write renders text into the display buffer at (x, y) with one of the servicedef fonts.
func (o OLEDClient) Write(ctx context.Context, x, y int, text, font string) (string, error) {
	params := ldvalue.ObjectBuild().
		Set("x_coord", ldvalue.Int(x)).
		Set("y_coord", ldvalue.Int(y)).
		Set("string", ldvalue.String(text)).
		Set("font_size", ldvalue.String(font)).
		Build()
	return callString(ctx, o.rpc, "write", params)
}
