package peachtests

import (
	"context"

	"github.com/peachcloud/peach-probe/client"
	"github.com/peachcloud/peach-probe/framework"
	"github.com/peachcloud/peach-probe/servicedef"
)

const (
	testBitmapSize = 8
	testText       = "peach-probe"
)

// testBitmap is an 8x8 square outline, one byte per row.
var testBitmap = []byte{0xff, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0xff}

func oledEndpoints(c client.OLEDClient) []framework.Endpoint {
	return []framework.Endpoint{
		framework.Plain("clear", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).Clear(ctx)
		}),
		framework.Plain("draw", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).Draw(ctx, testBitmap, testBitmapSize, testBitmapSize, 0, 0)
		}),
		framework.Plain("flush", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).Flush(ctx)
		}),
		framework.Plain("ping", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).Ping(ctx)
		}),
		framework.Plain("power", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).Power(ctx, true)
		}),
		framework.Plain("write", func(ctx context.Context, debug framework.Logger) (interface{}, error) {
			return c.WithLogger(debug).Write(ctx, 0, 0, testText, servicedef.Font6x8)
		}),
	}
}
