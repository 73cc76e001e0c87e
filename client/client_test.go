package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/peachcloud/peach-probe/framework"
	"github.com/peachcloud/peach-probe/servicedef"
)

// rpcHandler answers every request with the given response fields and the request's own id.
func rpcHandler(fields map[string]interface{}) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID string `json:"id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		body := map[string]interface{}{"id": req.ID}
		for k, v := range fields {
			body[k] = v
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	})
}

func resultHandler(result interface{}) http.Handler {
	return rpcHandler(map[string]interface{}{"jsonrpc": "2.0", "result": result})
}

func errorHandler(code int64, message string, data interface{}) http.Handler {
	e := map[string]interface{}{"code": code, "message": message}
	if data != nil {
		e["data"] = data
	}
	return rpcHandler(map[string]interface{}{"jsonrpc": "2.0", "error": e})
}

func requireEndpointError(t *testing.T, err error, kind framework.ErrorKind) *framework.EndpointError {
	require.Error(t, err)
	var ee *framework.EndpointError
	require.True(t, errors.As(err, &ee), "expected an EndpointError, got %T: %s", err, err)
	require.Equal(t, kind, ee.Kind, "unexpected error kind for: %s", err)
	return ee
}

func TestNewAddsScheme(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:5113", New("127.0.0.1:5113", 0).URL())
	assert.Equal(t, "https://stats.local", New("https://stats.local", 0).URL())
}

func TestCallSendsJSONRPCRequest(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(resultHandler("success"))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		c := NewNetworkClient(New(server.URL, time.Second))
		result, err := c.Connect(context.Background(), "peach-probe-test-ssid", "wlan0")
		require.NoError(t, err)
		assert.Equal(t, "success", result)

		require.Len(t, requestsCh, 1)
		r := <-requestsCh
		assert.Equal(t, "POST", r.Request.Method)
		assert.Equal(t, "application/json", r.Request.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(r.Body, &body))
		assert.Equal(t, "2.0", body["jsonrpc"])
		assert.Equal(t, "connect", body["method"])
		assert.NotEmpty(t, body["id"])
		assert.Equal(t, map[string]interface{}{"ssid": "peach-probe-test-ssid", "iface": "wlan0"}, body["params"])
	})
}

func TestCallOmitsNullParams(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(resultHandler("success"))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		_, err := NewStatsClient(New(server.URL, time.Second)).Ping(context.Background())
		require.NoError(t, err)

		r := <-requestsCh
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(r.Body, &body))
		_, hasParams := body["params"]
		assert.False(t, hasParams)
	})
}

func TestProtocolError(t *testing.T) {
	httphelpers.WithServer(errorHandler(-32027, "Failed to connect to network", "wlan0"), func(server *httptest.Server) {
		_, err := NewNetworkClient(New(server.URL, time.Second)).Connect(context.Background(), "x", "wlan0")
		ee := requireEndpointError(t, err, framework.KindProtocol)
		assert.Equal(t, int64(-32027), ee.Code)
		assert.Equal(t, "Failed to connect to network", ee.Message)
		assert.Equal(t, ldvalue.String("wlan0"), ee.Data)
	})
}

func TestProtocolErrorWithNullID(t *testing.T) {
	parseError := httphelpers.HandlerWithJSONResponse(map[string]interface{}{
		"jsonrpc": "2.0",
		"error":   map[string]interface{}{"code": -32700, "message": "Parse error"},
		"id":      nil,
	}, nil)
	httphelpers.WithServer(parseError, func(server *httptest.Server) {
		_, err := NewStatsClient(New(server.URL, time.Second)).Ping(context.Background())
		ee := requireEndpointError(t, err, framework.KindProtocol)
		assert.Equal(t, int64(-32700), ee.Code)
	})
}

func TestNullResultIsEncodingError(t *testing.T) {
	httphelpers.WithServer(resultHandler(nil), func(server *httptest.Server) {
		value, err := NewStatsClient(New(server.URL, time.Second)).Uptime(context.Background())
		ee := requireEndpointError(t, err, framework.KindEncoding)
		assert.Contains(t, ee.Error(), "result is null")
		assert.Equal(t, "", value)
	})
}

func TestSavedNetworks(t *testing.T) {
	httphelpers.WithServer(resultHandler(`[{"ssid":"home"},{"ssid":"office"}]`), func(server *httptest.Server) {
		networks, err := NewNetworkClient(New(server.URL, time.Second)).SavedNetworks(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []servicedef.SavedNetwork{{SSID: "home"}, {SSID: "office"}}, networks)
	})
}

func TestHTTPErrorStatusIsTransportError(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(500), func(server *httptest.Server) {
		_, err := NewStatsClient(New(server.URL, time.Second)).Ping(context.Background())
		ee := requireEndpointError(t, err, framework.KindTransport)
		assert.Contains(t, ee.Error(), "HTTP status 500")
	})
}

func TestUnreachableServiceIsTransportError(t *testing.T) {
	server := httptest.NewServer(resultHandler("success"))
	url := server.URL
	server.Close()

	_, err := NewMenuClient(New(url, time.Second)).Ping(context.Background())
	requireEndpointError(t, err, framework.KindTransport)
}

func TestTimeoutIsTransportError(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	})
	httphelpers.WithServer(slow, func(server *httptest.Server) {
		_, err := NewStatsClient(New(server.URL, 50*time.Millisecond)).Uptime(context.Background())
		requireEndpointError(t, err, framework.KindTransport)
	})
}

func TestMalformedResponsesAreEncodingErrors(t *testing.T) {
	for name, handler := range map[string]http.Handler{
		"not JSON":          httphelpers.HandlerWithResponse(200, nil, []byte("<html>hello</html>")),
		"not JSON-RPC":      httphelpers.HandlerWithJSONResponse(map[string]interface{}{"status": "ok"}, nil),
		"missing result":    rpcHandler(map[string]interface{}{"jsonrpc": "2.0"}),
		"null result":       resultHandler(nil),
		"wrong result type": resultHandler(42),
		"mismatched id": httphelpers.HandlerWithJSONResponse(map[string]interface{}{
			"jsonrpc": "2.0", "result": "success", "id": "not-the-request-id",
		}, nil),
		"null id on success": httphelpers.HandlerWithJSONResponse(map[string]interface{}{
			"jsonrpc": "2.0", "result": "success", "id": nil,
		}, nil),
	} {
		t.Run(name, func(t *testing.T) {
			httphelpers.WithServer(handler, func(server *httptest.Server) {
				_, err := NewOLEDClient(New(server.URL, time.Second)).Ping(context.Background())
				requireEndpointError(t, err, framework.KindEncoding)
			})
		})
	}
}

func TestEmbeddedResult(t *testing.T) {
	embedded := `{"user":12.5,"system":3.25,"idle":84.0,"nice":0.25}`
	httphelpers.WithServer(resultHandler(embedded), func(server *httptest.Server) {
		stats, err := NewStatsClient(New(server.URL, time.Second)).CPUStatsPercent(context.Background())
		require.NoError(t, err)
		assert.Equal(t, float32(12.5), stats.User)
		assert.Equal(t, float32(3.25), stats.System)
		assert.Equal(t, float32(84), stats.Idle)
		assert.Equal(t, float32(0.25), stats.Nice)
	})
}

func TestMalformedEmbeddedResultIsEncodingError(t *testing.T) {
	httphelpers.WithServer(resultHandler("disk usage unavailable"), func(server *httptest.Server) {
		_, err := NewStatsClient(New(server.URL, time.Second)).DiskUsage(context.Background())
		ee := requireEndpointError(t, err, framework.KindEncoding)
		assert.Contains(t, ee.Error(), "disk_usage")
	})
}

func TestOLEDDrawParams(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(resultHandler("success"))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		_, err := NewOLEDClient(New(server.URL, time.Second)).Draw(context.Background(), []byte{0xff, 0x81}, 8, 2, 0, 0)
		require.NoError(t, err)

		r := <-requestsCh
		var body struct {
			Params struct {
				Bytes  []int `json:"bytes"`
				Width  int   `json:"width"`
				Height int   `json:"height"`
			} `json:"params"`
		}
		require.NoError(t, json.Unmarshal(r.Body, &body))
		assert.Equal(t, []int{255, 129}, body.Params.Bytes)
		assert.Equal(t, 8, body.Params.Width)
		assert.Equal(t, 2, body.Params.Height)
	})
}

func TestWithLoggerCapturesExchange(t *testing.T) {
	httphelpers.WithServer(resultHandler("success"), func(server *httptest.Server) {
		var capture framework.CapturingLogger
		base := New(server.URL, time.Second)
		_, err := NewStatsClient(base).WithLogger(&capture).Ping(context.Background())
		require.NoError(t, err)

		output := capture.Output()
		require.Len(t, output, 2)
		assert.True(t, strings.HasPrefix(output[0].Message, "POST "+server.URL))
		assert.Contains(t, output[1].Message, "Response status 200")

		_, err = NewStatsClient(base).Ping(context.Background())
		require.NoError(t, err)
		assert.Len(t, capture.Output(), 2, "the original client should not log to the copy's logger")
	})
}
