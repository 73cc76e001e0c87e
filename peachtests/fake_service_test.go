package peachtests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/peachcloud/peach-probe/config"
	"github.com/peachcloud/peach-probe/servicedef"
)

type rpcReply struct {
	result    interface{}
	errorCode int64
}

func ok(result interface{}) rpcReply { return rpcReply{result: result} }

func refuse(code int64) rpcReply { return rpcReply{errorCode: code} }

type receivedCall struct {
	method string
	params map[string]interface{}
}

// fakeService is a minimal JSON-RPC 2.0 server that answers each method with a canned reply.
// Methods without a reply get the standard "method not found" error.
type fakeService struct {
	replies map[string]rpcReply
	calls   []receivedCall
	lock    sync.Mutex
}

func newFakeService(replies map[string]rpcReply) *fakeService {
	return &fakeService{replies: replies}
}

func (f *fakeService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Method string                 `json:"method"`
		Params map[string]interface{} `json:"params"`
		ID     string                 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.lock.Lock()
	f.calls = append(f.calls, receivedCall{method: req.Method, params: req.Params})
	reply, found := f.replies[req.Method]
	f.lock.Unlock()

	resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
	switch {
	case !found:
		resp["error"] = map[string]interface{}{"code": -32601, "message": "Method not found"}
	case reply.errorCode != 0:
		resp["error"] = map[string]interface{}{"code": reply.errorCode, "message": "refused by fake service"}
	default:
		resp["result"] = reply.result
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (f *fakeService) methods() []string {
	f.lock.Lock()
	defer f.lock.Unlock()
	var ret []string
	for _, c := range f.calls {
		ret = append(ret, c.method)
	}
	return ret
}

func (f *fakeService) paramsOf(method string) map[string]interface{} {
	f.lock.Lock()
	defer f.lock.Unlock()
	for _, c := range f.calls {
		if c.method == method {
			return c.params
		}
	}
	return nil
}

func (f *fakeService) with(method string, reply rpcReply) *fakeService {
	f.replies[method] = reply
	return f
}

func healthyNetworkReplies() map[string]rpcReply {
	return map[string]rpcReply{
		"available_networks": ok(`[{"frequency":"2412","protocol":"WPA2","signal_level":"-50","ssid":"home"}]`),
		"connect":            refuse(servicedef.ErrCodeConnectFailed),
		"disable":            refuse(servicedef.ErrCodeDisableFailed),
		"forget":             refuse(servicedef.ErrCodeForgetFailed),
		"id":                 refuse(servicedef.ErrCodeNetworkIDNotFound),
		"ip":                 ok("10.0.0.2"),
		"ping":               ok("success"),
		"rssi":               ok("-50"),
		"rssi_percent":       ok("80"),
		"saved_networks":     ok(`[{"ssid":"home"}]`),
		"ssid":               ok("home"),
		"state":              ok("up"),
		"status":             ok(`{"wpa_state":"COMPLETED","ssid":"home"}`),
		"traffic":            ok(`{"received":1024,"transmitted":2048}`),
	}
}

func healthyOLEDReplies() map[string]rpcReply {
	ret := make(map[string]rpcReply)
	for _, m := range []string{"clear", "draw", "flush", "ping", "power", "write"} {
		ret[m] = ok("success")
	}
	return ret
}

func healthyStatsReplies() map[string]rpcReply {
	return map[string]rpcReply{
		"cpu_stats":         ok(`{"user":100,"system":50,"idle":900,"nice":0}`),
		"cpu_stats_percent": ok(`{"user":9.1,"system":4.5,"idle":86.4,"nice":0}`),
		"disk_usage": ok(`[{"filesystem":"/dev/root","one_k_blocks":100,"one_k_blocks_used":40,` +
			`"one_k_blocks_free":60,"used_percentage":40,"mountpoint":"/"}]`),
		"load_average": ok(`{"one":0.1,"five":0.2,"fifteen":0.3}`),
		"mem_stats":    ok(`{"total":1024,"free":512,"used":512}`),
		"ping":         ok("success"),
		"uptime":       ok("1234"),
	}
}

func healthyMenuReplies() map[string]rpcReply {
	return map[string]rpcReply{"ping": ok("success")}
}

func hostPort(server *httptest.Server) string {
	return strings.TrimPrefix(server.URL, "http://")
}

func testConfig() config.Config {
	c := config.Default()
	c.Timeout = 2 * time.Second
	c.Interface = "wlan9"
	c.TestSSID = "no-such-network"
	return c
}
