package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/peachcloud/peach-probe/framework"
)

const (
	jsonRPCVersion = "2.0"

	// DefaultTimeout bounds a single call, including connecting.
	DefaultTimeout = time.Second * 10

	maxLoggedBody = 2048
)

// Client makes JSON-RPC 2.0 calls over HTTP to one microservice.
//
// Every failure is returned as a *framework.EndpointError: problems reaching the service or
// non-2xx HTTP responses are transport errors, an error object in the response is a protocol
// error, and anything that cannot be decoded is an encoding error.
type Client struct {
	url        string
	httpClient *http.Client
	logger     framework.Logger
}

type request struct {
	JSONRPC string         `json:"jsonrpc"`
	Method  string         `json:"method"`
	Params  *ldvalue.Value `json:"params,omitempty"`
	ID      string         `json:"id"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *responseError  `json:"error"`
	ID      json.RawMessage `json:"id"`
}

type responseError struct {
	Code    int64         `json:"code"`
	Message string        `json:"message"`
	Data    ldvalue.Value `json:"data"`
}

// New creates a client for the service at address, which is either "host:port" or a full
// http(s) URL.
func New(address string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	url := address
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     framework.NullLogger(),
	}
}

// URL returns the endpoint that requests are posted to.
func (c *Client) URL() string {
	return c.url
}

// WithLogger returns a copy of the client that logs requests and responses to logger.
func (c *Client) WithLogger(logger framework.Logger) *Client {
	if logger == nil {
		logger = framework.NullLogger()
	}
	c1 := *c
	c1.logger = logger
	return &c1
}

// Call invokes method with params and decodes the result into out. A null params value is
// left out of the request; out may be nil if the result is not needed.
func (c *Client) Call(ctx context.Context, method string, params ldvalue.Value, out interface{}) error {
	raw, err := c.call(ctx, method, params)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if len(raw) == 0 {
		return framework.EncodingError(fmt.Errorf("%s: response has no result", method))
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return framework.EncodingError(fmt.Errorf("%s: result is null", method))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return framework.EncodingError(fmt.Errorf("%s: unexpected result %s: %w", method, truncate(raw), err))
	}
	return nil
}

// CallEmbedded is like Call, for methods whose result is a JSON string that itself contains
// JSON, which is how the PeachCloud services return structured values.
func (c *Client) CallEmbedded(ctx context.Context, method string, params ldvalue.Value, out interface{}) error {
	var s string
	if err := c.Call(ctx, method, params, &s); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(s), out); err != nil {
		return framework.EncodingError(fmt.Errorf("%s: unexpected embedded result %s: %w", method, truncate([]byte(s)), err))
	}
	return nil
}

func (c *Client) call(ctx context.Context, method string, params ldvalue.Value) (json.RawMessage, error) {
	r := request{JSONRPC: jsonRPCVersion, Method: method, ID: uuid.NewString()}
	if !params.IsNull() {
		r.Params = &params
	}
	body, err := json.Marshal(r)
	if err != nil {
		return nil, framework.EncodingError(fmt.Errorf("%s: encoding request: %w", method, err))
	}

	c.logger.Printf("POST %s: %s", c.url, string(body))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, framework.TransportError(fmt.Errorf("%s: creating request: %w", method, err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("Request failed: %s", err)
		return nil, framework.TransportError(fmt.Errorf("%s: %w", method, err))
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, framework.TransportError(fmt.Errorf("%s: reading response: %w", method, err))
	}
	c.logger.Printf("Response status %d: %s", resp.StatusCode, truncate(data))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, framework.TransportError(fmt.Errorf("%s: service returned HTTP status %d", method, resp.StatusCode))
	}

	var decoded response
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, framework.EncodingError(fmt.Errorf("%s: malformed JSON-RPC response: %w", method, err))
	}
	if decoded.JSONRPC != jsonRPCVersion {
		return nil, framework.EncodingError(errors.New(method + ": response is not a JSON-RPC 2.0 response"))
	}
	if !responseIDMatches(decoded.ID, r.ID, decoded.Error != nil) {
		return nil, framework.EncodingError(fmt.Errorf("%s: response id %s does not match request id %q",
			method, truncate(decoded.ID), r.ID))
	}
	if decoded.Error != nil {
		return nil, framework.ProtocolError(decoded.Error.Code, decoded.Error.Message, decoded.Error.Data)
	}
	return decoded.Result, nil
}

// responseIDMatches checks the id of a response against the request. A null id is only
// allowed on error responses, for errors where the server could not read the request id.
func responseIDMatches(raw json.RawMessage, id string, isError bool) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return isError
	}
	var s string
	return json.Unmarshal(trimmed, &s) == nil && s == id
}

func truncate(data []byte) string {
	if len(data) <= maxLoggedBody {
		return string(data)
	}
	return string(data[:maxLoggedBody]) + "..."
}
