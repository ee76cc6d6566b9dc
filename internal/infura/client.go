// Package infura is a client for the Infura REST API. It builds endpoint URLs
// from a base host, an API version and a path, and performs GET/POST calls
// whose decoded JSON bodies are returned untouched.
//
// Every call returns either the raw response body or an error; failures are
// never reported as successful values. See ErrRequestFailed, ErrUnexpectedStatus
// and ErrInvalidResponse for the error kinds.
package infura

import (
	httptransport "github.com/gabapcia/infura/internal/pkg/transport/http"
	"github.com/gabapcia/infura/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/infura/internal/pkg/types"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const (
	// BaseURL is the Infura API host.
	BaseURL = "https://api.infura.io"

	// DefaultAPIVersion is the REST API version used in URLs unless overridden.
	DefaultAPIVersion = "v1"

	// BlacklistAPIVersion is the REST API version GetBlacklist uses unless overridden.
	BlacklistAPIVersion = "v2"

	// instrumentationName identifies spans and metrics produced by this package.
	instrumentationName = "github.com/gabapcia/infura/internal/infura"
)

// Network identifies the Ethereum network a JSON-RPC request targets.
type Network string

// Networks recognized by the Infura API. Other values are accepted and placed
// in URLs verbatim.
const (
	Kovan   Network = "kovan"
	Mainnet Network = "mainnet"
	Rinkeby Network = "rinkeby"
	Ropsten Network = "ropsten"
)

var knownNetworks = types.NewSet(Kovan, Mainnet, Rinkeby, Ropsten)

// Networks returns the recognized networks in alphabetical order.
func Networks() []Network {
	return types.Sorted(knownNetworks)
}

// IsKnown reports whether n is one of the recognized networks.
func (n Network) IsKnown() bool {
	return knownNetworks.Has(n)
}

// config is the immutable configuration of a Client.
type config struct {
	baseURL        string
	network        Network
	apiVersion     string
	jsonrpcVersion string
	httpClient     *retryablehttp.Client
}

// Option configures a Client at construction time.
type Option func(*config)

// WithNetwork sets the network used when a call does not override it.
// Default: mainnet.
func WithNetwork(n Network) Option {
	return func(c *config) {
		c.network = n
	}
}

// WithBaseURL replaces the API host, e.g. to target a proxy or a test server.
// Default: https://api.infura.io.
func WithBaseURL(u string) Option {
	return func(c *config) {
		c.baseURL = u
	}
}

// WithAPIVersion sets the REST API version placed in URLs. Default: v1.
func WithAPIVersion(v string) Option {
	return func(c *config) {
		c.apiVersion = v
	}
}

// WithJSONRPCVersion sets the jsonrpc member of posted envelopes. Default: 2.0.
func WithJSONRPCVersion(v string) Option {
	return func(c *config) {
		c.jsonrpcVersion = v
	}
}

// WithHTTPClient sets the transport used for every request.
// Default: httptransport.NewClient() with a 10s timeout and no retries.
func WithHTTPClient(hc *retryablehttp.Client) Option {
	return func(c *config) {
		c.httpClient = hc
	}
}

// Client performs calls against the Infura REST API. It is safe for
// concurrent use; its configuration never changes after New.
type Client struct {
	cfg      config
	tracer   trace.Tracer
	requests metric.Int64Counter
}

var _ Service = (*Client)(nil)

// New creates a Client configured with opts.
func New(opts ...Option) *Client {
	cfg := config{
		baseURL:        BaseURL,
		network:        Mainnet,
		apiVersion:     DefaultAPIVersion,
		jsonrpcVersion: jsonrpc.DefaultVersion,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = httptransport.NewClient()
	}

	requests, err := otel.Meter(instrumentationName).Int64Counter(
		"infura.requests",
		metric.WithDescription("Number of Infura API requests by operation and outcome."),
	)
	if err != nil {
		requests, _ = noop.NewMeterProvider().Meter(instrumentationName).Int64Counter("infura.requests")
	}

	return &Client{
		cfg:      cfg,
		tracer:   otel.Tracer(instrumentationName),
		requests: requests,
	}
}

// Network returns the network used when a call does not override it.
func (c *Client) Network() Network {
	return c.cfg.network
}

// callConfig holds the per-call overrides of the client configuration.
type callConfig struct {
	network        Network
	apiVersion     string
	jsonrpcVersion string
}

// CallOption overrides the client configuration for a single call.
type CallOption func(*callConfig)

// WithCallNetwork overrides the network of a single call.
func WithCallNetwork(n Network) CallOption {
	return func(c *callConfig) {
		c.network = n
	}
}

// WithCallAPIVersion overrides the REST API version of a single call.
func WithCallAPIVersion(v string) CallOption {
	return func(c *callConfig) {
		c.apiVersion = v
	}
}

// WithCallJSONRPCVersion overrides the jsonrpc member of a single posted envelope.
func WithCallJSONRPCVersion(v string) CallOption {
	return func(c *callConfig) {
		c.jsonrpcVersion = v
	}
}

// resolve applies opts on top of the client configuration.
func (c *Client) resolve(opts []CallOption) callConfig {
	cc := callConfig{
		network:        c.cfg.network,
		apiVersion:     c.cfg.apiVersion,
		jsonrpcVersion: c.cfg.jsonrpcVersion,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cc)
		}
	}
	return cc
}
