package infura

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gabapcia/infura/internal/pkg/transport/jsonrpc"
)

// Service is the set of Infura API operations. *Client implements it.
type Service interface {
	// GetClientMethods lists the JSON-RPC methods available on a network.
	GetClientMethods(ctx context.Context, opts ...CallOption) (json.RawMessage, error)

	// GetClientMethod calls a read-only JSON-RPC method through GET.
	GetClientMethod(ctx context.Context, method string, opts ...CallOption) (json.RawMessage, error)

	// PostClientMethod posts a JSON-RPC envelope for method with params.
	PostClientMethod(ctx context.Context, method string, params []any, opts ...CallOption) (json.RawMessage, error)

	// GetTickerSymbols lists the supported ticker symbols.
	GetTickerSymbols(ctx context.Context, opts ...CallOption) (json.RawMessage, error)

	// GetTickerSymbol returns the ticker of a symbol.
	GetTickerSymbol(ctx context.Context, symbol string, opts ...CallOption) (json.RawMessage, error)

	// GetTickerSymbolFull returns the per-exchange tickers of a symbol.
	GetTickerSymbolFull(ctx context.Context, symbol string, opts ...CallOption) (json.RawMessage, error)

	// GetBlacklist returns the phishing blacklist.
	GetBlacklist(ctx context.Context, opts ...CallOption) (json.RawMessage, error)
}

// GetClientMethods fetches jsonrpc/{network}/methods.
func (c *Client) GetClientMethods(ctx context.Context, opts ...CallOption) (json.RawMessage, error) {
	cc := c.resolve(opts)
	url := c.ConstructURL("jsonrpc/"+string(cc.network)+"/methods", opts...)
	return c.do(ctx, "get_client_methods", http.MethodGet, url, nil)
}

// GetClientMethod fetches jsonrpc/{network}/{method}.
func (c *Client) GetClientMethod(ctx context.Context, method string, opts ...CallOption) (json.RawMessage, error) {
	cc := c.resolve(opts)
	url := c.ConstructURL("jsonrpc/"+string(cc.network)+"/"+method, opts...)
	return c.do(ctx, "get_client_method", http.MethodGet, url, nil)
}

// PostClientMethod posts {"id":1,"jsonrpc":<version>,"method":method,"params":params}
// to jsonrpc/{network}. A nil params is sent as an empty array.
func (c *Client) PostClientMethod(ctx context.Context, method string, params []any, opts ...CallOption) (json.RawMessage, error) {
	cc := c.resolve(opts)
	url := c.ConstructURL("jsonrpc/"+string(cc.network), opts...)
	body := jsonrpc.NewRequest(cc.jsonrpcVersion, method, params)
	return c.do(ctx, "post_client_method", http.MethodPost, url, body)
}

// GetTickerSymbols fetches ticker/symbols.
func (c *Client) GetTickerSymbols(ctx context.Context, opts ...CallOption) (json.RawMessage, error) {
	url := c.ConstructURL("ticker/symbols", opts...)
	return c.do(ctx, "get_ticker_symbols", http.MethodGet, url, nil)
}

// GetTickerSymbol fetches ticker/{symbol}.
func (c *Client) GetTickerSymbol(ctx context.Context, symbol string, opts ...CallOption) (json.RawMessage, error) {
	url := c.ConstructURL("ticker/"+symbol, opts...)
	return c.do(ctx, "get_ticker_symbol", http.MethodGet, url, nil)
}

// GetTickerSymbolFull fetches ticker/{symbol}/full.
func (c *Client) GetTickerSymbolFull(ctx context.Context, symbol string, opts ...CallOption) (json.RawMessage, error) {
	url := c.ConstructURL("ticker/"+symbol+"/full", opts...)
	return c.do(ctx, "get_ticker_symbol_full", http.MethodGet, url, nil)
}

// GetBlacklist fetches blacklist using BlacklistAPIVersion, unless
// WithCallAPIVersion is given.
func (c *Client) GetBlacklist(ctx context.Context, opts ...CallOption) (json.RawMessage, error) {
	opts = append([]CallOption{WithCallAPIVersion(BlacklistAPIVersion)}, opts...)
	url := c.ConstructURL("blacklist", opts...)
	return c.do(ctx, "get_blacklist", http.MethodGet, url, nil)
}
