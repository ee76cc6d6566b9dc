package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/gabapcia/infura/internal/infura"
	infuratest "github.com/gabapcia/infura/internal/infura/mocks"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// run executes the command tree against svc and returns what it printed.
func run(t *testing.T, svc infura.Service, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newCommand(svc)
	cmd.Writer = &out
	cmd.ErrWriter = &out

	err := cmd.Run(t.Context(), append([]string{"infura"}, args...))
	return out.String(), err
}

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	t.Run("should show help without calling the service", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		os.Args = []string{"infura", "--help"}

		// Act
		err := Run(t.Context(), mockService)

		// Assert
		assert.NoError(t, err)
	})

	t.Run("should propagate service errors", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		mockService.EXPECT().GetTickerSymbols(mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()
		os.Args = []string{"infura", "ticker", "symbols"}

		// Act
		err := Run(t.Context(), mockService)

		// Assert
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestNewCommand(t *testing.T) {
	// Arrange
	mockService := infuratest.NewService(t)

	// Act
	cmd := newCommand(mockService)

	// Assert
	assert.Equal(t, "infura", cmd.Name)

	var names []string
	for _, sub := range cmd.Commands {
		names = append(names, sub.Name)
	}
	assert.Equal(t, []string{"methods", "method", "call", "ticker", "blacklist", "networks"}, names)
}

func TestListMethodsCommand(t *testing.T) {
	t.Run("should print the methods indented", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		mockService.EXPECT().
			GetClientMethods(mock.Anything, mock.Anything).
			Return(json.RawMessage(`{"get":["eth_blockNumber"],"post":["eth_call"]}`), nil).
			Once()

		// Act
		out, err := run(t, mockService, "methods")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"get\": [\n    \"eth_blockNumber\"\n  ],\n  \"post\": [\n    \"eth_call\"\n  ]\n}\n", out)
	})

	t.Run("should return service errors", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		mockService.EXPECT().GetClientMethods(mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

		// Act
		_, err := run(t, mockService, "methods")

		// Assert
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestGetMethodCommand(t *testing.T) {
	const response = `{"jsonrpc":"2.0","id":1,"result":"0x1b4"}`

	t.Run("should require the method name", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)

		// Act
		_, err := run(t, mockService, "method")

		// Assert
		assert.ErrorContains(t, err, "missing required argument: method")
	})

	t.Run("should print the whole response by default", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		mockService.EXPECT().
			GetClientMethod(mock.Anything, "eth_blockNumber", mock.Anything).
			Return(json.RawMessage(response), nil).
			Once()

		// Act
		out, err := run(t, mockService, "method", "eth_blockNumber")

		// Assert
		require.NoError(t, err)
		assert.JSONEq(t, response, out)
	})

	t.Run("should print only the result with --result", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		mockService.EXPECT().
			GetClientMethod(mock.Anything, "eth_blockNumber", mock.Anything).
			Return(json.RawMessage(response), nil).
			Once()

		// Act
		out, err := run(t, mockService, "method", "--result", "eth_blockNumber")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "\"0x1b4\"\n", out)
	})

	t.Run("should decode quantities with --quantity", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		mockService.EXPECT().
			GetClientMethod(mock.Anything, "eth_blockNumber", mock.Anything).
			Return(json.RawMessage(response), nil).
			Once()

		// Act
		out, err := run(t, mockService, "method", "--quantity", "eth_blockNumber")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "436\n", out)
	})

	t.Run("should surface JSON-RPC errors with --result", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		mockService.EXPECT().
			GetClientMethod(mock.Anything, "eth_foo", mock.Anything).
			Return(json.RawMessage(`{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"method not found"}}`), nil).
			Once()

		// Act
		_, err := run(t, mockService, "method", "--result", "eth_foo")

		// Assert
		assert.ErrorContains(t, err, "method not found")
	})

	t.Run("should reject non quantity results with --quantity", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		mockService.EXPECT().
			GetClientMethod(mock.Anything, "net_version", mock.Anything).
			Return(json.RawMessage(`{"jsonrpc":"2.0","id":1,"result":{"a":1}}`), nil).
			Once()

		// Act
		_, err := run(t, mockService, "method", "--quantity", "net_version")

		// Assert
		assert.ErrorContains(t, err, "result is not a quantity")
	})
}

func TestCallMethodCommand(t *testing.T) {
	t.Run("should require the method name", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)

		// Act
		_, err := run(t, mockService, "call")

		// Assert
		assert.ErrorContains(t, err, "missing required argument: method")
	})

	t.Run("should forward the parsed params", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		expected := []any{"0x407d73d8a49eeb85d32cf465507dd71d507100c1", "latest"}
		mockService.EXPECT().
			PostClientMethod(mock.Anything, "eth_getBalance", expected, mock.Anything).
			Return(json.RawMessage(`{"jsonrpc":"2.0","id":1,"result":"0x0234c8a3397aab58"}`), nil).
			Once()

		// Act
		out, err := run(t, mockService, "call", "--quantity", "eth_getBalance", "0x407d73d8a49eeb85d32cf465507dd71d507100c1", "latest")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "158972490234375000\n", out)
	})

	t.Run("should send an empty params array without arguments", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		mockService.EXPECT().
			PostClientMethod(mock.Anything, "eth_blockNumber", []any{}, mock.Anything).
			Return(json.RawMessage(`{"jsonrpc":"2.0","id":1,"result":"0x1"}`), nil).
			Once()

		// Act
		_, err := run(t, mockService, "call", "eth_blockNumber")

		// Assert
		assert.NoError(t, err)
	})
}

func TestParseParams(t *testing.T) {
	t.Run("should keep valid JSON as raw values", func(t *testing.T) {
		params := parseParams([]string{"true", "1", `{"to":"0x1"}`, `"quoted"`})

		assert.Equal(t, []any{
			json.RawMessage("true"),
			json.RawMessage("1"),
			json.RawMessage(`{"to":"0x1"}`),
			json.RawMessage(`"quoted"`),
		}, params)
	})

	t.Run("should send anything else as strings", func(t *testing.T) {
		params := parseParams([]string{"latest", "0x1b4"})

		assert.Equal(t, []any{"latest", "0x1b4"}, params)
	})

	t.Run("should return an empty slice for no arguments", func(t *testing.T) {
		params := parseParams(nil)

		assert.NotNil(t, params)
		assert.Empty(t, params)
	})
}

func TestTickerCommand(t *testing.T) {
	const ticker = `{"base":"ETH","quote":"USD","bid":1261.32,"ask":1262.05,"exchange":"bitstamp","volume":120.5,"num_exchanges":3,"total_volume":1000.1,"timestamp":1616432220}`
	const full = `{"base":"ETH","quote":"USD","timestamp":1616432220,"tickers":[` +
		`{"bid":100,"ask":102,"exchange":"bitstamp","volume":1.5,"timestamp":1616432220},` +
		`{"bid":101,"ask":103,"exchange":"kraken","volume":2.5,"timestamp":1616432220}]}`

	t.Run("should list the symbols", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		mockService.EXPECT().
			GetTickerSymbols(mock.Anything, mock.Anything).
			Return(json.RawMessage(`{"symbols":["ethusd","ethbtc"]}`), nil).
			Once()

		// Act
		out, err := run(t, mockService, "ticker", "symbols")

		// Assert
		require.NoError(t, err)
		assert.JSONEq(t, `{"symbols":["ethusd","ethbtc"]}`, out)
	})

	t.Run("should require the symbol", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)

		// Act
		_, err := run(t, mockService, "ticker", "get")

		// Assert
		assert.ErrorContains(t, err, "missing required argument: symbol")
	})

	t.Run("should print the ticker", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		mockService.EXPECT().GetTickerSymbol(mock.Anything, "ethusd", mock.Anything).Return(json.RawMessage(ticker), nil).Once()

		// Act
		out, err := run(t, mockService, "ticker", "get", "ethusd")

		// Assert
		require.NoError(t, err)
		assert.JSONEq(t, ticker, out)
	})

	t.Run("should summarize the ticker", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		mockService.EXPECT().GetTickerSymbol(mock.Anything, "ethusd", mock.Anything).Return(json.RawMessage(ticker), nil).Once()

		// Act
		out, err := run(t, mockService, "ticker", "get", "--summary", "ethusd")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, out, "ETH/USD bid 1261.32 ask 1262.05 spread 0.73 (bitstamp, 2021-03-22T")
	})

	t.Run("should print the full ticker", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		mockService.EXPECT().GetTickerSymbolFull(mock.Anything, "ethusd", mock.Anything).Return(json.RawMessage(full), nil).Once()

		// Act
		out, err := run(t, mockService, "ticker", "get", "--full", "ethusd")

		// Assert
		require.NoError(t, err)
		assert.JSONEq(t, full, out)
	})

	t.Run("should summarize the full ticker", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		mockService.EXPECT().GetTickerSymbolFull(mock.Anything, "ethusd", mock.Anything).Return(json.RawMessage(full), nil).Once()

		// Act
		out, err := run(t, mockService, "ticker", "get", "--full", "--summary", "ethusd")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "ETH/USD best bid 101 (kraken) best ask 102 (bitstamp) volume 4 over 2 exchanges\n", out)
	})

	t.Run("should fail to summarize a full ticker without exchanges", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		mockService.EXPECT().
			GetTickerSymbolFull(mock.Anything, "ethusd", mock.Anything).
			Return(json.RawMessage(`{"base":"ETH","quote":"USD","tickers":[]}`), nil).
			Once()

		// Act
		_, err := run(t, mockService, "ticker", "get", "--full", "--summary", "ethusd")

		// Assert
		assert.ErrorContains(t, err, "no exchange tickers for ethusd")
	})
}

func TestBlacklistCommand(t *testing.T) {
	const list = `{"version":2,"tolerance":2,"fuzzylist":["metamask.io"],"whitelist":["safe.evil.com"],"blacklist":["evil.com"]}`

	t.Run("should print the blacklist", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		mockService.EXPECT().GetBlacklist(mock.Anything, mock.Anything).Return(json.RawMessage(list), nil).Once()

		// Act
		out, err := run(t, mockService, "blacklist")

		// Assert
		require.NoError(t, err)
		assert.JSONEq(t, list, out)
	})

	t.Run("should check hosts", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		mockService.EXPECT().GetBlacklist(mock.Anything, mock.Anything).Return(json.RawMessage(list), nil).Once()

		// Act
		out, err := run(t, mockService, "blacklist", "--check", "login.evil.com", "--check", "safe.evil.com", "--check", "metamask.io")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "login.evil.com: blocked\nsafe.evil.com: allowed\nmetamask.io: allowed\n", out)
	})

	t.Run("should return service errors", func(t *testing.T) {
		// Arrange
		mockService := infuratest.NewService(t)
		mockService.EXPECT().GetBlacklist(mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

		// Act
		_, err := run(t, mockService, "blacklist", "--check", "evil.com")

		// Assert
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestNetworksCommand(t *testing.T) {
	// Arrange
	mockService := infuratest.NewService(t)

	// Act
	out, err := run(t, mockService, "networks")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "kovan\nmainnet\nrinkeby\nropsten\n", out)
}

func TestGlobalFlags(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.Method+" "+r.URL.Path)
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0x1"}`))
	}))
	defer srv.Close()

	lastPath := func() string {
		mu.Lock()
		defer mu.Unlock()
		require.NotEmpty(t, paths)
		return paths[len(paths)-1]
	}

	client := infura.New(infura.WithBaseURL(srv.URL))

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "uses the client defaults",
			args:     []string{"methods"},
			expected: "GET /v1/jsonrpc/mainnet/methods",
		},
		{
			name:     "overrides the network",
			args:     []string{"--network", "ropsten", "method", "eth_blockNumber"},
			expected: "GET /v1/jsonrpc/ropsten/eth_blockNumber",
		},
		{
			name:     "overrides the api version",
			args:     []string{"--api-version", "v3", "ticker", "symbols"},
			expected: "GET /v3/ticker/symbols",
		},
		{
			name:     "posts to the network endpoint",
			args:     []string{"--network", "kovan", "call", "eth_blockNumber"},
			expected: "POST /v1/jsonrpc/kovan",
		},
		{
			name:     "keeps v2 for the blacklist",
			args:     []string{"blacklist"},
			expected: "GET /v2/blacklist",
		},
		{
			name:     "lets the api version flag override the blacklist version",
			args:     []string{"--api-version", "v1", "blacklist"},
			expected: "GET /v1/blacklist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, client, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, lastPath())
		})
	}
}
