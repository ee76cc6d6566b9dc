package infura

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Ticker is the response of GetTickerSymbol.
type Ticker struct {
	Base         string          `json:"base"`
	Quote        string          `json:"quote"`
	Bid          decimal.Decimal `json:"bid"`
	Ask          decimal.Decimal `json:"ask"`
	Exchange     string          `json:"exchange"`
	Volume       decimal.Decimal `json:"volume"`
	NumExchanges int             `json:"num_exchanges"`
	TotalVolume  decimal.Decimal `json:"total_volume"`
	Timestamp    int64           `json:"timestamp"` // Unix seconds
}

// Time returns the ticker timestamp.
func (t Ticker) Time() time.Time {
	return time.Unix(t.Timestamp, 0).UTC()
}

// Spread returns ask minus bid.
func (t Ticker) Spread() decimal.Decimal {
	return t.Ask.Sub(t.Bid)
}

// ExchangeTicker is one exchange entry of a TickerFull.
type ExchangeTicker struct {
	Bid       decimal.Decimal `json:"bid"`
	Ask       decimal.Decimal `json:"ask"`
	Exchange  string          `json:"exchange"`
	Volume    decimal.Decimal `json:"volume"`
	Timestamp int64           `json:"timestamp"`
}

// TickerFull is the response of GetTickerSymbolFull.
type TickerFull struct {
	Base      string           `json:"base"`
	Quote     string           `json:"quote"`
	Tickers   []ExchangeTicker `json:"tickers"`
	Timestamp int64            `json:"timestamp"`
}

// BestBid returns the exchange ticker with the highest bid. ok is false when
// there are no tickers.
func (t TickerFull) BestBid() (best ExchangeTicker, ok bool) {
	for i, ticker := range t.Tickers {
		if i == 0 || ticker.Bid.GreaterThan(best.Bid) {
			best = ticker
		}
	}
	return best, len(t.Tickers) > 0
}

// BestAsk returns the exchange ticker with the lowest ask. ok is false when
// there are no tickers.
func (t TickerFull) BestAsk() (best ExchangeTicker, ok bool) {
	for i, ticker := range t.Tickers {
		if i == 0 || ticker.Ask.LessThan(best.Ask) {
			best = ticker
		}
	}
	return best, len(t.Tickers) > 0
}

// TotalVolume sums the volume of every exchange.
func (t TickerFull) TotalVolume() decimal.Decimal {
	total := decimal.Zero
	for _, ticker := range t.Tickers {
		total = total.Add(ticker.Volume)
	}
	return total
}

// DecodeTickerSymbols extracts the symbol list from a GetTickerSymbols body.
func DecodeTickerSymbols(body json.RawMessage) ([]string, error) {
	var data struct {
		Symbols []string `json:"symbols"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decoding ticker symbols: %w", err)
	}
	return data.Symbols, nil
}

// DecodeTicker decodes a GetTickerSymbol body.
func DecodeTicker(body json.RawMessage) (Ticker, error) {
	var t Ticker
	if err := json.Unmarshal(body, &t); err != nil {
		return Ticker{}, fmt.Errorf("decoding ticker: %w", err)
	}
	return t, nil
}

// DecodeTickerFull decodes a GetTickerSymbolFull body.
func DecodeTickerFull(body json.RawMessage) (TickerFull, error) {
	var t TickerFull
	if err := json.Unmarshal(body, &t); err != nil {
		return TickerFull{}, fmt.Errorf("decoding full ticker: %w", err)
	}
	return t, nil
}
