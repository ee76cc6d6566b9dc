package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/infura/internal/infura"

	"github.com/urfave/cli/v3"
)

// tickerCommand groups the ticker lookups.
//
// Usage example:
//
//	infura ticker symbols
//	infura ticker get --full --summary ethusd
func tickerCommand(svc infura.Service) *cli.Command {
	return &cli.Command{
		Name:        "ticker",
		Description: "Look up ticker symbols and their prices.",
		Usage:       "Ticker symbol lookups.",
		Commands: []*cli.Command{
			{
				Name:        "symbols",
				Description: "List the supported ticker symbols.",
				Usage:       "Lists the supported ticker symbols.",
				Action: func(ctx context.Context, c *cli.Command) error {
					data, err := svc.GetTickerSymbols(ctx, callOptions(c)...)
					if err != nil {
						return err
					}

					return printJSON(output(c), data)
				},
			},
			{
				Name:        "get",
				Description: "Show the ticker of a symbol, optionally broken down by exchange.",
				Usage:       "Shows a ticker. Must provide the symbol (e.g., ethusd).",
				ArgsUsage:   "<symbol>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "full",
						Usage: "Include every exchange ticker",
					},
					&cli.BoolFlag{
						Name:  "summary",
						Usage: "Print a one-line summary instead of the JSON document",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					symbol, err := requireArg(c, "symbol")
					if err != nil {
						return err
					}

					if c.Bool("full") {
						return showTickerFull(ctx, c, svc, symbol)
					}
					return showTicker(ctx, c, svc, symbol)
				},
			},
		},
	}
}

func showTicker(ctx context.Context, c *cli.Command, svc infura.Service, symbol string) error {
	data, err := svc.GetTickerSymbol(ctx, symbol, callOptions(c)...)
	if err != nil {
		return err
	}

	if !c.Bool("summary") {
		return printJSON(output(c), data)
	}

	ticker, err := infura.DecodeTicker(data)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(output(c), "%s/%s bid %s ask %s spread %s (%s, %s)\n",
		ticker.Base, ticker.Quote,
		ticker.Bid, ticker.Ask, ticker.Spread(),
		ticker.Exchange, ticker.Time().Format("2006-01-02T15:04:05Z"),
	)
	return err
}

func showTickerFull(ctx context.Context, c *cli.Command, svc infura.Service, symbol string) error {
	data, err := svc.GetTickerSymbolFull(ctx, symbol, callOptions(c)...)
	if err != nil {
		return err
	}

	if !c.Bool("summary") {
		return printJSON(output(c), data)
	}

	full, err := infura.DecodeTickerFull(data)
	if err != nil {
		return err
	}

	bid, ok := full.BestBid()
	if !ok {
		return fmt.Errorf("no exchange tickers for %s", symbol)
	}
	ask, _ := full.BestAsk()

	_, err = fmt.Fprintf(output(c), "%s/%s best bid %s (%s) best ask %s (%s) volume %s over %d exchanges\n",
		full.Base, full.Quote,
		bid.Bid, bid.Exchange,
		ask.Ask, ask.Exchange,
		full.TotalVolume(), len(full.Tickers),
	)
	return err
}
