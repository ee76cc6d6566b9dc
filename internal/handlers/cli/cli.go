package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gabapcia/infura/internal/infura"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the infura CLI application.
//
// It registers all available commands, including:
//
//   - `methods` / `method` / `call`: JSON-RPC discovery and invocation.
//   - `ticker`: ticker symbol lookups.
//   - `blacklist`: phishing blacklist retrieval.
//   - `networks`: the recognized network identifiers.
//
// Global flags `--network` and `--api-version` override the configured client
// defaults for the invoked command.
func Run(ctx context.Context, svc infura.Service) error {
	return newCommand(svc).Run(ctx, os.Args)
}

// newCommand builds the root command tree.
func newCommand(svc infura.Service) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "infura",
		Description:           "Command-line client for the Infura REST API.",
		Usage:                 "infura [global flags] command [flags] [arguments]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "network",
				Usage: "Network to target (kovan, mainnet, rinkeby, ropsten); defaults to INFURA_NETWORK",
			},
			&cli.StringFlag{
				Name:  "api-version",
				Usage: "REST API version placed in the URL (e.g., v1); defaults to INFURA_API_VERSION",
			},
		},
		Commands: []*cli.Command{
			listMethodsCommand(svc),
			getMethodCommand(svc),
			callMethodCommand(svc),
			tickerCommand(svc),
			blacklistCommand(svc),
			networksCommand(),
		},
	}
}

// callOptions converts the global flags into per-call overrides.
func callOptions(c *cli.Command) []infura.CallOption {
	var opts []infura.CallOption
	if network := c.String("network"); network != "" {
		opts = append(opts, infura.WithCallNetwork(infura.Network(network)))
	}
	if version := c.String("api-version"); version != "" {
		opts = append(opts, infura.WithCallAPIVersion(version))
	}
	return opts
}

// output returns the writer command output goes to.
func output(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// printJSON writes data indented, followed by a newline.
func printJSON(w io.Writer, data json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return err
	}

	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

// requireArg returns the first positional argument or an error naming it.
func requireArg(c *cli.Command, name string) (string, error) {
	if c.Args().Len() == 0 || c.Args().First() == "" {
		return "", fmt.Errorf("missing required argument: %s", name)
	}
	return c.Args().First(), nil
}
