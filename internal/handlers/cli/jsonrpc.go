package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/infura/internal/infura"
	"github.com/gabapcia/infura/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/infura/internal/pkg/types"

	"github.com/urfave/cli/v3"
)

// listMethodsCommand returns a CLI command that lists the JSON-RPC methods
// available on the selected network.
//
// Usage example:
//
//	infura --network ropsten methods
func listMethodsCommand(svc infura.Service) *cli.Command {
	return &cli.Command{
		Name:        "methods",
		Description: "List the JSON-RPC methods callable through GET and POST.",
		Usage:       "Lists the JSON-RPC methods supported on a network.",
		Action: func(ctx context.Context, c *cli.Command) error {
			data, err := svc.GetClientMethods(ctx, callOptions(c)...)
			if err != nil {
				return err
			}

			return printJSON(output(c), data)
		},
	}
}

// getMethodCommand returns a CLI command that calls a read-only JSON-RPC
// method through a GET request.
//
// Usage example:
//
//	infura method --result eth_blockNumber
func getMethodCommand(svc infura.Service) *cli.Command {
	return &cli.Command{
		Name:        "method",
		Description: "Call a read-only JSON-RPC method through GET.",
		Usage:       "Calls a JSON-RPC method without parameters. Must provide the method name.",
		ArgsUsage:   "<method>",
		Flags:       resultFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			method, err := requireArg(c, "method")
			if err != nil {
				return err
			}

			data, err := svc.GetClientMethod(ctx, method, callOptions(c)...)
			if err != nil {
				return err
			}

			return printResult(c, data)
		},
	}
}

// callMethodCommand returns a CLI command that posts a JSON-RPC envelope.
// Parameters that are valid JSON are sent as such; anything else is sent as
// a string.
//
// Usage example:
//
//	infura call --quantity eth_getBalance 0x407d73d8a49eeb85d32cf465507dd71d507100c1 latest
func callMethodCommand(svc infura.Service) *cli.Command {
	flags := append(resultFlags(),
		&cli.StringFlag{
			Name:  "jsonrpc-version",
			Usage: "Value of the jsonrpc member of the request; defaults to INFURA_JSONRPC_VERSION",
		},
	)

	return &cli.Command{
		Name:        "call",
		Description: "Invoke a JSON-RPC method through POST.",
		Usage:       "Posts a JSON-RPC request. Must provide the method name, followed by its parameters.",
		ArgsUsage:   "<method> [params...]",
		Flags:       flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			method, err := requireArg(c, "method")
			if err != nil {
				return err
			}

			opts := callOptions(c)
			if version := c.String("jsonrpc-version"); version != "" {
				opts = append(opts, infura.WithCallJSONRPCVersion(version))
			}

			data, err := svc.PostClientMethod(ctx, method, parseParams(c.Args().Tail()), opts...)
			if err != nil {
				return err
			}

			return printResult(c, data)
		},
	}
}

// resultFlags are shared by the commands returning JSON-RPC responses.
func resultFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "result",
			Usage: "Print only the result member of the JSON-RPC response",
		},
		&cli.BoolFlag{
			Name:  "quantity",
			Usage: "Decode a hexadecimal quantity result and print it in base 10",
		},
	}
}

// parseParams converts positional arguments into JSON-RPC params.
func parseParams(args []string) []any {
	params := make([]any, 0, len(args))
	for _, arg := range args {
		if json.Valid([]byte(arg)) {
			params = append(params, json.RawMessage(arg))
			continue
		}
		params = append(params, arg)
	}
	return params
}

// printResult prints a JSON-RPC response according to the result flags.
func printResult(c *cli.Command, data json.RawMessage) error {
	if !c.Bool("result") && !c.Bool("quantity") {
		return printJSON(output(c), data)
	}

	result, err := jsonrpc.DecodeResponse(data)
	if err != nil {
		return err
	}

	if !c.Bool("quantity") {
		return printJSON(output(c), result)
	}

	var quantity types.Hex
	if err := json.Unmarshal(result, &quantity); err != nil {
		return fmt.Errorf("result is not a quantity: %w", err)
	}

	_, err = fmt.Fprintln(output(c), quantity.String())
	return err
}
