package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/infura/internal/infura"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

var (
	blocked = color.New(color.FgRed, color.Bold)
	allowed = color.New(color.FgGreen)
)

// blacklistCommand returns a CLI command that fetches the phishing blacklist,
// or checks hosts against it.
//
// Usage example:
//
//	infura blacklist --check metamask.io --check login.evil.com
func blacklistCommand(svc infura.Service) *cli.Command {
	return &cli.Command{
		Name:        "blacklist",
		Description: "Fetch the phishing blacklist (API v2 unless --api-version is given).",
		Usage:       "Prints the blacklist, or whether each --check host is blacklisted.",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "check",
				Usage: "Host to check against the blacklist; may be repeated",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			data, err := svc.GetBlacklist(ctx, callOptions(c)...)
			if err != nil {
				return err
			}

			hosts := c.StringSlice("check")
			if len(hosts) == 0 {
				return printJSON(output(c), data)
			}

			list, err := infura.DecodeBlacklist(data)
			if err != nil {
				return err
			}

			w := output(c)
			for _, host := range hosts {
				status := allowed.Sprint("allowed")
				if list.Contains(host) {
					status = blocked.Sprint("blocked")
				}

				if _, err := fmt.Fprintf(w, "%s: %s\n", host, status); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// networksCommand returns a CLI command that lists the recognized networks.
func networksCommand() *cli.Command {
	return &cli.Command{
		Name:        "networks",
		Description: "List the network identifiers recognized by the Infura API.",
		Usage:       "Lists the recognized networks. Other names are passed through unchanged.",
		Action: func(ctx context.Context, c *cli.Command) error {
			w := output(c)
			for _, n := range infura.Networks() {
				if _, err := fmt.Fprintln(w, color.CyanString(string(n))); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
