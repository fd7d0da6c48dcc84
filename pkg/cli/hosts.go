/*
Copyright © 2026 The dcimctl authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/opendcim/dcimctl/pkg/dhcpd"
)

func hostsCmd() *cli.Command {
	return &cli.Command{
		Name:  "hosts",
		Usage: "Extract host declarations from a dhcpd configuration",
		Description: `Parses the "host <name> { ... }" blocks of a dhcpd.conf and emits one
record per host with its key/value entries. "hardware" and "option" keys
join with their following token ("hardware ethernet", "option host-name").

# Examples

  dcimctl hosts --config /etc/dhcp/dhcpd.conf
  dcimctl hosts --config dhcpd.conf --format table
  dcimctl hosts --config dhcpd.conf --exclude 'option*' --exclude filename
  dcimctl hosts --config dhcpd.conf --format json --output hosts.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Required: true,
				Usage:    "Path to the dhcpd configuration file",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Omit matching record keys from the output (wildcard patterns, can be repeated)",
			},
			formatFlag(),
			outputFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			path := cmd.String("config")
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open configuration: %w", err)
			}
			defer f.Close()

			hosts, err := dhcpd.ParseReader(f)
			if err != nil {
				slog.Error("failed to parse configuration", "path", path, "error", err)
				return err
			}
			slog.Debug("parsed configuration", "path", path, "hosts", len(hosts))

			if exclude := cmd.StringSlice("exclude"); len(exclude) > 0 {
				for name, record := range hosts {
					hosts[name] = record.FilterOut(exclude)
				}
			}

			return outputWriter(cmd, outFormat).Serialize(ctx, hosts)
		},
	}
}
