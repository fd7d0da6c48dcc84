/*
Copyright © 2026 The dcimctl authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/opendcim/dcimctl/pkg/hostlist"
)

func expandCmd() *cli.Command {
	return &cli.Command{
		Name:      "expand",
		Usage:     "Expand hostlist notation into explicit hostnames",
		ArgsUsage: "HOSTLIST...",
		Description: `Expands compact bracketed host notation into one hostname per line.

Entries are comma-separated; a bracket group holds comma-separated numbers
or first-last ranges. Leading zeros on a range start zero-pad the whole
range. Multiple groups in one entry produce the cross product.

# Examples

  dcimctl expand 'cn[304-306,308]'
  dcimctl expand 'node[01-12]' 'gpu00[1-2][2-5]'`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("expand requires at least one hostlist argument")
			}

			for _, arg := range args {
				hosts, err := hostlist.Expand(arg)
				if err != nil {
					slog.Error("hostlist expansion failed", "hostlist", arg, "error", err)
					return err
				}
				slog.Debug("expanded hostlist", "hostlist", arg, "hosts", len(hosts))
				for _, h := range hosts {
					if _, err := fmt.Fprintln(cmd.Root().Writer, h); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}
