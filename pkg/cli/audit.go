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

	"github.com/opendcim/dcimctl/pkg/audit"
	"github.com/opendcim/dcimctl/pkg/inventory"
)

func auditCmd() *cli.Command {
	return &cli.Command{
		Name:  "audit",
		Usage: "Audit device labels in an inventory",
		Description: `Checks every device label against the label policy (a-z, 0-9, single
dashes) and reports violations and duplicate labels. With --repair, labels
that can be normalized are reported as proposed repairs instead of errors;
the inventory file itself is never modified.

The command exits non-zero when the report result is Error.

# Examples

  dcimctl audit --inventory inventory.yaml
  dcimctl audit --inventory inventory.yaml --repair --format table`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "inventory",
				Aliases:  []string{"i"},
				Required: true,
				Usage:    "Path to the inventory YAML file",
			},
			&cli.BoolFlag{
				Name:  "repair",
				Usage: "Propose normalized replacements for invalid labels",
			},
			formatFlag(),
			outputFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			inv, err := inventory.LoadFile(cmd.String("inventory"))
			if err != nil {
				return err
			}

			a := &audit.LabelAudit{Repair: cmd.Bool("repair")}
			report := a.Perform(inv.Devices())
			slog.Debug("label audit complete",
				"result", report.Result,
				"errors", len(report.Errors),
				"repairs", len(report.Repairs),
			)

			if err := outputWriter(cmd, outFormat).Serialize(ctx, report); err != nil {
				return err
			}
			if report.Result == audit.ResultError {
				return fmt.Errorf("audit found %d problem(s)", len(report.Errors))
			}
			return nil
		},
	}
}
