/*
Copyright © 2026 The dcimctl authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/opendcim/dcimctl/pkg/inventory"
	"github.com/opendcim/dcimctl/pkg/rack"
)

// Diagram rows carry 7 border and unit-label characters around the
// interior columns.
const rackBorderOverhead = 7

// defaultRackWidth is the interior width used when stdout is not a
// terminal, matching the upstream OpenDCIM elevation format.
const defaultRackWidth = 32

func rackCmd() *cli.Command {
	return &cli.Command{
		Name:  "rack",
		Usage: "Render the ASCII elevation diagram of a cabinet",
		Description: `Draws the rack elevation of one cabinet from an inventory file: one row
pair per unit, bottom unit U001 at the bottom, devices boxed with doubled
borders and labeled in their top row.

# Examples

  dcimctl rack --inventory inventory.yaml --cabinet A01
  dcimctl rack --inventory inventory.yaml --cabinet A01 --width 40`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "inventory",
				Aliases:  []string{"i"},
				Required: true,
				Usage:    "Path to the inventory YAML file",
			},
			&cli.StringFlag{
				Name:     "cabinet",
				Aliases:  []string{"c"},
				Required: true,
				Usage:    "Name of the cabinet to render",
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "Interior diagram width in columns (default: fit the terminal)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			inv, err := inventory.LoadFile(cmd.String("inventory"))
			if err != nil {
				return err
			}

			cab, err := inv.Cabinet(cmd.String("cabinet"))
			if err != nil {
				return err
			}

			width := int(cmd.Int("width"))
			if width <= 0 {
				width = diagramWidth()
			}
			slog.Debug("rendering cabinet",
				"cabinet", cab.Name,
				"height", cab.Height,
				"devices", len(cab.Devices),
				"width", width,
			)

			return rack.Fprint(cmd.Root().Writer, cab.Height, width, cab.Slots())
		},
	}
}

// diagramWidth picks an interior width that fits the terminal, falling
// back to the fixed default when stdout is not one.
func diagramWidth() int {
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= rackBorderOverhead+1 {
		return defaultRackWidth
	}
	return cols - rackBorderOverhead - 1
}
