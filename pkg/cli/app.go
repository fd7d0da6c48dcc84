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
)

// version is stamped by the release build; "dev" otherwise.
var version = "dev"

// New assembles the root command with every subcommand attached.
func New() *cli.Command {
	return &cli.Command{
		Name:    "dcimctl",
		Usage:   "Datacenter inventory text toolkit",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			configureLogging(cmd.Bool("debug"), cmd.Bool("log-json"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			expandCmd(),
			hostsCmd(),
			rackCmd(),
			auditCmd(),
		},
	}
}

// configureLogging installs the process-wide slog handler. Logs go to
// stderr so command output stays clean on stdout.
func configureLogging(debug, logJSON bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if logJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
