/*
Copyright © 2026 The dcimctl authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/opendcim/dcimctl/pkg/serializer"
)

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: yaml, json, table", outFormat)
	}
	return outFormat, nil
}

// outputWriter builds the serializer for a command's --output flag: the
// command's writer (stdout unless redirected) when no path is given, the
// file otherwise.
func outputWriter(cmd *cli.Command, format serializer.Format) *serializer.Writer {
	path := cmd.String("output")
	if path == "" || path == serializer.StdoutURI {
		return serializer.NewWriter(format, cmd.Root().Writer)
	}
	return serializer.NewFileWriterOrStdout(format, path)
}

// formatFlag is the shared --format flag for commands with structured
// output.
func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   "Output format: yaml, json, table",
	}
}

// outputFlag is the shared --output flag; empty or "-" means stdout.
func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Value:   "",
		Usage:   "Output file path (default: stdout)",
	}
}
