/*
Copyright © 2026 The dcimctl authors
SPDX-License-Identifier: Apache-2.0
*/

// Command dcimctl works on datacenter inventory text: hostlist expansion,
// dhcpd host declarations, rack elevation diagrams, and label audits.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/opendcim/dcimctl/pkg/cli"
)

func main() {
	if err := cli.New().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
