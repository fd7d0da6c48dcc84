/*
Copyright © 2026 The dcimctl authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for the dcimctl tool.
//
// # Overview
//
// dcimctl works on datacenter inventory text: compact hostlist notation,
// dhcpd.conf host declarations, and rack elevation diagrams. Every command
// operates on local input; nothing talks to an inventory service.
//
// # Commands
//
// expand - Expand hostlist notation:
//
//	dcimctl expand 'cn[304-306,308]'
//	dcimctl expand 'gpu00[1-2][2-5]' 'login[1-3]'
//
// Prints one hostname per line, in input order, without deduplication.
//
// hosts - Extract host declarations from a dhcpd configuration:
//
//	dcimctl hosts --config dhcpd.conf
//	dcimctl hosts --config dhcpd.conf --format table
//	dcimctl hosts --config dhcpd.conf --format json --output hosts.json
//
// Emits one record per "host { ... }" block with its key/value entries,
// compound keys ("hardware ethernet", "option host-name") included.
//
// rack - Render a cabinet elevation diagram:
//
//	dcimctl rack --inventory inventory.yaml --cabinet A01
//	dcimctl rack --inventory inventory.yaml --cabinet A01 --width 40
//
// Draws the fixed-width ASCII elevation for the named cabinet. The width
// defaults to the terminal width when stdout is a terminal.
//
// audit - Audit device labels in an inventory:
//
//	dcimctl audit --inventory inventory.yaml
//	dcimctl audit --inventory inventory.yaml --repair --format yaml
//
// Checks every device label against the label policy (a-z, 0-9, single
// dashes) and reports violations and duplicates. With --repair, labels
// that can be normalized are reported as proposed repairs; nothing is
// written back.
//
// # Global Flags
//
//	--debug      Enable debug logging
//	--log-json   Output logs in JSON format
//
// # Output Formats
//
// Commands with a --format flag accept yaml (default), json, and table.
package cli
