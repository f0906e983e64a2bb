/*
Copyright © 2025 WAVES Survey Collaboration
SPDX-License-Identifier: MIT
*/

// Package cli implements the command-line interface for the ripval tool.
//
// # Commands
//
// parquet - validate a Parquet table's column names and values:
//
//	ripval parquet catalog.parquet [--verbose] [--skip-columns 'tmp_*']
//
// maml - validate a MAML metadata document:
//
//	ripval maml catalog.maml [--verbose]
//
// both - validate a Parquet/MAML pair and their consistency:
//
//	ripval both catalog [--verbose] [--output report.json --format json]
//
// fields - generate starting column metadata from a Parquet table:
//
//	ripval fields catalog.parquet [--no-web] [--format yaml]
//
// Every command renders a terminal report; --output additionally writes the
// machine-readable result in the chosen format. Commands exit non-zero when
// validation finds a hard failure.
package cli
