/*
Copyright © 2025 WAVES Survey Collaboration
SPDX-License-Identifier: MIT
*/
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/waves-survey/ripval/pkg/report"
	"github.com/waves-survey/ripval/pkg/serializer"
	"github.com/waves-survey/ripval/pkg/vocab"
)

// outputFlags are shared by every validating command.
func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "show passing checks in the terminal report",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable ANSI colors in the terminal report",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "write the machine-readable result to this path ('-' for stdout)",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: "json",
			Usage: "machine-readable output format (json, yaml)",
		},
	}
}

// vocabFlags allow overriding the embedded curated vocabulary.
func vocabFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "protected-words",
			Usage: "path to a protected words YAML overriding the curated list",
		},
		&cli.StringFlag{
			Name:  "filter-names",
			Usage: "path to a filter names YAML overriding the curated list",
		},
		&cli.StringFlag{
			Name:  "exception-words",
			Usage: "path to an exception words YAML overriding the curated list",
		},
	}
}

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: json, yaml", outFormat)
	}
	return outFormat, nil
}

// loadVocabulary returns the override vocabulary when all three paths are
// given, and the embedded curated one otherwise.
func loadVocabulary(cmd *cli.Command) (*vocab.Vocabulary, error) {
	protected := cmd.String("protected-words")
	filters := cmd.String("filter-names")
	exceptions := cmd.String("exception-words")
	if protected != "" || filters != "" || exceptions != "" {
		if protected == "" || filters == "" || exceptions == "" {
			return nil, fmt.Errorf("vocabulary overrides require --protected-words, --filter-names and --exception-words together")
		}
		return vocab.Load(protected, filters, exceptions)
	}
	return vocab.Default()
}

// newPrinter builds the terminal report printer from CLI flags.
func newPrinter(cmd *cli.Command) *report.Printer {
	return report.NewPrinter(os.Stdout,
		report.WithVerbose(cmd.Bool("verbose")),
		report.WithColor(!cmd.Bool("no-color")),
	)
}

// writeResult serializes the machine-readable result when --output is set.
func writeResult(cmd *cli.Command, result any) error {
	path := cmd.String("output")
	if path == "" {
		return nil
	}
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}
	return serializer.NewFileWriterOrStdout(format, path).Serialize(result)
}
