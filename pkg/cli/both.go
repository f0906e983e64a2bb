/*
Copyright © 2025 WAVES Survey Collaboration
SPDX-License-Identifier: MIT
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/waves-survey/ripval/pkg/dataset"
	"github.com/waves-survey/ripval/pkg/maml"
	"github.com/waves-survey/ripval/pkg/parquet"
	"github.com/waves-survey/ripval/pkg/validate"
	"github.com/waves-survey/ripval/pkg/version"
)

// combinedResult bundles the three validation outcomes of a table pair.
type combinedResult struct {
	Data        *validate.DataResult        `json:"data" yaml:"data"`
	Metadata    maml.Report                 `json:"metadata" yaml:"metadata"`
	Consistency *validate.ConsistencyResult `json:"consistency" yaml:"consistency"`
	Valid       bool                        `json:"valid" yaml:"valid"`
}

func bothCmd() *cli.Command {
	return &cli.Command{
		Name:      "both",
		Usage:     "Validate a Parquet/MAML pair and their consistency",
		ArgsUsage: "BASENAME",
		Description: `Validates BASENAME.parquet against the naming standard, BASENAME.maml
against the metadata standard, and reconciles the observed schema with the
declared one.`,
		Flags: append(outputFlags(), append(vocabFlags(),
			&cli.StringSliceFlag{
				Name:  "skip-columns",
				Usage: "column name patterns to skip (supports '*' wildcards)",
			})...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			base := cmd.Args().First()
			if base == "" {
				return fmt.Errorf("both requires a BASENAME argument")
			}
			base = strings.TrimSuffix(strings.TrimSuffix(base, ".parquet"), ".maml")
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			v, err := loadVocabulary(cmd)
			if err != nil {
				return err
			}

			file, err := parquet.Open(base + ".parquet")
			if err != nil {
				return err
			}
			defer func() { _ = file.Close() }()

			doc, err := maml.Load(base + ".maml")
			if err != nil {
				return err
			}

			ds := dataset.Skip(file, cmd.StringSlice("skip-columns"))
			runner := validate.New(v, validate.WithVersion(version.Version))

			data, err := runner.ValidateData(ctx, ds)
			if err != nil {
				return err
			}
			metadata := doc.Validate()
			cons, err := runner.ValidateConsistency(ctx, ds, doc.Fields)
			if err != nil {
				return err
			}

			result := combinedResult{
				Data:        data,
				Metadata:    metadata,
				Consistency: cons,
				Valid:       data.Valid && metadata.Valid && cons.Valid,
			}

			printer := newPrinter(cmd)
			printDataResult(printer, data)
			printer.Header(fmt.Sprintf("Checking metadata for table: %s", metadata.Table))
			printer.MamlReport(metadata)
			printer.Header(fmt.Sprintf("Checking consistency for table: %s", cons.Table))
			for _, entry := range cons.Entries {
				printer.ConsistencyEntry(entry)
			}
			printer.Rule()

			if err := writeResult(cmd, result); err != nil {
				return err
			}
			if !result.Valid {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}
