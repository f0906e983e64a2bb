/*
Copyright © 2025 WAVES Survey Collaboration
SPDX-License-Identifier: MIT
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/waves-survey/ripval/pkg/dataset"
	"github.com/waves-survey/ripval/pkg/parquet"
	"github.com/waves-survey/ripval/pkg/report"
	"github.com/waves-survey/ripval/pkg/validate"
	"github.com/waves-survey/ripval/pkg/version"
)

func parquetCmd() *cli.Command {
	return &cli.Command{
		Name:      "parquet",
		Usage:     "Validate a Parquet table's column names and values",
		ArgsUsage: "FILE",
		Flags: append(outputFlags(), append(vocabFlags(),
			&cli.StringSliceFlag{
				Name:  "skip-columns",
				Usage: "column name patterns to skip (supports '*' wildcards)",
			})...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("parquet requires a FILE argument")
			}
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			v, err := loadVocabulary(cmd)
			if err != nil {
				return err
			}

			file, err := parquet.Open(path)
			if err != nil {
				return err
			}
			defer func() { _ = file.Close() }()

			ds := dataset.Skip(file, cmd.StringSlice("skip-columns"))

			runner := validate.New(v, validate.WithVersion(version.Version))
			result, err := runner.ValidateData(ctx, ds)
			if err != nil {
				return err
			}

			printer := newPrinter(cmd)
			printDataResult(printer, result)

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

func printDataResult(p *report.Printer, result *validate.DataResult) {
	p.Header(fmt.Sprintf("Checking data for table: %s", result.Table))
	for _, column := range result.Columns {
		p.ColumnReport(column)
	}
	p.TableReport(result.TableReport)
	p.Rule()
}
