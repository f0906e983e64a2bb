/*
Copyright © 2025 WAVES Survey Collaboration
SPDX-License-Identifier: MIT
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/waves-survey/ripval/pkg/maml"
)

func mamlCmd() *cli.Command {
	return &cli.Command{
		Name:      "maml",
		Usage:     "Validate a MAML metadata document",
		ArgsUsage: "FILE",
		Flags:     outputFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("maml requires a FILE argument")
			}
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			doc, err := maml.Load(path)
			if err != nil {
				return err
			}
			result := doc.Validate()

			printer := newPrinter(cmd)
			printer.Header(fmt.Sprintf("Checking metadata for table: %s", result.Table))
			printer.MamlReport(result)
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
