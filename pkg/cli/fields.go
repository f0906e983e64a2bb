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
	"github.com/waves-survey/ripval/pkg/parquet"
	"github.com/waves-survey/ripval/pkg/serializer"
	"github.com/waves-survey/ripval/pkg/ucd"
)

func fieldsCmd() *cli.Command {
	return &cli.Command{
		Name:      "fields",
		Usage:     "Generate starting column metadata from a Parquet table",
		ArgsUsage: "FILE",
		Description: `Reads the observed schema and values of FILE and emits column
descriptors with inferred types, numeric bounds, and UCD and unit
suggestions from the curated vocabulary. Names the vocabulary does not
cover are looked up against the CDS ucd-finder service unless --no-web
is given.`,
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "no-web",
				Usage: "skip the CDS ucd-finder lookup for unknown names",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "write the descriptors to this path ('-' for stdout)",
				Value: serializer.StdoutURI,
			},
			&cli.StringFlag{
				Name:  "format",
				Value: "yaml",
				Usage: "output format (json, yaml)",
			},
		}, vocabFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("fields requires a FILE argument")
			}
			format, err := parseOutputFormat(cmd)
			if err != nil {
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

			guesser := ucd.New(v, ucd.WithWebLookup(!cmd.Bool("no-web")))
			cols, err := maml.FieldsFromDataset(ctx, file, v, guesser)
			if err != nil {
				return err
			}

			return serializer.NewFileWriterOrStdout(format, cmd.String("output")).Serialize(cols)
		},
	}
}
