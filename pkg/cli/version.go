package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/waves-survey/ripval/pkg/version"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the ripval version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Println(version.String())
			return nil
		},
	}
}
