package cli

import (
	"github.com/urfave/cli/v3"
)

// New builds the root ripval command.
func New() *cli.Command {
	return &cli.Command{
		Name:  "ripval",
		Usage: "Validate WAVES tabular datasets against the survey naming and metadata standards",
		Description: `ripval checks that a table's column names follow the survey naming
standard, that its values respect the fixed domain conventions, and that
the observed Parquet schema is consistent with its declared MAML metadata.`,
		Commands: []*cli.Command{
			parquetCmd(),
			mamlCmd(),
			bothCmd(),
			fieldsCmd(),
			versionCmd(),
		},
	}
}
