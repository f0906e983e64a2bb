/*
Copyright © 2025 WAVES Survey Collaboration
SPDX-License-Identifier: MIT
*/
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/waves-survey/ripval/pkg/cli"
)

func main() {
	if err := cli.New().Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
