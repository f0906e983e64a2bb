/*
Copyright © 2025 WAVES Survey Collaboration
SPDX-License-Identifier: MIT
*/
package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/waves-survey/ripval/pkg/serializer"
)

func TestNewCommandStructure(t *testing.T) {
	root := New()

	if root.Name != "ripval" {
		t.Errorf("Name = %q, want ripval", root.Name)
	}
	if root.Usage == "" {
		t.Error("Usage should not be empty")
	}

	want := []string{"parquet", "maml", "both", "fields", "version"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands {
			if sub.Name == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q not found", name)
		}
	}
}

func TestParquetCmd_CommandStructure(t *testing.T) {
	cmd := parquetCmd()

	if cmd.Name != "parquet" {
		t.Errorf("Name = %v, want parquet", cmd.Name)
	}
	if cmd.Usage == "" {
		t.Error("Usage should not be empty")
	}

	requiredFlags := []string{"verbose", "output", "format", "skip-columns", "protected-words", "filter-names", "exception-words"}
	for _, flagName := range requiredFlags {
		found := false
		for _, flag := range cmd.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required flag %q not found", flagName)
		}
	}

	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}
}

func TestBothCmd_CommandStructure(t *testing.T) {
	cmd := bothCmd()

	if cmd.Name != "both" {
		t.Errorf("Name = %v, want both", cmd.Name)
	}
	if cmd.Description == "" {
		t.Error("Description should not be empty")
	}
	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}
}

func TestFieldsCmd_CommandStructure(t *testing.T) {
	cmd := fieldsCmd()

	requiredFlags := []string{"no-web", "output", "format"}
	for _, flagName := range requiredFlags {
		found := false
		for _, flag := range cmd.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required flag %q not found", flagName)
		}
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		want      serializer.Format
		wantError bool
	}{
		{"default json", []string{"cmd"}, serializer.FormatJSON, false},
		{"explicit yaml", []string{"cmd", "--format", "yaml"}, serializer.FormatYAML, false},
		{"unknown format", []string{"cmd", "--format", "xml"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got serializer.Format
			var gotErr error

			testCmd := &cli.Command{
				Name: "test",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: "json"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					got, gotErr = parseOutputFormat(cmd)
					return nil
				},
			}
			if err := testCmd.Run(context.Background(), tt.args); err != nil {
				t.Fatalf("Run: %v", err)
			}

			if tt.wantError {
				if gotErr == nil {
					t.Error("expected error but got nil")
				} else if !strings.Contains(gotErr.Error(), "unknown output format") {
					t.Errorf("error = %v", gotErr)
				}
				return
			}
			if gotErr != nil {
				t.Fatalf("unexpected error: %v", gotErr)
			}
			if got != tt.want {
				t.Errorf("format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadVocabularyRequiresAllOverrides(t *testing.T) {
	testCmd := &cli.Command{
		Name:  "test",
		Flags: vocabFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := loadVocabulary(cmd)
			return err
		},
	}

	err := testCmd.Run(context.Background(), []string{"cmd", "--protected-words", "p.yaml"})
	if err == nil || !strings.Contains(err.Error(), "together") {
		t.Errorf("partial overrides should error, got %v", err)
	}

	if err := testCmd.Run(context.Background(), []string{"cmd"}); err != nil {
		t.Errorf("no overrides should fall back to the embedded vocabulary: %v", err)
	}
}

func hasName(flag cli.Flag, name string) bool {
	if flag == nil {
		return false
	}
	for _, n := range flag.Names() {
		if n == name {
			return true
		}
	}
	return false
}
