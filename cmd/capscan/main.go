// Package main provides the CLI entry point for capscan.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/knakagawa/capscan-go/pkg/capscan"
	"github.com/knakagawa/capscan-go/pkg/capscan/grid"
	"github.com/knakagawa/capscan-go/pkg/capscan/models"
	"github.com/knakagawa/capscan-go/pkg/capscan/output"
	"github.com/knakagawa/capscan-go/pkg/capscan/parser"
)

var (
	outputPath string
	pretty     bool
	trace      bool
	tablesDir  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "capscan [input.xlsx|input.xls]",
		Short: "Extract ALL-CAPS-headed tables from Excel files",
		Long: `capscan locates tables marked by ALL-CAPS header cells inside
free-form spreadsheet grids and outputs them as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "Print rejected header candidates to stderr")
	rootCmd.Flags().StringVar(&tablesDir, "tables-dir", "", "Directory for per-table output files")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	opts := capscan.DefaultOptions()
	if trace {
		opts.Trace = &parser.Trace{}
	}

	wb, err := capscan.Extract(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if opts.Trace != nil {
		for _, rej := range opts.Trace.Rejections {
			fmt.Fprintf(os.Stderr, "rejected candidate %s!%s%d: %s\n",
				rej.Sheet, grid.ColumnName(rej.Col), rej.Row, rej.Rule)
		}
	}

	jsonData, err := output.ToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if tablesDir == "" {
		fmt.Println(string(jsonData))
	}

	if tablesDir != "" {
		if err := writeTableFiles(wb, tablesDir); err != nil {
			return fmt.Errorf("failed to write table files: %w", err)
		}
	}

	return nil
}

func writeTableFiles(wb *models.Workbook, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, name := range wb.TableNames() {
		table := wb.Tables[name]
		jsonData, err := output.TableToJSON(&table, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
