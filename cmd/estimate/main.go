// Package main provides the CLI entry point for the estimate importer.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lpfevents/catering-mvp/pkg/estimate"
)

var (
	outputPath string
	pretty     bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "estimate [input.xlsx]",
		Short: "Extract event records from estimate workbooks",
		Long: `estimate recovers budget lines, payments, menu items, tasks and rider
documents from hand-maintained event-estimate workbooks and outputs JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log per-collection counts to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)

	wb, err := estimate.Open(args[0])
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}

	res := estimate.Parse(wb)
	logger.Info("workbook parsed",
		"sheets", len(wb.SheetNames()),
		"budget_items", len(res.BudgetItems),
		"payments", len(res.Payments),
		"menu_items", len(res.MenuItems),
		"tasks", len(res.Tasks),
		"rider_docs", len(res.RiderDocs),
	)

	var data []byte
	if pretty {
		data, err = json.MarshalIndent(res, "", "  ")
	} else {
		data, err = json.Marshal(res)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(data))
	return nil
}

// newLogger follows the text-handler-on-stderr convention; quiet runs
// only surface warnings.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
