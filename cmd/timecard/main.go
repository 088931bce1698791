// Package main provides the CLI entry point for timecard.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ymizrahi/timecard"
	"github.com/ymizrahi/timecard/logging"
	"github.com/ymizrahi/timecard/tables"
	"github.com/ymizrahi/timecard/xlsx"
)

var (
	outputPath  string
	strategy    string
	columnsPath string
	summary     bool
	verbose     bool

	logBuffer *logging.BufferedLogHandler
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "timecard [input.pdf]",
		Short: "Convert Hebrew payroll timecard PDFs to Excel attendance sheets",
		Long: `timecard reads a scanned payroll timecard PDF, reconstructs its daily
attendance grid and writes an Excel workbook with one row per day plus a
per-month summary.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <input>_attendance.xlsx)")
	rootCmd.Flags().StringVar(&strategy, "strategy", "adaptive", "Column strategy: adaptive or fixed")
	rootCmd.Flags().StringVar(&columnsPath, "columns", "", "Column-ranges JSON for the fixed strategy (default: $TIMECARD_COLUMNS, then column_ranges.json)")
	rootCmd.Flags().BoolVar(&summary, "summary", true, "Include the monthly summary sheet")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log conversion diagnostics to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	if verbose {
		logBuffer = logging.NewBufferedLogHandler(nil)
		logging.SetLogger(slog.New(logBuffer))
		defer drainLogs(os.Stderr)
	}

	conv := timecard.Open(inputPath)
	switch strategy {
	case "adaptive":
	case "fixed":
		ranges, err := tables.LoadRanges(columnCandidates())
		if err != nil {
			return err
		}
		conv = conv.FixedRanges(ranges)
	default:
		return fmt.Errorf("invalid strategy: %s (must be adaptive or fixed)", strategy)
	}

	records, warnings, err := conv.Records()
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	out := outputPath
	if out == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		out = base + "_attendance.xlsx"
	}

	writer := &xlsx.Writer{Summary: summary}
	if err := writer.Save(records, out); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	fmt.Printf("wrote %d records to %s\n", len(records), out)
	return nil
}

// drainLogs writes the diagnostics captured during the run, successful or
// not, and clears the buffer.
func drainLogs(w io.Writer) {
	if logBuffer == nil || logBuffer.Len() == 0 {
		return
	}
	fmt.Fprint(w, logBuffer.String())
	logBuffer.Reset()
}

// columnCandidates resolves the ordered list of column-config paths: the
// explicit flag first, then the environment, then the working directory.
func columnCandidates() []string {
	var candidates []string
	if columnsPath != "" {
		candidates = append(candidates, columnsPath)
	}
	if env := os.Getenv("TIMECARD_COLUMNS"); env != "" {
		candidates = append(candidates, env)
	}
	return append(candidates, "column_ranges.json")
}
