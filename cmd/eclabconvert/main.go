// eclabconvert converts EC-Lab instrument files (.mpt/.mpr/.mps) into CSV or
// XLSX tables.
//
// Subcommands:
//   - convert: parse one file and write its data in the requested format
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"eclabcli/internal/config"
	"eclabcli/internal/exporter"
	"eclabcli/internal/extract"
	"eclabcli/internal/infrastructure"
	"eclabcli/internal/parsers"
)

var rootCmd = &cobra.Command{
	Use:   "eclabconvert",
	Short: "eclabconvert — EC-Lab file to CSV/XLSX converter",
	Long:  "Converts BioLogic EC-Lab text, binary and settings files into tabular CSV or XLSX output.",
}

var outPath string

var convertCmd = &cobra.Command{
	Use:   "convert <file> <format>",
	Short: "Convert an EC-Lab file to csv or xlsx",
	Long: "Parses the given .mpt/.mpr/.mps file and writes its datapoints as a table. " +
		"Settings files yield one table per technique that has run data.",
	Args: validateConvertArgs,
	RunE: runConvertCmd,
}

// conversionStarted separates malformed invocations (exit 2) from conversion
// failures (exit 1) in main.
var conversionStarted bool

func init() {
	convertCmd.Flags().StringVar(&outPath, "out", "", "explicit output path (default: derived from the input path)")
	rootCmd.AddCommand(convertCmd)
}

func validateConvertArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return err
	}
	if args[1] != "csv" && args[1] != "xlsx" {
		return fmt.Errorf("invalid format %q: must be csv or xlsx", args[1])
	}
	return nil
}

func runConvertCmd(cmd *cobra.Command, args []string) error {
	conversionStarted = true
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return err
	}

	ctx := infrastructure.WithTraceID(cmd.Context(), uuid.NewString())
	logger.InfoContext(ctx, "starting conversion",
		slog.String("file", args[0]),
		slog.String("format", args[1]),
		slog.String("out", outPath))

	if err := runConvert(ctx, args[0], args[1], outPath, parsers.Default); err != nil {
		logger.ErrorContext(ctx, "conversion failed", slog.String("error", err.Error()))
		return err
	}
	logger.InfoContext(ctx, "conversion complete")
	return nil
}

// runConvert extracts the tables from file and writes them in the requested
// format. The parser set is injected so tests can run the full pipeline with
// fake collaborators.
func runConvert(ctx context.Context, file, format, out string, set parsers.Set) error {
	tables, err := extract.New(set).Extract(ctx, file)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		return exporter.NewCSVWriter().Write(ctx, tables, file, out)
	case "xlsx":
		return exporter.NewXLSXWriter().Write(ctx, tables, file, out)
	default:
		return fmt.Errorf("invalid format %q: must be csv or xlsx", format)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !conversionStarted {
			// Argument or flag parsing failed; cobra already printed usage.
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
