package exporter

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "eclabcli/internal/errors"
	"eclabcli/internal/infrastructure"
	"eclabcli/pkg/contracts/domain"
)

// CSVWriter serializes tables to CSV files.
type CSVWriter struct{}

// NewCSVWriter creates a CSV writer.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// Write writes the tables extracted from sourcePath.
//
// A single table goes to explicitPath when given, otherwise to the source
// path with its extension replaced by .csv. Multiple tables each go to an
// indexed path derived from one base: explicitPath when given, otherwise the
// source path. The explicit path fully replaces the source-derived base, so
// exactly one file is written per table.
func (w *CSVWriter) Write(ctx context.Context, tables []domain.Table, sourcePath, explicitPath string) error {
	logger := infrastructure.LoggerFromContext(ctx)

	if len(tables) == 1 {
		target := explicitPath
		if target == "" {
			target = DerivePath(sourcePath, ".csv")
		}
		return w.writeFile(logger, target, tables[0])
	}

	base := sourcePath
	if explicitPath != "" {
		base = explicitPath
	}
	for i, table := range tables {
		target := DeriveIndexedPath(base, i+1, ".csv")
		if err := w.writeFile(logger, target, table); err != nil {
			return err
		}
	}
	return nil
}

// writeFile writes one table to one CSV file. The file handle is released
// unconditionally, including on write errors.
func (w *CSVWriter) writeFile(logger *slog.Logger, path string, table domain.Table) error {
	logger.Info("writing csv file",
		slog.String("path", path),
		slog.Int("rows", table.Len()),
		slog.Int("columns", len(table.Columns)))

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.WriteFailed(path, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.WriteFailed(path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.Columns); err != nil {
		return apperrors.WriteFailed(path, err)
	}

	row := make([]string, len(table.Columns))
	for _, values := range table.Rows {
		for i, v := range values {
			row[i] = formatCell(v)
		}
		if err := writer.Write(row); err != nil {
			return apperrors.WriteFailed(path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.WriteFailed(path, err)
	}
	if err := file.Close(); err != nil {
		return apperrors.WriteFailed(path, err)
	}
	return nil
}
