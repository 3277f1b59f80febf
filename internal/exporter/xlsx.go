package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	apperrors "eclabcli/internal/errors"
	"eclabcli/internal/infrastructure"
	"eclabcli/pkg/contracts/domain"
)

// XLSXWriter serializes tables to a single XLSX workbook.
type XLSXWriter struct{}

// NewXLSXWriter creates an XLSX writer.
func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

// Write writes the tables extracted from sourcePath into one workbook at
// explicitPath when given, otherwise at the source path with its extension
// replaced by .xlsx.
//
// A single table keeps the default sheet name. Multiple tables get one sheet
// each, named by their zero-padded two-digit 1-based position ("01", "02", …)
// in table order. Numeric cells are written as numbers, not strings.
func (w *XLSXWriter) Write(ctx context.Context, tables []domain.Table, sourcePath, explicitPath string) error {
	logger := infrastructure.LoggerFromContext(ctx)

	target := explicitPath
	if target == "" {
		target = DerivePath(sourcePath, ".xlsx")
	}
	logger.Info("writing xlsx workbook",
		slog.String("path", target),
		slog.Int("tables", len(tables)))

	f := excelize.NewFile()
	defer f.Close()

	if len(tables) == 1 {
		if err := w.writeSheet(f, f.GetSheetName(0), tables[0]); err != nil {
			return apperrors.WriteFailed(target, err)
		}
	} else {
		for i, table := range tables {
			name := fmt.Sprintf("%02d", i+1)
			if i == 0 {
				if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
					return apperrors.WriteFailed(target, err)
				}
			} else if _, err := f.NewSheet(name); err != nil {
				return apperrors.WriteFailed(target, err)
			}
			if err := w.writeSheet(f, name, table); err != nil {
				return apperrors.WriteFailed(target, err)
			}
		}
	}

	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.WriteFailed(target, err)
		}
	}
	if err := f.SaveAs(target); err != nil {
		return apperrors.WriteFailed(target, err)
	}
	return nil
}

// writeSheet fills one sheet with a header row and the table rows. No
// row-index column is emitted.
func (w *XLSXWriter) writeSheet(f *excelize.File, sheet string, table domain.Table) error {
	header := make([]any, len(table.Columns))
	for i, name := range table.Columns {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, values := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := make([]any, len(values))
		for j, v := range values {
			row[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
