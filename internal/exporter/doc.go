// Package exporter serializes extracted Tables to CSV and XLSX files.
//
// Three concerns live here:
//
// Path derivation: deterministic output file names computed from the source
// path, with a zero-padded two-digit index variant for multi-table output.
//
// CSVWriter: one CSV file per table, header row from the table schema, floats
// rendered with exactly 15 fractional digits, no row-index column.
//
// XLSXWriter: one workbook for all tables, one sheet per table named by its
// two-digit 1-based position when there is more than one.
package exporter
