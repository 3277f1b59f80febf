package exporter

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DerivePath strips the extension from path and appends ext. It is a pure
// function of its inputs: no filesystem access, no hidden state.
func DerivePath(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// DeriveIndexedPath is DerivePath with a zero-padded two-digit index inserted
// before the extension, e.g. index 1 -> "run_01.csv". Indexing is 1-based,
// following the order tables appear in the extracted sequence.
func DeriveIndexedPath(path string, index int, ext string) string {
	return DerivePath(path, fmt.Sprintf("_%02d%s", index, ext))
}
