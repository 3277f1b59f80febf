// Package dispatch routes an input file to its format family by extension.
package dispatch

import (
	"path/filepath"

	apperrors "eclabcli/internal/errors"
)

// Format identifies one of the three supported EC-Lab file format families.
// The set is closed; adding a format means extending the enum, the extension
// table and every switch over Format.
type Format int

const (
	// FormatText is the .mpt plain-text export format.
	FormatText Format = iota
	// FormatBinary is the .mpr binary module format.
	FormatBinary
	// FormatSettings is the .mps settings format describing one or more
	// techniques.
	FormatSettings
)

// String returns the format name for logs and error messages.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatBinary:
		return "binary"
	case FormatSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Extension matching is case-sensitive; EC-Lab writes lowercase extensions
// and the original tool never matched variants.
var formatsByExt = map[string]Format{
	".mpt": FormatText,
	".mpr": FormatBinary,
	".mps": FormatSettings,
}

// Route maps a file path to its format family. It is a pure function of the
// path string: no filesystem access, no content sniffing. Unknown extensions
// fail with an unsupported-format error.
func Route(path string) (Format, error) {
	ext := filepath.Ext(path)
	format, ok := formatsByExt[ext]
	if !ok {
		return 0, apperrors.UnsupportedFormat(ext)
	}
	return format, nil
}
