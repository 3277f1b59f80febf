// Package parsers defines the contract between the conversion pipeline and
// the three format-specific parser collaborators. The parsers themselves live
// outside this module; they are consumed through the interfaces below and
// their results are validated once at this boundary so the extractor never
// inspects untrusted shapes.
package parsers

import (
	"eclabcli/pkg/contracts/domain"
)

// TextParser decodes an .mpt text file.
type TextParser interface {
	ParseText(path string) (*domain.TextResult, error)
}

// BinaryParser decodes an .mpr binary file.
type BinaryParser interface {
	ParseBinary(path string) (*domain.BinaryResult, error)
}

// SettingsParser decodes an .mps settings file, including the nested results
// of any technique runs found next to it.
type SettingsParser interface {
	ParseSettings(path string) (*domain.SettingsResult, error)
}

// Set aggregates the parser collaborators the pipeline runs with. A nil slot
// surfaces as a parser-unavailable error when a file of that format arrives.
type Set struct {
	Text     TextParser
	Binary   BinaryParser
	Settings SettingsParser
}

// Default is the process-wide parser set. Parser implementations register
// themselves here before the CLI runs, typically from an init function in the
// package that links them in.
var Default Set
