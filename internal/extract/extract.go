// Package extract converts parsed EC-Lab results into the uniform Table
// representation. It is the seam between the format-specific parser
// collaborators and the format-agnostic writers.
package extract

import (
	"context"
	"log/slog"

	"eclabcli/internal/dispatch"
	apperrors "eclabcli/internal/errors"
	"eclabcli/internal/infrastructure"
	"eclabcli/internal/parsers"
	"eclabcli/pkg/contracts/domain"
)

// Extractor routes a file to its parser and flattens the result into one or
// more Tables. Extractors are stateless; every Extract call is independent
// and reentrant.
type Extractor struct {
	parsers   parsers.Set
	validator *parsers.Validator
}

// New creates an extractor over the given parser set.
func New(set parsers.Set) *Extractor {
	return &Extractor{
		parsers:   set,
		validator: parsers.NewValidator(),
	}
}

// Extract parses the file at path and returns its data as an ordered sequence
// of Tables. Text and binary files yield exactly one Table. Settings files
// yield one Table per technique that has run data, in declaration order;
// techniques without data contribute nothing, so the sequence may be shorter
// than the technique count. Parser errors are propagated unmodified.
func (e *Extractor) Extract(ctx context.Context, path string) ([]domain.Table, error) {
	logger := infrastructure.LoggerFromContext(ctx)

	format, err := dispatch.Route(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("routed input file",
		slog.String("path", path),
		slog.String("format", format.String()))

	switch format {
	case dispatch.FormatText:
		result, err := e.parseText(path)
		if err != nil {
			return nil, err
		}
		return []domain.Table{domain.NewTable(result.Datapoints)}, nil

	case dispatch.FormatBinary:
		result, err := e.parseBinary(path)
		if err != nil {
			return nil, err
		}
		return []domain.Table{domain.NewTable(result.DataModule().Datapoints)}, nil

	case dispatch.FormatSettings:
		result, err := e.parseSettings(path)
		if err != nil {
			return nil, err
		}
		return e.flattenTechniques(logger, result), nil

	default:
		return nil, apperrors.UnsupportedFormat(path)
	}
}

// flattenTechniques builds one Table per technique with run data. When both
// encodings of a run exist the text one wins: text exports carry the full
// column set EC-Lab computes at export time, the binary files only the raw
// acquisition channels.
func (e *Extractor) flattenTechniques(logger *slog.Logger, result *domain.SettingsResult) []domain.Table {
	tables := make([]domain.Table, 0, len(result.Techniques))
	for _, tech := range result.Techniques {
		switch {
		case tech.Data == nil:
			logger.Debug("skipping technique without run data",
				slog.Int("technique", tech.Index))
		case tech.Data.Text != nil:
			tables = append(tables, domain.NewTable(tech.Data.Text.Datapoints))
		default:
			tables = append(tables, domain.NewTable(tech.Data.Binary.DataModule().Datapoints))
		}
	}
	logger.Info("flattened settings file",
		slog.Int("techniques", len(result.Techniques)),
		slog.Int("tables", len(tables)))
	return tables
}

func (e *Extractor) parseText(path string) (*domain.TextResult, error) {
	if e.parsers.Text == nil {
		return nil, apperrors.ParserUnavailable(dispatch.FormatText.String())
	}
	result, err := e.parsers.Text.ParseText(path)
	if err != nil {
		return nil, err
	}
	if err := e.validator.ValidateResult(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Extractor) parseBinary(path string) (*domain.BinaryResult, error) {
	if e.parsers.Binary == nil {
		return nil, apperrors.ParserUnavailable(dispatch.FormatBinary.String())
	}
	result, err := e.parsers.Binary.ParseBinary(path)
	if err != nil {
		return nil, err
	}
	if err := e.validator.ValidateResult(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Extractor) parseSettings(path string) (*domain.SettingsResult, error) {
	if e.parsers.Settings == nil {
		return nil, apperrors.ParserUnavailable(dispatch.FormatSettings.String())
	}
	result, err := e.parsers.Settings.ParseSettings(path)
	if err != nil {
		return nil, err
	}
	if err := e.validator.ValidateResult(result); err != nil {
		return nil, err
	}
	return result, nil
}
