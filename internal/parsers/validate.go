package parsers

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "eclabcli/internal/errors"
	"eclabcli/pkg/contracts/domain"
)

// Validator checks parse results once at the collaborator boundary. Struct
// tags cover the field-level rules; the structural rules a tag cannot express
// (exactly one data module, technique data referencing at least one run) are
// checked explicitly.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a boundary validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// ValidateResult validates a parse result of any format family. Nested
// results inside a settings result are validated recursively, so downstream
// code can rely on every result it sees having passed through here.
func (v *Validator) ValidateResult(result domain.ParseResult) error {
	switch r := result.(type) {
	case *domain.TextResult:
		return v.validateText(r)
	case *domain.BinaryResult:
		return v.validateBinary(r)
	case *domain.SettingsResult:
		return v.validateSettings(r)
	default:
		return apperrors.InvalidResult("unknown", fmt.Errorf("unexpected result type %T", result))
	}
}

func (v *Validator) validateText(r *domain.TextResult) error {
	if r == nil || r.Datapoints == nil {
		return apperrors.InvalidResult("text", fmt.Errorf("missing datapoints"))
	}
	if err := v.validate.Struct(r); err != nil {
		return apperrors.InvalidResult("text", err)
	}
	return nil
}

func (v *Validator) validateBinary(r *domain.BinaryResult) error {
	if r == nil {
		return apperrors.InvalidResult("binary", fmt.Errorf("missing result"))
	}
	if err := v.validate.Struct(r); err != nil {
		return apperrors.InvalidResult("binary", err)
	}
	dataModules := 0
	for _, m := range r.Modules {
		if m.Datapoints != nil {
			dataModules++
		}
	}
	if dataModules != 1 {
		return apperrors.InvalidResult("binary",
			fmt.Errorf("expected exactly one data module, found %d", dataModules))
	}
	return nil
}

func (v *Validator) validateSettings(r *domain.SettingsResult) error {
	if r == nil {
		return apperrors.InvalidResult("settings", fmt.Errorf("missing result"))
	}
	if err := v.validate.Struct(r); err != nil {
		return apperrors.InvalidResult("settings", err)
	}
	for _, tech := range r.Techniques {
		if tech.Data == nil {
			continue
		}
		if tech.Data.Text == nil && tech.Data.Binary == nil {
			return apperrors.InvalidResult("settings",
				fmt.Errorf("technique %d data references no run", tech.Index))
		}
		if tech.Data.Text != nil {
			if err := v.validateText(tech.Data.Text); err != nil {
				return fmt.Errorf("technique %d: %w", tech.Index, err)
			}
		}
		if tech.Data.Binary != nil {
			if err := v.validateBinary(tech.Data.Binary); err != nil {
				return fmt.Errorf("technique %d: %w", tech.Index, err)
			}
		}
	}
	return nil
}
