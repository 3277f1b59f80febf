package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversionErrorMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		matches  bool
	}{
		{
			name:     "unsupported format matches by code",
			err:      UnsupportedFormat(".txt"),
			sentinel: ErrUnsupportedFormat,
			matches:  true,
		},
		{
			name:     "different codes do not match",
			err:      UnsupportedFormat(".txt"),
			sentinel: ErrWriteFailed,
			matches:  false,
		},
		{
			name:     "wrapped validation error matches sentinel",
			err:      InvalidResult("binary", stderrors.New("no data module")),
			sentinel: ErrInvalidResult,
			matches:  true,
		},
		{
			name:     "matches through further wrapping",
			err:      fmt.Errorf("convert: %w", ParserUnavailable("text")),
			sentinel: ErrParserUnavailable,
			matches:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, stderrors.Is(tt.err, tt.sentinel))
		})
	}
}

func TestCausePropagation(t *testing.T) {
	cause := fs.ErrPermission
	err := WriteFailed("out.csv", cause)

	// The filesystem error must stay reachable, not be replaced.
	assert.True(t, stderrors.Is(err, fs.ErrPermission))
	assert.Contains(t, err.Error(), "out.csv")

	var convErr *ConversionError
	assert.True(t, stderrors.As(err, &convErr))
	assert.Equal(t, CodeWriteFailed, convErr.Code)
}

func TestUnsupportedFormatMessages(t *testing.T) {
	assert.Contains(t, UnsupportedFormat(".xls").Error(), ".xls")
	assert.Contains(t, UnsupportedFormat("").Error(), "missing extension")
}
