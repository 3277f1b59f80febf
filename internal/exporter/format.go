package exporter

import (
	"fmt"
	"strconv"

	"eclabcli/pkg/contracts/domain"
)

// floatPrecision is the fixed number of fractional digits for float cells in
// CSV output. Matches the precision EC-Lab data is exported with, so values
// round-trip through the text representation.
const floatPrecision = 15

// formatCell renders a scalar cell value for CSV output. Absent cells (nil)
// render as empty fields.
func formatCell(v domain.Value) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(x, 'f', floatPrecision, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
