package domain

// Table is the uniform tabular representation every format family converges
// to: one shared schema and the rows in acquisition order.
//
// Schema-merge policy: Columns is the union of field names across all source
// records in first-seen order, so the first record's order wins for the fields
// it carries and later-only fields are appended. Rows are aligned to Columns;
// a field absent from a record yields a nil cell, which serializes as an
// empty CSV field or an empty spreadsheet cell.
type Table struct {
	Columns []string
	Rows    [][]Value
}

// NewTable builds a Table from parsed records, applying the schema-merge
// policy above. An empty record set yields a table with no columns.
func NewTable(records []Record) Table {
	var columns []string
	index := make(map[string]int)
	for _, rec := range records {
		for _, f := range rec {
			if _, seen := index[f.Name]; !seen {
				index[f.Name] = len(columns)
				columns = append(columns, f.Name)
			}
		}
	}

	rows := make([][]Value, len(records))
	for i, rec := range records {
		row := make([]Value, len(columns))
		for _, f := range rec {
			row[index[f.Name]] = f.Value
		}
		rows[i] = row
	}

	return Table{Columns: columns, Rows: rows}
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}
