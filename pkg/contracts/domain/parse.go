package domain

// Value is a single scalar cell value as produced by a parser.
// It holds a float64, an int64, or a string; nil marks an absent cell.
type Value any

// Field is one named value inside a Record. Records keep their fields as an
// ordered slice rather than a map so the acquisition column order of the
// source file survives conversion.
type Field struct {
	Name  string
	Value Value
}

// Record represents one datapoint row parsed from an instrument file.
type Record []Field

// Get returns the value of the named field and whether it is present.
func (r Record) Get(name string) (Value, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Names returns the field names in record order.
func (r Record) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// ParseResult is the tagged union over the three EC-Lab file format families.
// Exactly TextResult, BinaryResult and SettingsResult implement it; the
// extractor switches exhaustively over these three.
type ParseResult interface {
	isParseResult()
}

// TextResult holds the parsed content of an .mpt text file.
type TextResult struct {
	Metadata   map[string]Value
	Datapoints []Record
}

// BinaryResult holds the parsed content of an .mpr binary file as an ordered
// sequence of tagged modules. Exactly one module carries the datapoints.
type BinaryResult struct {
	Modules []Module `validate:"required,min=1"`
}

// Module is one self-contained section of a binary file. Header/settings
// modules leave Datapoints nil; the data module carries the rows.
type Module struct {
	ID         string `validate:"required"`
	Header     map[string]Value
	Datapoints []Record
}

// DataModule returns the module holding the datapoints, or nil when the file
// has none.
func (r *BinaryResult) DataModule() *Module {
	for i := range r.Modules {
		if r.Modules[i].Datapoints != nil {
			return &r.Modules[i]
		}
	}
	return nil
}

// SettingsResult holds the parsed content of an .mps settings file. Technique
// order equals declaration order in the source file.
type SettingsResult struct {
	Settings   map[string]Value
	Techniques []Technique `validate:"dive"`
}

// Technique is one independently parameterized experimental procedure declared
// in a settings file. Data is nil for techniques that were never executed or
// whose runs were not found next to the settings file.
type Technique struct {
	Index int `validate:"min=0"`
	Data  *TechniqueData
}

// TechniqueData references the parsed run results found for a technique. Both
// encodings of the same run may be physically present; extraction prefers the
// text one.
type TechniqueData struct {
	Text   *TextResult
	Binary *BinaryResult
}

func (*TextResult) isParseResult()     {}
func (*BinaryResult) isParseResult()   {}
func (*SettingsResult) isParseResult() {}
