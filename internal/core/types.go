package core

// Delimiter identifies the field separator detected (or forced) for a file.
type Delimiter string

const (
	DelimiterTab       Delimiter = "tab"
	DelimiterSemicolon Delimiter = "semicolon"
	DelimiterComma     Delimiter = "comma"
)

// Rune returns the literal separator character for tokenizing.
func (d Delimiter) Rune() rune {
	switch d {
	case DelimiterTab:
		return '\t'
	case DelimiterSemicolon:
		return ';'
	default:
		return ','
	}
}

// String returns the wire name used in API requests and responses.
func (d Delimiter) String() string { return string(d) }

// DecimalSeparator identifies which character marks the decimal point
// in numeric cells.
type DecimalSeparator string

const (
	DecimalDot   DecimalSeparator = "dot"
	DecimalComma DecimalSeparator = "comma"
)

// ColumnType is the classification assigned to a column after conversion.
type ColumnType string

const (
	TypeNumeric ColumnType = "numeric"
	TypeDate    ColumnType = "date"
	TypeString  ColumnType = "string"
)

// FormatProfile records every format decision made while parsing a file.
// It is returned with successful parses and attached to terminal parse
// errors so clients can see how far detection got before failing.
type FormatProfile struct {
	Delimiter           Delimiter        `json:"delimiter"`
	DecimalSeparator    DecimalSeparator `json:"decimalSeparator"`
	HasHeader           bool             `json:"hasHeader"`
	HeaderFromComment   bool             `json:"headerFromComment"`
	CommentLinesSkipped int              `json:"commentLinesSkipped"`
}

// ColumnDescriptor describes one column of a parsed table.
type ColumnDescriptor struct {
	Name         string     `json:"name"`
	Index        int        `json:"index"`
	Type         ColumnType `json:"type"`
	NonNullCount int        `json:"nonNullCount"`
	NumericCount int        `json:"numericCount"`
}

// Warning flags a non-fatal data quality issue found during parsing.
// Column is -1 for warnings that apply to the whole table.
type Warning struct {
	Code    string `json:"code"`
	Column  int    `json:"column"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

// Warning codes. Warnings never abort a parse; they ride along with the
// result so the client can surface them next to the plotted data.
const (
	WarnRaggedRows      = "RAGGED_ROWS"
	WarnMissingValues   = "MISSING_VALUES"
	WarnNonNumericCells = "NON_NUMERIC_VALUES"
	WarnNoNumericColumn = "NO_NUMERIC_COLUMN"
)

// Metadata carries identifying information about a parse operation.
type Metadata struct {
	ParseID     string `json:"parseId"`
	SourceName  string `json:"sourceName,omitempty"`
	RowCount    int    `json:"rowCount"`
	ColumnCount int    `json:"columnCount"`
	DroppedRows int    `json:"droppedRows"`
}

// ParsedTable is the complete result of a successful parse: the resolved
// format, typed columns, converted rows, and any warnings gathered along
// the way. Cell values are float64, string, or nil (missing).
type ParsedTable struct {
	Profile  FormatProfile      `json:"profile"`
	Columns  []ColumnDescriptor `json:"columns"`
	Rows     [][]any            `json:"rows"`
	Warnings []Warning          `json:"warnings"`
	Metadata Metadata           `json:"metadata"`
}

// Preview returns up to n leading rows without copying cell data. The
// returned slice shares backing storage with t.Rows.
func (t *ParsedTable) Preview(n int) [][]any {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}

// Options carries caller overrides for format detection. A nil field
// means "detect automatically"; a set field bypasses the corresponding
// detector entirely.
type Options struct {
	Delimiter        *Delimiter
	DecimalSeparator *DecimalSeparator
	HasHeader        *bool
	SourceName       string
}
