package core

import (
	"math"
	"regexp"
	"time"
)

// Classification thresholds. A column needs a strong numeric majority to
// plot on a value axis; dates get a slightly looser bar since date
// columns often carry a few free-text cells.
const (
	numericTypeThreshold = 0.90
	dateTypeThreshold    = 0.80
)

// datePatterns shape-match common date notations. A cell must both match
// a pattern and survive a calendar parse to count as a date, so "13/45/99"
// does not slip through on shape alone.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}(:\d{2})?(Z|[+-]\d{2}:?\d{2})?$`),
	regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`),
	regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{2,4}$`),
}

// dateLayouts are tried in order after a pattern match. Dot-separated
// layouts are intentionally absent: dd.mm.yyyy is ambiguous with
// European thousands notation, so those cells classify as strings.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"01/02/06",
}

// ClassifyColumns assigns a type to every column from its converted
// cells. Numeric wins first (at least 90% of non-null cells are finite
// numbers), then date (at least 80% of non-null cells parse as calendar
// dates), otherwise string. Null cells never count against a column; a
// column of only nulls is a string column.
func ClassifyColumns(names []string, rows [][]any) []ColumnDescriptor {
	cols := make([]ColumnDescriptor, len(names))
	for i, name := range names {
		cols[i] = ColumnDescriptor{Name: name, Index: i, Type: TypeString}
	}

	for i := range cols {
		nonNull, numeric, date := 0, 0, 0
		for _, row := range rows {
			if i >= len(row) || row[i] == nil {
				continue
			}
			nonNull++
			switch v := row[i].(type) {
			case float64:
				if !math.IsInf(v, 0) {
					numeric++
				}
			case string:
				if isDateCell(v) {
					date++
				}
			}
		}

		cols[i].NonNullCount = nonNull
		cols[i].NumericCount = numeric
		if nonNull == 0 {
			continue
		}
		switch {
		case float64(numeric)/float64(nonNull) >= numericTypeThreshold:
			cols[i].Type = TypeNumeric
		case float64(date)/float64(nonNull) >= dateTypeThreshold:
			cols[i].Type = TypeDate
		}
	}

	return cols
}

func isDateCell(s string) bool {
	matched := false
	for _, p := range datePatterns {
		if p.MatchString(s) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
