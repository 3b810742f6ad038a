package core

import (
	"math"
	"strconv"
	"strings"
)

// ConvertRows turns tokenized string records into typed rows. Records
// whose field count differs from width are dropped before any cell is
// converted; the dropped count feeds the ragged-row warning. Cell values
// come back as float64, string, or nil.
func ConvertRows(records [][]string, width int, dec DecimalSeparator) (rows [][]any, dropped int) {
	rows = make([][]any, 0, len(records))
	for _, record := range records {
		if len(record) != width {
			dropped++
			continue
		}
		row := make([]any, width)
		for i, cell := range record {
			row[i] = convertCell(cell, dec)
		}
		rows = append(rows, row)
	}
	return rows, dropped
}

// convertCell normalizes a single cell: empty cells become nil, cells
// that parse as a number become float64, everything else stays a string.
// When the file uses comma decimals the comma is rewritten to a dot
// before parsing so "3,14" and "3.14" yield the same value. Non-finite
// parses ("NaN", "Inf") stay strings; JSON cannot carry them as numbers.
func convertCell(cell string, dec DecimalSeparator) any {
	s := strings.TrimSpace(cell)
	if dec == DecimalComma {
		s = strings.ReplaceAll(s, ",", ".")
	}
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return v
	}
	return s
}
