package core

import (
	"fmt"
	"strconv"
	"strings"
)

// numericDensityCutoff is the fraction of numeric-looking fields above
// which a line is considered a data row rather than a header.
const numericDensityCutoff = 0.5

// HeaderResult is the outcome of header detection: the column names to
// use and where they came from.
type HeaderResult struct {
	// Names holds the resolved column names. Empty when no header was
	// found; the caller synthesizes positional names in that case.
	Names []string

	// HasHeader reports whether the first data line is a header row and
	// must be excluded from the data.
	HasHeader bool

	// FromComment reports that names came from a comment line, so every
	// data line is a data row.
	FromComment bool
}

// DetectHeader decides where column names come from. A comment-derived
// header is used only when its field count exactly matches the first
// data line; a partial match would silently misalign every column, so a
// mismatched comment is discarded entirely.
//
// Without a usable comment the first data line is judged on numeric
// density under the resolved decimal convention: a mostly-numeric first
// line is data, anything else is taken as a header (including the
// ambiguous all-textual case, where a header is the safer default). A
// single-line file is always treated as a header.
func DetectHeader(dataLines []string, commentHeader string, delim Delimiter, dec DecimalSeparator) HeaderResult {
	sep := string(delim.Rune())

	if commentHeader != "" && len(dataLines) > 0 {
		names := splitAndTrim(commentHeader, sep)
		if len(names) == len(strings.Split(dataLines[0], sep)) {
			return HeaderResult{Names: names, FromComment: true}
		}
	}

	if len(dataLines) == 0 {
		return HeaderResult{}
	}

	first := splitAndTrim(dataLines[0], sep)
	if len(dataLines) == 1 {
		return HeaderResult{Names: first, HasHeader: true}
	}

	// A numeric first line is data regardless of what follows. A textual
	// first line is a header, whether the rest is numeric (clear case)
	// or textual too (ambiguous; a header is the safer guess).
	if numericDensity(first, dec) >= numericDensityCutoff {
		return HeaderResult{}
	}
	return HeaderResult{Names: first, HasHeader: true}
}

// SyntheticNames builds positional column names ("Column 1", "Column 2",
// ...) for headerless files.
func SyntheticNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Column %d", i+1)
	}
	return names
}

// numericDensity returns the fraction of fields that parse as numbers
// under the resolved decimal convention.
func numericDensity(fields []string, dec DecimalSeparator) float64 {
	if len(fields) == 0 {
		return 0
	}
	numeric := 0
	for _, f := range fields {
		if looksNumeric(f, dec) {
			numeric++
		}
	}
	return float64(numeric) / float64(len(fields))
}

func looksNumeric(field string, dec DecimalSeparator) bool {
	s := strings.TrimSpace(field)
	if s == "" {
		return false
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	// Comma decimal points only count when the file's convention is
	// comma, and only when the comma is unambiguous.
	if dec == DecimalComma && strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		if _, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64); err == nil {
			return true
		}
	}
	return false
}

func splitAndTrim(line, sep string) []string {
	parts := strings.Split(line, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
