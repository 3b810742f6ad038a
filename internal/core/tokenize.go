package core

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// TokenizeResult holds the raw string records plus the count of lines
// the CSV reader could not parse at all.
type TokenizeResult struct {
	Records        [][]string
	MalformedLines int
}

// Tokenize splits the prepared data lines into fields using the resolved
// delimiter. Quoting rules follow RFC 4180 with lax quote handling, so a
// stray quote inside a field does not poison the whole file. Records may
// have differing field counts here; width filtering happens downstream.
// Lines the reader rejects outright are counted and skipped.
func Tokenize(dataLines []string, delim Delimiter) TokenizeResult {
	r := csv.NewReader(strings.NewReader(strings.Join(dataLines, "\n")))
	r.Comma = delim.Rune()
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var res TokenizeResult
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			res.MalformedLines++
			continue
		}
		for i, f := range record {
			record[i] = strings.TrimSpace(f)
		}
		res.Records = append(res.Records, record)
	}
	return res
}
