package core

import (
	"regexp"
	"strings"
)

// lineBreaks splits on any of the three line ending conventions so files
// saved on Windows, Unix, or classic Mac all preprocess identically.
var lineBreaks = regexp.MustCompile(`\r\n|\n|\r`)

// commentPrefix marks a line as metadata rather than data.
const commentPrefix = "#"

// PreprocessResult is the output of line-level cleanup: data lines with
// surrounding noise stripped, plus the comment line (if any) that may
// carry column names.
type PreprocessResult struct {
	// DataLines are non-blank, non-comment lines in original order,
	// trimmed of leading and trailing whitespace.
	DataLines []string

	// CommentHeaderLine is the last comment line seen before the first
	// data line, with the comment marker and whitespace stripped. Valid
	// only when HasCommentHeader is true.
	CommentHeaderLine string
	HasCommentHeader  bool

	// CommentLinesSkipped counts every comment line in the file, wherever
	// it appears.
	CommentLinesSkipped int
}

// PreprocessLines splits raw text into trimmed lines, drops blanks,
// filters out comment lines, and remembers the comment closest to the
// data as a header candidate. Comments appearing after data has started
// are skipped but never treated as header candidates.
func PreprocessLines(text string) PreprocessResult {
	var res PreprocessResult

	seenData := false
	for _, raw := range lineBreaks.Split(text, -1) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, commentPrefix) {
			res.CommentLinesSkipped++
			if !seenData {
				// The comment nearest the data wins as the header
				// candidate; earlier ones are usually file metadata.
				res.CommentHeaderLine = strings.TrimSpace(strings.TrimPrefix(line, commentPrefix))
				res.HasCommentHeader = res.CommentHeaderLine != ""
			}
			continue
		}
		seenData = true
		res.DataLines = append(res.DataLines, line)
	}

	return res
}
