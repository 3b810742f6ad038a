package core

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rahulsuresh2569/CSV-Plotter/internal/logging"
)

// Parse runs the full inference pipeline over decoded text: line
// preprocessing, delimiter detection, decimal resolution, header
// detection, tokenizing, value conversion, column classification, and
// diagnostics. Caller overrides in opts bypass the matching detector.
//
// Terminal failures return a *ParseError carrying the format decisions
// made up to the failure point. Parsing is pure with respect to its
// inputs: the same text and options always produce the same table.
func Parse(ctx context.Context, text string, opts Options) (*ParsedTable, error) {
	log := logging.FromContext(ctx)

	pre := PreprocessLines(text)
	profile := FormatProfile{
		Delimiter:           DelimiterComma,
		DecimalSeparator:    DecimalDot,
		CommentLinesSkipped: pre.CommentLinesSkipped,
	}
	if len(pre.DataLines) == 0 {
		return nil, &ParseError{Code: ErrCodeNoData, Profile: profile}
	}

	if opts.Delimiter != nil {
		profile.Delimiter = *opts.Delimiter
	} else {
		profile.Delimiter = DetectDelimiter(pre.DataLines)
	}
	if opts.DecimalSeparator != nil {
		profile.DecimalSeparator = *opts.DecimalSeparator
	} else {
		profile.DecimalSeparator = ResolveDecimalSeparator(profile.Delimiter)
	}

	header := resolveHeader(pre, profile.Delimiter, profile.DecimalSeparator, opts.HasHeader)
	profile.HasHeader = header.HasHeader
	profile.HeaderFromComment = header.FromComment

	tok := Tokenize(pre.DataLines, profile.Delimiter)

	names := header.Names
	records := tok.Records
	if header.HasHeader && len(records) > 0 {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, &ParseError{Code: ErrCodeNoDataRows, Profile: profile}
	}
	if len(names) == 0 {
		names = SyntheticNames(len(records[0]))
	}

	rows, dropped := ConvertRows(records, len(names), profile.DecimalSeparator)
	dropped += tok.MalformedLines
	if len(rows) == 0 {
		// Every record was ragged relative to the header width.
		return nil, &ParseError{Code: ErrCodeNoDataRows, Profile: profile}
	}
	if len(names) < 2 {
		return nil, &ParseError{Code: ErrCodeTooFewColumns, Profile: profile}
	}

	cols := ClassifyColumns(names, rows)
	warnings := BuildWarnings(cols, rows, dropped)

	table := &ParsedTable{
		Profile:  profile,
		Columns:  cols,
		Rows:     rows,
		Warnings: warnings,
		Metadata: Metadata{
			ParseID:     uuid.New().String(),
			SourceName:  opts.SourceName,
			RowCount:    len(rows),
			ColumnCount: len(cols),
			DroppedRows: dropped,
		},
	}

	log.Info("parse complete",
		slog.String("parse_id", table.Metadata.ParseID),
		slog.String("delimiter", string(profile.Delimiter)),
		slog.String("decimal", string(profile.DecimalSeparator)),
		slog.Bool("has_header", profile.HasHeader),
		slog.Int("rows", len(rows)),
		slog.Int("columns", len(cols)),
		slog.Int("dropped", dropped),
		slog.Int("warnings", len(warnings)),
	)

	return table, nil
}

// resolveHeader applies the caller's header override if present,
// otherwise runs detection. A forced header takes names from the first
// data line; a forced no-header leaves names empty for synthesis.
func resolveHeader(pre PreprocessResult, delim Delimiter, dec DecimalSeparator, override *bool) HeaderResult {
	if override == nil {
		comment := ""
		if pre.HasCommentHeader {
			comment = pre.CommentHeaderLine
		}
		return DetectHeader(pre.DataLines, comment, delim, dec)
	}
	if !*override {
		return HeaderResult{}
	}
	if len(pre.DataLines) == 0 {
		return HeaderResult{HasHeader: true}
	}
	return HeaderResult{
		Names:     splitAndTrim(pre.DataLines[0], string(delim.Rune())),
		HasHeader: true,
	}
}
