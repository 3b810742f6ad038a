// Package core implements CSV format inference and type classification.
//
// This package is the heart of the plotter backend, containing all
// domain logic independent of any UI or transport layer. It can be used
// by web handlers, CLI tools, or tests without modification.
//
// # Pipeline
//
// [Parse] runs decoded text through a fixed sequence of stages:
//
//  1. Line preprocessing: normalize line endings, drop blanks, strip
//     comment lines, remember the comment nearest the data as a header
//     candidate.
//  2. Delimiter detection: count tab, semicolon, and comma occurrences
//     over a short sample and pick the most consistent separator.
//  3. Decimal resolution: semicolon-delimited files use comma decimals,
//     everything else uses a dot.
//  4. Header detection: a comment header when its field count matches
//     the data, otherwise a numeric-density comparison between the
//     first line and the rest.
//  5. Tokenizing: RFC 4180 field splitting with lax quote handling.
//  6. Conversion: ragged rows are dropped, then each cell becomes
//     float64, string, or nil.
//  7. Classification: each column is typed numeric, date, or string
//     from the ratio of cell kinds among non-null cells.
//  8. Diagnostics: warnings for dropped rows, missing values, stray
//     text in numeric columns, and the absence of numeric columns.
//
// Each stage is exported on its own so callers can run a single stage
// against prepared input, which is also how the stages are tested.
//
// # Overrides
//
// [Options] lets a caller pin the delimiter, decimal separator, or
// header decision. A pinned value bypasses the matching detector but
// the rest of the pipeline runs unchanged.
//
// # Errors
//
// Terminal failures return a [*ParseError] with a machine-readable
// [ErrorCode] and the [FormatProfile] built so far. Recoverable issues
// become [Warning] values on the result instead. Technical errors are
// mapped to user-facing messages via [MapError]; each category has a
// unique code for support reference (FILE, FMT, REQ, RATE).
package core
