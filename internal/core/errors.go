package core

import "errors"

// ErrorCode identifies a terminal parse failure. Terminal errors mean no
// plottable table could be produced at all; anything recoverable is
// reported as a Warning instead.
type ErrorCode string

const (
	// ErrCodeNoData: the file contained no data lines after comments and
	// blanks were stripped.
	ErrCodeNoData ErrorCode = "NO_DATA"

	// ErrCodeNoDataRows: a header was found but no data rows followed it.
	ErrCodeNoDataRows ErrorCode = "NO_DATA_ROWS"

	// ErrCodeTooFewColumns: fewer than two columns were found, so there
	// is nothing to plot against.
	ErrCodeTooFewColumns ErrorCode = "TOO_FEW_COLUMNS"
)

// ParseError is a terminal parse failure. Profile records the format
// decisions made before the failure, populated as far as detection got.
type ParseError struct {
	Code    ErrorCode
	Profile FormatProfile
}

func (e *ParseError) Error() string {
	switch e.Code {
	case ErrCodeNoData:
		return "file contains no data"
	case ErrCodeNoDataRows:
		return "file contains a header but no data rows"
	case ErrCodeTooFewColumns:
		return "file has fewer than two columns"
	default:
		return string(e.Code)
	}
}

// AsParseError unwraps err into a *ParseError if one is in the chain.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// Acceptance errors, raised before parsing starts.
var (
	ErrEmptyFile    = errors.New("empty file")
	ErrFileTooLarge = errors.New("file too large")
	ErrBinaryFile   = errors.New("binary file detected")
)
