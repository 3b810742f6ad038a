package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "nil error", err: nil, wantCode: ""},
		{name: "file too large", err: fmt.Errorf("%w: 200 bytes", ErrFileTooLarge), wantCode: "FILE001"},
		{name: "empty file", err: ErrEmptyFile, wantCode: "FILE002"},
		{name: "binary file", err: ErrBinaryFile, wantCode: "FILE003"},
		{name: "encoding error", err: errors.New("encoding error: decode utf-16"), wantCode: "FILE004"},
		{name: "no file", err: errors.New("no file provided"), wantCode: "FILE005"},
		{name: "no data", err: &ParseError{Code: ErrCodeNoData}, wantCode: "FMT001"},
		{name: "no data rows", err: &ParseError{Code: ErrCodeNoDataRows}, wantCode: "FMT002"},
		{name: "too few columns", err: &ParseError{Code: ErrCodeTooFewColumns}, wantCode: "FMT003"},
		{name: "invalid option", err: errors.New(`invalid option: delimiter "pipe"`), wantCode: "REQ001"},
		{name: "limiter full", err: ErrTooManyParses, wantCode: "REQ002"},
		{name: "cancelled", err: context.Canceled, wantCode: "REQ003"},
		{name: "unknown error falls back", err: errors.New("something odd"), wantCode: "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, MapError(tt.err).Code)
		})
	}
}

func TestFormatUserError(t *testing.T) {
	got := FormatUserError(ErrEmptyFile)
	assert.Contains(t, got, "FILE002")
	assert.Contains(t, got, "Upload a CSV file")

	assert.Empty(t, FormatUserError(nil))
}

func TestIsUserFacing(t *testing.T) {
	assert.True(t, IsUserFacing(ErrEmptyFile))
	assert.False(t, IsUserFacing(errors.New("internal oddity")))
	assert.False(t, IsUserFacing(nil))
}
