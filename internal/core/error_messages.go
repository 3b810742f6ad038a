// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support
// reference. When users encounter errors, they can quote the error code
// for faster diagnosis.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File too large: File exceeds the maximum size limit
//	          Action: Reduce the file or raise the configured limit
//
//	FILE002 - Empty file: The uploaded file contains no content
//	          Action: Upload a CSV file with data rows
//
//	FILE003 - Binary file: The file does not look like text
//	          Action: Export your data as CSV before uploading
//
//	FILE004 - Encoding error: The file could not be decoded as text
//	          Action: Save the file as UTF-8 and retry
//
//	FILE005 - No file: No file was attached to the request
//	          Action: Attach a CSV file to the upload
//
// # Format Errors (FMT001-FMT099)
//
// Terminal parse failures; each maps to a core.ErrorCode:
//
//	FMT001 - No data (NO_DATA): only comments or blank lines were found
//	FMT002 - No data rows (NO_DATA_ROWS): a header with nothing under it
//	FMT003 - Too few columns (TOO_FEW_COLUMNS): nothing to plot against
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Invalid option: an override parameter had an unknown value
//	REQ002 - System busy: too many parses in progress
//	REQ003 - Request cancelled or timed out
//
// # Pattern Matching
//
// Error patterns are matched case-insensitively using strings.Contains.
// The first matching pattern wins, so more specific patterns come before
// general ones.
package core

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error text (case-insensitive) to user
// messages. First match wins, so specific patterns precede general ones.
var errorPatterns = []errorPattern{
	// File acceptance (FILE001-FILE005)
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "File exceeds the maximum size limit",
			Action:  "Reduce the file size or split it before uploading",
			Code:    "FILE001",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The uploaded file is empty",
			Action:  "Upload a CSV file with data rows",
			Code:    "FILE002",
		},
	},
	{
		pattern: "binary file",
		msg: UserMessage{
			Message: "The file does not look like text",
			Action:  "Export your data as CSV before uploading",
			Code:    "FILE003",
		},
	},
	{
		pattern: "encoding error",
		msg: UserMessage{
			Message: "The file could not be decoded as text",
			Action:  "Save the file as UTF-8 and retry",
			Code:    "FILE004",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was attached to the request",
			Action:  "Attach a CSV file to the upload",
			Code:    "FILE005",
		},
	},

	// Terminal format failures (FMT001-FMT003)
	{
		pattern: "contains no data",
		msg: UserMessage{
			Message: "The file contains no data",
			Action:  "Check that the file has lines that are not comments",
			Code:    "FMT001",
		},
	},
	{
		pattern: "no data rows",
		msg: UserMessage{
			Message: "A header was found but no data rows followed",
			Action:  "Add at least one data row under the header",
			Code:    "FMT002",
		},
	},
	{
		pattern: "fewer than two columns",
		msg: UserMessage{
			Message: "Fewer than two columns were found",
			Action:  "A plot needs at least two columns; check the delimiter",
			Code:    "FMT003",
		},
	},

	// Request handling (REQ001-REQ003)
	{
		pattern: "invalid option",
		msg: UserMessage{
			Message: "An override parameter had an unknown value",
			Action:  "Use the documented values for delimiter, decimal, and header",
			Code:    "REQ001",
		},
	},
	{
		pattern: "too many concurrent parses",
		msg: UserMessage{
			Message: "System is busy processing other files",
			Action:  "Please wait a moment and try again",
			Code:    "REQ002",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ003",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Try a smaller file or check your connection",
			Code:    "REQ003",
		},
	},

	// Rate limiting
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000). Support
// staff should check application logs for the original technical error.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message. It
// searches known error patterns (case-insensitive) and returns the first
// match, or the generic ERR000 fallback.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether an error matches a known pattern and can
// be shown to users verbatim rather than replaced with a generic notice.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
