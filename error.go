package webextractor

import (
	"errors"
	"fmt"
)

// Application error codes. Every failure that crosses the tool protocol
// boundary carries exactly one of these.
const (
	EINVALID     = "invalid"       // request failed validation
	EACQUISITION = "acquisition"   // fetching the source URL failed
	EEMPTY       = "empty_content" // nothing to extract, or nothing extracted
	EEXTRACTION  = "extraction"    // the extraction engine faulted
	EINTERNAL    = "internal"      // unclassified fault
)

// genericMessage is what callers see for internal or unclassified errors.
// Full detail is logged, never surfaced.
const genericMessage = "An internal error has occurred."

// Error represents an application error with a machine-readable code and
// a human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("webextractor error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the error, if available.
// Non-application errors return EINTERNAL; nil returns an empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the human-readable message of the error, if
// available. Internal and non-application errors are masked behind a
// generic message; nil returns an empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) && e.Code != EINTERNAL {
		return e.Message
	}
	return genericMessage
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
