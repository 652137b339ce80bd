package recipebook

import (
	"errors"
	"fmt"
)

// Error codes for the scrape stage (fetch + parse).
const (
	ENETWORK      = "network"       // transport failure (DNS, refused connection, TLS)
	EINVALIDURL   = "invalid_url"   // empty or unparseable URL, rejected before any network I/O
	ETIMEOUT      = "timeout"       // page fetch exceeded its deadline
	EEMPTYCONTENT = "empty_content" // response body was empty after trimming
	EPARSE        = "parse"         // HTML or JSON could not be parsed
)

// Error codes for the LLM extraction stage. ENETWORK and EPARSE are shared
// with the scrape stage; the remaining codes are extraction-specific.
const (
	EAPI             = "api"              // non-2xx response from the chat-completion endpoint
	EINVALIDRESPONSE = "invalid_response" // well-formed envelope with no usable choices
)

// General-purpose codes for defensive paths.
const (
	EINVALID  = "invalid"
	EINTERNAL = "internal"
)

// Error represents an application-specific error. Errors carry a
// machine-readable code from the closed sets above and a human-readable
// message. Callers branch on ErrorCode; messages are for display.
type Error struct {
	// Code identifies the kind of failure.
	Code string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("recipebook error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the root error, if available.
// Returns EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the root error, if available.
// Returns a generic message for non-application errors and "" for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper for constructing an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
