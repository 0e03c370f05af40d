package apiclient

import (
	"fmt"
	"unicode/utf8"
)

const maxBodyExcerpt = 512

// StatusMismatchError means the service returned a status other than the one the caller
// declared as the only acceptable outcome.
type StatusMismatchError struct {
	Method   string
	Path     string
	Expected int
	Actual   int
	Body     string
}

func (e *StatusMismatchError) Error() string {
	msg := fmt.Sprintf("expected status %d, got %d (%s %s)", e.Expected, e.Actual, e.Method, e.Path)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func excerpt(body []byte) string {
	if len(body) <= maxBodyExcerpt {
		return string(body)
	}
	cut := maxBodyExcerpt
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return string(body[:cut]) + "...[truncated]"
}
