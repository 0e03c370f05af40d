// Package endpoints is the single table of BookStore API paths. Templates may contain
// placeholders such as {bookId}, which callers substitute with literal values before a
// request is sent.
package endpoints

import (
	"fmt"
	"regexp"
	"strings"
)

// Endpoint is a URL path template.
type Endpoint string

const (
	Health      Endpoint = "/health"
	Signup      Endpoint = "/signup"
	Login       Endpoint = "/login"
	GetAllBooks Endpoint = "/books/"
	GetBook     Endpoint = "/books/{bookId}"
	CreateBook  Endpoint = "/books/"
	UpdateBook  Endpoint = "/books/{bookId}"
	DeleteBook  Endpoint = "/books/{bookId}"
)

// BookID is the placeholder name used by the book endpoints.
const BookID = "bookId"

// All maps the logical operation names to their templates.
var All = map[string]Endpoint{
	"HEALTH":        Health,
	"SIGNUP":        Signup,
	"LOGIN":         Login,
	"GET_ALL_BOOKS": GetAllBooks,
	"GET_BOOK":      GetBook,
	"CREATE_BOOK":   CreateBook,
	"UPDATE_BOOK":   UpdateBook,
	"DELETE_BOOK":   DeleteBook,
}

var placeholderPattern = regexp.MustCompile(`\{([^{}/]+)\}`)

// UnresolvedError is returned when a path still contains placeholders at the time it is used.
type UnresolvedError struct {
	Path         string
	Placeholders []string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("unresolved placeholders in path %q: %s", e.Path, strings.Join(e.Placeholders, ", "))
}

// With substitutes a single placeholder. The value is inserted verbatim; it is not escaped or
// validated, so that tests can deliberately send malformed identifiers.
func (e Endpoint) With(name string, value interface{}) Endpoint {
	return Endpoint(strings.ReplaceAll(string(e), "{"+name+"}", fmt.Sprint(value)))
}

// Resolve substitutes every placeholder found in params and returns the resulting path, or an
// *UnresolvedError if any placeholder is left over.
func (e Endpoint) Resolve(params map[string]interface{}) (string, error) {
	out := e
	for name, value := range params {
		out = out.With(name, value)
	}
	if err := CheckResolved(string(out)); err != nil {
		return "", err
	}
	return string(out), nil
}

// Placeholders lists the placeholder names in the template, in order of appearance.
func (e Endpoint) Placeholders() []string {
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(string(e), -1) {
		names = append(names, m[1])
	}
	return names
}

func (e Endpoint) String() string {
	return string(e)
}

// CheckResolved returns an *UnresolvedError if the path still contains placeholders.
func CheckResolved(path string) error {
	names := Endpoint(path).Placeholders()
	if len(names) == 0 {
		return nil
	}
	for i, n := range names {
		names[i] = "{" + n + "}"
	}
	return &UnresolvedError{Path: path, Placeholders: names}
}
