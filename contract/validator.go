// Package contract checks BookStore responses against an OpenAPI 3 description of the service.
package contract

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
)

//go:embed bookstore.yaml
var bookstoreDoc []byte

// Validator validates responses and remembers which documented operations it has seen. It is
// safe for concurrent use.
type Validator struct {
	doc     *openapi3.T
	router  routers.Router
	covered map[string]bool
	lock    sync.Mutex
}

// Load returns a Validator for the built-in BookStore description.
func Load() (*Validator, error) {
	return LoadFromBytes(bookstoreDoc)
}

func LoadFromFile(path string) (*Validator, error) {
	loader := &openapi3.Loader{IsExternalRefsAllowed: true}
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return build(doc)
}

func LoadFromBytes(b []byte) (*Validator, error) {
	loader := &openapi3.Loader{IsExternalRefsAllowed: true}
	doc, err := loader.LoadFromData(b)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return build(doc)
}

func build(doc *openapi3.T) (*Validator, error) {
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate document: %w", err)
	}
	r, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}
	return &Validator{doc: doc, router: r, covered: make(map[string]bool)}, nil
}

func (v *Validator) Doc() *openapi3.T { return v.doc }

// ValidateResponse checks one response against the operation that matches method and rawURL.
// It returns the templated path and method of that operation. An operation counts as covered
// once it has been matched, whether or not the response was valid.
func (v *Validator) ValidateResponse(
	ctx context.Context,
	method string,
	rawURL string,
	status int,
	header http.Header,
	body []byte,
) (routePath string, routeMethod string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("parse url: %w", err)
	}
	req := &http.Request{
		Method: method,
		URL:    u,
		Header: http.Header{},
	}

	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		return "", "", fmt.Errorf("route not found for %s %s: %w", method, u.Path, err)
	}
	v.markCovered(route.Method, route.Path)

	rvi := &openapi3filter.RequestValidationInput{
		Request:    req,
		PathParams: pathParams,
		Route:      route,
		Options:    &openapi3filter.Options{},
	}
	rsp := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: rvi,
		Status:                 status,
		Header:                 header,
		Body:                   io.NopCloser(bytes.NewReader(body)),
		Options:                &openapi3filter.Options{IncludeResponseStatus: true},
	}
	if err := openapi3filter.ValidateResponse(ctx, rsp); err != nil {
		return route.Path, route.Method, err
	}
	return route.Path, route.Method, nil
}

func (v *Validator) markCovered(method, path string) {
	v.lock.Lock()
	v.covered[signature(method, path)] = true
	v.lock.Unlock()
}

// Coverage lists documented operations as "METHOD /path" strings, split into those that some
// validated response matched and those that none did. Both lists are sorted.
func (v *Validator) Coverage() (covered, uncovered []string) {
	v.lock.Lock()
	defer v.lock.Unlock()
	for _, op := range allOperations(v.doc) {
		if v.covered[op] {
			covered = append(covered, op)
		} else {
			uncovered = append(uncovered, op)
		}
	}
	sort.Strings(covered)
	sort.Strings(uncovered)
	return covered, uncovered
}

func allOperations(doc *openapi3.T) []string {
	var out []string
	if doc == nil || doc.Paths == nil {
		return out
	}
	for p, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method := range item.Operations() {
			out = append(out, signature(method, p))
		}
	}
	return out
}

func signature(method, path string) string {
	return strings.ToUpper(method) + " " + path
}
