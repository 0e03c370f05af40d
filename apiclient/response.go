package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Response is the result of a call whose status matched the expectation.
type Response struct {
	method string
	url    string
	status int
	header http.Header
	body   []byte

	parsed   bool
	json     ldvalue.Value
	parseErr error
}

func newResponse(method, url string, status int, header http.Header, body []byte) *Response {
	return &Response{
		method: method,
		url:    url,
		status: status,
		header: header,
		body:   body,
	}
}

func (r *Response) Status() int { return r.status }

func (r *Response) Method() string { return r.method }

func (r *Response) URL() string { return r.url }

// Header returns the first value of the named header. The lookup is case-insensitive.
func (r *Response) Header(name string) string {
	return r.header.Get(name)
}

// Headers returns a copy of all response headers.
func (r *Response) Headers() http.Header {
	return r.header.Clone()
}

func (r *Response) Body() []byte {
	return r.body
}

// ParseJSON parses the body the first time it is called and returns the cached result after
// that.
func (r *Response) ParseJSON() (ldvalue.Value, error) {
	if !r.parsed {
		r.parsed = true
		if err := json.Unmarshal(r.body, &r.json); err != nil {
			r.json = ldvalue.Null()
			r.parseErr = fmt.Errorf("response body of %s %s is not valid JSON: %w", r.method, r.url, err)
		}
	}
	return r.json, r.parseErr
}

// JSON is like ParseJSON, but returns a null value if the body is not valid JSON.
func (r *Response) JSON() ldvalue.Value {
	v, _ := r.ParseJSON()
	return v
}

// Decode unmarshals the body into target.
func (r *Response) Decode(target interface{}) error {
	if err := json.Unmarshal(r.body, target); err != nil {
		return fmt.Errorf("decoding response body of %s %s: %w", r.method, r.url, err)
	}
	return nil
}
