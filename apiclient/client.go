// Package apiclient sends requests to the service under test and verifies the status code of
// every response.
//
// Each call declares the one status code it expects. If the service returns anything else, the
// call fails with a *StatusMismatchError before the caller ever sees the response. There are no
// retries and no tolerance ranges.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/endpoints"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/logging"
)

// Headers are per-call header overrides. They are merged over the default headers, and win on
// any key collision.
type Headers map[string]string

// DefaultHeaders are sent with every request unless overridden.
var DefaultHeaders = Headers{
	"Accept":       "application/json",
	"Content-Type": "application/json",
}

// Client owns an HTTP session bound to a base URL.
type Client struct {
	baseURL   string
	logger    logging.Logger
	timeout   time.Duration
	transport http.RoundTripper
	session   *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger sets the logger that receives a line for every request and response.
func WithLogger(logger logging.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout sets a per-request timeout. The default is no timeout beyond the transport's.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

// WithTransport replaces the transport used by new sessions.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.transport = rt }
}

// New creates a Client for the given base URL. No session exists until Init is called, either
// directly or by the first request.
func New(baseURL string, opts ...Option) (*Client, error) {
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("base URL must be an http or https URL, got %q", baseURL)
	}
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logging.NullLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// BaseURL returns the base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Init acquires a session. If a session already exists it is reused.
func (c *Client) Init() error {
	if c.session != nil {
		return nil
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return fmt.Errorf("creating cookie jar: %w", err)
	}
	transport := c.transport
	if transport == nil {
		transport = http.DefaultTransport.(*http.Transport).Clone()
	}
	c.session = &http.Client{
		Transport: transport,
		Jar:       jar,
		Timeout:   c.timeout,
	}
	return nil
}

// Close releases the session. It is safe to call when no session exists.
func (c *Client) Close() {
	if c.session == nil {
		return
	}
	c.session.CloseIdleConnections()
	c.session = nil
}

// Active reports whether a session currently exists.
func (c *Client) Active() bool {
	return c.session != nil
}

func (c *Client) Get(path string, expectedStatus int, headers ...Headers) (*Response, error) {
	return c.GetContext(context.Background(), path, expectedStatus, headers...)
}

func (c *Client) Post(path string, body interface{}, expectedStatus int, headers ...Headers) (*Response, error) {
	return c.PostContext(context.Background(), path, body, expectedStatus, headers...)
}

func (c *Client) Put(path string, body interface{}, expectedStatus int, headers ...Headers) (*Response, error) {
	return c.PutContext(context.Background(), path, body, expectedStatus, headers...)
}

func (c *Client) Delete(path string, expectedStatus int, headers ...Headers) (*Response, error) {
	return c.DeleteContext(context.Background(), path, expectedStatus, headers...)
}

func (c *Client) GetContext(ctx context.Context, path string, expectedStatus int, headers ...Headers) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Headers: MergeHeaders(headers...)}, expectedStatus)
}

func (c *Client) PostContext(
	ctx context.Context,
	path string,
	body interface{},
	expectedStatus int,
	headers ...Headers,
) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body, Headers: MergeHeaders(headers...)}, expectedStatus)
}

func (c *Client) PutContext(
	ctx context.Context,
	path string,
	body interface{},
	expectedStatus int,
	headers ...Headers,
) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body, Headers: MergeHeaders(headers...)}, expectedStatus)
}

func (c *Client) DeleteContext(ctx context.Context, path string, expectedStatus int, headers ...Headers) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path, Headers: MergeHeaders(headers...)}, expectedStatus)
}

// Request describes a single call.
type Request struct {
	Method string
	// Path must start with "/" and must not contain unresolved placeholders.
	Path string
	// Body is sent verbatim if it is a string, []byte or json.RawMessage, and is marshaled to
	// JSON otherwise. A nil Body sends no body.
	Body    interface{}
	Headers Headers
}

// Do sends the request and checks the response status against expectedStatus.
func (c *Client) Do(ctx context.Context, r Request, expectedStatus int) (*Response, error) {
	if err := endpoints.CheckResolved(r.Path); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(r.Path, "/") {
		return nil, fmt.Errorf("request path must start with \"/\", got %q", r.Path)
	}
	if err := c.Init(); err != nil {
		return nil, err
	}

	data, err := encodeBody(r.Body)
	if err != nil {
		return nil, err
	}
	url := c.baseURL + r.Path
	var bodyReader io.Reader
	if data != nil {
		bodyReader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, url, bodyReader)
	if err != nil {
		return nil, err
	}
	for k, v := range DefaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	c.logger.Printf("%s %s", r.Method, r.Path)
	c.logger.Printf("  %s", curlCommand(r.Method, url, req.Header, data))

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", r.Method, r.Path, err)
	}
	respBody, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("%s %s: reading response body: %w", r.Method, r.Path, err)
	}
	c.logger.Printf("  -> %d %s", resp.StatusCode, string(respBody))

	response := newResponse(r.Method, url, resp.StatusCode, resp.Header, respBody)
	if response.Status() != expectedStatus {
		return nil, &StatusMismatchError{
			Method:   r.Method,
			Path:     r.Path,
			Expected: expectedStatus,
			Actual:   response.Status(),
			Body:     excerpt(respBody),
		}
	}
	return response, nil
}

func encodeBody(body interface{}) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(b), nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		return data, nil
	}
}

// MergeHeaders combines header overrides into one set. Later sets win over earlier ones. It
// returns nil if there are none.
func MergeHeaders(all ...Headers) Headers {
	if len(all) == 0 {
		return nil
	}
	ret := make(Headers)
	for _, h := range all {
		for k, v := range h {
			ret[k] = v
		}
	}
	return ret
}

// BearerToken returns the header override for bearer authorization.
func BearerToken(token string) Headers {
	return Headers{"Authorization": "Bearer " + token}
}

// IsStatusMismatch reports whether err is, or wraps, a *StatusMismatchError.
func IsStatusMismatch(err error) bool {
	var sme *StatusMismatchError
	return errors.As(err, &sme)
}
