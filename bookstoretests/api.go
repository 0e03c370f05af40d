package bookstoretests

import (
	"context"

	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/annotations"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/apiclient"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/endpoints"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/framework"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/logging"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// suiteScope is shared by every T in one run.
type suiteScope struct {
	harness *framework.TestHarness
	data    *TestData
}

// T represents a test or subtest in the BookStore test suite.
//
// It implements the same basic failure methods as Go's testing.T, so the assert, require and
// assertions packages can be used with it, but it runs outside of the Go test runner. Those
// features are provided by the lower-level framework package.
//
// It also provides functionality that is specific to testing the BookStore service. Every T has
// its own API client session, created the first time the test sends a request and closed when
// the test ends, and access to the TestData shared by the whole run. The request methods fail the
// test immediately if the service returns an unexpected status, so tests only need to check the
// response content.
type T struct {
	context *framework.Context
	scope   *suiteScope
	client  *apiclient.Client
}

func newTestScope(context *framework.Context, scope *suiteScope) *T {
	return &T{context: context, scope: scope}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require and assertions packages call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
//
// The specified function receives a new T instance, with its own API client session but the same
// TestData.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.scope))
	})
}

// Skip ends the test immediately without failing it.
func (t *T) Skip(reason string) {
	t.context.SkipWithReason(reason)
}

// Defer schedules a function to run when the test ends.
func (t *T) Defer(fn func()) {
	t.context.Defer(fn)
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Trace records a progress message. It goes to the test's debug output and to the process-wide
// trace log.
func (t *T) Trace(format string, args ...interface{}) {
	t.context.Debug(format, args...)
	logging.Tracer(logrus.Fields{"test": t.context.ID().String()}).Printf(format, args...)
}

// Annotate attaches reporting metadata to the test. It has no effect on how the test runs.
func (t *T) Annotate(anns ...annotations.Annotation) {
	t.context.Annotate(anns...)
}

// Data returns the TestData of the current run.
func (t *T) Data() *TestData {
	if t.scope.data == nil {
		t.scope.data = &TestData{}
	}
	return t.scope.data
}

// RequireAccessToken skips the test if no earlier test obtained an access token.
func (t *T) RequireAccessToken() string {
	token := t.Data().AccessToken
	if !token.IsDefined() || token.StringValue() == "" {
		t.Skip("Skipping test as no access token available")
	}
	return token.StringValue()
}

// RequireBookID skips the test if no earlier test created a book.
func (t *T) RequireBookID() int {
	id := t.Data().BookID
	if !id.IsDefined() {
		t.Skip("Skipping test as no book was created in a previous test")
	}
	return id.IntValue()
}

// RequireNewUser skips the test if no earlier test signed up a user. It returns the user's
// email and password.
func (t *T) RequireNewUser() (email, password string) {
	d := t.Data()
	if !d.NewEmail.IsDefined() || !d.NewPassword.IsDefined() {
		t.Skip("Skipping test as no user was created in previous test")
	}
	return d.NewEmail.StringValue(), d.NewPassword.StringValue()
}

// Client returns this test's API client, starting its session if necessary. The session is
// closed when the test ends.
func (t *T) Client() *apiclient.Client {
	if t.client == nil {
		c, err := t.scope.harness.NewClient(t.context.DebugLogger())
		require.NoError(t, err)
		require.NoError(t, c.Init())
		t.client = c
		t.context.Defer(c.Close)
	}
	return t.client
}

// Get sends a GET request and fails the test unless the service responds with expectedStatus.
func (t *T) Get(path endpoints.Endpoint, expectedStatus int, headers ...apiclient.Headers) *apiclient.Response {
	return t.Send(apiclient.Request{Method: "GET", Path: string(path), Headers: apiclient.MergeHeaders(headers...)}, expectedStatus)
}

// Post sends a POST request and fails the test unless the service responds with expectedStatus.
func (t *T) Post(
	path endpoints.Endpoint,
	body interface{},
	expectedStatus int,
	headers ...apiclient.Headers,
) *apiclient.Response {
	return t.Send(apiclient.Request{Method: "POST", Path: string(path), Body: body, Headers: apiclient.MergeHeaders(headers...)}, expectedStatus)
}

// Put sends a PUT request and fails the test unless the service responds with expectedStatus.
func (t *T) Put(
	path endpoints.Endpoint,
	body interface{},
	expectedStatus int,
	headers ...apiclient.Headers,
) *apiclient.Response {
	return t.Send(apiclient.Request{Method: "PUT", Path: string(path), Body: body, Headers: apiclient.MergeHeaders(headers...)}, expectedStatus)
}

// Delete sends a DELETE request and fails the test unless the service responds with
// expectedStatus.
func (t *T) Delete(path endpoints.Endpoint, expectedStatus int, headers ...apiclient.Headers) *apiclient.Response {
	return t.Send(apiclient.Request{Method: "DELETE", Path: string(path), Headers: apiclient.MergeHeaders(headers...)}, expectedStatus)
}

// Send sends an arbitrary request. If contract validation is enabled, the response must also
// match the API description.
func (t *T) Send(r apiclient.Request, expectedStatus int) *apiclient.Response {
	resp, err := t.Client().Do(context.Background(), r, expectedStatus)
	require.NoError(t, err)
	t.validateContract(resp)
	return resp
}

// DecodeBody decodes the response body into target, failing the test if it cannot.
func (t *T) DecodeBody(resp *apiclient.Response, target interface{}) {
	require.NoError(t, resp.Decode(target), "response body: %s", string(resp.Body()))
}

func (t *T) validateContract(resp *apiclient.Response) {
	v := t.scope.harness.ContractValidator()
	if v == nil {
		return
	}
	route, method, err := v.ValidateResponse(context.Background(), resp.Method(), resp.URL(), resp.Status(),
		resp.Headers(), resp.Body())
	require.NoError(t, err, "response to %s %s does not match the API contract", resp.Method(), resp.URL())
	t.Debug("response matches contract for %s %s", method, route)
}

