// Package framework contains the low-level implementation of test harness infrastructure
// that is not specific to the BookStore API.
//
// The general model is:
//
// 1. The test harness talks to the service under test over HTTP. Before any test runs it
// waits for the service's health resource to report that it is up.
//
// 2. Every test gets its own API client session from the harness, created when the test
// starts and closed when it ends.
//
// 3. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results. Tests always run sequentially, so that later tests can consume
// state recorded by earlier ones.
//
// The domain-specific code that knows what is being tested is responsible for providing
// the requests to send, the expectations about the responses, and a domain-specific test
// API on top of the test context.
package framework
