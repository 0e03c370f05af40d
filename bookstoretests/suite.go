package bookstoretests

import (
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/apiclient"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/assertions"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/framework"
)

const (
	expectedServerHeader      = "uvicorn"
	expectedContentTypeHeader = "application/json"
)

// RunTestSuite runs every BookStore test, in order, against the service the harness points to.
// Each call is a separate run with its own TestData.
func RunTestSuite(
	harness *framework.TestHarness,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	scope := &suiteScope{harness: harness}
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, scope)

		t.Run("health", DoHealthTests)
		t.Run("signup", DoSignupTests)
		t.Run("login", DoLoginTests)
		t.Run("books", DoBookTests)
		t.Run("token", DoTokenTests)
		t.Run("invalid payloads", DoInvalidPayloadTests)
	})
}

// requireStandardHeaders checks the headers that every BookStore response carries.
func requireStandardHeaders(t *T, resp *apiclient.Response) {
	assertions.HeaderEquals(t, resp, "server", expectedServerHeader, "Validating Server header")
	assertions.HeaderEquals(t, resp, "content-type", expectedContentTypeHeader, "Validating Content-Type header")
}
