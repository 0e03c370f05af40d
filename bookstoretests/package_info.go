// Package bookstoretests contains the BookStore contract tests themselves and their supporting API.
//
// Test harness infrastructure that is not specific to the BookStore domain, such as running tests
// in sequence and waiting for the service to come up, is in the lower-level framework package.
package bookstoretests
