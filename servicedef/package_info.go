// Package servicedef contains the JSON request and response bodies of the BookStore service, as
// sent and received by the test suite.
package servicedef
