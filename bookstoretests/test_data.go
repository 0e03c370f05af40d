package bookstoretests

import (
	"encoding/json"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// TestData is the state that tests in one run hand on to later tests: the user created by the
// signup tests, the token from the login tests, and the book created by the book tests.
//
// Every field starts out undefined. There is one TestData per run, created the first time a test
// asks for it; every test in the run gets the same pointer. Nothing ever resets it, and it has no
// lock, since tests never run concurrently.
type TestData struct {
	NewEmail    ldvalue.OptionalString `json:"newEmail"`
	NewID       ldvalue.OptionalInt    `json:"newId"`
	NewPassword ldvalue.OptionalString `json:"newPwd"`
	AccessToken ldvalue.OptionalString `json:"accessToken"`
	BookID      ldvalue.OptionalInt    `json:"bookId"`
}

func (d *TestData) String() string {
	data, err := json.Marshal(d)
	if err != nil {
		return err.Error()
	}
	return string(data)
}
