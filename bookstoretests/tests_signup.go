package bookstoretests

import (
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/annotations"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/assertions"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/datagen"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/endpoints"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	messageUserCreated    = "User created successfully"
	detailEmailRegistered = "Email already registered"
)

func DoSignupTests(t *T) {
	t.Run("create new user", func(t *T) {
		t.Annotate(annotations.Auth()...)
		t.Annotate(
			annotations.Description("Signs up a new user with a random email, id and password"),
			annotations.Story("User Registration"),
			annotations.Severity(annotations.SeverityCritical),
		)
		t.Trace("Creating Sign Up Request with Random Email ID and Random ID....")

		fields := datagen.Signup()
		data := t.Data()
		data.NewEmail = ldvalue.NewOptionalString(fields.Email)
		data.NewID = ldvalue.NewOptionalInt(fields.ID)
		data.NewPassword = ldvalue.NewOptionalString(fields.Password)
		t.Trace("Created Sign Up Request with random email as %s and random ID as %d!!!!", fields.Email, fields.ID)

		resp := t.Post(endpoints.Signup, servicedef.SignupParams(fields), 200)
		var message servicedef.Message
		t.DecodeBody(resp, &message)

		assertions.Equals(t, message.Message, messageUserCreated, "Validating message value")
		requireStandardHeaders(t, resp)
		t.Trace("Created a new user!!!!")
	})

	t.Run("existing email is rejected", func(t *T) {
		t.Annotate(annotations.Auth()...)
		t.Annotate(
			annotations.Description("Signing up twice with the same email fails"),
			annotations.Story("User Registration"),
		)
		email, password := t.RequireNewUser()
		t.Trace("Adding an existing user....")

		params := servicedef.SignupParams{ID: t.Data().NewID.IntValue(), Email: email, Password: password}
		resp := t.Post(endpoints.Signup, params, 400)
		var detail servicedef.Detail
		t.DecodeBody(resp, &detail)

		assertions.Equals(t, detail.Detail.StringValue(), detailEmailRegistered, "Validating detail value")
		t.Trace("Unable to add an existing user!!!!")
	})
}
