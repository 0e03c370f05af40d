package bookstoretests

import (
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/annotations"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/assertions"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/endpoints"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoLoginTests(t *T) {
	t.Run("get access token", func(t *T) {
		t.Annotate(annotations.Auth()...)
		t.Annotate(
			annotations.Description("Logs in as the user created by the signup tests and keeps the access token"),
			annotations.Story("User Login"),
			annotations.Severity(annotations.SeverityCritical),
		)
		email, password := t.RequireNewUser()
		t.Trace("Logging in to get access token....")

		resp := t.Post(endpoints.Login, servicedef.LoginParams{Email: email, Password: password}, 200)
		body := resp.JSON()
		token := body.GetByKey("access_token")
		if token.IsString() {
			t.Data().AccessToken = ldvalue.NewOptionalString(token.StringValue())
		}

		assertions.NotNull(t, t.Data().AccessToken, "Validating access token is not null")
		assertions.ObjectContainsSubstring(t, body, "access_token", "Validating response contains access_token")
		assertions.Equals(t, body.GetByKey("token_type").StringValue(), servicedef.TokenTypeBearer,
			"Validating token type")
		requireStandardHeaders(t, resp)
		t.Trace("Successfully logged in and got access token!!!!")
	})

	t.Run("invalid credentials are rejected", func(t *T) {
		t.Annotate(annotations.Auth()...)
		t.Annotate(
			annotations.Description("Logging in with an unknown email and wrong password fails with 401"),
			annotations.Story("User Login"),
		)
		t.Trace("Attempting login with invalid credentials....")

		resp := t.Post(endpoints.Login, servicedef.LoginParams{Email: "invalid@email.com", Password: "wrongpassword"}, 401)

		assertions.ErrorHasDetail(t, resp, "Validating error response contains detail")
		t.Trace("Login failed with invalid credentials as expected!!!!")
	})
}
