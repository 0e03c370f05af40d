package bookstoretests

import (
	"strings"

	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/annotations"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/apiclient"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/assertions"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/endpoints"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoInvalidPayloadTests(t *T) {
	t.Run("signup with missing fields", func(t *T) {
		t.Annotate(annotations.CommonAPI()...)
		t.Annotate(annotations.Story("Input Validation"), annotations.Severity(annotations.SeverityMedium))
		t.Trace("Testing signup with missing id and password....")

		resp := t.Post(endpoints.Signup, map[string]interface{}{"email": "test@example.com"}, 422)

		assertions.ErrorHasDetail(t, resp, "Validating error response contains detail")
		t.Trace("Correctly handled invalid signup request!!!!")
	})

	t.Run("login with missing password", func(t *T) {
		t.Annotate(annotations.CommonAPI()...)
		t.Annotate(annotations.Story("Input Validation"), annotations.Severity(annotations.SeverityMedium))
		t.Trace("Testing login with missing password....")

		resp := t.Post(endpoints.Login, map[string]interface{}{"email": "test@example.com"}, 422)

		assertions.ErrorHasDetail(t, resp, "Validating error response contains detail")
		t.Trace("Correctly handled invalid login request!!!!")
	})

	t.Run("book creation with missing fields", func(t *T) {
		t.Annotate(annotations.CommonAPI()...)
		t.Annotate(annotations.Story("Input Validation"), annotations.Severity(annotations.SeverityMedium))
		token := t.RequireAccessToken()
		t.Trace("Testing book creation with missing author, description and price....")

		resp := t.Post(endpoints.CreateBook, map[string]interface{}{"title": "Test Book"}, 422,
			apiclient.BearerToken(token))

		assertions.ErrorHasDetail(t, resp, "Validating error response contains detail")
		var body servicedef.ValidationError
		t.DecodeBody(resp, &body)
		assertions.True(t, len(body.Detail) > 0, "Validating error lists at least one problem")
		for _, item := range body.Detail {
			assertions.SequenceContains(t, ldvalue.ArrayOf(item.Loc...), "body", "Validating error location")
		}
		t.Trace("Correctly handled invalid book creation request!!!!")
	})

	for _, target := range []endpoints.Endpoint{endpoints.Signup, endpoints.Login, endpoints.CreateBook} {
		path := target
		t.Run("malformed JSON to "+strings.Trim(string(path), "/"), func(t *T) {
			t.Annotate(annotations.CommonAPI()...)
			t.Annotate(annotations.Story("Input Validation"))
			t.Trace("Sending malformed JSON text to %s....", path)

			resp := t.Post(path, `{"email": "test@example.com",`, 422)

			assertions.ErrorHasDetail(t, resp, "Validating error response contains detail")
			assertions.NotContains(t, resp.JSON(), "message", "Validating response is not a success message")
			t.Trace("Malformed JSON was rejected!!!!")
		})
	}
}
