package bookstoretests

import (
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/annotations"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/assertions"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/endpoints"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/servicedef"
)

func DoHealthTests(t *T) {
	t.Run("service is up", func(t *T) {
		t.Annotate(annotations.HealthCheck()...)
		t.Annotate(
			annotations.Description("Verifies that the BookStore service is running and reports its status"),
			annotations.Story("Service Health Check"),
			annotations.TestCase("TC-001"),
		)
		t.Trace("PreRequisite- Validating if Server is up and Running...")

		resp := t.Get(endpoints.Health, 200)
		var health servicedef.HealthResponse
		t.DecodeBody(resp, &health)

		assertions.Equals(t, health.Status, "up", "Validating status value")
		requireStandardHeaders(t, resp)

		t.Trace("PreRequisite- Validated Server is up and Running!!!")
	})
}
