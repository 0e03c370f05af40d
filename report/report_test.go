package report

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/annotations"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() framework.Results {
	return framework.Run(nil, nil, func(c *framework.Context) {
		c.Run("health", func(c *framework.Context) {
			c.Run("status", func(c *framework.Context) {
				c.Annotate(annotations.Severity(annotations.SeverityCritical), annotations.Link("docs", "http://docs/health"))
			})
		})
		c.Run("books", func(c *framework.Context) {
			c.Run("create", func(c *framework.Context) {
				c.Errorf("expected status 201, got 422\nmore detail")
				c.FailNow()
			})
			c.Run("get", func(c *framework.Context) {
				c.SkipWithReason("no book id available")
			})
		})
	})
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResults()))

	var rep jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rep))

	assert.False(t, rep.Passed)
	assert.Equal(t, 3, rep.Total)
	assert.Equal(t, 1, rep.Failed)
	assert.Equal(t, 1, rep.Skipped)
	require.Len(t, rep.Tests, 3)

	assert.Equal(t, "health/status", rep.Tests[0].ID)
	assert.Equal(t, StatusPassed, rep.Tests[0].Status)
	assert.Equal(t, []jsonAnnotation{
		{Type: "severity", Value: string(annotations.SeverityCritical)},
		{Type: "link", Value: "http://docs/health", Name: "docs"},
	}, rep.Tests[0].Annotations)

	assert.Equal(t, "books/create", rep.Tests[1].ID)
	assert.Equal(t, StatusFailed, rep.Tests[1].Status)
	assert.Len(t, rep.Tests[1].Errors, 1)

	assert.Equal(t, StatusSkipped, rep.Tests[2].Status)
	assert.Equal(t, "no book id available", rep.Tests[2].SkipReason)
}

func TestWriteJUnit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJUnit(&buf, "BookStore", sampleResults()))

	var ts junitTestsuite
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &ts))

	assert.Equal(t, "BookStore", ts.Name)
	assert.Equal(t, 3, ts.Tests)
	assert.Equal(t, 1, ts.Failures)
	assert.Equal(t, 1, ts.Skipped)
	require.Len(t, ts.Testcase, 3)

	status := ts.Testcase[0]
	assert.Equal(t, "BookStore.health", status.Classname)
	assert.Equal(t, "status", status.Name)
	require.NotNil(t, status.Properties)
	assert.Equal(t, []junitProperty{
		{Name: "severity", Value: string(annotations.SeverityCritical)},
		{Name: "link", Value: "docs: http://docs/health"},
	}, status.Properties.Property)
	assert.Nil(t, status.Failure)
	assert.Nil(t, status.Skipped)

	create := ts.Testcase[1]
	require.NotNil(t, create.Failure)
	assert.Equal(t, "expected status 201, got 422", create.Failure.Message)
	assert.Contains(t, create.Failure.Text, "more detail")

	get := ts.Testcase[2]
	require.NotNil(t, get.Skipped)
	assert.Equal(t, "no book id available", get.Skipped.Message)
}

func TestWriteJUnitEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJUnit(&buf, "empty", framework.Results{}))
	assert.Contains(t, buf.String(), `tests="0"`)
}

func TestFilteredGroupsAreLeftOutOfReports(t *testing.T) {
	var filters framework.RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("^signup$"))
	results := framework.Run(filters.AsFilter, nil, func(c *framework.Context) {
		c.Run("signup", func(c *framework.Context) {
			c.Run("create new user", func(c *framework.Context) {})
		})
		c.Run("health", func(c *framework.Context) {
			c.Run("status", func(c *framework.Context) {})
		})
	})

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, results))
	var rep jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rep))
	require.Len(t, rep.Tests, 1)
	assert.Equal(t, "health/status", rep.Tests[0].ID)
	assert.Equal(t, 0, rep.Skipped)

	buf.Reset()
	require.NoError(t, WriteJUnit(&buf, "BookStore API", results))
	assert.NotContains(t, buf.String(), `name="signup"`)
}
