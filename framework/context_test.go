package framework

import (
	"errors"
	"testing"

	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/annotations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTestLogger struct {
	events []string
}

func (r *recordingTestLogger) TestStarted(id TestID) { r.events = append(r.events, "start "+id.String()) }
func (r *recordingTestLogger) TestError(id TestID, err error) {
	r.events = append(r.events, "error "+id.String()+": "+err.Error())
}
func (r *recordingTestLogger) TestFinished(id TestID, failed bool, _ CapturedOutput) {
	if failed {
		r.events = append(r.events, "failed "+id.String())
	} else {
		r.events = append(r.events, "passed "+id.String())
	}
}
func (r *recordingTestLogger) TestSkipped(id TestID, reason string) {
	r.events = append(r.events, "skipped "+id.String()+": "+reason)
}

func TestSubtestsRunInOrder(t *testing.T) {
	var order []string
	results := Run(nil, nil, func(c *Context) {
		for _, name := range []string{"a", "b", "c"} {
			n := name
			c.Run(n, func(c *Context) { order = append(order, n) })
		}
	})
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.True(t, results.OK())
	assert.Len(t, results.Tests, 3)
}

func TestFailNowEndsOnlyThatTest(t *testing.T) {
	var reachedAfterFailure, ranNext bool
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("first", func(c *Context) {
			require.Equal(c, 1, 2)
			reachedAfterFailure = true
		})
		c.Run("second", func(c *Context) { ranNext = true })
	})

	assert.False(t, reachedAfterFailure)
	assert.True(t, ranNext)
	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "first", results.Failures[0].TestID.String())
	assert.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, logger.events, "failed first")
	assert.Contains(t, logger.events, "passed second")
}

func TestFailNowWithoutMessage(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("bare", func(c *Context) { c.FailNow() })
	})
	require.Len(t, results.Failures, 1)
	assert.EqualError(t, results.Failures[0].Errors[0], "test failed with no failure message")
}

func TestPanicIsAFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("panics", func(c *Context) { panic(errors.New("boom")) })
	})
	require.Len(t, results.Failures, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic in test: boom")
}

func TestSkip(t *testing.T) {
	logger := &recordingTestLogger{}
	var reachedAfterSkip bool
	results := Run(nil, logger, func(c *Context) {
		c.Run("skipper", func(c *Context) {
			c.SkipWithReason("no access token")
			reachedAfterSkip = true
		})
	})
	assert.False(t, reachedAfterSkip)
	assert.True(t, results.OK())
	r, ok := results.Find("skipper")
	require.True(t, ok)
	assert.True(t, r.Skipped)
	assert.Equal(t, "no access token", r.SkipReason)
	assert.Contains(t, logger.events, "skipped skipper: no access token")
	assert.Len(t, results.Skipped(), 1)
}

func TestFilterExcludesTests(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("^books/delete"))
	var ran []string
	results := Run(filters.AsFilter, nil, func(c *Context) {
		c.Run("books", func(c *Context) {
			c.Run("create", func(c *Context) { ran = append(ran, "create") })
			c.Run("delete", func(c *Context) { ran = append(ran, "delete") })
		})
	})
	assert.Equal(t, []string{"create"}, ran)
	r, ok := results.Find("books", "delete")
	require.True(t, ok)
	assert.True(t, r.Skipped)
	assert.Equal(t, "excluded by filter parameters", r.SkipReason)
	assert.True(t, r.Filtered)
}

func TestFilteredGroupIsNotReportedAsCase(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("^signup$"))
	results := Run(filters.AsFilter, nil, func(c *Context) {
		c.Run("signup", func(c *Context) {
			c.Run("create new user", func(c *Context) {})
		})
		c.Run("health", func(c *Context) {
			c.Run("status", func(c *Context) {})
		})
	})

	cases := results.Cases()
	require.Len(t, cases, 1)
	assert.Equal(t, "health/status", cases[0].TestID.String())
	assert.Empty(t, results.Skipped())

	filtered := results.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "signup", filtered[0].TestID.String())
}

func TestCleanupsRunInReverseOrderEvenAfterFailure(t *testing.T) {
	var order []string
	Run(nil, nil, func(c *Context) {
		c.Run("test", func(c *Context) {
			c.Defer(func() { order = append(order, "first") })
			c.Defer(func() { panic("ignored") })
			c.Defer(func() { order = append(order, "second") })
			c.FailNow()
		})
	})
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestGroupsAndCases(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("health", func(c *Context) {
			c.Run("status", func(c *Context) {
				c.Annotate(annotations.HealthCheck()...)
			})
		})
	})
	require.Len(t, results.Tests, 2)
	cases := results.Cases()
	require.Len(t, cases, 1)
	assert.Equal(t, "health/status", cases[0].TestID.String())
	assert.Equal(t, "status", cases[0].TestID.Name())
	assert.Equal(t, "health", cases[0].TestID.Parent())
	assert.Equal(t, annotations.List(annotations.HealthCheck()), cases[0].Annotations)

	group, ok := results.Find("health")
	require.True(t, ok)
	assert.True(t, group.Group)
}

func TestDebugOutputIsCaptured(t *testing.T) {
	var output CapturedOutput
	logger := &capturingTestLogger{onFinish: func(o CapturedOutput) { output = o }}
	Run(nil, logger, func(c *Context) {
		c.Run("test", func(c *Context) {
			c.Debug("sent %s", "GET /health")
			c.DebugLogger().Printf("received %d", 200)
		})
	})
	require.Len(t, output, 2)
	assert.Equal(t, "sent GET /health", output[0].Message)
	assert.Equal(t, "received 200", output[1].Message)
}

type capturingTestLogger struct {
	recordingTestLogger
	onFinish func(CapturedOutput)
}

func (c *capturingTestLogger) TestFinished(id TestID, failed bool, output CapturedOutput) {
	c.onFinish(output)
}

func TestReformatErrorDropsTestifyLocationLines(t *testing.T) {
	err := errors.New("\n\tError Trace:\tfoo.go:12\n\tError:\tNot equal\n\tTest:\tsomething\n")
	assert.EqualError(t, reformatError(err), "Error:\tNot equal")
}
