package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPath(p ...string) TestID { return TestID{Path: p} }

func TestRunPatternMatchesLevelByLevel(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^books$/^create$"))

	assert.True(t, filters.AsFilter(testPath("books")), "parent group must stay so its children can run")
	assert.True(t, filters.AsFilter(testPath("books", "create")))
	assert.True(t, filters.AsFilter(testPath("books", "create", "new book")))
	assert.False(t, filters.AsFilter(testPath("books", "delete")))
	assert.False(t, filters.AsFilter(testPath("signup")))
}

func TestRunPatternWithoutSlashSelectsTopLevel(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("token"))

	assert.True(t, filters.AsFilter(testPath("token", "valid token")))
	assert.False(t, filters.AsFilter(testPath("books", "token in name")))
}

func TestRunPatternsAreAlternatives(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^health"))
	require.NoError(t, filters.MustMatch.Set("^login"))

	assert.True(t, filters.AsFilter(testPath("health", "service is up")))
	assert.True(t, filters.AsFilter(testPath("login")))
	assert.False(t, filters.AsFilter(testPath("books")))
	assert.Equal(t, `"^health" or "^login"`, filters.MustMatch.String())
}

func TestSkipPatternMatchesWholePath(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("create/new"))

	assert.True(t, filters.AsFilter(testPath("books", "create")))
	assert.False(t, filters.AsFilter(testPath("books", "create", "new book")))
}

func TestSplitLevels(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitLevels("a/b"))
	assert.Equal(t, []string{`a\/b`}, splitLevels(`a\/b`))
	assert.Equal(t, []string{"[/]", "c"}, splitLevels("[/]/c"))
	assert.Equal(t, []string{"(x/y)"}, splitLevels("(x/y)"))
}

func TestSetRejectsInvalidRegex(t *testing.T) {
	var list RegexList
	assert.Error(t, list.Set("("))
	assert.False(t, list.IsDefined())
}

func TestPrintFilterDescription(t *testing.T) {
	var buf bytes.Buffer
	PrintFilterDescription(&buf, RegexFilters{})
	assert.Empty(t, buf.String())

	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("^signup"))
	PrintFilterDescription(&buf, filters)
	assert.Contains(t, buf.String(), `skip any matching "^signup"`)
	assert.NotContains(t, buf.String(), "not matching")
}
