package endpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSubstitutesLiteralValue(t *testing.T) {
	assert.Equal(t, Endpoint("/books/7"), GetBook.With(BookID, 7))
	assert.Equal(t, Endpoint("/books/invalid-id"), GetBook.With(BookID, "invalid-id"))
	assert.Equal(t, Endpoint("/books/99999"), DeleteBook.With(BookID, 99999))
}

func TestResolve(t *testing.T) {
	path, err := UpdateBook.Resolve(map[string]interface{}{BookID: 12})
	require.NoError(t, err)
	assert.Equal(t, "/books/12", path)

	path, err = Health.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, "/health", path)
}

func TestResolveReportsLeftoverPlaceholders(t *testing.T) {
	_, err := GetBook.Resolve(map[string]interface{}{"other": 1})
	require.Error(t, err)
	var unresolved *UnresolvedError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, []string{"{bookId}"}, unresolved.Placeholders)
	assert.Contains(t, err.Error(), "/books/{bookId}")
}

func TestCheckResolved(t *testing.T) {
	assert.NoError(t, CheckResolved("/books/1"))
	assert.NoError(t, CheckResolved("/books/"))
	assert.Error(t, CheckResolved(string(GetBook)))
}

func TestTableIsComplete(t *testing.T) {
	assert.Len(t, All, 8)
	for name, e := range All {
		assert.NotEmpty(t, e, name)
		assert.Equal(t, byte('/'), e.String()[0], name)
	}
	assert.Equal(t, []string{BookID}, GetBook.Placeholders())
	assert.Empty(t, GetAllBooks.Placeholders())
}
