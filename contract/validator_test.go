package contract

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://127.0.0.1:8000"

func jsonHeader() http.Header {
	return http.Header{"Content-Type": []string{"application/json"}}
}

func TestLoadBuiltInDocument(t *testing.T) {
	v, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "BookStore API", v.Doc().Info.Title)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookstore.yaml")
	require.NoError(t, os.WriteFile(path, bookstoreDoc, 0o600))

	v, err := LoadFromFile(path)
	require.NoError(t, err)
	_, _, err = v.ValidateResponse(context.Background(), "GET", baseURL+"/health", 200, jsonHeader(), []byte(`{"status":"up"}`))
	assert.NoError(t, err)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFromBytesRejectsInvalidDocument(t *testing.T) {
	_, err := LoadFromBytes([]byte(`openapi: 3.0.3
info: { title: x }
paths: {}
`))
	assert.Error(t, err)
}

func TestValidResponses(t *testing.T) {
	v, err := Load()
	require.NoError(t, err)

	cases := []struct {
		method, path string
		status       int
		body         string
		route        string
	}{
		{"GET", "/health", 200, `{"status":"up"}`, "/health"},
		{"POST", "/signup", 200, `{"message":"User created successfully"}`, "/signup"},
		{"POST", "/signup", 400, `{"detail":"Email already registered"}`, "/signup"},
		{"POST", "/login", 200, `{"access_token":"token_1_a@b.com","token_type":"bearer"}`, "/login"},
		{"GET", "/books/", 200, `[{"id":1,"title":"a","author":"b","description":"c","price":10.5}]`, "/books/"},
		{"GET", "/books/", 200, `[]`, "/books/"},
		{"POST", "/books/", 201, `{"id":2,"title":"a","author":"b","description":"c","price":99}`, "/books/"},
		{"GET", "/books/99999", 404, `{"detail":"Book not found"}`, "/books/{bookId}"},
		{"GET", "/books/invalid-id", 422,
			`{"detail":[{"loc":["path","book_id"],"msg":"value is not a valid integer","type":"type_error.integer"}]}`,
			"/books/{bookId}"},
		{"DELETE", "/books/1", 200, `{"message":"Book deleted successfully"}`, "/books/{bookId}"},
	}
	for _, c := range cases {
		t.Run(c.method+" "+c.path, func(t *testing.T) {
			routePath, routeMethod, err := v.ValidateResponse(context.Background(), c.method, baseURL+c.path,
				c.status, jsonHeader(), []byte(c.body))
			require.NoError(t, err)
			assert.Equal(t, c.route, routePath)
			assert.Equal(t, c.method, routeMethod)
		})
	}
}

func TestInvalidResponses(t *testing.T) {
	v, err := Load()
	require.NoError(t, err)

	t.Run("missing required field", func(t *testing.T) {
		_, _, err := v.ValidateResponse(context.Background(), "POST", baseURL+"/books/", 201, jsonHeader(),
			[]byte(`{"title":"a","author":"b","description":"c","price":1}`))
		assert.Error(t, err)
	})

	t.Run("wrong field type", func(t *testing.T) {
		_, _, err := v.ValidateResponse(context.Background(), "GET", baseURL+"/health", 200, jsonHeader(),
			[]byte(`{"status":1}`))
		assert.Error(t, err)
	})

	t.Run("undocumented status", func(t *testing.T) {
		_, _, err := v.ValidateResponse(context.Background(), "GET", baseURL+"/health", 500, jsonHeader(),
			[]byte(`{"detail":"boom"}`))
		assert.Error(t, err)
	})

	t.Run("missing content type", func(t *testing.T) {
		_, _, err := v.ValidateResponse(context.Background(), "GET", baseURL+"/health", 200, http.Header{},
			[]byte(`{"status":"up"}`))
		assert.Error(t, err)
	})

	t.Run("unknown route", func(t *testing.T) {
		_, _, err := v.ValidateResponse(context.Background(), "GET", baseURL+"/authors", 200, jsonHeader(),
			[]byte(`[]`))
		assert.Error(t, err)
	})
}

func TestCoverage(t *testing.T) {
	v, err := Load()
	require.NoError(t, err)

	covered, uncovered := v.Coverage()
	assert.Len(t, covered, 0)
	assert.Len(t, uncovered, 8)

	_, _, err = v.ValidateResponse(context.Background(), "GET", baseURL+"/health", 200, jsonHeader(),
		[]byte(`{"status":"up"}`))
	require.NoError(t, err)
	_, _, _ = v.ValidateResponse(context.Background(), "GET", baseURL+"/books/7", 404, jsonHeader(),
		[]byte(`{"detail":"Book not found"}`))

	covered, uncovered = v.Coverage()
	assert.Equal(t, []string{"GET /books/{bookId}", "GET /health"}, covered)
	assert.Len(t, uncovered, 6)
	assert.Contains(t, uncovered, "DELETE /books/{bookId}")
}
