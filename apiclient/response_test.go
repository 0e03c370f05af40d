package apiclient

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseJSONIsParsedOnce(t *testing.T) {
	r := newResponse("GET", "http://x/books/", 200, http.Header{}, []byte(`[{"id":1},{"id":2}]`))
	v, err := r.ParseJSON()
	require.NoError(t, err)
	assert.Equal(t, 2, v.Count())

	r.body = []byte(`not json`) // cached value must not be re-parsed
	assert.Equal(t, 2, r.JSON().Count())
}

func TestResponseInvalidJSON(t *testing.T) {
	r := newResponse("GET", "http://x/health", 200, http.Header{}, []byte(`<html>`))
	_, err := r.ParseJSON()
	assert.Error(t, err)
	assert.True(t, r.JSON().IsNull())
}

func TestResponseDecode(t *testing.T) {
	r := newResponse("POST", "http://x/login", 200, http.Header{}, []byte(`{"access_token":"t","token_type":"bearer"}`))
	var out struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, r.Decode(&out))
	assert.Equal(t, "t", out.AccessToken)
}

func TestHeadersReturnsCopy(t *testing.T) {
	h := http.Header{}
	h.Set("Server", "uvicorn")
	r := newResponse("GET", "http://x/health", 200, h, nil)
	r.Headers().Set("Server", "other")
	assert.Equal(t, "uvicorn", r.Header("server"))
}

func TestExcerptTruncatesLongBodies(t *testing.T) {
	long := make([]byte, maxBodyExcerpt*2)
	for i := range long {
		long[i] = 'a'
	}
	e := excerpt(long)
	assert.Len(t, e, maxBodyExcerpt+len("...[truncated]"))
	assert.Equal(t, "short", excerpt([]byte("short")))
}
