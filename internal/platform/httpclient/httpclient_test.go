package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoText_SendsPlainBody(t *testing.T) {
	var gotBody, gotType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("abc"))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL+"/", time.Second)
	require.NoError(t, err)

	resp, err := c.DoText(context.Background(), http.MethodPost, "api/v1/events/", "2024-01-01|t|x")
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "abc", resp.Body)
	assert.Equal(t, "2024-01-01|t|x", gotBody)
	assert.Equal(t, "text/plain; charset=utf-8", gotType)
}

func TestDoText_Non2xxIsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "event not found", http.StatusNotFound)
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)

	_, err = c.DoText(context.Background(), http.MethodGet, "/x", "")
	require.Error(t, err)

	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.StatusCode)
	assert.Equal(t, "event not found", he.Body)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}

func TestResolveURL(t *testing.T) {
	c := New(0)

	_, err := c.resolveURL("/relative")
	assert.Error(t, err, "relative path without BaseURL")

	u, err := c.resolveURL("https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a", u)

	_, err = NewWithBaseURL("ftp://example.com", 0)
	assert.Error(t, err)
}
