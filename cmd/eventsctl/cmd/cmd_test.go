package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"events-calendar/internal/domain/events"
	"events-calendar/internal/router"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestCLI_Lifecycle(t *testing.T) {
	srv := httptest.NewServer(router.NewRouter(router.Options{}))
	defer srv.Close()

	out, err := execute(t, "--server", srv.URL, "list")
	require.NoError(t, err)
	assert.Equal(t, "no events yet\n", out)

	out, err = execute(t, "--server", srv.URL, "add", "--date", "2024-03-01", "--title", "Meeting", "--text", "Discuss roadmap")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "created "), out)
	id := strings.TrimSpace(strings.TrimPrefix(out, "created "))

	out, err = execute(t, "--server", srv.URL, "--locale", "en", "show", id)
	require.NoError(t, err)
	assert.Equal(t, "["+id+"] Friday, March 1, 2024\nMeeting\nDiscuss roadmap\n", out)

	out, err = execute(t, "--server", srv.URL, "--locale", "ru", "list", "--month", "2024-03")
	require.NoError(t, err)
	assert.Equal(t, "["+id+"] пятница, 1 марта 2024 г.\nMeeting\nDiscuss roadmap\n", out)

	_, err = execute(t, "--server", srv.URL, "edit", id, "--title", "Renamed")
	require.NoError(t, err)

	out, err = execute(t, "--server", srv.URL, "--locale", "en", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "\nRenamed\nDiscuss roadmap\n")

	out, err = execute(t, "--server", srv.URL, "delete", id)
	require.NoError(t, err)
	assert.Equal(t, "deleted "+id+"\n", out)

	out, err = execute(t, "--server", srv.URL, "list")
	require.NoError(t, err)
	assert.Equal(t, "no events yet\n", out)
}

func TestCLI_ValidationFailsWithoutContactingServer(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	_, err := execute(t, "--server", srv.URL, "add", "--date", "2024-03-01", "--title", strings.Repeat("x", 31), "--text", "y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")

	_, err = execute(t, "--server", srv.URL, "add", "--title", "t", "--text", "y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date")

	assert.Equal(t, int32(0), hits.Load())
}

func TestCLI_ArgsAndFlags(t *testing.T) {
	_, err := execute(t, "show")
	assert.Error(t, err)

	_, err = execute(t, "--server", "not a url", "list")
	assert.Error(t, err)
}

func TestPrintCards_SeparatesWithBlankLine(t *testing.T) {
	id := "1"
	var buf bytes.Buffer
	printCards(&buf, []events.Record{
		{ID: &id, Date: "2024-03-01", Title: "A", Text: "a"},
		{Date: "bad", Title: "B", Text: "b"},
	}, events.LocaleEN)

	assert.Equal(t, "[1] Friday, March 1, 2024\nA\na\n\n[] bad\nB\nb\n", buf.String())
}
