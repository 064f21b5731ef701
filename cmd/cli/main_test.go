package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_BadFlags(t *testing.T) {
	err := run(context.Background(), []string{"-t", "abc"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestRun_BadLogLevel(t *testing.T) {
	err := run(context.Background(), []string{"-l", "loud"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestRun_ShowsFeedAndExits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/article/latest", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":  true,
			"articles": []map[string]any{{"_id": "a1", "title": "Hello", "category": "music", "content": "hidden body"}},
		})
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	args := []string{
		"-a", srv.URL + "/api",
		"-s", filepath.Join(dir, "state", "inkwell.db"),
		"-k", filepath.Join(dir, "state", "cookies.json"),
		"-f", "json",
	}
	var out bytes.Buffer
	err := run(context.Background(), args, strings.NewReader("exit\n"), &out, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "[a1] Hello (music)")
	assert.NotContains(t, out.String(), "hidden body")
	assert.Contains(t, out.String(), "Bye!")
}
