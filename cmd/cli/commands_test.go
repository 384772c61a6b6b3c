package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method      string
	uri         string
	contentType string
	body        string
}

func runCLI(t *testing.T, args ...string) recorded {
	t.Helper()

	var got recorded
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got = recorded{method: r.Method, uri: r.URL.RequestURI(), contentType: r.Header.Get("Content-Type"), body: string(b)}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	teamFilter, nameFilter, searchFilter, csvFile, dryRun = "", "", "", "", false
	rootCmd.SetArgs(append(args, "--host", server.URL))
	require.NoError(t, rootCmd.Execute())
	return got
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		method string
		uri    string
	}{
		{"health", []string{"health"}, http.MethodGet, "/health"},
		{"upload", []string{"upload"}, http.MethodPost, "/api/v1/player/upload"},
		{"players", []string{"players"}, http.MethodGet, "/api/v1/player"},
		{"players by team", []string{"players", "--team", "Dallas Flash"}, http.MethodGet, "/api/v1/player?team=Dallas+Flash"},
		{"search", []string{"search", "ace"}, http.MethodGet, "/api/v1/player/search?name=ace"},
		{"summary", []string{"summary", "Ben Johns"}, http.MethodGet, "/api/v1/player/Ben%20Johns/summary"},
		{"odds", []string{"odds", "Ben Johns", "Anna Bright"}, http.MethodGet, "/api/v1/player/odds?playerA=Ben+Johns&playerB=Anna+Bright"},
		{"delete dry run", []string{"delete", "Bob", "--dry-run"}, http.MethodDelete, "/api/v1/player/Bob?dry_run=true"},
		{"refresh", []string{"refresh"}, http.MethodGet, "/debug/run-script"},
		{"metrics", []string{"metrics"}, http.MethodGet, "/metrics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runCLI(t, tt.args...)
			assert.Equal(t, tt.method, got.method)
			assert.Equal(t, tt.uri, got.uri)
		})
	}
}

func TestPredictCommand(t *testing.T) {
	got := runCLI(t, "predict", "Ben Johns", "Anna Bright")
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "application/json", got.contentType)
	assert.JSONEq(t, `{"playerA":"Ben Johns","playerB":"Anna Bright"}`, got.body)
}
