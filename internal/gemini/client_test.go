package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *APIClient {
	return &APIClient{
		httpClient: server.Client(),
		BaseURL:    server.URL,
		Model:      DefaultModel,
		apiKey:     "test-key",
	}
}

func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req generateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if assert.Len(t, req.Contents, 1) && assert.Len(t, req.Contents[0].Parts, 1) {
			assert.Equal(t, "describe Ben Johns", req.Contents[0].Parts[0].Text)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"candidates":[{"content":{"parts":[{"text":"Ben is a baseline grinder."},{"text":"ignored"}]}}]}`)
	}))
	defer server.Close()

	text, err := newTestClient(server).Generate(context.Background(), "describe Ben Johns")
	require.NoError(t, err)
	assert.Equal(t, "Ben is a baseline grinder.", text)
}

func TestGenerate_Failures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{"server error", http.StatusInternalServerError, `{"error":{"message":"boom"}}`, http.StatusInternalServerError},
		{"rate limited", http.StatusTooManyRequests, `{}`, http.StatusTooManyRequests},
		{"no candidates", http.StatusOK, `{"candidates":[]}`, http.StatusOK},
		{"no parts", http.StatusOK, `{"candidates":[{"content":{"parts":[]}}]}`, http.StatusOK},
		{"empty text", http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"  "}]}}]}`, http.StatusOK},
		{"not json", http.StatusOK, `<html>`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			_, err := newTestClient(server).Generate(context.Background(), "prompt")
			var collabErr *CollaboratorError
			require.ErrorAs(t, err, &collabErr)
			assert.Equal(t, tt.wantStatus, collabErr.StatusCode)
		})
	}
}

func TestGenerate_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := newTestClient(server)
	client.httpClient.Timeout = 50 * time.Millisecond

	_, err := client.Generate(context.Background(), "prompt")
	var collabErr *CollaboratorError
	require.ErrorAs(t, err, &collabErr)
	assert.Equal(t, "request failed", collabErr.Reason)
}

func TestNewClient_Defaults(t *testing.T) {
	client, ok := NewClient("key", "", "", time.Second).(*APIClient)
	require.True(t, ok)
	assert.Equal(t, DefaultBaseURL, client.BaseURL)
	assert.Equal(t, DefaultModel, client.Model)
	assert.Equal(t, time.Second, client.httpClient.Timeout)
}
