package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// NewClient creates a new Gemini client. Empty baseURL and model fall back to
// the defaults; timeout bounds every call.
func NewClient(apiKey, baseURL, model string, timeout time.Duration) TextGenerator {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &APIClient{
		httpClient: &http.Client{Timeout: timeout},
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Model:      model,
		apiKey:     apiKey,
	}
}

// Ensure APIClient implements the TextGenerator interface.
var _ TextGenerator = (*APIClient)(nil)

// Generate sends prompt as a single user turn and returns the first
// candidate's first text part. Every failure is a *CollaboratorError.
func (c *APIClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", &CollaboratorError{Reason: "failed to encode request", Err: err}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.BaseURL, c.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &CollaboratorError{Reason: "failed to create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	log.Debug("Calling Gemini", "model", c.Model, "prompt_length", len(prompt))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &CollaboratorError{Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Warn("Gemini returned non-OK status", "status", resp.StatusCode, "body", string(b))
		return "", &CollaboratorError{StatusCode: resp.StatusCode, Reason: "unexpected status"}
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &CollaboratorError{StatusCode: resp.StatusCode, Reason: "failed to decode response", Err: err}
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", &CollaboratorError{StatusCode: resp.StatusCode, Reason: "response has no candidate"}
	}
	text := out.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", &CollaboratorError{StatusCode: resp.StatusCode, Reason: "candidate text is empty"}
	}

	log.Debug("Gemini call succeeded", "model", c.Model, "duration", time.Since(start))
	return text, nil
}
