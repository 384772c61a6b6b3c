package gemini

import (
	"fmt"
	"net/http"
)

const (
	// DefaultBaseURL is the Google Generative Language API root.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-1.5-flash"
)

// APIClient calls the generateContent endpoint of the Generative Language API.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
	Model      string
	apiKey     string
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type candidate struct {
	Content content `json:"content"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

// CollaboratorError reports a failed generation call: transport failure,
// non-2xx status, timeout or an envelope without text.
type CollaboratorError struct {
	StatusCode int
	Reason     string
	Err        error
}

func (e *CollaboratorError) Error() string {
	msg := "gemini: " + e.Reason
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
