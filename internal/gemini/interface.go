package gemini

import "context"

// TextGenerator defines the interface for the text-generation collaborator.
// This allows for mock implementations to be used in tests.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
