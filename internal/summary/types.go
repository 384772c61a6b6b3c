package summary

import (
	"github.com/mauv0809/rally-metrics/internal/cache"
	"github.com/mauv0809/rally-metrics/internal/gemini"
	"github.com/mauv0809/rally-metrics/internal/metrics"
	"github.com/mauv0809/rally-metrics/internal/player"
)

const (
	// FallbackSummary is returned when generation fails for any reason other
	// than a client error status from the collaborator.
	FallbackSummary = "Error: Unable to generate summary."
	// FallbackAPIFailed is returned when the collaborator answered with a 4xx status.
	FallbackAPIFailed = "Error: Gemini API call failed."
)

// Service builds prompts from stored stats and asks the text generator for prose.
type Service struct {
	store     player.PlayerStore
	generator gemini.TextGenerator
	metrics   metrics.Metrics
	cache     cache.SummaryCache
}
