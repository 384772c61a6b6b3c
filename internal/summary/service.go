package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/rally-metrics/internal/cache"
	"github.com/mauv0809/rally-metrics/internal/gemini"
	"github.com/mauv0809/rally-metrics/internal/metrics"
	"github.com/mauv0809/rally-metrics/internal/player"
	"github.com/mauv0809/rally-metrics/internal/prediction"
)

// New creates a new summary Service. A nil summaryCache disables caching.
func New(store player.PlayerStore, generator gemini.TextGenerator, metrics metrics.Metrics, summaryCache cache.SummaryCache) *Service {
	if summaryCache == nil {
		summaryCache = cache.NewNoop()
	}
	return &Service{
		store:     store,
		generator: generator,
		metrics:   metrics,
		cache:     summaryCache,
	}
}

// SummaryForPlayer returns the generated profile of the player whose name
// matches name ignoring case. An unknown name is a *player.NotFoundError and
// the generator is not called. Generation failures return fallback text.
func (s *Service) SummaryForPlayer(ctx context.Context, name string) (string, error) {
	p, err := s.lookup(name)
	if err != nil {
		return "", err
	}
	s.metrics.IncSummaryRequests()
	prompt := PlayerPrompt(p)
	return s.generate(ctx, playerKey(p.Name, prompt), prompt)
}

// SummaryForMatchup returns a generated head-to-head preview of nameA against
// nameB. Both names must resolve; win rates that cannot be priced surface as
// *prediction.InvalidStatsError.
func (s *Service) SummaryForMatchup(ctx context.Context, nameA, nameB string) (string, error) {
	a, err := s.lookup(nameA)
	if err != nil {
		return "", err
	}
	b, err := s.lookup(nameB)
	if err != nil {
		return "", err
	}

	pred, err := prediction.Matchup(a, b)
	if err != nil {
		return "", err
	}
	s.metrics.IncPredictions()
	s.metrics.IncSummaryRequests()
	prompt := MatchupPrompt(a, b, pred)
	return s.generate(ctx, matchupKey(a.Name, b.Name, prompt), prompt)
}

// Predict resolves both players and returns the pure prediction.
func (s *Service) Predict(nameA, nameB string) (prediction.Prediction, error) {
	a, err := s.lookup(nameA)
	if err != nil {
		return prediction.Prediction{}, err
	}
	b, err := s.lookup(nameB)
	if err != nil {
		return prediction.Prediction{}, err
	}
	pred, err := prediction.Matchup(a, b)
	if err != nil {
		return prediction.Prediction{}, err
	}
	s.metrics.IncPredictions()
	return pred, nil
}

func (s *Service) lookup(name string) (player.Player, error) {
	all, err := s.store.FindAll()
	if err != nil {
		return player.Player{}, fmt.Errorf("failed to load players: %w", err)
	}
	name = strings.TrimSpace(name)
	for _, p := range all {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return player.Player{}, &player.NotFoundError{Name: name}
}

func (s *Service) generate(ctx context.Context, key, prompt string) (string, error) {
	if text, ok, err := s.cache.Get(ctx, key); err != nil {
		log.Warn("Summary cache read failed", "key", key, "error", err)
	} else if ok {
		s.metrics.IncSummaryCacheHits()
		log.Debug("Summary cache hit", "key", key)
		return text, nil
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.metrics.IncSummaryFallbacks()
		log.Error("Summary generation failed", "key", key, "error", err)
		return fallbackFor(err), nil
	}

	if err := s.cache.Set(ctx, key, text); err != nil {
		log.Warn("Summary cache write failed", "key", key, "error", err)
	}
	return text, nil
}

func fallbackFor(err error) string {
	var collabErr *gemini.CollaboratorError
	if errors.As(err, &collabErr) && collabErr.StatusCode >= 400 && collabErr.StatusCode < 500 {
		return FallbackAPIFailed
	}
	return FallbackSummary
}
