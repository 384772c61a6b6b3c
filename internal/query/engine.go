package query

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/rally-metrics/internal/player"
)

// New creates a new query Engine.
func New(store player.PlayerStore) *Engine {
	return &Engine{store: store}
}

// All returns every player in store scan order.
func (e *Engine) All() ([]player.Player, error) {
	players, err := e.store.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// ByTeam returns the players whose team equals team, ignoring case.
// Players without a team never match.
func (e *Engine) ByTeam(team string) ([]player.Player, error) {
	return e.filter(func(p player.Player) bool {
		return p.HasTeam() && strings.EqualFold(p.Team, team)
	})
}

// ByName returns the players whose name contains text, ignoring case.
func (e *Engine) ByName(text string) ([]player.Player, error) {
	needle := strings.ToLower(text)
	return e.filter(func(p player.Player) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	})
}

// ByNameOrTeam returns the players whose name or team contains the trimmed
// text, ignoring case. A missing team only fails the team half of the match.
func (e *Engine) ByNameOrTeam(text string) ([]player.Player, error) {
	needle := strings.ToLower(strings.TrimSpace(text))
	return e.filter(func(p player.Player) bool {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			return true
		}
		return p.HasTeam() && strings.Contains(strings.ToLower(p.Team), needle)
	})
}

// Dispatch picks a filter from the request parameters:
// team and name together run the combined search on SearchText (or Name when
// SearchText is empty), SearchText alone also runs the combined search, team
// alone filters by team, name alone filters by name and nothing lists all.
func (e *Engine) Dispatch(params Params) ([]player.Player, error) {
	switch {
	case params.Team != "" && params.Name != "":
		text := params.SearchText
		if text == "" {
			text = params.Name
		}
		log.Debug("Dispatching combined search", "text", text)
		return e.ByNameOrTeam(text)
	case params.SearchText != "":
		log.Debug("Dispatching combined search", "text", params.SearchText)
		return e.ByNameOrTeam(params.SearchText)
	case params.Team != "":
		log.Debug("Dispatching team filter", "team", params.Team)
		return e.ByTeam(params.Team)
	case params.Name != "":
		log.Debug("Dispatching name filter", "name", params.Name)
		return e.ByName(params.Name)
	default:
		return e.All()
	}
}

func (e *Engine) filter(match func(p player.Player) bool) ([]player.Player, error) {
	all, err := e.All()
	if err != nil {
		return nil, err
	}
	out := make([]player.Player, 0, len(all))
	for _, p := range all {
		if match(p) {
			out = append(out, p)
		}
	}
	return out, nil
}
