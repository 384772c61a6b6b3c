package query

import "github.com/mauv0809/rally-metrics/internal/player"

// Engine answers read-side filters over a full scan of the player store.
type Engine struct {
	store player.PlayerStore
}

// Params are the optional filters of a player listing request.
type Params struct {
	Team       string
	Name       string
	SearchText string
}
