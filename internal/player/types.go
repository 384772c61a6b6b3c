package player

import (
	"database/sql"
	"sync"
)

// store handles all database operations for player statistics.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Player is one season standings row. Name is the primary key.
//
// GamesWonPercent and PtsWonPercent are stored as imported and are not
// recomputed from the won/lost counts.
type Player struct {
	Name            string  `json:"name"`
	Rank            int     `json:"rank"`
	Team            string  `json:"team"`
	GamesWon        int     `json:"games_won"`
	GamesLost       int     `json:"games_lost"`
	GamesWonPercent float64 `json:"games_won_percent"`
	PtsWon          int     `json:"pts_won"`
	PtsLost         int     `json:"pts_lost"`
	PtsWonPercent   float64 `json:"pts_won_percent"`
}

// HasTeam reports whether the player belongs to a team.
func (p Player) HasTeam() bool {
	return p.Team != ""
}

// WinRate is the win rate used for predictions: the stored games won percent.
func (p Player) WinRate() float64 {
	return p.GamesWonPercent
}
