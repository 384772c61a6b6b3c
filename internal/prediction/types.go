package prediction

import "fmt"

// MaxAmericanOdds caps the favorite's odds when its win probability is 1.
const MaxAmericanOdds = 100000

// Odds is the priced outcome of a pair of win rates.
type Odds struct {
	// Probability is player 1's normalized win probability.
	Probability float64
	Player1     int
	Player2     int
	// Player1Wins is true when player 1's win rate is at least player 2's.
	Player1Wins bool
}

// Prediction is a named head-to-head forecast between two players.
type Prediction struct {
	PlayerA      string  `json:"player_a"`
	PlayerB      string  `json:"player_b"`
	ProbabilityA float64 `json:"probability_a"`
	ProbabilityB float64 `json:"probability_b"`
	OddsA        int     `json:"odds_a"`
	OddsB        int     `json:"odds_b"`
	Winner       string  `json:"winner"`
}

// InvalidStatsError reports win rates that cannot be priced.
type InvalidStatsError struct {
	P1     float64
	P2     float64
	Reason string
}

func (e *InvalidStatsError) Error() string {
	return fmt.Sprintf("invalid win rates %v and %v: %s", e.P1, e.P2, e.Reason)
}
