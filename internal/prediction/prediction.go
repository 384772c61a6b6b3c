package prediction

import (
	"math"

	"github.com/mauv0809/rally-metrics/internal/player"
)

// Predict prices a matchup from two win rates. Player 1's probability is
// p1/(p1+p2) and each side's odds are derived from its own probability.
// Ties favor player 1.
func Predict(p1, p2 float64) (Odds, error) {
	switch {
	case math.IsNaN(p1) || math.IsNaN(p2) || math.IsInf(p1, 0) || math.IsInf(p2, 0):
		return Odds{}, &InvalidStatsError{P1: p1, P2: p2, Reason: "win rates must be finite"}
	case p1 < 0 || p2 < 0:
		return Odds{}, &InvalidStatsError{P1: p1, P2: p2, Reason: "win rates must not be negative"}
	case p1+p2 == 0:
		return Odds{}, &InvalidStatsError{P1: p1, P2: p2, Reason: "win rates sum to zero"}
	}

	prob := p1 / (p1 + p2)
	return Odds{
		Probability: prob,
		Player1:     AmericanOdds(prob),
		Player2:     AmericanOdds(p2 / (p1 + p2)),
		Player1Wins: p1 >= p2,
	}, nil
}

// AmericanOdds encodes one side's win probability. At 0.5 or above the side
// is the favorite: round(-100*prob/(1-prob)), capped at -MaxAmericanOdds.
// Below 0.5 it is the underdog: round(100*prob/(1-prob)), which is the
// favorite's round(100*(1-p)/p) for p = 1-prob.
func AmericanOdds(prob float64) int {
	if prob >= 0.5 {
		if prob >= 1 {
			return -MaxAmericanOdds
		}
		odds := math.Round(-100 * prob / (1 - prob))
		if odds < -MaxAmericanOdds {
			return -MaxAmericanOdds
		}
		return int(odds)
	}
	if prob <= 0 {
		return 0
	}
	return int(math.Round(100 * prob / (1 - prob)))
}

// Matchup predicts a head-to-head between a and b using their win rates.
func Matchup(a, b player.Player) (Prediction, error) {
	odds, err := Predict(a.WinRate(), b.WinRate())
	if err != nil {
		return Prediction{}, err
	}

	winner := b.Name
	if odds.Player1Wins {
		winner = a.Name
	}
	return Prediction{
		PlayerA:      a.Name,
		PlayerB:      b.Name,
		ProbabilityA: odds.Probability,
		ProbabilityB: 1 - odds.Probability,
		OddsA:        odds.Player1,
		OddsB:        odds.Player2,
		Winner:       winner,
	}, nil
}
