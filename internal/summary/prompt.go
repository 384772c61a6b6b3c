package summary

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mauv0809/rally-metrics/internal/player"
	"github.com/mauv0809/rally-metrics/internal/prediction"
)

const styleHint = "Based on win/loss ratio and points"

const playerPrompt = `You are an expert fantasy sports analyst. Provide a short 3-paragraph fantasy profile for a Major League Pickleball player named %s on the team %s.

1. Describe their playstyle and summarize their overall performance briefly.
2. Summarize their recent match outcomes (without specific scores or stats) using a few short sentences.
3. End with a sentence starting ONLY with: "You should..." to tell a fantasy user if they should draft this player.

Style hint: %s
Match record summary: %s

Keep the tone informative and focused. No bullet points. Do not include game scores. Do not say "Yes" or "No" to start the recommendation. ONLY begin the final sentence with "You should".
`

const matchupPrompt = `You are an expert fantasy sports analyst. Preview a head-to-head Major League Pickleball matchup between %s (team %s) and %s (team %s) in two short paragraphs.

1. Contrast the two players' playstyles and overall form.
2. End with a sentence starting ONLY with: "You should..." to tell a fantasy user which player to start.

Style hint: %s
%s match record summary: %s
%s match record summary: %s
Model forecast: %s is favored. %s wins with probability %.0f%% (moneyline %s); %s wins with probability %.0f%% (moneyline %s).

Keep the tone informative and focused. No bullet points. Do not include game scores.
`

// Digest formats the season record handed to the text generator.
func Digest(p player.Player) string {
	return fmt.Sprintf("Games won: %d, Games lost: %d, Points won: %d, Points lost: %d",
		p.GamesWon, p.GamesLost, p.PtsWon, p.PtsLost)
}

// PlayerPrompt builds the single-player profile prompt.
func PlayerPrompt(p player.Player) string {
	return fmt.Sprintf(playerPrompt, p.Name, teamOf(p), styleHint, Digest(p))
}

// MatchupPrompt builds the head-to-head prompt for a and b with their prediction.
func MatchupPrompt(a, b player.Player, pred prediction.Prediction) string {
	return fmt.Sprintf(matchupPrompt,
		a.Name, teamOf(a), b.Name, teamOf(b),
		styleHint,
		a.Name, Digest(a),
		b.Name, Digest(b),
		pred.Winner,
		a.Name, pred.ProbabilityA*100, moneyline(pred.OddsA),
		b.Name, pred.ProbabilityB*100, moneyline(pred.OddsB),
	)
}

func teamOf(p player.Player) string {
	if !p.HasTeam() {
		return "unlisted"
	}
	return p.Team
}

func moneyline(odds int) string {
	if odds > 0 {
		return fmt.Sprintf("+%d", odds)
	}
	return fmt.Sprintf("%d", odds)
}

// Cache keys carry a hash of the prompt, so a summary is only reused while
// the stats it was generated from are unchanged.
func playerKey(name, prompt string) string {
	return "player:" + strings.ToLower(name) + ":" + promptHash(prompt)
}

func matchupKey(a, b, prompt string) string {
	return "matchup:" + strings.ToLower(a) + "|" + strings.ToLower(b) + ":" + promptHash(prompt)
}

func promptHash(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:8])
}
