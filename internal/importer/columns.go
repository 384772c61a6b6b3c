package importer

import (
	"math"
	"strconv"
	"strings"

	"github.com/mauv0809/rally-metrics/internal/player"
)

// CSV column headers, in the positional order of the bundled stats file.
const (
	ColName            = "Name"
	ColRank            = "Rank"
	ColTeam            = "Team"
	ColGamesWon        = "Games Won"
	ColGamesLost       = "Games Lost"
	ColGamesWonPercent = "Games Won Percent"
	ColPtsWon          = "Pts Won"
	ColPtsLost         = "Pts Lost"
	ColPtsWonPercent   = "Pts Won Percent"
)

// column binds one CSV header to the Player field it fills.
type column struct {
	header string
	set    func(p *player.Player, raw string) error
}

// columns is the column-to-field mapping table consulted by ParseRecord.
var columns = []column{
	{ColName, func(p *player.Player, raw string) error {
		if raw == "" {
			return ErrEmptyValue
		}
		p.Name = raw
		return nil
	}},
	{ColRank, intField(func(p *player.Player, v int) { p.Rank = v }, false)},
	{ColTeam, func(p *player.Player, raw string) error {
		p.Team = raw
		return nil
	}},
	{ColGamesWon, intField(func(p *player.Player, v int) { p.GamesWon = v }, true)},
	{ColGamesLost, intField(func(p *player.Player, v int) { p.GamesLost = v }, true)},
	{ColGamesWonPercent, floatField(func(p *player.Player, v float64) { p.GamesWonPercent = v })},
	{ColPtsWon, intField(func(p *player.Player, v int) { p.PtsWon = v }, true)},
	{ColPtsLost, intField(func(p *player.Player, v int) { p.PtsLost = v }, true)},
	{ColPtsWonPercent, floatField(func(p *player.Player, v float64) { p.PtsWonPercent = v })},
}

// Headers returns the expected CSV header row.
func Headers() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.header
	}
	return out
}

func intField(set func(p *player.Player, v int), count bool) func(p *player.Player, raw string) error {
	return func(p *player.Player, raw string) error {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		if count && v < 0 {
			return ErrNegativeCount
		}
		set(p, v)
		return nil
	}
}

func floatField(set func(p *player.Player, v float64)) func(p *player.Player, raw string) error {
	return func(p *player.Player, raw string) error {
		// ParseFloat also accepts hexadecimal mantissas.
		if strings.ContainsAny(raw, "xX") {
			return strconv.ErrSyntax
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotFinite
		}
		set(p, v)
		return nil
	}
}

// Layout maps each column of the table to its index in a CSV record.
type Layout []int

// DefaultLayout is the positional layout: column i is at index i.
func DefaultLayout() Layout {
	l := make(Layout, len(columns))
	for i := range l {
		l[i] = i
	}
	return l
}

// LayoutFromHeader resolves column positions by header name, ignoring case and
// surrounding spaces. It reports false if any column is missing.
func LayoutFromHeader(header []string) (Layout, bool) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}
	l := make(Layout, len(columns))
	for i, c := range columns {
		pos, ok := index[normalizeHeader(c.header)]
		if !ok {
			return nil, false
		}
		l[i] = pos
	}
	return l, true
}

// width is the minimum number of fields a record needs for this layout.
func (l Layout) width() int {
	w := 0
	for _, pos := range l {
		if pos+1 > w {
			w = pos + 1
		}
	}
	return w
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}
