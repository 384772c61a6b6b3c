package importer

import (
	"strings"

	"github.com/mauv0809/rally-metrics/internal/player"
)

// ParseRecord turns data row number row into a Player. Fields are read at the
// positions given by layout and trimmed of surrounding spaces. Numbers are parsed
// strictly in base 10; a bad value fails the row instead of defaulting to zero.
//
// The error is a *MalformedRowError when the record is too short, otherwise a
// *RowParseError naming the first offending column.
func ParseRecord(row int, record []string, layout Layout) (player.Player, error) {
	if len(layout) != len(columns) {
		layout = DefaultLayout()
	}
	if want := layout.width(); len(record) < want {
		return player.Player{}, &MalformedRowError{Row: row, Got: len(record), Want: want}
	}

	var p player.Player
	for i, c := range columns {
		raw := strings.TrimSpace(record[layout[i]])
		if err := c.set(&p, raw); err != nil {
			return player.Player{}, &RowParseError{Row: row, Field: c.header, Value: raw, Err: err}
		}
	}
	return p, nil
}
