package player

import (
	"database/sql"
	"errors"

	"github.com/charmbracelet/log"
)

// New creates a new PlayerStore backed by db. The schema is expected to be
// migrated already (see database.InitDB).
func New(db *sql.DB) PlayerStore {
	return &store{
		db: db,
	}
}

// Upsert inserts a player or overwrites every column of the existing row with the
// same name. The row keeps its original position in scan order.
func (s *store) Upsert(p Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO player_statistic (name, rank, team, games_won, games_lost, games_won_percent, pts_won, pts_lost, pts_won_percent)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			rank = excluded.rank,
			team = excluded.team,
			games_won = excluded.games_won,
			games_lost = excluded.games_lost,
			games_won_percent = excluded.games_won_percent,
			pts_won = excluded.pts_won,
			pts_lost = excluded.pts_lost,
			pts_won_percent = excluded.pts_won_percent;
	`, p.Name, p.Rank, nullableString(p.Team), p.GamesWon, p.GamesLost, p.GamesWonPercent, p.PtsWon, p.PtsLost, p.PtsWonPercent)
	if err != nil {
		log.Error("Failed to upsert player", "error", err, "name", p.Name)
		return err
	}
	log.Debug("Upserted player", "name", p.Name, "team", p.Team)
	return nil
}

// FindAll returns every player ordered by insertion.
func (s *store) FindAll() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT name, rank, team, games_won, games_lost, games_won_percent, pts_won, pts_lost, pts_won_percent
		FROM player_statistic
		ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := []Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

func (s *store) FindByName(name string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT name, rank, team, games_won, games_lost, games_won_percent, pts_won, pts_lost, pts_won_percent
		FROM player_statistic
		WHERE name = ?
	`, name)
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Name: name}
		}
		return nil, err
	}
	return p, nil
}

func (s *store) DeleteByName(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM player_statistic WHERE name = ?", name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		log.Debug("Delete matched no player", "name", name)
	}
	return nil
}

func (s *store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM player_statistic").Scan(&n)
	return n, err
}

func (s *store) Ping() error {
	return s.db.Ping()
}

// scanPlayer is a helper function to scan a single player row.
func scanPlayer(scanner interface{ Scan(...any) error }) (*Player, error) {
	var p Player
	var team sql.NullString
	err := scanner.Scan(
		&p.Name, &p.Rank, &team,
		&p.GamesWon, &p.GamesLost, &p.GamesWonPercent,
		&p.PtsWon, &p.PtsLost, &p.PtsWonPercent,
	)
	if err != nil {
		return nil, err
	}
	p.Team = team.String
	return &p, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
