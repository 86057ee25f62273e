package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Match is a stored summary of a finished match. Player1 moved first.
type Match struct {
	ID        int64
	MatchID   string
	Mode      string
	Player1   string
	Player2   string
	Winner    string
	Shots1    int
	Hits1     int
	Shots2    int
	Hits2     int
	Turns     int
	Duration  int // seconds
	CreatedAt time.Time
}

// WinnerShots returns how many shots the winner needed.
func (m Match) WinnerShots() int {
	if m.Winner == m.Player2 && m.Player1 != m.Player2 {
		return m.Shots2
	}
	return m.Shots1
}

// Record aggregates one player's results in a mode.
type Record struct {
	Player    string
	Games     int
	Wins      int
	Losses    int
	BestShots int // fewest shots in a win, 0 without wins
}

// SaveMatch stores a finished match and returns its match ID. A missing
// MatchID is generated.
func (s *Store) SaveMatch(m Match) (string, error) {
	if m.MatchID == "" {
		m.MatchID = newMatchID()
	}
	if m.Winner != m.Player1 && m.Winner != m.Player2 {
		return "", fmt.Errorf("storage: winner %q did not play in match", m.Winner)
	}

	_, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, mode, player1, player2, winner, shots1, hits1, shots2, hits2, turns, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.MatchID, m.Mode, m.Player1, m.Player2, m.Winner,
		m.Shots1, m.Hits1, m.Shots2, m.Hits2, m.Turns, m.Duration,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save match: %w", err)
	}
	return m.MatchID, nil
}

const matchColumns = `id, match_id, mode, player1, player2, winner,
	shots1, hits1, shots2, hits2, turns, duration_secs, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (Match, error) {
	var m Match
	var createdAt any
	err := row.Scan(
		&m.ID, &m.MatchID, &m.Mode, &m.Player1, &m.Player2, &m.Winner,
		&m.Shots1, &m.Hits1, &m.Shots2, &m.Hits2, &m.Turns, &m.Duration,
		&createdAt,
	)
	if err != nil {
		return Match{}, err
	}
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// MatchByID looks up a match by its match ID.
func (s *Store) MatchByID(matchID string) (Match, error) {
	row := s.db.QueryRow(`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`, matchID)
	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Match{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
	}
	if err != nil {
		return Match{}, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return m, nil
}

// RecentMatches returns the latest matches, newest first. An empty mode
// matches every mode.
func (s *Store) RecentMatches(mode string, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE ? = '' OR mode = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return matches, nil
}

// PlayerRecord returns player's wins and losses in mode.
func (s *Store) PlayerRecord(mode, player string) (Record, error) {
	rec := Record{Player: player}

	var best sql.NullInt64
	err := s.db.QueryRow(
		`SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
			MIN(CASE
				WHEN winner = ? AND player1 = ? THEN shots1
				WHEN winner = ? AND player2 = ? THEN shots2
			END)
		 FROM matches
		 WHERE mode = ? AND (player1 = ? OR player2 = ?)`,
		player, player, player, player, player, mode, player, player,
	).Scan(&rec.Games, &rec.Wins, &best)
	if err != nil {
		return Record{}, fmt.Errorf("storage: cannot query record: %w", err)
	}

	rec.Losses = rec.Games - rec.Wins
	if best.Valid {
		rec.BestShots = int(best.Int64)
	}
	return rec, nil
}
