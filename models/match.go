package models

// PlayerResult is one side of a submitted group-stage result.
// Points follow the 3/1/0 convention: 3 win, 1 draw, 0 loss.
// Score is the in-game score (rounds, kills, HP) used by tiebreakers.
type PlayerResult struct {
	Rank   *int `json:"rank,omitempty"`
	Points int  `json:"points"`
	Score  *int `json:"score,omitempty"`
}

// GameResult is optional per-game detail attached to a group match.
type GameResult struct {
	GameNumber   int    `json:"game_number"`
	MapName      string `json:"map_name,omitempty"`
	Player1Score int    `json:"player1_score"`
	Player2Score int    `json:"player2_score"`
	WinnerID     string `json:"winner_id,omitempty"`
}

// Match is a single group-stage pairing. Rounds are metadata: nothing
// enforces play order, the number only tells renderers which wave of the
// schedule a match belongs to.
type Match struct {
	ID        string `json:"id"`
	PodID     string `json:"pod_id"`
	Round     int    `json:"round"`
	Player1ID string `json:"player1_id"`
	Player2ID string `json:"player2_id"`

	MapName     *string                 `json:"map_name,omitempty"`
	Result      map[string]PlayerResult `json:"result,omitempty"`
	GameResults []GameResult            `json:"game_results,omitempty"`
	Completed   bool                    `json:"completed"`
}

// HasPlayer reports whether the player occupies one of the match slots.
func (m *Match) HasPlayer(playerID string) bool {
	return m.Player1ID == playerID || m.Player2ID == playerID
}

// Opponent returns the other slot's player, or "" if playerID is not in the
// match.
func (m *Match) Opponent(playerID string) string {
	switch playerID {
	case m.Player1ID:
		return m.Player2ID
	case m.Player2ID:
		return m.Player1ID
	}
	return ""
}

// ClearResult reverts the match to its unplayed state.
func (m *Match) ClearResult() {
	m.Result = nil
	m.GameResults = nil
	m.MapName = nil
	m.Completed = false
}
