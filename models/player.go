package models

// Player is a single bracket unit. In team mode the same structure represents
// a whole team competing under one name.
type Player struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ProfilePhoto *string `json:"profile_photo,omitempty"`

	// Cumulative group-stage record. Never mutated directly: the engine
	// recomputes every field from the full completed-match set.
	Points            int `json:"points"`
	MatchesPlayed     int `json:"matches_played"`
	Wins              int `json:"wins"`
	Draws             int `json:"draws"`
	Losses            int `json:"losses"`
	TotalGameScore    int `json:"total_game_score"`
	ScoreDifferential int `json:"score_differential"`
}

// ResetStats zeroes the cumulative record, keeping identity fields.
func (p *Player) ResetStats() {
	p.Points = 0
	p.MatchesPlayed = 0
	p.Wins = 0
	p.Draws = 0
	p.Losses = 0
	p.TotalGameScore = 0
	p.ScoreDifferential = 0
}
