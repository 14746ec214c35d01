package models

// BracketType identifies a node's role in the elimination tree.
type BracketType string

const (
	BracketQuarterfinals BracketType = "quarterfinals"
	BracketSemifinals    BracketType = "semifinals"
	BracketFinals        BracketType = "finals"
	BracketThirdPlace    BracketType = "3rd-place"
)

// NodeState is the advancement state derived from a node's slots and winner.
type NodeState string

const (
	NodePending NodeState = "pending" // fewer than two players assigned
	NodeReady   NodeState = "ready"   // both players assigned, no winner
	NodeDecided NodeState = "decided" // winner recorded
)

// SeriesGame is one game of a best-of-N bracket series.
type SeriesGame struct {
	GameNumber   int    `json:"game_number"`
	MapName      string `json:"map_name,omitempty"`
	Player1Score int    `json:"player1_score"`
	Player2Score int    `json:"player2_score"`
	WinnerID     string `json:"winner_id"`
}

// BracketMatch is one slot in the elimination tree. Player references may be
// filled at creation (seeded) or later by advancement. NextMatchID/Slot is
// the forward edge the winner travels along; the third-place node instead
// records which semifinals feed its slots.
type BracketMatch struct {
	ID    string      `json:"id"`
	Round int         `json:"round"`
	Type  BracketType `json:"bracket_type"`
	Label string      `json:"match_label,omitempty"`

	Player1ID *string `json:"player1_id,omitempty"`
	Player2ID *string `json:"player2_id,omitempty"`
	WinnerID  *string `json:"winner_id,omitempty"`

	NextMatchID   *string `json:"next_match_id,omitempty"`
	NextMatchSlot int     `json:"next_match_slot,omitempty"` // 1 or 2

	LoserFromMatch1 *string `json:"loser_from_match1,omitempty"`
	LoserFromMatch2 *string `json:"loser_from_match2,omitempty"`

	// Best-of-N series tracking. Games stays nil for nodes decided by a
	// single winner submission.
	Games       []SeriesGame `json:"games,omitempty"`
	Player1Wins int          `json:"player1_wins,omitempty"`
	Player2Wins int          `json:"player2_wins,omitempty"`
}

// State derives the advancement state machine position for this node.
func (m *BracketMatch) State() NodeState {
	switch {
	case m.WinnerID != nil:
		return NodeDecided
	case m.Player1ID != nil && m.Player2ID != nil:
		return NodeReady
	default:
		return NodePending
	}
}

// HasPlayer reports whether the player occupies one of the node's slots.
func (m *BracketMatch) HasPlayer(playerID string) bool {
	if m.Player1ID != nil && *m.Player1ID == playerID {
		return true
	}
	return m.Player2ID != nil && *m.Player2ID == playerID
}

// Loser returns the ID of the non-winning player, or "" if the node is not
// decided or a slot is empty.
func (m *BracketMatch) Loser() string {
	if m.WinnerID == nil || m.Player1ID == nil || m.Player2ID == nil {
		return ""
	}
	if *m.Player1ID == *m.WinnerID {
		return *m.Player2ID
	}
	return *m.Player1ID
}
