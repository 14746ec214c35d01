package engine

import (
	"github.com/retrolan/lanbracket/models"
)

// SubmitBracketWinner decides a ready bracket node. The winner advances
// along the node's forward edge; a semifinal loser drops into the first
// open slot of the 3rd-place node. After every decision the whole bracket
// is re-checked: once every node is decided the tournament completes.
func (e *Engine) SubmitBracketWinner(t *models.Tournament, nodeID, winnerID string) error {
	node := t.BracketMatchByID(nodeID)
	if node == nil {
		return ErrBracketMatchNotFound
	}
	switch node.State() {
	case models.NodePending:
		return ErrMatchNotReady
	case models.NodeDecided:
		return ErrMatchAlreadyDecided
	}
	if !node.HasPlayer(winnerID) {
		return ErrInvalidWinner
	}

	node.WinnerID = &winnerID
	loserID := node.Loser()

	if node.NextMatchID != nil {
		if next := t.BracketMatchByID(*node.NextMatchID); next != nil {
			advanced := winnerID
			if node.NextMatchSlot == 1 {
				next.Player1ID = &advanced
			} else {
				next.Player2ID = &advanced
			}
		}
	}

	if node.Type == models.BracketSemifinals && loserID != "" {
		if third := t.ThirdPlaceMatch(); third != nil {
			dropped := loserID
			if third.Player1ID == nil {
				third.Player1ID = &dropped
			} else if third.Player2ID == nil {
				third.Player2ID = &dropped
			}
		}
	}

	if bracketComplete(t) {
		t.State = models.StateCompleted
	}
	return nil
}

// SubmitBracketGameResult records one game of a best-of-N series and
// auto-finalizes the node once a side reaches the majority (2 of 3, or 3 of
// 5 in team mode). Games beyond the format length are rejected.
func (e *Engine) SubmitBracketGameResult(t *models.Tournament, nodeID string, game models.SeriesGame) error {
	node := t.BracketMatchByID(nodeID)
	if node == nil {
		return ErrBracketMatchNotFound
	}
	switch node.State() {
	case models.NodePending:
		return ErrMatchNotReady
	case models.NodeDecided:
		return ErrMatchAlreadyDecided
	}
	if !node.HasPlayer(game.WinnerID) {
		return ErrInvalidWinner
	}
	if len(node.Games) >= t.SeriesLength() {
		return ErrSeriesComplete
	}

	node.Games = append(node.Games, game)
	if node.Player1ID != nil && game.WinnerID == *node.Player1ID {
		node.Player1Wins++
	} else if node.Player2ID != nil && game.WinnerID == *node.Player2ID {
		node.Player2Wins++
	}

	needed := t.SeriesLength()/2 + 1
	switch {
	case node.Player1Wins >= needed:
		return e.SubmitBracketWinner(t, nodeID, *node.Player1ID)
	case node.Player2Wins >= needed:
		return e.SubmitBracketWinner(t, nodeID, *node.Player2ID)
	}
	return nil
}

// bracketComplete reports whether every node has a winner.
func bracketComplete(t *models.Tournament) bool {
	if len(t.BracketMatches) == 0 {
		return false
	}
	for _, m := range t.BracketMatches {
		if m.WinnerID == nil {
			return false
		}
	}
	return true
}
