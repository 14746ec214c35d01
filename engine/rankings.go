package engine

import (
	"sort"
	"strings"

	"github.com/retrolan/lanbracket/models"
)

// Rankings returns the entrants in final standing order. The tiebreak
// cascade is a fixed contract, applied pairwise in this exact sequence:
//
//  1. points (higher first)
//  2. total game score (higher first)
//  3. head-to-head winner of the direct match, if one exists
//  4. wins (higher first)
//  5. losses (lower first)
//  6. score differential (higher first)
//  7. name, ascending
//
// Head-to-head only inspects the compared pair, so circular three-way ties
// fall through to the later levels and ultimately to name order. That
// matches the reference behavior and is intentional.
func (e *Engine) Rankings(t *models.Tournament) []*models.Player {
	ranked := make([]*models.Player, len(t.Players))
	copy(ranked, t.Players)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.TotalGameScore != b.TotalGameScore {
			return a.TotalGameScore > b.TotalGameScore
		}
		if h2h := headToHead(t, a.ID, b.ID); h2h != 0 {
			return h2h < 0 // negative means a won the direct match
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Losses != b.Losses {
			return a.Losses < b.Losses
		}
		if a.ScoreDifferential != b.ScoreDifferential {
			return a.ScoreDifferential > b.ScoreDifferential
		}
		return strings.Compare(a.Name, b.Name) < 0
	})
	return ranked
}

// headToHead returns the direct-match comparison between two players:
// negative if a won, positive if b won, zero when they never met, the match
// is unplayed, or it was drawn.
func headToHead(t *models.Tournament, aID, bID string) int {
	for _, m := range t.Matches {
		if !m.Completed || m.Result == nil {
			continue
		}
		if !(m.HasPlayer(aID) && m.HasPlayer(bID)) {
			continue
		}
		return m.Result[bID].Points - m.Result[aID].Points
	}
	return 0
}

// recomputeStats rebuilds every entrant's cumulative record from the full
// completed-match set. Resubmitting a result is therefore idempotent: stats
// are never incremented in place, only derived.
func recomputeStats(t *models.Tournament) {
	for _, p := range t.Players {
		p.ResetStats()
	}

	for _, m := range t.Matches {
		if !m.Completed || m.Result == nil {
			continue
		}
		for playerID, result := range m.Result {
			p := t.PlayerByID(playerID)
			if p == nil {
				continue
			}
			p.MatchesPlayed++
			p.Points += result.Points
			switch {
			case result.Points >= 3:
				p.Wins++
			case result.Points == 1:
				p.Draws++
			default:
				p.Losses++
			}
			if result.Score != nil {
				p.TotalGameScore += *result.Score
				opponent := m.Opponent(playerID)
				if opp, ok := m.Result[opponent]; ok && opp.Score != nil {
					p.ScoreDifferential += *result.Score - *opp.Score
				}
			}
		}
	}
}
