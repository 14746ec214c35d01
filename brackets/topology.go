// Package brackets builds elimination trees for qualified, seeded entrants.
// Topologies form a small closed set selected by a pure function of the
// qualifier count, total field and group count; each variant knows how to
// place seeds and wire the forward edges the advancement machine follows.
package brackets

import (
	"github.com/google/uuid"

	"github.com/retrolan/lanbracket/models"
)

// Topology tags one bracket shape.
type Topology string

const (
	// TopologyDirectFinal is a lone grand final between two entrants.
	TopologyDirectFinal Topology = "direct-final"
	// TopologyDirectFinalBronze pairs seeds 1v2 in the final and 3v4 for
	// bronze with no semifinals: a single group of four has already decided
	// every pairwise outcome.
	TopologyDirectFinalBronze Topology = "direct-final-bronze"
	// TopologyFourSemifinals is the standard 4-seed tree: 1v4 and 2v3
	// semifinals feeding a final and a 3rd-place match.
	TopologyFourSemifinals Topology = "four-semifinals"
	// TopologySixWithByes gives seeds 1 and 2 byes into the semifinals;
	// seeds 3-6 play two quarterfinals.
	TopologySixWithByes Topology = "six-with-byes"
	// TopologyEightQuarterfinals is the full 8-seed tree: 1v8, 4v5, 2v7,
	// 3v6 quarterfinals.
	TopologyEightQuarterfinals Topology = "eight-quarterfinals"
)

// Select picks the topology for a qualified field. totalPlayers
// distinguishes the single-group-of-four case, where everyone has already
// played everyone and semifinals would only repeat group matches.
func Select(numQualified, totalPlayers, numGroups int) Topology {
	switch numQualified {
	case 2:
		return TopologyDirectFinal
	case 4:
		if totalPlayers == 4 && numGroups <= 1 {
			return TopologyDirectFinalBronze
		}
		return TopologyFourSemifinals
	case 6:
		return TopologySixWithByes
	case 8:
		return TopologyEightQuarterfinals
	default:
		// Odd qualifier counts collapse to the 4-seed tree over the top of
		// the field.
		return TopologyFourSemifinals
	}
}

// Build places the seeded entrants into the chosen topology. players must
// already be in seed order (rank one first).
func Build(topology Topology, players []*models.Player) []*models.BracketMatch {
	switch topology {
	case TopologyDirectFinal:
		return buildDirectFinal(players)
	case TopologyDirectFinalBronze:
		return buildDirectFinalBronze(players)
	case TopologySixWithByes:
		return buildSixWithByes(players)
	case TopologyEightQuarterfinals:
		return buildEightQuarterfinals(players)
	default:
		if len(players) > 4 {
			players = players[:4]
		}
		return buildFourSemifinals(players)
	}
}

func seedID(players []*models.Player, seed int) *string {
	if seed >= len(players) {
		return nil
	}
	id := players[seed].ID
	return &id
}

func buildDirectFinal(players []*models.Player) []*models.BracketMatch {
	return []*models.BracketMatch{
		{
			ID:        uuid.NewString(),
			Round:     1,
			Type:      models.BracketFinals,
			Label:     "Grand Final",
			Player1ID: seedID(players, 0),
			Player2ID: seedID(players, 1),
		},
	}
}

func buildDirectFinalBronze(players []*models.Player) []*models.BracketMatch {
	return []*models.BracketMatch{
		{
			ID:        uuid.NewString(),
			Round:     1,
			Type:      models.BracketThirdPlace,
			Label:     "3rd Place Match",
			Player1ID: seedID(players, 2),
			Player2ID: seedID(players, 3),
		},
		{
			ID:        uuid.NewString(),
			Round:     1,
			Type:      models.BracketFinals,
			Label:     "Grand Final",
			Player1ID: seedID(players, 0),
			Player2ID: seedID(players, 1),
		},
	}
}

func buildFourSemifinals(players []*models.Player) []*models.BracketMatch {
	semi1ID := uuid.NewString()
	semi2ID := uuid.NewString()
	finalID := uuid.NewString()

	return []*models.BracketMatch{
		{
			ID:            semi1ID,
			Round:         1,
			Type:          models.BracketSemifinals,
			Label:         "Semifinal 1",
			Player1ID:     seedID(players, 0),
			Player2ID:     seedID(players, 3),
			NextMatchID:   &finalID,
			NextMatchSlot: 1,
		},
		{
			ID:            semi2ID,
			Round:         1,
			Type:          models.BracketSemifinals,
			Label:         "Semifinal 2",
			Player1ID:     seedID(players, 1),
			Player2ID:     seedID(players, 2),
			NextMatchID:   &finalID,
			NextMatchSlot: 2,
		},
		{
			ID:              uuid.NewString(),
			Round:           2,
			Type:            models.BracketThirdPlace,
			Label:           "3rd Place Match",
			LoserFromMatch1: &semi1ID,
			LoserFromMatch2: &semi2ID,
		},
		{
			ID:    finalID,
			Round: 2,
			Type:  models.BracketFinals,
			Label: "Grand Final",
		},
	}
}

func buildSixWithByes(players []*models.Player) []*models.BracketMatch {
	semi1ID := uuid.NewString()
	semi2ID := uuid.NewString()
	finalID := uuid.NewString()

	return []*models.BracketMatch{
		// Quarterfinal 1: 3v6, winner meets the second seed.
		{
			ID:            uuid.NewString(),
			Round:         1,
			Type:          models.BracketQuarterfinals,
			Label:         "Quarterfinal 1",
			Player1ID:     seedID(players, 2),
			Player2ID:     seedID(players, 5),
			NextMatchID:   &semi2ID,
			NextMatchSlot: 2,
		},
		// Quarterfinal 2: 4v5, winner meets the top seed.
		{
			ID:            uuid.NewString(),
			Round:         1,
			Type:          models.BracketQuarterfinals,
			Label:         "Quarterfinal 2",
			Player1ID:     seedID(players, 3),
			Player2ID:     seedID(players, 4),
			NextMatchID:   &semi1ID,
			NextMatchSlot: 2,
		},
		{
			ID:            semi1ID,
			Round:         2,
			Type:          models.BracketSemifinals,
			Label:         "Semifinal 1",
			Player1ID:     seedID(players, 0), // bye
			NextMatchID:   &finalID,
			NextMatchSlot: 1,
		},
		{
			ID:            semi2ID,
			Round:         2,
			Type:          models.BracketSemifinals,
			Label:         "Semifinal 2",
			Player1ID:     seedID(players, 1), // bye
			NextMatchID:   &finalID,
			NextMatchSlot: 2,
		},
		{
			ID:              uuid.NewString(),
			Round:           3,
			Type:            models.BracketThirdPlace,
			Label:           "3rd Place Match",
			LoserFromMatch1: &semi1ID,
			LoserFromMatch2: &semi2ID,
		},
		{
			ID:    finalID,
			Round: 3,
			Type:  models.BracketFinals,
			Label: "Grand Final",
		},
	}
}

func buildEightQuarterfinals(players []*models.Player) []*models.BracketMatch {
	semi1ID := uuid.NewString()
	semi2ID := uuid.NewString()
	finalID := uuid.NewString()

	quarter := func(label string, seedA, seedB int, nextID string, slot int) *models.BracketMatch {
		next := nextID
		return &models.BracketMatch{
			ID:            uuid.NewString(),
			Round:         1,
			Type:          models.BracketQuarterfinals,
			Label:         label,
			Player1ID:     seedID(players, seedA),
			Player2ID:     seedID(players, seedB),
			NextMatchID:   &next,
			NextMatchSlot: slot,
		}
	}

	return []*models.BracketMatch{
		quarter("Quarterfinal 1", 0, 7, semi1ID, 1),
		quarter("Quarterfinal 2", 3, 4, semi1ID, 2),
		quarter("Quarterfinal 3", 1, 6, semi2ID, 1),
		quarter("Quarterfinal 4", 2, 5, semi2ID, 2),
		{
			ID:            semi1ID,
			Round:         2,
			Type:          models.BracketSemifinals,
			Label:         "Semifinal 1",
			NextMatchID:   &finalID,
			NextMatchSlot: 1,
		},
		{
			ID:            semi2ID,
			Round:         2,
			Type:          models.BracketSemifinals,
			Label:         "Semifinal 2",
			NextMatchID:   &finalID,
			NextMatchSlot: 2,
		},
		{
			ID:              uuid.NewString(),
			Round:           3,
			Type:            models.BracketThirdPlace,
			Label:           "3rd Place Match",
			LoserFromMatch1: &semi1ID,
			LoserFromMatch2: &semi2ID,
		},
		{
			ID:    finalID,
			Round: 3,
			Type:  models.BracketFinals,
			Label: "Grand Final",
		},
	}
}
