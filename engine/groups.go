package engine

import (
	"github.com/google/uuid"

	"github.com/retrolan/lanbracket/models"
)

// ByePlayerName marks the synthetic entrant added to pad 11 or 13 player
// fields. The bye counts as a real group member and is expected to lose
// every assigned match.
const ByePlayerName = "BYE (Dummy Player)"

// grouping is one row of the fixed group-size table.
type grouping struct {
	size  int
	count int
}

// groupTable is the reference sizing for 4..16 players. This is deliberately
// a lookup, not a formula: 10 players give two groups of 5, never the
// groups-of-4 fallback.
var groupTable = map[int]grouping{
	4:  {4, 1},
	5:  {5, 1},
	6:  {3, 2},
	7:  {7, 1},
	8:  {4, 2},
	9:  {3, 3},
	10: {5, 2},
	11: {4, 3}, // padded to 12 before this table is consulted
	12: {4, 3},
	13: {7, 2}, // padded to 14 before this table is consulted
	14: {7, 2},
	15: {5, 3},
	16: {4, 4},
}

// groupingFor resolves the table for 4..16 and falls back to groups of four
// above that.
func groupingFor(numPlayers int) grouping {
	if g, ok := groupTable[numPlayers]; ok {
		return g
	}
	return grouping{size: 4, count: (numPlayers + 3) / 4}
}

// buildPods shuffles the entrants with the engine's random source, deals
// them round-robin into the table's group count and schedules a complete
// round robin inside each pod. Sizes stay balanced within one player.
func (e *Engine) buildPods(t *models.Tournament) {
	g := groupingFor(len(t.Players))

	shuffled := make([]*models.Player, len(t.Players))
	copy(shuffled, t.Players)
	e.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	groups := make([][]*models.Player, g.count)
	for i, p := range shuffled {
		groups[i%g.count] = append(groups[i%g.count], p)
	}

	for _, members := range groups {
		pod := &models.Pod{ID: uuid.NewString()}
		for _, p := range members {
			pod.Players = append(pod.Players, p.ID)
		}
		t.Pods = append(t.Pods, pod)

		if len(members) < 2 {
			continue
		}
		t.Matches = append(t.Matches, scheduleRoundRobin(pod.ID, members)...)
	}
}
