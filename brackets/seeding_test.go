package brackets

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrolan/lanbracket/models"
)

// groupedTournament builds pods from explicit member lists and returns the
// tournament plus a name lookup.
func groupedTournament(groups ...[]string) (*models.Tournament, map[string]*models.Player) {
	t := &models.Tournament{ID: uuid.NewString(), State: models.StateGroup}
	byName := map[string]*models.Player{}
	for _, names := range groups {
		pod := &models.Pod{ID: uuid.NewString()}
		for _, name := range names {
			p := &models.Player{ID: uuid.NewString(), Name: name}
			t.Players = append(t.Players, p)
			pod.Players = append(pod.Players, p.ID)
			byName[name] = p
		}
		t.Pods = append(t.Pods, pod)
	}
	return t, byName
}

func pick(byName map[string]*models.Player, names ...string) []*models.Player {
	players := make([]*models.Player, len(names))
	for i, name := range names {
		players[i] = byName[name]
	}
	return players
}

func names(players []*models.Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Name
	}
	return out
}

func Test_ReorderForCrossGroup_SingleGroupUntouched(t *testing.T) {
	tourney, byName := groupedTournament([]string{"A1", "A2", "A3", "A4"})
	qualified := pick(byName, "A1", "A2", "A3", "A4")

	reordered := ReorderForCrossGroup(tourney, qualified)
	assert.Equal(t, []string{"A1", "A2", "A3", "A4"}, names(reordered))
}

func Test_ReorderForCrossGroup_ThreeGroupsOfTwoFixedMapping(t *testing.T) {
	tourney, byName := groupedTournament(
		[]string{"A1", "A2", "A3", "A4"},
		[]string{"B1", "B2", "B3", "B4"},
		[]string{"C1", "C2", "C3", "C4"},
	)
	// Overall ranking: group winners first, then the runners-up.
	qualified := pick(byName, "A1", "B1", "C1", "A2", "B2", "C2")

	reordered := ReorderForCrossGroup(tourney, qualified)
	require.Len(t, reordered, 6)
	assert.Equal(t, []string{"A1", "B1", "C1", "B2", "C2", "A2"}, names(reordered))

	// In the six-seed bracket this feeds, the play-ins pair seeds 3v6 and
	// 4v5. Neither may repeat a group pairing.
	nodes := Build(TopologySixWithByes, reordered)
	for _, m := range nodes {
		if m.Player1ID == nil || m.Player2ID == nil {
			continue
		}
		pod1 := tourney.PlayerPod(*m.Player1ID)
		pod2 := tourney.PlayerPod(*m.Player2ID)
		assert.NotEqual(t, pod1.ID, pod2.ID, "%s repeats a group pairing", m.Label)
	}
}

func Test_ReorderForCrossGroup_TwoGroupsInterleave(t *testing.T) {
	tourney, byName := groupedTournament(
		[]string{"A1", "A2", "A3", "A4"},
		[]string{"B1", "B2", "B3", "B4"},
	)
	qualified := pick(byName, "A1", "A2", "B1", "B2")

	reordered := ReorderForCrossGroup(tourney, qualified)
	assert.Equal(t, []string{"A1", "B1", "A2", "B2"}, names(reordered))

	// 1v4 and 2v3 semifinals now cross groups.
	nodes := Build(TopologyFourSemifinals, reordered)
	for _, m := range nodes {
		if m.Player1ID == nil || m.Player2ID == nil {
			continue
		}
		pod1 := tourney.PlayerPod(*m.Player1ID)
		pod2 := tourney.PlayerPod(*m.Player2ID)
		assert.NotEqual(t, pod1.ID, pod2.ID, "%s repeats a group pairing", m.Label)
	}
}

func Test_ReorderForCrossGroup_LopsidedQualifiersStillPlace(t *testing.T) {
	tourney, byName := groupedTournament(
		[]string{"A1", "A2", "A3", "A4"},
		[]string{"B1", "B2", "B3", "B4"},
		[]string{"C1", "C2", "C3", "C4"},
	)
	// One group sends three qualifiers: the fixed mapping does not apply and
	// the interleave keeps everyone placed exactly once.
	qualified := pick(byName, "A1", "A2", "B1", "C1", "A3", "B2")

	reordered := ReorderForCrossGroup(tourney, qualified)
	require.Len(t, reordered, 6)

	seen := map[string]bool{}
	for _, p := range reordered {
		assert.False(t, seen[p.Name], "%s placed twice", p.Name)
		seen[p.Name] = true
	}
	// Interleave by within-group rank: firsts, seconds, thirds.
	assert.Equal(t, []string{"A1", "B1", "C1", "A2", "B2", "A3"}, names(reordered))
}
