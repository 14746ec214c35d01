package engine

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrolan/lanbracket/models"
)

func roundRobinPlayers(n int) []*models.Player {
	players := make([]*models.Player, n)
	for i := range players {
		players[i] = &models.Player{ID: uuid.NewString(), Name: fmt.Sprintf("P%d", i+1)}
	}
	return players
}

func Test_ScheduleRoundRobin_EveryPairMeetsExactlyOnce(t *testing.T) {
	for n := 2; n <= 8; n++ {
		players := roundRobinPlayers(n)
		matches := scheduleRoundRobin("pod", players)

		require.Len(t, matches, n*(n-1)/2, "n=%d", n)

		pairs := map[string]int{}
		for _, m := range matches {
			assert.NotEqual(t, m.Player1ID, m.Player2ID)
			a, b := m.Player1ID, m.Player2ID
			if a > b {
				a, b = b, a
			}
			pairs[a+"|"+b]++
		}
		for pair, count := range pairs {
			assert.Equal(t, 1, count, "n=%d pair %s scheduled %d times", n, pair, count)
		}
	}
}

func Test_ScheduleRoundRobin_RoundCount(t *testing.T) {
	cases := map[int]int{
		2: 1,
		3: 3,
		4: 3,
		5: 5,
		6: 5,
		7: 7,
		8: 7,
	}
	for n, wantRounds := range cases {
		matches := scheduleRoundRobin("pod", roundRobinPlayers(n))

		maxRound := 0
		for _, m := range matches {
			if m.Round > maxRound {
				maxRound = m.Round
			}
		}
		assert.Equal(t, wantRounds, maxRound, "n=%d", n)
	}
}

func Test_ScheduleRoundRobin_NoPlayerTwicePerRound(t *testing.T) {
	for n := 3; n <= 8; n++ {
		matches := scheduleRoundRobin("pod", roundRobinPlayers(n))

		byRound := map[int]map[string]bool{}
		for _, m := range matches {
			if byRound[m.Round] == nil {
				byRound[m.Round] = map[string]bool{}
			}
			busy := byRound[m.Round]
			assert.False(t, busy[m.Player1ID], "n=%d round %d double-books %s", n, m.Round, m.Player1ID)
			assert.False(t, busy[m.Player2ID], "n=%d round %d double-books %s", n, m.Round, m.Player2ID)
			busy[m.Player1ID] = true
			busy[m.Player2ID] = true
		}
	}
}
