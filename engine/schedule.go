package engine

import (
	"github.com/google/uuid"

	"github.com/retrolan/lanbracket/models"
)

// scheduleRoundRobin emits the complete pairwise schedule for one pod using
// the circle method: position i meets position n-1-i each round, then the
// circle rotates. Even n plays n-1 rounds with everyone busy; odd n plays n
// rounds with one player sitting out per round (no bye match is created).
// Every pair meets exactly once.
func scheduleRoundRobin(podID string, players []*models.Player) []*models.Match {
	n := len(players)
	matchesPerRound := n / 2
	totalRounds := n
	if n%2 == 0 {
		totalRounds = n - 1
	}

	circle := make([]*models.Player, n)
	copy(circle, players)

	var matches []*models.Match
	for round := 0; round < totalRounds; round++ {
		for i := 0; i < matchesPerRound; i++ {
			p1, p2 := circle[i], circle[n-1-i]
			matches = append(matches, &models.Match{
				ID:        uuid.NewString(),
				PodID:     podID,
				Round:     round + 1,
				Player1ID: p1.ID,
				Player2ID: p2.ID,
			})
		}

		if n%2 == 0 {
			// Keep the first seat fixed, shift the last player into the
			// second seat.
			last := circle[n-1]
			copy(circle[2:], circle[1:n-1])
			circle[1] = last
		} else {
			// Odd field: rotate the whole circle.
			first := circle[0]
			copy(circle, circle[1:])
			circle[n-1] = first
		}
	}
	return matches
}
