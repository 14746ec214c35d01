package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrolan/lanbracket/brackets"
	"github.com/retrolan/lanbracket/models"
)

// playoffTournament builds a four-seed bracket in the playoffs state with
// seeds named Seed1..Seed4 in rank order.
func playoffTournament(t *testing.T) *models.Tournament {
	t.Helper()
	e := newTestEngine(1)
	tourney := e.NewTournament("Playoff Test", models.GameUT2004, false)
	names := []string{"Seed1", "Seed2", "Seed3", "Seed4"}
	for _, name := range names {
		_, err := e.AddPlayer(tourney, name)
		require.NoError(t, err)
	}
	tourney.BracketMatches = brackets.Build(brackets.TopologyFourSemifinals, tourney.Players)
	tourney.State = models.StatePlayoffs
	return tourney
}

func nodeByLabel(tourney *models.Tournament, label string) *models.BracketMatch {
	for _, m := range tourney.BracketMatches {
		if m.Label == label {
			return m
		}
	}
	return nil
}

func Test_SubmitBracketWinner_AdvancesAndDropsLoser(t *testing.T) {
	e := newTestEngine(1)
	tourney := playoffTournament(t)

	semi1 := nodeByLabel(tourney, "Semifinal 1")
	semi2 := nodeByLabel(tourney, "Semifinal 2")
	final := nodeByLabel(tourney, "Grand Final")
	third := nodeByLabel(tourney, "3rd Place Match")

	assert.Equal(t, models.NodePending, final.State())
	assert.Equal(t, models.NodePending, third.State())

	// Seed1 wins semifinal 1: into the final's first slot, Seed4 into the
	// first open third-place slot.
	require.NoError(t, e.SubmitBracketWinner(tourney, semi1.ID, *semi1.Player1ID))
	require.NotNil(t, final.Player1ID)
	assert.Equal(t, *semi1.Player1ID, *final.Player1ID)
	require.NotNil(t, third.Player1ID)
	assert.Equal(t, *semi1.Player2ID, *third.Player1ID)
	assert.Nil(t, third.Player2ID)

	// Seed3 wins semifinal 2: final becomes ready, third place fills up.
	require.NoError(t, e.SubmitBracketWinner(tourney, semi2.ID, *semi2.Player2ID))
	assert.Equal(t, models.NodeReady, final.State())
	assert.Equal(t, models.NodeReady, third.State())
	assert.Equal(t, *semi2.Player1ID, *third.Player2ID)

	assert.Equal(t, models.StatePlayoffs, tourney.State)
}

func Test_SubmitBracketWinner_CompletesTournamentExactlyOnce(t *testing.T) {
	e := newTestEngine(1)
	tourney := playoffTournament(t)

	semi1 := nodeByLabel(tourney, "Semifinal 1")
	semi2 := nodeByLabel(tourney, "Semifinal 2")
	final := nodeByLabel(tourney, "Grand Final")
	third := nodeByLabel(tourney, "3rd Place Match")

	require.NoError(t, e.SubmitBracketWinner(tourney, semi1.ID, *semi1.Player1ID))
	require.NoError(t, e.SubmitBracketWinner(tourney, semi2.ID, *semi2.Player1ID))
	require.NoError(t, e.SubmitBracketWinner(tourney, third.ID, *third.Player1ID))
	assert.Equal(t, models.StatePlayoffs, tourney.State)

	require.NoError(t, e.SubmitBracketWinner(tourney, final.ID, *final.Player1ID))
	assert.Equal(t, models.StateCompleted, tourney.State)

	// Nothing can be resubmitted once decided.
	err := e.SubmitBracketWinner(tourney, final.ID, *final.Player2ID)
	assert.ErrorIs(t, err, ErrMatchAlreadyDecided)
	assert.Equal(t, *final.Player1ID, *final.WinnerID)
}

func Test_SubmitBracketWinner_Guards(t *testing.T) {
	e := newTestEngine(1)
	tourney := playoffTournament(t)

	semi1 := nodeByLabel(tourney, "Semifinal 1")
	final := nodeByLabel(tourney, "Grand Final")

	err := e.SubmitBracketWinner(tourney, "missing", "whoever")
	assert.ErrorIs(t, err, ErrBracketMatchNotFound)

	// The final has no players yet.
	err = e.SubmitBracketWinner(tourney, final.ID, tourney.Players[0].ID)
	assert.ErrorIs(t, err, ErrMatchNotReady)

	// A player outside the node cannot win it.
	err = e.SubmitBracketWinner(tourney, semi1.ID, tourney.Players[1].ID)
	assert.ErrorIs(t, err, ErrInvalidWinner)
}

func Test_SubmitBracketGameResult_AutoFinalizesBestOfThree(t *testing.T) {
	e := newTestEngine(1)
	tourney := playoffTournament(t)
	semi1 := nodeByLabel(tourney, "Semifinal 1")

	winner := *semi1.Player1ID
	game := func(n int, winnerID string) models.SeriesGame {
		return models.SeriesGame{GameNumber: n, WinnerID: winnerID, Player1Score: 10, Player2Score: 4}
	}

	require.NoError(t, e.SubmitBracketGameResult(tourney, semi1.ID, game(1, winner)))
	assert.Equal(t, models.NodeReady, semi1.State())
	assert.Equal(t, 1, semi1.Player1Wins)

	// Second win takes the series at 2-0 and advances the winner.
	require.NoError(t, e.SubmitBracketGameResult(tourney, semi1.ID, game(2, winner)))
	assert.Equal(t, models.NodeDecided, semi1.State())
	assert.Equal(t, winner, *semi1.WinnerID)

	final := nodeByLabel(tourney, "Grand Final")
	require.NotNil(t, final.Player1ID)
	assert.Equal(t, winner, *final.Player1ID)

	// A fourth submission hits the decided node, not the series counter.
	err := e.SubmitBracketGameResult(tourney, semi1.ID, game(3, winner))
	assert.ErrorIs(t, err, ErrMatchAlreadyDecided)
	assert.Len(t, semi1.Games, 2)
}

func Test_SubmitBracketGameResult_SplitSeriesGoesTheDistance(t *testing.T) {
	e := newTestEngine(1)
	tourney := playoffTournament(t)
	semi1 := nodeByLabel(tourney, "Semifinal 1")

	p1, p2 := *semi1.Player1ID, *semi1.Player2ID
	require.NoError(t, e.SubmitBracketGameResult(tourney, semi1.ID, models.SeriesGame{GameNumber: 1, WinnerID: p1}))
	require.NoError(t, e.SubmitBracketGameResult(tourney, semi1.ID, models.SeriesGame{GameNumber: 2, WinnerID: p2}))
	assert.Equal(t, models.NodeReady, semi1.State())

	require.NoError(t, e.SubmitBracketGameResult(tourney, semi1.ID, models.SeriesGame{GameNumber: 3, WinnerID: p2}))
	assert.Equal(t, models.NodeDecided, semi1.State())
	assert.Equal(t, p2, *semi1.WinnerID)
	assert.Equal(t, 1, semi1.Player1Wins)
	assert.Equal(t, 2, semi1.Player2Wins)
}

func Test_SubmitBracketGameResult_TeamModeNeedsThreeWins(t *testing.T) {
	e := newTestEngine(1)
	tourney := playoffTournament(t)
	tourney.TeamMode = true
	semi1 := nodeByLabel(tourney, "Semifinal 1")

	winner := *semi1.Player1ID
	for n := 1; n <= 2; n++ {
		require.NoError(t, e.SubmitBracketGameResult(tourney, semi1.ID, models.SeriesGame{GameNumber: n, WinnerID: winner}))
	}
	assert.Equal(t, models.NodeReady, semi1.State(), "2-0 does not take a best of five")

	require.NoError(t, e.SubmitBracketGameResult(tourney, semi1.ID, models.SeriesGame{GameNumber: 3, WinnerID: winner}))
	assert.Equal(t, models.NodeDecided, semi1.State())
}

func Test_SubmitBracketGameResult_Guards(t *testing.T) {
	e := newTestEngine(1)
	tourney := playoffTournament(t)
	semi1 := nodeByLabel(tourney, "Semifinal 1")
	final := nodeByLabel(tourney, "Grand Final")

	err := e.SubmitBracketGameResult(tourney, final.ID, models.SeriesGame{GameNumber: 1, WinnerID: tourney.Players[0].ID})
	assert.ErrorIs(t, err, ErrMatchNotReady)

	err = e.SubmitBracketGameResult(tourney, semi1.ID, models.SeriesGame{GameNumber: 1, WinnerID: "outsider"})
	assert.ErrorIs(t, err, ErrInvalidWinner)
}
