package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrolan/lanbracket/models"
)

func Test_AddPlayer_OnlyDuringRegistration(t *testing.T) {
	e := newTestEngine(1)
	tourney := newTournamentWithPlayers(e, 4)
	require.NoError(t, e.StartGroupStage(tourney))

	_, err := e.AddPlayer(tourney, "Latecomer")
	assert.ErrorIs(t, err, ErrRegistrationClosed)

	err = e.RemovePlayer(tourney, tourney.Players[0].ID)
	assert.ErrorIs(t, err, ErrRegistrationClosed)
}

func Test_AddPlayer_RejectsBlankName(t *testing.T) {
	e := newTestEngine(1)
	tourney := e.NewTournament("LAN Night", models.GameWorms, false)

	_, err := e.AddPlayer(tourney, "   ")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func Test_StartGroupStage_RequiresTwoPlayers(t *testing.T) {
	e := newTestEngine(1)
	tourney := newTournamentWithPlayers(e, 1)

	assert.ErrorIs(t, e.StartGroupStage(tourney), ErrInsufficientPlayers)
	assert.Equal(t, models.StateRegistration, tourney.State)
}

func Test_StartGroupStage_SecondCallFails(t *testing.T) {
	e := newTestEngine(1)
	tourney := newTournamentWithPlayers(e, 4)

	require.NoError(t, e.StartGroupStage(tourney))
	assert.ErrorIs(t, e.StartGroupStage(tourney), ErrAlreadyStarted)
}

func Test_StartGroupStage_TwoPlayersSkipToFinal(t *testing.T) {
	e := newTestEngine(1)
	tourney := newTournamentWithPlayers(e, 2)
	require.NoError(t, e.StartGroupStage(tourney))

	assert.Equal(t, models.StatePlayoffs, tourney.State)
	assert.Empty(t, tourney.Pods)
	assert.Empty(t, tourney.Matches)
	require.Len(t, tourney.BracketMatches, 1)

	final := tourney.BracketMatches[0]
	assert.Equal(t, models.BracketFinals, final.Type)
	assert.Equal(t, models.NodeReady, final.State())
}

func Test_ThreePlayers_SingleGroupThenDirectFinal(t *testing.T) {
	e := newTestEngine(1)
	tourney := newTournamentWithPlayers(e, 3)
	require.NoError(t, e.StartGroupStage(tourney))

	assert.Equal(t, models.StateGroup, tourney.State)
	require.Len(t, tourney.Pods, 1)
	require.Len(t, tourney.Matches, 3)

	// Finish the round robin so a ranking exists.
	for _, m := range tourney.Matches {
		results := map[string]models.PlayerResult{
			m.Player1ID: {Points: 3},
			m.Player2ID: {Points: 0},
		}
		require.NoError(t, e.SubmitMatchResult(tourney, m.ID, results, nil, nil))
	}

	require.NoError(t, e.GenerateBrackets(tourney))
	assert.Equal(t, models.StatePlayoffs, tourney.State)
	require.Len(t, tourney.BracketMatches, 1)
	assert.Equal(t, models.BracketFinals, tourney.BracketMatches[0].Type)
}

func Test_QualifierCount(t *testing.T) {
	cases := []struct {
		totalPlayers int
		numGroups    int
		want         int
	}{
		{3, 1, 2},
		{4, 1, 4},
		{5, 1, 4},
		{7, 1, 4},
		{6, 2, 4},
		{8, 2, 4},
		{10, 2, 8},
		{14, 2, 8},
		{9, 3, 6},
		{12, 3, 6},
		{15, 3, 6},
		{16, 4, 8},
		{20, 5, 8},
	}
	for _, tc := range cases {
		got := qualifierCount(tc.totalPlayers, tc.numGroups)
		assert.Equal(t, tc.want, got, "players=%d groups=%d", tc.totalPlayers, tc.numGroups)
	}
}

func Test_GenerateBrackets_RequiresGroupStage(t *testing.T) {
	e := newTestEngine(1)
	tourney := newTournamentWithPlayers(e, 8)

	assert.ErrorIs(t, e.GenerateBrackets(tourney), ErrGroupStageNotActive)
}

func Test_GenerateBrackets_FourPlayersSingleGroupSkipSemifinals(t *testing.T) {
	e := newTestEngine(5)
	tourney := newTournamentWithPlayers(e, 4)
	require.NoError(t, e.StartGroupStage(tourney))
	playOutGroups(t, e, tourney)

	require.NoError(t, e.GenerateBrackets(tourney))

	// Everyone already met in the group, so the top two go straight to the
	// final and the bottom two play for bronze.
	require.Len(t, tourney.BracketMatches, 2)
	assert.Equal(t, 0, countNodes(tourney, models.BracketSemifinals))
	for _, m := range tourney.BracketMatches {
		assert.Equal(t, models.NodeReady, m.State())
	}
}

func Test_GenerateBrackets_SevenPlayersSingleGroupGetSemifinals(t *testing.T) {
	e := newTestEngine(5)
	tourney := newTournamentWithPlayers(e, 7)
	require.NoError(t, e.StartGroupStage(tourney))
	playOutGroups(t, e, tourney)

	require.NoError(t, e.GenerateBrackets(tourney))

	assert.Equal(t, 0, countNodes(tourney, models.BracketQuarterfinals))
	assert.Equal(t, 2, countNodes(tourney, models.BracketSemifinals))
	assert.Equal(t, 1, countNodes(tourney, models.BracketFinals))
	assert.Equal(t, 1, countNodes(tourney, models.BracketThirdPlace))
}

func Test_GenerateBrackets_SixteenPlayersGetQuarterfinals(t *testing.T) {
	e := newTestEngine(5)
	tourney := newTournamentWithPlayers(e, 16)
	require.NoError(t, e.StartGroupStage(tourney))
	playOutGroups(t, e, tourney)

	require.NoError(t, e.GenerateBrackets(tourney))

	assert.Equal(t, 4, countNodes(tourney, models.BracketQuarterfinals))
	assert.Equal(t, 2, countNodes(tourney, models.BracketSemifinals))
	assert.Equal(t, 1, countNodes(tourney, models.BracketFinals))
	assert.Equal(t, 1, countNodes(tourney, models.BracketThirdPlace))
}

func Test_GenerateBrackets_TwelvePlayersGetSixSeedBracket(t *testing.T) {
	e := newTestEngine(5)
	tourney := newTournamentWithPlayers(e, 12)
	require.NoError(t, e.StartGroupStage(tourney))
	playOutGroups(t, e, tourney)

	require.NoError(t, e.GenerateBrackets(tourney))

	assert.Equal(t, 2, countNodes(tourney, models.BracketQuarterfinals))
	assert.Equal(t, 2, countNodes(tourney, models.BracketSemifinals))

	// Seeds one and two hold byes: their semifinal slots are pre-filled.
	var byeSlots int
	for _, m := range tourney.BracketMatches {
		if m.Type == models.BracketSemifinals && m.Player1ID != nil {
			byeSlots++
		}
	}
	assert.Equal(t, 2, byeSlots)
}

func Test_GenerateBrackets_NoFirstRoundGroupRematch(t *testing.T) {
	e := newTestEngine(11)
	tourney := newTournamentWithPlayers(e, 12)
	require.NoError(t, e.StartGroupStage(tourney))
	playOutGroups(t, e, tourney)
	require.NoError(t, e.GenerateBrackets(tourney))

	for _, m := range tourney.BracketMatches {
		if m.Player1ID == nil || m.Player2ID == nil {
			continue
		}
		pod1 := tourney.PlayerPod(*m.Player1ID)
		pod2 := tourney.PlayerPod(*m.Player2ID)
		require.NotNil(t, pod1)
		require.NotNil(t, pod2)
		assert.NotEqual(t, pod1.ID, pod2.ID, "%s pairs groupmates", m.Label)
	}
}

func Test_ResetGroupData_ClearsResultsKeepsSchedule(t *testing.T) {
	e := newTestEngine(1)
	tourney := newTournamentWithPlayers(e, 6)
	require.NoError(t, e.StartGroupStage(tourney))
	playOutGroups(t, e, tourney)

	pod := tourney.Pods[0]
	require.NoError(t, e.ResetGroupData(tourney, pod.ID))

	for _, m := range tourney.Matches {
		if m.PodID == pod.ID {
			assert.False(t, m.Completed)
			assert.Nil(t, m.Result)
		} else {
			assert.True(t, m.Completed)
		}
	}
	for _, id := range pod.Players {
		assert.Zero(t, tourney.PlayerByID(id).MatchesPlayed)
	}
}

func Test_ResetGroupData_UnknownGroup(t *testing.T) {
	e := newTestEngine(1)
	tourney := newTournamentWithPlayers(e, 6)
	require.NoError(t, e.StartGroupStage(tourney))

	assert.ErrorIs(t, e.ResetGroupData(tourney, "missing"), ErrGroupNotFound)
}

func Test_ResetTournament_BackToEmptyRegistration(t *testing.T) {
	e := newTestEngine(1)
	tourney := newTournamentWithPlayers(e, 8)
	require.NoError(t, e.StartGroupStage(tourney))

	e.ResetTournament(tourney)

	assert.Equal(t, models.StateRegistration, tourney.State)
	assert.Empty(t, tourney.Players)
	assert.Empty(t, tourney.Pods)
	assert.Empty(t, tourney.Matches)
	assert.Empty(t, tourney.BracketMatches)
	assert.Nil(t, tourney.StartedAt)
}

func Test_RenameOperations(t *testing.T) {
	e := newTestEngine(1)
	tourney := newTournamentWithPlayers(e, 4)

	require.NoError(t, e.UpdateTournamentName(tourney, "  Spring LAN  "))
	assert.Equal(t, "Spring LAN", tourney.Name)
	assert.ErrorIs(t, e.UpdateTournamentName(tourney, " "), ErrNameRequired)

	p := tourney.Players[0]
	require.NoError(t, e.UpdatePlayerName(tourney, p.ID, "Renamed"))
	assert.Equal(t, "Renamed", p.Name)
	assert.ErrorIs(t, e.UpdatePlayerName(tourney, "missing", "X"), ErrPlayerNotFound)

	require.NoError(t, e.StartGroupStage(tourney))
	pod := tourney.Pods[0]
	require.NoError(t, e.UpdateGroupName(tourney, pod.ID, "Group of Death"))
	require.NotNil(t, pod.Name)
	assert.Equal(t, "Group of Death", *pod.Name)
	require.NoError(t, e.UpdateGroupName(tourney, pod.ID, ""))
	assert.Nil(t, pod.Name)
}

func Test_Champion_OnlyWhenCompleted(t *testing.T) {
	e := newTestEngine(1)
	tourney := newTournamentWithPlayers(e, 2)
	require.NoError(t, e.StartGroupStage(tourney))

	assert.Nil(t, e.Champion(tourney))

	final := tourney.BracketMatches[0]
	require.NoError(t, e.SubmitBracketWinner(tourney, final.ID, *final.Player1ID))

	champ := e.Champion(tourney)
	require.NotNil(t, champ)
	assert.Equal(t, *final.Player1ID, champ.ID)
}

// playOutGroups submits a decisive result for every scheduled group match.
// Within each pod the player dealt earlier always wins, producing a clean
// standing with no ties.
func playOutGroups(t *testing.T, e *Engine, tourney *models.Tournament) {
	t.Helper()
	for _, m := range tourney.Matches {
		pod := tourney.PodByID(m.PodID)
		require.NotNil(t, pod)

		winnerID, loserID := m.Player1ID, m.Player2ID
		if podIndex(pod, m.Player2ID) < podIndex(pod, m.Player1ID) {
			winnerID, loserID = loserID, winnerID
		}

		winScore, loseScore := 16, 10
		results := map[string]models.PlayerResult{
			winnerID: {Points: 3, Score: &winScore},
			loserID:  {Points: 0, Score: &loseScore},
		}
		require.NoError(t, e.SubmitMatchResult(tourney, m.ID, results, nil, nil))
	}
}

func podIndex(pod *models.Pod, playerID string) int {
	for i, id := range pod.Players {
		if id == playerID {
			return i
		}
	}
	return -1
}

func countNodes(tourney *models.Tournament, nodeType models.BracketType) int {
	n := 0
	for _, m := range tourney.BracketMatches {
		if m.Type == nodeType {
			n++
		}
	}
	return n
}
