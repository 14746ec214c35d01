// Package engine implements the tournament core: group construction,
// round-robin scheduling, ranking with tiebreakers, bracket generation and
// the advancement state machine. Every operation is a synchronous,
// all-or-nothing state transition against one Tournament aggregate; the
// caller serializes access per tournament ID.
package engine

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/retrolan/lanbracket/brackets"
	"github.com/retrolan/lanbracket/models"
)

// MinPlayers is the smallest field the engine can start: two entrants meet
// in a lone grand final.
const MinPlayers = 2

// Engine applies operations to Tournament aggregates. It carries no
// per-tournament state; the only dependency is the random source used to
// deal entrants into groups.
type Engine struct {
	rnd *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand injects a deterministic random source. Group membership tests
// use this to make the shuffle reproducible.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rnd = r
	}
}

// New creates an Engine with an unseeded shuffle by default.
func New(opts ...Option) *Engine {
	e := &Engine{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewTournament creates an empty aggregate in the registration state.
func (e *Engine) NewTournament(name string, gameType models.GameType, teamMode bool) *models.Tournament {
	return &models.Tournament{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		GameType:  gameType,
		TeamMode:  teamMode,
		State:     models.StateRegistration,
		CreatedAt: time.Now().UTC(),
	}
}

// AddPlayer registers a new entrant. Only valid during registration.
func (e *Engine) AddPlayer(t *models.Tournament, name string) (*models.Player, error) {
	if t.State != models.StateRegistration {
		return nil, ErrRegistrationClosed
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	p := &models.Player{
		ID:   uuid.NewString(),
		Name: name,
	}
	t.Players = append(t.Players, p)
	return p, nil
}

// RemovePlayer withdraws an entrant. Only valid during registration.
func (e *Engine) RemovePlayer(t *models.Tournament, playerID string) error {
	if t.State != models.StateRegistration {
		return ErrRegistrationClosed
	}
	for i, p := range t.Players {
		if p.ID == playerID {
			t.Players = append(t.Players[:i], t.Players[i+1:]...)
			return nil
		}
	}
	return ErrPlayerNotFound
}

// StartGroupStage closes registration and builds the group stage. Awkward
// field sizes (11, 13) are first padded with a synthetic bye entrant. Two
// entrants skip groups entirely and go straight to a grand final.
func (e *Engine) StartGroupStage(t *models.Tournament) error {
	if t.State != models.StateRegistration {
		return ErrAlreadyStarted
	}
	if len(t.Players) < MinPlayers {
		return ErrInsufficientPlayers
	}

	now := time.Now().UTC()
	t.StartedAt = &now

	if len(t.Players) == 2 {
		// Nothing to schedule: the only meaningful match is the final.
		t.BracketMatches = brackets.Build(brackets.TopologyDirectFinal, t.Players)
		t.State = models.StatePlayoffs
		return nil
	}

	switch len(t.Players) {
	case 11, 13:
		bye := &models.Player{ID: uuid.NewString(), Name: ByePlayerName}
		t.Players = append(t.Players, bye)
	}

	t.State = models.StateGroup
	e.buildPods(t)
	return nil
}

// SubmitMatchResult records (or overwrites) a group match result and
// rebuilds all cumulative stats from scratch, making resubmission
// idempotent. Optional map name and per-game detail are stored verbatim.
func (e *Engine) SubmitMatchResult(t *models.Tournament, matchID string, results map[string]models.PlayerResult, mapName *string, games []models.GameResult) error {
	m := t.MatchByID(matchID)
	if m == nil {
		return ErrMatchNotFound
	}
	for playerID := range results {
		if !m.HasPlayer(playerID) {
			return ErrInvalidResult
		}
	}

	m.Result = results
	m.Completed = true
	if mapName != nil {
		m.MapName = mapName
	}
	if games != nil {
		m.GameResults = games
	}

	recomputeStats(t)
	return nil
}

// GenerateBrackets ranks the field, applies the qualification policy,
// reorders seeds to avoid first-round rematches and builds the elimination
// bracket. Transitions group → playoffs.
func (e *Engine) GenerateBrackets(t *models.Tournament) error {
	if t.State != models.StateGroup {
		return ErrGroupStageNotActive
	}

	rankings := e.Rankings(t)
	numQualified := qualifierCount(len(t.Players), len(t.Pods))
	if numQualified > len(rankings) {
		numQualified = len(rankings)
	}

	qualified := rankings[:numQualified]
	qualified = brackets.ReorderForCrossGroup(t, qualified)

	topology := brackets.Select(len(qualified), len(t.Players), len(t.Pods))
	t.BracketMatches = brackets.Build(topology, qualified)
	t.State = models.StatePlayoffs
	return nil
}

// qualifierCount is the qualification policy: how many entrants advance to
// the playoffs given the total field and group count.
func qualifierCount(totalPlayers, numGroups int) int {
	if totalPlayers == 3 {
		// One 3-way group; the top two meet directly in the final.
		return 2
	}
	switch {
	case numGroups <= 1:
		if totalPlayers < 4 {
			return totalPlayers
		}
		return 4
	case numGroups == 2:
		// Large groups send their top four, small groups their top two.
		if totalPlayers >= 10 {
			return 8
		}
		return 4
	case numGroups == 3:
		return 6
	default:
		if n := numGroups * 2; n < 8 {
			return n
		}
		return 8
	}
}

// ResetGroupData clears a group's match results and rebuilds stats, keeping
// membership and the schedule intact. Only valid during the group stage.
func (e *Engine) ResetGroupData(t *models.Tournament, podID string) error {
	if t.State != models.StateGroup {
		return ErrGroupStageNotActive
	}
	pod := t.PodByID(podID)
	if pod == nil {
		return ErrGroupNotFound
	}
	for _, m := range t.Matches {
		if m.PodID == podID {
			m.ClearResult()
		}
	}
	recomputeStats(t)
	return nil
}

// ResetTournament wipes the aggregate back to an empty registration.
func (e *Engine) ResetTournament(t *models.Tournament) {
	t.Players = nil
	t.Pods = nil
	t.Matches = nil
	t.BracketMatches = nil
	t.StartedAt = nil
	t.State = models.StateRegistration
}

// UpdateTournamentName renames the tournament.
func (e *Engine) UpdateTournamentName(t *models.Tournament, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	t.Name = name
	return nil
}

// UpdateGroupName sets or clears a pod's display name.
func (e *Engine) UpdateGroupName(t *models.Tournament, podID, name string) error {
	pod := t.PodByID(podID)
	if pod == nil {
		return ErrGroupNotFound
	}
	name = strings.TrimSpace(name)
	if name == "" {
		pod.Name = nil
	} else {
		pod.Name = &name
	}
	return nil
}

// UpdatePlayerName renames an entrant.
func (e *Engine) UpdatePlayerName(t *models.Tournament, playerID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	p := t.PlayerByID(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	p.Name = name
	return nil
}

// UpdatePlayerPhoto stores a photo reference (public URL or inline data).
func (e *Engine) UpdatePlayerPhoto(t *models.Tournament, playerID, photo string) error {
	p := t.PlayerByID(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	if photo == "" {
		p.ProfilePhoto = nil
	} else {
		p.ProfilePhoto = &photo
	}
	return nil
}

// Champion returns the finals winner once the tournament is completed.
func (e *Engine) Champion(t *models.Tournament) *models.Player {
	if t.State != models.StateCompleted {
		return nil
	}
	finals := t.FinalsMatch()
	if finals == nil || finals.WinnerID == nil {
		return nil
	}
	return t.PlayerByID(*finals.WinnerID)
}
