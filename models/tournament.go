package models

import "time"

// TournamentState is the aggregate lifecycle tag. Transitions are monotonic:
// registration → group → playoffs → completed, with a registration → playoffs
// shortcut for two-entrant tournaments.
type TournamentState string

const (
	StateRegistration TournamentState = "registration"
	StateGroup        TournamentState = "group"
	StatePlayoffs     TournamentState = "playoffs"
	StateCompleted    TournamentState = "completed"
)

// Tournament owns the entire aggregate: entrants, groups, the flat group
// match list and the elimination bracket. All engine operations mutate one
// Tournament at a time; callers serialize access per tournament ID.
type Tournament struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	GameType GameType `json:"game_type"`
	TeamMode bool     `json:"team_mode,omitempty"`
	MapPool  []string `json:"map_pool,omitempty"`

	Players        []*Player       `json:"players"`
	Pods           []*Pod          `json:"pods"`
	Matches        []*Match        `json:"matches"`
	BracketMatches []*BracketMatch `json:"bracket_matches"`
	State          TournamentState `json:"state"`

	CreatedAt time.Time  `json:"created_at"`
	StartedAt *time.Time `json:"started_at,omitempty"`
}

// SeriesLength is the best-of-N length for bracket series: BO3 in solo
// play, BO5 in team mode.
func (t *Tournament) SeriesLength() int {
	if t.TeamMode {
		return 5
	}
	return 3
}

// PlayerByID returns the player with the given ID, or nil.
func (t *Tournament) PlayerByID(id string) *Player {
	for _, p := range t.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PodByID returns the pod with the given ID, or nil.
func (t *Tournament) PodByID(id string) *Pod {
	for _, pod := range t.Pods {
		if pod.ID == id {
			return pod
		}
	}
	return nil
}

// MatchByID returns the group match with the given ID, or nil.
func (t *Tournament) MatchByID(id string) *Match {
	for _, m := range t.Matches {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// BracketMatchByID returns the bracket node with the given ID, or nil.
func (t *Tournament) BracketMatchByID(id string) *BracketMatch {
	for _, m := range t.BracketMatches {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// PlayerPod returns the pod the player was dealt into, or nil before the
// group stage.
func (t *Tournament) PlayerPod(playerID string) *Pod {
	for _, pod := range t.Pods {
		if pod.Contains(playerID) {
			return pod
		}
	}
	return nil
}

// ThirdPlaceMatch returns the tournament's single 3rd-place node, or nil.
func (t *Tournament) ThirdPlaceMatch() *BracketMatch {
	for _, m := range t.BracketMatches {
		if m.Type == BracketThirdPlace {
			return m
		}
	}
	return nil
}

// FinalsMatch returns the grand-final node, or nil.
func (t *Tournament) FinalsMatch() *BracketMatch {
	for _, m := range t.BracketMatches {
		if m.Type == BracketFinals {
			return m
		}
	}
	return nil
}
