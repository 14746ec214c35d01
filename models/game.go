package models

// GameType selects the game a tournament is played in.
type GameType string

const (
	GameCS16   GameType = "cs16"
	GameUT2004 GameType = "ut2004"
	GameWorms  GameType = "worms"
)

// StageFormat describes how one stage of a game is scored.
type StageFormat struct {
	Format       string `json:"format"`
	Description  string `json:"description"`
	ScoreType    string `json:"score_type"`
	ScoreLabel   string `json:"score_label"`
	TiesPossible bool   `json:"ties_possible,omitempty"`
	MapsPerMatch int    `json:"maps_per_match,omitempty"`
}

// GameConfig is the static catalog entry for a supported game.
type GameConfig struct {
	ID         GameType    `json:"id"`
	Name       string      `json:"name"`
	ShortName  string      `json:"short_name"`
	GroupStage StageFormat `json:"group_stage"`
	Playoffs   StageFormat `json:"playoffs"`
	Maps       []string    `json:"maps"`
}

var gameConfigs = map[GameType]GameConfig{
	GameCS16: {
		ID:        GameCS16,
		Name:      "Counter-Strike 1.6",
		ShortName: "CS 1.6",
		GroupStage: StageFormat{
			Format:       "BO1",
			Description:  "30-round max (first to 16, tie at 15-15)",
			ScoreType:    "rounds",
			ScoreLabel:   "Rounds",
			TiesPossible: true,
		},
		Playoffs: StageFormat{
			Format:       "BO3",
			Description:  "19-round max per map (first to 10)",
			ScoreType:    "rounds",
			ScoreLabel:   "Rounds",
			MapsPerMatch: 3,
		},
		Maps: []string{"aim_sOt", "aim_dust2", "aim_deathmatch_2012"},
	},
	GameUT2004: {
		ID:        GameUT2004,
		Name:      "Unreal Tournament 2004",
		ShortName: "UT2004",
		GroupStage: StageFormat{
			Format:       "BO1",
			Description:  "8-minute deathmatch (most kills, ties possible)",
			ScoreType:    "kills",
			ScoreLabel:   "Kills",
			TiesPossible: true,
		},
		Playoffs: StageFormat{
			Format:       "BO3",
			Description:  "First to win 2 maps advances",
			ScoreType:    "kills",
			ScoreLabel:   "Kills",
			MapsPerMatch: 3,
		},
		Maps: []string{"DM-1on1-Mixer", "DM-1on1-Albatross", "DM-1on1-Crash"},
	},
	GameWorms: {
		ID:        GameWorms,
		Name:      "Worms Armageddon",
		ShortName: "Worms",
		GroupStage: StageFormat{
			Format:       "BO1",
			Description:  "Last worm standing, track remaining HP for tiebreaker",
			ScoreType:    "health",
			ScoreLabel:   "HP Remaining",
			TiesPossible: true,
		},
		Playoffs: StageFormat{
			Format:       "BO3",
			Description:  "First to win 2 rounds advances",
			ScoreType:    "health",
			ScoreLabel:   "HP Remaining",
			MapsPerMatch: 3,
		},
		Maps: []string{"Rocky", "Witch", "Kermit"},
	},
}

// GetGameConfig returns the catalog entry for a game type.
func GetGameConfig(gameType GameType) (GameConfig, bool) {
	cfg, ok := gameConfigs[gameType]
	return cfg, ok
}

// AllGames lists the supported game catalog in a stable order.
func AllGames() []GameConfig {
	return []GameConfig{
		gameConfigs[GameCS16],
		gameConfigs[GameUT2004],
		gameConfigs[GameWorms],
	}
}
