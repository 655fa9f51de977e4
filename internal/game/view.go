package game

import "time"

// BattleView is a battle session as seen by one side. Information the side
// could not legitimately observe is left out.
type BattleView struct {
	BattleID     string         `json:"battle_id"`
	Side         Side           `json:"side"`
	Phase        Phase          `json:"phase"`
	Outcome      Outcome        `json:"outcome,omitempty"`
	TurnNumber   int            `json:"turn_number"`
	Version      int64          `json:"version"`
	Own          TeamView       `json:"own_team"`
	Opponent     OpponentView   `json:"opponent"`
	ValidActions ValidActionSet `json:"valid_actions"`
	CanAct       bool           `json:"can_act"`
}

// BattleSummary is one row of a trainer's battle history.
type BattleSummary struct {
	BattleID     string    `json:"battle_id"`
	NPCProfileID string    `json:"npc_profile_id"`
	Phase        Phase     `json:"phase"`
	Outcome      Outcome   `json:"outcome,omitempty"`
	TurnNumber   int       `json:"turn_number"`
	Version      int64     `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TeamView is the full detail of the viewer's own team.
type TeamView struct {
	Active  int           `json:"active"`
	Members []PokemonView `json:"members"`
}

// PokemonView shows a pokémon. For the opponent, Moves carries only
// revealed move names and PP is zeroed.
type PokemonView struct {
	Slot       int             `json:"slot"`
	Species    string          `json:"species"`
	Nickname   string          `json:"nickname,omitempty"`
	Level      int             `json:"level"`
	HP         int             `json:"hp"`
	MaxHP      int             `json:"max_hp"`
	Types      []string        `json:"types"`
	Status     StatusCondition `json:"status,omitempty"`
	Fainted    bool            `json:"fainted"`
	Stats      *Stats          `json:"stats,omitempty"`
	Stages     StatStages      `json:"stages"`
	Moves      []MoveView      `json:"moves"`
	Confused   bool            `json:"confused,omitempty"`
	Recharging bool            `json:"recharging,omitempty"`
	Charging   bool            `json:"charging,omitempty"`
	Bound      bool            `json:"bound,omitempty"`
}

// MoveView is a move as visible to the viewer. PP fields are omitted for
// the opponent's moves.
type MoveView struct {
	Move  string `json:"move"`
	PP    *int   `json:"pp,omitempty"`
	MaxPP *int   `json:"max_pp,omitempty"`
}

// OpponentView is the public information about the other side.
type OpponentView struct {
	Name      string `json:"name"`
	TeamSize  int    `json:"team_size"`
	Remaining int    `json:"remaining"`
	// Active is nil while the opponent has no active pokémon.
	Active *PokemonView `json:"active,omitempty"`
	// Revealed lists benched members that have already appeared in battle.
	Revealed []PokemonView `json:"revealed"`
}
