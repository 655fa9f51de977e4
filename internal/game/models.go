package game

import "time"

// Side identifies one of the two participants of a battle.
type Side int

const (
	SidePlayer Side = 0
	SideNPC    Side = 1
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideNPC
	}
	return SidePlayer
}

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "npc"
}

// Phase is the coarse state of a battle session.
type Phase string

const (
	PhaseWaitingForPlayerAction Phase = "waiting_for_player_action"
	// PhaseResolvingTurn only exists while the resolver runs; it is never persisted.
	PhaseResolvingTurn Phase = "resolving_turn"
	PhaseEnded         Phase = "ended"
)

// Outcome is set once the session reaches PhaseEnded.
type Outcome string

const (
	OutcomeNone       Outcome = ""
	OutcomePlayerWins Outcome = "player_wins"
	OutcomeNPCWins    Outcome = "npc_wins"
	OutcomeDraw       Outcome = "draw"
)

// WinnerOutcome returns the outcome in which side s wins.
func WinnerOutcome(s Side) Outcome {
	if s == SidePlayer {
		return OutcomePlayerWins
	}
	return OutcomeNPCWins
}

// StatusCondition is the single persistent (non-volatile) status of a pokémon.
type StatusCondition string

const (
	StatusNone      StatusCondition = ""
	StatusSleep     StatusCondition = "sleep"
	StatusPoison    StatusCondition = "poison"
	StatusBurn      StatusCondition = "burn"
	StatusFreeze    StatusCondition = "freeze"
	StatusParalysis StatusCondition = "paralysis"
)

// Stat names used by stage counters and events.
const (
	StatAttack   = "attack"
	StatDefense  = "defense"
	StatSpecial  = "special"
	StatSpeed    = "speed"
	StatAccuracy = "accuracy"
	StatEvasion  = "evasion"
)

const (
	MinStage = -6
	MaxStage = 6

	MaxMoves    = 4
	MaxTeamSize = 6

	// NoActive marks a team whose active pokémon fainted and has not been replaced yet.
	NoActive = -1
	// NoChargingMove is the ChargingMove value when no two-turn move is pending.
	NoChargingMove = -1
)

// Stats are the computed battle stats of a pokémon at its level.
type Stats struct {
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Special int `json:"special"`
	Speed   int `json:"speed"`
}

// StatStages holds the six stage counters, each bounded to [MinStage, MaxStage].
type StatStages struct {
	Attack   int `json:"attack"`
	Defense  int `json:"defense"`
	Special  int `json:"special"`
	Speed    int `json:"speed"`
	Accuracy int `json:"accuracy"`
	Evasion  int `json:"evasion"`
}

// Get returns the stage for the named stat.
func (s StatStages) Get(stat string) int {
	switch stat {
	case StatAttack:
		return s.Attack
	case StatDefense:
		return s.Defense
	case StatSpecial:
		return s.Special
	case StatSpeed:
		return s.Speed
	case StatAccuracy:
		return s.Accuracy
	case StatEvasion:
		return s.Evasion
	}
	return 0
}

// Set stores v for the named stat, clamped to the legal range.
func (s *StatStages) Set(stat string, v int) {
	if v < MinStage {
		v = MinStage
	}
	if v > MaxStage {
		v = MaxStage
	}
	switch stat {
	case StatAttack:
		s.Attack = v
	case StatDefense:
		s.Defense = v
	case StatSpecial:
		s.Special = v
	case StatSpeed:
		s.Speed = v
	case StatAccuracy:
		s.Accuracy = v
	case StatEvasion:
		s.Evasion = v
	}
}

// StatNames lists every stage counter in a fixed order.
var StatNames = []string{StatAttack, StatDefense, StatSpecial, StatSpeed, StatAccuracy, StatEvasion}

func (s StatStages) all() []int {
	return []int{s.Attack, s.Defense, s.Special, s.Speed, s.Accuracy, s.Evasion}
}

// Volatile holds transient flags that are cleared on switch-out.
type Volatile struct {
	ConfusionTurns int  `json:"confusion_turns"`
	Recharging     bool `json:"recharging"`
	// ChargingMove is the move slot of a two-turn move waiting to be released.
	ChargingMove  int  `json:"charging_move"`
	BoundTurns    int  `json:"bound_turns"`
	Flinched      bool `json:"flinched"`
	MovedThisTurn bool `json:"moved_this_turn"`
}

// ClearVolatile resets every transient flag.
func ClearVolatile() Volatile {
	return Volatile{ChargingMove: NoChargingMove}
}

// MoveSlot is one learned move with its remaining uses.
type MoveSlot struct {
	Move  string `json:"move"`
	PP    int    `json:"pp"`
	MaxPP int    `json:"max_pp"`
	// Revealed becomes true once the opponent has seen the move used.
	Revealed bool `json:"revealed"`
}

// Pokemon is one team member together with all of its battle state.
type Pokemon struct {
	Species    string          `json:"species"`
	Nickname   string          `json:"nickname,omitempty"`
	Level      int             `json:"level"`
	HP         int             `json:"hp"`
	MaxHP      int             `json:"max_hp"`
	Stats      Stats           `json:"stats"`
	BaseSpeed  int             `json:"base_speed"`
	Types      []string        `json:"types"`
	Moves      []MoveSlot      `json:"moves"`
	Status     StatusCondition `json:"status"`
	SleepTurns int             `json:"sleep_turns"`
	Volatile   Volatile        `json:"volatile"`
	Stages     StatStages      `json:"stages"`
	Revealed   bool            `json:"revealed"`
}

// Fainted reports whether the pokémon has no HP left.
func (p *Pokemon) Fainted() bool { return p.HP <= 0 }

// DisplayName returns the nickname when present, otherwise the species.
func (p *Pokemon) DisplayName() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Species
}

// HPFraction returns current HP as a fraction of max HP.
func (p *Pokemon) HPFraction() float64 {
	if p.MaxHP <= 0 {
		return 0
	}
	return float64(p.HP) / float64(p.MaxHP)
}

// Team is an ordered list of pokémon with exactly one active slot, or
// NoActive while a replacement is pending.
type Team struct {
	Members []Pokemon `json:"members"`
	Active  int       `json:"active"`
}

// ActivePokemon returns the active member or nil when none is active.
func (t *Team) ActivePokemon() *Pokemon {
	if t.Active < 0 || t.Active >= len(t.Members) {
		return nil
	}
	return &t.Members[t.Active]
}

// Healthy returns the number of members that have not fainted.
func (t *Team) Healthy() int {
	n := 0
	for i := range t.Members {
		if !t.Members[i].Fainted() {
			n++
		}
	}
	return n
}

// Reserves returns the indexes of non-fainted, non-active members.
func (t *Team) Reserves() []int {
	out := make([]int, 0, len(t.Members))
	for i := range t.Members {
		if i == t.Active || t.Members[i].Fainted() {
			continue
		}
		out = append(out, i)
	}
	return out
}

// NeedsReplacement reports whether the team has no usable active pokémon
// while healthy reserves remain.
func (t *Team) NeedsReplacement() bool {
	a := t.ActivePokemon()
	if a != nil && !a.Fainted() {
		return false
	}
	return len(t.Reserves()) > 0
}

// Defeated reports whether every member has fainted.
func (t *Team) Defeated() bool { return t.Healthy() == 0 }

// BattleSession is one player-vs-NPC match. The orchestrator owns it; the
// store only persists snapshots.
type BattleSession struct {
	ID           string    `json:"id"`
	PlayerID     string    `json:"player_id"`
	PlayerName   string    `json:"player_name"`
	NPCProfileID string    `json:"npc_profile_id"`
	NPCName      string    `json:"npc_name"`
	Teams        [2]Team   `json:"teams"`
	TurnNumber   int       `json:"turn_number"`
	Phase        Phase     `json:"phase"`
	Outcome      Outcome   `json:"outcome"`
	Events       []Event   `json:"events"`
	Version      int64     `json:"version"`
	Seed         int64     `json:"seed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Team returns a pointer to the team of side s.
func (s *BattleSession) Team(side Side) *Team { return &s.Teams[side] }

// Ended reports whether the session is terminal.
func (s *BattleSession) Ended() bool { return s.Phase == PhaseEnded }

// AppendEvents stamps events with sequence numbers and the current turn
// and appends them to the log. The stamped copies are returned.
func (s *BattleSession) AppendEvents(events ...Event) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		e.Seq = len(s.Events) + 1
		e.Turn = s.TurnNumber
		s.Events = append(s.Events, e)
		out = append(out, e)
	}
	return out
}

// Clone returns a deep copy; the resolver never mutates its input.
func (s *BattleSession) Clone() *BattleSession {
	c := *s
	for i := range s.Teams {
		c.Teams[i] = s.Teams[i].Clone()
	}
	c.Events = append([]Event(nil), s.Events...)
	return &c
}

// Clone returns a deep copy of the team.
func (t Team) Clone() Team {
	c := Team{Active: t.Active, Members: make([]Pokemon, len(t.Members))}
	for i := range t.Members {
		c.Members[i] = t.Members[i].Clone()
	}
	return c
}

// Clone returns a deep copy of the pokémon.
func (p Pokemon) Clone() Pokemon {
	c := p
	c.Types = append([]string(nil), p.Types...)
	c.Moves = append([]MoveSlot(nil), p.Moves...)
	return c
}
