package game

// EventKind classifies an entry of the battle log.
type EventKind string

const (
	EventBattleStarted EventKind = "battle_started"
	EventForfeit       EventKind = "forfeit"
	EventSwitchOut     EventKind = "switch_out"
	EventSwitchIn      EventKind = "switch_in"
	EventMoveUsed      EventKind = "move_used"
	EventMoveMissed    EventKind = "move_missed"
	EventMoveFailed    EventKind = "move_failed"
	EventCantMove      EventKind = "cant_move"
	EventDamage        EventKind = "damage"
	EventHeal          EventKind = "heal"
	EventCriticalHit   EventKind = "critical_hit"
	EventEffectiveness EventKind = "effectiveness"
	EventStatusApplied EventKind = "status_applied"
	EventStatusCured   EventKind = "status_cured"
	EventConfused      EventKind = "confused"
	EventConfusionEnd  EventKind = "confusion_ended"
	EventStatStage     EventKind = "stat_stage"
	EventCharging      EventKind = "charging"
	EventRecharge      EventKind = "recharge"
	EventBound         EventKind = "bound"
	EventBindEnded     EventKind = "bind_ended"
	EventFlinch        EventKind = "flinch"
	EventFaint         EventKind = "faint"
	EventTurnEnded     EventKind = "turn_ended"
	EventBattleEnded   EventKind = "battle_ended"
)

// Event is one entry of the append-only battle log. Every state change
// made by the orchestrator or the mechanics engine is described by at least
// one event; numeric deltas (HP, PP, stages) are carried explicitly so the
// log accounts for every change.
type Event struct {
	Seq     int       `json:"seq"`
	Turn    int       `json:"turn"`
	Kind    EventKind `json:"kind"`
	Side    Side      `json:"side"`
	Slot    int       `json:"slot"`
	Species string    `json:"species,omitempty"`
	Move    string    `json:"move,omitempty"`
	// Delta is the signed HP change for damage and heal events.
	Delta int `json:"delta,omitempty"`
	// HP is the HP of the affected pokémon after the event.
	HP      int             `json:"hp,omitempty"`
	PPUsed  int             `json:"pp_used,omitempty"`
	Status  StatusCondition `json:"status,omitempty"`
	Stat    string          `json:"stat,omitempty"`
	Stages  int             `json:"stages,omitempty"`
	Outcome Outcome         `json:"outcome,omitempty"`
	Message string          `json:"message"`
}
