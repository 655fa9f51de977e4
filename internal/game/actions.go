package game

import "fmt"

// ActionKind tags the variant of an Action.
type ActionKind string

const (
	ActionMove    ActionKind = "move"
	ActionSwitch  ActionKind = "switch"
	ActionForfeit ActionKind = "forfeit"
	// ActionStruggle is injected when every move is out of PP.
	ActionStruggle ActionKind = "struggle"
	// ActionPass is the forced no-op of a pokémon that must recharge or is bound.
	ActionPass ActionKind = "pass"
)

// Action is a request to act for one side. Index is the move slot for
// ActionMove and the team slot for ActionSwitch; it is ignored otherwise.
type Action struct {
	Kind  ActionKind `json:"type"`
	Index int        `json:"index"`
}

func UseMove(i int) Action  { return Action{Kind: ActionMove, Index: i} }
func SwitchTo(i int) Action { return Action{Kind: ActionSwitch, Index: i} }
func Forfeit() Action       { return Action{Kind: ActionForfeit} }
func Struggle() Action      { return Action{Kind: ActionStruggle} }
func Pass() Action          { return Action{Kind: ActionPass} }

// Equal compares two actions, ignoring Index for kinds that don't use it.
func (a Action) Equal(b Action) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ActionMove, ActionSwitch:
		return a.Index == b.Index
	}
	return true
}

func (a Action) String() string {
	switch a.Kind {
	case ActionMove, ActionSwitch:
		return fmt.Sprintf("%s(%d)", a.Kind, a.Index)
	}
	return string(a.Kind)
}

// ParseActionKind validates a wire value.
func ParseActionKind(s string) (ActionKind, bool) {
	switch k := ActionKind(s); k {
	case ActionMove, ActionSwitch, ActionForfeit, ActionStruggle, ActionPass:
		return k, true
	}
	return "", false
}

// ValidActionSet is the finite set of actions legal for one side right now.
type ValidActionSet struct {
	Actions []Action `json:"actions"`
	// Forced is set when the active pokémon is locked into a single action.
	Forced bool `json:"forced"`
	// ReplacementRequired is set when only switches to a reserve are allowed.
	ReplacementRequired bool `json:"replacement_required"`
}

// Contains reports whether a is in the set.
func (v ValidActionSet) Contains(a Action) bool {
	for _, x := range v.Actions {
		if x.Equal(a) {
			return true
		}
	}
	return false
}

// Empty reports whether no action is legal.
func (v ValidActionSet) Empty() bool { return len(v.Actions) == 0 }

// WithoutForfeit returns the actions other than forfeit.
func (v ValidActionSet) WithoutForfeit() []Action {
	out := make([]Action, 0, len(v.Actions))
	for _, a := range v.Actions {
		if a.Kind != ActionForfeit {
			out = append(out, a)
		}
	}
	return out
}

// Difficulty selects the NPC policy tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// NPCProfile is catalog data describing an opponent and its policy parameters.
type NPCProfile struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	// Aggression in [0,1] biases the medium tier towards raw damage.
	Aggression float64 `json:"aggression"`
	// SwitchThreshold is the HP fraction below which a defensive switch is considered.
	SwitchThreshold float64  `json:"switch_threshold"`
	LookAhead       int      `json:"look_ahead"`
	Teams           []string `json:"teams"`
}
