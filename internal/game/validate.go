package game

import "fmt"

// Validate checks the structural invariants of a session snapshot: HP, PP
// and stage bounds, and a single usable active member per team while the
// battle is running.
func (s *BattleSession) Validate() error {
	if s.TurnNumber < 1 {
		return fmt.Errorf("turn number %d < 1", s.TurnNumber)
	}
	if s.Phase == PhaseResolvingTurn {
		return fmt.Errorf("phase %s is transient", s.Phase)
	}
	for side := range s.Teams {
		if err := s.Teams[side].Validate(); err != nil {
			return fmt.Errorf("%s team: %w", Side(side), err)
		}
	}
	for i, e := range s.Events {
		if e.Seq != i+1 {
			return fmt.Errorf("event %d has seq %d", i, e.Seq)
		}
		if i > 0 && e.Turn < s.Events[i-1].Turn {
			return fmt.Errorf("event %d turn %d before previous turn %d", i, e.Turn, s.Events[i-1].Turn)
		}
	}
	return nil
}

// Validate checks one team's invariants.
func (t *Team) Validate() error {
	if len(t.Members) == 0 || len(t.Members) > MaxTeamSize {
		return fmt.Errorf("team size %d out of range", len(t.Members))
	}
	if t.Active != NoActive && (t.Active < 0 || t.Active >= len(t.Members)) {
		return fmt.Errorf("active slot %d out of range", t.Active)
	}
	for i := range t.Members {
		if err := t.Members[i].Validate(); err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
	}
	return nil
}

// Validate checks a pokémon's bounds.
func (p *Pokemon) Validate() error {
	if p.MaxHP <= 0 {
		return fmt.Errorf("%s: max hp %d", p.Species, p.MaxHP)
	}
	if p.HP < 0 || p.HP > p.MaxHP {
		return fmt.Errorf("%s: hp %d outside [0,%d]", p.Species, p.HP, p.MaxHP)
	}
	if len(p.Moves) == 0 || len(p.Moves) > MaxMoves {
		return fmt.Errorf("%s: %d moves", p.Species, len(p.Moves))
	}
	for _, m := range p.Moves {
		if m.PP < 0 || m.PP > m.MaxPP {
			return fmt.Errorf("%s: %s pp %d outside [0,%d]", p.Species, m.Move, m.PP, m.MaxPP)
		}
	}
	for _, st := range p.Stages.all() {
		if st < MinStage || st > MaxStage {
			return fmt.Errorf("%s: stat stage %d out of range", p.Species, st)
		}
	}
	if p.Volatile.ChargingMove != NoChargingMove && (p.Volatile.ChargingMove < 0 || p.Volatile.ChargingMove >= len(p.Moves)) {
		return fmt.Errorf("%s: charging move slot %d", p.Species, p.Volatile.ChargingMove)
	}
	return nil
}
