package engine

import "github.com/ericogr/pokemon-arena/internal/game"

// ViewFor returns s as seen by side under the default sleep policy.
func ViewFor(s *game.BattleSession, side game.Side) game.BattleView {
	return Validator{Sleep: SleepResolveAtApply}.ViewFor(s, side)
}

// ViewFor builds the redacted view of s for side. The viewer's own team is
// shown in full. Of the opponent only the active pokémon and members that
// already appeared are listed, with revealed move names and no PP.
func (v Validator) ViewFor(s *game.BattleSession, side game.Side) game.BattleView {
	own := s.Team(side)
	opp := s.Team(side.Opponent())

	view := game.BattleView{
		BattleID:   s.ID,
		Side:       side,
		Phase:      s.Phase,
		Outcome:    s.Outcome,
		TurnNumber: s.TurnNumber,
		Version:    s.Version,
		Own:        game.TeamView{Active: own.Active, Members: make([]game.PokemonView, 0, len(own.Members))},
		Opponent: game.OpponentView{
			Name:      s.NPCName,
			TeamSize:  len(opp.Members),
			Remaining: opp.Healthy(),
			Revealed:  []game.PokemonView{},
		},
	}
	if side == game.SideNPC {
		view.Opponent.Name = s.PlayerName
	}

	for i := range own.Members {
		view.Own.Members = append(view.Own.Members, ownView(i, &own.Members[i]))
	}
	if a := opp.ActivePokemon(); a != nil {
		pv := publicView(opp.Active, a)
		view.Opponent.Active = &pv
	}
	for i := range opp.Members {
		if i == opp.Active || !opp.Members[i].Revealed {
			continue
		}
		view.Opponent.Revealed = append(view.Opponent.Revealed, publicView(i, &opp.Members[i]))
	}

	view.ValidActions = v.ValidActions(s, side)
	view.CanAct = s.Phase == game.PhaseWaitingForPlayerAction && !view.ValidActions.Empty()
	return view
}

func baseView(slot int, p *game.Pokemon) game.PokemonView {
	return game.PokemonView{
		Slot:       slot,
		Species:    p.Species,
		Nickname:   p.Nickname,
		Level:      p.Level,
		HP:         p.HP,
		MaxHP:      p.MaxHP,
		Types:      append([]string(nil), p.Types...),
		Status:     p.Status,
		Fainted:    p.Fainted(),
		Stages:     p.Stages,
		Confused:   p.Volatile.ConfusionTurns > 0,
		Recharging: p.Volatile.Recharging,
		Charging:   p.Volatile.ChargingMove != game.NoChargingMove,
		Bound:      p.Volatile.BoundTurns > 0,
	}
}

func ownView(slot int, p *game.Pokemon) game.PokemonView {
	v := baseView(slot, p)
	stats := p.Stats
	v.Stats = &stats
	v.Moves = make([]game.MoveView, 0, len(p.Moves))
	for _, m := range p.Moves {
		pp, maxPP := m.PP, m.MaxPP
		v.Moves = append(v.Moves, game.MoveView{Move: m.Move, PP: &pp, MaxPP: &maxPP})
	}
	return v
}

func publicView(slot int, p *game.Pokemon) game.PokemonView {
	v := baseView(slot, p)
	v.Moves = []game.MoveView{}
	for _, m := range p.Moves {
		if m.Revealed {
			v.Moves = append(v.Moves, game.MoveView{Move: m.Move})
		}
	}
	return v
}
