package engine

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ericogr/pokemon-arena/internal/catalog"
	"github.com/ericogr/pokemon-arena/internal/game"
)

// An NPC whose only move fails at full HP, so it never changes the player's team.
func harmlessNPC(t *testing.T, c *catalog.Catalog) game.Team {
	t.Helper()
	return custom(t, c, member("chansey", "softboiled"))
}

func TestApplyKnockOutWithReservesKeepsBattleGoing(t *testing.T) {
	c := testCatalog(t)
	r := newResolver(c, DefaultOptions())
	s := newSession(prefab(t, c, "venusaur_team"), prefab(t, c, "brock_team"))
	s.Teams[1].Members[0].HP = 1

	next, delta, err := r.Apply(s, game.UseMove(3))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if next.Phase != game.PhaseWaitingForPlayerAction {
		t.Fatalf("phase = %s", next.Phase)
	}
	if n := count(delta, game.EventFaint); n != 1 {
		t.Fatalf("faint events = %d, want 1", n)
	}
	if next.Teams[1].Active != 1 {
		t.Fatalf("npc replacement not sent in, active = %d", next.Teams[1].Active)
	}
	if err := next.Validate(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
}

func TestApplyKnockOutLastPokemonEndsBattle(t *testing.T) {
	c := testCatalog(t)
	r := newResolver(c, DefaultOptions())
	s := newSession(prefab(t, c, "venusaur_team"), prefab(t, c, "brock_team"))
	for i := 1; i < len(s.Teams[1].Members); i++ {
		s.Teams[1].Members[i].HP = 0
	}
	s.Teams[1].Members[0].HP = 1

	next, delta, err := r.Apply(s, game.UseMove(3))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if next.Phase != game.PhaseEnded || next.Outcome != game.OutcomePlayerWins {
		t.Fatalf("phase %s outcome %s", next.Phase, next.Outcome)
	}
	if delta[len(delta)-1].Kind != game.EventBattleEnded {
		t.Fatalf("last event = %s", delta[len(delta)-1].Kind)
	}
	if _, _, err := r.Apply(next, game.UseMove(3)); !errors.Is(err, game.ErrSessionTerminated) {
		t.Fatalf("apply after end: %v", err)
	}
}

func TestApplyRejectsIllegalAction(t *testing.T) {
	c := testCatalog(t)
	r := newResolver(c, DefaultOptions())
	s := newSession(prefab(t, c, "venusaur_team"), prefab(t, c, "brock_team"))
	s.Version = 4
	before := s.Clone()

	for _, a := range []game.Action{game.UseMove(9), game.SwitchTo(0), game.Pass(), game.Struggle()} {
		next, delta, err := r.Apply(s, a)
		if !errors.Is(err, game.ErrInvalidAction) {
			t.Fatalf("%s: expected InvalidAction, got %v", a, err)
		}
		if next != nil || delta != nil {
			t.Fatalf("%s: failed apply returned state", a)
		}
	}
	if !reflect.DeepEqual(s, before) {
		t.Fatalf("session changed after rejected actions")
	}
}

func TestApplyAsleepMoveFailsWithoutSpendingPP(t *testing.T) {
	c := testCatalog(t)
	r := newResolver(c, DefaultOptions())
	s := newSession(prefab(t, c, "venusaur_team"), harmlessNPC(t, c))
	s.Teams[0].Members[0].Status = game.StatusSleep
	s.Teams[0].Members[0].SleepTurns = 5

	if !r.ValidActions(s, game.SidePlayer).Contains(game.UseMove(3)) {
		t.Fatalf("moves should stay legal while asleep")
	}
	next, delta, err := r.Apply(s, game.UseMove(3))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	asleep := false
	for _, e := range delta {
		if e.Side == game.SidePlayer && e.Kind == game.EventCantMove && strings.Contains(e.Message, "fast asleep") {
			asleep = true
		}
	}
	if !asleep || countSide(delta, game.EventMoveUsed, game.SidePlayer) != 0 {
		t.Fatalf("expected a fast asleep event: %+v", delta)
	}
	if next.Teams[0].Members[0].Moves[3].PP != s.Teams[0].Members[0].Moves[3].PP {
		t.Fatalf("pp consumed while asleep")
	}
}

func TestApplyNPCReplacementWithinOneCall(t *testing.T) {
	c := testCatalog(t)
	r := newResolver(c, DefaultOptions())
	s := newSession(prefab(t, c, "venusaur_team"), prefab(t, c, "brock_team"))
	s.Teams[1].Members[0].HP = 1

	next, delta, err := r.Apply(s, game.UseMove(3))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if countSide(delta, game.EventMoveUsed, game.SidePlayer) != 1 {
		t.Fatalf("missing player move event")
	}
	if countSide(delta, game.EventSwitchIn, game.SideNPC) != 1 {
		t.Fatalf("missing npc replacement event")
	}
	if next.TurnNumber != s.TurnNumber+1 || count(delta, game.EventTurnEnded) != 1 {
		t.Fatalf("turn %d -> %d with %d turn_ended events", s.TurnNumber, next.TurnNumber, count(delta, game.EventTurnEnded))
	}
	faint, swap := -1, -1
	for i, e := range delta {
		switch {
		case e.Kind == game.EventFaint:
			faint = i
		case e.Kind == game.EventSwitchIn && e.Side == game.SideNPC:
			swap = i
		}
	}
	if faint > swap {
		t.Fatalf("replacement logged before the faint")
	}
	for i, e := range next.Events {
		if e.Seq != i+1 {
			t.Fatalf("event %d has seq %d", i, e.Seq)
		}
	}
}

func TestApplyPlayerReplacementCompletesTurn(t *testing.T) {
	c := testCatalog(t)
	r := newResolver(c, DefaultOptions())
	player := custom(t, c, member("pikachu", "thunderbolt"), member("snorlax", "body-slam"))
	npc := custom(t, c, member("jolteon", "thunderbolt"))
	s := newSession(player, npc)
	s.Teams[0].Members[0].HP = 1

	waiting, delta, err := r.Apply(s, game.UseMove(0))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if waiting.Phase != game.PhaseWaitingForPlayerAction || waiting.TurnNumber != 1 {
		t.Fatalf("phase %s turn %d", waiting.Phase, waiting.TurnNumber)
	}
	if countSide(delta, game.EventMoveUsed, game.SidePlayer) != 0 {
		t.Fatalf("fainted pokemon acted")
	}
	set := r.ValidActions(waiting, game.SidePlayer)
	if !set.ReplacementRequired || !set.Contains(game.SwitchTo(1)) {
		t.Fatalf("expected replacement set, got %+v", set)
	}

	waiting.Version = 1
	next, delta, err := r.Apply(waiting, game.SwitchTo(1))
	if err != nil {
		t.Fatalf("replacement: %v", err)
	}
	if next.TurnNumber != 2 || next.Teams[0].Active != 1 {
		t.Fatalf("turn %d active %d", next.TurnNumber, next.Teams[0].Active)
	}
	if countSide(delta, game.EventMoveUsed, game.SideNPC) != 0 {
		t.Fatalf("npc acted during the replacement")
	}
}

func TestApplyForfeit(t *testing.T) {
	c := testCatalog(t)
	r := NewResolver(c, faultyEngine{}, firstLegal{}, DefaultOptions())
	s := newSession(prefab(t, c, "venusaur_team"), prefab(t, c, "brock_team"))

	next, delta, err := r.Apply(s, game.Forfeit())
	if err != nil {
		t.Fatalf("forfeit: %v", err)
	}
	if next.Phase != game.PhaseEnded || next.Outcome != game.OutcomeNPCWins {
		t.Fatalf("phase %s outcome %s", next.Phase, next.Outcome)
	}
	if len(delta) != 2 || delta[0].Kind != game.EventForfeit || delta[1].Kind != game.EventBattleEnded {
		t.Fatalf("delta = %+v", delta)
	}
}

func TestApplyEngineFaultPersistsNothing(t *testing.T) {
	c := testCatalog(t)
	r := NewResolver(c, faultyEngine{}, firstLegal{}, DefaultOptions())
	s := newSession(prefab(t, c, "venusaur_team"), prefab(t, c, "brock_team"))
	before := s.Clone()

	next, delta, err := r.Apply(s, game.UseMove(3))
	if !errors.Is(err, game.ErrEngineFault) || !errors.Is(err, errBroken) {
		t.Fatalf("expected engine fault wrapping the cause, got %v", err)
	}
	if next != nil || delta != nil {
		t.Fatalf("engine fault returned partial state")
	}
	if !reflect.DeepEqual(s, before) {
		t.Fatalf("engine fault mutated the input")
	}
}

func TestApplyIsDeterministicPerSnapshot(t *testing.T) {
	c := testCatalog(t)
	r := newResolver(c, DefaultOptions())
	s := newSession(prefab(t, c, "charizard_team"), prefab(t, c, "surge_team"))

	a, da, err := r.Apply(s, game.UseMove(0))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	b, db, err := r.Apply(s, game.UseMove(0))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !reflect.DeepEqual(da, db) || !reflect.DeepEqual(a.Teams, b.Teams) {
		t.Fatalf("same snapshot produced different results")
	}
	if a.Version != s.Version {
		t.Fatalf("resolver must not bump the version")
	}
}

func TestTieBreakPlayerFirst(t *testing.T) {
	c := testCatalog(t)
	r := newResolver(c, DefaultOptions())
	s := newSession(custom(t, c, member("snorlax", "tackle")), custom(t, c, member("snorlax", "tackle")))

	_, delta, err := r.Apply(s, game.UseMove(0))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	for _, e := range delta {
		if e.Kind == game.EventMoveUsed {
			if e.Side != game.SidePlayer {
				t.Fatalf("npc moved first on a speed tie")
			}
			return
		}
	}
	t.Fatalf("no move events")
}

func TestTieBreakSeeded(t *testing.T) {
	c := testCatalog(t)
	opts := DefaultOptions()
	opts.TieBreak = TieBreakSeeded
	r := newResolver(c, opts)

	firstMover := func(seed int64) game.Side {
		s := newSession(custom(t, c, member("snorlax", "tackle")), custom(t, c, member("snorlax", "tackle")))
		s.Seed = seed
		_, delta, err := r.Apply(s, game.UseMove(0))
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		for _, e := range delta {
			if e.Kind == game.EventMoveUsed {
				return e.Side
			}
		}
		t.Fatalf("no move events")
		return game.SidePlayer
	}

	seen := map[game.Side]bool{}
	for seed := int64(1); seed <= 64; seed++ {
		side := firstMover(seed)
		if again := firstMover(seed); again != side {
			t.Fatalf("seed %d not deterministic", seed)
		}
		seen[side] = true
	}
	if !seen[game.SidePlayer] || !seen[game.SideNPC] {
		t.Fatalf("seeded tie break never varied: %v", seen)
	}
}

func TestPriorityBeatsSpeed(t *testing.T) {
	c := testCatalog(t)
	r := newResolver(c, DefaultOptions())
	s := newSession(custom(t, c, member("snorlax", "quick-attack")), custom(t, c, member("electrode", "swift")))

	_, delta, err := r.Apply(s, game.UseMove(0))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	for _, e := range delta {
		if e.Kind == game.EventMoveUsed {
			if e.Side != game.SidePlayer || e.Move != "quick-attack" {
				t.Fatalf("quick attack should move first, got %+v", e)
			}
			break
		}
	}
}

func TestTickLoopAutoAdvancesChargedMove(t *testing.T) {
	c := testCatalog(t)
	r := newResolver(c, DefaultOptions())
	s := newSession(custom(t, c, member("venusaur", "solar-beam")), harmlessNPC(t, c))

	next, delta, err := r.Apply(s, game.UseMove(0))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if next.TurnNumber != 3 || count(delta, game.EventTurnEnded) != 2 {
		t.Fatalf("turn %d with %d turn_ended events", next.TurnNumber, count(delta, game.EventTurnEnded))
	}
	if count(delta, game.EventCharging) != 1 || countSide(delta, game.EventDamage, game.SideNPC) != 1 {
		t.Fatalf("expected charge then release: %+v", delta)
	}
	slot := next.Teams[0].Members[0].Moves[0]
	if slot.PP != slot.MaxPP-1 {
		t.Fatalf("pp = %d, want %d", slot.PP, slot.MaxPP-1)
	}
	if r.ValidActions(next, game.SidePlayer).Forced {
		t.Fatalf("player should be free to choose again")
	}
}

func TestTickLoopYieldsAtBound(t *testing.T) {
	c := testCatalog(t)
	for _, opts := range []Options{
		{SleepPolicy: SleepResolveAtApply, TieBreak: TieBreakPlayerFirst, AutoAdvance: true, MaxAutoTurns: 1},
		{SleepPolicy: SleepResolveAtApply, TieBreak: TieBreakPlayerFirst, AutoAdvance: false, MaxAutoTurns: 100},
	} {
		r := newResolver(c, opts)
		s := newSession(custom(t, c, member("venusaur", "solar-beam")), harmlessNPC(t, c))
		next, _, err := r.Apply(s, game.UseMove(0))
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if next.TurnNumber != 2 || next.Phase != game.PhaseWaitingForPlayerAction {
			t.Fatalf("turn %d phase %s", next.TurnNumber, next.Phase)
		}
		set := r.ValidActions(next, game.SidePlayer)
		if !set.Forced || !set.Contains(game.UseMove(0)) {
			t.Fatalf("expected the charged move to be forced: %+v", set)
		}
	}
}

func TestPrefilterSleepAutoAdvancesUntilWake(t *testing.T) {
	c := testCatalog(t)
	opts := DefaultOptions()
	opts.SleepPolicy = SleepPrefilter
	r := newResolver(c, opts)
	s := newSession(prefab(t, c, "venusaur_team"), harmlessNPC(t, c))
	s.Teams[0].Members[0].Status = game.StatusSleep
	s.Teams[0].Members[0].SleepTurns = 3

	if _, _, err := r.Apply(s, game.UseMove(0)); !errors.Is(err, game.ErrInvalidAction) {
		t.Fatalf("move while asleep under prefilter: %v", err)
	}
	next, delta, err := r.Apply(s, game.Pass())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if next.Teams[0].Members[0].Status != game.StatusNone {
		t.Fatalf("still asleep after the tick loop")
	}
	if next.TurnNumber != 4 || count(delta, game.EventStatusCured) != 1 {
		t.Fatalf("turn %d, cured events %d", next.TurnNumber, count(delta, game.EventStatusCured))
	}
}
