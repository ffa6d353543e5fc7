package ecs

import (
	"math/rand/v2"
	"testing"

	"monbattle-ebiten/core"
	"monbattle-ebiten/data"
	"monbattle-ebiten/domain"
	"monbattle-ebiten/ecs/system"
)

type countingSounds map[core.Sound]int

func (s countingSounds) Play(snd core.Sound) { s[snd]++ }

func newDemoBattle(t *testing.T) *system.Battle {
	t.Helper()
	game, err := data.DefaultGameData()
	if err != nil {
		t.Fatalf("DefaultGameData: %v", err)
	}
	registry := system.NewStrategyRegistry()
	factory := system.NewCombatantFactory(game, registry)
	allies, err := factory.Party([]data.Member{{Species: "sproutle", Level: 12}}, core.SideAlly)
	if err != nil {
		t.Fatalf("ally party: %v", err)
	}
	enemies, err := factory.Party([]data.Member{{Species: "fluffwing", Level: 9}}, core.SideEnemy)
	if err != nil {
		t.Fatalf("enemy party: %v", err)
	}
	b, err := system.NewBattle(allies, enemies, system.Options{
		Game:     game,
		Registry: registry,
		Rand:     rand.New(rand.NewPCG(1, 2)),
	})
	if err != nil {
		t.Fatalf("NewBattle: %v", err)
	}
	return b
}

func TestStepPumpHoldsOnMessages(t *testing.T) {
	b := newDemoBattle(t)
	seq, err := b.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	pump := NewStepPump(seq)
	p := NewQueuePresenter(2, nil)

	if !pump.Advance(p) {
		t.Fatal("start sequence ended before the first message")
	}
	if got := p.Message(); got != "A wild Fluffwing appeared!" {
		t.Fatalf("first message = %q", got)
	}
	// 待ちの間は次の Step を取り出さない
	pump.Advance(p)
	if got := p.Message(); got != "A wild Fluffwing appeared!" {
		t.Fatalf("message advanced while waiting: %q", got)
	}

	p.Tick(false)
	if !p.Waiting() {
		t.Fatal("message released after one of two frames")
	}
	p.Tick(false)
	if p.Waiting() {
		t.Fatal("message still held after its frames elapsed")
	}

	if !pump.Advance(p) {
		t.Fatal("start sequence ended before the send-out message")
	}
	if got := p.Message(); got != "Go! Sproutle!" {
		t.Fatalf("second message = %q", got)
	}
	for pump.Advance(p) {
		p.Tick(true)
	}
	if !p.TakeDirty() {
		t.Error("move target update was not recorded")
	}
	if p.TakeDirty() {
		t.Error("dirty flag survived TakeDirty")
	}
	if len(p.History()) < 2 {
		t.Errorf("history = %v", p.History())
	}
}

func TestStepPumpCloseFinishesTurn(t *testing.T) {
	b := newDemoBattle(t)
	start, err := b.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	system.Drive(start, NewQueuePresenter(1, nil))

	cmds := append(b.ChooseCommands(core.SideAlly), b.ChooseCommands(core.SideEnemy)...)
	seq, err := b.Turn(cmds)
	if err != nil {
		t.Fatalf("Turn: %v", err)
	}
	sounds := countingSounds{}
	pump := NewStepPump(seq)
	p := NewQueuePresenter(1, sounds)
	if !pump.Advance(p) {
		t.Fatal("turn produced no message")
	}
	pump.Close()

	if b.TurnNumber() != 1 {
		t.Errorf("turn number = %d after an abandoned turn", b.TurnNumber())
	}
	if b.Phase() != "idle" && !b.Outcome().Decided() {
		t.Errorf("phase = %s after an abandoned turn", b.Phase())
	}
	if pump.Advance(p) {
		t.Error("closed pump kept producing steps")
	}
}

func TestQueuePresenterSwitchQueue(t *testing.T) {
	p := NewQueuePresenter(1, nil)
	s := &core.Species{ID: "a", Name: "A", Primary: core.TypeNormal, Secondary: core.TypeNone,
		Base: core.BaseStats{HP: 50, Attack: 50, Defense: 50, SpAttack: 50, SpDefense: 50, Speed: 50}, Growth: core.GrowthMediumFast}
	standing := domain.NewCombatant(s, 5, core.SideAlly)
	fallen := domain.NewCombatant(s, 5, core.SideAlly)
	fallen.SetHealth(0)
	fallen.Status = core.StatusFainted

	p.RegisterSwitch(standing)
	p.RegisterSwitch(fallen)

	got, ok := p.TakeSwitch()
	if !ok || got != fallen {
		t.Fatalf("TakeSwitch = %v, %v; want the fainted combatant", got, ok)
	}
	if _, ok := p.TakeSwitch(); ok {
		t.Error("queue not drained")
	}

	p.PlaySound(core.SoundHit)
	if p.Outcome() != core.OutcomeUndecided {
		t.Errorf("initial outcome = %s", p.Outcome())
	}
}
