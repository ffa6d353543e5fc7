package ui

import (
	"fmt"

	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"
)

// rebuildMenu は現在のモードに合わせてコマンド欄のボタンを作り直します。
func (bs *BattleScene) rebuildMenu() {
	bs.menu.RemoveChildren()
	switch bs.mode {
	case modeCommand:
		bs.buildCommandButtons()
	case modeTarget:
		bs.buildTargetButtons()
	case modeForcedSwitch:
		bs.message.SetHint(fmt.Sprintf("Choose a replacement for %s", bs.fainted.Name))
		bs.buildSwitchButtons(func(in *domain.Combatant) { bs.forceSwitch(in) })
	}
}

// currentActor はコマンドを選んでいる味方です。
func (bs *BattleScene) currentActor() *domain.Combatant {
	allies := bs.battle.Actives(core.SideAlly)
	if len(bs.cmds) >= len(allies) {
		return nil
	}
	return allies[len(bs.cmds)]
}

func (bs *BattleScene) buildCommandButtons() {
	actor := bs.currentActor()
	if actor == nil {
		return
	}
	bs.message.SetHint(fmt.Sprintf("What will %s do?", actor.Name))

	for _, m := range actor.Moves {
		label := m.Template.Name
		if !m.Unlimited() {
			label = fmt.Sprintf("%s %d/%d", m.Template.Name, m.Uses, m.Template.MaxUses)
		}
		bs.menu.AddChild(bs.factory.NewButton(label, typeColors[m.Template.Type], m.Usable(), func() {
			bs.chooseMove(actor, m)
		}))
	}
	bs.buildSwitchButtons(func(in *domain.Combatant) {
		bs.commit(domain.Command{Actor: actor, SwitchTo: in})
	})
	if !bs.battle.IsTrainerBattle() {
		bs.menu.AddChild(bs.factory.NewButton(bs.capture.Template.Name, typeColors[core.TypeNormal], true, func() {
			bs.chooseMove(actor, bs.capture)
		}))
	}
	bs.menu.AddChild(bs.factory.NewButton(bs.escape.Template.Name, typeColors[core.TypeNormal], true, func() {
		bs.commit(domain.Command{Actor: actor, Move: bs.escape})
	}))
}

// buildSwitchButtons は交代できる控えのボタンを並べます。同じターンで既に選ばれた控えは除きます。
func (bs *BattleScene) buildSwitchButtons(onPick func(in *domain.Combatant)) {
	chosen := make(map[*domain.Combatant]bool)
	for _, cmd := range bs.cmds {
		if cmd.SwitchTo != nil {
			chosen[cmd.SwitchTo] = true
		}
	}
	for _, in := range aliveOnly(bs.battle.Reserves(core.SideAlly)) {
		if chosen[in] {
			continue
		}
		label := fmt.Sprintf("Go %s (%d/%d)", in.Name, in.Health, in.MaxHealth())
		bs.menu.AddChild(bs.factory.NewButton(label, colorSubText, true, func() { onPick(in) }))
	}
}

// chooseMove は技を選びます。対象が必要で候補が複数ある場合は対象選択に進みます。
func (bs *BattleScene) chooseMove(actor *domain.Combatant, m *domain.Move) {
	if !m.Template.Target.NeedsTarget() {
		bs.commit(domain.Command{Actor: actor, Move: m})
		return
	}
	foes := aliveOnly(bs.battle.Opponents(actor))
	if len(foes) <= 1 {
		cmd := domain.Command{Actor: actor, Move: m}
		if len(foes) == 1 {
			cmd.Target = foes[0]
		}
		bs.commit(cmd)
		return
	}
	bs.pending = m
	bs.mode = modeTarget
	bs.rebuildMenu()
}

func (bs *BattleScene) buildTargetButtons() {
	actor := bs.currentActor()
	if actor == nil || bs.pending == nil {
		return
	}
	bs.message.SetHint(fmt.Sprintf("Target for %s?", bs.pending.Template.Name))
	m := bs.pending
	for _, foe := range aliveOnly(bs.battle.Opponents(actor)) {
		bs.menu.AddChild(bs.factory.NewButton(foe.Label(), typeColors[foe.Species.Primary], true, func() {
			bs.commit(domain.Command{Actor: actor, Move: m, Target: foe})
		}))
	}
	bs.menu.AddChild(bs.factory.NewButton("Back", colorSubText, true, func() {
		bs.pending = nil
		bs.mode = modeCommand
		bs.rebuildMenu()
	}))
}
