package system

import (
	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"
	"monbattle-ebiten/formula"
)

// actionPhase は行動フェーズを実行します。勝敗が決まってターンを終えた場合は true を返します。
func (r *resolver) actionPhase() bool {
	// 1. 交代は技より先に、行動順で行う
	for _, c := range append([]*domain.Combatant(nil), r.order...) {
		cmd, ok := r.cmds[c]
		if !ok || cmd.SwitchTo == nil {
			continue
		}
		if !r.isActive(c) || r.isActive(cmd.SwitchTo) || !cmd.SwitchTo.IsAlive() {
			continue
		}
		r.performSwitch(c, cmd.SwitchTo)
	}
	if r.finishIfDecided() {
		return true
	}

	// 2. 技
	for i := 0; i < len(r.order); i++ {
		actor := r.order[i]
		cmd, ok := r.cmds[actor]
		if !ok || cmd.Move == nil || !actor.IsAlive() {
			continue
		}
		r.useMove(actor, cmd)
		if r.finishIfDecided() {
			return true
		}
	}
	return false
}

// canAct は眠り・こおり・まひによる行動不能を判定します。
func (r *resolver) canAct(actor *domain.Combatant) bool {
	name := map[string]any{"name": actor.Label()}
	switch actor.Status {
	case core.StatusSleeping:
		r.Say("asleep", name)
		return false
	case core.StatusFrozen:
		if r.rand.Float64() < r.balance.ThawChance {
			actor.Status = core.StatusNone
			r.Say("thawed", name)
			return true
		}
		r.Say("frozen", name)
		return false
	case core.StatusParalyzed:
		if r.rand.Float64() < r.balance.FullParalysis {
			r.Say("fully_paralyzed", name)
			return false
		}
	}
	return true
}

// useMove は1体分の技の使用を処理します。
func (r *resolver) useMove(actor *domain.Combatant, cmd domain.Command) {
	move := cmd.Move
	if !r.canAct(actor) {
		return
	}
	if !move.Usable() {
		r.Say("no_uses", map[string]any{"user": actor.Label(), "move": move.Template.Name})
		return
	}
	move.Spend()
	if !isFieldAction(move) {
		r.Say("move_used", map[string]any{"user": actor.Label(), "move": move.Template.Name})
	}

	ab := actor.Ability
	ab.Strategy.OnMoveUse(r, ab, actor, move)

	targets := r.resolveTargets(move, actor, cmd.Target)
	if len(targets) == 0 {
		r.Say("move_failed", nil)
	}
	for _, t := range targets {
		if !t.IsAlive() {
			continue
		}
		r.runPipeline(move, actor, t, len(targets))
		r.deathCascade()
		if r.evaluateOutcome().Decided() || !actor.IsAlive() {
			break
		}
	}
	if actor.IsAlive() {
		ab.Strategy.AfterMoveUse(r, ab, actor, move)
	}
}

func (r *resolver) resolveTargets(m *domain.Move, user, primary *domain.Combatant) []*domain.Combatant {
	return ResolveTargets(m.Template.Target, user, primary, r.Allies(user), r.Opponents(user))
}

// runPipeline は1体の対象に対する命中から追加効果までを処理します。
func (r *resolver) runPipeline(m *domain.Move, user, target *domain.Combatant, targetCount int) {
	s := m.Strategy
	tmpl := m.Template

	// 1. 使用時のフック
	s.OnUse(r, m, user, target)

	// 2. 命中判定
	if !r.hit.Check(m, user, target) {
		r.Say("move_missed", map[string]any{"user": user.Label()})
		s.OnMiss(r, m, user, target)
		return
	}

	// 3. タイプ相性
	user.LastMoveCrit = false
	effectiveness := 1.0
	if tmpl.IsDamaging() {
		effectiveness = formula.Effectiveness(tmpl.Type, target.Types())
		if effectiveness == 0 {
			r.Say("no_effect", map[string]any{"name": target.Label()})
			return
		}
		r.PlaySound(hitSound(effectiveness))
	}

	// 4. 本体
	s.Execute(r, m, user, target, targetCount)
	if target != user {
		target.LastHitBy = user
	}

	// 5. 急所・相性の実況
	if user.LastMoveCrit {
		r.Say("critical_hit", nil)
	}
	if tmpl.IsDamaging() {
		switch {
		case effectiveness > 1:
			r.Say("super_effective", nil)
		case effectiveness < 1:
			r.Say("not_very_effective", nil)
		}
	}

	// 6. 命中後のフック
	s.OnHit(r, m, user, target)
}

func hitSound(effectiveness float64) core.Sound {
	switch {
	case effectiveness > 1:
		return core.SoundSuperEffective
	case effectiveness < 1:
		return core.SoundNotVeryEffective
	}
	return core.SoundHit
}
