package system

import (
	"fmt"
	"iter"
	"sort"

	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"
)

// Start は対戦開始の実況と、場に出ている個体の OnSwitchIn を行う Step 列を返します。
// 最初のターンの前に1度だけ呼べます。
func (b *Battle) Start() (iter.Seq[domain.Step], error) {
	if b.started || b.TurnNumber() > 0 || !b.phase.Is(phaseIdle) {
		return nil, fmt.Errorf("%w: battle already started", ErrTurnInProgress)
	}
	b.started = true
	return b.sequence(func(r *resolver) {
		for _, e := range r.Actives(core.SideEnemy) {
			if r.trainer {
				r.Say("trainer_sent", map[string]any{"name": e.Name})
			} else {
				r.Say("wild_appeared", map[string]any{"name": e.Name})
			}
		}
		for _, a := range r.Actives(core.SideAlly) {
			r.Say("send_out_ally", map[string]any{"name": a.Name})
		}
		r.out.emit(domain.MoveTargetsUpdateStep{})
		if w := r.Weather(); w != core.WeatherNone {
			r.Say("weather_"+string(w), nil)
		}
		for _, c := range r.speedOrder(r.allActives()) {
			if c.IsAlive() {
				c.Ability.Strategy.OnSwitchIn(r, c.Ability, c)
			}
		}
		r.deathCascade()
	}), nil
}

// Turn は1ターン分のコマンドを検証し、ターンを進める Step 列を返します。
// コマンドは場に出ている個体ごとにちょうど1つ必要です。
// 検証に失敗した場合は状態を変えずにエラーを返します。
func (b *Battle) Turn(cmds []domain.Command) (iter.Seq[domain.Step], error) {
	if b.Outcome().Decided() {
		return nil, ErrBattleOver
	}
	if !b.phase.Is(phaseIdle) {
		return nil, fmt.Errorf("%w: phase %s", ErrTurnInProgress, b.phase.Current())
	}
	byActor, err := b.validateCommands(cmds)
	if err != nil {
		return nil, err
	}
	b.started = true
	b.fire(eventBegin)
	return b.sequence(func(r *resolver) {
		r.cmds = byActor
		r.runTurn()
	}), nil
}

func (b *Battle) validateCommands(cmds []domain.Command) (map[*domain.Combatant]domain.Command, error) {
	actives := b.allActives()
	if len(cmds) != len(actives) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrCommandMismatch, len(cmds), len(actives))
	}
	byActor := make(map[*domain.Combatant]domain.Command, len(cmds))
	incoming := make(map[*domain.Combatant]bool)
	for _, cmd := range cmds {
		actor := cmd.Actor
		if actor == nil || !b.isActive(actor) {
			return nil, ErrUnknownActor
		}
		if _, dup := byActor[actor]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCommand, actor.Name)
		}
		if cmd.Move != nil && cmd.SwitchTo != nil {
			return nil, fmt.Errorf("%w: %s both moves and switches", ErrInvalidCommand, actor.Name)
		}
		if cmd.Move != nil {
			if cmd.Move.Template == nil || cmd.Move.Strategy == nil {
				return nil, fmt.Errorf("%w: unbound move", ErrInvalidCommand)
			}
			if !ownsMove(actor, cmd.Move) && !isFieldAction(cmd.Move) {
				return nil, fmt.Errorf("%w: %s does not know %s", ErrInvalidCommand, actor.Name, cmd.Move.Template.Name)
			}
		}
		if cmd.Target != nil {
			if _, ok := b.entities[cmd.Target]; !ok {
				return nil, fmt.Errorf("%w: target is not a participant", ErrInvalidCommand)
			}
		}
		if in := cmd.SwitchTo; in != nil {
			if _, ok := b.entities[in]; !ok || in.Side != actor.Side || b.isActive(in) || !in.IsAlive() || incoming[in] {
				return nil, fmt.Errorf("%w: %s cannot replace %s", ErrInvalidSwitch, in.Name, actor.Name)
			}
			incoming[in] = true
		}
		byActor[actor] = cmd
	}
	return byActor, nil
}

func ownsMove(c *domain.Combatant, m *domain.Move) bool {
	for _, own := range c.Moves {
		if own == m {
			return true
		}
	}
	return false
}

// isFieldAction はボールや逃走など、個体の技ではない行動かどうかを返します。
func isFieldAction(m *domain.Move) bool {
	switch m.Template.Behavior {
	case core.MoveCapture, core.MoveEscape:
		return true
	}
	return false
}

// SwitchImmediate はターン外で out を in に交代させる Step 列を返します。
// ひんしで空いた場所を埋める交代に使います。
func (b *Battle) SwitchImmediate(out, in *domain.Combatant) (iter.Seq[domain.Step], error) {
	if b.Outcome().Decided() {
		return nil, ErrBattleOver
	}
	if !b.phase.Is(phaseIdle) && !b.phase.Is(phaseTurnClose) {
		return nil, fmt.Errorf("%w: phase %s", ErrTurnInProgress, b.phase.Current())
	}
	if out == nil || in == nil || !b.isActive(out) || in.Side != out.Side || b.isActive(in) || !in.IsAlive() {
		return nil, ErrInvalidSwitch
	}
	if _, ok := b.entities[in]; !ok {
		return nil, ErrInvalidSwitch
	}
	return b.sequence(func(r *resolver) {
		r.performSwitch(out, in)
	}), nil
}

// runTurn はターンの各フェーズを順に実行します。勝敗が決まった時点で打ち切ります。
func (r *resolver) runTurn() {
	// 1. 天候
	if w := r.Weather(); w != core.WeatherNone {
		r.Say("weather_"+string(w), nil)
	}
	r.fire(eventNext)

	// 2. 勝敗判定
	if r.finishIfDecided() {
		return
	}
	r.fire(eventNext)

	// 3. 行動順
	r.order = r.speedOrder(r.allActives())
	r.fire(eventNext)

	// 4. ターン開始時の特性
	for _, c := range r.order {
		if c.IsAlive() {
			c.Ability.Strategy.OnTurnBegin(r, c.Ability, c)
		}
	}
	r.deathCascade()
	if r.finishIfDecided() {
		return
	}
	r.fire(eventNext)

	// 5. ターン開始時の効果
	r.effectPass(core.TriggerStartOfTurn)
	if r.finishIfDecided() {
		return
	}
	r.fire(eventNext)

	// 6. 行動
	if r.actionPhase() {
		return
	}
	r.fire(eventNext)

	// 7. ターン終了時の効果
	r.effectPass(core.TriggerEndOfTurn)
	for _, b := range r.effects.Live() {
		b.Effect.Turn++
	}
	if r.finishIfDecided() {
		return
	}
	r.fire(eventNext)

	// 8. ターン終了時の特性
	for _, c := range r.order {
		if c.IsAlive() {
			c.Ability.Strategy.OnTurnEnd(r, c.Ability, c)
		}
		c.Ability.Turn++
	}
	r.deathCascade()
	if r.finishIfDecided() {
		return
	}
	r.fire(eventNext)

	// 9. ターンの締め
	r.closeTurn()
}

// speedOrder は素早さの降順に並べます。同速の並びは乱数で決まります。
func (r *resolver) speedOrder(cs []*domain.Combatant) []*domain.Combatant {
	order := append([]*domain.Combatant(nil), cs...)
	for i := len(order) - 1; i > 0; i-- {
		j := r.rand.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].EffectiveSpeed() > order[j].EffectiveSpeed()
	})
	return order
}

// finishIfDecided は勝敗が決まっていればターンを終え、true を返します。
func (r *resolver) finishIfDecided() bool {
	outcome := r.evaluateOutcome()
	if !outcome.Decided() {
		return false
	}
	r.finish(outcome)
	return true
}

func (r *resolver) finish(outcome core.Outcome) {
	f := r.field()
	f.Turn++
	f.Outcome = outcome
	r.fire(eventDecide)
	r.log.Info().Str("battle_id", r.ID.String()).Str("outcome", string(outcome)).Int("turns", f.Turn).Msg("対戦が終了しました")
	r.out.emit(domain.TurnFinishedStep{Outcome: outcome})
}

func (r *resolver) closeTurn() {
	outcome := r.evaluateOutcome()
	if outcome.Decided() {
		r.finish(outcome)
		return
	}
	r.forcedSwitches()
	r.field().Turn++
	r.fire(eventNext)
	r.out.emit(domain.TurnFinishedStep{Outcome: core.OutcomeUndecided})
}

// forcedSwitches はひんしで空いた場所を埋めます。
// 相手側は最初の控えを自動で出し、味方側は交代の登録だけを通知します。
func (r *resolver) forcedSwitches() {
	for _, side := range []core.Side{core.SideAlly, core.SideEnemy} {
		reserves := aliveOnly(r.Reserves(side))
		for _, c := range r.Actives(side) {
			if c.IsAlive() || len(reserves) == 0 {
				continue
			}
			if side == core.SideEnemy {
				r.performSwitch(c, reserves[0])
			} else {
				r.out.emit(domain.SwitchRegisteredStep{Out: c})
			}
			reserves = reserves[1:]
		}
	}
}
