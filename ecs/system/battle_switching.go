package system

import (
	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"
	"monbattle-ebiten/ecs/entity"
)

// performSwitch は場の out を控えの in と入れ替えます。
func (r *resolver) performSwitch(out, in *domain.Combatant) {
	outEntry, ok1 := r.entry(out)
	inEntry, ok2 := r.entry(in)
	if !ok1 || !ok2 {
		r.log.Warn().Str("out", out.Name).Str("in", in.Name).Msg("交代する個体が対戦に登録されていません")
		return
	}

	// 1. 引っ込める
	withdraw, sendOut := "withdraw_ally", "send_out_ally"
	if out.Side == core.SideEnemy {
		withdraw, sendOut = "withdraw_enemy", "send_out_enemy"
	}
	if out.IsAlive() {
		r.Say(withdraw, map[string]any{"name": out.Name})
		out.Ability.Strategy.OnSwitchOut(r, out.Ability, out)
	}

	// 2. 交代で終わる効果を片付ける
	for i := 0; i < r.effects.Len(); i++ {
		b, ok := r.effects.At(i)
		if !ok || !b.Effect.EndsOnSwitchOut {
			continue
		}
		if b.Target != out && !(b.Target == nil && b.User == out) {
			continue
		}
		b.Effect.Strategy.OnSwitchOut(r, b.Effect, b.User, b.Target)
		r.removeEffect(i)
	}
	out.ResetStages()

	// 3. 場の位置を入れ替える
	entity.Swap(outEntry, inEntry)
	for i, c := range r.order {
		if c == out {
			r.order[i] = in
		}
	}
	in.Ability.Turn = 0
	r.Say(sendOut, map[string]any{"name": in.Name})
	r.out.emit(domain.SwitchPerformedStep{Out: out, In: in})

	// 4. 経験値分配用の記録
	for _, opp := range r.Opponents(in) {
		if opp.IsAlive() {
			in.AddOpponent(opp)
			opp.AddOpponent(in)
		}
	}

	// 5. 持ち越した状態異常の効果を張り直す
	if kind, ok := core.StatusEffect(in.Status); ok {
		r.addEffect(kind, in, in, -1)
	}

	in.Ability.Strategy.OnSwitchIn(r, in.Ability, in)
	r.out.emit(domain.MoveTargetsUpdateStep{})
	r.deathCascade()
}
