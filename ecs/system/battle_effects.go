package system

import (
	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"
)

// effectPass は trigger の効果を登録順に処理します。
// 処理中に追加された効果も同じパスで処理されます。勝敗が決まった時点で打ち切ります。
func (r *resolver) effectPass(trigger core.Trigger) {
	for i := 0; i < r.effects.Len(); i++ {
		b, ok := r.effects.At(i)
		if !ok || b.Effect.Trigger != trigger {
			continue
		}
		r.applyBinding(i)
		r.deathCascade()
		if r.evaluateOutcome().Decided() {
			return
		}
	}
}

// applyBinding は i 番目の効果を1回処理します。期限切れなら OnDeletion を呼んで取り除きます。
// 対象がひんしの場合はフックを呼びません。
func (r *resolver) applyBinding(i int) {
	b, ok := r.effects.At(i)
	if !ok {
		return
	}
	e := b.Effect
	targetAlive := b.Target == nil || b.Target.IsAlive()
	if e.Expired() {
		if targetAlive {
			e.Strategy.OnDeletion(r, e, b.User, b.Target)
		}
		r.removeEffect(i)
		return
	}
	if targetAlive {
		e.Strategy.Execute(r, e, b.User, b.Target)
	}
}

// deathCascade はHPが0になった個体を、新たなひんしが出なくなるまで順に処理します。
func (r *resolver) deathCascade() {
	for {
		victim := r.nextFainted()
		if victim == nil {
			return
		}
		r.faint(victim)
	}
}

func (r *resolver) nextFainted() *domain.Combatant {
	scope := r.order
	if scope == nil {
		scope = r.allActives()
	}
	for _, c := range scope {
		if c.Health <= 0 && c.Status != core.StatusFainted {
			return c
		}
	}
	return nil
}

// faint は1体のひんしを処理します。
func (r *resolver) faint(c *domain.Combatant) {
	// 1. ひんしにする
	r.Say("fainted", map[string]any{"name": c.Label()})
	c.Status = core.StatusFainted
	c.LastMoveCrit = false

	// 2. ひんし時に発動する効果
	for i := 0; i < r.effects.Len(); i++ {
		b, ok := r.effects.At(i)
		if !ok || b.Effect.Trigger != core.TriggerOnDeath || b.User != c {
			continue
		}
		r.applyBinding(i)
		r.removeEffect(i)
	}

	// 3. 特性
	c.Ability.Strategy.OnDeath(r, c.Ability, c)

	// 4. c を対象とする効果はもう働かない
	r.removeEffects(func(b domain.Binding) bool { return b.Target == c })

	// 5. 経験値
	if c.Side == core.SideEnemy {
		r.awardExperience(c)
	}
}
