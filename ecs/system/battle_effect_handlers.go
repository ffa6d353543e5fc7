package system

import (
	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"
)

// --- ResidualDamageEffect ---

// ResidualDamageEffect はやけど・どくのように、ターン終了時に最大HPの一定割合を削る効果です。
// Escalating が true の場合、割合が経過ターン数に比例して大きくなります (もうどく)。
type ResidualDamageEffect struct {
	domain.EffectHooks
	Divisor    int
	Escalating bool
	Message    string
}

func (h ResidualDamageEffect) Execute(ctx domain.BattleContext, e *domain.Effect, _, target *domain.Combatant) {
	amount := target.MaxHealth() / h.Divisor
	if h.Escalating {
		amount = target.MaxHealth() * e.Turn / h.Divisor
	}
	target.Damage(max(1, amount))
	ctx.UpdateHealth()
	ctx.Say(h.Message, map[string]any{"name": target.Label()})
}

// --- SleepEffect ---

// SleepEffect は眠りの持続を管理します。眠るターン数は作成時に1〜3で決まり、期限切れで目を覚まします。
type SleepEffect struct{ domain.EffectHooks }

func (SleepEffect) OnCreation(ctx domain.BattleContext, e *domain.Effect, _, _ *domain.Combatant) {
	// ターン開始時に判定するため、作成したターンの分を1つ足す
	e.Duration = 2 + ctx.Rand().IntN(3)
}

func (SleepEffect) OnDeletion(ctx domain.BattleContext, _ *domain.Effect, _, target *domain.Combatant) {
	if target.Status != core.StatusSleeping {
		return
	}
	target.Status = core.StatusNone
	ctx.Say("woke_up", map[string]any{"name": target.Label()})
}

// --- LeechSeedEffect ---

// LeechSeedEffect は毎ターン対象の現在HPの1/8 (最低1) を吸い取り、植え付けた側を回復します。
type LeechSeedEffect struct{ domain.EffectHooks }

func (LeechSeedEffect) OnCreation(ctx domain.BattleContext, _ *domain.Effect, _, target *domain.Combatant) {
	ctx.Say("seeded", map[string]any{"name": target.Label()})
}

func (LeechSeedEffect) Execute(ctx domain.BattleContext, _ *domain.Effect, user, target *domain.Combatant) {
	sapped := target.Damage(max(1, target.Health/8))
	if user != nil && user.IsAlive() {
		user.Heal(sapped)
	}
	ctx.UpdateHealth()
	ctx.Say("sapped", map[string]any{"name": target.Label()})
}

// --- DestinyBondEffect ---

// DestinyBondEffect は使用者が倒されたとき、最後に攻撃してきた相手を道連れにします。
type DestinyBondEffect struct{ domain.EffectHooks }

func (DestinyBondEffect) OnCreation(ctx domain.BattleContext, _ *domain.Effect, user, _ *domain.Combatant) {
	ctx.Say("destiny_bond_set", map[string]any{"name": user.Label()})
}

func (DestinyBondEffect) Execute(ctx domain.BattleContext, _ *domain.Effect, user, _ *domain.Combatant) {
	attacker := user.LastHitBy
	if user.IsAlive() || attacker == nil || !attacker.IsAlive() {
		return
	}
	attacker.Damage(attacker.Health)
	ctx.UpdateHealth()
	ctx.Say("destiny_bond_taken", map[string]any{"name": user.Label()})
}

// --- WeatherEffect ---

// WeatherEffect は天候の継続を管理します。すなあらし・あられは毎ターン場の個体を削ります。
type WeatherEffect struct{ domain.EffectHooks }

func (WeatherEffect) Execute(ctx domain.BattleContext, _ *domain.Effect, user, _ *domain.Combatant) {
	w := ctx.Weather()
	if w != core.WeatherSandstorm && w != core.WeatherHail {
		return
	}
	var everyone []*domain.Combatant
	if user != nil {
		everyone = append(ctx.Allies(user), ctx.Opponents(user)...)
	}
	for _, c := range everyone {
		if !c.IsAlive() || weatherImmune(c, w) {
			continue
		}
		c.Damage(max(1, c.MaxHealth()/16))
		ctx.UpdateHealth()
		ctx.Say("weather_buffet", map[string]any{"name": c.Label(), "weather": weatherNoun(w)})
	}
}

func (WeatherEffect) OnDeletion(ctx domain.BattleContext, _ *domain.Effect, _, _ *domain.Combatant) {
	if w := ctx.Weather(); w != core.WeatherNone {
		ctx.Say("weather_end_"+string(w), nil)
	}
	ctx.ClearWeather()
}

func weatherImmune(c *domain.Combatant, w core.Weather) bool {
	switch w {
	case core.WeatherSandstorm:
		return c.HasType(core.TypeRock) || c.HasType(core.TypeGround) || c.HasType(core.TypeSteel)
	case core.WeatherHail:
		return c.HasType(core.TypeIce)
	}
	return true
}

func weatherNoun(w core.Weather) string {
	if w == core.WeatherHail {
		return "hail"
	}
	return "sandstorm"
}
