package system

import (
	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"
)

func announce(ctx domain.BattleContext, a *domain.Ability, owner *domain.Combatant) {
	ctx.Say("ability_announce", map[string]any{"name": owner.Label(), "ability": a.Template.Name})
}

// --- IntimidateAbility ---

// IntimidateAbility は場に出たとき、相手全員の攻撃を1段階下げます。
type IntimidateAbility struct{ domain.AbilityHooks }

func (IntimidateAbility) OnSwitchIn(ctx domain.BattleContext, a *domain.Ability, owner *domain.Combatant) {
	announce(ctx, a, owner)
	for _, o := range ctx.Opponents(owner) {
		if o.IsAlive() {
			ctx.ChangeStage(o, core.StatAttack, -1)
		}
	}
}

// --- PinchBoostAbility ---

// PinchBoostAbility はHPが1/3以下のとき、特性のタイプと同じ技の威力を1.5倍にします。
type PinchBoostAbility struct{ domain.AbilityHooks }

func (PinchBoostAbility) OnMoveUse(_ domain.BattleContext, a *domain.Ability, owner *domain.Combatant, m *domain.Move) {
	if m.Template.Type != a.Template.Type || owner.Health*3 > owner.MaxHealth() {
		return
	}
	m.Power = m.Template.Power * 3 / 2
}

func (PinchBoostAbility) AfterMoveUse(_ domain.BattleContext, _ *domain.Ability, _ *domain.Combatant, m *domain.Move) {
	m.ResetPower()
}

// --- SpeedBoostAbility ---

// SpeedBoostAbility は場に出た次のターンから、毎ターン終了時に素早さを1段階上げます。
type SpeedBoostAbility struct{ domain.AbilityHooks }

func (SpeedBoostAbility) OnTurnEnd(ctx domain.BattleContext, a *domain.Ability, owner *domain.Combatant) {
	if a.Turn == 0 || owner.Stages[core.StatSpeed] >= core.MaxStage {
		return
	}
	announce(ctx, a, owner)
	ctx.ChangeStage(owner, core.StatSpeed, 1)
}

// --- NaturalCureAbility ---

// NaturalCureAbility は引っ込めたときに状態異常を治します。
type NaturalCureAbility struct{ domain.AbilityHooks }

func (NaturalCureAbility) OnSwitchOut(ctx domain.BattleContext, a *domain.Ability, owner *domain.Combatant) {
	if owner.Status.IsAilment() {
		announce(ctx, a, owner)
		ctx.CureStatus(owner)
	}
}

// --- WeatherSetterAbility ---

// WeatherSetterAbility は場に出たとき、特性の天候を無期限で発生させます。
type WeatherSetterAbility struct{ domain.AbilityHooks }

func (WeatherSetterAbility) OnSwitchIn(ctx domain.BattleContext, a *domain.Ability, owner *domain.Combatant) {
	if ctx.Weather() == a.Template.Weather {
		return
	}
	announce(ctx, a, owner)
	ctx.StartWeather(a.Template.Weather, owner, 0)
}

// --- AftermathAbility ---

// AftermathAbility は倒されたとき、倒した相手に最大HPの1/4のダメージを与えます。
type AftermathAbility struct{ domain.AbilityHooks }

func (AftermathAbility) OnDeath(ctx domain.BattleContext, a *domain.Ability, owner *domain.Combatant) {
	attacker := owner.LastHitBy
	if attacker == nil || !attacker.IsAlive() {
		return
	}
	announce(ctx, a, owner)
	attacker.Damage(max(1, attacker.MaxHealth()/4))
	ctx.UpdateHealth()
	ctx.Say("aftermath", map[string]any{"name": attacker.Label(), "owner": owner.Label()})
}

// --- ShedSkinAbility ---

// ShedSkinAbility はターン終了時に1/3の確率で状態異常を治します。
type ShedSkinAbility struct{ domain.AbilityHooks }

func (ShedSkinAbility) OnTurnEnd(ctx domain.BattleContext, a *domain.Ability, owner *domain.Combatant) {
	if !owner.Status.IsAilment() || ctx.Rand().IntN(3) != 0 {
		return
	}
	announce(ctx, a, owner)
	ctx.CureStatus(owner)
}
