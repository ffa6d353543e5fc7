package system

import (
	"fmt"

	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"
)

// EffectDefinition は効果の種類ごとの振る舞いと発動条件です。
type EffectDefinition struct {
	Strategy domain.EffectStrategy
	Trigger  core.Trigger
	// Duration は持続ターン数です。0 は無期限です。
	Duration        int
	EndsOnSwitchOut bool
}

// StrategyRegistry は振る舞いの識別子から実装への閉じた対応表です。
// データ読み込み時に解決するため、未知の識別子はその時点でエラーになります。
type StrategyRegistry struct {
	moves     map[core.MoveBehavior]domain.MoveStrategy
	abilities map[core.AbilityBehavior]domain.AbilityStrategy
	effects   map[core.EffectKind]EffectDefinition
}

// NewStrategyRegistry は組み込みの振る舞いをすべて登録したレジストリを返します。
func NewStrategyRegistry() *StrategyRegistry {
	return &StrategyRegistry{
		moves: map[core.MoveBehavior]domain.MoveStrategy{
			core.MoveDamage:      DamageMove{},
			core.MoveDrain:       DrainMove{},
			core.MoveRecoil:      RecoilMove{},
			core.MoveStatChange:  StatChangeMove{},
			core.MoveAilment:     AilmentMove{},
			core.MoveLeechSeed:   LeechSeedMove{},
			core.MoveHeal:        HealMove{},
			core.MoveDestinyBond: DestinyBondMove{},
			core.MoveWeather:     WeatherMove{},
			core.MoveCapture:     CaptureMove{},
			core.MoveEscape:      EscapeMove{},
		},
		abilities: map[core.AbilityBehavior]domain.AbilityStrategy{
			core.AbilityNone:          domain.AbilityHooks{},
			core.AbilityIntimidate:    IntimidateAbility{},
			core.AbilityPinchBoost:    PinchBoostAbility{},
			core.AbilitySpeedBoost:    SpeedBoostAbility{},
			core.AbilityNaturalCure:   NaturalCureAbility{},
			core.AbilityWeatherSetter: WeatherSetterAbility{},
			core.AbilityAftermath:     AftermathAbility{},
			core.AbilityShedSkin:      ShedSkinAbility{},
		},
		effects: map[core.EffectKind]EffectDefinition{
			core.EffectBurn: {
				Strategy:        ResidualDamageEffect{Divisor: 16, Message: "hurt_burn"},
				Trigger:         core.TriggerEndOfTurn,
				EndsOnSwitchOut: true,
			},
			core.EffectPoison: {
				Strategy:        ResidualDamageEffect{Divisor: 8, Message: "hurt_poison"},
				Trigger:         core.TriggerEndOfTurn,
				EndsOnSwitchOut: true,
			},
			core.EffectToxic: {
				Strategy:        ResidualDamageEffect{Divisor: 16, Escalating: true, Message: "hurt_poison"},
				Trigger:         core.TriggerEndOfTurn,
				EndsOnSwitchOut: true,
			},
			core.EffectSleep: {
				Strategy:        SleepEffect{},
				Trigger:         core.TriggerStartOfTurn,
				EndsOnSwitchOut: true,
			},
			core.EffectLeechSeed: {
				Strategy:        LeechSeedEffect{},
				Trigger:         core.TriggerEndOfTurn,
				EndsOnSwitchOut: true,
			},
			core.EffectDestinyBond: {
				Strategy:        DestinyBondEffect{},
				Trigger:         core.TriggerOnDeath,
				Duration:        2,
				EndsOnSwitchOut: true,
			},
			core.EffectWeather: {
				Strategy: WeatherEffect{},
				Trigger:  core.TriggerEndOfTurn,
			},
		},
	}
}

// Move は技の振る舞いを返します。
func (r *StrategyRegistry) Move(id core.MoveBehavior) (domain.MoveStrategy, error) {
	s, ok := r.moves[id]
	if !ok {
		return nil, fmt.Errorf("%w: move behavior %q", ErrUnknownBehavior, id)
	}
	return s, nil
}

// Ability は特性の振る舞いを返します。
func (r *StrategyRegistry) Ability(id core.AbilityBehavior) (domain.AbilityStrategy, error) {
	s, ok := r.abilities[id]
	if !ok {
		return nil, fmt.Errorf("%w: ability behavior %q", ErrUnknownBehavior, id)
	}
	return s, nil
}

// Effect は効果の定義を返します。
func (r *StrategyRegistry) Effect(kind core.EffectKind) (EffectDefinition, bool) {
	d, ok := r.effects[kind]
	return d, ok
}

// RegisterMove は技の振る舞いを追加・上書きします。
func (r *StrategyRegistry) RegisterMove(id core.MoveBehavior, s domain.MoveStrategy) {
	r.moves[id] = s
}

// RegisterEffect は効果の定義を追加・上書きします。
func (r *StrategyRegistry) RegisterEffect(kind core.EffectKind, d EffectDefinition) {
	r.effects[kind] = d
}
