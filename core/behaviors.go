package core

// MoveBehavior は技テンプレートに紐づく振る舞いの識別子です。
type MoveBehavior string

// AbilityBehavior は特性テンプレートに紐づく振る舞いの識別子です。
type AbilityBehavior string

// EffectKind は効果(状態異常や場の状態)の識別子です。
type EffectKind string

const (
	MoveDamage      MoveBehavior = "damage"
	MoveDrain       MoveBehavior = "drain"
	MoveRecoil      MoveBehavior = "recoil"
	MoveStatChange  MoveBehavior = "stat_change"
	MoveAilment     MoveBehavior = "ailment"
	MoveLeechSeed   MoveBehavior = "leech_seed"
	MoveHeal        MoveBehavior = "heal"
	MoveDestinyBond MoveBehavior = "destiny_bond"
	MoveWeather     MoveBehavior = "weather"
	MoveCapture     MoveBehavior = "capture"
	MoveEscape      MoveBehavior = "escape"
)

// MoveBehaviors は技の振る舞いの閉じた集合です。
var MoveBehaviors = []MoveBehavior{
	MoveDamage, MoveDrain, MoveRecoil, MoveStatChange, MoveAilment, MoveLeechSeed,
	MoveHeal, MoveDestinyBond, MoveWeather, MoveCapture, MoveEscape,
}

const (
	AbilityNone          AbilityBehavior = "none"
	AbilityIntimidate    AbilityBehavior = "intimidate"
	AbilityPinchBoost    AbilityBehavior = "pinch_boost"
	AbilitySpeedBoost    AbilityBehavior = "speed_boost"
	AbilityNaturalCure   AbilityBehavior = "natural_cure"
	AbilityWeatherSetter AbilityBehavior = "weather_setter"
	AbilityAftermath     AbilityBehavior = "aftermath"
	AbilityShedSkin      AbilityBehavior = "shed_skin"
)

// AbilityBehaviors は特性の振る舞いの閉じた集合です。
var AbilityBehaviors = []AbilityBehavior{
	AbilityNone, AbilityIntimidate, AbilityPinchBoost, AbilitySpeedBoost,
	AbilityNaturalCure, AbilityWeatherSetter, AbilityAftermath, AbilityShedSkin,
}

const (
	EffectBurn        EffectKind = "burn"
	EffectPoison      EffectKind = "poison"
	EffectToxic       EffectKind = "toxic"
	EffectSleep       EffectKind = "sleep"
	EffectLeechSeed   EffectKind = "leech_seed"
	EffectDestinyBond EffectKind = "destiny_bond"
	EffectWeather     EffectKind = "weather"
)

// EffectKinds は効果の閉じた集合です。
var EffectKinds = []EffectKind{
	EffectBurn, EffectPoison, EffectToxic, EffectSleep,
	EffectLeechSeed, EffectDestinyBond, EffectWeather,
}

func (b MoveBehavior) Valid() bool { return contains(MoveBehaviors, b) }
func (b AbilityBehavior) Valid() bool { return contains(AbilityBehaviors, b) }
func (k EffectKind) Valid() bool { return contains(EffectKinds, k) }

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// StatusEffect は継続ダメージなどを伴う状態異常に対応する効果を返します。
// 麻痺・凍結は効果を持たないため ok=false になります。
func StatusEffect(s Status) (EffectKind, bool) {
	switch s {
	case StatusBurned:
		return EffectBurn, true
	case StatusPoisoned:
		return EffectPoison, true
	case StatusToxic:
		return EffectToxic, true
	case StatusSleeping:
		return EffectSleep, true
	}
	return "", false
}
