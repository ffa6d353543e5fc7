package domain

import "monbattle-ebiten/core"

// BattleContext は振る舞いのフックから見た戦闘です。
// Print などの通知は中断点であり、表示側が処理し終えるまで戻りません。
// 効果の追加・削除は必ずこのインターフェースを通してエンジンに依頼します。
type BattleContext interface {
	Print(msg string)
	// Say はメッセージIDとパラメータから文章を組み立てて Print します。
	Say(id string, params map[string]any)
	UpdateHealth()
	UpdateExp(levelFilled bool)
	PlaySound(s core.Sound)

	Rand() Rand
	Weather() core.Weather
	IsTrainerBattle() bool
	// Opponents / Allies は c から見た相手側・味方側の場に出ている個体です (ひんしを含む)。
	Opponents(c *Combatant) []*Combatant
	Allies(c *Combatant) []*Combatant

	// AddEffect は効果の追加を依頼します。重複や対象がひんしの場合は何もせず false を返します。
	AddEffect(kind core.EffectKind, user, target *Combatant) bool
	// StartWeather は天候を変え、turns ターン続く天候効果を登録します。turns が 0 なら無期限、負なら設定値のターン数です。
	StartWeather(w core.Weather, user *Combatant, turns int)
	// ClearWeather は天候を元に戻します。
	ClearWeather()
	SetForcedOutcome(o core.Outcome)

	// DealDamage はダメージ計算を行い target に適用します。与えたダメージを返します。
	DealDamage(m *Move, user, target *Combatant, targetCount int) int
	InflictStatus(target *Combatant, s core.Status) bool
	CureStatus(target *Combatant)
	ChangeStage(target *Combatant, s core.Stat, delta int) int
	// AttemptCatch は捕獲判定を行います。揺れの演出もここで行われます。
	AttemptCatch(target *Combatant, ball float64) bool
}

// MoveStrategy は技の振る舞いです。Execute は必須で、ほかのフックは任意です。
type MoveStrategy interface {
	OnUse(ctx BattleContext, m *Move, user, target *Combatant)
	Execute(ctx BattleContext, m *Move, user, target *Combatant, targetCount int)
	OnHit(ctx BattleContext, m *Move, user, target *Combatant)
	OnMiss(ctx BattleContext, m *Move, user, target *Combatant)
}

// MoveHooks は MoveStrategy の任意フックの空実装です。埋め込んで使います。
type MoveHooks struct{}

func (MoveHooks) OnUse(BattleContext, *Move, *Combatant, *Combatant) {}
func (MoveHooks) OnHit(BattleContext, *Move, *Combatant, *Combatant) {}
func (MoveHooks) OnMiss(BattleContext, *Move, *Combatant, *Combatant) {}

// AbilityStrategy は特性の振る舞いです。
type AbilityStrategy interface {
	OnSwitchIn(ctx BattleContext, a *Ability, owner *Combatant)
	OnTurnBegin(ctx BattleContext, a *Ability, owner *Combatant)
	OnTurnEnd(ctx BattleContext, a *Ability, owner *Combatant)
	OnSwitchOut(ctx BattleContext, a *Ability, owner *Combatant)
	OnDeath(ctx BattleContext, a *Ability, owner *Combatant)
	// OnMoveUse は技を使う直前に呼ばれ、威力などを書き換えられます。
	OnMoveUse(ctx BattleContext, a *Ability, owner *Combatant, m *Move)
	// AfterMoveUse は OnMoveUse で書き換えた値を戻すために呼ばれます。
	AfterMoveUse(ctx BattleContext, a *Ability, owner *Combatant, m *Move)
}

// AbilityHooks は AbilityStrategy の空実装です。
type AbilityHooks struct{}

func (AbilityHooks) OnSwitchIn(BattleContext, *Ability, *Combatant) {}
func (AbilityHooks) OnTurnBegin(BattleContext, *Ability, *Combatant) {}
func (AbilityHooks) OnTurnEnd(BattleContext, *Ability, *Combatant) {}
func (AbilityHooks) OnSwitchOut(BattleContext, *Ability, *Combatant) {}
func (AbilityHooks) OnDeath(BattleContext, *Ability, *Combatant) {}
func (AbilityHooks) OnMoveUse(BattleContext, *Ability, *Combatant, *Move) {}
func (AbilityHooks) AfterMoveUse(BattleContext, *Ability, *Combatant, *Move) {}

// EffectStrategy は効果の振る舞いです。
type EffectStrategy interface {
	OnCreation(ctx BattleContext, e *Effect, user, target *Combatant)
	Execute(ctx BattleContext, e *Effect, user, target *Combatant)
	OnDeletion(ctx BattleContext, e *Effect, user, target *Combatant)
	OnSwitchOut(ctx BattleContext, e *Effect, user, target *Combatant)
}

// EffectHooks は EffectStrategy の空実装です。
type EffectHooks struct{}

func (EffectHooks) OnCreation(BattleContext, *Effect, *Combatant, *Combatant) {}
func (EffectHooks) Execute(BattleContext, *Effect, *Combatant, *Combatant) {}
func (EffectHooks) OnDeletion(BattleContext, *Effect, *Combatant, *Combatant) {}
func (EffectHooks) OnSwitchOut(BattleContext, *Effect, *Combatant, *Combatant) {}
