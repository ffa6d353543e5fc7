package domain

import "monbattle-ebiten/core"

// Move は個体が覚えている技です。
type Move struct {
	Template *core.MoveTemplate
	// Uses は残り使用回数です。Template.MaxUses が 0 の場合は使われません。
	Uses int
	// Power は現在の威力です。特性によって一時的に書き換えられることがあります。
	Power    int
	Strategy MoveStrategy
}

// NewMove は使用回数が満タンの技を生成します。
func NewMove(t *core.MoveTemplate, s MoveStrategy) *Move {
	return &Move{Template: t, Uses: t.MaxUses, Power: t.Power, Strategy: s}
}

// Unlimited は回数無制限の技かどうかを返します。
func (m *Move) Unlimited() bool { return m.Template.MaxUses == 0 }

// Usable は残り回数があるかどうかを返します。
func (m *Move) Usable() bool { return m.Unlimited() || m.Uses > 0 }

// Spend は使用回数を1減らします。
func (m *Move) Spend() {
	if m.Unlimited() {
		return
	}
	m.Uses = core.Clamp(m.Uses-1, 0, m.Template.MaxUses)
}

// Refill は使用回数を最大まで戻します。
func (m *Move) Refill() {
	m.Uses = m.Template.MaxUses
}

// ResetPower は威力をテンプレートの値に戻します。
func (m *Move) ResetPower() {
	m.Power = m.Template.Power
}

// Ability は個体の特性です。
type Ability struct {
	Template *core.AbilityTemplate
	Strategy AbilityStrategy
	// Turn はターン終了ごとに1増えるカウンタです。場に出るたびに0に戻ります。
	Turn int
}

// NewAbility は特性を生成します。
func NewAbility(t *core.AbilityTemplate, s AbilityStrategy) *Ability {
	return &Ability{Template: t, Strategy: s}
}

// Effect は効果のインスタンスです。
type Effect struct {
	Kind     core.EffectKind
	Strategy EffectStrategy
	// Turn は1から始まり、ターン終了の効果処理のあとに1増えます。
	Turn int
	// Duration が 0 の効果は無期限です。
	Duration        int
	Trigger         core.Trigger
	EndsOnSwitchOut bool

	expired bool
}

// Expire は次の適用時に効果を終了させるよう要求します。
func (e *Effect) Expire() { e.expired = true }

// Expired は効果が終了すべきかどうかを返します。継続ターン数の比較には加算前のカウンタを使います。
func (e *Effect) Expired() bool {
	return e.expired || (e.Duration > 0 && e.Turn > e.Duration)
}

// Binding は効果と、その使用者・対象の組です。Target が nil の効果は場全体に作用します。
type Binding struct {
	Effect *Effect
	User   *Combatant
	Target *Combatant
}

// Command は1体分の行動指示です。Move と SwitchTo はどちらか一方だけを指定します。
// どちらも nil の場合は「何もしない」を表します。
type Command struct {
	Actor    *Combatant
	Move     *Move
	Target   *Combatant
	SwitchTo *Combatant
}

// Rand は戦闘で使う乱数源です。*math/rand/v2.Rand が満たします。
type Rand interface {
	Float64() float64
	IntN(n int) int
}
