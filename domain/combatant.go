package domain

import (
	"monbattle-ebiten/core"
	"monbattle-ebiten/formula"
)

// Combatant は戦闘に参加する個体です。
type Combatant struct {
	Name    string
	Species *core.Species
	Level   int
	Gender  core.Gender
	Side    core.Side

	// Stats はレベルから導出された実数値です。Stats.HP が最大HPになります。
	Stats  core.BaseStats
	Health int
	Status core.Status
	Stages core.Stages
	Exp    int

	Ability *Ability
	Moves   []*Move

	// Opponents は場に出た時点で相手側に出ていた個体の記録です。経験値の分配に使います。
	Opponents []*Combatant
	// LastHitBy は最後に技を当ててきた相手です。
	LastHitBy *Combatant
	// LastMoveCrit は直前の攻撃が急所に当たったかどうかです。命中ごとにクリアされます。
	LastMoveCrit bool
}

// NewCombatant は種族とレベルから個体を生成します。HPは満タン、経験値はそのレベルの下限になります。
func NewCombatant(species *core.Species, level int, side core.Side) *Combatant {
	level = core.Clamp(level, core.MinLevel, core.MaxLevel)
	c := &Combatant{
		Name:    species.Name,
		Species: species,
		Level:   level,
		Gender:  core.GenderGenderless,
		Side:    side,
		Status:  core.StatusNone,
		Exp:     formula.ExpForLevel(species.Growth, level),
	}
	c.Stats = formula.DerivedStats(species.Base, level)
	c.Health = c.Stats.HP
	return c
}

// Label は実況に使う名前です。相手側の個体には "Foe " が付きます。
func (c *Combatant) Label() string {
	if c.Side == core.SideEnemy {
		return "Foe " + c.Name
	}
	return c.Name
}

func (c *Combatant) MaxHealth() int { return c.Stats.HP }

// IsAlive はHPが残っていて、ひんし状態でないかどうかを返します。
func (c *Combatant) IsAlive() bool {
	return c != nil && c.Health > 0 && c.Status != core.StatusFainted
}

// IsFainted はひんし状態として処理済みかどうかを返します。
func (c *Combatant) IsFainted() bool {
	return c.Status == core.StatusFainted
}

// SetHealth はHPを [0, 最大HP] に丸めて設定します。
func (c *Combatant) SetHealth(hp int) {
	c.Health = core.Clamp(hp, 0, c.Stats.HP)
}

// Damage はHPを減らし、実際に減った量を返します。
func (c *Combatant) Damage(amount int) int {
	before := c.Health
	c.SetHealth(c.Health - max(amount, 0))
	return before - c.Health
}

// Heal はHPを回復し、実際に回復した量を返します。
func (c *Combatant) Heal(amount int) int {
	before := c.Health
	c.SetHealth(c.Health + max(amount, 0))
	return c.Health - before
}

// ModifyStage はランクを delta だけ変化させ、実際に変化した量を返します。
func (c *Combatant) ModifyStage(s core.Stat, delta int) int {
	before := c.Stages[s]
	c.Stages[s] = core.Clamp(before+delta, core.MinStage, core.MaxStage)
	return c.Stages[s] - before
}

// ResetStages はすべてのランク補正を0に戻します。交代時に呼ばれます。
func (c *Combatant) ResetStages() {
	c.Stages = core.Stages{}
}

// EffectiveStat はランク補正込みの能力値です。
func (c *Combatant) EffectiveStat(s core.Stat) int {
	return formula.EffectiveStat(c.Stats.Get(s), c.Stages[s])
}

// EffectiveSpeed は行動順の決定に使う素早さです。まひ状態では半減します。
func (c *Combatant) EffectiveSpeed() float64 {
	speed := float64(c.EffectiveStat(core.StatSpeed))
	if c.Status == core.StatusParalyzed {
		speed *= 0.5
	}
	return speed
}

// Types は第1・第2タイプです。
func (c *Combatant) Types() [2]core.Type {
	return c.Species.Types()
}

// HasType は t がいずれかのタイプと一致するかどうかを返します。
func (c *Combatant) HasType(t core.Type) bool {
	types := c.Types()
	return t != core.TypeNone && (types[0] == t || types[1] == t)
}

// AddOpponent は経験値分配用の記録に相手を追加します。重複は無視されます。
func (c *Combatant) AddOpponent(o *Combatant) {
	for _, existing := range c.Opponents {
		if existing == o {
			return
		}
	}
	c.Opponents = append(c.Opponents, o)
}

// Recalculate はレベルに合わせて実数値を再計算します。最大HPの増加分だけ現在HPも増えます。
func (c *Combatant) Recalculate() {
	oldMax := c.Stats.HP
	c.Stats = formula.DerivedStats(c.Species.Base, c.Level)
	if c.Status != core.StatusFainted {
		c.SetHealth(c.Health + c.Stats.HP - oldMax)
	}
}

// KnowsMove は同じテンプレートの技を既に覚えているかどうかを返します。
func (c *Combatant) KnowsMove(id string) bool {
	for _, m := range c.Moves {
		if m.Template.ID == id {
			return true
		}
	}
	return false
}
