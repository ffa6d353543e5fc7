package system

import (
	"monbattle-ebiten/core"
	"monbattle-ebiten/data"
	"monbattle-ebiten/domain"
	"monbattle-ebiten/formula"
)

// DamageInput はダメージ計算の入力です。
type DamageInput struct {
	Move        *domain.Move
	User        *domain.Combatant
	Target      *domain.Combatant
	TargetCount int
	Weather     core.Weather
}

// DamageResult はダメージ計算の結果です。
type DamageResult struct {
	Base          int
	Damage        int
	Critical      bool
	Effectiveness float64
	Modifiers     formula.Modifiers
}

// DamageCalculator はダメージ計算に関連するロジックを担当します。
type DamageCalculator struct {
	balance data.BalanceConfig
	rand    domain.Rand
	logger  BattleLogger
}

// NewDamageCalculator は新しい DamageCalculator のインスタンスを生成します。
func NewDamageCalculator(balance data.BalanceConfig, r domain.Rand, logger BattleLogger) *DamageCalculator {
	return &DamageCalculator{balance: balance, rand: r, logger: logger}
}

// Calculate は技の威力と双方の能力値からダメージを計算します。結果は対象の残りHPを超えません。
func (dc *DamageCalculator) Calculate(in DamageInput) DamageResult {
	tmpl := in.Move.Template

	// 1. 急所判定
	critChance := formula.CritChance(in.User.Stages[core.StatCrit])
	critical := dc.rand.Float64() < critChance
	if critical {
		dc.logger.LogCriticalHit(in.User.Name, critChance)
	}

	// 2. 攻撃・防御の実効値。急所では不利なランク補正を無視する
	atkStat, defStat := core.StatAttack, core.StatDefense
	if tmpl.Category == core.CategorySpecial {
		atkStat, defStat = core.StatSpAttack, core.StatSpDefense
	}
	atkStage, defStage := in.User.Stages[atkStat], in.Target.Stages[defStat]
	if critical {
		atkStage = max(0, atkStage)
		defStage = min(0, defStage)
	}
	attack := formula.EffectiveStat(in.User.Stats.Get(atkStat), atkStage)
	defense := formula.EffectiveStat(in.Target.Stats.Get(defStat), defStage)
	base := formula.BaseDamage(in.User.Level, in.Move.Power, attack, defense)

	// 3. 補正
	mods := formula.NewModifiers()
	// 全体技のうち Adjacent のみ、2体以上に当たったときに威力が下がる
	if tmpl.Target == core.TargetAdjacent && in.TargetCount > 1 {
		mods.MultiTarget = dc.balance.MultiTargetFactor
	}
	mods.Weather = formula.WeatherFactor(in.Weather, tmpl.Type, dc.balance.WeatherBoost, dc.balance.WeatherWeaken)
	if critical {
		mods.Critical = dc.balance.CritMultiplier
	}
	mods.Random = dc.balance.RandomMin + dc.rand.Float64()*(1-dc.balance.RandomMin)
	if in.User.HasType(tmpl.Type) {
		mods.STAB = dc.balance.STABMultiplier
	}
	mods.Effectiveness = formula.Effectiveness(tmpl.Type, in.Target.Types())
	if tmpl.Category == core.CategoryPhysical && in.User.Status == core.StatusBurned {
		mods.Burn = dc.balance.BurnFactor
	}

	// 4. 最終ダメージ
	damage := formula.FinalDamage(base, mods, in.Target.Health)
	dc.logger.LogDamage(in.User.Name, in.Target.Name, tmpl.Name, base, mods, damage)
	return DamageResult{
		Base:          base,
		Damage:        damage,
		Critical:      critical,
		Effectiveness: mods.Effectiveness,
		Modifiers:     mods,
	}
}
