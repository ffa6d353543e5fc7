// Package formula は戦闘計算の純粋関数を集めたものです。状態は持ちません。
package formula

import (
	"math"

	"monbattle-ebiten/core"
)

// stageRatio はランク補正の分子・分母を返します。base は 2 (能力値) か 3 (命中率) です。
func stageRatio(stage, base int) (num, den int) {
	stage = core.Clamp(stage, core.MinStage, core.MaxStage)
	return base + max(0, stage), base + max(0, -stage)
}

// EffectiveStat はランク補正を反映した能力値を返します。結果は [1, 999] に収まります。
func EffectiveStat(base, stage int) int {
	num, den := stageRatio(stage, 2)
	return core.Clamp(base*num/den, 1, core.MaxStat)
}

// AccuracyMultiplier は命中ランクと回避ランクの差から命中倍率を求めます。
func AccuracyMultiplier(accuracyStage, evasionStage int) float64 {
	num, den := stageRatio(core.Clamp(accuracyStage-evasionStage, core.MinStage, core.MaxStage), 3)
	return float64(num) / float64(den)
}

// Hits は命中判定です。accuracy が 0 の技は必ず命中します。
func Hits(accuracy int, multiplier, roll float64) bool {
	if accuracy == 0 {
		return true
	}
	return float64(accuracy)/100*multiplier >= roll
}

// CritChance は急所ランクに対応する急所率を返します。
func CritChance(stage int) float64 {
	switch {
	case stage <= 0:
		return 1.0 / 24
	case stage == 1:
		return 1.0 / 8
	case stage == 2:
		return 1.0 / 2
	default:
		return 1
	}
}

// DerivedStats はレベルと種族値から実数値を求めます。HP は最大HPです。
func DerivedStats(base core.BaseStats, level int) core.BaseStats {
	level = core.Clamp(level, core.MinLevel, core.MaxLevel)
	calc := func(b int) int { return int(math.Floor(float64(2*b*level) / 100)) }
	return core.BaseStats{
		HP:        calc(base.HP) + level + 10,
		Attack:    calc(base.Attack) + 5,
		Defense:   calc(base.Defense) + 5,
		SpAttack:  calc(base.SpAttack) + 5,
		SpDefense: calc(base.SpDefense) + 5,
		Speed:     calc(base.Speed) + 5,
	}
}
