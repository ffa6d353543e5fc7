package formula

import (
	"math"

	"monbattle-ebiten/core"
)

// ExpForLevel は growth グループでレベル n に到達するのに必要な累積経験値です。レベル1は0です。
func ExpForLevel(group core.GrowthGroup, n int) int {
	if n <= core.MinLevel {
		return 0
	}
	n = min(n, core.MaxLevel)
	c := n * n * n
	var exp int
	switch group {
	case core.GrowthFast:
		exp = 4 * c / 5
	case core.GrowthMediumSlow:
		exp = 6*c/5 - 15*n*n + 100*n - 140
	case core.GrowthSlow:
		exp = 5 * c / 4
	case core.GrowthErratic:
		switch {
		case n < 50:
			exp = c * (100 - n) / 50
		case n < 68:
			exp = c * (150 - n) / 100
		case n < 98:
			exp = c * ((1911 - 10*n) / 3) / 500
		default:
			exp = c * (160 - n) / 100
		}
	case core.GrowthFluctuating:
		switch {
		case n < 15:
			exp = c * ((n+1)/3 + 24) / 50
		case n < 36:
			exp = c * (n + 14) / 50
		default:
			exp = c * (n/2 + 32) / 50
		}
	default: // MediumFast
		exp = c
	}
	return max(exp, 0)
}

// LevelForExp は累積経験値 exp で到達している最大のレベルです。レベル1から順に探索します。
func LevelForExp(group core.GrowthGroup, exp int) int {
	level := core.MinLevel
	for level < core.MaxLevel && ExpForLevel(group, level+1) <= exp {
		level++
	}
	return level
}

// KillExp は倒した相手1体から1体の参加者が得る経験値です。
// trainerFactor はトレーナー戦なら 1.5、野生なら 1.0 を渡します。
func KillExp(trainerFactor float64, baseExp, victimLevel, candidates, gainerLevel int) int {
	candidates = max(candidates, 1)
	v := float64(victimLevel)
	num := trainerFactor * float64(baseExp) * v * math.Pow(2*v+10, 2.5)
	den := 5 * float64(candidates) * math.Pow(v+float64(gainerLevel)+10, 2.5)
	return int(math.Floor(num/den + 1))
}
