package formula

import (
	"math"

	"monbattle-ebiten/core"
)

// CatchTrials はボールの揺れ判定の回数です。すべて成功すると捕獲になります。
const CatchTrials = 4

// StatusCatchBonus は状態異常による捕獲率の補正です。
func StatusCatchBonus(s core.Status) float64 {
	switch s {
	case core.StatusSleeping, core.StatusFrozen:
		return 2.0
	case core.StatusParalyzed, core.StatusPoisoned, core.StatusToxic, core.StatusBurned:
		return 1.5
	}
	return 1.0
}

// CatchRate は捕獲率を求めます。入力は有効な範囲に丸められます。
func CatchRate(maxHealth, health, baseRate int, ball float64, status core.Status) float64 {
	maxHealth = max(maxHealth, 1)
	health = core.Clamp(health, 0, maxHealth)
	baseRate = core.Clamp(baseRate, 1, 255)
	ball = math.Max(ball, 0)
	return float64(3*maxHealth-2*health) * float64(baseRate) * ball / float64(3*maxHealth) * StatusCatchBonus(status)
}

// ShakeChance は1回の揺れ判定が成功する確率 (パーセント) です。
func ShakeChance(rate float64) float64 {
	rate = core.Clamp(rate, 1, 255)
	return 6553600 / (math.Pow(255/rate, 0.1875) * 65536)
}
