package system

import (
	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"
	"monbattle-ebiten/formula"
)

// HitCalculator は命中判定と捕獲判定に関連するロジックを担当します。
type HitCalculator struct {
	rand   domain.Rand
	logger BattleLogger
}

// NewHitCalculator は新しい HitCalculator のインスタンスを生成します。
func NewHitCalculator(r domain.Rand, logger BattleLogger) *HitCalculator {
	return &HitCalculator{rand: r, logger: logger}
}

// Check は技が target に命中するかを判定します。
// 範囲が Self の技と命中率0 (必中) の技は乱数を使わずに命中します。
func (hc *HitCalculator) Check(m *domain.Move, user, target *domain.Combatant) bool {
	tmpl := m.Template
	if tmpl.Accuracy == 0 || tmpl.Target == core.TargetSelf {
		return true
	}
	// 命中 = 技の命中率 * 命中・回避ランク補正
	multiplier := formula.AccuracyMultiplier(user.Stages[core.StatAccuracy], target.Stages[core.StatEvasion])
	roll := hc.rand.Float64()
	hit := formula.Hits(tmpl.Accuracy, multiplier, roll)
	hc.logger.LogHitCheck(user.Name, target.Name, float64(tmpl.Accuracy)/100*multiplier, roll, hit)
	return hit
}

// CatchResult は捕獲判定の結果です。
type CatchResult struct {
	Rate   float64
	Chance float64
	// Shakes はボールが揺れた回数です。CatchTrials 回揺れると捕獲成功です。
	Shakes int
	Caught bool
}

// CatchCalculator は捕獲判定を担当します。
type CatchCalculator struct {
	rand   domain.Rand
	logger BattleLogger
}

// NewCatchCalculator は新しい CatchCalculator のインスタンスを生成します。
func NewCatchCalculator(r domain.Rand, logger BattleLogger) *CatchCalculator {
	return &CatchCalculator{rand: r, logger: logger}
}

// Attempt は捕獲を試みます。揺れの判定は最初に失敗した時点で打ち切ります。
func (cc *CatchCalculator) Attempt(target *domain.Combatant, ball float64) CatchResult {
	rate := formula.CatchRate(target.MaxHealth(), target.Health, target.Species.CatchRate, ball, target.Status)
	res := CatchResult{Rate: rate, Chance: formula.ShakeChance(rate)}
	for i := 0; i < formula.CatchTrials; i++ {
		if cc.rand.Float64()*100 >= res.Chance {
			break
		}
		res.Shakes++
	}
	res.Caught = res.Shakes == formula.CatchTrials
	cc.logger.LogCatchCheck(target.Name, res.Rate, res.Chance, res.Shakes, res.Caught)
	return res
}
