package data

import (
	"monbattle-ebiten/formula"

	"github.com/rs/zerolog"
)

// BattleLoggerImpl は戦闘中の計算過程をデバッグレベルで出力します。
// 画面に表示する実況文は Step として表示側に渡され、ここでは扱いません。
type BattleLoggerImpl struct {
	log zerolog.Logger
}

// NewBattleLogger は battle_id をコンテキストに持つ BattleLoggerImpl を生成します。
func NewBattleLogger(logger zerolog.Logger, battleID string) *BattleLoggerImpl {
	return &BattleLoggerImpl{log: logger.With().Str("battle_id", battleID).Logger()}
}

// LogHitCheck は命中判定のロールと計算過程をログに出力します。
func (l *BattleLoggerImpl) LogHitCheck(attacker, target string, chance, roll float64, hit bool) {
	l.log.Debug().Str("attacker", attacker).Str("target", target).
		Float64("chance", chance).Float64("roll", roll).Bool("hit", hit).Msg("命中判定")
}

// LogCriticalHit はクリティカルヒットの発生と確率をログに出力します。
func (l *BattleLoggerImpl) LogCriticalHit(attacker string, chance float64) {
	l.log.Debug().Str("attacker", attacker).Float64("chance", chance).Msg("急所に命中")
}

// LogDamage はダメージ計算の内訳をログに出力します。
func (l *BattleLoggerImpl) LogDamage(attacker, target, move string, base int, mods formula.Modifiers, damage int) {
	l.log.Debug().Str("attacker", attacker).Str("target", target).Str("move", move).
		Int("base", base).
		Float64("multi_target", mods.MultiTarget).
		Float64("weather", mods.Weather).
		Float64("critical", mods.Critical).
		Float64("random", mods.Random).
		Float64("stab", mods.STAB).
		Float64("effectiveness", mods.Effectiveness).
		Float64("burn", mods.Burn).
		Int("damage", damage).
		Msg("ダメージ計算")
}

// LogCatchCheck は捕獲判定の結果をログに出力します。
func (l *BattleLoggerImpl) LogCatchCheck(target string, rate, chance float64, shakes int, caught bool) {
	l.log.Debug().Str("target", target).Float64("rate", rate).Float64("chance", chance).
		Int("shakes", shakes).Bool("caught", caught).Msg("捕獲判定")
}

// LogExpAward は経験値の獲得をログに出力します。
func (l *BattleLoggerImpl) LogExpAward(gainer string, amount, total, level int) {
	l.log.Info().Str("gainer", gainer).Int("amount", amount).Int("total", total).Int("level", level).Msg("経験値獲得")
}

// LogPhase はターンのフェーズ遷移をログに出力します。
func (l *BattleLoggerImpl) LogPhase(turn int, from, to string) {
	l.log.Debug().Int("turn", turn).Str("from", from).Str("to", to).Msg("フェーズ遷移")
}

// LogEffect は効果の追加・削除をログに出力します。
func (l *BattleLoggerImpl) LogEffect(kind, action string, index int) {
	l.log.Debug().Str("kind", kind).Str("action", action).Int("index", index).Msg("効果")
}
