package system

import (
	"errors"

	"monbattle-ebiten/domain"
	"monbattle-ebiten/formula"
)

// BattleLogger は戦闘中の詳細な計算過程を記録するためのインターフェースです。
// 画面に出す実況文は Step として表示側に渡されるため、ここには含まれません。
type BattleLogger interface {
	LogHitCheck(attacker, target string, chance, roll float64, hit bool)
	LogCriticalHit(attacker string, chance float64)
	LogDamage(attacker, target, move string, base int, mods formula.Modifiers, damage int)
	LogCatchCheck(target string, rate, chance float64, shakes int, caught bool)
	LogExpAward(gainer string, amount, total, level int)
	LogPhase(turn int, from, to string)
	LogEffect(kind, action string, index int)
}

type nopLogger struct{}

func (nopLogger) LogHitCheck(string, string, float64, float64, bool) {}
func (nopLogger) LogCriticalHit(string, float64) {}
func (nopLogger) LogDamage(string, string, string, int, formula.Modifiers, int) {}
func (nopLogger) LogCatchCheck(string, float64, float64, int, bool) {}
func (nopLogger) LogExpAward(string, int, int, int) {}
func (nopLogger) LogPhase(int, string, string) {}
func (nopLogger) LogEffect(string, string, int) {}

// TargetingStrategy はAIの対象選択アルゴリズムをカプセル化するインターフェースです。
type TargetingStrategy interface {
	SelectTarget(candidates []*domain.Combatant, rand domain.Rand) *domain.Combatant
}

var (
	// ErrCommandMismatch はコマンド数が場に出ている個体数と一致しないことを示します。
	ErrCommandMismatch = errors.New("command count does not match active combatants")
	// ErrUnknownActor はコマンドの行動者が場に出ていないことを示します。
	ErrUnknownActor = errors.New("actor is not an active combatant")
	// ErrDuplicateCommand は同じ個体に2つ以上のコマンドが指定されたことを示します。
	ErrDuplicateCommand = errors.New("duplicate command for actor")
	// ErrInvalidCommand はコマンドの内容が不正であることを示します。
	ErrInvalidCommand = errors.New("invalid command")
	// ErrTurnInProgress は前のターンが終わる前に新しいターンが要求されたことを示します。
	ErrTurnInProgress = errors.New("turn already in progress")
	// ErrBattleOver は決着後に操作が要求されたことを示します。
	ErrBattleOver = errors.New("battle is already decided")
	// ErrInvalidSwitch は交代の指定が不正であることを示します。
	ErrInvalidSwitch = errors.New("invalid switch")
	// ErrInvalidRoster はパーティの構成が不正であることを示します。
	ErrInvalidRoster = errors.New("invalid roster")
	// ErrUnknownBehavior は振る舞いの識別子がレジストリに無いことを示します。
	ErrUnknownBehavior = errors.New("unknown behavior identifier")
)
