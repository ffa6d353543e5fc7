package domain

import "monbattle-ebiten/core"

// Step は戦闘エンジンが発行するすべての中断点を示すマーカーインターフェースです。
// 呼び出し側は Step を1つ受け取るごとに表示・演出を行い、終わったら次の Step を取り出します。
type Step interface {
	isStep()
}

// MessageStep は1行の実況メッセージの表示を要求します。
type MessageStep struct {
	Text string
}

func (MessageStep) isStep() {}

// HealthUpdateStep はHPバーの再描画を要求します。
type HealthUpdateStep struct{}

func (HealthUpdateStep) isStep() {}

// ExpUpdateStep は経験値バーの再描画を要求します。LevelFilled はバーが満タンになったかどうかです。
type ExpUpdateStep struct {
	LevelFilled bool
}

func (ExpUpdateStep) isStep() {}

// SoundStep は効果音カテゴリの再生を要求します。
type SoundStep struct {
	Sound core.Sound
}

func (SoundStep) isStep() {}

// SwitchPerformedStep は交代が完了したことを通知します。
type SwitchPerformedStep struct {
	Out *Combatant
	In  *Combatant
}

func (SwitchPerformedStep) isStep() {}

// MoveTargetsUpdateStep は対象選択の候補が変わったことを通知します。
type MoveTargetsUpdateStep struct{}

func (MoveTargetsUpdateStep) isStep() {}

// SwitchRegisteredStep は倒れた味方の交代先を選ぶ必要があることを通知します。
// 呼び出し側は Battle.SwitchImmediate で交代を実行します。
type SwitchRegisteredStep struct {
	Out *Combatant
}

func (SwitchRegisteredStep) isStep() {}

// TurnFinishedStep はターンの終了と、その時点の勝敗を通知します。
type TurnFinishedStep struct {
	Outcome core.Outcome
}

func (TurnFinishedStep) isStep() {}

// Presenter は表示側の協調者です。各メソッドは戻った時点で表示が終わったものとみなされます。
type Presenter interface {
	Print(msg string)
	NotifyUpdateHealth()
	NotifyUpdateExp(levelFilled bool)
	NotifyTurnFinished(outcome core.Outcome)
	NotifySwitchPerformed(out, in *Combatant)
	UpdateMoveTargets()
	RegisterSwitch(out *Combatant)
	PlaySound(s core.Sound)
}
