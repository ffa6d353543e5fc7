package system

import (
	"iter"

	"monbattle-ebiten/domain"
)

// Drive は Step 列を最後まで進め、各 Step を p に渡します。
// p のメソッドが戻るまで次の Step は生成されません。
func Drive(seq iter.Seq[domain.Step], p domain.Presenter) {
	for step := range seq {
		Dispatch(step, p)
	}
}

// Dispatch は1つの Step を対応する Presenter のメソッドに振り分けます。
func Dispatch(step domain.Step, p domain.Presenter) {
	switch s := step.(type) {
	case domain.MessageStep:
		p.Print(s.Text)
	case domain.HealthUpdateStep:
		p.NotifyUpdateHealth()
	case domain.ExpUpdateStep:
		p.NotifyUpdateExp(s.LevelFilled)
	case domain.SoundStep:
		p.PlaySound(s.Sound)
	case domain.SwitchPerformedStep:
		p.NotifySwitchPerformed(s.Out, s.In)
	case domain.MoveTargetsUpdateStep:
		p.UpdateMoveTargets()
	case domain.SwitchRegisteredStep:
		p.RegisterSwitch(s.Out)
	case domain.TurnFinishedStep:
		p.NotifyTurnFinished(s.Outcome)
	}
}
