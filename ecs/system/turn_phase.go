package system

import (
	"context"

	"github.com/looplab/fsm"
)

// ターンのフェーズ。idle から始まり、1ターンで turn_close まで進んで idle に戻ります。
// 勝敗が決まった時点で finished に遷移し、以降のターンは受け付けません。
const (
	phaseIdle               = "idle"
	phaseWeather            = "weather"
	phaseVictoryCheck       = "victory_check"
	phaseOrdering           = "ordering"
	phaseTurnBeginAbilities = "turn_begin_abilities"
	phaseTurnBeginEffects   = "turn_begin_effects"
	phaseActions            = "actions"
	phaseTurnEndEffects     = "turn_end_effects"
	phaseTurnEndAbilities   = "turn_end_abilities"
	phaseTurnClose          = "turn_close"
	phaseFinished           = "finished"

	eventBegin  = "begin"
	eventNext   = "next"
	eventDecide = "decide"
)

var phaseSequence = []string{
	phaseWeather,
	phaseVictoryCheck,
	phaseOrdering,
	phaseTurnBeginAbilities,
	phaseTurnBeginEffects,
	phaseActions,
	phaseTurnEndEffects,
	phaseTurnEndAbilities,
	phaseTurnClose,
	phaseIdle,
}

// newTurnPhase はターンのフェーズ遷移を管理するステートマシンを作成します。
func newTurnPhase(b *Battle) *fsm.FSM {
	events := fsm.Events{
		{Name: eventBegin, Src: []string{phaseIdle}, Dst: phaseWeather},
		{Name: eventDecide, Src: phaseSequence[:len(phaseSequence)-1], Dst: phaseFinished},
	}
	for i := 0; i < len(phaseSequence)-1; i++ {
		events = append(events, fsm.EventDesc{
			Name: eventNext,
			Src:  []string{phaseSequence[i]},
			Dst:  phaseSequence[i+1],
		})
	}
	return fsm.NewFSM(phaseIdle, events, fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			b.logger.LogPhase(b.TurnNumber(), e.Src, e.Dst)
		},
	})
}

// fire はフェーズ遷移イベントを発火します。遷移の失敗はエンジンの不具合なのでログに残します。
func (b *Battle) fire(event string) {
	if err := b.phase.Event(context.Background(), event); err != nil {
		b.log.Error().Err(err).Str("event", event).Str("phase", b.phase.Current()).Msg("フェーズ遷移に失敗しました")
	}
}
