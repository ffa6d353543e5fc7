package ecs

import (
	"iter"

	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"
	"monbattle-ebiten/ecs/system"
)

// SoundPlayer は効果音カテゴリを鳴らす出力先です。
type SoundPlayer interface {
	Play(s core.Sound)
}

// StepPump は Step 列をフレーム単位で取り出します。
// 描画ループは毎フレーム Advance を呼び、表示待ちの間は列を止めておきます。
type StepPump struct {
	next func() (domain.Step, bool)
	stop func()
	done bool
}

// NewStepPump は seq を引き出し型に変換します。
func NewStepPump(seq iter.Seq[domain.Step]) *StepPump {
	next, stop := iter.Pull(seq)
	return &StepPump{next: next, stop: stop}
}

// Advance は p がメッセージ待ちになるか列が尽きるまで Step を渡します。
// 列が尽きた場合は false を返します。
func (sp *StepPump) Advance(p *QueuePresenter) bool {
	if sp.done {
		return false
	}
	for !p.Waiting() {
		step, ok := sp.next()
		if !ok {
			sp.Close()
			return false
		}
		system.Dispatch(step, p)
	}
	return true
}

// Close は列を破棄します。残りのターン処理は表示なしで最後まで進みます。
func (sp *StepPump) Close() {
	if sp.done {
		return
	}
	sp.done = true
	sp.stop()
}

// QueuePresenter は Step を画面の状態に変換する Presenter です。
// メッセージは一定フレーム表示するかクリックされるまで次の Step を止めます。
type QueuePresenter struct {
	Frames int

	current  string
	history  []string
	wait     int
	waiting  bool
	dirty    bool
	targets  bool
	outcome  core.Outcome
	switches []*domain.Combatant
	sounds   SoundPlayer
}

const historySize = 6

// NewQueuePresenter は新しい QueuePresenter を作成します。sounds は nil でも構いません。
func NewQueuePresenter(frames int, sounds SoundPlayer) *QueuePresenter {
	if frames <= 0 {
		frames = 1
	}
	return &QueuePresenter{Frames: frames, sounds: sounds, outcome: core.OutcomeUndecided}
}

func (p *QueuePresenter) Print(msg string) {
	p.current = msg
	p.history = append(p.history, msg)
	if len(p.history) > historySize {
		p.history = p.history[len(p.history)-historySize:]
	}
	p.wait = p.Frames
	p.waiting = true
}

func (p *QueuePresenter) NotifyUpdateHealth() { p.dirty = true }

func (p *QueuePresenter) NotifyUpdateExp(levelFilled bool) { p.dirty = true }

func (p *QueuePresenter) NotifyTurnFinished(outcome core.Outcome) {
	p.outcome = outcome
	p.dirty = true
}

func (p *QueuePresenter) NotifySwitchPerformed(out, in *domain.Combatant) {
	p.dirty = true
	p.targets = true
}

func (p *QueuePresenter) UpdateMoveTargets() { p.targets = true }

func (p *QueuePresenter) RegisterSwitch(out *domain.Combatant) {
	p.switches = append(p.switches, out)
}

func (p *QueuePresenter) PlaySound(s core.Sound) {
	if p.sounds != nil {
		p.sounds.Play(s)
	}
}

// Tick はメッセージ待ちを1フレーム進めます。skip が true なら待ちを即座に終えます。
func (p *QueuePresenter) Tick(skip bool) {
	if !p.waiting {
		return
	}
	p.wait--
	if skip || p.wait <= 0 {
		p.waiting = false
	}
}

// Waiting はメッセージ表示中かどうかを返します。
func (p *QueuePresenter) Waiting() bool { return p.waiting }

// Message は表示中のメッセージです。
func (p *QueuePresenter) Message() string { return p.current }

// History は直近のメッセージです。
func (p *QueuePresenter) History() []string { return p.history }

// Outcome は最後に通知された勝敗です。
func (p *QueuePresenter) Outcome() core.Outcome { return p.outcome }

// TakeDirty は表示の再構築が必要かどうかを返し、フラグを下ろします。
func (p *QueuePresenter) TakeDirty() bool {
	d := p.dirty || p.targets
	p.dirty, p.targets = false, false
	return d
}

// TakeSwitch は交代先の選択が必要な味方を1体取り出します。
func (p *QueuePresenter) TakeSwitch() (*domain.Combatant, bool) {
	for len(p.switches) > 0 {
		out := p.switches[0]
		p.switches = p.switches[1:]
		if out.IsFainted() {
			return out, true
		}
	}
	return nil, false
}
