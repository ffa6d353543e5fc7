package ui

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"time"

	"monbattle-ebiten/core"
	"monbattle-ebiten/data"
	"monbattle-ebiten/domain"
	"monbattle-ebiten/ecs"
	"monbattle-ebiten/ecs/system"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

const (
	captureMoveID = "poke_ball"
	escapeMoveID  = "run_away"
)

type battleMode int

const (
	modeStepping battleMode = iota
	modeCommand
	modeTarget
	modeForcedSwitch
	modeFinished
)

// BattleScene は1回の対戦を表示し、味方のコマンドを受け付けます。
// エンジンの Step 列は1フレームに1メッセージずつ進めます。
type BattleScene struct {
	resources *SharedResources
	manager   *SceneManager
	battle    *system.Battle
	log       zerolog.Logger

	presenter *ecs.QueuePresenter
	pump      *ecs.StepPump
	mode      battleMode

	cmds    []domain.Command
	pending *domain.Move
	fainted *domain.Combatant
	capture *domain.Move
	escape  *domain.Move

	factory *UIFactory
	field   *BattlefieldWidget
	message *MessageWindow
	menu    *widget.Container
	ui      *ebitenui.UI
}

// NewBattleScene は設定ファイルのパーティで対戦を組み立て、開始の実況を始めます。
func NewBattleScene(res *SharedResources, manager *SceneManager) (*BattleScene, error) {
	cfg := res.Config.Battle
	allies, err := res.Factory.Party(cfg.AllyParty, core.SideAlly)
	if err != nil {
		return nil, fmt.Errorf("ally party: %w", err)
	}
	enemies, err := res.Factory.Party(cfg.EnemyParty, core.SideEnemy)
	if err != nil {
		return nil, fmt.Errorf("enemy party: %w", err)
	}
	capture, err := res.Factory.Move(captureMoveID)
	if err != nil {
		return nil, err
	}
	escape, err := res.Factory.Move(escapeMoveID)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	session := uuid.NewString()
	logger := res.Log.With().Str("session", session).Logger()
	battle, err := system.NewBattle(allies, enemies, system.Options{
		Size:     cfg.Size,
		Trainer:  cfg.Trainer,
		Weather:  cfg.Weather,
		Rand:     rand.New(rand.NewPCG(seed, seed>>1|1)),
		Balance:  res.Config.Balance,
		Messages: res.Messages,
		Game:     res.Game,
		Registry: res.Registry,
		Logger:   data.NewBattleLogger(res.Log, session),
		Log:      logger,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug().Uint64("seed", seed).Msg("乱数の種を決定しました")

	bs := &BattleScene{
		resources: res,
		manager:   manager,
		battle:    battle,
		log:       logger,
		presenter: ecs.NewQueuePresenter(res.Config.UI.MessageFrames, res.Sounds),
		capture:   capture,
		escape:    escape,
		factory:   NewUIFactory(res.Font),
		field:     NewBattlefieldWidget(res.Font),
	}
	bs.buildLayout()

	seq, err := battle.Start()
	if err != nil {
		return nil, err
	}
	bs.startSequence(seq)
	bs.refresh()
	return bs, nil
}

// buildLayout は画面下部のメッセージウィンドウとコマンド欄を組み立てます。
func (bs *BattleScene) buildLayout() {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	bottom := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
			StretchHorizontal:  true,
		})),
	)
	root.AddChild(bottom)

	bs.message = NewMessageWindow(bs.factory)
	bs.message.Widget().GetWidget().LayoutData = widget.RowLayoutData{Stretch: true}
	bottom.AddChild(bs.message.Widget())

	bs.menu = bs.factory.NewButtonGrid(3)
	bottom.AddChild(bs.menu)

	bs.ui = &ebitenui.UI{Container: root}
}

func (bs *BattleScene) startSequence(seq iter.Seq[domain.Step]) {
	bs.pump = ecs.NewStepPump(seq)
	bs.mode = modeStepping
	bs.message.SetHint("")
	bs.rebuildMenu()
}

func (bs *BattleScene) Update() error {
	bs.ui.Update()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)

	switch bs.mode {
	case modeStepping:
		bs.presenter.Tick(clicked)
		if !bs.pump.Advance(bs.presenter) {
			bs.afterSequence()
		}
	case modeFinished:
		if clicked {
			bs.manager.GoToResultScene(bs.battle.Outcome(), bs.presenter.History())
		}
	}

	if bs.presenter.TakeDirty() {
		bs.refresh()
	}
	bs.message.SetHistory(bs.presenter.History())
	return nil
}

// afterSequence は Step 列が尽きた後の次の入力待ちを決めます。
func (bs *BattleScene) afterSequence() {
	bs.pump = nil
	bs.refresh()

	if outcome := bs.battle.Outcome(); outcome.Decided() {
		bs.mode = modeFinished
		bs.message.SetHint("Click to continue")
		bs.rebuildMenu()
		bs.log.Info().Str("outcome", string(outcome)).Int("turns", bs.battle.TurnNumber()).Msg("対戦が終了しました")
		return
	}
	if out, ok := bs.presenter.TakeSwitch(); ok && len(aliveOnly(bs.battle.Reserves(core.SideAlly))) > 0 {
		bs.fainted = out
		bs.mode = modeForcedSwitch
		bs.rebuildMenu()
		return
	}
	bs.beginCommands()
}

// beginCommands は味方の1体目からコマンド選択を始めます。
func (bs *BattleScene) beginCommands() {
	bs.cmds = bs.cmds[:0]
	bs.pending = nil
	bs.mode = modeCommand
	bs.skipFainted()
}

// commit は現在の個体のコマンドを確定し、次の個体に進みます。
func (bs *BattleScene) commit(cmd domain.Command) {
	bs.cmds = append(bs.cmds, cmd)
	bs.pending = nil
	bs.mode = modeCommand
	bs.skipFainted()
}

// skipFainted はひんしの個体に空のコマンドを割り当て、全員分そろったらターンを始めます。
func (bs *BattleScene) skipFainted() {
	allies := bs.battle.Actives(core.SideAlly)
	for len(bs.cmds) < len(allies) && !allies[len(bs.cmds)].IsAlive() {
		bs.cmds = append(bs.cmds, domain.Command{Actor: allies[len(bs.cmds)]})
	}
	if len(bs.cmds) < len(allies) {
		bs.rebuildMenu()
		return
	}
	bs.submitTurn()
}

func (bs *BattleScene) submitTurn() {
	cmds := append(append([]domain.Command{}, bs.cmds...), bs.battle.ChooseCommands(core.SideEnemy)...)
	seq, err := bs.battle.Turn(cmds)
	if err != nil {
		bs.log.Error().Err(err).Msg("コマンドが受け付けられませんでした")
		bs.beginCommands()
		return
	}
	bs.startSequence(seq)
}

// forceSwitch はひんしの味方を in と交代させます。
func (bs *BattleScene) forceSwitch(in *domain.Combatant) {
	seq, err := bs.battle.SwitchImmediate(bs.fainted, in)
	if err != nil {
		bs.log.Error().Err(err).Str("in", in.Name).Msg("交代に失敗しました")
		return
	}
	bs.fainted = nil
	bs.startSequence(seq)
}

// refresh はワールドから表示用データを作り直します。
func (bs *BattleScene) refresh() {
	bs.field.SetViewModel(ecs.BuildBattleViewModel(bs.battle.World()))
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	bs.field.Draw(screen)
	bs.ui.Draw(screen)
}

func (bs *BattleScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return bs.resources.Config.UI.Width, bs.resources.Config.UI.Height
}

func aliveOnly(cs []*domain.Combatant) []*domain.Combatant {
	var out []*domain.Combatant
	for _, c := range cs {
		if c.IsAlive() {
			out = append(out, c)
		}
	}
	return out
}
