package ui

import (
	"fmt"

	"monbattle-ebiten/core"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// TitleScene は対戦の開始ボタンを持つ最初の画面です。
type TitleScene struct {
	resources *SharedResources
	ui        *ebitenui.UI
}

// NewTitleScene は新しいタイトルシーンを作成します。
func NewTitleScene(res *SharedResources, manager *SceneManager) *TitleScene {
	f := NewUIFactory(res.Font)
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))

	panel := f.NewPanel(16, widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	})))
	root.AddChild(panel)

	battle := res.Config.Battle
	kind := "Wild battle"
	if battle.Trainer {
		kind = "Trainer battle"
	}
	panel.AddChild(f.NewLabel("MONBATTLE", colorText))
	panel.AddChild(f.NewLabel(fmt.Sprintf("%s  %dv%d  party %d vs %d", kind, battle.Size, battle.Size,
		len(battle.AllyParty), len(battle.EnemyParty)), colorSubText))
	panel.AddChild(f.NewButton("Start", typeColors[core.TypeNormal], true, manager.GoToBattleScene))

	return &TitleScene{resources: res, ui: &ebitenui.UI{Container: root}}
}

func (s *TitleScene) Update() error {
	s.ui.Update()
	return nil
}

func (s *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	s.ui.Draw(screen)
}

func (s *TitleScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.resources.Config.UI.Width, s.resources.Config.UI.Height
}
