package ui

import (
	"monbattle-ebiten/core"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var outcomeTitles = map[core.Outcome]string{
	core.OutcomeWin:      "You won!",
	core.OutcomeLoss:     "You lost...",
	core.OutcomeEscaped:  "Got away safely.",
	core.OutcomeCaptured: "Caught it!",
}

// ResultScene は勝敗と最後の実況を表示し、クリックでタイトルに戻ります。
type ResultScene struct {
	resources *SharedResources
	manager   *SceneManager
	ui        *ebitenui.UI
}

// NewResultScene は新しい結果シーンを作成します。
func NewResultScene(res *SharedResources, manager *SceneManager, outcome core.Outcome, history []string) *ResultScene {
	f := NewUIFactory(res.Font)
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))

	panel := f.NewPanel(8, widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	})))
	root.AddChild(panel)

	title, ok := outcomeTitles[outcome]
	if !ok {
		title = string(outcome)
	}
	panel.AddChild(f.NewLabel(title, colorText))
	for _, line := range history {
		panel.AddChild(f.NewLabel(line, colorSubText))
	}
	panel.AddChild(f.NewLabel("Click to return to the title", colorSubText))

	return &ResultScene{resources: res, manager: manager, ui: &ebitenui.UI{Container: root}}
}

func (s *ResultScene) Update() error {
	s.ui.Update()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.manager.GoToTitleScene()
	}
	return nil
}

func (s *ResultScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	s.ui.Draw(screen)
}

func (s *ResultScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.resources.Config.UI.Width, s.resources.Config.UI.Height
}
