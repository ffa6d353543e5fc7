package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// UIFactory はUIコンポーネントの生成とスタイリングを一元的に管理します。
type UIFactory struct {
	Font           text.Face
	imageGenerator *UIImageGenerator
}

// NewUIFactory は新しいUIFactoryのインスタンスを作成します。
func NewUIFactory(font text.Face) *UIFactory {
	return &UIFactory{
		Font:           font,
		imageGenerator: NewUIImageGenerator(),
	}
}

// NewButton は縁取り色 border のボタンを生成します。enabled が false の場合は押せません。
func (f *UIFactory) NewButton(label string, border color.RGBA, enabled bool, onClick func()) *widget.Button {
	btn := widget.NewButton(
		widget.ButtonOpts.Image(f.imageGenerator.ButtonImage(border)),
		widget.ButtonOpts.Text(label, f.Font, &widget.ButtonTextColor{
			Idle:     colorText,
			Disabled: colorSubText,
		}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(6)),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 28)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
	btn.GetWidget().Disabled = !enabled
	return btn
}

// NewLabel は1行のテキストを生成します。
func (f *UIFactory) NewLabel(label string, c color.Color) *widget.Text {
	return widget.NewText(widget.TextOpts.Text(label, f.Font, c))
}

// NewPanel は背景付きの縦並びコンテナを生成します。
func (f *UIFactory) NewPanel(spacing int, opts ...widget.ContainerOpt) *widget.Container {
	opts = append([]widget.ContainerOpt{
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(colorPanel)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	}, opts...)
	return widget.NewContainer(opts...)
}

// NewButtonGrid は列数 columns のボタン並びを生成します。
func (f *UIFactory) NewButtonGrid(columns int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(columns),
			widget.GridLayoutOpts.Spacing(6, 6),
		)),
	)
}
