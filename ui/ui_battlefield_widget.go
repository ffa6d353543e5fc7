package ui

import (
	"fmt"
	"image/color"

	"monbattle-ebiten/core"
	"monbattle-ebiten/ecs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelWidth   = 200
	panelHeight  = 64
	panelSpacing = 10
	barWidth     = 120
	barHeight    = 6
)

// BattlefieldWidget は場の個体の情報パネルを描画します。
// 相手は上段、味方は下段に並び、味方のみHPの数値と経験値バーを表示します。
type BattlefieldWidget struct {
	font text.Face
	vm   ecs.BattleViewModel
}

// NewBattlefieldWidget は新しいBattlefieldWidgetを作成します。
func NewBattlefieldWidget(font text.Face) *BattlefieldWidget {
	return &BattlefieldWidget{font: font}
}

// SetViewModel は描画する状態を差し替えます。
func (w *BattlefieldWidget) SetViewModel(vm ecs.BattleViewModel) {
	w.vm = vm
}

// Draw はフィールド全体を描画します。
func (w *BattlefieldWidget) Draw(screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	for i, p := range w.vm.Enemies {
		x := width - float32(i+1)*(panelWidth+panelSpacing)
		w.drawPanel(screen, p, x, panelSpacing, false)
	}
	for i, p := range w.vm.Allies {
		x := panelSpacing + float32(i)*(panelWidth+panelSpacing)
		w.drawPanel(screen, p, x, 2*panelSpacing+panelHeight+60, true)
	}

	header := fmt.Sprintf("Turn %d", w.vm.Turn+1)
	if w.vm.Weather != core.WeatherNone && w.vm.Weather != "" {
		header += "  " + string(w.vm.Weather)
	}
	drawText(screen, header, w.font, panelSpacing, panelHeight+3*panelSpacing, colorInk)
}

func (w *BattlefieldWidget) drawPanel(screen *ebiten.Image, p ecs.InfoPanelViewModel, x, y float32, ally bool) {
	vector.DrawFilledRect(screen, x, y, panelWidth, panelHeight, colorPanel, false)
	vector.StrokeRect(screen, x, y, panelWidth, panelHeight, 2, colorInk, false)

	drawText(screen, p.Name, w.font, float64(x)+8, float64(y)+6, colorText)
	drawText(screen, fmt.Sprintf("Lv%d", p.Level), w.font, float64(x)+panelWidth-48, float64(y)+6, colorText)
	if p.Status != core.StatusNone && p.Status != "" {
		drawText(screen, string(p.Status), w.font, float64(x)+8, float64(y)+22, colorSubText)
	}

	barX, barY := x+panelWidth-barWidth-10, y+26
	drawBar(screen, barX, barY, ratio(p.Health, p.MaxHealth), p.HPColor)
	if ally {
		drawText(screen, fmt.Sprintf("%d/%d", p.Health, p.MaxHealth), w.font, float64(barX), float64(barY)+10, colorText)
		drawBar(screen, barX, y+panelHeight-10, float32(p.ExpProgress), colorExpBar)
	}
}

func drawBar(screen *ebiten.Image, x, y, fill float32, c color.Color) {
	vector.DrawFilledRect(screen, x, y, barWidth, barHeight, colorBarTrack, false)
	if fill > 0 {
		vector.DrawFilledRect(screen, x, y, barWidth*fill, barHeight, c, false)
	}
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

func ratio(v, total int) float32 {
	if total <= 0 {
		return 0
	}
	return float32(v) / float32(total)
}
