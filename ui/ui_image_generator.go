package ui

import (
	"image/color"

	"monbattle-ebiten/core"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorBackground = color.RGBA{R: 0xf0, G: 0xf0, B: 0xe8, A: 0xff}
	colorPanel      = color.NRGBA{R: 0x30, G: 0x30, B: 0x48, A: 0xe8}
	colorText       = color.White
	colorSubText    = color.RGBA{R: 0xa0, G: 0xa0, B: 0xb0, A: 0xff}
	colorInk        = color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}
	colorBarTrack   = color.RGBA{R: 0x50, G: 0x50, B: 0x58, A: 0xff}
	colorExpBar     = color.RGBA{R: 0x40, G: 0x90, B: 0xe0, A: 0xff}
)

// typeColors は技ボタンの縁取りに使うタイプ色です。
var typeColors = map[core.Type]color.RGBA{
	core.TypeNormal:   {R: 0xa8, G: 0xa8, B: 0x78, A: 0xff},
	core.TypeFire:     {R: 0xf0, G: 0x80, B: 0x30, A: 0xff},
	core.TypeWater:    {R: 0x68, G: 0x90, B: 0xf0, A: 0xff},
	core.TypeGrass:    {R: 0x78, G: 0xc8, B: 0x50, A: 0xff},
	core.TypeElectric: {R: 0xf8, G: 0xd0, B: 0x30, A: 0xff},
	core.TypeIce:      {R: 0x98, G: 0xd8, B: 0xd8, A: 0xff},
	core.TypePoison:   {R: 0xa0, G: 0x40, B: 0xa0, A: 0xff},
	core.TypeGround:   {R: 0xe0, G: 0xc0, B: 0x68, A: 0xff},
	core.TypeFlying:   {R: 0xa8, G: 0x90, B: 0xf0, A: 0xff},
	core.TypeBug:      {R: 0xa8, G: 0xb8, B: 0x20, A: 0xff},
	core.TypeRock:     {R: 0xb8, G: 0xa0, B: 0x38, A: 0xff},
	core.TypeSteel:    {R: 0xb8, G: 0xb8, B: 0xd0, A: 0xff},
}

// UIImageGenerator はボタン用の画像を生成し、縁の色ごとにキャッシュします。
type UIImageGenerator struct {
	buttons map[color.RGBA]*widget.ButtonImage
}

// NewUIImageGenerator は新しいUIImageGeneratorのインスタンスを作成します。
func NewUIImageGenerator() *UIImageGenerator {
	return &UIImageGenerator{buttons: make(map[color.RGBA]*widget.ButtonImage)}
}

// ButtonImage は border を縁取りに使うボタン画像セットを返します。
func (g *UIImageGenerator) ButtonImage(border color.RGBA) *widget.ButtonImage {
	if img, ok := g.buttons[border]; ok {
		return img
	}
	img := &widget.ButtonImage{
		Idle:     g.buttonNineSlice(color.RGBA{R: 0x48, G: 0x48, B: 0x68, A: 0xff}, color.RGBA{R: 0x30, G: 0x30, B: 0x48, A: 0xff}, border),
		Hover:    g.buttonNineSlice(color.RGBA{R: 0x60, G: 0x60, B: 0x88, A: 0xff}, color.RGBA{R: 0x40, G: 0x40, B: 0x60, A: 0xff}, border),
		Pressed:  g.buttonNineSlice(color.RGBA{R: 0x28, G: 0x28, B: 0x40, A: 0xff}, color.RGBA{R: 0x48, G: 0x48, B: 0x68, A: 0xff}, border),
		Disabled: image.NewNineSliceColor(color.NRGBA{R: 0x38, G: 0x38, B: 0x40, A: 0xff}),
	}
	g.buttons[border] = img
	return img
}

// buttonNineSlice は縦グラデーションに2pxの縁を付けたNineSliceを生成します。
func (g *UIImageGenerator) buttonNineSlice(top, bottom, border color.RGBA) *image.NineSlice {
	const size, inset = 32, 3

	img := ebiten.NewImage(size, size)
	for y := 0; y < size; y++ {
		ratio := float64(y) / float64(size-1)
		vector.DrawFilledRect(img, 0, float32(y), size, 1, lerpColor(top, bottom, ratio), false)
	}
	vector.StrokeRect(img, 1, 1, size-2, size-2, 2, border, false)

	return image.NewNineSlice(img,
		[3]int{inset, size - 2*inset, inset},
		[3]int{inset, size - 2*inset, inset})
}

// lerpColor は2色を線形補間します。
func lerpColor(a, b color.RGBA, ratio float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-ratio) + float64(y)*ratio)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
