package ecs

import (
	"image/color"

	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"
	"monbattle-ebiten/ecs/entity"
	"monbattle-ebiten/formula"

	"github.com/yohamta/donburi"
)

// BattleViewModel は、対戦画面全体の表示に必要なデータを保持します。
type BattleViewModel struct {
	Allies  []InfoPanelViewModel
	Enemies []InfoPanelViewModel
	// Reserves は味方の控えです。交代先の選択に使います。
	Reserves []InfoPanelViewModel
	Weather  core.Weather
	Turn     int
	Outcome  core.Outcome
}

// InfoPanelViewModel は、単一の情報パネルUIが必要とするすべてのデータを保持します。
type InfoPanelViewModel struct {
	Combatant *domain.Combatant // コマンド発行時に必要
	Name      string
	Level     int
	Health    int
	MaxHealth int
	HPColor   color.Color
	Status    core.Status
	// ExpProgress は次のレベルまでの経験値の進み具合です (0.0〜1.0)。
	ExpProgress float64
	Moves       []MoveViewModel
}

// MoveViewModel は、技ボタン一つ分のデータを保持します。
type MoveViewModel struct {
	Move    *domain.Move
	Name    string
	Type    core.Type
	Uses    int
	MaxUses int
	Usable  bool
}

var (
	hpGreen  = color.RGBA{R: 0x40, G: 0xc0, B: 0x58, A: 0xff}
	hpYellow = color.RGBA{R: 0xe8, G: 0xc0, B: 0x30, A: 0xff}
	hpRed    = color.RGBA{R: 0xd8, G: 0x40, B: 0x38, A: 0xff}
)

// BuildBattleViewModel はワールドの状態から表示用のデータを組み立てます。
func BuildBattleViewModel(world donburi.World) BattleViewModel {
	field := entity.GetField(world)
	vm := BattleViewModel{
		Weather: field.Weather,
		Turn:    field.Turn,
		Outcome: field.Outcome,
	}
	for _, c := range entity.Actives(world, core.SideAlly) {
		vm.Allies = append(vm.Allies, BuildInfoPanel(c))
	}
	for _, c := range entity.Actives(world, core.SideEnemy) {
		vm.Enemies = append(vm.Enemies, BuildInfoPanel(c))
	}
	for _, c := range entity.Reserves(world, core.SideAlly) {
		vm.Reserves = append(vm.Reserves, BuildInfoPanel(c))
	}
	return vm
}

// BuildInfoPanel は1体分の表示用データを組み立てます。
func BuildInfoPanel(c *domain.Combatant) InfoPanelViewModel {
	panel := InfoPanelViewModel{
		Combatant:   c,
		Name:        c.Label(),
		Level:       c.Level,
		Health:      c.Health,
		MaxHealth:   c.MaxHealth(),
		HPColor:     healthColor(c.Health, c.MaxHealth()),
		Status:      c.Status,
		ExpProgress: expProgress(c),
	}
	for _, m := range c.Moves {
		panel.Moves = append(panel.Moves, MoveViewModel{
			Move:    m,
			Name:    m.Template.Name,
			Type:    m.Template.Type,
			Uses:    m.Uses,
			MaxUses: m.Template.MaxUses,
			Usable:  m.Usable(),
		})
	}
	return panel
}

func healthColor(hp, maxHP int) color.Color {
	switch {
	case hp*2 > maxHP:
		return hpGreen
	case hp*5 > maxHP:
		return hpYellow
	}
	return hpRed
}

func expProgress(c *domain.Combatant) float64 {
	if c.Level >= core.MaxLevel {
		return 1
	}
	lo := formula.ExpForLevel(c.Species.Growth, c.Level)
	hi := formula.ExpForLevel(c.Species.Growth, c.Level+1)
	if hi <= lo {
		return 1
	}
	return core.Clamp(float64(c.Exp-lo)/float64(hi-lo), 0, 1)
}
